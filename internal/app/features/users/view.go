// internal/app/features/users/view.go
package users

import (
	"net/http"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/app/policy/userpolicy"
	"github.com/dalemusser/traininghub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// ServeView renders the user detail page.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	account, err := h.Users.GetByID(r.Context(), id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "User not found.", "/users")
		return
	}

	if !userpolicy.CanViewUser(r, account) {
		uierrors.RenderForbidden(w, r, "You can't view that user.", "/users")
		return
	}

	customerName := ""
	if account.CustomerID != "" {
		if c, err := h.Customers.GetByID(r.Context(), account.CustomerID); err == nil {
			customerName = c.Name
		}
	}

	data := viewPageData{
		BaseVM:       viewdata.NewBaseVM(w, r, account.FullName(), "/users"),
		User:         account,
		CustomerName: customerName,
		GroupName:    h.groupName(r, account.GroupID),
		CanEdit:      userpolicy.CanEditUser(r, account),
		CanDelete:    userpolicy.CanDeleteUser(r, account),
	}

	templates.Render(w, r, "user_view", data)
}
