// internal/app/features/customers/view.go
package customers

import (
	"net/http"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/app/policy/permissions"
	"github.com/dalemusser/traininghub/internal/app/system/authz"
	"github.com/dalemusser/traininghub/internal/app/system/viewdata"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// ServeView renders the customer profile page.
// Platform admins can view any customer; customer admins only their own
// organization.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	customer, err := h.Customers.GetByID(r.Context(), id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Customer not found.", "/customers")
		return
	}

	actor := authz.Actor(r)
	if actor == nil || (actor.Role != models.RolePlatformAdmin && actor.CustomerID != customer.ID) {
		uierrors.RenderForbidden(w, r, "You can only view your own organization.", "/dashboard")
		return
	}

	users, err := h.Users.ListByCustomer(r.Context(), customer.ID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list customer users failed", err, "Unable to load customer.", "/customers")
		return
	}

	data := viewPageData{
		BaseVM:     viewdata.NewBaseVM(w, r, customer.Name, "/customers"),
		Customer:   customer,
		UsersCount: len(users),
		CanEdit: permissions.Has(actor, permissions.Check{
			Action:   permissions.ActionUpdate,
			Resource: permissions.ResourceCustomer,
			TargetID: customer.ID,
		}),
	}

	templates.Render(w, r, "customer_view", data)
}
