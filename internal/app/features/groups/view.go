// internal/app/features/groups/view.go
package groups

import (
	"net/http"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/app/policy/grouppolicy"
	"github.com/dalemusser/traininghub/internal/app/system/viewdata"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// ServeView renders a single group with its member list. Visible to
// platform admins, the owning organization's admins, and the group's
// own members.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	group, err := h.Groups.GetByID(r.Context(), id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Group not found.", "/groups")
		return
	}

	ok, err := grouppolicy.CanViewGroup(r.Context(), h.Groups, r, group)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "group view check failed", err, "Unable to load the group.", "/groups")
		return
	}
	if !ok {
		uierrors.RenderForbidden(w, r, "You can't view that group.", "/dashboard")
		return
	}

	members, err := h.Users.ListByGroup(r.Context(), group.ID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list group members failed", err, "Unable to load the group.", "/groups")
		return
	}
	rows := make([]memberRow, 0, len(members))
	for _, m := range members {
		rows = append(rows, memberRow{
			ID:    m.ID,
			Name:  m.FullName(),
			Email: m.Email,
			Role:  m.Role,
		})
	}

	canManage := grouppolicy.CanManageGroup(r, group)

	var candidates []models.UserAccount
	if canManage {
		orgUsers, err := h.Users.ListByCustomer(r.Context(), group.CustomerID)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "list candidate members failed", err, "Unable to load the group.", "/groups")
			return
		}
		for _, u := range orgUsers {
			if !group.HasMember(u.ID) {
				candidates = append(candidates, u)
			}
		}
	}

	customerName := ""
	if c, err := h.Customers.GetByID(r.Context(), group.CustomerID); err == nil {
		customerName = c.Name
	}

	data := viewPageData{
		BaseVM:       viewdata.NewBaseVM(w, r, group.Name, "/groups"),
		Group:        group,
		CustomerName: customerName,
		Members:      rows,
		Candidates:   candidates,
		CanManage:    canManage,
	}

	templates.Render(w, r, "group_view", data)
}
