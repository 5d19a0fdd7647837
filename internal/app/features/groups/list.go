// internal/app/features/groups/list.go
package groups

import (
	"net/http"
	"strings"

	"github.com/dalemusser/traininghub/internal/app/system/authz"
	"github.com/dalemusser/traininghub/internal/app/system/viewdata"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/text"
)

// ServeList handles GET /groups (with optional ?q= search). Platform
// admins see every customer's groups; customer admins only their own
// organization's.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := query.Search(r, "q")

	var (
		all []models.Group
		err error
	)
	isPlatform := authz.IsPlatformAdmin(r)
	if isPlatform {
		all, err = h.Groups.List(r.Context())
	} else {
		all, err = h.Groups.ListByCustomer(r.Context(), authz.UserCustomerID(r))
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list groups failed", err, "Unable to load groups.", "")
		return
	}

	customerNames := map[string]string{}
	if isPlatform {
		customers, err := h.Customers.List(r.Context())
		if err != nil {
			h.ErrLog.LogServerError(w, r, "list customers failed", err, "Unable to load groups.", "")
			return
		}
		for _, c := range customers {
			customerNames[c.ID] = c.Name
		}
	}

	fq := text.Fold(q)
	items := make([]listItem, 0, len(all))
	for _, g := range all {
		if fq != "" && !strings.Contains(g.NameCI, fq) {
			continue
		}
		items = append(items, listItem{
			ID:           g.ID,
			Name:         g.Name,
			Type:         g.Type,
			Description:  g.Description,
			CustomerName: customerNames[g.CustomerID],
			MembersCount: len(g.Members),
		})
	}

	data := listData{
		BaseVM:        viewdata.NewBaseVM(w, r, "Groups", "/dashboard"),
		Q:             q,
		ShowCustomers: isPlatform,
		Items:         items,
	}

	templates.Render(w, r, "group_list", data)
}
