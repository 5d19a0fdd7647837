// internal/app/features/customers/list.go
package customers

import (
	"net/http"
	"strings"

	"github.com/dalemusser/traininghub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/text"
)

// ServeList handles GET /customers (with optional ?q= search).
// Authorization: RequireRole("platform_admin") middleware in routes.go
// ensures only platform admins reach this handler.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := query.Search(r, "q")

	all, err := h.Customers.List(r.Context())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list customers failed", err, "Unable to load customers.", "")
		return
	}

	fq := text.Fold(q)
	items := make([]listItem, 0, len(all))
	for _, c := range all {
		if fq != "" && !strings.Contains(c.NameCI, fq) {
			continue
		}
		users, err := h.Users.ListByCustomer(r.Context(), c.ID)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "count customer users failed", err, "Unable to load customers.", "")
			return
		}
		items = append(items, listItem{
			ID:               c.ID,
			Name:             c.Name,
			Industry:         c.Industry,
			Status:           c.Status,
			SubscriptionType: c.SubscriptionType,
			UsersCount:       len(users),
		})
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(w, r, "Customers", "/dashboard"),
		Q:      q,
		Items:  items,
	}

	templates.Render(w, r, "customer_list", data)
}
