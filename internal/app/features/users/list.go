// internal/app/features/users/list.go
package users

import (
	"net/http"
	"strings"

	"github.com/dalemusser/traininghub/internal/app/system/authz"
	"github.com/dalemusser/traininghub/internal/app/system/normalize"
	"github.com/dalemusser/traininghub/internal/app/system/paging"
	"github.com/dalemusser/traininghub/internal/app/system/viewdata"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/text"
)

// ServeList handles GET /users (with optional ?q= search and, for
// platform admins, ?customer= tenant filter). Customer admins always see
// only their own organization's accounts.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := query.Search(r, "q")
	customerFilter := normalize.CustomerID(query.Get(r, "customer"))

	scope := customerFilter
	if !authz.IsPlatformAdmin(r) {
		scope = authz.UserCustomerID(r)
	}

	var (
		accounts []models.UserAccount
		err      error
	)
	if scope == "" {
		accounts, err = h.Users.List(r.Context())
	} else {
		accounts, err = h.Users.ListByCustomer(r.Context(), scope)
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list users failed", err, "Unable to load users.", "")
		return
	}

	var customersForFilter []models.Customer
	if authz.IsPlatformAdmin(r) {
		customersForFilter, err = h.Customers.List(r.Context())
		if err != nil {
			h.ErrLog.LogServerError(w, r, "list customers failed", err, "Unable to load users.", "")
			return
		}
	}

	customerNames := make(map[string]string, len(customersForFilter))
	for _, c := range customersForFilter {
		customerNames[c.ID] = c.Name
	}

	fq := text.Fold(q)
	items := make([]listItem, 0, len(accounts))
	for _, u := range accounts {
		if fq != "" && !strings.Contains(u.FullNameCI, fq) && !strings.Contains(u.Email, fq) {
			continue
		}
		items = append(items, listItem{
			ID:           u.ID,
			FullName:     u.FullName(),
			Email:        u.Email,
			Role:         u.Role,
			Status:       u.Status,
			CustomerName: customerNames[u.CustomerID],
			GroupName:    h.groupName(r, u.GroupID),
		})
	}

	items, pg := paging.Page(items, paging.ParsePage(r))

	data := listData{
		BaseVM:         viewdata.NewBaseVM(w, r, "Users", "/dashboard"),
		Q:              q,
		CustomerFilter: customerFilter,
		Customers:      customersForFilter,
		Items:          items,
		Paging:         pg,
	}

	templates.Render(w, r, "user_list", data)
}

// groupName resolves a group id to its display name; empty in, empty out.
func (h *Handler) groupName(r *http.Request, groupID string) string {
	if groupID == "" {
		return ""
	}
	g, err := h.Groups.GetByID(r.Context(), groupID)
	if err != nil {
		return ""
	}
	return g.Name
}
