// internal/app/features/dashboard/customer.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/traininghub/internal/app/system/authz"
	"github.com/dalemusser/traininghub/internal/app/system/viewdata"
	"github.com/dalemusser/traininghub/internal/domain/metrics"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

// courseRow pairs a course with derived metrics for list rendering.
type courseRow struct {
	Course   models.Course
	Progress int
	Duration int
}

type customerData struct {
	viewdata.BaseVM

	Customer       models.Customer
	UsersCount     int
	GroupsCount    int
	Courses        []courseRow
	CompletionRate int
}

// ServeCustomerAdmin renders the tenant dashboard: organization stats and
// the courses visible to the organization.
func (h *Handler) ServeCustomerAdmin(w http.ResponseWriter, r *http.Request) {
	customerID := authz.UserCustomerID(r)
	if customerID == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	customer, err := h.Customers.GetByID(r.Context(), customerID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "get customer failed", err, "Unable to load dashboard.", "/")
		return
	}

	users, err := h.Users.ListByCustomer(r.Context(), customerID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list users failed", err, "Unable to load dashboard.", "/")
		return
	}

	groups, err := h.Groups.ListByCustomer(r.Context(), customerID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list groups failed", err, "Unable to load dashboard.", "/")
		return
	}

	courses, err := h.Courses.ListVisibleTo(r.Context(), customerID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list courses failed", err, "Unable to load dashboard.", "/")
		return
	}

	data := customerData{
		BaseVM:         viewdata.NewBaseVM(w, r, customer.Name+" Dashboard", "/"),
		Customer:       customer,
		UsersCount:     len(users),
		GroupsCount:    len(groups),
		Courses:        courseRows(courses),
		CompletionRate: metrics.CompletionRate(courses),
	}

	templates.Render(w, r, "dashboard_customer", data)
}

func courseRows(courses []models.Course) []courseRow {
	rows := make([]courseRow, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, courseRow{
			Course:   c,
			Progress: metrics.CourseProgress(c),
			Duration: metrics.CourseDuration(c),
		})
	}
	return rows
}
