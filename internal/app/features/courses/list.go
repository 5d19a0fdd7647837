// internal/app/features/courses/list.go
package courses

import (
	"net/http"
	"strings"

	"github.com/dalemusser/traininghub/internal/app/policy/coursepolicy"
	"github.com/dalemusser/traininghub/internal/app/system/authz"
	"github.com/dalemusser/traininghub/internal/app/system/viewdata"
	"github.com/dalemusser/traininghub/internal/domain/metrics"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/text"
)

// ServeList handles GET /courses (with optional ?q= search). Platform
// admins browse the whole catalog; everyone else sees the courses their
// organization owns or has been granted.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := query.Search(r, "q")

	var (
		all []models.Course
		err error
	)
	isPlatform := authz.IsPlatformAdmin(r)
	if isPlatform {
		all, err = h.Courses.List(r.Context())
	} else {
		all, err = h.Courses.ListVisibleTo(r.Context(), authz.UserCustomerID(r))
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list courses failed", err, "Unable to load courses.", "")
		return
	}

	customerNames := map[string]string{}
	if isPlatform {
		customers, err := h.Customers.List(r.Context())
		if err != nil {
			h.ErrLog.LogServerError(w, r, "list customers failed", err, "Unable to load courses.", "")
			return
		}
		for _, c := range customers {
			customerNames[c.ID] = c.Name
		}
	}

	actorCustomer := authz.UserCustomerID(r)
	fq := text.Fold(q)
	items := make([]listItem, 0, len(all))
	for _, c := range all {
		if fq != "" && !strings.Contains(c.TitleCI, fq) {
			continue
		}
		avg, ok := metrics.CourseAverageRating(c)
		items = append(items, listItem{
			ID:           c.ID,
			Title:        c.Title,
			Status:       c.Status,
			CustomerName: customerNames[c.CustomerID],
			Shared:       actorCustomer != "" && c.CustomerID != actorCustomer,
			ModuleCount:  len(c.Modules),
			Duration:     metrics.CourseDuration(c),
			Difficulty:   metrics.Difficulty(c),
			Progress:     metrics.CourseProgress(c),
			AvgRating:    avg,
			HasRating:    ok,
		})
	}

	data := listData{
		BaseVM:        viewdata.NewBaseVM(w, r, "Courses", "/dashboard"),
		Q:             q,
		ShowCustomers: isPlatform,
		CanManage:     coursepolicy.CanManageCourse(r),
		Items:         items,
	}

	templates.Render(w, r, "course_list", data)
}
