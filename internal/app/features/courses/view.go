// internal/app/features/courses/view.go
package courses

import (
	"net/http"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/app/policy/coursepolicy"
	"github.com/dalemusser/traininghub/internal/app/system/authz"
	"github.com/dalemusser/traininghub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/traininghub/internal/app/system/viewdata"
	"github.com/dalemusser/traininghub/internal/domain/metrics"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// ServeView renders a course with its modules, topics, progress, and
// rating figures.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	course, err := h.Courses.GetByID(r.Context(), id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Course not found.", "/courses")
		return
	}

	if !coursepolicy.CanViewCourse(r, course) {
		uierrors.RenderForbidden(w, r, "You don't have access to that course.", "/courses")
		return
	}

	_, _, userID, _ := authz.UserCtx(r)

	modules := make([]moduleVM, 0, len(course.Modules))
	for _, m := range course.Modules {
		topics := make([]topicVM, 0, len(m.Topics))
		for _, t := range m.Topics {
			avg, ok := metrics.TopicAverageRating(t)
			mine := 0
			if rating, found := t.RatingBy(userID); found {
				mine = rating.Rating
			}
			topics = append(topics, topicVM{
				Topic:           t,
				DescriptionHTML: htmlsanitize.SanitizeToHTML(t.Description),
				AvgRating:       avg,
				HasRating:       ok,
				MyRating:        mine,
			})
		}
		modules = append(modules, moduleVM{
			Module:   m,
			Progress: metrics.ModuleProgress(m),
			Duration: metrics.ModuleDuration(m),
			Topics:   topics,
		})
	}

	customerName := ""
	if c, err := h.Customers.GetByID(r.Context(), course.CustomerID); err == nil {
		customerName = c.Name
	}

	avg, hasAvg := metrics.CourseAverageRating(course)

	data := viewPageData{
		BaseVM:          viewdata.NewBaseVM(w, r, course.Title, "/courses"),
		Course:          course,
		DescriptionHTML: htmlsanitize.SanitizeToHTML(course.Description),
		CustomerName:    customerName,
		Progress:        metrics.CourseProgress(course),
		Duration:        metrics.CourseDuration(course),
		Difficulty:      metrics.Difficulty(course),
		AvgRating:       avg,
		HasRating:       hasAvg,
		Modules:         modules,
		CanManage:       coursepolicy.CanManageCourse(r),
		CanShare:        coursepolicy.CanShareCourse(r),
	}

	templates.Render(w, r, "course_view", data)
}
