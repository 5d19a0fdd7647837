// internal/app/features/courses/delete.go
package courses

import (
	"net/http"

	"github.com/dalemusser/traininghub/internal/app/system/flash"
	"github.com/dalemusser/traininghub/internal/app/system/navigation"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDelete removes a course. Deleting an already-deleted course
// redirects without complaint. Certificates already issued for the
// course are untouched; they record history, not a live reference.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	n, err := h.Courses.Delete(r.Context(), id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete course failed", err, "Unable to delete the course.", "/courses")
		return
	}
	if n == 0 {
		h.Log.Info("delete of missing course", zap.String("course_id", id))
	} else {
		flash.Success(w, r, "Course deleted successfully")
	}

	ret := navigation.SafeBackURL(r, navigation.CoursesBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
