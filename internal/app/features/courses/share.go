// internal/app/features/courses/share.go
package courses

import (
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/app/system/flash"
	"github.com/dalemusser/traininghub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// ServeShare renders the sharing management screen for a course: every
// customer with its current grant state. The owning customer is shown
// but cannot be granted to itself.
func (h *Handler) ServeShare(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	course, err := h.Courses.GetByID(r.Context(), id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Course not found.", "/courses")
		return
	}

	customers, err := h.Customers.List(r.Context())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list customers failed", err, "Unable to load sharing.", "/courses")
		return
	}

	rows := make([]shareRow, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, shareRow{
			ID:     c.ID,
			Name:   c.Name,
			Owner:  c.ID == course.CustomerID,
			Shared: course.SharedWithCustomer(c.ID),
		})
	}

	data := shareData{
		BaseVM:    viewdata.NewBaseVM(w, r, "Share "+course.Title, "/courses/"+course.ID+"/view"),
		Course:    course,
		Customers: rows,
	}

	templates.Render(w, r, "course_share", data)
}

// HandleShare processes POST /courses/{id}/share. Granting to the
// owner or to an already-granted customer is a no-op.
func (h *Handler) HandleShare(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/courses")
		return
	}

	id := chi.URLParam(r, "id")
	customerID := strings.TrimSpace(r.FormValue("customer_id"))

	course, err := h.Courses.GetByID(r.Context(), id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Course not found.", "/courses")
		return
	}
	if customerID == "" || customerID == course.CustomerID {
		// The owner already sees its own course.
		http.Redirect(w, r, "/courses/"+id+"/share", http.StatusSeeOther)
		return
	}

	if err := h.Courses.Share(r.Context(), id, customerID); err != nil {
		h.ErrLog.LogServerError(w, r, "share course failed", err, "Unable to share the course.", "/courses")
		return
	}

	flash.Success(w, r, "Course shared successfully")
	http.Redirect(w, r, "/courses/"+id+"/share", http.StatusSeeOther)
}

// HandleUnshare processes POST /courses/{id}/unshare. Revoking a grant
// that does not exist is a no-op.
func (h *Handler) HandleUnshare(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/courses")
		return
	}

	id := chi.URLParam(r, "id")
	customerID := strings.TrimSpace(r.FormValue("customer_id"))

	if err := h.Courses.Unshare(r.Context(), id, customerID); err != nil {
		h.ErrLog.LogServerError(w, r, "unshare course failed", err, "Unable to update sharing.", "/courses")
		return
	}

	flash.Success(w, r, "Sharing removed successfully")
	http.Redirect(w, r, "/courses/"+id+"/share", http.StatusSeeOther)
}
