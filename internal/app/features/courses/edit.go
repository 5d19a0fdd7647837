// internal/app/features/courses/edit.go
package courses

import (
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/app/system/flash"
	"github.com/dalemusser/traininghub/internal/app/system/formutil"
	"github.com/dalemusser/traininghub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/traininghub/internal/app/system/inputval"
	"github.com/dalemusser/traininghub/internal/app/system/limits"
	"github.com/dalemusser/traininghub/internal/app/system/navigation"
	"github.com/dalemusser/traininghub/internal/app/system/normalize"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// ServeEdit renders the Edit Course page.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	course, err := h.Courses.GetByID(r.Context(), id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Course not found.", "/courses")
		return
	}

	customers, err := h.Customers.List(r.Context())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list customers failed", err, "Unable to load the form.", "/courses")
		return
	}

	data := editData{
		ID: course.ID,
		formFields: formFields{
			Title:       course.Title,
			Description: course.Description,
			Status:      course.Status,
			CustomerID:  course.CustomerID,
		},
		Statuses:  courseStatuses(),
		Customers: customers,
	}
	formutil.SetBase(&data.Base, w, r, "Edit Course", "/courses")

	templates.Render(w, r, "course_edit", data)
}

// HandleEdit processes the Edit Course form POST. Module and topic
// content is untouched; only the course-level fields change.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxCourseFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/courses")
		return
	}

	id := chi.URLParam(r, "id")

	course, err := h.Courses.GetByID(r.Context(), id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Course not found.", "/courses")
		return
	}

	fields := formFields{
		Title:       normalize.Name(r.FormValue("title")),
		Description: htmlsanitize.Sanitize(strings.TrimSpace(r.FormValue("description"))),
		Status:      strings.ToLower(strings.TrimSpace(r.FormValue("status"))),
		CustomerID:  strings.TrimSpace(r.FormValue("customer_id")),
	}

	renderWithError := func(msg string) {
		customers, err := h.Customers.List(r.Context())
		if err != nil {
			h.ErrLog.LogServerError(w, r, "list customers failed", err, "Unable to load the form.", "/courses")
			return
		}
		data := editData{ID: course.ID, formFields: fields, Statuses: courseStatuses(), Customers: customers}
		formutil.SetBase(&data.Base, w, r, "Edit Course", "/courses")
		data.SetError(msg)
		templates.Render(w, r, "course_edit", data)
	}

	if fields.Title == "" {
		renderWithError("A course title is required.")
		return
	}
	if !inputval.IsValidCourseStatus(fields.Status) {
		renderWithError("Please choose a valid status.")
		return
	}
	if fields.CustomerID == "" {
		renderWithError("Please choose an owning organization.")
		return
	}

	course.Title = fields.Title
	course.Description = fields.Description
	course.Status = fields.Status
	course.CustomerID = fields.CustomerID

	if err := h.Courses.Update(r.Context(), course); err != nil {
		h.ErrLog.LogServerError(w, r, "update course failed", err, "Unable to save the course.", "/courses")
		return
	}

	flash.Success(w, r, "Course saved successfully")

	ret := navigation.SafeBackURL(r, navigation.CoursesBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
