// internal/app/features/courses/new.go
package courses

import (
	"net/http"
	"strings"

	"github.com/dalemusser/traininghub/internal/app/system/flash"
	"github.com/dalemusser/traininghub/internal/app/system/formutil"
	"github.com/dalemusser/traininghub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/traininghub/internal/app/system/inputval"
	"github.com/dalemusser/traininghub/internal/app/system/limits"
	"github.com/dalemusser/traininghub/internal/app/system/navigation"
	"github.com/dalemusser/traininghub/internal/app/system/normalize"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

func courseStatuses() []string {
	return []string{models.CourseDraft, models.CoursePublished, models.CourseArchived}
}

// ServeNew renders the "Add Course" form. Route middleware restricts
// course management to platform admins.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Customers.List(r.Context())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list customers failed", err, "Unable to load the form.", "/courses")
		return
	}

	data := newData{
		formFields: formFields{Status: models.CourseDraft},
		Statuses:   courseStatuses(),
		Customers:  customers,
	}
	formutil.SetBase(&data.Base, w, r, "Add Course", "/courses")

	templates.Render(w, r, "course_new", data)
}

// HandleCreate processes the Add Course form submission. The rich-text
// description is sanitized before it is stored.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxCourseFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/courses")
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
		data := newData{formFields: fields, Statuses: courseStatuses(), Customers: customers}
		formutil.SetBase(&data.Base, w, r, "Add Course", "/courses")
		data.SetError(msg)
		templates.Render(w, r, "course_new", data)
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

	course := models.Course{
		Title:       fields.Title,
		Description: fields.Description,
		Status:      fields.Status,
		CustomerID:  fields.CustomerID,
	}

	if _, err := h.Courses.Create(r.Context(), course); err != nil {
		h.ErrLog.LogServerError(w, r, "create course failed", err, "Unable to create the course.", "/courses")
		return
	}

	flash.Success(w, r, "Course created successfully")

	ret := navigation.SafeBackURL(r, navigation.CoursesBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
