// internal/app/features/dashboard/member.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/traininghub/internal/app/system/authz"
	"github.com/dalemusser/traininghub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

type myCoursesData struct {
	viewdata.BaseVM

	Courses           []courseRow
	CertificatesCount int
}

// ServeMyCourses renders the regular user's dashboard: the courses visible
// to their organization with per-course progress, plus their certificate
// count.
func (h *Handler) ServeMyCourses(w http.ResponseWriter, r *http.Request) {
	_, _, userID, _ := authz.UserCtx(r)
	customerID := authz.UserCustomerID(r)

	courses, err := h.Courses.ListVisibleTo(r.Context(), customerID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list courses failed", err, "Unable to load dashboard.", "/")
		return
	}

	certs, err := h.Certificates.ListByUser(r.Context(), userID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list certificates failed", err, "Unable to load dashboard.", "/")
		return
	}

	data := myCoursesData{
		BaseVM:            viewdata.NewBaseVM(w, r, "My Courses", "/"),
		Courses:           courseRows(courses),
		CertificatesCount: len(certs),
	}

	templates.Render(w, r, "dashboard_my_courses", data)
}
