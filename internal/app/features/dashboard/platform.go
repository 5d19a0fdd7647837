// internal/app/features/dashboard/platform.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/traininghub/internal/app/system/viewdata"
	"github.com/dalemusser/traininghub/internal/domain/metrics"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type platformData struct {
	viewdata.BaseVM

	CustomersCount    int
	UsersCount        int
	CoursesCount      int
	CertificatesCount int
	CompletionRate    int
}

// ServePlatformAdmin renders platform-wide totals and the completion rate
// across every topic of every course.
func (h *Handler) ServePlatformAdmin(w http.ResponseWriter, r *http.Request) {
	courses, err := h.Courses.List(r.Context())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list courses failed", err, "Unable to load dashboard.", "/")
		return
	}

	data := platformData{
		BaseVM:            viewdata.NewBaseVM(w, r, "Platform Dashboard", "/"),
		CustomersCount:    h.Customers.Count(r.Context()),
		UsersCount:        h.Users.Count(r.Context()),
		CoursesCount:      len(courses),
		CertificatesCount: h.Certificates.Count(r.Context()),
		CompletionRate:    metrics.CompletionRate(courses),
	}

	h.Log.Debug("platform dashboard served", zap.String("user", data.UserName))

	templates.Render(w, r, "dashboard_platform", data)
}
