// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	certificatestore "github.com/dalemusser/traininghub/internal/app/store/certificates"
	coursestore "github.com/dalemusser/traininghub/internal/app/store/courses"
	customerstore "github.com/dalemusser/traininghub/internal/app/store/customers"
	groupstore "github.com/dalemusser/traininghub/internal/app/store/groups"
	userstore "github.com/dalemusser/traininghub/internal/app/store/users"
	"github.com/dalemusser/traininghub/internal/app/system/gates"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"go.uber.org/zap"
)

type Handler struct {
	Customers    *customerstore.Store
	Users        *userstore.Store
	Groups       *groupstore.Store
	Courses      *coursestore.Store
	Certificates *certificatestore.Store
	Log          *zap.Logger
	ErrLog       *uierrors.ErrorLogger
}

func NewHandler(
	customers *customerstore.Store,
	users *userstore.Store,
	groups *groupstore.Store,
	courses *coursestore.Store,
	certificates *certificatestore.Store,
	errLog *uierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Customers:    customers,
		Users:        users,
		Groups:       groups,
		Courses:      courses,
		Certificates: certificates,
		Log:          logger,
		ErrLog:       errLog,
	}
}

// ServeDashboard dispatches to the role-specific dashboard view.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAuth(w, r, "/login")
	if !res.OK {
		return
	}

	switch res.Role {
	case models.RolePlatformAdmin:
		h.ServePlatformAdmin(w, r)
	case models.RoleCustomerAdmin:
		h.ServeCustomerAdmin(w, r)
	case models.RoleUser:
		h.ServeMyCourses(w, r)
	default:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
