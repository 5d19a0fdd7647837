// internal/app/features/profile/handler.go
package profile

import (
	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	customerstore "github.com/dalemusser/traininghub/internal/app/store/customers"
	groupstore "github.com/dalemusser/traininghub/internal/app/store/groups"
	userstore "github.com/dalemusser/traininghub/internal/app/store/users"
	"go.uber.org/zap"
)

// Handler serves the signed-in user's own profile.
type Handler struct {
	Users     *userstore.Store
	Groups    *groupstore.Store
	Customers *customerstore.Store
	Log       *zap.Logger
	ErrLog    *uierrors.ErrorLogger
}

func NewHandler(users *userstore.Store, groups *groupstore.Store, customers *customerstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:     users,
		Groups:    groups,
		Customers: customers,
		Log:       logger,
		ErrLog:    errLog,
	}
}
