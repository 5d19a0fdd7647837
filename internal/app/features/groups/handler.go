// internal/app/features/groups/handler.go
package groups

import (
	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	customerstore "github.com/dalemusser/traininghub/internal/app/store/customers"
	groupstore "github.com/dalemusser/traininghub/internal/app/store/groups"
	userstore "github.com/dalemusser/traininghub/internal/app/store/users"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for group management.
type Handler struct {
	Groups    *groupstore.Store
	Users     *userstore.Store
	Customers *customerstore.Store
	Log       *zap.Logger
	ErrLog    *uierrors.ErrorLogger
}

func NewHandler(groups *groupstore.Store, users *userstore.Store, customers *customerstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Groups:    groups,
		Users:     users,
		Customers: customers,
		Log:       logger,
		ErrLog:    errLog,
	}
}
