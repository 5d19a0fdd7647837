// internal/app/features/customers/handler.go
package customers

import (
	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	customerstore "github.com/dalemusser/traininghub/internal/app/store/customers"
	userstore "github.com/dalemusser/traininghub/internal/app/store/users"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Customers.
type Handler struct {
	Customers *customerstore.Store
	Users     *userstore.Store
	Log       *zap.Logger
	ErrLog    *uierrors.ErrorLogger
}

// NewHandler constructs a new Customers handler bound to the stores and logger.
func NewHandler(customers *customerstore.Store, users *userstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Customers: customers,
		Users:     users,
		Log:       logger,
		ErrLog:    errLog,
	}
}
