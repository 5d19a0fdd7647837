// internal/app/features/settings/handler.go
package settings

import (
	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	customerstore "github.com/dalemusser/traininghub/internal/app/store/customers"
	settingsstore "github.com/dalemusser/traininghub/internal/app/store/settings"
	"go.uber.org/zap"
)

// Handler serves the platform-wide site settings (platform admins) and
// the per-tenant company settings (customer admins).
type Handler struct {
	Settings  *settingsstore.Store
	Customers *customerstore.Store
	Log       *zap.Logger
	ErrLog    *uierrors.ErrorLogger
}

func NewHandler(settings *settingsstore.Store, customers *customerstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Settings:  settings,
		Customers: customers,
		Log:       logger,
		ErrLog:    errLog,
	}
}
