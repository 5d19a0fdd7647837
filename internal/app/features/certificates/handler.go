// internal/app/features/certificates/handler.go
package certificates

import (
	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	certificatestore "github.com/dalemusser/traininghub/internal/app/store/certificates"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for a user's own issued
// certificates.
type Handler struct {
	Certificates *certificatestore.Store
	Log          *zap.Logger
	ErrLog       *uierrors.ErrorLogger
}

func NewHandler(certificates *certificatestore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Certificates: certificates,
		Log:          logger,
		ErrLog:       errLog,
	}
}
