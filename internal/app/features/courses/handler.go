// internal/app/features/courses/handler.go
package courses

import (
	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	coursestore "github.com/dalemusser/traininghub/internal/app/store/courses"
	customerstore "github.com/dalemusser/traininghub/internal/app/store/customers"
	"github.com/dalemusser/traininghub/internal/app/system/completion"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for the course catalog,
// course content, sharing, and topic progress.
type Handler struct {
	Courses   *coursestore.Store
	Customers *customerstore.Store
	Completer *completion.Evaluator
	Log       *zap.Logger
	ErrLog    *uierrors.ErrorLogger
}

func NewHandler(courses *coursestore.Store, customers *customerstore.Store, completer *completion.Evaluator, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Courses:   courses,
		Customers: customers,
		Completer: completer,
		Log:       logger,
		ErrLog:    errLog,
	}
}
