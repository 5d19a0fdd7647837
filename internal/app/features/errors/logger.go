// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger pairs structured logging with user-facing error pages so
// handlers can report a failure in one call.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger. A nil logger is replaced with
// a no-op logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorLogger{log: logger}
}

// LogServerError logs the failure at error level and renders the generic
// server error page with userMsg. backURL may be empty; the page then
// resolves a safe back URL.
func (l *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	l.log.Error(logMsg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	RenderServerError(w, r, userMsg, backURL)
}

// LogBadRequest logs the failure at warn level and renders the generic
// server error page with userMsg.
func (l *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	l.log.Warn(logMsg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	RenderServerError(w, r, userMsg, backURL)
}

// LogNotFound logs at info level and renders the not-found page.
func (l *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, logMsg, userMsg, backURL string) {
	l.log.Info(logMsg,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	RenderNotFound(w, r, userMsg, backURL)
}
