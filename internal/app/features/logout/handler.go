// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/dalemusser/traininghub/internal/app/system/auth"
	"github.com/dalemusser/traininghub/internal/app/system/flash"
	"github.com/dalemusser/traininghub/internal/app/system/navigation"
	"go.uber.org/zap"
)

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeLogout handles GET and POST /logout.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(w, r); err != nil {
		// Log and continue; the redirect still lands the user on the
		// public home page.
		h.Log.Warn("sign out failed", zap.Error(err))
	}

	// The signed-out visitor starts a fresh history.
	if err := navigation.Reset(w, r); err != nil {
		h.Log.Warn("reset navigation history failed", zap.Error(err))
	}

	flash.Success(w, r, "Logged out successfully")

	// HTMX handling: use HX-Redirect to force a client-side navigation to "/".
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
