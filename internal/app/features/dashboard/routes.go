// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/go-chi/chi/v5"
)

// The dashboard gate lives in the handler: ServeDashboard needs the role
// to dispatch anyway, so it checks auth itself instead of using middleware.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeDashboard)

	return r
}
