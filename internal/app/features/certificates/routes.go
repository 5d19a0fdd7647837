// internal/app/features/certificates/routes.go
package certificates

import (
	"github.com/dalemusser/traininghub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the certificate routes under the base path (typically
// "/certificates" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Get("/", h.ServeList)
		pr.Get("/{id}/view", h.ServeView)
		pr.Get("/{id}/download", h.ServeDownload)
	})

	return r
}
