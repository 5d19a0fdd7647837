// internal/app/features/profile/routes.go
package profile

import (
	"github.com/dalemusser/traininghub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the profile routes under the base path (typically
// "/profile" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Get("/", h.ServeView)
		pr.Get("/edit", h.ServeEdit)
		pr.Post("/edit", h.HandleEdit)
	})

	return r
}
