// internal/app/features/customers/routes.go
package customers

import (
	"github.com/dalemusser/traininghub/internal/app/system/auth"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts all Customer routes under the base path
// (typically "/customers" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Customer admins can view and edit their own organization.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole(models.RolePlatformAdmin, models.RoleCustomerAdmin))

		pr.Get("/{id}/view", h.ServeView)
		pr.Get("/{id}/edit", h.ServeEdit)
		pr.Post("/{id}/edit", h.HandleEdit)
	})

	// Platform-admin-only routes.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole(models.RolePlatformAdmin))

		pr.Get("/", h.ServeList)
		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
