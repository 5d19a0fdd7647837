// internal/app/features/settings/routes.go
package settings

import (
	"github.com/dalemusser/traininghub/internal/app/system/auth"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the settings routes under the base path (typically
// "/settings" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole(models.RolePlatformAdmin))
		pr.Get("/", h.ServeSite)
		pr.Post("/", h.HandleSite)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole(models.RoleCustomerAdmin))
		pr.Get("/company", h.ServeCompany)
		pr.Post("/company", h.HandleCompany)
	})

	return r
}
