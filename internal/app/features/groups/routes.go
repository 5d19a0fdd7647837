// internal/app/features/groups/routes.go
package groups

import (
	"github.com/dalemusser/traininghub/internal/app/system/auth"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts all group routes under the base path (typically
// "/groups" from bootstrap). Management is customer-admin work; the
// view page is also open to members and platform admins, with the
// policy layer deciding per group.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Get("/{id}/view", h.ServeView)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole(models.RolePlatformAdmin, models.RoleCustomerAdmin))
		pr.Get("/", h.ServeList)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole(models.RoleCustomerAdmin))
		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)
		pr.Get("/{id}/edit", h.ServeEdit)
		pr.Post("/{id}/edit", h.HandleEdit)
		pr.Post("/{id}/delete", h.HandleDelete)
		pr.Post("/{id}/members", h.HandleAddMember)
		pr.Post("/{id}/members/remove", h.HandleRemoveMember)
	})

	return r
}
