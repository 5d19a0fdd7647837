// internal/app/features/courses/routes.go
package courses

import (
	"github.com/dalemusser/traininghub/internal/app/system/auth"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts all course routes under the base path (typically
// "/courses" from bootstrap). Browsing and topic progress are open to
// every signed-in role, with the policy layer scoping visibility per
// course; catalog management and sharing are platform-admin work.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Get("/", h.ServeList)
		pr.Get("/{id}/view", h.ServeView)
		pr.Post("/{id}/modules/{moduleID}/topics/{topicID}/complete", h.HandleCompleteTopic)
		pr.Post("/{id}/modules/{moduleID}/topics/{topicID}/rate", h.HandleRateTopic)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole(models.RolePlatformAdmin))
		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)
		pr.Get("/{id}/edit", h.ServeEdit)
		pr.Post("/{id}/edit", h.HandleEdit)
		pr.Post("/{id}/delete", h.HandleDelete)
		pr.Get("/{id}/share", h.ServeShare)
		pr.Post("/{id}/share", h.HandleShare)
		pr.Post("/{id}/unshare", h.HandleUnshare)
	})

	return r
}
