// internal/app/features/home/back.go
package home

import (
	"net/http"

	"github.com/dalemusser/traininghub/internal/app/system/flash"
	"github.com/dalemusser/traininghub/internal/app/system/navigation"
)

// HandleBack processes the shared back button: pop the navigation
// history and return to the previous page. With no history it lands on
// the dashboard.
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	dest, moved := navigation.GoBack(w, r)
	if dest == "" {
		dest = "/dashboard"
	}
	if moved {
		flash.Info(w, r, "Navigated back")
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}
