// internal/app/features/customers/delete.go
package customers

import (
	"net/http"

	"github.com/dalemusser/traininghub/internal/app/system/flash"
	"github.com/dalemusser/traininghub/internal/app/system/navigation"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDelete deletes a customer and redirects back to the list
// (or to a caller-provided return URL if present).
//
// Route: POST /customers/{id}/delete
// Authorization: RequireRole("platform_admin") middleware in routes.go.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	n, err := h.Customers.Delete(r.Context(), id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete customer failed", err, "Unable to delete customer.", "/customers")
		return
	}
	if n == 0 {
		h.Log.Info("customer delete: nothing to delete (idempotent)", zap.String("customer_id", id))
	} else {
		flash.Success(w, r, "Customer deleted successfully")
	}

	ret := navigation.SafeBackURL(r, navigation.CustomersBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
