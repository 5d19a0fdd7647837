// internal/app/features/health/handler.go
package health

import (
	"encoding/json"
	"net/http"

	certificatestore "github.com/dalemusser/traininghub/internal/app/store/certificates"
	coursestore "github.com/dalemusser/traininghub/internal/app/store/courses"
	customerstore "github.com/dalemusser/traininghub/internal/app/store/customers"
	groupstore "github.com/dalemusser/traininghub/internal/app/store/groups"
	userstore "github.com/dalemusser/traininghub/internal/app/store/users"
	"go.uber.org/zap"
)

// Handler holds the stores reported by the health check.
type Handler struct {
	Customers    *customerstore.Store
	Users        *userstore.Store
	Groups       *groupstore.Store
	Courses      *coursestore.Store
	Certificates *certificatestore.Store
	Log          *zap.Logger
}

func NewHandler(customers *customerstore.Store, users *userstore.Store, groups *groupstore.Store, courses *coursestore.Store, certificates *certificatestore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Customers:    customers,
		Users:        users,
		Groups:       groups,
		Courses:      courses,
		Certificates: certificates,
		Log:          logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string         `json:"status"`
	Entities map[string]int `json:"entities"`
}

// Serve handles GET /health.
//
// Always 200 with entity counts:
//
//	{ "status":"ok", "entities":{"customers":3,"users":12,...} }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp := healthResponse{
		Status: "ok",
		Entities: map[string]int{
			"customers":    h.Customers.Count(ctx),
			"users":        h.Users.Count(ctx),
			"groups":       h.Groups.Count(ctx),
			"courses":      h.Courses.Count(ctx),
			"certificates": h.Certificates.Count(ctx),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Log.Error("health-check: encode response failed", zap.Error(err))
	}
}
