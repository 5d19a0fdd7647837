package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/dalemusser/traininghub/internal/app/system/auth"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok || rctx == nil {
		rctx = chi.NewRouteContext()
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}
	rctx.URLParams.Add(key, value)
	return r
}

// TestUser represents user data for testing HTTP handlers.
type TestUser struct {
	ID         string
	Name       string
	Email      string
	Role       string
	CustomerID string
}

// PlatformAdmin returns a TestUser matching the seeded platform admin.
func PlatformAdmin() TestUser {
	return TestUser{
		ID:    "admin1",
		Name:  "Admin User",
		Email: "admin@traininghub.com",
		Role:  models.RolePlatformAdmin,
	}
}

// CustomerAdmin returns a TestUser matching the seeded customer admin.
func CustomerAdmin() TestUser {
	return TestUser{
		ID:         "customer1",
		Name:       "Customer Admin",
		Email:      "customer@belfasttrust.hscni.net",
		Role:       models.RoleCustomerAdmin,
		CustomerID: "1",
	}
}

// RegularUser returns a TestUser matching the seeded regular user.
func RegularUser() TestUser {
	return TestUser{
		ID:         "user1",
		Name:       "Regular User",
		Email:      "user@belfasttrust.hscni.net",
		Role:       models.RoleUser,
		CustomerID: "1",
	}
}

// WithUser adds a user to the request context for testing authenticated
// handlers. This bypasses the session middleware and injects the user
// directly.
func WithUser(r *http.Request, user TestUser) *http.Request {
	sessionUser := &auth.SessionUser{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		CustomerID: user.CustomerID,
	}
	return auth.WithUser(r, sessionUser)
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewAuthenticatedRequest creates an HTTP request with a user in context.
func NewAuthenticatedRequest(method, target string, user TestUser) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return WithUser(req, user)
}
