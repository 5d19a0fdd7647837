// Package gates provides authorization gate functions for HTTP handlers.
// Gates check authentication and authorization, rendering appropriate error
// pages when checks fail.
//
// # Three-Tier Authorization Pattern
//
// TrainingHub uses a three-tier authorization approach:
//
//  1. Route-Level Middleware (auth.RequireSignedIn, auth.RequireRole)
//     Applied in routes.go files for coarse-grained access control.
//     Example: auth.RequireRole("platform_admin") ensures all routes in a
//     group require a platform admin. When middleware handles role checking,
//     handlers don't need gates.
//
//  2. Handler-Level Gates (this package)
//     Used in handlers that need role checks WITHOUT route-level middleware,
//     or need different role requirements than the route group.
//     Gates render error pages and return user context (role, name, userID).
//
//  3. Policy Layer (internal/app/policy/*)
//     Used for resource-specific authorization: the permissions rule table
//     plus store lookups. Example: grouppolicy.CanViewGroup checks whether
//     the user can see a specific group. Policies return booleans or
//     (bool, error) - callers handle error rendering.
//
// # When to Use Each Tier
//
// Use middleware when: All routes in a group have the same role requirements.
// Use gates when: Individual handlers need different role checks than the route.
// Use policies when: Authorization depends on the specific resource being accessed.
//
// # Avoiding Redundancy
//
// Don't use gates in handlers that are behind role-specific middleware.
// If routes.go has RequireRole("platform_admin"), handlers don't need
// gates.RequirePlatformAdmin. Instead, use authz.UserCtx(r) to get user
// context without re-checking role.
package gates

import (
	"net/http"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/app/system/authz"
	"github.com/dalemusser/traininghub/internal/domain/models"
)

// Result contains the result of an authorization gate check.
type Result struct {
	Role   string
	Name   string
	UserID string
	OK     bool
}

// RequireAuth ensures a user is authenticated.
// If not authenticated, it renders an unauthorized error and returns OK=false.
// The loginURL parameter specifies where to redirect for login.
func RequireAuth(w http.ResponseWriter, r *http.Request, loginURL string) Result {
	role, name, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, loginURL)
		return Result{OK: false}
	}
	return Result{Role: role, Name: name, UserID: uid, OK: true}
}

// RequirePlatformAdmin ensures the user is authenticated and is a platform
// admin. If not authenticated, renders unauthorized error. If authenticated
// but not a platform admin, renders forbidden error with the provided
// message and fallback URL.
func RequirePlatformAdmin(w http.ResponseWriter, r *http.Request, forbiddenMsg, fallbackURL string) Result {
	role, name, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return Result{OK: false}
	}
	if role != models.RolePlatformAdmin {
		uierrors.RenderForbidden(w, r, forbiddenMsg, fallbackURL)
		return Result{OK: false}
	}
	return Result{Role: role, Name: name, UserID: uid, OK: true}
}

// RequireAnyAdmin ensures the user is authenticated and is a platform admin
// or a customer admin.
func RequireAnyAdmin(w http.ResponseWriter, r *http.Request, forbiddenMsg, fallbackURL string) Result {
	role, name, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return Result{OK: false}
	}
	if role != models.RolePlatformAdmin && role != models.RoleCustomerAdmin {
		uierrors.RenderForbidden(w, r, forbiddenMsg, fallbackURL)
		return Result{OK: false}
	}
	return Result{Role: role, Name: name, UserID: uid, OK: true}
}

// RequireAnyRole ensures the user is authenticated and has one of the
// specified roles. If not authenticated, renders unauthorized error. If
// authenticated but role not in allowed list, renders forbidden error.
func RequireAnyRole(w http.ResponseWriter, r *http.Request, forbiddenMsg, fallbackURL string, allowedRoles ...string) Result {
	role, name, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return Result{OK: false}
	}

	for _, allowed := range allowedRoles {
		if role == allowed {
			return Result{Role: role, Name: name, UserID: uid, OK: true}
		}
	}

	uierrors.RenderForbidden(w, r, forbiddenMsg, fallbackURL)
	return Result{OK: false}
}
