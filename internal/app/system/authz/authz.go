// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/dalemusser/traininghub/internal/app/system/auth"
	"github.com/dalemusser/traininghub/internal/domain/models"
)

// UserCtx returns the user's role (lowercased), name, id, and a found flag.
// If no user is present in context, it returns "visitor", "", "", false so
// callers can trust that ok=true means a valid, authenticated user.
func UserCtx(r *http.Request) (role string, name string, userID string, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok || user.ID == "" {
		return "visitor", "", "", false
	}
	return strings.ToLower(user.Role), user.Name, user.ID, true
}

// IsPlatformAdmin reports whether the current request's user is a platform admin.
func IsPlatformAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == models.RolePlatformAdmin
}

// IsCustomerAdmin reports whether the current request's user is a customer admin.
func IsCustomerAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == models.RoleCustomerAdmin
}

// IsUser reports whether the current request's user has the plain user role.
func IsUser(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == models.RoleUser
}

// HasAnyRole reports whether the current user's role is one of the given roles.
func HasAnyRole(r *http.Request, roles ...string) bool {
	role, _, _, ok := UserCtx(r)
	if !ok {
		return false
	}
	for _, want := range roles {
		if role == strings.ToLower(want) {
			return true
		}
	}
	return false
}

// UserCustomerID returns the current user's customer id, or "" if the user
// is not signed in or belongs to no customer (platform admins).
func UserCustomerID(r *http.Request) string {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return ""
	}
	return user.CustomerID
}

// Actor returns the current user as a permission-table actor, or nil when
// not signed in.
func Actor(r *http.Request) *models.Actor {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return nil
	}
	return user.Actor()
}
