// Package userpolicy decides who may view and edit user accounts.
package userpolicy

import (
	"net/http"

	"github.com/dalemusser/traininghub/internal/app/policy/permissions"
	"github.com/dalemusser/traininghub/internal/app/system/authz"
	"github.com/dalemusser/traininghub/internal/domain/models"
)

// CanViewUser reports whether the requester may open the given account's
// detail page. Platform admins see everyone, customer admins see accounts
// in their own organization, and plain users see only themselves.
func CanViewUser(r *http.Request, target models.UserAccount) bool {
	actor := authz.Actor(r)
	if actor == nil {
		return false
	}
	switch actor.Role {
	case models.RolePlatformAdmin:
		return true
	case models.RoleCustomerAdmin:
		return actor.CustomerID != "" && actor.CustomerID == target.CustomerID
	default:
		return permissions.Has(actor, permissions.Check{
			Action:   permissions.ActionRead,
			Resource: permissions.ResourceUser,
			TargetID: target.ID,
		})
	}
}

// CanEditUser reports whether the requester may change the given account.
// The rule table scopes customer admins to their own organization and
// plain users to their own profile.
func CanEditUser(r *http.Request, target models.UserAccount) bool {
	actor := authz.Actor(r)
	if actor == nil {
		return false
	}
	targetID := target.ID
	if actor.Role == models.RoleCustomerAdmin {
		targetID = target.CustomerID
	}
	return permissions.Has(actor, permissions.Check{
		Action:   permissions.ActionUpdate,
		Resource: permissions.ResourceUser,
		TargetID: targetID,
	})
}

// CanDeleteUser reports whether the requester may remove the given
// account. Self-deletion is never allowed.
func CanDeleteUser(r *http.Request, target models.UserAccount) bool {
	actor := authz.Actor(r)
	if actor == nil || actor.ID == target.ID {
		return false
	}
	targetID := target.ID
	if actor.Role == models.RoleCustomerAdmin {
		targetID = target.CustomerID
	}
	return permissions.Has(actor, permissions.Check{
		Action:   permissions.ActionDelete,
		Resource: permissions.ResourceUser,
		TargetID: targetID,
	})
}

// CanCreateUser reports whether the requester may create accounts.
func CanCreateUser(r *http.Request) bool {
	return permissions.Has(authz.Actor(r), permissions.Check{
		Action:   permissions.ActionCreate,
		Resource: permissions.ResourceUser,
	})
}
