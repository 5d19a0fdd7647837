// internal/app/policy/grouppolicy.go
package grouppolicy

import (
	"context"
	"net/http"

	"github.com/dalemusser/traininghub/internal/app/policy/permissions"
	groupstore "github.com/dalemusser/traininghub/internal/app/store/groups"
	"github.com/dalemusser/traininghub/internal/app/system/authz"
	"github.com/dalemusser/traininghub/internal/domain/models"
)

// IsMember returns true if the given user is in the group's member list
// according to the authoritative group store.
func IsMember(ctx context.Context, groups *groupstore.Store, groupID, userID string) (bool, error) {
	g, err := groups.GetByID(ctx, groupID)
	if err != nil {
		return false, err
	}
	return g.HasMember(userID), nil
}

// CanViewGroup reports whether the current request user can see the group:
//   - Platform admins always can
//   - Customer admins can see groups in their own customer
//   - Users can see a group only if they are actually a member (the rule
//     table's member condition grants read; the membership itself is
//     resolved here)
//
// Returns an error only when the store lookup fails, so callers can
// distinguish "not authorized" (false, nil) from "lookup error".
func CanViewGroup(ctx context.Context, groups *groupstore.Store, r *http.Request, group models.Group) (bool, error) {
	actor := authz.Actor(r)
	if actor == nil {
		return false, nil
	}
	if actor.Role == models.RolePlatformAdmin {
		return true, nil
	}
	if !permissions.Has(actor, permissions.Check{
		Action:   permissions.ActionRead,
		Resource: permissions.ResourceGroup,
		TargetID: group.CustomerID,
	}) {
		return false, nil
	}
	if actor.Role == models.RoleCustomerAdmin {
		// own_organization was already enforced by the rule table.
		return true, nil
	}
	// Plain users: the grant is conditional on real membership.
	return IsMember(ctx, groups, group.ID, actor.ID)
}

// CanManageGroup reports whether the current request user can create, edit,
// or delete the group. Only customer admins manage groups, and only within
// their own customer.
func CanManageGroup(r *http.Request, group models.Group) bool {
	actor := authz.Actor(r)
	return permissions.Has(actor, permissions.Check{
		Action:   permissions.ActionUpdate,
		Resource: permissions.ResourceGroup,
		TargetID: group.CustomerID,
	})
}
