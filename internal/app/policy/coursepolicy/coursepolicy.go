// Package coursepolicy centralizes course visibility and management
// decisions so handlers do not re-derive them from role checks.
package coursepolicy

import (
	"net/http"

	"github.com/dalemusser/traininghub/internal/app/policy/permissions"
	"github.com/dalemusser/traininghub/internal/app/system/authz"
	"github.com/dalemusser/traininghub/internal/domain/models"
)

// CanViewCourse reports whether the requester may open the given course.
// Platform admins see every course. Customer-scoped actors (customer
// admins and plain users) see courses their organization owns or that
// have been shared with it.
func CanViewCourse(r *http.Request, course models.Course) bool {
	actor := authz.Actor(r)
	if actor == nil {
		return false
	}
	if !permissions.Has(actor, permissions.Check{
		Action:   permissions.ActionRead,
		Resource: permissions.ResourceCourse,
	}) {
		return false
	}
	if actor.Role == models.RolePlatformAdmin {
		return true
	}
	if actor.CustomerID == "" {
		return false
	}
	return course.CustomerID == actor.CustomerID ||
		course.SharedWithCustomer(actor.CustomerID)
}

// CanManageCourse reports whether the requester may create, edit, or
// delete courses. Only platform admins hold those grants.
func CanManageCourse(r *http.Request) bool {
	return permissions.Has(authz.Actor(r), permissions.Check{
		Action:   permissions.ActionUpdate,
		Resource: permissions.ResourceCourse,
	})
}

// CanShareCourse reports whether the requester may change a course's
// shared-with list.
func CanShareCourse(r *http.Request) bool {
	return permissions.Has(authz.Actor(r), permissions.Check{
		Action:   permissions.ActionShare,
		Resource: permissions.ResourceCourse,
	})
}
