// Package permissions holds the static role → permission rule table and
// the predicate that evaluates it.
//
// Authorization rules:
//   - platform_admin: full create/read/update/delete/share on courses,
//     full CRUD on users and customers, read/update settings
//   - customer_admin: read courses; create/read users, update/delete users
//     in their own organization; read customers, update their own
//     organization; create groups, read/update/delete groups in their own
//     organization
//   - user: read courses; read/update their own profile; read groups they
//     are a member of
//
// The predicate is pure: no side effects, no error path. Denial is simply
// a false return. Handlers use it to gate affordances; route middleware
// (auth.RequireRole) and the policy packages provide the other two tiers
// of enforcement.
package permissions

import "github.com/dalemusser/traininghub/internal/domain/models"

// Action is a verb an actor may perform on a resource.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionShare  Action = "share"
)

// Resource is a kind of entity actions apply to.
type Resource string

const (
	ResourceCourse   Resource = "course"
	ResourceUser     Resource = "user"
	ResourceCustomer Resource = "customer"
	ResourceSetting  Resource = "setting"
	ResourceGroup    Resource = "group"
)

// Condition narrows a rule to a relationship between the actor and the
// target entity. The zero value means the rule is unconditional.
type Condition int

const (
	// CondNone grants regardless of target.
	CondNone Condition = iota
	// CondOwnOrganization grants only when the target id is the actor's
	// customer id.
	CondOwnOrganization
	// CondOwnProfile grants only when the target id is the actor's own id.
	CondOwnProfile
	// CondMember grants for groups the actor belongs to. The rule table
	// does not resolve membership itself; grouppolicy performs the actual
	// membership check where a specific group is in hand.
	CondMember
)

// Rule is one entry in the role permission table.
type Rule struct {
	Action    Action
	Resource  Resource
	Condition Condition
}

// Check is a permission request evaluated against the table.
// TargetID identifies the specific entity for conditional rules: the
// customer id for own_organization, the user id for own_profile.
type Check struct {
	Action   Action
	Resource Resource
	TargetID string
}

// rolePermissions is the static rule table keyed by role.
var rolePermissions = map[string][]Rule{
	models.RolePlatformAdmin: {
		{Action: ActionCreate, Resource: ResourceCourse},
		{Action: ActionRead, Resource: ResourceCourse},
		{Action: ActionUpdate, Resource: ResourceCourse},
		{Action: ActionDelete, Resource: ResourceCourse},
		{Action: ActionShare, Resource: ResourceCourse},
		{Action: ActionCreate, Resource: ResourceUser},
		{Action: ActionRead, Resource: ResourceUser},
		{Action: ActionUpdate, Resource: ResourceUser},
		{Action: ActionDelete, Resource: ResourceUser},
		{Action: ActionCreate, Resource: ResourceCustomer},
		{Action: ActionRead, Resource: ResourceCustomer},
		{Action: ActionUpdate, Resource: ResourceCustomer},
		{Action: ActionDelete, Resource: ResourceCustomer},
		{Action: ActionRead, Resource: ResourceSetting},
		{Action: ActionUpdate, Resource: ResourceSetting},
	},
	models.RoleCustomerAdmin: {
		{Action: ActionRead, Resource: ResourceCourse},
		{Action: ActionCreate, Resource: ResourceUser},
		{Action: ActionRead, Resource: ResourceUser},
		{Action: ActionUpdate, Resource: ResourceUser, Condition: CondOwnOrganization},
		{Action: ActionDelete, Resource: ResourceUser, Condition: CondOwnOrganization},
		{Action: ActionRead, Resource: ResourceCustomer},
		{Action: ActionUpdate, Resource: ResourceCustomer, Condition: CondOwnOrganization},
		{Action: ActionCreate, Resource: ResourceGroup},
		{Action: ActionRead, Resource: ResourceGroup, Condition: CondOwnOrganization},
		{Action: ActionUpdate, Resource: ResourceGroup, Condition: CondOwnOrganization},
		{Action: ActionDelete, Resource: ResourceGroup, Condition: CondOwnOrganization},
	},
	models.RoleUser: {
		{Action: ActionRead, Resource: ResourceCourse},
		{Action: ActionRead, Resource: ResourceUser, Condition: CondOwnProfile},
		{Action: ActionUpdate, Resource: ResourceUser, Condition: CondOwnProfile},
		{Action: ActionRead, Resource: ResourceGroup, Condition: CondMember},
	},
}

// Has reports whether the actor may perform the requested action on the
// requested resource. A nil actor (unauthenticated) is always denied.
// When several rules match, any single grant is sufficient.
func Has(actor *models.Actor, check Check) bool {
	if actor == nil {
		return false
	}

	rules, ok := rolePermissions[actor.Role]
	if !ok {
		return false
	}

	for _, rule := range rules {
		if rule.Action != check.Action || rule.Resource != check.Resource {
			continue
		}
		if granted(actor, rule.Condition, check.TargetID) {
			return true
		}
	}
	return false
}

// granted evaluates a single rule's condition. The switch is exhaustive
// over Condition; an unknown value denies.
func granted(actor *models.Actor, cond Condition, targetID string) bool {
	switch cond {
	case CondNone:
		return true
	case CondOwnOrganization:
		return targetID != "" && targetID == actor.CustomerID
	case CondOwnProfile:
		return targetID != "" && targetID == actor.ID
	case CondMember:
		// Membership is resolved by grouppolicy where the group is known;
		// the table itself grants the capability.
		return true
	default:
		return false
	}
}

// Rules returns the rule list for a role. The returned slice is shared;
// callers must not mutate it.
func Rules(role string) []Rule {
	return rolePermissions[role]
}
