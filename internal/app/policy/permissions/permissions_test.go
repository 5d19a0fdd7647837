package permissions

import (
	"testing"

	"github.com/dalemusser/traininghub/internal/domain/models"
)

func actor(role, id, customerID string) *models.Actor {
	return &models.Actor{ID: id, Role: role, CustomerID: customerID}
}

func TestHas_EveryRoleCanReadCourses(t *testing.T) {
	roles := []string{models.RolePlatformAdmin, models.RoleCustomerAdmin, models.RoleUser}

	for _, role := range roles {
		t.Run(role, func(t *testing.T) {
			a := actor(role, "u1", "1")
			if !Has(a, Check{Action: ActionRead, Resource: ResourceCourse}) {
				t.Errorf("role %s should be able to read courses", role)
			}
		})
	}
}

func TestHas_NoActor(t *testing.T) {
	if Has(nil, Check{Action: ActionRead, Resource: ResourceCourse}) {
		t.Error("nil actor must always be denied")
	}
}

func TestHas_UnknownRole(t *testing.T) {
	a := actor("superuser", "u1", "1")
	if Has(a, Check{Action: ActionRead, Resource: ResourceCourse}) {
		t.Error("unknown role must be denied")
	}
}

func TestHas_OwnOrganizationCondition(t *testing.T) {
	admin := actor(models.RoleCustomerAdmin, "ca1", "1")

	tests := []struct {
		name     string
		check    Check
		want     bool
	}{
		{"update own customer", Check{ActionUpdate, ResourceCustomer, "1"}, true},
		{"update other customer", Check{ActionUpdate, ResourceCustomer, "2"}, false},
		{"update own org user", Check{ActionUpdate, ResourceUser, "1"}, true},
		{"delete other org user", Check{ActionDelete, ResourceUser, "2"}, false},
		{"read any customer", Check{ActionRead, ResourceCustomer, ""}, true},
		{"empty target denied for conditional rule", Check{ActionUpdate, ResourceCustomer, ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Has(admin, tt.check); got != tt.want {
				t.Errorf("Has(%+v) = %v, want %v", tt.check, got, tt.want)
			}
		})
	}
}

func TestHas_OwnProfileCondition(t *testing.T) {
	u := actor(models.RoleUser, "user1", "1")

	if !Has(u, Check{ActionUpdate, ResourceUser, "user1"}) {
		t.Error("user should be able to update their own profile")
	}
	if Has(u, Check{ActionUpdate, ResourceUser, "user2"}) {
		t.Error("user must not be able to update another profile")
	}
	if Has(u, Check{ActionDelete, ResourceUser, "user1"}) {
		t.Error("user must not be able to delete accounts, even their own")
	}
}

func TestHas_PlatformAdminUnconditional(t *testing.T) {
	admin := actor(models.RolePlatformAdmin, "admin1", "")

	checks := []Check{
		{ActionCreate, ResourceCourse, ""},
		{ActionShare, ResourceCourse, ""},
		{ActionDelete, ResourceCustomer, "2"},
		{ActionUpdate, ResourceSetting, ""},
	}
	for _, c := range checks {
		if !Has(admin, c) {
			t.Errorf("platform admin denied %v %v", c.Action, c.Resource)
		}
	}
}

func TestHas_PlatformAdminHasNoGroupRules(t *testing.T) {
	admin := actor(models.RolePlatformAdmin, "admin1", "")
	if Has(admin, Check{ActionRead, ResourceGroup, "1"}) {
		t.Error("platform admin carries no group rules in the table")
	}
}

func TestHas_MemberConditionGrants(t *testing.T) {
	// The table grants group reads for the user role; actual membership
	// verification happens at the policy layer.
	u := actor(models.RoleUser, "user1", "1")
	if !Has(u, Check{ActionRead, ResourceGroup, "g1"}) {
		t.Error("user role should carry the group read capability")
	}
}

func TestHas_CustomerAdminCannotShareCourses(t *testing.T) {
	admin := actor(models.RoleCustomerAdmin, "ca1", "1")
	if Has(admin, Check{ActionShare, ResourceCourse, ""}) {
		t.Error("customer admin must not share courses")
	}
	if Has(admin, Check{ActionCreate, ResourceCourse, ""}) {
		t.Error("customer admin must not create courses")
	}
}
