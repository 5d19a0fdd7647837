// internal/domain/models/roles.go
package models

// Role names used throughout the application. Roles are stored lowercase
// and compared lowercase.
const (
	RolePlatformAdmin = "platform_admin"
	RoleCustomerAdmin = "customer_admin"
	RoleUser          = "user"
)

// Entity status values shared by customers and user accounts.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)

// Customer subscription tiers.
const (
	SubscriptionBasic      = "basic"
	SubscriptionPremium    = "premium"
	SubscriptionEnterprise = "enterprise"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	switch role {
	case RolePlatformAdmin, RoleCustomerAdmin, RoleUser:
		return true
	}
	return false
}
