// internal/domain/models/actor.go
package models

import "time"

// Actor is the authenticated identity driving permission checks.
// At most one actor exists per session; it is created at login, destroyed
// at logout, and immutable during its lifetime except LastLogin.
type Actor struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"` // platform_admin | customer_admin | user

	// CustomerID is the tenant the actor belongs to. Empty for platform
	// admins, which are not scoped to a single customer.
	CustomerID string `json:"customer_id,omitempty"`

	LastLogin *time.Time `json:"last_login,omitempty"`
}

// FullName returns the display name for the actor.
func (a *Actor) FullName() string {
	if a.FirstName == "" {
		return a.LastName
	}
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}
