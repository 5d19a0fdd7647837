// internal/domain/models/group.go
package models

import "time"

// Group types.
const (
	GroupTypeLocation = "location"
	GroupTypeClass    = "class"
	GroupTypeTeam     = "team"
)

// Group represents a cohort (location, class, or team) inside a customer
// tenant.
//
// NOTE:
//   - Membership is a flat list of user-account ids owned by the group.
//   - A group belongs to exactly one customer.
type Group struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NameCI      string `json:"name_ci"`
	Type        string `json:"type"` // location | class | team
	Description string `json:"description"`

	Members    []string `json:"members"`
	CustomerID string   `json:"customer_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasMember reports whether the given user account id belongs to the group.
func (g *Group) HasMember(userID string) bool {
	for _, m := range g.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// ValidGroupType reports whether t is one of the known group types.
func ValidGroupType(t string) bool {
	switch t {
	case GroupTypeLocation, GroupTypeClass, GroupTypeTeam:
		return true
	}
	return false
}
