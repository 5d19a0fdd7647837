// internal/domain/models/customer.go
package models

import "time"

// Customer is an organization tenant. It owns user accounts and is the
// tenancy boundary for groups and (via sharing) courses.
//
// Customer includes case/diacritic-insensitive fields for search/sort.
type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	NameCI   string `json:"name_ci"` // ← always stored
	Industry string `json:"industry"`

	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
	Email   string `json:"email"`

	Status           string `json:"status"`            // active | inactive | pending
	SubscriptionType string `json:"subscription_type"` // basic | premium | enterprise

	// Denormalized headline numbers shown on list rows and dashboards.
	TotalUsers     int `json:"total_users"`
	ActiveCourses  int `json:"active_courses"`
	CompletionRate int `json:"completion_rate"`

	LastActive time.Time `json:"last_active"`

	// Users owned by this tenant. A user account belongs to exactly one
	// customer by containment.
	Users []UserAccount `json:"users,omitempty"`

	Branding Branding `json:"branding"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Branding holds per-tenant visual identity.
type Branding struct {
	LogoURL string         `json:"logo_url,omitempty"`
	Colors  BrandingColors `json:"colors"`
}

// BrandingColors is the tenant color palette.
type BrandingColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`
	Tertiary  string `json:"tertiary,omitempty"`
}

// UserByID returns the embedded user account with the given id, if any.
func (c *Customer) UserByID(id string) (UserAccount, bool) {
	for _, u := range c.Users {
		if u.ID == id {
			return u, true
		}
	}
	return UserAccount{}, false
}
