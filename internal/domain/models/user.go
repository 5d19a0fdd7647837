// internal/domain/models/user.go
package models

import "time"

// UserAccount represents a person inside a customer tenant.
//
// NOTE:
//   - A user account belongs to exactly one customer (containment in
//     Customer.Users); CustomerID is carried here as well so accounts can
//     be resolved without walking every tenant.
//   - Group membership is optional and single-valued (GroupID).
type UserAccount struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	FullNameCI string `json:"full_name_ci"` // lowercase, diacritics-stripped
	Email      string `json:"email"`

	Role   string `json:"role"`   // platform_admin | customer_admin | user
	Status string `json:"status"` // active | inactive

	CustomerID string `json:"customer_id"`
	GroupID    string `json:"group_id,omitempty"`

	ProfilePicture string `json:"profile_picture,omitempty"`
	Bio            string `json:"bio,omitempty"`
	Location       string `json:"location,omitempty"`
	Timezone       string `json:"timezone,omitempty"`
	Language       string `json:"language,omitempty"`

	NotificationPreferences NotificationPreferences `json:"notification_preferences"`
	PrivacySettings         PrivacySettings         `json:"privacy_settings"`

	EmailVerified    bool `json:"email_verified"`
	TwoFactorEnabled bool `json:"two_factor_enabled"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// NotificationPreferences controls how a user is notified.
type NotificationPreferences struct {
	Email  bool   `json:"email"`
	InApp  bool   `json:"in_app"`
	Digest string `json:"digest"` // none | daily | weekly
}

// PrivacySettings controls what other users can see on a profile.
type PrivacySettings struct {
	ProfileVisibility string `json:"profile_visibility"` // public | organization | private
	ShowEmail         bool   `json:"show_email"`
	ShowLocation      bool   `json:"show_location"`
}

// FullName returns the display name for the account.
func (u *UserAccount) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
