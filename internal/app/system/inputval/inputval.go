// Package inputval validates user-submitted field values. Validators are
// pure predicates; callers decide how to surface failures.
package inputval

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/dalemusser/traininghub/internal/domain/models"
)

// IsValidEmail reports whether the string is a plausible bare email
// address. Display-name forms ("Name <a@b>") are rejected; single-label
// domains are accepted for dev/test environments.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// ParseAddress accepts "Name <a@b>"; we only want the bare address.
	if addr.Address != email {
		return false
	}
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || domain == "" {
		return false
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(local, "..") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") || strings.Contains(domain, "..") {
		return false
	}
	return true
}

// IsValidHTTPURL reports whether the string is an absolute http(s) URL.
func IsValidHTTPURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsValidRole reports whether the string is one of the platform roles.
func IsValidRole(role string) bool {
	return models.ValidRole(strings.ToLower(strings.TrimSpace(role)))
}

// IsValidGroupType reports whether the string is a recognized group type.
func IsValidGroupType(t string) bool {
	return models.ValidGroupType(strings.ToLower(strings.TrimSpace(t)))
}

// IsValidSubscription reports whether the string is a recognized
// subscription tier.
func IsValidSubscription(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case models.SubscriptionBasic, models.SubscriptionPremium, models.SubscriptionEnterprise:
		return true
	}
	return false
}

// IsValidCourseStatus reports whether the string is a recognized course
// publication state.
func IsValidCourseStatus(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case models.CourseDraft, models.CoursePublished, models.CourseArchived:
		return true
	}
	return false
}

// IsValidRating reports whether the value is a usable topic rating.
func IsValidRating(n int) bool {
	return n >= 1 && n <= 5
}
