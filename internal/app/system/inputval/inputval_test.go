package inputval

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		// Valid emails
		{"user@example.com", true},
		{"user.name@example.com", true},
		{"user+tag@example.com", true},
		{"user@subdomain.example.com", true},
		{"user123@example.co.uk", true},
		{"a@b.co", true},
		{"user@localhost", true}, // RFC 5322 allows single-label domains

		// Invalid emails - empty/whitespace
		{"", false},
		{"   ", false},

		// Invalid emails - missing parts
		{"user", false},
		{"user@", false},
		{"@example.com", false},

		// Invalid emails - bad dot placement
		{".user@example.com", false},
		{"user.@example.com", false},
		{"user..name@example.com", false},
		{"user@.example.com", false},
		{"user@example..com", false},

		// Invalid emails - display name format (should be rejected)
		{"User Name <user@example.com>", false},

		// Invalid emails - other malformed
		{"user @example.com", false},
		{"user@ example.com", false},
		{"user@exam ple.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			got := IsValidEmail(tt.email)
			if got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsValidHTTPURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		// Valid URLs
		{"http://example.com", true},
		{"https://example.com", true},
		{"http://example.com/path", true},
		{"https://example.com/path?query=1", true},
		{"http://localhost:8080", true},
		{"https://sub.domain.example.com", true},

		// Valid with whitespace (trimmed)
		{"  https://example.com  ", true},

		// Invalid URLs
		{"", false},
		{"   ", false},
		{"ftp://example.com", false},
		{"mailto:user@example.com", false},
		{"example.com", false},
		{"//example.com", false},
		{"not a url", false},
		{"file:///path/to/file", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got := IsValidHTTPURL(tt.url)
			if got != tt.want {
				t.Errorf("IsValidHTTPURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{"platform_admin", true},
		{"customer_admin", true},
		{"user", true},
		{"PLATFORM_ADMIN", true},
		{"  user  ", true},
		{"", false},
		{"admin", false},
		{"superadmin", false},
		{"visitor", false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			if got := IsValidRole(tt.role); got != tt.want {
				t.Errorf("IsValidRole(%q) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestIsValidGroupType(t *testing.T) {
	tests := []struct {
		typ  string
		want bool
	}{
		{"location", true},
		{"class", true},
		{"team", true},
		{"Team", true},
		{"", false},
		{"department", false},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			if got := IsValidGroupType(tt.typ); got != tt.want {
				t.Errorf("IsValidGroupType(%q) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestIsValidRating(t *testing.T) {
	for n, want := range map[int]bool{0: false, 1: true, 3: true, 5: true, 6: false, -1: false} {
		if got := IsValidRating(n); got != want {
			t.Errorf("IsValidRating(%d) = %v, want %v", n, got, want)
		}
	}
}
