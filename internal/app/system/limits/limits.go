// internal/app/system/limits/limits.go
package limits

// Request body size limits for form submissions.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxCourseFormSize is the maximum size for course create/edit
	// submissions, which carry rich-text descriptions.
	MaxCourseFormSize = 1 << 20 // 1 MB

	// MaxSettingsFormSize is the maximum size for settings form
	// submissions, including the footer HTML.
	MaxSettingsFormSize = 1 << 20 // 1 MB

	// MaxProfileFormSize is the maximum size for profile edit submissions.
	MaxProfileFormSize = 256 << 10 // 256 KB
)
