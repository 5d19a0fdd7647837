// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//
// AppConfig is where you put everything specific to YOUR application.
// The struct is passed to most lifecycle hooks, so any configuration
// needed during startup, request handling, or shutdown should live here.
type AppConfig struct {
	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionDomain string // Cookie domain (blank means current host)

	// Demo data loading. When true the in-memory stores boot with the
	// demo dataset (customers, staff, courses, certificates).
	SeedDemoData bool

	// Base URL for absolute links in rendered pages and emails
	BaseURL string // e.g., "https://traininghub.com" or "http://localhost:3000"
}
