// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for TrainingHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: session_key, seed_demo_data, etc.
//   - Environment variables: TRAININGHUB_SESSION_KEY, TRAININGHUB_SEED_DEMO_DATA, etc.
//   - Command-line flags: --session_key, --seed_demo_data, etc.
// devSessionKey is the checked-in development signing key. ValidateConfig
// rejects it in production.
const devSessionKey = "dev-only-change-me-please-0123456789ABCDEF"

var appConfigKeys = []config.AppKey{
	{Name: "session_key", Default: devSessionKey, Desc: "Session signing key (must be strong in production)"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "seed_demo_data", Default: true, Desc: "Load the demo dataset into the in-memory stores on boot"},
	{Name: "base_url", Default: "http://localhost:3000", Desc: "Base URL for absolute links"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, TRAININGHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "TRAININGHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SessionKey:    appValues.String("session_key"),
		SessionDomain: appValues.String("session_domain"),
		SeedDemoData:  appValues.Bool("seed_demo_data"),
		BaseURL:       appValues.String("base_url"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
//
// TrainingHub refuses to start in production with the development
// session key, since that key is public in the repository.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.SessionKey == "" {
		return fmt.Errorf("session_key must not be empty")
	}
	if coreCfg.Env == "prod" {
		if appCfg.SessionKey == devSessionKey {
			return fmt.Errorf("session_key must be changed from the development default in production")
		}
		if len(appCfg.SessionKey) < 32 {
			return fmt.Errorf("session_key must be at least 32 characters in production")
		}
	}
	return nil
}
