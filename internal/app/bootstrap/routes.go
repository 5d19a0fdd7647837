// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	certificatesfeature "github.com/dalemusser/traininghub/internal/app/features/certificates"
	coursesfeature "github.com/dalemusser/traininghub/internal/app/features/courses"
	customersfeature "github.com/dalemusser/traininghub/internal/app/features/customers"
	dashboardfeature "github.com/dalemusser/traininghub/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/traininghub/internal/app/features/errors"
	groupsfeature "github.com/dalemusser/traininghub/internal/app/features/groups"
	healthfeature "github.com/dalemusser/traininghub/internal/app/features/health"
	homefeature "github.com/dalemusser/traininghub/internal/app/features/home"
	loginfeature "github.com/dalemusser/traininghub/internal/app/features/login"
	logoutfeature "github.com/dalemusser/traininghub/internal/app/features/logout"
	profilefeature "github.com/dalemusser/traininghub/internal/app/features/profile"
	settingsfeature "github.com/dalemusser/traininghub/internal/app/features/settings"
	usersfeature "github.com/dalemusser/traininghub/internal/app/features/users"
	"github.com/dalemusser/traininghub/internal/app/system/auth"
	"github.com/dalemusser/traininghub/internal/app/system/navigation"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the stores bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// TrainingHub initializes the template engine, applies session, CSRF, and
// navigation middleware, and mounts feature routers for all application
// areas: home, login, dashboard, customers, users, groups, courses,
// certificates, settings, and profile.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	secure := coreCfg.Env == "prod"

	r := chi.NewRouter()

	// Global auth middleware: loads the session user into context if
	// signed in, making it available to all handlers via auth.CurrentUser.
	r.Use(auth.LoadSessionUser)

	// Every form in the app carries a gorilla/csrf token.
	r.Use(csrf.Protect([]byte(appCfg.SessionKey), csrf.Secure(secure), csrf.Path("/")))

	// Track page visits so the Back control can walk real history.
	r.Use(navigation.Track)

	// Static assets
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(deps.Users, errLog, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)
	r.NotFound(errorsHandler.NotFound)

	// Role-based dashboards
	dashboardHandler := dashboardfeature.NewHandler(deps.Customers, deps.Users, deps.Groups, deps.Courses, deps.Certificates, errLog, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

	// Customer organization management
	customersHandler := customersfeature.NewHandler(deps.Customers, deps.Users, errLog, logger)
	r.Mount("/customers", customersfeature.Routes(customersHandler))

	// User management
	usersHandler := usersfeature.NewHandler(deps.Users, deps.Groups, deps.Customers, errLog, logger)
	r.Mount("/users", usersfeature.Routes(usersHandler))

	// Group management
	groupsHandler := groupsfeature.NewHandler(deps.Groups, deps.Users, deps.Customers, errLog, logger)
	r.Mount("/groups", groupsfeature.Routes(groupsHandler))

	// Course catalog, progress, and sharing
	coursesHandler := coursesfeature.NewHandler(deps.Courses, deps.Customers, deps.Completer, errLog, logger)
	r.Mount("/courses", coursesfeature.Routes(coursesHandler))

	// Certificates and PDF downloads
	certificatesHandler := certificatesfeature.NewHandler(deps.Certificates, errLog, logger)
	r.Mount("/certificates", certificatesfeature.Routes(certificatesHandler))

	// Site and company settings
	settingsHandler := settingsfeature.NewHandler(deps.Settings, deps.Customers, errLog, logger)
	r.Mount("/settings", settingsfeature.Routes(settingsHandler))

	// Self-service profile
	profileHandler := profilefeature.NewHandler(deps.Users, deps.Groups, deps.Customers, errLog, logger)
	r.Mount("/profile", profilefeature.Routes(profileHandler))

	// Liveness endpoint for load balancers
	healthHandler := healthfeature.NewHandler(deps.Customers, deps.Users, deps.Groups, deps.Courses, deps.Certificates, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	return r, nil
}
