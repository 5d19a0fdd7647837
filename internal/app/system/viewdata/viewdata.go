// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"context"
	"html/template"
	"net/http"

	settingsstore "github.com/dalemusser/traininghub/internal/app/store/settings"
	"github.com/dalemusser/traininghub/internal/app/system/auth"
	"github.com/dalemusser/traininghub/internal/app/system/authz"
	"github.com/dalemusser/traininghub/internal/app/system/flash"
	"github.com/dalemusser/traininghub/internal/app/system/navigation"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(w, r, "Page Title", "/default-back"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	// Site settings
	SiteName   string
	LogoURL    string
	FooterHTML template.HTML

	// User context (from auth middleware)
	IsLoggedIn   bool
	Role         string
	UserName     string
	UserCustomer string // customer id for customer admins and users

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// Session history
	CanGoBack bool

	// CSRF protection
	CSRFToken string // Token for form submission

	// Queued notifications, drained on render
	Flashes []flash.Message
}

// settings is set by Init and used to populate site branding fields.
var settings *settingsstore.Store

// Init sets the settings store used for site branding. Call this once at
// startup from bootstrap.
func Init(s *settingsstore.Store) {
	settings = s
}

// NewBaseVM creates a fully populated BaseVM for a page. It drains queued
// flash messages, so call it once per rendered response.
//
// Parameters:
//   - w: the response writer (flash drain writes the session cookie)
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(w http.ResponseWriter, r *http.Request, title, backDefault string) BaseVM {
	role, name, _, signedIn := authz.UserCtx(r)

	vm := BaseVM{
		SiteName:    models.DefaultSiteName,
		IsLoggedIn:  signedIn,
		Role:        role,
		UserName:    name,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		CanGoBack:   navigation.History(r).CanGoBack(),
		CSRFToken:   csrf.Token(r),
		Flashes:     flash.Take(w, r),
	}

	if user, ok := auth.CurrentUser(r); ok {
		vm.UserCustomer = user.CustomerID
	}

	if settings != nil {
		s, err := settings.Get(r.Context())
		if err == nil {
			if s.SiteName != "" {
				vm.SiteName = s.SiteName
			}
			vm.FooterHTML = template.HTML(s.FooterHTML)
		}
	}

	return vm
}

// GetSiteName returns the site name from settings, or the default if not
// available.
func GetSiteName(ctx context.Context) string {
	if settings == nil {
		return models.DefaultSiteName
	}
	return settings.SiteName(ctx)
}
