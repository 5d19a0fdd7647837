// internal/app/features/settings/site.go
package settings

import (
	"net/http"
	"strings"

	"github.com/dalemusser/traininghub/internal/app/system/authz"
	"github.com/dalemusser/traininghub/internal/app/system/flash"
	"github.com/dalemusser/traininghub/internal/app/system/formutil"
	"github.com/dalemusser/traininghub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/traininghub/internal/app/system/inputval"
	"github.com/dalemusser/traininghub/internal/app/system/limits"
	"github.com/dalemusser/traininghub/internal/app/system/normalize"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

// siteFields holds the echoed values of the site settings form.
type siteFields struct {
	SiteName   string
	SupportURL string
	FooterHTML string
}

// siteData feeds the settings_site template.
type siteData struct {
	formutil.Base
	siteFields
	UpdatedByName string
	UpdatedAt     string
}

// ServeSite renders the platform settings form.
func (h *Handler) ServeSite(w http.ResponseWriter, r *http.Request) {
	current, err := h.Settings.Get(r.Context())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load site settings failed", err, "Unable to load settings.", "/dashboard")
		return
	}

	data := siteData{
		siteFields: siteFields{
			SiteName:   current.SiteName,
			SupportURL: current.SupportURL,
			FooterHTML: current.FooterHTML,
		},
		UpdatedByName: current.UpdatedByName,
	}
	if current.UpdatedAt != nil {
		data.UpdatedAt = current.UpdatedAt.Format("2 Jan 2006 15:04")
	}
	formutil.SetBase(&data.Base, w, r, "Site Settings", "/dashboard")

	templates.Render(w, r, "settings_site", data)
}

// HandleSite processes the platform settings form POST. The footer HTML
// is sanitized before it is stored; the updater is stamped on the record.
func (h *Handler) HandleSite(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxSettingsFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/settings")
		return
	}

	fields := siteFields{
		SiteName:   normalize.Name(r.FormValue("site_name")),
		SupportURL: strings.TrimSpace(r.FormValue("support_url")),
		FooterHTML: htmlsanitize.Sanitize(strings.TrimSpace(r.FormValue("footer_html"))),
	}

	renderWithError := func(msg string) {
		data := siteData{siteFields: fields}
		formutil.SetBase(&data.Base, w, r, "Site Settings", "/dashboard")
		data.SetError(msg)
		templates.Render(w, r, "settings_site", data)
	}

	if fields.SiteName == "" {
		renderWithError("A site name is required.")
		return
	}
	if fields.SupportURL != "" && !inputval.IsValidHTTPURL(fields.SupportURL) {
		renderWithError("Please enter a valid support URL.")
		return
	}

	_, name, userID, _ := authz.UserCtx(r)

	next := models.SiteSettings{
		SiteName:   fields.SiteName,
		SupportURL: fields.SupportURL,
		FooterHTML: fields.FooterHTML,
	}
	if _, err := h.Settings.Save(r.Context(), next, userID, name); err != nil {
		h.ErrLog.LogServerError(w, r, "save site settings failed", err, "Unable to save settings.", "/settings")
		return
	}

	flash.Success(w, r, "Settings saved successfully")
	http.Redirect(w, r, "/settings", http.StatusSeeOther)
}
