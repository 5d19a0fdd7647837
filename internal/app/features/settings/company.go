// internal/app/features/settings/company.go
package settings

import (
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/app/system/authz"
	"github.com/dalemusser/traininghub/internal/app/system/flash"
	"github.com/dalemusser/traininghub/internal/app/system/formutil"
	"github.com/dalemusser/traininghub/internal/app/system/inputval"
	"github.com/dalemusser/traininghub/internal/app/system/limits"
	"github.com/dalemusser/traininghub/internal/app/system/normalize"
	"github.com/dalemusser/waffle/pantry/templates"
)

// companyFields holds the echoed values of the company settings form.
type companyFields struct {
	Phone          string
	Website        string
	Email          string
	LogoURL        string
	PrimaryColor   string
	SecondaryColor string
}

// companyData feeds the settings_company template.
type companyData struct {
	formutil.Base
	companyFields
	CustomerName string
}

// ServeCompany renders the company settings form for the admin's own
// organization.
func (h *Handler) ServeCompany(w http.ResponseWriter, r *http.Request) {
	customer, err := h.Customers.GetByID(r.Context(), authz.UserCustomerID(r))
	if err != nil {
		uierrors.RenderNotFound(w, r, "Organization not found.", "/dashboard")
		return
	}

	data := companyData{
		companyFields: companyFields{
			Phone:          customer.Phone,
			Website:        customer.Website,
			Email:          customer.Email,
			LogoURL:        customer.Branding.LogoURL,
			PrimaryColor:   customer.Branding.Colors.Primary,
			SecondaryColor: customer.Branding.Colors.Secondary,
		},
		CustomerName: customer.Name,
	}
	formutil.SetBase(&data.Base, w, r, "Company Settings", "/dashboard")

	templates.Render(w, r, "settings_company", data)
}

// HandleCompany processes the company settings form POST. Plan and
// status stay platform-admin territory; this form covers contact
// details and branding only.
func (h *Handler) HandleCompany(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxSettingsFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/settings/company")
		return
	}

	customer, err := h.Customers.GetByID(r.Context(), authz.UserCustomerID(r))
	if err != nil {
		uierrors.RenderNotFound(w, r, "Organization not found.", "/dashboard")
		return
	}

	fields := companyFields{
		Phone:          strings.TrimSpace(r.FormValue("phone")),
		Website:        strings.TrimSpace(r.FormValue("website")),
		Email:          normalize.Email(r.FormValue("email")),
		LogoURL:        strings.TrimSpace(r.FormValue("logo_url")),
		PrimaryColor:   strings.TrimSpace(r.FormValue("primary_color")),
		SecondaryColor: strings.TrimSpace(r.FormValue("secondary_color")),
	}

	renderWithError := func(msg string) {
		data := companyData{companyFields: fields, CustomerName: customer.Name}
		formutil.SetBase(&data.Base, w, r, "Company Settings", "/dashboard")
		data.SetError(msg)
		templates.Render(w, r, "settings_company", data)
	}

	if fields.Email != "" && !inputval.IsValidEmail(fields.Email) {
		renderWithError("Please enter a valid email address.")
		return
	}
	if fields.Website != "" && !inputval.IsValidHTTPURL(fields.Website) {
		renderWithError("Please enter a valid website URL.")
		return
	}
	if fields.LogoURL != "" && !inputval.IsValidHTTPURL(fields.LogoURL) {
		renderWithError("Please enter a valid logo URL.")
		return
	}

	customer.Phone = fields.Phone
	customer.Website = fields.Website
	customer.Email = fields.Email
	customer.Branding.LogoURL = fields.LogoURL
	customer.Branding.Colors.Primary = fields.PrimaryColor
	customer.Branding.Colors.Secondary = fields.SecondaryColor

	if err := h.Customers.Update(r.Context(), customer); err != nil {
		h.ErrLog.LogServerError(w, r, "save company settings failed", err, "Unable to save settings.", "/settings/company")
		return
	}

	flash.Success(w, r, "Settings saved successfully")
	http.Redirect(w, r, "/settings/company", http.StatusSeeOther)
}
