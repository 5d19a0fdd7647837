// internal/app/features/profile/profile.go
package profile

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
	"github.com/dalemusser/traininghub/internal/app/system/viewdata"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

// viewPageData feeds the profile_view template.
type viewPageData struct {
	viewdata.BaseVM
	User         models.UserAccount
	CustomerName string
	GroupName    string
}

// formFields holds the echoed values of the profile form.
type formFields struct {
	FirstName      string
	LastName       string
	Bio            string
	Location       string
	Timezone       string
	Language       string
	NotifyEmail    bool
	NotifyInApp    bool
	Digest         string
	Visibility     string
	ShowEmail      bool
	ShowLocation   bool
	ProfilePicture string
}

// editData feeds the profile_edit template.
type editData struct {
	formutil.Base
	formFields
}

// loadSelf fetches the signed-in user's account. When it returns
// ok=false the response has already been written.
func (h *Handler) loadSelf(w http.ResponseWriter, r *http.Request) (models.UserAccount, bool) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return models.UserAccount{}, false
	}
	account, err := h.Users.GetByID(r.Context(), userID)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Account not found.", "/dashboard")
		return models.UserAccount{}, false
	}
	return account, true
}

// ServeView renders the signed-in user's profile page.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	account, ok := h.loadSelf(w, r)
	if !ok {
		return
	}

	customerName := ""
	if account.CustomerID != "" {
		if c, err := h.Customers.GetByID(r.Context(), account.CustomerID); err == nil {
			customerName = c.Name
		}
	}
	groupName := ""
	if account.GroupID != "" {
		if g, err := h.Groups.GetByID(r.Context(), account.GroupID); err == nil {
			groupName = g.Name
		}
	}

	data := viewPageData{
		BaseVM:       viewdata.NewBaseVM(w, r, "My Profile", "/dashboard"),
		User:         account,
		CustomerName: customerName,
		GroupName:    groupName,
	}

	templates.Render(w, r, "profile_view", data)
}

// ServeEdit renders the profile form.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	account, ok := h.loadSelf(w, r)
	if !ok {
		return
	}

	data := editData{formFields: fieldsFrom(account)}
	formutil.SetBase(&data.Base, w, r, "Edit Profile", "/profile")

	templates.Render(w, r, "profile_edit", data)
}

// HandleEdit processes the profile form POST. Role, status, email, and
// organization are not self-service; they stay as they are.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	account, ok := h.loadSelf(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxProfileFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/profile")
		return
	}

	fields := formFields{
		FirstName:      normalize.Name(r.FormValue("first_name")),
		LastName:       normalize.Name(r.FormValue("last_name")),
		Bio:            strings.TrimSpace(r.FormValue("bio")),
		Location:       strings.TrimSpace(r.FormValue("location")),
		Timezone:       strings.TrimSpace(r.FormValue("timezone")),
		Language:       strings.TrimSpace(r.FormValue("language")),
		NotifyEmail:    r.FormValue("notify_email") == "on",
		NotifyInApp:    r.FormValue("notify_in_app") == "on",
		Digest:         strings.ToLower(strings.TrimSpace(r.FormValue("digest"))),
		Visibility:     strings.ToLower(strings.TrimSpace(r.FormValue("visibility"))),
		ShowEmail:      r.FormValue("show_email") == "on",
		ShowLocation:   r.FormValue("show_location") == "on",
		ProfilePicture: strings.TrimSpace(r.FormValue("profile_picture")),
	}

	renderWithError := func(msg string) {
		data := editData{formFields: fields}
		formutil.SetBase(&data.Base, w, r, "Edit Profile", "/profile")
		data.SetError(msg)
		templates.Render(w, r, "profile_edit", data)
	}

	if fields.FirstName == "" && fields.LastName == "" {
		renderWithError("A name is required.")
		return
	}
	if fields.ProfilePicture != "" && !inputval.IsValidHTTPURL(fields.ProfilePicture) {
		renderWithError("Please enter a valid picture URL.")
		return
	}
	switch fields.Digest {
	case "", "none", "daily", "weekly":
	default:
		renderWithError("Please choose a valid digest frequency.")
		return
	}
	switch fields.Visibility {
	case "", "public", "organization", "private":
	default:
		renderWithError("Please choose a valid profile visibility.")
		return
	}

	account.FirstName = fields.FirstName
	account.LastName = fields.LastName
	account.Bio = fields.Bio
	account.Location = fields.Location
	account.Timezone = fields.Timezone
	account.Language = fields.Language
	account.ProfilePicture = fields.ProfilePicture
	account.NotificationPreferences = models.NotificationPreferences{
		Email:  fields.NotifyEmail,
		InApp:  fields.NotifyInApp,
		Digest: fields.Digest,
	}
	account.PrivacySettings = models.PrivacySettings{
		ProfileVisibility: fields.Visibility,
		ShowEmail:         fields.ShowEmail,
		ShowLocation:      fields.ShowLocation,
	}

	if err := h.Users.Update(r.Context(), account); err != nil {
		h.ErrLog.LogServerError(w, r, "save profile failed", err, "Unable to save your profile.", "/profile")
		return
	}

	flash.Success(w, r, "Profile saved successfully")
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func fieldsFrom(account models.UserAccount) formFields {
	return formFields{
		FirstName:      account.FirstName,
		LastName:       account.LastName,
		Bio:            account.Bio,
		Location:       account.Location,
		Timezone:       account.Timezone,
		Language:       account.Language,
		NotifyEmail:    account.NotificationPreferences.Email,
		NotifyInApp:    account.NotificationPreferences.InApp,
		Digest:         account.NotificationPreferences.Digest,
		Visibility:     account.PrivacySettings.ProfileVisibility,
		ShowEmail:      account.PrivacySettings.ShowEmail,
		ShowLocation:   account.PrivacySettings.ShowLocation,
		ProfilePicture: account.ProfilePicture,
	}
}
