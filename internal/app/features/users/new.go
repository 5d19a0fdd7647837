// internal/app/features/users/new.go
package users

import (
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/app/policy/userpolicy"
	userstore "github.com/dalemusser/traininghub/internal/app/store/users"
	"github.com/dalemusser/traininghub/internal/app/system/authz"
	"github.com/dalemusser/traininghub/internal/app/system/flash"
	"github.com/dalemusser/traininghub/internal/app/system/formutil"
	"github.com/dalemusser/traininghub/internal/app/system/inputval"
	"github.com/dalemusser/traininghub/internal/app/system/navigation"
	"github.com/dalemusser/traininghub/internal/app/system/normalize"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// assignableRoles lists the roles the requester may hand out.
func assignableRoles(r *http.Request) []string {
	if authz.IsPlatformAdmin(r) {
		return []string{models.RolePlatformAdmin, models.RoleCustomerAdmin, models.RoleUser}
	}
	return []string{models.RoleCustomerAdmin, models.RoleUser}
}

// ServeNew renders the "Add User" form.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	if !userpolicy.CanCreateUser(r) {
		uierrors.RenderForbidden(w, r, "You don't have permission to add users.", "/users")
		return
	}

	data := newData{
		formFields:        formFields{Role: models.RoleUser, Status: models.StatusActive},
		CanChooseCustomer: authz.IsPlatformAdmin(r),
		Roles:             assignableRoles(r),
	}
	if err := h.fillFormOptions(r, &data.Customers, &data.Groups, data.CustomerID); err != nil {
		h.ErrLog.LogServerError(w, r, "load form options failed", err, "Unable to load the form.", "/users")
		return
	}
	formutil.SetBase(&data.Base, w, r, "Add User", "/users")

	templates.Render(w, r, "user_new", data)
}

// HandleCreate processes the Add User form submission.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if !userpolicy.CanCreateUser(r) {
		uierrors.RenderForbidden(w, r, "You don't have permission to add users.", "/users")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/users")
		return
	}

	fields := formFields{
		FirstName:  normalize.Name(r.FormValue("first_name")),
		LastName:   normalize.Name(r.FormValue("last_name")),
		Email:      normalize.Email(r.FormValue("email")),
		Role:       normalize.Role(r.FormValue("role")),
		Status:     normalize.Status(r.FormValue("status")),
		CustomerID: strings.TrimSpace(r.FormValue("customer_id")),
		GroupID:    strings.TrimSpace(r.FormValue("group_id")),
	}

	// Customer admins create accounts inside their own organization only.
	if !authz.IsPlatformAdmin(r) {
		fields.CustomerID = authz.UserCustomerID(r)
	}

	renderWithError := func(msg string) {
		data := newData{
			formFields:        fields,
			CanChooseCustomer: authz.IsPlatformAdmin(r),
			Roles:             assignableRoles(r),
		}
		if err := h.fillFormOptions(r, &data.Customers, &data.Groups, fields.CustomerID); err != nil {
			h.ErrLog.LogServerError(w, r, "load form options failed", err, "Unable to load the form.", "/users")
			return
		}
		formutil.SetBase(&data.Base, w, r, "Add User", "/users")
		data.SetError(msg)
		templates.Render(w, r, "user_new", data)
	}

	if fields.FirstName == "" && fields.LastName == "" {
		renderWithError("A name is required.")
		return
	}
	if !inputval.IsValidEmail(fields.Email) {
		renderWithError("Please enter a valid email address.")
		return
	}
	if !inputval.IsValidRole(fields.Role) {
		renderWithError("Please choose a valid role.")
		return
	}
	if !roleAllowed(r, fields.Role) {
		renderWithError("You can't assign that role.")
		return
	}
	if fields.Role != models.RolePlatformAdmin && fields.CustomerID == "" {
		renderWithError("Please choose an organization.")
		return
	}

	account := models.UserAccount{
		FirstName:  fields.FirstName,
		LastName:   fields.LastName,
		Email:      fields.Email,
		Role:       fields.Role,
		Status:     fields.Status,
		CustomerID: fields.CustomerID,
		GroupID:    fields.GroupID,
	}

	created, err := h.Users.Create(r.Context(), account)
	if err != nil {
		msg := "Unable to create the user."
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			msg = "An account with that email address already exists."
		}
		renderWithError(msg)
		return
	}

	if created.GroupID != "" {
		if err := h.Groups.AddMember(r.Context(), created.GroupID, created.ID); err != nil {
			h.Log.Warn("add new user to group failed",
				zap.Error(err),
				zap.String("user_id", created.ID),
				zap.String("group_id", created.GroupID),
			)
		}
	}

	flash.Success(w, r, "User created successfully")

	ret := navigation.SafeBackURL(r, navigation.UsersBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// roleAllowed reports whether the requester may hand out the given role.
func roleAllowed(r *http.Request, role string) bool {
	for _, allowed := range assignableRoles(r) {
		if role == allowed {
			return true
		}
	}
	return false
}

// fillFormOptions loads the customer and group dropdown options for the
// user form. Platform admins get every customer; customer admins only
// their own organization's groups.
func (h *Handler) fillFormOptions(r *http.Request, customers *[]models.Customer, groups *[]models.Group, customerID string) error {
	if authz.IsPlatformAdmin(r) {
		all, err := h.Customers.List(r.Context())
		if err != nil {
			return err
		}
		*customers = all
	} else {
		customerID = authz.UserCustomerID(r)
	}

	if customerID != "" {
		gs, err := h.Groups.ListByCustomer(r.Context(), customerID)
		if err != nil {
			return err
		}
		*groups = gs
	}
	return nil
}
