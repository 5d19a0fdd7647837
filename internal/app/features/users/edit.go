// internal/app/features/users/edit.go
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
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeEdit renders the Edit User page.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	account, err := h.Users.GetByID(r.Context(), id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "User not found.", "/users")
		return
	}

	if !userpolicy.CanEditUser(r, account) {
		uierrors.RenderForbidden(w, r, "You can't edit that user.", "/users")
		return
	}

	data := editData{
		ID: account.ID,
		formFields: formFields{
			FirstName:  account.FirstName,
			LastName:   account.LastName,
			Email:      account.Email,
			Role:       account.Role,
			Status:     account.Status,
			CustomerID: account.CustomerID,
			GroupID:    account.GroupID,
		},
		CanChooseCustomer: authz.IsPlatformAdmin(r),
		CanChangeRole:     true,
		Roles:             assignableRoles(r),
	}
	if err := h.fillFormOptions(r, &data.Customers, &data.Groups, account.CustomerID); err != nil {
		h.ErrLog.LogServerError(w, r, "load form options failed", err, "Unable to load the form.", "/users")
		return
	}
	formutil.SetBase(&data.Base, w, r, "Edit User", "/users")

	templates.Render(w, r, "user_edit", data)
}

// HandleEdit processes the Edit User form POST.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/users")
		return
	}

	id := chi.URLParam(r, "id")

	account, err := h.Users.GetByID(r.Context(), id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "User not found.", "/users")
		return
	}

	if !userpolicy.CanEditUser(r, account) {
		uierrors.RenderForbidden(w, r, "You can't edit that user.", "/users")
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

	if !authz.IsPlatformAdmin(r) {
		// Customer admins can't move accounts across organizations.
		fields.CustomerID = account.CustomerID
	}

	renderWithError := func(msg string) {
		data := editData{
			ID:                account.ID,
			formFields:        fields,
			CanChooseCustomer: authz.IsPlatformAdmin(r),
			CanChangeRole:     true,
			Roles:             assignableRoles(r),
		}
		if err := h.fillFormOptions(r, &data.Customers, &data.Groups, fields.CustomerID); err != nil {
			h.ErrLog.LogServerError(w, r, "load form options failed", err, "Unable to load the form.", "/users")
			return
		}
		formutil.SetBase(&data.Base, w, r, "Edit User", "/users")
		data.SetError(msg)
		templates.Render(w, r, "user_edit", data)
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
	if fields.Role != account.Role && !roleAllowed(r, fields.Role) {
		renderWithError("You can't assign that role.")
		return
	}

	oldGroupID := account.GroupID

	account.FirstName = fields.FirstName
	account.LastName = fields.LastName
	account.Email = fields.Email
	account.Role = fields.Role
	account.Status = fields.Status
	account.CustomerID = fields.CustomerID
	account.GroupID = fields.GroupID

	if err := h.Users.Update(r.Context(), account); err != nil {
		msg := "Unable to save the user."
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			msg = "An account with that email address already exists."
		}
		renderWithError(msg)
		return
	}

	h.syncGroupMembership(r, account.ID, oldGroupID, account.GroupID)

	flash.Success(w, r, "User saved successfully")

	ret := navigation.SafeBackURL(r, navigation.UsersBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// syncGroupMembership keeps group member lists in step with the account's
// GroupID field when an assignment changes. Both store calls are no-ops
// when the membership already matches.
func (h *Handler) syncGroupMembership(r *http.Request, userID, oldGroupID, newGroupID string) {
	if oldGroupID == newGroupID {
		return
	}
	if oldGroupID != "" {
		if err := h.Groups.RemoveMember(r.Context(), oldGroupID, userID); err != nil {
			h.Log.Warn("remove user from group failed",
				zap.Error(err),
				zap.String("user_id", userID),
				zap.String("group_id", oldGroupID),
			)
		}
	}
	if newGroupID != "" {
		if err := h.Groups.AddMember(r.Context(), newGroupID, userID); err != nil {
			h.Log.Warn("add user to group failed",
				zap.Error(err),
				zap.String("user_id", userID),
				zap.String("group_id", newGroupID),
			)
		}
	}
}

