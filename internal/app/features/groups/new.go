// internal/app/features/groups/new.go
package groups

import (
	"errors"
	"net/http"
	"strings"

	groupstore "github.com/dalemusser/traininghub/internal/app/store/groups"
	"github.com/dalemusser/traininghub/internal/app/system/authz"
	"github.com/dalemusser/traininghub/internal/app/system/flash"
	"github.com/dalemusser/traininghub/internal/app/system/formutil"
	"github.com/dalemusser/traininghub/internal/app/system/inputval"
	"github.com/dalemusser/traininghub/internal/app/system/navigation"
	"github.com/dalemusser/traininghub/internal/app/system/normalize"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

func groupTypes() []string {
	return []string{models.GroupTypeLocation, models.GroupTypeClass, models.GroupTypeTeam}
}

// ServeNew renders the "Add Group" form.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := newData{
		formFields: formFields{Type: models.GroupTypeTeam},
		Types:      groupTypes(),
	}
	formutil.SetBase(&data.Base, w, r, "Add Group", "/groups")

	templates.Render(w, r, "group_new", data)
}

// HandleCreate processes the Add Group form submission. Route middleware
// restricts this to customer admins; the group lands in the admin's own
// organization.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/groups")
		return
	}

	fields := formFields{
		Name:        normalize.Name(r.FormValue("name")),
		Type:        strings.ToLower(strings.TrimSpace(r.FormValue("type"))),
		Description: strings.TrimSpace(r.FormValue("description")),
	}

	renderWithError := func(msg string) {
		data := newData{formFields: fields, Types: groupTypes()}
		formutil.SetBase(&data.Base, w, r, "Add Group", "/groups")
		data.SetError(msg)
		templates.Render(w, r, "group_new", data)
	}

	if fields.Name == "" {
		renderWithError("A group name is required.")
		return
	}
	if !inputval.IsValidGroupType(fields.Type) {
		renderWithError("Please choose a valid group type.")
		return
	}

	group := models.Group{
		Name:        fields.Name,
		Type:        fields.Type,
		Description: fields.Description,
		CustomerID:  authz.UserCustomerID(r),
	}

	if _, err := h.Groups.Create(r.Context(), group); err != nil {
		msg := "Unable to create the group."
		if errors.Is(err, groupstore.ErrDuplicateGroup) {
			msg = "A group with that name already exists."
		}
		renderWithError(msg)
		return
	}

	flash.Success(w, r, "Group created successfully")

	ret := navigation.SafeBackURL(r, navigation.GroupsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
