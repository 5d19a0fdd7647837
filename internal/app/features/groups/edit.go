// internal/app/features/groups/edit.go
package groups

import (
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/app/policy/grouppolicy"
	groupstore "github.com/dalemusser/traininghub/internal/app/store/groups"
	"github.com/dalemusser/traininghub/internal/app/system/flash"
	"github.com/dalemusser/traininghub/internal/app/system/formutil"
	"github.com/dalemusser/traininghub/internal/app/system/inputval"
	"github.com/dalemusser/traininghub/internal/app/system/navigation"
	"github.com/dalemusser/traininghub/internal/app/system/normalize"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// ServeEdit renders the Edit Group page.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	group, err := h.Groups.GetByID(r.Context(), id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Group not found.", "/groups")
		return
	}

	if !grouppolicy.CanManageGroup(r, group) {
		uierrors.RenderForbidden(w, r, "You can't edit that group.", "/groups")
		return
	}

	data := editData{
		ID: group.ID,
		formFields: formFields{
			Name:        group.Name,
			Type:        group.Type,
			Description: group.Description,
		},
		Types: groupTypes(),
	}
	formutil.SetBase(&data.Base, w, r, "Edit Group", "/groups")

	templates.Render(w, r, "group_edit", data)
}

// HandleEdit processes the Edit Group form POST.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/groups")
		return
	}

	id := chi.URLParam(r, "id")

	group, err := h.Groups.GetByID(r.Context(), id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Group not found.", "/groups")
		return
	}

	if !grouppolicy.CanManageGroup(r, group) {
		uierrors.RenderForbidden(w, r, "You can't edit that group.", "/groups")
		return
	}

	fields := formFields{
		Name:        normalize.Name(r.FormValue("name")),
		Type:        strings.ToLower(strings.TrimSpace(r.FormValue("type"))),
		Description: strings.TrimSpace(r.FormValue("description")),
	}

	renderWithError := func(msg string) {
		data := editData{ID: group.ID, formFields: fields, Types: groupTypes()}
		formutil.SetBase(&data.Base, w, r, "Edit Group", "/groups")
		data.SetError(msg)
		templates.Render(w, r, "group_edit", data)
	}

	if fields.Name == "" {
		renderWithError("A group name is required.")
		return
	}
	if !inputval.IsValidGroupType(fields.Type) {
		renderWithError("Please choose a valid group type.")
		return
	}

	group.Name = fields.Name
	group.Type = fields.Type
	group.Description = fields.Description

	if err := h.Groups.Update(r.Context(), group); err != nil {
		msg := "Unable to save the group."
		if errors.Is(err, groupstore.ErrDuplicateGroup) {
			msg = "A group with that name already exists."
		}
		renderWithError(msg)
		return
	}

	flash.Success(w, r, "Group saved successfully")

	ret := navigation.SafeBackURL(r, navigation.GroupsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
