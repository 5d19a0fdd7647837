// internal/app/features/groups/members.go
package groups

import (
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/app/policy/grouppolicy"
	"github.com/dalemusser/traininghub/internal/app/system/flash"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleAddMember processes POST /groups/{id}/members. The user joins the
// group's member list and their account's group assignment follows; a
// user can belong to one group at a time, so any previous assignment is
// released first.
func (h *Handler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/groups")
		return
	}

	id := chi.URLParam(r, "id")
	userID := strings.TrimSpace(r.FormValue("user_id"))

	group, err := h.Groups.GetByID(r.Context(), id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Group not found.", "/groups")
		return
	}

	if !grouppolicy.CanManageGroup(r, group) {
		uierrors.RenderForbidden(w, r, "You can't manage that group.", "/groups")
		return
	}

	account, err := h.Users.GetByID(r.Context(), userID)
	if err != nil {
		uierrors.RenderNotFound(w, r, "User not found.", "/groups/"+id+"/view")
		return
	}
	if account.CustomerID != group.CustomerID {
		uierrors.RenderForbidden(w, r, "That user belongs to a different organization.", "/groups/"+id+"/view")
		return
	}

	if account.GroupID != "" && account.GroupID != id {
		if err := h.Groups.RemoveMember(r.Context(), account.GroupID, account.ID); err != nil {
			h.Log.Warn("release previous group membership failed",
				zap.Error(err),
				zap.String("user_id", account.ID),
				zap.String("group_id", account.GroupID),
			)
		}
	}

	if err := h.Groups.AddMember(r.Context(), id, account.ID); err != nil {
		h.ErrLog.LogServerError(w, r, "add group member failed", err, "Unable to add the member.", "/groups/"+id+"/view")
		return
	}

	account.GroupID = id
	if err := h.Users.Update(r.Context(), account); err != nil {
		h.Log.Warn("update member group assignment failed",
			zap.Error(err),
			zap.String("user_id", account.ID),
			zap.String("group_id", id),
		)
	}

	flash.Success(w, r, "Member added successfully")
	http.Redirect(w, r, "/groups/"+id+"/view", http.StatusSeeOther)
}

// HandleRemoveMember processes POST /groups/{id}/members/remove. Removing
// a user who is not a member redirects without complaint.
func (h *Handler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/groups")
		return
	}

	id := chi.URLParam(r, "id")
	userID := strings.TrimSpace(r.FormValue("user_id"))

	group, err := h.Groups.GetByID(r.Context(), id)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Group not found.", "/groups")
		return
	}

	if !grouppolicy.CanManageGroup(r, group) {
		uierrors.RenderForbidden(w, r, "You can't manage that group.", "/groups")
		return
	}

	if err := h.Groups.RemoveMember(r.Context(), id, userID); err != nil {
		h.ErrLog.LogServerError(w, r, "remove group member failed", err, "Unable to remove the member.", "/groups/"+id+"/view")
		return
	}

	if account, err := h.Users.GetByID(r.Context(), userID); err == nil && account.GroupID == id {
		account.GroupID = ""
		if err := h.Users.Update(r.Context(), account); err != nil {
			h.Log.Warn("clear member group assignment failed",
				zap.Error(err),
				zap.String("user_id", userID),
				zap.String("group_id", id),
			)
		}
	}

	flash.Success(w, r, "Member removed successfully")
	http.Redirect(w, r, "/groups/"+id+"/view", http.StatusSeeOther)
}
