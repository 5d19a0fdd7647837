// internal/app/features/groups/delete.go
package groups

import (
	"net/http"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/app/policy/grouppolicy"
	"github.com/dalemusser/traininghub/internal/app/system/flash"
	"github.com/dalemusser/traininghub/internal/app/system/navigation"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDelete removes a group and clears the group assignment of any
// accounts that pointed at it. Deleting an already-deleted group
// redirects without complaint.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	group, err := h.Groups.GetByID(r.Context(), id)
	if err != nil {
		// Already gone; treat the delete as settled.
		ret := navigation.SafeBackURL(r, navigation.GroupsBackURL)
		http.Redirect(w, r, ret, http.StatusSeeOther)
		return
	}

	if !grouppolicy.CanManageGroup(r, group) {
		uierrors.RenderForbidden(w, r, "You can't delete that group.", "/groups")
		return
	}

	if _, err := h.Groups.Delete(r.Context(), id); err != nil {
		h.ErrLog.LogServerError(w, r, "delete group failed", err, "Unable to delete the group.", "/groups")
		return
	}

	// Detach members whose account still points at the deleted group.
	for _, userID := range group.Members {
		account, err := h.Users.GetByID(r.Context(), userID)
		if err != nil || account.GroupID != id {
			continue
		}
		account.GroupID = ""
		if err := h.Users.Update(r.Context(), account); err != nil {
			h.Log.Warn("detach member from deleted group failed",
				zap.Error(err),
				zap.String("user_id", userID),
				zap.String("group_id", id),
			)
		}
	}

	flash.Success(w, r, "Group deleted successfully")

	ret := navigation.SafeBackURL(r, navigation.GroupsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
