// internal/app/features/users/delete.go
package users

import (
	"net/http"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/app/policy/userpolicy"
	"github.com/dalemusser/traininghub/internal/app/system/flash"
	"github.com/dalemusser/traininghub/internal/app/system/navigation"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDelete deletes a user account and redirects back to the list.
//
// Route: POST /users/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	account, err := h.Users.GetByID(r.Context(), id)
	if err != nil {
		// Nothing to delete; treat as idempotent.
		h.Log.Info("user delete: nothing to delete (idempotent)", zap.String("user_id", id))
		http.Redirect(w, r, navigation.SafeBackURL(r, navigation.UsersBackURL), http.StatusSeeOther)
		return
	}

	if !userpolicy.CanDeleteUser(r, account) {
		uierrors.RenderForbidden(w, r, "You can't delete that user.", "/users")
		return
	}

	if _, err := h.Users.Delete(r.Context(), id); err != nil {
		h.ErrLog.LogServerError(w, r, "delete user failed", err, "Unable to delete the user.", "/users")
		return
	}

	// Drop the account from its group's member list as well.
	if account.GroupID != "" {
		if err := h.Groups.RemoveMember(r.Context(), account.GroupID, account.ID); err != nil {
			h.Log.Warn("remove deleted user from group failed",
				zap.Error(err),
				zap.String("user_id", account.ID),
				zap.String("group_id", account.GroupID),
			)
		}
	}

	flash.Success(w, r, "User deleted successfully")

	ret := navigation.SafeBackURL(r, navigation.UsersBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
