// internal/app/features/courses/topics.go
package courses

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/app/policy/coursepolicy"
	"github.com/dalemusser/traininghub/internal/app/system/authz"
	"github.com/dalemusser/traininghub/internal/app/system/flash"
	"github.com/dalemusser/traininghub/internal/app/system/inputval"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleCompleteTopic processes
// POST /courses/{id}/modules/{moduleID}/topics/{topicID}/complete.
// Marking an already-completed topic again is a no-op. Completing the
// last open topic of a course issues the user's certificate.
func (h *Handler) HandleCompleteTopic(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "id")
	moduleID := chi.URLParam(r, "moduleID")
	topicID := chi.URLParam(r, "topicID")

	course, err := h.Courses.GetByID(r.Context(), courseID)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Course not found.", "/courses")
		return
	}

	if !coursepolicy.CanViewCourse(r, course) {
		uierrors.RenderForbidden(w, r, "You don't have access to that course.", "/courses")
		return
	}

	mod, ok := course.Module(moduleID)
	if !ok {
		uierrors.RenderNotFound(w, r, "Module not found.", "/courses/"+courseID+"/view")
		return
	}
	topic, ok := mod.Topic(topicID)
	if !ok {
		uierrors.RenderNotFound(w, r, "Topic not found.", "/courses/"+courseID+"/view")
		return
	}

	if !topic.Completed {
		now := time.Now().UTC()
		topic.Completed = true
		topic.CompletedAt = &now
		if err := h.Courses.Update(r.Context(), course); err != nil {
			h.ErrLog.LogServerError(w, r, "save topic completion failed", err, "Unable to record completion.", "/courses/"+courseID+"/view")
			return
		}
	}

	_, _, userID, _ := authz.UserCtx(r)
	_, issued, err := h.Completer.EvaluateAndIssue(r.Context(), course, userID)
	if err != nil {
		h.Log.Error("certificate issuance failed",
			zap.Error(err),
			zap.String("course_id", courseID),
			zap.String("user_id", userID),
		)
	}
	if issued {
		flash.Success(w, r, "Course completed! Certificate generated successfully")
	} else {
		flash.Success(w, r, "Topic marked as complete")
	}

	http.Redirect(w, r, "/courses/"+courseID+"/view", http.StatusSeeOther)
}

// HandleRateTopic processes
// POST /courses/{id}/modules/{moduleID}/topics/{topicID}/rate.
// A user holds at most one rating per topic; rating again replaces the
// previous one.
func (h *Handler) HandleRateTopic(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/courses")
		return
	}

	courseID := chi.URLParam(r, "id")
	moduleID := chi.URLParam(r, "moduleID")
	topicID := chi.URLParam(r, "topicID")

	course, err := h.Courses.GetByID(r.Context(), courseID)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Course not found.", "/courses")
		return
	}

	if !coursepolicy.CanViewCourse(r, course) {
		uierrors.RenderForbidden(w, r, "You don't have access to that course.", "/courses")
		return
	}

	mod, ok := course.Module(moduleID)
	if !ok {
		uierrors.RenderNotFound(w, r, "Module not found.", "/courses/"+courseID+"/view")
		return
	}
	topic, ok := mod.Topic(topicID)
	if !ok {
		uierrors.RenderNotFound(w, r, "Topic not found.", "/courses/"+courseID+"/view")
		return
	}

	value, err := strconv.Atoi(strings.TrimSpace(r.FormValue("rating")))
	if err != nil || !inputval.IsValidRating(value) {
		flash.Error(w, r, "Please choose a rating from 1 to 5.")
		http.Redirect(w, r, "/courses/"+courseID+"/view", http.StatusSeeOther)
		return
	}
	comment := strings.TrimSpace(r.FormValue("comment"))

	_, _, userID, _ := authz.UserCtx(r)

	rating := models.Rating{
		UserID:    userID,
		Rating:    value,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}
	replaced := false
	for i := range topic.Ratings {
		if topic.Ratings[i].UserID == userID {
			topic.Ratings[i] = rating
			replaced = true
			break
		}
	}
	if !replaced {
		topic.Ratings = append(topic.Ratings, rating)
	}

	if err := h.Courses.Update(r.Context(), course); err != nil {
		h.ErrLog.LogServerError(w, r, "save topic rating failed", err, "Unable to save your rating.", "/courses/"+courseID+"/view")
		return
	}

	flash.Success(w, r, "Rating submitted successfully")
	http.Redirect(w, r, "/courses/"+courseID+"/view", http.StatusSeeOther)
}
