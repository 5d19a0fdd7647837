// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	userstore "github.com/dalemusser/traininghub/internal/app/store/users"
	"github.com/dalemusser/traininghub/internal/app/system/auth"
	"github.com/dalemusser/traininghub/internal/app/system/flash"
	"github.com/dalemusser/traininghub/internal/app/system/navigation"
	"github.com/dalemusser/traininghub/internal/app/system/normalize"
	"github.com/dalemusser/traininghub/internal/app/system/ratelimit"
	"github.com/dalemusser/traininghub/internal/app/system/viewdata"
	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

type Handler struct {
	Users   *userstore.Store
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
	limiter *ratelimit.Limiter
}

func NewHandler(users *userstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:   users,
		Log:     logger,
		ErrLog:  errLog,
		limiter: ratelimit.New(10, time.Minute),
	}
}

type loginFormData struct {
	viewdata.BaseVM
	Error     string
	Email     string
	ReturnURL string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	ret := query.Get(r, "return")

	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(w, r, "Sign in", "/"),
		ReturnURL: ret,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	ip := ratelimit.ClientIP(r)
	if !h.limiter.Allow(ip) {
		h.Log.Warn("sign-in rate limited", zap.String("ip", ip))
		h.renderFormWithError(w, r, "Too many sign-in attempts. Please wait a minute and try again.", "")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	email := normalize.Email(r.FormValue("email"))
	if email == "" {
		h.renderFormWithError(w, r, "Please enter your email address.", email)
		return
	}

	// The password field is accepted but not verified; the demo identity
	// source has no credential store.

	u, err := ResolveAccount(r.Context(), h.Users, email)
	switch {
	case errors.Is(err, userstore.ErrNotFound):
		h.renderFormWithError(w, r, "No account found for that email address.", email)
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "resolve account failed", err, "A server error occurred.", "/login")
		return
	}

	if normalize.Status(u.Status) == models.StatusInactive {
		h.renderFormWithError(
			w,
			r,
			"Your account is currently inactive. Please contact an administrator.",
			email,
		)
		return
	}

	if err := h.Users.SetLastLogin(r.Context(), u.ID, time.Now()); err != nil {
		h.Log.Warn("stamp last login failed", zap.Error(err), zap.String("user_id", u.ID))
	}

	if err := auth.SignIn(w, r, u); err != nil {
		h.Log.Error("save session failed", zap.Error(err), zap.String("email", email))
		h.renderFormWithError(w, r, "Login failed. Please try again.", email)
		return
	}

	h.limiter.Reset(ip)

	// A fresh sign-in starts a fresh history.
	if err := navigation.Reset(w, r); err != nil {
		h.Log.Warn("reset navigation history failed", zap.Error(err))
	}

	flash.Success(w, r, "Logged in successfully")

	ret := strings.TrimSpace(r.FormValue("return"))
	dest := urlutil.SafeReturn(ret, "", "/dashboard")
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// ResolveAccount maps a submitted email to a user account. Known emails
// resolve to their own account. Unknown emails fall back to the seeded
// demo personas keyed off the address text: "admin" selects the platform
// admin, "customer" the customer admin, anything else the regular user.
// Returns userstore.ErrNotFound when the persona account is missing too.
func ResolveAccount(ctx context.Context, users *userstore.Store, email string) (models.UserAccount, error) {
	if u, err := users.GetByEmail(ctx, email); err == nil {
		return u, nil
	} else if !errors.Is(err, userstore.ErrNotFound) {
		return models.UserAccount{}, err
	}

	personaID := "user1"
	switch {
	case strings.Contains(email, "admin"):
		personaID = "admin1"
	case strings.Contains(email, "customer"):
		personaID = "customer1"
	}
	return users.GetByID(ctx, personaID)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, email string) {
	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(w, r, "Sign in", "/"),
		Error:     msg,
		Email:     email,
		ReturnURL: strings.TrimSpace(r.FormValue("return")),
	})
}
