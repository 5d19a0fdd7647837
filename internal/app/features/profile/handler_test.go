package profile_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/app/features/profile"
	"github.com/dalemusser/traininghub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*profile.Handler, *testutil.Stores) {
	t.Helper()
	stores := testutil.SeededStores(t)
	h := profile.NewHandler(stores.Users, stores.Groups, stores.Customers, uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop())
	return h, stores
}

func TestHandleEdit_SavesOwnFieldsOnly(t *testing.T) {
	h, stores := newTestHandler(t)

	form := url.Values{
		"first_name":   {"Regular"},
		"last_name":    {"User"},
		"bio":          {"A&E nurse, Royal Victoria."},
		"location":     {"Belfast"},
		"timezone":     {"Europe/London"},
		"language":     {"en-GB"},
		"notify_email": {"on"},
		"digest":       {"weekly"},
		"visibility":   {"organization"},
		"show_email":   {"on"},
	}
	req := httptest.NewRequest("POST", "/profile/edit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = testutil.WithUser(req, testutil.RegularUser())
	rec := httptest.NewRecorder()

	h.HandleEdit(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/profile" {
		t.Errorf("redirect = %q, want %q", loc, "/profile")
	}

	account, err := stores.Users.GetByID(context.Background(), testutil.RegularUser().ID)
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if account.Bio != "A&E nurse, Royal Victoria." {
		t.Errorf("bio = %q, want the submitted value", account.Bio)
	}
	if !account.NotificationPreferences.Email {
		t.Error("email notification preference not saved")
	}
	if account.NotificationPreferences.InApp {
		t.Error("unchecked in-app preference came back on")
	}
	if account.NotificationPreferences.Digest != "weekly" {
		t.Errorf("digest = %q, want %q", account.NotificationPreferences.Digest, "weekly")
	}
	if account.PrivacySettings.ProfileVisibility != "organization" {
		t.Errorf("visibility = %q, want %q", account.PrivacySettings.ProfileVisibility, "organization")
	}

	// Identity fields are not self-service.
	if account.Role != "user" {
		t.Errorf("role = %q, profile edit must not change it", account.Role)
	}
	if account.CustomerID != "1" {
		t.Errorf("customer id = %q, profile edit must not change it", account.CustomerID)
	}
}

func TestHandleEdit_RejectsBadPictureURL(t *testing.T) {
	h, stores := newTestHandler(t)

	form := url.Values{
		"first_name":      {"Regular"},
		"last_name":       {"User"},
		"profile_picture": {"javascript:alert(1)"},
	}
	req := httptest.NewRequest("POST", "/profile/edit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = testutil.WithUser(req, testutil.RegularUser())
	rec := httptest.NewRecorder()

	// The form re-render may panic without initialized templates.
	func() {
		defer func() { _ = recover() }()
		h.HandleEdit(rec, req)
	}()

	if rec.Code == http.StatusSeeOther {
		t.Fatal("bad picture URL was accepted")
	}
	account, err := stores.Users.GetByID(context.Background(), testutil.RegularUser().ID)
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if account.ProfilePicture != "" {
		t.Errorf("profile picture = %q, want empty", account.ProfilePicture)
	}
}
