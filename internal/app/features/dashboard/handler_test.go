package dashboard_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/traininghub/internal/app/features/dashboard"
	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *dashboard.Handler {
	t.Helper()
	stores := testutil.SeededStores(t)
	return dashboard.NewHandler(
		stores.Customers,
		stores.Users,
		stores.Groups,
		stores.Courses,
		stores.Certificates,
		uierrors.NewErrorLogger(zap.NewNop()),
		zap.NewNop(),
	)
}

func TestServeDashboard_UnauthenticatedIsRefused(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	rec := httptest.NewRecorder()

	// The sign-in-required page renders through the template engine,
	// which is not initialized in tests.
	func() {
		defer func() { _ = recover() }()
		h.ServeDashboard(rec, req)
	}()

	if rec.Code == http.StatusOK && rec.Body.Len() > 0 {
		t.Fatalf("dashboard served to an unauthenticated request")
	}
}

func TestServeDashboard_RoleDispatch(t *testing.T) {
	h := newTestHandler(t)

	users := []testutil.TestUser{
		testutil.PlatformAdmin(),
		testutil.CustomerAdmin(),
		testutil.RegularUser(),
	}

	for _, u := range users {
		req := testutil.NewAuthenticatedRequest("GET", "/dashboard", u)
		rec := httptest.NewRecorder()

		// Rendering may panic when templates are not initialized in tests;
		// the dispatch and store reads are what we exercise here.
		func() {
			defer func() { _ = recover() }()
			h.ServeDashboard(rec, req)
		}()

		if rec.Code == http.StatusSeeOther {
			t.Errorf("role %s: dashboard redirected away instead of serving", u.Role)
		}
	}
}
