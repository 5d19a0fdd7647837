package customers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dalemusser/traininghub/internal/app/features/customers"
	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*customers.Handler, *testutil.Stores) {
	t.Helper()
	stores := testutil.SeededStores(t)
	h := customers.NewHandler(stores.Customers, stores.Users, uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop())
	return h, stores
}

func TestHandleDelete_RemovesCustomerAndRedirects(t *testing.T) {
	h, stores := newTestHandler(t)

	before := stores.Customers.Count(context.Background())

	req := testutil.NewAuthenticatedRequest("POST", "/customers/3/delete", testutil.PlatformAdmin())
	req = testutil.WithChiURLParam(req, "id", "3")
	rec := httptest.NewRecorder()

	h.HandleDelete(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := stores.Customers.Count(context.Background()); got != before-1 {
		t.Errorf("customer count = %d, want %d", got, before-1)
	}
}

func TestHandleDelete_MissingCustomerIsIdempotent(t *testing.T) {
	h, stores := newTestHandler(t)

	before := stores.Customers.Count(context.Background())

	req := testutil.NewAuthenticatedRequest("POST", "/customers/nope/delete", testutil.PlatformAdmin())
	req = testutil.WithChiURLParam(req, "id", "nope")
	rec := httptest.NewRecorder()

	h.HandleDelete(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := stores.Customers.Count(context.Background()); got != before {
		t.Errorf("customer count = %d, want %d", got, before)
	}
}

func TestHandleEdit_PlatformAdminSavesPlanChange(t *testing.T) {
	h, stores := newTestHandler(t)

	form := url.Values{
		"name":              {"Belfast Trust"},
		"industry":          {"Healthcare"},
		"email":             {"training@belfasttrust.hscni.net"},
		"status":            {"active"},
		"subscription_type": {"premium"},
	}
	req := httptest.NewRequest("POST", "/customers/1/edit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = testutil.WithUser(req, testutil.PlatformAdmin())
	req = testutil.WithChiURLParam(req, "id", "1")
	rec := httptest.NewRecorder()

	h.HandleEdit(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	c, err := stores.Customers.GetByID(context.Background(), "1")
	if err != nil {
		t.Fatalf("get customer: %v", err)
	}
	if c.SubscriptionType != "premium" {
		t.Errorf("subscription = %q, want %q", c.SubscriptionType, "premium")
	}
}

func TestHandleEdit_CustomerAdminCannotChangePlan(t *testing.T) {
	h, stores := newTestHandler(t)

	form := url.Values{
		"name":              {"Belfast Trust"},
		"industry":          {"Healthcare"},
		"subscription_type": {"basic"},
	}
	req := httptest.NewRequest("POST", "/customers/1/edit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = testutil.WithUser(req, testutil.CustomerAdmin())
	req = testutil.WithChiURLParam(req, "id", "1")
	rec := httptest.NewRecorder()

	h.HandleEdit(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	c, err := stores.Customers.GetByID(context.Background(), "1")
	if err != nil {
		t.Fatalf("get customer: %v", err)
	}
	if c.SubscriptionType != "enterprise" {
		t.Errorf("subscription = %q, want unchanged %q", c.SubscriptionType, "enterprise")
	}
}
