package settings_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/app/features/settings"
	"github.com/dalemusser/traininghub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*settings.Handler, *testutil.Stores) {
	t.Helper()
	stores := testutil.SeededStores(t)
	h := settings.NewHandler(stores.Settings, stores.Customers, uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop())
	return h, stores
}

func postForm(target string, form url.Values, u testutil.TestUser) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return testutil.WithUser(req, u)
}

func TestHandleSite_SavesAndStampsUpdater(t *testing.T) {
	h, stores := newTestHandler(t)

	form := url.Values{
		"site_name":   {"TrainingHub NI"},
		"support_url": {"https://support.example.com"},
		"footer_html": {`<p>Contact us</p><script>alert(1)</script>`},
	}
	req := postForm("/settings", form, testutil.PlatformAdmin())
	rec := httptest.NewRecorder()

	h.HandleSite(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	saved, err := stores.Settings.Get(context.Background())
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if saved.SiteName != "TrainingHub NI" {
		t.Errorf("site name = %q, want %q", saved.SiteName, "TrainingHub NI")
	}
	if strings.Contains(saved.FooterHTML, "<script") {
		t.Errorf("footer html kept a script tag: %q", saved.FooterHTML)
	}
	if !strings.Contains(saved.FooterHTML, "Contact us") {
		t.Errorf("footer html lost its content: %q", saved.FooterHTML)
	}
	if saved.UpdatedByID != testutil.PlatformAdmin().ID {
		t.Errorf("updated by = %q, want %q", saved.UpdatedByID, testutil.PlatformAdmin().ID)
	}
	if saved.UpdatedAt == nil {
		t.Error("updated at not stamped")
	}
}

func TestHandleCompany_SavesOwnOrganizationBranding(t *testing.T) {
	h, stores := newTestHandler(t)

	form := url.Values{
		"email":         {"training@belfasttrust.hscni.net"},
		"phone":         {"028 9024 0503"},
		"website":       {"https://belfasttrust.hscni.net"},
		"logo_url":      {"https://cdn.example.com/belfast.png"},
		"primary_color": {"#004c97"},
	}
	req := postForm("/settings/company", form, testutil.CustomerAdmin())
	rec := httptest.NewRecorder()

	h.HandleCompany(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	customer, err := stores.Customers.GetByID(context.Background(), "1")
	if err != nil {
		t.Fatalf("get customer: %v", err)
	}
	if customer.Branding.LogoURL != "https://cdn.example.com/belfast.png" {
		t.Errorf("logo url = %q, want the submitted value", customer.Branding.LogoURL)
	}
	if customer.Branding.Colors.Primary != "#004c97" {
		t.Errorf("primary color = %q, want %q", customer.Branding.Colors.Primary, "#004c97")
	}
	if customer.SubscriptionType != "enterprise" {
		t.Errorf("subscription = %q, company settings must not touch the plan", customer.SubscriptionType)
	}
}
