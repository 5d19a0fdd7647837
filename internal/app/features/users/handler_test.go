package users_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/app/features/users"
	"github.com/dalemusser/traininghub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*users.Handler, *testutil.Stores) {
	t.Helper()
	stores := testutil.SeededStores(t)
	h := users.NewHandler(stores.Users, stores.Groups, stores.Customers, uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop())
	return h, stores
}

func postForm(target string, form url.Values, u testutil.TestUser) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return testutil.WithUser(req, u)
}

func TestHandleCreate_CustomerAdminScopedToOwnOrganization(t *testing.T) {
	h, stores := newTestHandler(t)

	form := url.Values{
		"first_name":  {"Aoife"},
		"last_name":   {"Byrne"},
		"email":       {"a.byrne@belfasttrust.hscni.net"},
		"role":        {"user"},
		"status":      {"active"},
		"customer_id": {"2"}, // must be overridden to the admin's own org
	}
	req := postForm("/users", form, testutil.CustomerAdmin())
	rec := httptest.NewRecorder()

	h.HandleCreate(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	created, err := stores.Users.GetByEmail(context.Background(), "a.byrne@belfasttrust.hscni.net")
	if err != nil {
		t.Fatalf("get created user: %v", err)
	}
	if created.CustomerID != "1" {
		t.Errorf("customer id = %q, want %q (own organization)", created.CustomerID, "1")
	}
}

func TestHandleCreate_AssignsGroupMembership(t *testing.T) {
	h, stores := newTestHandler(t)

	form := url.Values{
		"first_name": {"Niall"},
		"last_name":  {"Duffy"},
		"email":      {"n.duffy@belfasttrust.hscni.net"},
		"role":       {"user"},
		"status":     {"active"},
		"group_id":   {"g1"},
	}
	req := postForm("/users", form, testutil.CustomerAdmin())
	rec := httptest.NewRecorder()

	h.HandleCreate(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	created, err := stores.Users.GetByEmail(context.Background(), "n.duffy@belfasttrust.hscni.net")
	if err != nil {
		t.Fatalf("get created user: %v", err)
	}
	g, err := stores.Groups.GetByID(context.Background(), "g1")
	if err != nil {
		t.Fatalf("get group: %v", err)
	}
	if !g.HasMember(created.ID) {
		t.Error("created user missing from group member list")
	}
}

func TestHandleEdit_GroupReassignmentSyncsMembership(t *testing.T) {
	h, stores := newTestHandler(t)

	// u2 is seeded into g1.
	form := url.Values{
		"first_name": {"James"},
		"last_name":  {"Murphy"},
		"email":      {"j.murphy@belfasttrust.hscni.net"},
		"role":       {"user"},
		"status":     {"active"},
		"group_id":   {"g2"},
	}
	req := postForm("/users/u2/edit", form, testutil.CustomerAdmin())
	req = testutil.WithChiURLParam(req, "id", "u2")
	rec := httptest.NewRecorder()

	h.HandleEdit(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	oldGroup, err := stores.Groups.GetByID(context.Background(), "g1")
	if err != nil {
		t.Fatalf("get g1: %v", err)
	}
	newGroup, err := stores.Groups.GetByID(context.Background(), "g2")
	if err != nil {
		t.Fatalf("get g2: %v", err)
	}
	if oldGroup.HasMember("u2") {
		t.Error("u2 still a member of g1 after reassignment")
	}
	if !newGroup.HasMember("u2") {
		t.Error("u2 not a member of g2 after reassignment")
	}
}

func TestHandleDelete_SelfDeletionBlocked(t *testing.T) {
	h, stores := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("POST", "/users/customer1/delete", testutil.CustomerAdmin())
	req = testutil.WithChiURLParam(req, "id", "customer1")
	rec := httptest.NewRecorder()

	// The forbidden page render may panic without initialized templates.
	func() {
		defer func() { _ = recover() }()
		h.HandleDelete(rec, req)
	}()

	if _, err := stores.Users.GetByID(context.Background(), "customer1"); err != nil {
		t.Error("self-deletion went through; account is gone")
	}
}
