package groups_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/app/features/groups"
	"github.com/dalemusser/traininghub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*groups.Handler, *testutil.Stores) {
	t.Helper()
	stores := testutil.SeededStores(t)
	h := groups.NewHandler(stores.Groups, stores.Users, stores.Customers, uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop())
	return h, stores
}

func postForm(target string, form url.Values, u testutil.TestUser) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return testutil.WithUser(req, u)
}

func TestHandleCreate_LandsInOwnOrganization(t *testing.T) {
	h, stores := newTestHandler(t)

	form := url.Values{
		"name":        {"Ulster Hospital"},
		"type":        {"location"},
		"description": {"Ulster Hospital staff"},
	}
	req := postForm("/groups", form, testutil.CustomerAdmin())
	rec := httptest.NewRecorder()

	h.HandleCreate(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	all, err := stores.Groups.ListByCustomer(context.Background(), "1")
	if err != nil {
		t.Fatalf("list groups: %v", err)
	}
	found := false
	for _, g := range all {
		if g.Name == "Ulster Hospital" {
			found = true
			if g.CustomerID != "1" {
				t.Errorf("customer id = %q, want %q", g.CustomerID, "1")
			}
		}
	}
	if !found {
		t.Error("created group not found in the admin's organization")
	}
}

func TestHandleAddMember_ReassignsFromPreviousGroup(t *testing.T) {
	h, stores := newTestHandler(t)

	// u2 starts out in g1; adding to g2 must release the old membership.
	form := url.Values{"user_id": {"u2"}}
	req := postForm("/groups/g2/members", form, testutil.CustomerAdmin())
	req = testutil.WithChiURLParam(req, "id", "g2")
	rec := httptest.NewRecorder()

	h.HandleAddMember(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/groups/g2/view" {
		t.Errorf("redirect = %q, want %q", loc, "/groups/g2/view")
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
		t.Error("u2 still a member of g1")
	}
	if !newGroup.HasMember("u2") {
		t.Error("u2 not a member of g2")
	}

	account, err := stores.Users.GetByID(context.Background(), "u2")
	if err != nil {
		t.Fatalf("get u2: %v", err)
	}
	if account.GroupID != "g2" {
		t.Errorf("account group id = %q, want %q", account.GroupID, "g2")
	}
}

func TestHandleRemoveMember_ClearsAccountAssignment(t *testing.T) {
	h, stores := newTestHandler(t)

	form := url.Values{"user_id": {"u2"}}
	req := postForm("/groups/g1/members/remove", form, testutil.CustomerAdmin())
	req = testutil.WithChiURLParam(req, "id", "g1")
	rec := httptest.NewRecorder()

	h.HandleRemoveMember(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	g, err := stores.Groups.GetByID(context.Background(), "g1")
	if err != nil {
		t.Fatalf("get g1: %v", err)
	}
	if g.HasMember("u2") {
		t.Error("u2 still a member of g1")
	}
	account, err := stores.Users.GetByID(context.Background(), "u2")
	if err != nil {
		t.Fatalf("get u2: %v", err)
	}
	if account.GroupID != "" {
		t.Errorf("account group id = %q, want empty", account.GroupID)
	}
}

func TestHandleDelete_DetachesMembers(t *testing.T) {
	h, stores := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("POST", "/groups/g1/delete", testutil.CustomerAdmin())
	req = testutil.WithChiURLParam(req, "id", "g1")
	rec := httptest.NewRecorder()

	h.HandleDelete(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	if _, err := stores.Groups.GetByID(context.Background(), "g1"); err == nil {
		t.Error("g1 still present after delete")
	}
	account, err := stores.Users.GetByID(context.Background(), "u2")
	if err != nil {
		t.Fatalf("get u2: %v", err)
	}
	if account.GroupID != "" {
		t.Errorf("account group id = %q, want empty", account.GroupID)
	}
}
