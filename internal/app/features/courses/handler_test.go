package courses_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dalemusser/traininghub/internal/app/features/courses"
	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/app/system/completion"
	"github.com/dalemusser/traininghub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*courses.Handler, *testutil.Stores) {
	t.Helper()
	stores := testutil.SeededStores(t)
	completer := completion.New(stores.Certificates, stores.Users, stores.Customers)
	h := courses.NewHandler(stores.Courses, stores.Customers, completer, uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop())
	return h, stores
}

func postForm(target string, form url.Values, u testutil.TestUser) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return testutil.WithUser(req, u)
}

func withTopicParams(req *http.Request, courseID, moduleID, topicID string) *http.Request {
	req = testutil.WithChiURLParam(req, "id", courseID)
	req = testutil.WithChiURLParam(req, "moduleID", moduleID)
	return testutil.WithChiURLParam(req, "topicID", topicID)
}

func TestHandleCompleteTopic_MarksTopicDone(t *testing.T) {
	h, stores := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("POST", "/courses/1/modules/m1/topics/t3/complete", testutil.RegularUser())
	req = withTopicParams(req, "1", "m1", "t3")
	rec := httptest.NewRecorder()

	h.HandleCompleteTopic(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/courses/1/view" {
		t.Errorf("redirect = %q, want %q", loc, "/courses/1/view")
	}

	course, err := stores.Courses.GetByID(context.Background(), "1")
	if err != nil {
		t.Fatalf("get course: %v", err)
	}
	mod, ok := course.Module("m1")
	if !ok {
		t.Fatal("module m1 missing")
	}
	topic, ok := mod.Topic("t3")
	if !ok {
		t.Fatal("topic t3 missing")
	}
	if !topic.Completed {
		t.Error("topic not marked completed")
	}
	if topic.CompletedAt == nil {
		t.Error("completion timestamp not set")
	}
}

func TestHandleCompleteTopic_LastTopicIssuesCertificate(t *testing.T) {
	h, stores := newTestHandler(t)

	// user1 already holds a seeded certificate for course 1; use a staff
	// account with none so issuance is observable.
	staff := testutil.TestUser{
		ID:         "u2",
		Name:       "James Murphy",
		Email:      "j.murphy@belfasttrust.hscni.net",
		Role:       "user",
		CustomerID: "1",
	}

	// Complete every topic of course 1 except m1/t4, then submit t4.
	course, err := stores.Courses.GetByID(context.Background(), "1")
	if err != nil {
		t.Fatalf("get course: %v", err)
	}
	for mi := range course.Modules {
		for ti := range course.Modules[mi].Topics {
			topic := &course.Modules[mi].Topics[ti]
			if topic.ID == "t4" {
				continue
			}
			topic.Completed = true
		}
	}
	if err := stores.Courses.Update(context.Background(), course); err != nil {
		t.Fatalf("prepare course: %v", err)
	}

	req := testutil.NewAuthenticatedRequest("POST", "/courses/1/modules/m1/topics/t4/complete", staff)
	req = withTopicParams(req, "1", "m1", "t4")
	rec := httptest.NewRecorder()

	h.HandleCompleteTopic(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	exists, err := stores.Certificates.ExistsForUserCourse(context.Background(), staff.ID, "1")
	if err != nil {
		t.Fatalf("check certificate: %v", err)
	}
	if !exists {
		t.Error("no certificate issued after completing the final topic")
	}

	// A repeat submission must not issue a second certificate.
	before := stores.Certificates.Count(context.Background())
	req = testutil.NewAuthenticatedRequest("POST", "/courses/1/modules/m1/topics/t4/complete", staff)
	req = withTopicParams(req, "1", "m1", "t4")
	h.HandleCompleteTopic(httptest.NewRecorder(), req)
	if after := stores.Certificates.Count(context.Background()); after != before {
		t.Errorf("certificate count = %d after repeat, want %d", after, before)
	}
}

func TestHandleRateTopic_ReplacesOwnRating(t *testing.T) {
	h, stores := newTestHandler(t)

	rate := func(value, comment string) {
		form := url.Values{"rating": {value}, "comment": {comment}}
		req := postForm("/courses/1/modules/m1/topics/t1/rate", form, testutil.RegularUser())
		req = withTopicParams(req, "1", "m1", "t1")
		rec := httptest.NewRecorder()
		h.HandleRateTopic(rec, req)
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
		}
	}

	rate("3", "decent")
	rate("5", "rewatched, excellent")

	course, err := stores.Courses.GetByID(context.Background(), "1")
	if err != nil {
		t.Fatalf("get course: %v", err)
	}
	mod, _ := course.Module("m1")
	topic, _ := mod.Topic("t1")

	mine := 0
	count := 0
	for _, rt := range topic.Ratings {
		if rt.UserID == testutil.RegularUser().ID {
			mine = rt.Rating
			count++
		}
	}
	if count != 1 {
		t.Fatalf("ratings by user = %d, want 1", count)
	}
	if mine != 5 {
		t.Errorf("rating = %d, want 5", mine)
	}
}

func TestHandleShare_GrantsVisibility(t *testing.T) {
	h, stores := newTestHandler(t)

	form := url.Values{"customer_id": {"2"}}
	req := postForm("/courses/1/share", form, testutil.PlatformAdmin())
	req = testutil.WithChiURLParam(req, "id", "1")
	rec := httptest.NewRecorder()

	h.HandleShare(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	course, err := stores.Courses.GetByID(context.Background(), "1")
	if err != nil {
		t.Fatalf("get course: %v", err)
	}
	if !course.SharedWithCustomer("2") {
		t.Error("course not shared with customer 2")
	}

	visible, err := stores.Courses.ListVisibleTo(context.Background(), "2")
	if err != nil {
		t.Fatalf("list visible: %v", err)
	}
	found := false
	for _, c := range visible {
		if c.ID == "1" {
			found = true
		}
	}
	if !found {
		t.Error("shared course missing from customer 2's visible list")
	}
}

func TestHandleShare_OwnerIsNoOp(t *testing.T) {
	h, stores := newTestHandler(t)

	form := url.Values{"customer_id": {"1"}}
	req := postForm("/courses/1/share", form, testutil.PlatformAdmin())
	req = testutil.WithChiURLParam(req, "id", "1")
	rec := httptest.NewRecorder()

	h.HandleShare(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	course, err := stores.Courses.GetByID(context.Background(), "1")
	if err != nil {
		t.Fatalf("get course: %v", err)
	}
	if course.SharedWithCustomer("1") {
		t.Error("owner ended up in its own shared-with list")
	}
}
