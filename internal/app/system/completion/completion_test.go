package completion_test

import (
	"context"
	"testing"
	"time"

	certificatestore "github.com/dalemusser/traininghub/internal/app/store/certificates"
	customerstore "github.com/dalemusser/traininghub/internal/app/store/customers"
	userstore "github.com/dalemusser/traininghub/internal/app/store/users"
	"github.com/dalemusser/traininghub/internal/app/system/completion"
	"github.com/dalemusser/traininghub/internal/domain/models"
)

func newEvaluator(t *testing.T) (*completion.Evaluator, *certificatestore.Store) {
	t.Helper()
	ctx := context.Background()

	certs := certificatestore.New()
	users := userstore.New()
	customers := customerstore.New()

	if _, err := customers.Upsert(ctx, models.Customer{ID: "1", Name: "Belfast Trust"}); err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	if _, err := users.Upsert(ctx, models.UserAccount{
		ID: "user1", FirstName: "Regular", LastName: "User",
		Email: "user@belfasttrust.hscni.net", Role: models.RoleUser, CustomerID: "1",
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	e := completion.New(certs, users, customers)
	e.Rand = func(n int) int { return 42 }
	e.Now = func() time.Time { return time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC) }
	return e, certs
}

func oneTopicCourse(completed bool) models.Course {
	return models.Course{
		ID:    "c1",
		Title: "Advanced Cardiac Life Support (ACLS)",
		Modules: []models.Module{{
			ID:     "m1",
			Topics: []models.Topic{{ID: "t1", Title: "Recognition", Completed: completed}},
		}},
	}
}

func TestCourseComplete(t *testing.T) {
	tests := []struct {
		name   string
		course models.Course
		want   bool
	}{
		{"all topics completed", oneTopicCourse(true), true},
		{"topic incomplete", oneTopicCourse(false), false},
		{"no modules", models.Course{ID: "c1"}, false},
		{"module without topics", models.Course{
			ID:      "c1",
			Modules: []models.Module{{ID: "m1"}},
		}, false},
		{"one incomplete among many", models.Course{
			ID: "c1",
			Modules: []models.Module{
				{ID: "m1", Topics: []models.Topic{{ID: "t1", Completed: true}, {ID: "t2", Completed: true}}},
				{ID: "m2", Topics: []models.Topic{{ID: "t3", Completed: false}}},
			},
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := completion.CourseComplete(tt.course); got != tt.want {
				t.Errorf("CourseComplete: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateAndIssue_IssuesOnce(t *testing.T) {
	e, certs := newEvaluator(t)
	ctx := context.Background()
	course := oneTopicCourse(true)

	cert, issued, err := e.EvaluateAndIssue(ctx, course, "user1")
	if err != nil {
		t.Fatalf("EvaluateAndIssue failed: %v", err)
	}
	if !issued {
		t.Fatal("expected a certificate to be issued")
	}
	if cert.CertificateNumber != "ADVA-2024-042" {
		t.Errorf("CertificateNumber: got %q, want %q", cert.CertificateNumber, "ADVA-2024-042")
	}
	if cert.UserName != "Regular User" {
		t.Errorf("UserName: got %q, want %q", cert.UserName, "Regular User")
	}
	if cert.CustomerName != "Belfast Trust" {
		t.Errorf("CustomerName: got %q, want %q", cert.CustomerName, "Belfast Trust")
	}
	if cert.Grade != "Distinction" {
		t.Errorf("Grade: got %q, want %q", cert.Grade, "Distinction")
	}
	wantExpiry := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	if cert.ExpiryDate == nil || !cert.ExpiryDate.Equal(wantExpiry) {
		t.Errorf("ExpiryDate: got %v, want %v", cert.ExpiryDate, wantExpiry)
	}
	if len(cert.Signatures) != 2 {
		t.Errorf("expected 2 signatures, got %d", len(cert.Signatures))
	}

	// Resubmitting the completed topic must not issue a second certificate.
	_, issued, err = e.EvaluateAndIssue(ctx, course, "user1")
	if err != nil {
		t.Fatalf("second EvaluateAndIssue failed: %v", err)
	}
	if issued {
		t.Error("expected repeat evaluation not to issue")
	}
	if n := certs.Count(ctx); n != 1 {
		t.Errorf("expected 1 stored certificate, got %d", n)
	}
}

func TestEvaluateAndIssue_IncompleteCourse(t *testing.T) {
	e, certs := newEvaluator(t)
	ctx := context.Background()

	_, issued, err := e.EvaluateAndIssue(ctx, oneTopicCourse(false), "user1")
	if err != nil {
		t.Fatalf("EvaluateAndIssue failed: %v", err)
	}
	if issued {
		t.Error("expected no issuance for an incomplete course")
	}
	if n := certs.Count(ctx); n != 0 {
		t.Errorf("expected no stored certificates, got %d", n)
	}
}

func TestEvaluateAndIssue_SameCourseOtherUser(t *testing.T) {
	e, certs := newEvaluator(t)
	ctx := context.Background()

	if _, err := certs.Create(ctx, models.Certificate{UserID: "someone-else", CourseID: "c1"}); err != nil {
		t.Fatalf("seed certificate: %v", err)
	}

	_, issued, err := e.EvaluateAndIssue(ctx, oneTopicCourse(true), "user1")
	if err != nil {
		t.Fatalf("EvaluateAndIssue failed: %v", err)
	}
	if !issued {
		t.Error("another user's certificate must not block issuance")
	}
}
