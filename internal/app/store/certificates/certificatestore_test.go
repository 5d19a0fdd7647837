package certificatestore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	certificatestore "github.com/dalemusser/traininghub/internal/app/store/certificates"
	"github.com/dalemusser/traininghub/internal/domain/models"
)

func TestStore_Create(t *testing.T) {
	store := certificatestore.New()
	ctx := context.Background()

	created, err := store.Create(ctx, models.Certificate{
		UserID:            "user1",
		CourseID:          "course1",
		CourseName:        "Advanced Cardiac Life Support",
		CertificateNumber: "ADVA-2024-042",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Error("expected an id to be assigned")
	}
	if created.IssueDate.IsZero() {
		t.Error("expected IssueDate to be set")
	}

	found, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.CertificateNumber != "ADVA-2024-042" {
		t.Errorf("CertificateNumber: got %q, want %q", found.CertificateNumber, "ADVA-2024-042")
	}
}

func TestStore_Create_DuplicatePairRejected(t *testing.T) {
	store := certificatestore.New()
	ctx := context.Background()

	if _, err := store.Create(ctx, models.Certificate{UserID: "user1", CourseID: "course1"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	_, err := store.Create(ctx, models.Certificate{UserID: "user1", CourseID: "course1"})
	if !errors.Is(err, certificatestore.ErrAlreadyIssued) {
		t.Errorf("expected ErrAlreadyIssued, got %v", err)
	}

	// Same user, different course is fine.
	if _, err := store.Create(ctx, models.Certificate{UserID: "user1", CourseID: "course2"}); err != nil {
		t.Errorf("Create for second course failed: %v", err)
	}
	// Same course, different user is fine.
	if _, err := store.Create(ctx, models.Certificate{UserID: "user2", CourseID: "course1"}); err != nil {
		t.Errorf("Create for second user failed: %v", err)
	}
}

func TestStore_ExistsForUserCourse(t *testing.T) {
	store := certificatestore.New()
	ctx := context.Background()

	ok, err := store.ExistsForUserCourse(ctx, "user1", "course1")
	if err != nil {
		t.Fatalf("ExistsForUserCourse failed: %v", err)
	}
	if ok {
		t.Error("expected no certificate before issue")
	}

	if _, err := store.Create(ctx, models.Certificate{UserID: "user1", CourseID: "course1"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	ok, err = store.ExistsForUserCourse(ctx, "user1", "course1")
	if err != nil {
		t.Fatalf("ExistsForUserCourse failed: %v", err)
	}
	if !ok {
		t.Error("expected certificate to exist after issue")
	}
}

func TestStore_ListByUser_NewestFirst(t *testing.T) {
	store := certificatestore.New()
	ctx := context.Background()

	older := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	if _, err := store.Create(ctx, models.Certificate{UserID: "user1", CourseID: "c1", IssueDate: older, CertificateNumber: "OLD"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.Certificate{UserID: "user1", CourseID: "c2", IssueDate: newer, CertificateNumber: "NEW"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.Certificate{UserID: "user2", CourseID: "c1", IssueDate: newer}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.ListByUser(ctx, "user1")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 certificates, got %d", len(got))
	}
	if got[0].CertificateNumber != "NEW" || got[1].CertificateNumber != "OLD" {
		t.Errorf("expected newest first, got %q then %q", got[0].CertificateNumber, got[1].CertificateNumber)
	}
}
