package coursestore_test

import (
	"context"
	"errors"
	"testing"

	coursestore "github.com/dalemusser/traininghub/internal/app/store/courses"
	"github.com/dalemusser/traininghub/internal/domain/models"
)

func TestStore_CreateAndGet(t *testing.T) {
	store := coursestore.New()
	ctx := context.Background()

	created, err := store.Create(ctx, models.Course{
		Title:      "Advanced Cardiac Life Support",
		CustomerID: "1",
		Status:     models.CoursePublished,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Error("expected an id to be assigned")
	}
	if created.TitleCI != "advanced cardiac life support" {
		t.Errorf("TitleCI: got %q, want %q", created.TitleCI, "advanced cardiac life support")
	}

	found, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Title != "Advanced Cardiac Life Support" {
		t.Errorf("Title: got %q, want %q", found.Title, "Advanced Cardiac Life Support")
	}
}

func TestStore_Create_DuplicateTitleCI(t *testing.T) {
	store := coursestore.New()
	ctx := context.Background()

	if _, err := store.Create(ctx, models.Course{Title: "Basic Life Support", CustomerID: "1"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	_, err := store.Create(ctx, models.Course{Title: "BASIC life support", CustomerID: "2"})
	if !errors.Is(err, coursestore.ErrDuplicateTitle) {
		t.Errorf("expected ErrDuplicateTitle, got %v", err)
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	store := coursestore.New()
	_, err := store.GetByID(context.Background(), "missing")
	if !errors.Is(err, coursestore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_GetByID_ReturnsDeepCopy(t *testing.T) {
	store := coursestore.New()
	ctx := context.Background()

	created, err := store.Create(ctx, models.Course{
		Title:      "ACLS",
		CustomerID: "1",
		Modules: []models.Module{{
			ID:     "m1",
			Title:  "Airway Management",
			Topics: []models.Topic{{ID: "t1", Title: "Intubation", Duration: 30}},
		}},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	got.Modules[0].Topics[0].Completed = true

	again, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if again.Modules[0].Topics[0].Completed {
		t.Error("mutating a returned course leaked into the store")
	}
}

func TestStore_ListVisibleTo(t *testing.T) {
	store := coursestore.New()
	ctx := context.Background()

	owned, err := store.Create(ctx, models.Course{Title: "Owned", CustomerID: "1"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	shared, err := store.Create(ctx, models.Course{Title: "Shared", CustomerID: "2"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.Course{Title: "Hidden", CustomerID: "2"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Share(ctx, shared.ID, "1"); err != nil {
		t.Fatalf("Share failed: %v", err)
	}

	visible, err := store.ListVisibleTo(ctx, "1")
	if err != nil {
		t.Fatalf("ListVisibleTo failed: %v", err)
	}
	if len(visible) != 2 {
		t.Fatalf("expected 2 visible courses, got %d", len(visible))
	}
	ids := map[string]bool{visible[0].ID: true, visible[1].ID: true}
	if !ids[owned.ID] || !ids[shared.ID] {
		t.Errorf("expected owned and shared courses, got %v", ids)
	}
}

func TestStore_ShareIsIdempotent(t *testing.T) {
	store := coursestore.New()
	ctx := context.Background()

	c, err := store.Create(ctx, models.Course{Title: "ACLS", CustomerID: "1"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := store.Share(ctx, c.ID, "2"); err != nil {
			t.Fatalf("Share %d failed: %v", i, err)
		}
	}

	got, err := store.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.SharedWith) != 1 {
		t.Errorf("expected 1 share grant, got %d", len(got.SharedWith))
	}
}

func TestStore_Unshare(t *testing.T) {
	store := coursestore.New()
	ctx := context.Background()

	c, err := store.Create(ctx, models.Course{Title: "ACLS", CustomerID: "1"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Share(ctx, c.ID, "2"); err != nil {
		t.Fatalf("Share failed: %v", err)
	}
	if err := store.Unshare(ctx, c.ID, "2"); err != nil {
		t.Fatalf("Unshare failed: %v", err)
	}
	// Revoking again is a no-op.
	if err := store.Unshare(ctx, c.ID, "2"); err != nil {
		t.Fatalf("second Unshare failed: %v", err)
	}

	got, err := store.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.SharedWith) != 0 {
		t.Errorf("expected no share grants, got %d", len(got.SharedWith))
	}
}

func TestStore_Update_PreservesCreatedAt(t *testing.T) {
	store := coursestore.New()
	ctx := context.Background()

	c, err := store.Create(ctx, models.Course{Title: "ACLS", CustomerID: "1"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	c.Title = "ACLS Provider"
	if err := store.Update(ctx, c); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "ACLS Provider" {
		t.Errorf("Title: got %q, want %q", got.Title, "ACLS Provider")
	}
	if !got.CreatedAt.Equal(c.CreatedAt) {
		t.Errorf("CreatedAt changed on update: got %v, want %v", got.CreatedAt, c.CreatedAt)
	}
}

func TestStore_Delete(t *testing.T) {
	store := coursestore.New()
	ctx := context.Background()

	c, err := store.Create(ctx, models.Course{Title: "ACLS", CustomerID: "1"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	n, err := store.Delete(ctx, c.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 deleted, got %d", n)
	}
	n, err = store.Delete(ctx, c.ID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 deleted, got %d", n)
	}
}
