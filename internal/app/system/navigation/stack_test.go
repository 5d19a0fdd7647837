package navigation_test

import (
	"testing"

	"github.com/dalemusser/traininghub/internal/app/system/navigation"
)

func TestStack_StartsAtRoot(t *testing.T) {
	s := navigation.NewStack()
	if got := s.Current(); got != navigation.Root {
		t.Errorf("Current: got %q, want %q", got, navigation.Root)
	}
	if s.CanGoBack() {
		t.Error("expected CanGoBack to be false at root")
	}
}

func TestStack_PushMakesCurrent(t *testing.T) {
	s := navigation.NewStack()
	s = s.Push("/courses")
	s = s.Push("/courses/1")

	if got := s.Current(); got != "/courses/1" {
		t.Errorf("Current: got %q, want %q", got, "/courses/1")
	}
	if !s.CanGoBack() {
		t.Error("expected CanGoBack to be true after pushes")
	}
}

func TestStack_PushAllowsDuplicates(t *testing.T) {
	s := navigation.NewStack()
	s = s.Push("/courses")
	s = s.Push("/courses")

	if len(s) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(s))
	}

	s, dest, moved := s.Back()
	if !moved || dest != "/courses" {
		t.Errorf("Back: got (%q, %v), want (%q, true)", dest, moved, "/courses")
	}
	if got := s.Current(); got != "/courses" {
		t.Errorf("Current after Back: got %q, want %q", got, "/courses")
	}
}

func TestStack_BackStopsAtRoot(t *testing.T) {
	s := navigation.NewStack()
	s = s.Push("/dashboard")

	s, dest, moved := s.Back()
	if !moved || dest != navigation.Root {
		t.Errorf("Back: got (%q, %v), want (%q, true)", dest, moved, navigation.Root)
	}

	// At root: Back is a no-op and reports no movement.
	s, dest, moved = s.Back()
	if moved {
		t.Error("expected no movement at root")
	}
	if dest != navigation.Root {
		t.Errorf("dest at root: got %q, want %q", dest, navigation.Root)
	}
	if len(s) != 1 {
		t.Errorf("history length: got %d, want 1", len(s))
	}
}

// Any interleaving of pushes and backs keeps the history non-empty with
// the current page on top.
func TestStack_InvariantUnderMixedSequence(t *testing.T) {
	s := navigation.NewStack()
	ops := []struct {
		push string // "" means Back
	}{
		{"/courses"}, {"/courses/1"}, {""}, {""}, {""}, // extra Back at root
		{"/users"}, {"/users/u1"}, {""}, {"/groups"},
	}

	for i, op := range ops {
		if op.push != "" {
			s = s.Push(op.push)
		} else {
			s, _, _ = s.Back()
		}
		if len(s) < 1 {
			t.Fatalf("op %d: history became empty", i)
		}
		if got := s.Current(); got != s[len(s)-1] {
			t.Fatalf("op %d: Current %q != top %q", i, got, s[len(s)-1])
		}
	}

	if got := s.Current(); got != "/groups" {
		t.Errorf("final Current: got %q, want %q", got, "/groups")
	}
}

// Going back discards the popped entry permanently: revisiting the same
// page afterwards appends a new entry instead of restoring forward history.
func TestStack_BackDiscardsForwardHistory(t *testing.T) {
	s := navigation.NewStack()
	s = s.Push("/courses")
	s = s.Push("/courses/1")

	s, _, _ = s.Back()
	depthAfterBack := len(s)

	s = s.Push("/courses/1")
	if len(s) != depthAfterBack+1 {
		t.Errorf("expected a new entry, got depth %d (was %d)", len(s), depthAfterBack)
	}
	if got := s.Current(); got != "/courses/1" {
		t.Errorf("Current: got %q, want %q", got, "/courses/1")
	}
}

func TestStack_DepthIsBounded(t *testing.T) {
	s := navigation.NewStack()
	for i := 0; i < 100; i++ {
		s = s.Push("/courses")
		s = s.Push("/users")
	}
	if len(s) > 32 {
		t.Errorf("history grew unbounded: %d entries", len(s))
	}
	if s[0] != navigation.Root {
		t.Errorf("root was dropped: first entry %q", s[0])
	}
	if got := s.Current(); got != "/users" {
		t.Errorf("Current: got %q, want %q", got, "/users")
	}
}
