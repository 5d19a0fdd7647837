// internal/app/store/courses/coursestore.go

// Package coursestore holds the in-memory course collection.
//
// Courses are stored as whole documents: module, topic, and rating edits
// all go through Update with the full course, so concurrent writers are
// last-writer-wins at course granularity. Reads return deep copies so
// callers may mutate freely before writing back.
package coursestore

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("course not found")
	ErrDuplicateTitle = errors.New("a course with this title already exists")
)

type Store struct {
	mu sync.RWMutex
	m  map[string]models.Course
}

func New() *Store {
	return &Store{m: make(map[string]models.Course)}
}

func (s *Store) Create(ctx context.Context, c models.Course) (models.Course, error) {
	now := time.Now().UTC()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.TitleCI = text.Fold(c.Title)
	if c.Status == "" {
		c.Status = models.CourseDraft
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.m {
		if existing.TitleCI == c.TitleCI {
			return models.Course{}, ErrDuplicateTitle
		}
	}
	s.m[c.ID] = clone(c)
	return c, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.m[id]
	if !ok {
		return models.Course{}, ErrNotFound
	}
	return clone(c), nil
}

// Update replaces the stored course wholesale (last-writer-wins) and
// refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, c models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.m[c.ID]
	if !ok {
		return ErrNotFound
	}
	c.TitleCI = text.Fold(c.Title)
	for _, existing := range s.m {
		if existing.ID != c.ID && existing.TitleCI == c.TitleCI {
			return ErrDuplicateTitle
		}
	}
	c.CreatedAt = cur.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	s.m[c.ID] = clone(c)
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[id]; !ok {
		return 0, nil
	}
	delete(s.m, id)
	return 1, nil
}

// List returns all courses sorted by folded title.
func (s *Store) List(ctx context.Context) ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Course, 0, len(s.m))
	for _, c := range s.m {
		out = append(out, clone(c))
	}
	sortCourses(out)
	return out, nil
}

// ListVisibleTo returns the courses a customer may see: the ones it owns
// plus the ones shared with it.
func (s *Store) ListVisibleTo(ctx context.Context, customerID string) ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Course
	for _, c := range s.m {
		if c.CustomerID == customerID || c.SharedWithCustomer(customerID) {
			out = append(out, clone(c))
		}
	}
	sortCourses(out)
	return out, nil
}

// ListByCustomer returns only the courses a customer owns.
func (s *Store) ListByCustomer(ctx context.Context, customerID string) ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Course
	for _, c := range s.m {
		if c.CustomerID == customerID {
			out = append(out, clone(c))
		}
	}
	sortCourses(out)
	return out, nil
}

func (s *Store) ReplaceAll(ctx context.Context, courses []models.Course) error {
	m := make(map[string]models.Course, len(courses))
	for _, c := range courses {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if c.TitleCI == "" {
			c.TitleCI = text.Fold(c.Title)
		}
		m[c.ID] = clone(c)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = m
	return nil
}

// Share grants a customer read-only visibility of a course. Sharing with
// a customer that already has the grant is a no-op.
func (s *Store) Share(ctx context.Context, courseID, customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.m[courseID]
	if !ok {
		return ErrNotFound
	}
	if c.SharedWithCustomer(customerID) {
		return nil
	}
	c.SharedWith = append(append([]string(nil), c.SharedWith...), customerID)
	c.UpdatedAt = time.Now().UTC()
	s.m[courseID] = c
	return nil
}

// Unshare revokes a customer's read-only grant. Revoking a grant the
// customer does not hold is a no-op.
func (s *Store) Unshare(ctx context.Context, courseID, customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.m[courseID]
	if !ok {
		return ErrNotFound
	}
	shared := make([]string, 0, len(c.SharedWith))
	for _, id := range c.SharedWith {
		if id != customerID {
			shared = append(shared, id)
		}
	}
	c.SharedWith = shared
	c.UpdatedAt = time.Now().UTC()
	s.m[courseID] = c
	return nil
}

func (s *Store) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

func sortCourses(courses []models.Course) {
	sort.Slice(courses, func(i, j int) bool { return courses[i].TitleCI < courses[j].TitleCI })
}

// clone deep-copies a course down through modules, topics, and ratings.
func clone(c models.Course) models.Course {
	if c.SharedWith != nil {
		shared := make([]string, len(c.SharedWith))
		copy(shared, c.SharedWith)
		c.SharedWith = shared
	}
	if c.Modules == nil {
		return c
	}
	modules := make([]models.Module, len(c.Modules))
	copy(modules, c.Modules)
	for i := range modules {
		if modules[i].Topics == nil {
			continue
		}
		topics := make([]models.Topic, len(modules[i].Topics))
		copy(topics, modules[i].Topics)
		for j := range topics {
			if topics[j].Ratings != nil {
				ratings := make([]models.Rating, len(topics[j].Ratings))
				copy(ratings, topics[j].Ratings)
				topics[j].Ratings = ratings
			}
		}
		modules[i].Topics = topics
	}
	c.Modules = modules
	return c
}
