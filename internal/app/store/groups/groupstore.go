// internal/app/store/groups/groupstore.go

// Package groupstore holds the in-memory group collection.
package groupstore

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
	ErrNotFound       = errors.New("group not found")
	ErrDuplicateGroup = errors.New("a group with this name already exists for this customer")
)

type Store struct {
	mu sync.RWMutex
	m  map[string]models.Group
}

func New() *Store {
	return &Store{m: make(map[string]models.Group)}
}

// Create adds a group. Names are unique case-insensitively within a
// customer; the same name may exist under different customers.
func (s *Store) Create(ctx context.Context, g models.Group) (models.Group, error) {
	now := time.Now().UTC()
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	g.NameCI = text.Fold(g.Name)
	if g.Type == "" {
		g.Type = models.GroupTypeTeam
	}
	g.CreatedAt = now
	g.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.m {
		if existing.CustomerID == g.CustomerID && existing.NameCI == g.NameCI {
			return models.Group{}, ErrDuplicateGroup
		}
	}
	s.m[g.ID] = clone(g)
	return g, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.m[id]
	if !ok {
		return models.Group{}, ErrNotFound
	}
	return clone(g), nil
}

func (s *Store) Update(ctx context.Context, g models.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.m[g.ID]
	if !ok {
		return ErrNotFound
	}
	g.NameCI = text.Fold(g.Name)
	for _, existing := range s.m {
		if existing.ID != g.ID && existing.CustomerID == g.CustomerID && existing.NameCI == g.NameCI {
			return ErrDuplicateGroup
		}
	}
	g.CreatedAt = cur.CreatedAt
	g.UpdatedAt = time.Now().UTC()
	s.m[g.ID] = clone(g)
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

// List returns all groups sorted by folded name.
func (s *Store) List(ctx context.Context) ([]models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Group, 0, len(s.m))
	for _, g := range s.m {
		out = append(out, clone(g))
	}
	sortGroups(out)
	return out, nil
}

// ListByCustomer returns the groups belonging to one customer.
func (s *Store) ListByCustomer(ctx context.Context, customerID string) ([]models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Group
	for _, g := range s.m {
		if g.CustomerID == customerID {
			out = append(out, clone(g))
		}
	}
	sortGroups(out)
	return out, nil
}

func (s *Store) ReplaceAll(ctx context.Context, groups []models.Group) error {
	m := make(map[string]models.Group, len(groups))
	for _, g := range groups {
		if g.ID == "" {
			g.ID = uuid.NewString()
		}
		if g.NameCI == "" {
			g.NameCI = text.Fold(g.Name)
		}
		m[g.ID] = clone(g)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = m
	return nil
}

// AddMember appends a user to the group's member list. Adding a user who
// is already a member is a no-op.
func (s *Store) AddMember(ctx context.Context, groupID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.m[groupID]
	if !ok {
		return ErrNotFound
	}
	for _, id := range g.Members {
		if id == userID {
			return nil
		}
	}
	g.Members = append(append([]string(nil), g.Members...), userID)
	g.UpdatedAt = time.Now().UTC()
	s.m[groupID] = g
	return nil
}

// RemoveMember drops a user from the group's member list. Removing a
// user who is not a member is a no-op.
func (s *Store) RemoveMember(ctx context.Context, groupID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.m[groupID]
	if !ok {
		return ErrNotFound
	}
	members := make([]string, 0, len(g.Members))
	for _, id := range g.Members {
		if id != userID {
			members = append(members, id)
		}
	}
	g.Members = members
	g.UpdatedAt = time.Now().UTC()
	s.m[groupID] = g
	return nil
}

func (s *Store) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

func sortGroups(groups []models.Group) {
	sort.Slice(groups, func(i, j int) bool { return groups[i].NameCI < groups[j].NameCI })
}

func clone(g models.Group) models.Group {
	if g.Members != nil {
		members := make([]string, len(g.Members))
		copy(members, g.Members)
		g.Members = members
	}
	return g
}
