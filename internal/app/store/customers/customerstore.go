// internal/app/store/customers/customerstore.go

// Package customerstore holds the in-memory customer collection.
//
// The process owns a single Store instance, created in bootstrap and
// injected through Deps. Writes are serialized by a mutex per store;
// whole-entity updates are last-writer-wins. Nothing survives a process
// restart.
package customerstore

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
	ErrNotFound          = errors.New("customer not found")
	ErrDuplicateCustomer = errors.New("a customer with this name already exists")
)

type Store struct {
	mu sync.RWMutex
	m  map[string]models.Customer
}

func New() *Store {
	return &Store{m: make(map[string]models.Customer)}
}

// Create adds a customer, assigning an id, CI fields, defaults, and
// timestamps. Names are unique case-insensitively.
func (s *Store) Create(ctx context.Context, c models.Customer) (models.Customer, error) {
	now := time.Now().UTC()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.NameCI = text.Fold(c.Name)
	if c.Status == "" {
		c.Status = models.StatusActive
	}
	if c.SubscriptionType == "" {
		c.SubscriptionType = models.SubscriptionBasic
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.m {
		if existing.NameCI == c.NameCI {
			return models.Customer{}, ErrDuplicateCustomer
		}
	}
	s.m[c.ID] = clone(c)
	return c, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.m[id]
	if !ok {
		return models.Customer{}, ErrNotFound
	}
	return clone(c), nil
}

// Update replaces the stored customer wholesale (last-writer-wins) and
// refreshes UpdatedAt. CI fields are recomputed from the new values.
func (s *Store) Update(ctx context.Context, c models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.m[c.ID]
	if !ok {
		return ErrNotFound
	}
	c.NameCI = text.Fold(c.Name)
	for _, existing := range s.m {
		if existing.ID != c.ID && existing.NameCI == c.NameCI {
			return ErrDuplicateCustomer
		}
	}
	c.CreatedAt = cur.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	s.m[c.ID] = clone(c)
	return nil
}

// Delete removes a customer by id. Returns the number of records deleted
// (0 or 1).
func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[id]; !ok {
		return 0, nil
	}
	delete(s.m, id)
	return 1, nil
}

// List returns all customers sorted by folded name.
func (s *Store) List(ctx context.Context) ([]models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Customer, 0, len(s.m))
	for _, c := range s.m {
		out = append(out, clone(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NameCI < out[j].NameCI })
	return out, nil
}

// ReplaceAll swaps the entire collection for the given one.
func (s *Store) ReplaceAll(ctx context.Context, customers []models.Customer) error {
	m := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if c.NameCI == "" {
			c.NameCI = text.Fold(c.Name)
		}
		m[c.ID] = clone(c)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = m
	return nil
}

// Upsert inserts or replaces a single customer without the duplicate-name
// guard, preserving CreatedAt when the record already exists.
func (s *Store) Upsert(ctx context.Context, c models.Customer) (models.Customer, error) {
	now := time.Now().UTC()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.NameCI = text.Fold(c.Name)
	c.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.m[c.ID]; ok {
		c.CreatedAt = cur.CreatedAt
	} else if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	s.m[c.ID] = clone(c)
	return c, nil
}

// ExistsByNameCI checks if a customer with the given case-insensitive
// name exists.
func (s *Store) ExistsByNameCI(ctx context.Context, nameCI string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.m {
		if c.NameCI == nameCI {
			return true, nil
		}
	}
	return false, nil
}

// Count returns the number of customers.
func (s *Store) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// clone copies a customer deeply enough that callers cannot reach store
// memory through slices.
func clone(c models.Customer) models.Customer {
	if c.Users != nil {
		users := make([]models.UserAccount, len(c.Users))
		copy(users, c.Users)
		c.Users = users
	}
	return c
}
