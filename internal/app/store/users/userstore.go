// internal/app/store/users/userstore.go

// Package userstore holds the in-memory user account collection.
package userstore

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
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("a user with this email already exists")
)

type Store struct {
	mu sync.RWMutex
	m  map[string]models.UserAccount
}

func New() *Store {
	return &Store{m: make(map[string]models.UserAccount)}
}

func (s *Store) Create(ctx context.Context, u models.UserAccount) (models.UserAccount, error) {
	now := time.Now().UTC()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Email = text.Fold(u.Email)
	u.FullNameCI = text.Fold(u.FullName())
	if u.Status == "" {
		u.Status = models.StatusActive
	}
	u.CreatedAt = now
	u.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.m {
		if existing.Email == u.Email {
			return models.UserAccount{}, ErrDuplicateEmail
		}
	}
	s.m[u.ID] = u
	return u, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (models.UserAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.m[id]
	if !ok {
		return models.UserAccount{}, ErrNotFound
	}
	return u, nil
}

// GetByEmail looks a user up by folded email.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.UserAccount, error) {
	folded := text.Fold(email)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.m {
		if u.Email == folded {
			return u, nil
		}
	}
	return models.UserAccount{}, ErrNotFound
}

// Update replaces the stored user wholesale (last-writer-wins) and
// refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, u models.UserAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.m[u.ID]
	if !ok {
		return ErrNotFound
	}
	u.Email = text.Fold(u.Email)
	u.FullNameCI = text.Fold(u.FullName())
	for _, existing := range s.m {
		if existing.ID != u.ID && existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	u.CreatedAt = cur.CreatedAt
	u.UpdatedAt = time.Now().UTC()
	s.m[u.ID] = u
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

// List returns all users sorted by folded full name.
func (s *Store) List(ctx context.Context) ([]models.UserAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.UserAccount, 0, len(s.m))
	for _, u := range s.m {
		out = append(out, u)
	}
	sortUsers(out)
	return out, nil
}

// ListByCustomer returns the users belonging to one customer.
func (s *Store) ListByCustomer(ctx context.Context, customerID string) ([]models.UserAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.UserAccount
	for _, u := range s.m {
		if u.CustomerID == customerID {
			out = append(out, u)
		}
	}
	sortUsers(out)
	return out, nil
}

// ListByGroup returns the users assigned to one group.
func (s *Store) ListByGroup(ctx context.Context, groupID string) ([]models.UserAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.UserAccount
	for _, u := range s.m {
		if u.GroupID == groupID {
			out = append(out, u)
		}
	}
	sortUsers(out)
	return out, nil
}

func (s *Store) ReplaceAll(ctx context.Context, users []models.UserAccount) error {
	m := make(map[string]models.UserAccount, len(users))
	for _, u := range users {
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		u.Email = text.Fold(u.Email)
		if u.FullNameCI == "" {
			u.FullNameCI = text.Fold(u.FullName())
		}
		m[u.ID] = u
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = m
	return nil
}

// Upsert inserts or replaces a single user without the duplicate-email
// guard, preserving CreatedAt when the record already exists.
func (s *Store) Upsert(ctx context.Context, u models.UserAccount) (models.UserAccount, error) {
	now := time.Now().UTC()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Email = text.Fold(u.Email)
	u.FullNameCI = text.Fold(u.FullName())
	u.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.m[u.ID]; ok {
		u.CreatedAt = cur.CreatedAt
	} else if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	s.m[u.ID] = u
	return u, nil
}

// SetLastLogin stamps the user's most recent sign-in time.
func (s *Store) SetLastLogin(ctx context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.m[id]
	if !ok {
		return ErrNotFound
	}
	t := at.UTC()
	u.LastLogin = &t
	u.UpdatedAt = t
	s.m[id] = u
	return nil
}

func (s *Store) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

func sortUsers(users []models.UserAccount) {
	sort.Slice(users, func(i, j int) bool { return users[i].FullNameCI < users[j].FullNameCI })
}
