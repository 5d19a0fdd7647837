// internal/app/store/certificates/certificatestore.go

// Package certificatestore holds the in-memory certificate collection.
//
// Certificates are immutable once issued: there is no Update. At most one
// certificate exists per (user, course) pair; Create enforces the pair
// under the store lock so concurrent issuers cannot double-issue.
package certificatestore

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/dalemusser/traininghub/internal/domain/models"
	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("certificate not found")
	ErrAlreadyIssued = errors.New("a certificate has already been issued for this user and course")
)

type Store struct {
	mu sync.RWMutex
	m  map[string]models.Certificate
}

func New() *Store {
	return &Store{m: make(map[string]models.Certificate)}
}

// Create issues a certificate, failing if one already exists for the
// same (user, course) pair.
func (s *Store) Create(ctx context.Context, c models.Certificate) (models.Certificate, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.IssueDate.IsZero() {
		c.IssueDate = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.m {
		if existing.UserID == c.UserID && existing.CourseID == c.CourseID {
			return models.Certificate{}, ErrAlreadyIssued
		}
	}
	s.m[c.ID] = clone(c)
	return c, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (models.Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.m[id]
	if !ok {
		return models.Certificate{}, ErrNotFound
	}
	return clone(c), nil
}

// GetByUserCourse returns the certificate issued to a user for a course,
// if any.
func (s *Store) GetByUserCourse(ctx context.Context, userID, courseID string) (models.Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.m {
		if c.UserID == userID && c.CourseID == courseID {
			return clone(c), nil
		}
	}
	return models.Certificate{}, ErrNotFound
}

// ExistsForUserCourse reports whether a certificate has been issued to
// the user for the course.
func (s *Store) ExistsForUserCourse(ctx context.Context, userID, courseID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.m {
		if c.UserID == userID && c.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
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

// List returns all certificates, newest issue date first.
func (s *Store) List(ctx context.Context) ([]models.Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Certificate, 0, len(s.m))
	for _, c := range s.m {
		out = append(out, clone(c))
	}
	sortCertificates(out)
	return out, nil
}

// ListByUser returns the certificates issued to one user, newest first.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]models.Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Certificate
	for _, c := range s.m {
		if c.UserID == userID {
			out = append(out, clone(c))
		}
	}
	sortCertificates(out)
	return out, nil
}

func (s *Store) ReplaceAll(ctx context.Context, certs []models.Certificate) error {
	m := make(map[string]models.Certificate, len(certs))
	for _, c := range certs {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		m[c.ID] = clone(c)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = m
	return nil
}

func (s *Store) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

func sortCertificates(certs []models.Certificate) {
	sort.Slice(certs, func(i, j int) bool {
		if !certs[i].IssueDate.Equal(certs[j].IssueDate) {
			return certs[i].IssueDate.After(certs[j].IssueDate)
		}
		return certs[i].CertificateNumber < certs[j].CertificateNumber
	})
}

func clone(c models.Certificate) models.Certificate {
	if c.Signatures != nil {
		sigs := make([]models.Signature, len(c.Signatures))
		copy(sigs, c.Signatures)
		c.Signatures = sigs
	}
	return c
}
