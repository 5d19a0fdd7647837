// internal/app/store/settings/settingsstore.go

// Package settingsstore holds the single in-memory site settings record.
package settingsstore

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/traininghub/internal/domain/models"
)

type Store struct {
	mu sync.RWMutex
	s  models.SiteSettings
}

func New() *Store {
	return &Store{s: models.SiteSettings{SiteName: models.DefaultSiteName}}
}

// Get returns the current site settings.
func (s *Store) Get(ctx context.Context) (models.SiteSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.s, nil
}

// Save replaces the settings record, stamping who changed it and when.
func (s *Store) Save(ctx context.Context, settings models.SiteSettings, byID, byName string) (models.SiteSettings, error) {
	now := time.Now().UTC()
	settings.UpdatedAt = &now
	settings.UpdatedByID = byID
	settings.UpdatedByName = byName
	if settings.SiteName == "" {
		settings.SiteName = models.DefaultSiteName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.s = settings
	return settings, nil
}

// SiteName returns the configured site name, falling back to the default.
func (s *Store) SiteName(ctx context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.s.SiteName == "" {
		return models.DefaultSiteName
	}
	return s.s.SiteName
}
