package testutil

import (
	"context"
	"testing"

	certificatestore "github.com/dalemusser/traininghub/internal/app/store/certificates"
	coursestore "github.com/dalemusser/traininghub/internal/app/store/courses"
	customerstore "github.com/dalemusser/traininghub/internal/app/store/customers"
	groupstore "github.com/dalemusser/traininghub/internal/app/store/groups"
	"github.com/dalemusser/traininghub/internal/app/store/seed"
	settingsstore "github.com/dalemusser/traininghub/internal/app/store/settings"
	userstore "github.com/dalemusser/traininghub/internal/app/store/users"
)

// Stores bundles the in-memory stores handler tests work against.
type Stores struct {
	Customers    *customerstore.Store
	Users        *userstore.Store
	Groups       *groupstore.Store
	Courses      *coursestore.Store
	Certificates *certificatestore.Store
	Settings     *settingsstore.Store
}

// EmptyStores returns a fresh, unpopulated store bundle.
func EmptyStores(t *testing.T) *Stores {
	t.Helper()
	return &Stores{
		Customers:    customerstore.New(),
		Users:        userstore.New(),
		Groups:       groupstore.New(),
		Courses:      coursestore.New(),
		Certificates: certificatestore.New(),
		Settings:     settingsstore.New(),
	}
}

// SeededStores returns a store bundle loaded with the demo dataset.
func SeededStores(t *testing.T) *Stores {
	t.Helper()
	s := EmptyStores(t)
	if err := seed.Load(context.Background(), s.Customers, s.Users, s.Groups, s.Courses, s.Certificates); err != nil {
		t.Fatalf("seed stores: %v", err)
	}
	return s
}
