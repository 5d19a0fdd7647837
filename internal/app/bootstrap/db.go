// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	certificatestore "github.com/dalemusser/traininghub/internal/app/store/certificates"
	coursestore "github.com/dalemusser/traininghub/internal/app/store/courses"
	customerstore "github.com/dalemusser/traininghub/internal/app/store/customers"
	groupstore "github.com/dalemusser/traininghub/internal/app/store/groups"
	"github.com/dalemusser/traininghub/internal/app/store/seed"
	settingsstore "github.com/dalemusser/traininghub/internal/app/store/settings"
	userstore "github.com/dalemusser/traininghub/internal/app/store/users"
	"github.com/dalemusser/traininghub/internal/app/system/completion"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the in-memory stores the app runs on.
//
// There is no external database to dial; "connecting" here means
// constructing the stores and, when seed_demo_data is set, loading the
// demo dataset so the app boots with something to show.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	deps := DBDeps{
		Customers:    customerstore.New(),
		Users:        userstore.New(),
		Groups:       groupstore.New(),
		Courses:      coursestore.New(),
		Certificates: certificatestore.New(),
		Settings:     settingsstore.New(),
	}
	deps.Completer = completion.New(deps.Certificates, deps.Users, deps.Customers)

	if appCfg.SeedDemoData {
		if err := seed.Load(ctx, deps.Customers, deps.Users, deps.Groups, deps.Courses, deps.Certificates); err != nil {
			logger.Error("demo data load failed", zap.Error(err))
			return DBDeps{}, err
		}
		logger.Info("demo dataset loaded")
	}

	return deps, nil
}

// EnsureSchema sets up indexes or schema as needed.
// The in-memory stores carry their invariants in code, so there is
// nothing to create here.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
