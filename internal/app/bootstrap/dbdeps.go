// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	certificatestore "github.com/dalemusser/traininghub/internal/app/store/certificates"
	coursestore "github.com/dalemusser/traininghub/internal/app/store/courses"
	customerstore "github.com/dalemusser/traininghub/internal/app/store/customers"
	groupstore "github.com/dalemusser/traininghub/internal/app/store/groups"
	settingsstore "github.com/dalemusser/traininghub/internal/app/store/settings"
	userstore "github.com/dalemusser/traininghub/internal/app/store/users"
	"github.com/dalemusser/traininghub/internal/app/system/completion"
)

// DBDeps holds the backing stores for the app.
//
// TrainingHub keeps everything in process: each store is an in-memory
// table guarded by its own lock. Swapping one of these for a database
// backed implementation only touches ConnectDB.
type DBDeps struct {
	Customers    *customerstore.Store
	Users        *userstore.Store
	Groups       *groupstore.Store
	Courses      *coursestore.Store
	Certificates *certificatestore.Store
	Settings     *settingsstore.Store

	// Completer watches topic completion and issues certificates.
	Completer *completion.Evaluator
}
