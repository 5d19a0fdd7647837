// internal/app/system/navigation/history.go
package navigation

import (
	"encoding/gob"
	"net/http"
	"strings"

	"github.com/dalemusser/traininghub/internal/app/system/auth"
)

const historyKey = "nav_history"

func init() {
	// The history slice rides inside the session cookie's gob payload.
	gob.Register([]string{})
}

// History reads the page history from the session, returning a fresh
// root-only stack when none is stored.
func History(r *http.Request) Stack {
	if auth.Store == nil {
		return NewStack()
	}
	sess, _ := auth.Store.Get(r, auth.SessionName)
	if v, ok := sess.Values[historyKey].([]string); ok {
		return Stack(v).normalize()
	}
	return NewStack()
}

func saveHistory(w http.ResponseWriter, r *http.Request, s Stack) error {
	if auth.Store == nil {
		return nil
	}
	sess, _ := auth.Store.Get(r, auth.SessionName)
	sess.Values[historyKey] = []string(s)
	return sess.Save(r, w)
}

// Reset replaces the history with a root-only stack. Called at login and
// logout so one actor's trail never leaks into the next session.
func Reset(w http.ResponseWriter, r *http.Request) error {
	return saveHistory(w, r, NewStack())
}

// Track is middleware that records page visits in the session history.
// Only successful-looking GET page loads count as navigations: POSTs,
// static assets, and the back endpoint itself are ignored, and a reload of
// the page already on top is not re-pushed (the stack's duplicate-allowed
// contract still holds for genuine revisits, which arrive via a different
// top entry).
func Track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && trackable(r.URL.Path) {
			hist := History(r)
			if hist.Current() != r.URL.RequestURI() {
				hist = hist.Push(r.URL.RequestURI())
				// Best effort: a failed cookie write shouldn't block the page.
				_ = saveHistory(w, r, hist)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// GoBack pops the history and returns the path to redirect to. moved is
// false when the history is already at the root, in which case the caller
// should stay on the current page and skip the "Navigated back" flash.
func GoBack(w http.ResponseWriter, r *http.Request) (dest string, moved bool) {
	hist := History(r)
	hist, dest, moved = hist.Back()
	if moved {
		_ = saveHistory(w, r, hist)
	}
	return dest, moved
}

func trackable(path string) bool {
	switch {
	case path == "/back",
		path == "/healthz",
		path == "/favicon.ico",
		strings.HasPrefix(path, "/static/"):
		return false
	}
	return true
}
