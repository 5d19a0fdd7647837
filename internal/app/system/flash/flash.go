// Package flash is the user-facing notification surface: short
// success/error messages queued in the session and shown once on the next
// rendered page (login succeeded, navigated back, saved, deleted,
// certificate issued).
package flash

import (
	"encoding/gob"
	"net/http"

	"github.com/dalemusser/traininghub/internal/app/system/auth"
)

// Message kinds.
const (
	KindSuccess = "success"
	KindError   = "error"
	KindInfo    = "info"
)

// Message is one queued notification.
type Message struct {
	Kind string
	Text string
}

func init() {
	gob.Register(Message{})
}

// Add queues a notification for the next page render. Failures to write
// the cookie are swallowed: a lost toast never blocks the response.
func Add(w http.ResponseWriter, r *http.Request, kind, text string) {
	if auth.Store == nil || text == "" {
		return
	}
	sess, _ := auth.Store.Get(r, auth.SessionName)
	sess.AddFlash(Message{Kind: kind, Text: text})
	_ = sess.Save(r, w)
}

// Success queues a success notification.
func Success(w http.ResponseWriter, r *http.Request, text string) {
	Add(w, r, KindSuccess, text)
}

// Error queues an error notification.
func Error(w http.ResponseWriter, r *http.Request, text string) {
	Add(w, r, KindError, text)
}

// Info queues an informational notification.
func Info(w http.ResponseWriter, r *http.Request, text string) {
	Add(w, r, KindInfo, text)
}

// Take drains and returns the queued notifications, clearing them from
// the session.
func Take(w http.ResponseWriter, r *http.Request) []Message {
	if auth.Store == nil {
		return nil
	}
	sess, _ := auth.Store.Get(r, auth.SessionName)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save(r, w)

	out := make([]Message, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(Message); ok {
			out = append(out, m)
		}
	}
	return out
}
