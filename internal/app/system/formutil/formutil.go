// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a form submission fails validation, the form should be re-rendered with:
// - The user's previously entered values (echoed back)
// - An error message explaining what went wrong
// - All the context data needed for the form (dropdowns, etc.)
//
// This package provides a Base struct that can be embedded in form data structs
// to handle the common fields, and helper functions to populate them.
//
// Example usage:
//
//	type newUserData struct {
//		formutil.Base
//		FirstName string
//		Email     string
//		Groups    []groupOption
//	}
//
//	// In your handler:
//	data := newUserData{FirstName: first, Email: email}
//	formutil.SetBase(&data.Base, w, r, "Add User", "/users")
//	data.SetError("Email is required.")
//	templates.Render(w, r, "user_new", data)
package formutil

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/traininghub/internal/app/system/viewdata"
)

// Base contains common fields for form pages that can be embedded in form
// data structs. It carries the full page view model plus a form error slot.
type Base struct {
	viewdata.BaseVM
	Error template.HTML
}

// SetBase populates the common Base fields from the request context.
//
// Parameters:
//   - b: pointer to the Base struct to populate
//   - w: the response writer (the view model drains flash messages)
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func SetBase(b *Base, w http.ResponseWriter, r *http.Request, title, backDefault string) {
	b.BaseVM = viewdata.NewBaseVM(w, r, title, backDefault)
}

// SetError sets the error message on a Base struct.
// This is a convenience method for setting Error as template.HTML.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(msg)
}
