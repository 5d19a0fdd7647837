// Package htmlsanitize strips dangerous markup from user-supplied HTML
// (course descriptions, settings footer, profile bios) before it is
// rendered.
package htmlsanitize

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("u", "s", "sub", "sup", "mark")
	p.AllowAttrs("class").OnElements("table", "thead", "tbody", "tr", "th", "td")
	p.AllowAttrs("colspan", "rowspan").OnElements("th", "td")
	return p
}

// Sanitize removes unsafe tags and attributes, preserving common
// formatting, links, lists, tables, and code blocks.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// SanitizeToHTML sanitizes and wraps the result for template interpolation.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}
