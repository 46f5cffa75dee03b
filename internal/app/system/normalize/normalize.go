// internal/app/system/normalize/normalize.go

// Package normalize provides canonical forms for user-supplied employee
// fields before validation checks and persistence.
package normalize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// plain strips every HTML element and attribute. Employee fields are
// plain text; markup has no business being stored.
var plain = bluemonday.StrictPolicy()

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Text trims surrounding whitespace and strips any HTML markup from a
// free-text field (name, department, position). Strings without markup
// pass through untouched apart from trimming.
func Text(s string) string {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "<>") {
		s = strings.TrimSpace(html.UnescapeString(plain.Sanitize(s)))
	}
	return s
}

// Date trims a calendar-date string. Parsing is the validator's job.
func Date(s string) string {
	return strings.TrimSpace(s)
}
