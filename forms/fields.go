// Package forms normalizes and validates the submitted E-1 field set and
// extracts the repeatable and optional form sections.
package forms

import (
	"net/url"
	"strings"
)

// Fields is a normalized view over a submitted form: every value trimmed,
// absent keys read back as "".
type Fields map[string]string

// Normalize trims the first value of every submitted key. Pure function,
// no side effects.
func Normalize(values url.Values) Fields {
	f := make(Fields, len(values))
	for key := range values {
		f[key] = strings.TrimSpace(values.Get(key))
	}
	return f
}

// Get returns the trimmed value, or "" when the field was not submitted.
func (f Fields) Get(name string) string {
	return f[name]
}

// Bool reports whether a checkbox field was submitted checked. The form
// posts the literal "1" for checked boxes and omits the field otherwise.
func (f Fields) Bool(name string) bool {
	return f[name] == "1"
}
