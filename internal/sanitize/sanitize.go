// Package sanitize guards free-text input fields with a best-effort denylist
// before submission. It is not an HTML sanitizer; trusted rich content is
// rendered elsewhere without passing through here.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	jsSchemeRe    = regexp.MustCompile(`(?i)javascript:`)
	eventAttrRe   = regexp.MustCompile(`(?i)\bon\w+\s*=`)
	angleBrackets = strings.NewReplacer("<", "", ">", "")
)

// String strips angle brackets, javascript: URI schemes and inline event
// handler patterns, then trims surrounding whitespace.
func String(s string) string {
	s = angleBrackets.Replace(s)
	s = jsSchemeRe.ReplaceAllString(s, "")
	s = eventAttrRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Object returns a copy of a shallow record with String applied to every
// string value. Non-string values are carried over untouched; the input map
// is not mutated.
func Object(record map[string]any) map[string]any {
	out := make(map[string]any, len(record))
	for k, v := range record {
		if s, ok := v.(string); ok {
			out[k] = String(s)
			continue
		}
		out[k] = v
	}
	return out
}
