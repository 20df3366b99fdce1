package core

import "strings"

// CleanString trims surrounding whitespace in `s` and optionally lowers it.
// All free-text input passes through here before validation.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}
