// Package matcher implements the pattern semantics shared by tool selection
// and CLI filters.
package matcher

import "strings"

// Match reports whether name satisfies pattern; "*" matches everything, an
// empty pattern matches nothing, anything else is a prefix match.
func Match(pattern, name string) bool {
	if pattern == "*" {
		return true
	}
	if pattern == "" {
		return false
	}
	return strings.HasPrefix(name, pattern)
}
