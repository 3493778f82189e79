// Package naming provides the pure naming rules the note store uses to
// turn record titles into unique, filesystem-safe names.
package naming

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	unsafeChars = regexp.MustCompile(`[^\w\s-]`)
	spaceRuns   = regexp.MustCompile(`\s+`)
)

// Sanitize turns a record title into a filesystem-safe base name:
// non-word characters are removed, whitespace runs collapse to a single
// space, and the result is trimmed. May return the empty string.
func Sanitize(title string) string {
	clean := unsafeChars.ReplaceAllString(title, "")
	clean = spaceRuns.ReplaceAllString(clean, " ")
	return strings.TrimSpace(clean)
}

// Fallback returns the substitute name for a record whose title
// sanitised to nothing.
func Fallback(ordinal int) string {
	return fmt.Sprintf("Note %d", ordinal)
}

// NextAvailable returns base if it does not collide, otherwise the
// first of "base 1", "base 2", ... that does not. exists reports
// whether a candidate name is already taken at the destination.
func NextAvailable(base string, exists func(string) bool) string {
	if !exists(base) {
		return base
	}
	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s %d", base, counter)
		if !exists(candidate) {
			return candidate
		}
	}
}
