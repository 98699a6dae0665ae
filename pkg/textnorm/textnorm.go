// Package textnorm canonicalizes raw comment text before pattern matching.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize folds full-width characters to their canonical form (NFKC),
// collapses whitespace runs (including newlines) to single spaces, and trims.
// It is total over all strings and idempotent.
func Normalize(input string) string {
	folded := norm.NFKC.String(input)
	collapsed := whitespaceRun.ReplaceAllString(folded, " ")
	return strings.TrimSpace(collapsed)
}
