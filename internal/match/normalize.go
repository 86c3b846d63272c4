package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent reduces a name to its comparable form: case-folded with
// separator runes dropped. "PutRequest", "put_request" and "put-request"
// all normalize to "putrequest", so message names and table file names
// compare on spelling alone.
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// isSeparator reports whether the rune separates words in message and file
// names.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}
