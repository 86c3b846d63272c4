package common

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ModuleName derives a module name from a table file path: the base name with
// the extension removed. A name that is all extension (".csv") is kept whole.
func ModuleName(path string) string {
	base := filepath.Base(path)

	ext := filepath.Ext(base)
	if ext == "" || len(ext) == len(base) {
		return base
	}

	return strings.TrimSuffix(base, ext)
}

// PackageName sanitizes a module name into a valid Go package identifier.
// Letters and digits pass through, anything else becomes an underscore, and a
// leading digit gets an underscore prefix.
func PackageName(moduleName string) string {
	var sb strings.Builder

	for i, ch := range moduleName {
		switch {
		case unicode.IsDigit(ch):
			if i == 0 {
				sb.WriteRune('_')
			}

			sb.WriteRune(ch)
		case unicode.IsLetter(ch):
			sb.WriteRune(ch)
		default:
			sb.WriteRune('_')
		}
	}

	if sb.Len() == 0 {
		return "_"
	}

	return sb.String()
}
