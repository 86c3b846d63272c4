package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted dumps the raw template output next to the intended
// module file when gofmt rejects it, so the broken render stays inspectable.
// Best effort: a sidecar failure never masks the formatting error.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	// Still a .go name so editors highlight it, without clashing with real
	// module output.
	name := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(outDir, name), content, filePerm)
}
