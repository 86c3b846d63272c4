package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFileAtomic writes content to path through a temp file in the target
// directory followed by a rename, so readers never observe partial output.
// It creates the directory if it doesn't exist.
func WriteFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpName := tmp.Name()

	_, err = tmp.Write(content)

	if cerr := tmp.Close(); err == nil {
		err = cerr
	}

	if err == nil {
		// CreateTemp uses 0600, widen to the usual file mode
		err = os.Chmod(tmpName, filePerm)
	}

	if err == nil {
		err = os.Rename(tmpName, path)
	}

	if err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}
