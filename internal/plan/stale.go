package plan

import (
	"errors"
	"io/fs"
	"os"
)

// Stale reports whether the output needs regenerating: it is missing, or its
// mod time is not newer than the input's.
func Stale(input, output string) (bool, error) {
	in, err := os.Stat(input)
	if err != nil {
		return false, err
	}

	out, err := os.Stat(output)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	return !out.ModTime().After(in.ModTime()), nil
}
