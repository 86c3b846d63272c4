package cmd

import (
	"errors"
	"log/slog"
	"os"

	"msgcode-generator/internal/manifest"
)

type Init struct {
	Output string `help:"Manifest path to write" default:"msgcodes.yaml"`
	Force  bool   `help:"Overwrite an existing manifest"`
}

// Run is called by Kong when the init command is executed.
func (i *Init) Run(logger *slog.Logger) error {
	if !i.Force {
		if _, err := os.Stat(i.Output); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}

	if err := manifest.WriteFile(manifest.Default(), i.Output); err != nil {
		return err
	}

	logger.Info("wrote manifest", "path", i.Output)

	return nil
}
