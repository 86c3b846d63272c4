// Package cmd defines the CLI commands wired together through kong.
package cmd

import (
	"errors"
	"io/fs"
	"log/slog"

	"msgcode-generator/internal/diagnostic"
	"msgcode-generator/internal/manifest"
	"msgcode-generator/internal/source"
)

// CLI is the root command structure parsed by kong.
type CLI struct {
	Log struct {
		Level string `help:"Log level: debug, info, warn or error" default:"info" env:"MSGCODEGEN_LOG_LEVEL"`
		File  string `help:"Also write logs to this file" env:"MSGCODEGEN_LOG_FILE"`
	} `embed:"" prefix:"log."`
	Config string `help:"Configuration file path" env:"MSGCODEGEN_CONFIG"`

	Generate Generate `cmd:"" help:"Generate message code modules from tables"`
	Check    Check    `cmd:"" help:"Parse and render tables without writing output"`
	Lookup   Lookup   `cmd:"" help:"Query one table for a code or a message name"`
	Init     Init     `cmd:"" help:"Write a starter manifest"`
}

// loadManifest reads the manifest when it exists. A missing manifest is not
// an error; the tool then runs on defaults and explicit arguments.
func loadManifest(path string, logger *slog.Logger) (*manifest.File, error) {
	mf, err := manifest.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("no manifest found", "path", path)

			return nil, nil
		}

		return nil, err
	}

	logger.Debug("loaded manifest", "path", path, "tables", len(mf.Tables))

	return mf, nil
}

// buildSource assembles the table discovery source from the manifest input
// directories, or from the command line override when given. Directories
// that do not exist are skipped, so a fresh project without a tables
// directory still works with explicit file arguments.
func buildSource(mf *manifest.File, override []string, logger *slog.Logger) source.Source {
	defaults := manifest.Default()

	dirs := []string(defaults.InputDirs)
	exts := defaults.Extensions
	recursive := false

	if mf != nil {
		if !mf.InputDirs.IsEmpty() {
			dirs = mf.InputDirs
		}

		if len(mf.Extensions) > 0 {
			exts = mf.Extensions
		}

		recursive = mf.Recursive
	}

	if len(override) > 0 {
		dirs = override
	}

	opts := []source.Option{source.WithExtensions(exts...)}
	if recursive {
		opts = append(opts, source.WithRecursive())
	}

	var sources []source.Source
	for _, dir := range dirs {
		src, err := source.Dir(dir, opts...)
		if err != nil {
			logger.Debug("skipping input directory", "dir", dir, "error", err)

			continue
		}

		sources = append(sources, src)
	}

	switch len(sources) {
	case 0:
		return nil
	case 1:
		return sources[0]
	default:
		return source.Multi(sources...)
	}
}

// logReport sends report findings through the logger at their severity.
func logReport(report *diagnostic.Report, logger *slog.Logger) {
	for _, f := range report.Infos {
		logger.Info(f.String())
	}

	for _, f := range report.Warnings {
		logger.Warn(f.String())
	}

	for _, f := range report.Errors {
		logger.Error(f.String())
	}
}
