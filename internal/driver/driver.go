// Package driver orchestrates table loading, module rendering, and output
// writing for generation jobs.
package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"msgcode-generator/internal/common"
	"msgcode-generator/internal/diagnostic"
	"msgcode-generator/internal/gen"
	"msgcode-generator/internal/plan"
	"msgcode-generator/internal/table"
)

// Config holds driver configuration.
type Config struct {
	// Gen configures rendering of each module.
	Gen gen.Config
	// Workers caps concurrent generations in RunAll. Zero means GOMAXPROCS.
	Workers int
	// KeepGoing collects failures in RunAll instead of stopping at the first.
	KeepGoing bool
}

// Driver runs generation jobs.
type Driver struct {
	config Config
	logger *slog.Logger
}

// New creates a Driver. A nil logger discards all output.
func New(config Config, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Driver{config: config, logger: logger}
}

// Generate renders the module for one table file and writes it to outputPath.
// The module name comes from the input file base name. On failure the output
// file keeps its previous content.
func (d *Driver) Generate(inputPath, outputPath string) error {
	return d.Run(plan.Job{
		Module: common.ModuleName(inputPath),
		Input:  inputPath,
		Output: outputPath,
	})
}

// Run generates one job, applying its package override.
func (d *Driver) Run(job plan.Job) error {
	records, err := table.LoadFile(job.Input)
	if err != nil {
		var perr *table.ParseError
		if errors.As(err, &perr) {
			return &GenError{Kind: KindParseFailure, Path: job.Input, Err: err}
		}

		return &GenError{Kind: KindReadFailure, Path: job.Input, Err: err}
	}

	cfg := d.config.Gen
	if job.Package != "" {
		cfg.PackageName = job.Package
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = filepath.Dir(job.Output)
	}

	file, err := gen.NewGenerator(cfg).Render(job.Module, job.Input, records)
	if err != nil {
		return &GenError{Kind: KindWriteFailure, Path: job.Output, Err: err}
	}

	if err := gen.WriteFileAtomic(job.Output, file.Content); err != nil {
		return &GenError{Kind: KindWriteFailure, Path: job.Output, Err: err}
	}

	d.logger.Debug("generated module",
		"module", job.Module,
		"input", job.Input,
		"output", job.Output,
		"records", len(records))

	return nil
}

// RunAll generates every job with bounded concurrency. Distinct jobs write
// distinct outputs, so they are safe to run in parallel.
//
// With KeepGoing, failures collect into the report and the rest of the jobs
// still run; otherwise the first failure cancels the remaining jobs and is
// returned.
func (d *Driver) RunAll(ctx context.Context, jobs []plan.Job) (*diagnostic.Report, error) {
	report := &diagnostic.Report{}

	var mu sync.Mutex

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(d.workers())

	for _, job := range jobs {
		grp.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			err := d.Run(job)
			if err == nil {
				return nil
			}

			if !d.config.KeepGoing {
				return err
			}

			d.logger.Error("generation failed", "module", job.Module, "error", err)

			mu.Lock()
			report.AddError("generate-failed", err.Error(), job.Module, job.Input)
			mu.Unlock()

			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return report, err
	}

	return report, nil
}

func (d *Driver) workers() int {
	if d.config.Workers > 0 {
		return d.config.Workers
	}

	return runtime.GOMAXPROCS(0)
}

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind classifies the stage a generation failure happened in.
type Kind int

const (
	_ Kind = iota // skip zero value, so an unset Kind is distinguishable
	KindReadFailure
	KindParseFailure
	KindWriteFailure
)

// GenError wraps a generation failure with its stage and the path involved.
type GenError struct {
	// Kind is the failed stage.
	Kind Kind
	// Path is the input path for read and parse failures, the output path
	// for write failures.
	Path string
	// Err is the underlying cause.
	Err error
}

func (e *GenError) Error() string {
	switch e.Kind {
	case KindReadFailure:
		return fmt.Sprintf("reading table %s: %v", e.Path, e.Err)
	case KindParseFailure:
		return fmt.Sprintf("parsing table %s: %v", e.Path, e.Err)
	case KindWriteFailure:
		return fmt.Sprintf("writing module %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("generating %s: %v", e.Path, e.Err)
	}
}

func (e *GenError) Unwrap() error { return e.Err }
