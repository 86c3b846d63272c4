package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"msgcode-generator/internal/driver"
	"msgcode-generator/internal/gen"
	"msgcode-generator/internal/plan"
)

type Generate struct {
	Tables []string `arg:"" optional:"" name:"table" help:"Table files or module names (defaults to the whole manifest plus the input directories)"`

	Manifest   string   `help:"Manifest file path" default:"msgcodes.yaml" env:"MSGCODEGEN_MANIFEST"`
	InputDir   []string `help:"Directory to scan for tables, repeatable (overrides the manifest)" name:"input-dir"`
	OutputDir  string   `help:"Directory for generated modules (overrides the manifest)" env:"MSGCODEGEN_OUTPUT_DIR"`
	Package    string   `help:"Package name for generated modules (overrides the manifest)" env:"MSGCODEGEN_PACKAGE"`
	Force      bool     `help:"Regenerate even when outputs are newer than their tables"`
	KeepGoing  bool     `help:"Keep generating remaining tables after a failure"`
	Jobs       int      `help:"Concurrent generations (defaults to GOMAXPROCS)" env:"MSGCODEGEN_JOBS"`
	NoComments bool     `help:"Omit doc comments from generated code"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mf, err := loadManifest(g.Manifest, logger)
	if err != nil {
		return err
	}

	planConfig := plan.DefaultConfig()
	planConfig.Force = g.Force
	planConfig.OutputDir = g.OutputDir
	planConfig.Package = g.Package

	resolver := plan.NewResolver(mf, buildSource(mf, g.InputDir, logger), planConfig)

	jobs, report := resolver.Resolve(g.Tables)
	logReport(report, logger)

	if err := report.Error(); err != nil {
		return err
	}

	if len(jobs) == 0 {
		logger.Info("nothing to generate")

		return nil
	}

	genConfig := gen.DefaultConfig()
	genConfig.Comments = !g.NoComments

	d := driver.New(driver.Config{
		Gen:       genConfig,
		Workers:   g.Jobs,
		KeepGoing: g.KeepGoing,
	}, logger)

	runReport, err := d.RunAll(ctx, jobs)
	logReport(runReport, logger)

	if err != nil {
		return err
	}

	if runReport.HasErrors() {
		return fmt.Errorf("%d of %d tables failed", len(runReport.Errors), len(jobs))
	}

	logger.Info("generation complete", "tables", len(jobs))

	return nil
}
