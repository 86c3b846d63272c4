package cmd

import (
	"log/slog"

	"msgcode-generator/internal/gen"
	"msgcode-generator/internal/plan"
	"msgcode-generator/internal/table"
)

type Check struct {
	Tables []string `arg:"" optional:"" name:"table" help:"Table files or module names to check (defaults to every known table)"`

	Manifest string `help:"Manifest file path" default:"msgcodes.yaml" env:"MSGCODEGEN_MANIFEST"`
}

// Run is called by Kong when the check command is executed. It parses and
// renders every resolved table but writes nothing, so a clean exit means
// generate would succeed.
func (c *Check) Run(logger *slog.Logger) error {
	mf, err := loadManifest(c.Manifest, logger)
	if err != nil {
		return err
	}

	// Staleness does not matter here; every resolved table gets checked.
	planConfig := plan.DefaultConfig()
	planConfig.Force = true

	resolver := plan.NewResolver(mf, buildSource(mf, nil, logger), planConfig)
	jobs, report := resolver.Resolve(c.Tables)

	g := gen.NewGenerator(gen.DefaultConfig())

	checked := 0
	for _, job := range jobs {
		records, err := table.LoadFile(job.Input)
		if err != nil {
			report.AddError("parse-failed", err.Error(), job.Module, job.Input)

			continue
		}

		if _, err := g.Render(job.Module, job.Input, records); err != nil {
			report.AddError("render-failed", err.Error(), job.Module, job.Input)

			continue
		}

		checked++
		logger.Debug("table ok", "table", job.Module, "records", len(records))
	}

	logReport(report, logger)

	if err := report.Error(); err != nil {
		return err
	}

	logger.Info("all tables valid", "tables", checked)

	return nil
}
