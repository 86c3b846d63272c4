package plan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"msgcode-generator/internal/common"
	"msgcode-generator/internal/diagnostic"
	"msgcode-generator/internal/manifest"
	"msgcode-generator/internal/match"
	"msgcode-generator/internal/source"
)

// Resolver turns the manifest, the discovery source, and explicit requests
// into generation jobs.
type Resolver struct {
	mf     *manifest.File
	src    source.Source
	config Config
}

// NewResolver creates a new Resolver. The manifest may be nil when running
// without one, and the source may be nil when no input directories exist.
func NewResolver(mf *manifest.File, src source.Source, config Config) *Resolver {
	if mf == nil {
		mf = &manifest.File{}
	}

	return &Resolver{mf: mf, src: src, config: config}
}

// Resolve produces jobs for the given explicit tables, or for the whole
// manifest plus discovery scan when none are given. Findings land in the
// returned report; the job list holds only what should actually generate.
func (r *Resolver) Resolve(explicit []string) ([]Job, *diagnostic.Report) {
	report := &diagnostic.Report{}

	var jobs []Job
	if len(explicit) > 0 {
		jobs = r.resolveExplicit(explicit, report)
	} else {
		jobs = r.resolveAll(report)
	}

	jobs = r.dropFresh(jobs, report)
	r.checkDuplicateOutputs(jobs, report)

	return jobs, report
}

// resolveExplicit resolves command line arguments, each a table file path or
// a bare module name looked up through the source.
func (r *Resolver) resolveExplicit(explicit []string, report *diagnostic.Report) []Job {
	var jobs []Job

	for _, arg := range explicit {
		info, err := os.Stat(arg)
		if err == nil && !info.IsDir() {
			jobs = append(jobs, r.makeJob(arg))

			continue
		}

		if looksLikePath(arg) {
			r.reportMissing(arg, report)

			continue
		}

		path, err := r.find(arg)
		if err == nil {
			jobs = append(jobs, r.makeJob(path))

			continue
		}

		if errors.Is(err, fs.ErrNotExist) {
			r.reportMissing(arg, report)
		} else {
			report.AddError("scan-failed",
				fmt.Sprintf("looking up table %s: %v", arg, err), arg, "")
		}
	}

	return jobs
}

// resolveAll resolves every manifest table entry plus every discovered table
// file, deduplicated by input path with manifest entries winning.
func (r *Resolver) resolveAll(report *diagnostic.Report) []Job {
	var jobs []Job

	seen := make(map[string]bool)

	for _, entry := range r.mf.Tables {
		if _, err := os.Stat(entry.Input); err != nil {
			r.reportMissing(entry.Input, report)

			continue
		}

		jobs = append(jobs, r.makeJob(entry.Input))
		seen[filepath.Clean(entry.Input)] = true
	}

	if r.src != nil {
		files, err := r.src.ListFiles()
		if err != nil {
			report.AddError("scan-failed",
				fmt.Sprintf("scanning input directories: %v", err), "", "")
		}

		for _, path := range files {
			if seen[filepath.Clean(path)] {
				continue
			}

			jobs = append(jobs, r.makeJob(path))
			seen[filepath.Clean(path)] = true
		}
	}

	if len(jobs) == 0 && !report.HasErrors() {
		report.AddWarning("no-tables", "no table files found", "", "")
	}

	return jobs
}

// makeJob builds the job for one input path, applying manifest overrides.
func (r *Resolver) makeJob(input string) Job {
	module := common.ModuleName(input)

	job := Job{
		Module:  module,
		Input:   input,
		Package: r.packageFor(nil),
	}

	for i := range r.mf.Tables {
		entry := &r.mf.Tables[i]
		if filepath.Clean(entry.Input) == filepath.Clean(input) {
			job.Output = entry.Output
			job.Package = r.packageFor(entry)

			break
		}
	}

	if job.Output == "" {
		job.Output = filepath.Join(r.outputDir(), module, module+".go")
	}

	return job
}

// packageFor picks the package override: per-table entry, then the command
// line, then the manifest-wide setting.
func (r *Resolver) packageFor(entry *manifest.Table) string {
	if entry != nil && entry.Package != "" {
		return entry.Package
	}

	if r.config.Package != "" {
		return r.config.Package
	}

	return r.mf.Package
}

func (r *Resolver) outputDir() string {
	if r.config.OutputDir != "" {
		return r.config.OutputDir
	}

	if r.mf.OutputDir != "" {
		return r.mf.OutputDir
	}

	return "gen"
}

func (r *Resolver) find(name string) (string, error) {
	if r.src == nil {
		return "", fs.ErrNotExist
	}

	return r.src.Find(name)
}

// dropFresh removes jobs whose output is already newer than the input.
func (r *Resolver) dropFresh(jobs []Job, report *diagnostic.Report) []Job {
	if r.config.Force {
		return jobs
	}

	kept := jobs[:0]

	for _, job := range jobs {
		stale, err := Stale(job.Input, job.Output)
		if err != nil {
			// Let generation surface the real read error
			kept = append(kept, job)

			continue
		}

		if !stale {
			report.AddInfo("up-to-date", "output is newer than input, skipped",
				job.Module, job.Output)

			continue
		}

		kept = append(kept, job)
	}

	return kept
}

// checkDuplicateOutputs flags jobs that would overwrite each other.
func (r *Resolver) checkDuplicateOutputs(jobs []Job, report *diagnostic.Report) {
	byOutput := make(map[string]string, len(jobs))

	for _, job := range jobs {
		out := filepath.Clean(job.Output)

		if first, ok := byOutput[out]; ok {
			report.AddError("duplicate-output",
				fmt.Sprintf("output already produced by table %s", first),
				job.Module, job.Output)

			continue
		}

		byOutput[out] = job.Module
	}
}

// reportMissing emits a missing input finding with did-you-mean suggestions
// drawn from the manifest and discovery scan.
func (r *Resolver) reportMissing(input string, report *diagnostic.Report) {
	module := common.ModuleName(input)

	report.Add(diagnostic.Finding{
		Severity:    diagnostic.SeverityError,
		Code:        "missing-input",
		Message:     "table file not found",
		Table:       module,
		Path:        input,
		Suggestions: match.Suggest(module, r.knownModules(), r.config.MaxSuggestions),
	})
}

// knownModules collects every module name the resolver could have meant.
func (r *Resolver) knownModules() []string {
	var names []string

	seen := make(map[string]bool)

	add := func(name string) {
		if name != "" && !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}

	for _, entry := range r.mf.Tables {
		add(common.ModuleName(entry.Input))
	}

	if r.src != nil {
		files, err := r.src.ListFiles()
		if err == nil {
			for _, path := range files {
				add(common.ModuleName(path))
			}
		}
	}

	return names
}

// looksLikePath reports whether the argument was written as a file path
// rather than a bare module name.
func looksLikePath(arg string) bool {
	return strings.ContainsAny(arg, `/\`) || filepath.Ext(arg) != ""
}
