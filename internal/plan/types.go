package plan

// Job is one unit of generation: a parsed table rendered to one module file.
type Job struct {
	// Module is the module name derived from the input file.
	Module string
	// Input is the table file path.
	Input string
	// Output is the generated file path.
	Output string
	// Package overrides the generated package name. Empty means derive it
	// from the module name.
	Package string
}

// Config holds configuration for plan resolution.
type Config struct {
	// Force regenerates outputs even when they are newer than their inputs.
	Force bool
	// OutputDir overrides the manifest output directory when set.
	OutputDir string
	// Package overrides the generated package name for every job when set.
	Package string
	// MaxSuggestions caps did-you-mean suggestions on missing inputs.
	MaxSuggestions int
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() Config {
	return Config{
		MaxSuggestions: 3,
	}
}
