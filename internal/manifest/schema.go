package manifest

import (
	"slices"

	"msgcode-generator/internal/common"
)

// File represents the root of a YAML manifest file.
// This is the checked-in, human-reviewed generation configuration.
type File struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// InputDirs lists directories scanned for table files.
	// Accepts a single string or an array of strings.
	InputDirs StringArray `yaml:"input_dirs,omitempty"`

	// OutputDir is the directory generated modules are written under.
	OutputDir string `yaml:"output_dir,omitempty"`

	// Extensions lists table file extensions recognized by the scan.
	Extensions []string `yaml:"extensions,omitempty"`

	// Recursive scans input directories recursively when true.
	Recursive bool `yaml:"recursive,omitempty"`

	// Package overrides the generated package name for every table.
	// Empty means derive the package from each module name.
	Package string `yaml:"package,omitempty"`

	// Tables pins explicit per-table entries. These take priority over
	// scanned files for the same input path.
	Tables []Table `yaml:"tables,omitempty"`
}

// Table defines one explicit table entry.
type Table struct {
	// Input is the table file path, relative to the manifest location or
	// absolute.
	Input string `yaml:"input"`

	// Output is the generated file path. Empty means derive it from the
	// module name under the output directory.
	Output string `yaml:"output,omitempty"`

	// Package overrides the generated package name for this table only.
	Package string `yaml:"package,omitempty"`
}

// StringArray is a []string that can be unmarshaled from either a single
// YAML string or an array of strings.
type StringArray []string

// First returns the first element or empty string if empty.
func (s StringArray) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

// IsEmpty returns true if the array is empty.
func (s StringArray) IsEmpty() bool {
	return common.IsEmpty(s)
}

// IsSingle returns true if the array has exactly one element.
func (s StringArray) IsSingle() bool {
	return common.IsSingle(s)
}

// IsMultiple returns true if the array has more than one element.
func (s StringArray) IsMultiple() bool {
	return common.IsMultiple(s)
}

// Contains returns true if the array contains the given string.
func (s StringArray) Contains(str string) bool {
	return slices.Contains(s, str)
}

// Default returns a starter manifest used by the init command.
func Default() *File {
	return &File{
		Version:    "1",
		InputDirs:  StringArray{"tables"},
		OutputDir:  "gen",
		Extensions: []string{".csv"},
	}
}
