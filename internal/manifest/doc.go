// Package manifest provides YAML schema definitions and parsing for the
// generator manifest file.
//
// The manifest pins down which message code tables get generated and where,
// so a checked-in file turns ad-hoc command lines into deterministic
// regeneration.
//
// # Key capabilities
//
//   - Declare input directories to scan for table files
//   - Pin explicit per-table entries with output and package overrides
//   - Set the output directory and recognized table extensions
//   - Round-trip parsing and serialization for the init command
//
// # Schema Overview
//
// The manifest file has the following structure:
//
//	version: "1"
//	# Directories scanned for table files (single string also accepted)
//	input_dirs:
//	  - tables
//	output_dir: gen
//	# Table file extensions picked up by the scan
//	extensions: [.csv]
//	recursive: false
//	# Optional package name override applied to every generated module
//	package: ""
//	# Explicit tables (merged with scan results, these win on conflict)
//	tables:
//	  - input: tables/riak_pb_messages.csv
//	    output: gen/riak_pb_messages/riak_pb_messages.go
//	    package: riakmsg
//
// Explicit table entries take priority over scanned files for the same
// input path. Outputs left empty are derived from the module name during
// plan resolution.
package manifest
