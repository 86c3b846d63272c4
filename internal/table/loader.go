package table

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadFile reads and parses a message code table from the given path.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses table data into records, preserving line order. The error, if
// any, is a *ParseError for the first bad line; no partial result is returned.
func Parse(data []byte) ([]Record, error) {
	lines := strings.Split(string(data), "\n")

	records := make([]Record, 0, len(lines))

	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		rec, err := parseLine(i+1, line)
		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	return records, nil
}

// parseLine parses a single non-empty table line.
func parseLine(num int, line string) (Record, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return Record{}, &ParseError{
			Kind: KindMalformedLine,
			Line: num,
			Text: line,
		}
	}

	// One conversion rejects non-numeric and negative codes alike and bounds
	// the value to the wire code range.
	code, err := strconv.ParseUint(fields[0], 10, 16)
	if err != nil {
		return Record{}, &ParseError{
			Kind: KindInvalidCode,
			Line: num,
			Text: line,
			Err:  err,
		}
	}

	return Record{
		Code:      uint16(code),
		Name:      fields[1],
		ModuleRef: fields[2] + moduleRefSuffix,
	}, nil
}
