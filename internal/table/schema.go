package table

import "fmt"

// moduleRefSuffix is appended to the raw protoSuffix field to form the
// decoder module reference.
const moduleRefSuffix = "_pb"

// Record is one parsed table row.
type Record struct {
	// Code is the wire code for the message.
	Code uint16

	// Name is the symbolic message name, taken verbatim from the table.
	// No identifier validation happens here; in generated code the name
	// only ever appears inside a quoted string literal.
	Name string

	// ModuleRef identifies the decoder module for this code, derived from
	// the third field by appending "_pb".
	ModuleRef string
}

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind classifies why a table line was rejected.
type Kind int

const (
	_ Kind = iota // skip zero value, so an unset Kind is distinguishable

	// KindInvalidCode means the code field did not parse as a non-negative
	// integer within the wire code range.
	KindInvalidCode
	// KindMalformedLine means the line did not split into exactly three fields.
	KindMalformedLine
)

// ParseError describes the line that made a parse fail.
type ParseError struct {
	// Kind classifies the failure.
	Kind Kind

	// Line is the 1-based line number in the table.
	Line int

	// Text is the offending line as read.
	Text string

	// Err is the underlying cause, if any.
	Err error
}

// Error returns a message naming the line, its content, and what was wrong
// with it, sufficient for a human to fix the table.
func (e *ParseError) Error() string {
	switch e.Kind {
	case KindMalformedLine:
		return fmt.Sprintf("line %d: malformed line %q: want code,name,protoSuffix", e.Line, e.Text)
	case KindInvalidCode:
		return fmt.Sprintf("line %d: invalid message code in %q: %v", e.Line, e.Text, e.Err)
	default:
		return fmt.Sprintf("line %d: invalid line %q", e.Line, e.Text)
	}
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }
