// Package gen provides deterministic Go code generation for message code
// modules.
//
// Generation approach uses text/template + go/format for readable output.
//
// Each table renders to one module exposing three lookups:
//   - MsgType: wire code to message name, "undefined" for unknown codes
//   - MsgCode: message name to wire code, panics on unknown names
//   - DecoderFor: wire code to decoder module name, panics on unknown codes
//
// Lookup clauses keep the table's line order, so repeated codes resolve to
// the earliest line.
package gen
