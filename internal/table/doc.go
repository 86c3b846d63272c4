// Package table parses message code tables.
//
// A table is plain text, one record per line, three comma-separated fields:
//
//	code,name,protoSuffix
//
// There is no header row and no quoting or escaping; fields are taken
// verbatim. The code must be a non-negative integer, the name is the symbolic
// message name, and the protoSuffix identifies the protocol module whose
// decoder handles the code (the "_pb" suffix is appended during parsing).
//
// Records keep their input order end-to-end; generated clause order equals
// table order, which fixes first-match semantics when codes or names repeat.
// Parsing is strict: the first bad line aborts the whole parse and no partial
// record list is returned.
package table
