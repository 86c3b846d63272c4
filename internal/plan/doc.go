// Package plan resolves what to generate into a list of jobs consumed by
// the driver.
//
// Resolution pipeline:
//  1. Explicit tables from the command line, when given
//  2. Otherwise manifest table entries, then discovered table files
//  3. Derive missing outputs and packages from module names
//  4. Skip up-to-date jobs unless forced
//  5. Emit findings (missing inputs with suggestions, duplicate outputs,
//     skipped jobs)
package plan
