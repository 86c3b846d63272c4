// Package diagnostic provides structured findings for plan resolution
// and generation runs.
//
// Key capabilities:
//   - Missing input errors with did-you-mean suggestions
//   - Duplicate output detection
//   - Skipped/up-to-date notices
//   - Severity-bucketed reports that convert to a single error
package diagnostic
