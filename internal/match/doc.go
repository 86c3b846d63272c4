// Package match scores how close two names are and ranks candidates for
// fuzzy name suggestions.
//
// Key functions:
//   - NormalizeIdent: folds naming conventions into a comparable form
//   - Levenshtein: computes edit distance between strings
//   - Rank: scores known names against a requested name
//   - Suggest: picks likely intended names for a name that did not resolve
package match
