// Package match provides name normalization, Levenshtein distance and
// candidate ranking used to suggest spelling fixes for spec keys, custom
// function names and source paths.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers and dotted paths for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: ranks known names by similarity to an unknown one
//   - Suggest: returns the few names worth offering as "did you mean"
package match
