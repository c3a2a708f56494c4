// Package diagnostic collects structured errors, warnings and notes found
// while checking a mapping spec before it is used.
//
// Key capabilities:
//   - Per-field errors that would make Compile or Map fail
//   - Warnings for rules that compile but probably do not do what was meant
//   - "Did you mean" suggestions for misspelled names
package diagnostic
