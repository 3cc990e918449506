// Package derive turns a parsed enum declaration into a [Plan] for code
// generation.
//
// The derivation runs in stages. Marked variants are validated one by one,
// grouped by payload type per outcome, and checked for ambiguity. Then the
// classification tables are built for all variants, and the two-state
// eligibility is decided from the groups and the tables.
//
// A [Plan] is written as Go code by [github.com/sublee/propagate/internal/propagate/emit.Write].
package derive
