// Package heuristic holds the pure classifiers the schema migration
// relies on: reverse-domain-name well-formedness, SPDX-license
// likeness, canonical tag normalization, and domain-prefix synthesis
// from URL-shaped manifest values.
//
// The token, TLD, and host sets here are fixed. Downstream consumers
// depend on exact reproducibility of migrated identifiers, so the
// heuristics must not be tuned even where they misclassify.
package heuristic
