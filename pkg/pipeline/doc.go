// Package pipeline wires the loader → parser → record builder → PII filter →
// renderer sequence behind a single Convert entry point, then writes exactly
// one timestamp-named artifact per run. Naming is deterministic given an
// injected clock, and same-second runs are disambiguated with a numeric
// suffix rather than overwritten.
package pipeline
