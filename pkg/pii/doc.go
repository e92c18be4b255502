// Package pii implements the optional personal-information filter between the
// record builder and the renderers. Detection is a documented heuristic over
// a reviewable rule set (substring terms plus RE2 patterns), loadable from
// YAML so operators can audit and extend it without code changes. Failing to
// match is never an error; matching records are simply dropped and counted.
package pii
