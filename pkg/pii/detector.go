package pii

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-modelexport/pkg/record"
)

// Detector decides whether a normalized record looks like it contains
// personal information. Detectors are heuristics, not certified scrubbers;
// stricter implementations can be swapped in without touching the pipeline.
type Detector interface {
	Match(rec record.Record) bool
}

// RuleSet is the reviewable configuration behind the default detector. Terms
// are matched case-insensitively as substrings; patterns are RE2 expressions
// applied to every text field.
type RuleSet struct {
	Terms    []string `yaml:"terms"`
	Patterns []string `yaml:"patterns"`
}

// DefaultRuleSet returns the built-in heuristic set: email-shaped tokens,
// phone-shaped digit runs, and a handful of explicit marker phrases.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Terms: []string{
			"home address",
			"phone number",
			"date of birth",
			"passport number",
			"social security",
		},
		Patterns: []string{
			// email-like token
			`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`,
			// phone-like digit run: 9+ digits allowing separators
			`\+?\d[\d\s().\-]{7,}\d`,
		},
	}
}

type ruleDetector struct {
	terms    []string
	patterns []*regexp.Regexp
}

// NewDetector compiles a rule set into a Detector. Invalid patterns fail
// construction so a broken rule file cannot silently disable filtering.
func NewDetector(rules RuleSet) (Detector, error) {
	d := &ruleDetector{}
	for _, term := range rules.Terms {
		trimmed := strings.TrimSpace(term)
		if trimmed == "" {
			continue
		}
		d.terms = append(d.terms, strings.ToLower(trimmed))
	}
	for _, pattern := range rules.Patterns {
		trimmed := strings.TrimSpace(pattern)
		if trimmed == "" {
			continue
		}
		compiled, err := regexp.Compile(trimmed)
		if err != nil {
			return nil, fmt.Errorf("pii: compile pattern %q: %w", trimmed, err)
		}
		d.patterns = append(d.patterns, compiled)
	}
	return d, nil
}

// MustNewDetector panics on compilation failure. Useful for the built-in set.
func MustNewDetector(rules RuleSet) Detector {
	d, err := NewDetector(rules)
	if err != nil {
		panic(err)
	}
	return d
}

// Match reports whether any field of the record trips a term or pattern.
func (d *ruleDetector) Match(rec record.Record) bool {
	for _, field := range []string{rec.Name, rec.Description, rec.SystemPrompt} {
		if field == "" {
			continue
		}
		lowered := strings.ToLower(field)
		for _, term := range d.terms {
			if strings.Contains(lowered, term) {
				return true
			}
		}
		for _, pattern := range d.patterns {
			if pattern.MatchString(field) {
				return true
			}
		}
	}
	return false
}

// Filter returns the records that do not match the detector, preserving
// relative order, along with the number of records removed. A nil detector
// removes nothing.
func Filter(records []record.Record, detector Detector) ([]record.Record, int) {
	if detector == nil {
		return records, 0
	}

	kept := make([]record.Record, 0, len(records))
	removed := 0
	for _, rec := range records {
		if detector.Match(rec) {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	return kept, removed
}
