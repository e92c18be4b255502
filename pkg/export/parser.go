package export

import (
	"context"
	"strings"
)

// Parser decodes a Document into the ordered entry sequence it contains. The
// top level of every export document must be an array of objects; anything
// else yields a *ParseError.
type Parser interface {
	Entries(ctx context.Context, doc Document) ([]Entry, error)
}

// Entry is one raw export element: a heterogeneous mapping with possibly
// nested structures. Known keys are not guaranteed to be present, and values
// may be null or of unexpected types; consumers resolve fields defensively.
type Entry map[string]any

// Lookup walks a dotted key path ("meta.description") through nested maps and
// returns the value it lands on. The second return is false when any segment
// is missing or a non-map value is traversed.
func (e Entry) Lookup(path string) (any, bool) {
	if e == nil || path == "" {
		return nil, false
	}

	var current any = map[string]any(e)
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		value, ok := node[segment]
		if !ok {
			return nil, false
		}
		current = value
	}
	return current, true
}

// String resolves a dotted key path to its string value. Absent keys, null
// values, and non-string values all report false so callers can fall through
// to the next candidate path.
func (e Entry) String(path string) (string, bool) {
	value, ok := e.Lookup(path)
	if !ok || value == nil {
		return "", false
	}
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	return s, true
}

// ParseError reports a malformed or unexpected-shape export document. It is
// the only fatal condition before any output is produced: a document that
// fails to parse aborts the run without processing a single entry.
type ParseError struct {
	// Location identifies the document origin when known.
	Location string
	// Reason is a human-readable description of what was wrong.
	Reason string
	// Err carries the underlying decode error, if any.
	Err error
}

func (e *ParseError) Error() string {
	msg := "export: parse"
	if e.Location != "" {
		msg += " " + e.Location
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError builds a ParseError for the given document origin.
func NewParseError(location, reason string, err error) *ParseError {
	return &ParseError{Location: location, Reason: reason, Err: err}
}

// ParserOptions collects parser construction knobs.
type ParserOptions struct {
	// AllowEmpty accepts documents whose top-level array has no elements.
	// Empty exports are valid by default; disable to treat them as errors.
	AllowEmpty bool
}

// ParserOption mutates ParserOptions prior to construction.
type ParserOption func(*ParserOptions)

// WithAllowEmpty toggles acceptance of zero-entry documents.
func WithAllowEmpty(allow bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.AllowEmpty = allow
	}
}

// NewParserOptions applies options over the defaults.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{AllowEmpty: true}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
