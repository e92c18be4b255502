package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-modelexport/pkg/export"
)

func parseRaw(t *testing.T, raw string, options ...export.ParserOption) ([]export.Entry, error) {
	t.Helper()
	doc := export.MustNewDocument(export.SourceFromFile("input.json"), []byte(raw))
	p := New(export.NewParserOptions(options...))
	return p.Entries(context.Background(), doc)
}

func TestEntries_ValidArray(t *testing.T) {
	entries, err := parseRaw(t, `[
		{"name": "Alpha", "meta": {"description": "first"}},
		{"name": "Beta"}
	]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if name, _ := entries[0].String("name"); name != "Alpha" {
		t.Fatalf("expected first entry to stay first, got %q", name)
	}
}

func TestEntries_TopLevelObjectIsParseError(t *testing.T) {
	_, err := parseRaw(t, `{"name": "Alpha"}`)

	var parseErr *export.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Location != "input.json" {
		t.Fatalf("expected location to carry the origin, got %q", parseErr.Location)
	}
}

func TestEntries_InvalidJSONIsParseError(t *testing.T) {
	_, err := parseRaw(t, `not json at all`)

	var parseErr *export.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestEntries_NonObjectElementIsParseError(t *testing.T) {
	_, err := parseRaw(t, `[{"name": "Alpha"}, 42]`)

	var parseErr *export.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestEntries_NullElementIsParseError(t *testing.T) {
	_, err := parseRaw(t, `[{"name": "Alpha"}, null]`)

	var parseErr *export.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestEntries_EmptyArray(t *testing.T) {
	entries, err := parseRaw(t, `[]`)
	if err != nil {
		t.Fatalf("empty exports are valid by default: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestEntries_EmptyArrayRejectedWhenConfigured(t *testing.T) {
	_, err := parseRaw(t, `[]`, export.WithAllowEmpty(false))

	var parseErr *export.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}
