package modelexport

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goliatone/go-modelexport/pkg/pipeline"
)

func TestConvertFile(t *testing.T) {
	input := filepath.Join(t.TempDir(), "input.json")
	payload := `[{"name": "Alpha", "params": {"system": "be first"}}]`
	if err := os.WriteFile(input, []byte(payload), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	outDir := t.TempDir()

	at := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	result, err := ConvertFile(context.Background(), input, Request{
		Format:    "csv",
		OutputDir: outDir,
	}, pipeline.WithClock(func() time.Time { return at }))
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	want := filepath.Join(outDir, "models-20250601T103000.csv")
	if result.Artifact.Path != want {
		t.Fatalf("expected %s, got %s", want, result.Artifact.Path)
	}
	if result.Records != 1 {
		t.Fatalf("expected 1 record, got %d", result.Records)
	}
}

func TestNewParser_RoundTrip(t *testing.T) {
	parser := NewParser()
	loader := NewLoader()

	input := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(input, []byte(`[{"name": "One"}, {"name": "Two"}]`), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	doc, err := loader.Load(context.Background(), SourceFromFile(input))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	entries, err := parser.Entries(context.Background(), doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}
