package yamlout

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-modelexport/pkg/record"
	"github.com/goliatone/go-modelexport/pkg/render"
)

func TestRender_RoundTrip(t *testing.T) {
	records := []record.Record{
		{Name: "Alpha", Description: "first", SystemPrompt: "multi\nline"},
		{Name: "Beta"},
	}

	out, err := New().Render(context.Background(), records, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var recovered []record.Record
	if err := yaml.Unmarshal(out, &recovered); err != nil {
		t.Fatalf("re-parse output: %v", err)
	}
	if diff := cmp.Diff(records, recovered); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_OmitsEmptyLink(t *testing.T) {
	records := []record.Record{{Name: "Alpha"}}

	out, err := New().Render(context.Background(), records, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var raw []map[string]any
	if err := yaml.Unmarshal(out, &raw); err != nil {
		t.Fatalf("re-parse output: %v", err)
	}
	if _, ok := raw[0]["link"]; ok {
		t.Fatalf("link must be omitted when empty, got %v", raw[0])
	}
}
