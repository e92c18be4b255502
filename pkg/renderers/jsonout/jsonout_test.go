package jsonout

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-modelexport/pkg/record"
	"github.com/goliatone/go-modelexport/pkg/render"
)

func TestRender_RoundTrip(t *testing.T) {
	records := []record.Record{
		{Name: "Alpha", Description: "first", SystemPrompt: "be first"},
		{Name: "Beta", Description: "with \"quotes\" and\nnewlines", SystemPrompt: ""},
	}

	out, err := New().Render(context.Background(), records, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var recovered []record.Record
	if err := json.Unmarshal(out, &recovered); err != nil {
		t.Fatalf("re-parse output: %v", err)
	}
	if diff := cmp.Diff(records, recovered); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_ExactlyThreeCanonicalKeys(t *testing.T) {
	records := []record.Record{{Name: "Alpha", Description: "d", SystemPrompt: "s"}}

	out, err := New().Render(context.Background(), records, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var objects []map[string]any
	if err := json.Unmarshal(out, &objects); err != nil {
		t.Fatalf("re-parse output: %v", err)
	}
	if len(objects) != 1 {
		t.Fatalf("expected 1 object, got %d", len(objects))
	}
	for _, key := range []string{"name", "description", "system_prompt"} {
		if _, ok := objects[0][key]; !ok {
			t.Fatalf("missing canonical key %q", key)
		}
	}
	if len(objects[0]) != 3 {
		t.Fatalf("expected exactly 3 keys without links, got %v", objects[0])
	}
}

func TestRender_LinkKeyWhenPresent(t *testing.T) {
	records := []record.Record{{Name: "Linked", Link: "openwebui://model/m1"}}

	out, err := New().Render(context.Background(), records, render.RenderOptions{IncludeLink: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var objects []map[string]any
	if err := json.Unmarshal(out, &objects); err != nil {
		t.Fatalf("re-parse output: %v", err)
	}
	if objects[0]["link"] != "openwebui://model/m1" {
		t.Fatalf("expected link key, got %v", objects[0])
	}
}

func TestRender_EmptyInputIsEmptyArray(t *testing.T) {
	out, err := New().Render(context.Background(), nil, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(string(out)) != "[]" {
		t.Fatalf("expected empty array, got %q", string(out))
	}
}

func TestRender_CompactIndent(t *testing.T) {
	records := []record.Record{{Name: "Alpha"}}

	out, err := New(WithIndent("")).Render(context.Background(), records, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(strings.TrimSpace(string(out)), "\n") {
		t.Fatalf("expected compact output, got %q", string(out))
	}
}
