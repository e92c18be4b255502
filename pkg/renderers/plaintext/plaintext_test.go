package plaintext

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-modelexport/pkg/record"
	"github.com/goliatone/go-modelexport/pkg/render"
)

func renderRecords(t *testing.T, records []record.Record, opts render.RenderOptions) string {
	t.Helper()
	renderer, err := New()
	if err != nil {
		t.Fatalf("construct renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), records, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRender_UnderlinedNames(t *testing.T) {
	records := []record.Record{
		{Name: "Alpha", Description: "first model"},
	}

	out := renderRecords(t, records, render.RenderOptions{})

	if !strings.Contains(out, "OPENWEBUI MODELS") {
		t.Fatalf("expected default title, got:\n%s", out)
	}
	if !strings.Contains(out, "Alpha\n=====") {
		t.Fatalf("expected name underlined to its length, got:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("-", 50)) {
		t.Fatalf("expected record separator, got:\n%s", out)
	}
}

func TestRender_SystemPromptSection(t *testing.T) {
	records := []record.Record{
		{Name: "Prompted", SystemPrompt: "You are concise."},
	}

	out := renderRecords(t, records, render.RenderOptions{})
	if !strings.Contains(out, "System Prompt:\nYou are concise.") {
		t.Fatalf("expected prompt section, got:\n%s", out)
	}
}

func TestRender_OrderPreserved(t *testing.T) {
	records := []record.Record{
		{Name: "Zed"},
		{Name: "Ada"},
	}

	out := renderRecords(t, records, render.RenderOptions{})
	if strings.Index(out, "Zed") > strings.Index(out, "Ada") {
		t.Fatalf("records rendered out of order:\n%s", out)
	}
}
