package gotemplate

import (
	"bytes"
	"testing"
	"testing/fstest"
)

func TestNew_RequiresTemplateSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatalf("expected construction without sources to fail")
	}
}

func TestRenderTemplate_FromFS(t *testing.T) {
	files := fstest.MapFS{
		"greeting.tpl": &fstest.MapFile{Data: []byte("Hello {{ name }}!")},
	}

	engine, err := New(WithFS(files))
	if err != nil {
		t.Fatalf("construct engine: %v", err)
	}

	out, err := engine.RenderTemplate("greeting", map[string]any{"name": "World"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello World!" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRenderString_Inline(t *testing.T) {
	files := fstest.MapFS{"unused.tpl": &fstest.MapFile{Data: []byte("x")}}
	engine, err := New(WithFS(files))
	if err != nil {
		t.Fatalf("construct engine: %v", err)
	}

	out, err := engine.RenderString("{{ a }}-{{ b }}", map[string]any{"a": "1", "b": "2"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "1-2" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRender_WritesToSink(t *testing.T) {
	files := fstest.MapFS{"doc.tpl": &fstest.MapFile{Data: []byte("body")}}
	engine, err := New(WithFS(files))
	if err != nil {
		t.Fatalf("construct engine: %v", err)
	}

	var sink bytes.Buffer
	if _, err := engine.Render("doc", nil, &sink); err != nil {
		t.Fatalf("render: %v", err)
	}
	if sink.String() != "body" {
		t.Fatalf("expected sink to receive output, got %q", sink.String())
	}
}

func TestConvertToContext_StructData(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
	}

	ctx, err := convertToContext(payload{Title: "Models"})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if ctx["title"] != "Models" {
		t.Fatalf("expected json field names, got %v", ctx)
	}
}
