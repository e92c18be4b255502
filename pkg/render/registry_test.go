package render

import (
	"context"
	"testing"

	"github.com/goliatone/go-modelexport/pkg/record"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Extension() string   { return "txt" }
func (s stubRenderer) Render(_ context.Context, _ []record.Record, _ RenderOptions) ([]byte, error) {
	return nil, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(stubRenderer{name: "csv"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := registry.Get("csv"); err != nil {
		t.Fatalf("get: %v", err)
	}
	if !registry.Has("csv") {
		t.Fatalf("expected Has to report registered renderer")
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(stubRenderer{name: "json"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(stubRenderer{name: "json"}); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}

func TestRegistry_MissingRenderer(t *testing.T) {
	if _, err := NewRegistry().Get("xml"); err == nil {
		t.Fatalf("expected unknown renderer to fail")
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"yaml", "csv", "markdown"} {
		if err := registry.Register(stubRenderer{name: name}); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}

	names := registry.List()
	want := []string{"csv", "markdown", "yaml"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected sorted names %v, got %v", want, names)
		}
	}
}

func TestRegistry_NilAndUnnamed(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer to fail")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected unnamed renderer to fail")
	}
}
