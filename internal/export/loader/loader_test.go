package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-modelexport/pkg/export"
)

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	if err := os.WriteFile(path, []byte(`[]`), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	l := New(export.NewLoaderOptions())
	doc, err := l.Load(context.Background(), export.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != "[]" {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	l := New(export.NewLoaderOptions())
	if _, err := l.Load(context.Background(), export.SourceFromFile(filepath.Join(t.TempDir(), "absent.json"))); err == nil {
		t.Fatalf("expected missing file to fail")
	}
}

func TestLoad_FS(t *testing.T) {
	files := fstest.MapFS{
		"exports/models.json": &fstest.MapFile{Data: []byte(`[{"name":"a"}]`)},
	}

	l := New(export.NewLoaderOptions(export.WithFileSystem(files)))
	doc, err := l.Load(context.Background(), export.SourceFromFS("exports/models.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Raw()) == 0 {
		t.Fatalf("expected payload")
	}
}

func TestLoad_HTTPDisabledByDefault(t *testing.T) {
	l := New(export.NewLoaderOptions())
	if _, err := l.Load(context.Background(), export.SourceFromURL("http://127.0.0.1:1/export.json")); err == nil {
		t.Fatalf("expected http source to be rejected without a client")
	}
}

func TestLoad_HTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	l := New(export.NewLoaderOptions(export.WithHTTPClient(server.Client())))
	doc, err := l.Load(context.Background(), export.SourceFromURL(server.URL))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != "[]" {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}
}

func TestLoad_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	l := New(export.NewLoaderOptions(export.WithHTTPClient(server.Client())))
	if _, err := l.Load(context.Background(), export.SourceFromURL(server.URL)); err == nil {
		t.Fatalf("expected non-2xx status to fail")
	}
}
