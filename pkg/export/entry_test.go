package export

import "testing"

func TestEntry_Lookup_Nested(t *testing.T) {
	entry := Entry{
		"name": "Helper",
		"meta": map[string]any{
			"description": "a helper model",
		},
		"params": map[string]any{
			"system": "You are helpful.",
		},
	}

	value, ok := entry.Lookup("meta.description")
	if !ok {
		t.Fatalf("expected meta.description to resolve")
	}
	if value != "a helper model" {
		t.Fatalf("unexpected value %v", value)
	}

	if _, ok := entry.Lookup("meta.missing"); ok {
		t.Fatalf("expected meta.missing to be absent")
	}
	if _, ok := entry.Lookup("params.system.nested"); ok {
		t.Fatalf("expected traversal through a string to fail")
	}
}

func TestEntry_String_NullAndNonString(t *testing.T) {
	entry := Entry{
		"name":        nil,
		"description": 42,
		"system":      "prompt",
	}

	if _, ok := entry.String("name"); ok {
		t.Fatalf("null value should not resolve as string")
	}
	if _, ok := entry.String("description"); ok {
		t.Fatalf("numeric value should not resolve as string")
	}
	value, ok := entry.String("system")
	if !ok || value != "prompt" {
		t.Fatalf("expected system to resolve, got %q ok=%v", value, ok)
	}
}

func TestEntry_Lookup_NilAndEmptyPath(t *testing.T) {
	var entry Entry
	if _, ok := entry.Lookup("name"); ok {
		t.Fatalf("nil entry should not resolve")
	}
	if _, ok := (Entry{"name": "x"}).Lookup(""); ok {
		t.Fatalf("empty path should not resolve")
	}
}

func TestParseError_Message(t *testing.T) {
	err := NewParseError("input.json", "expected a top-level array, got an object", nil)
	want := "export: parse input.json: expected a top-level array, got an object"
	if err.Error() != want {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
