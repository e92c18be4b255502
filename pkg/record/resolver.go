package record

import "github.com/goliatone/go-modelexport/pkg/export"

// FieldPaths lists the dotted key paths tried, in order, when resolving one
// canonical field from a raw entry. The first present, non-null string value
// wins; when every path misses the field collapses to the empty string.
// Missing data is expected, never an error.
type FieldPaths struct {
	Name         []string
	Description  []string
	SystemPrompt []string
}

// DefaultFieldPaths returns the documented resolution order for OpenWebUI
// style exports. The flat keys come first; the info.* variants cover exports
// that nest editable metadata under the record's info envelope.
func DefaultFieldPaths() FieldPaths {
	return FieldPaths{
		Name:         []string{"name"},
		Description:  []string{"meta.description", "info.meta.description", "description"},
		SystemPrompt: []string{"params.system", "info.params.system", "system"},
	}
}

// resolve walks the candidate paths against an entry and collapses to "".
func resolve(entry export.Entry, paths []string) string {
	for _, path := range paths {
		if value, ok := entry.String(path); ok {
			return value
		}
	}
	return ""
}
