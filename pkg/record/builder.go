package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-modelexport/pkg/export"
)

// linkScheme prefixes model identifiers when link generation is enabled.
const linkScheme = "openwebui://model/"

// Builder converts raw export entries into normalized records, one-to-one and
// order preserving. Implementations must be pure: no entry can fail the run
// for missing fields.
type Builder interface {
	Build(entries []export.Entry) ([]Record, error)
}

// BuilderOption customises the default builder.
type BuilderOption func(*builder)

// WithFieldPaths overrides the resolution order for each canonical field.
// Empty path lists fall back to the defaults.
func WithFieldPaths(paths FieldPaths) BuilderOption {
	return func(b *builder) {
		if len(paths.Name) > 0 {
			b.paths.Name = paths.Name
		}
		if len(paths.Description) > 0 {
			b.paths.Description = paths.Description
		}
		if len(paths.SystemPrompt) > 0 {
			b.paths.SystemPrompt = paths.SystemPrompt
		}
	}
}

// WithModelLinks populates each record's Link field from the entry id.
func WithModelLinks() BuilderOption {
	return func(b *builder) {
		b.links = true
	}
}

// WithSanitizer strips markup from description and system prompt text before
// the record is assembled. Intended for the plain-text style outputs; leave
// unset for fidelity formats such as csv and json.
func WithSanitizer(s Sanitizer) BuilderOption {
	return func(b *builder) {
		b.sanitizer = s
	}
}

type builder struct {
	paths     FieldPaths
	links     bool
	sanitizer Sanitizer
}

// NewBuilder constructs the default builder with the documented field paths.
func NewBuilder(options ...BuilderOption) Builder {
	b := &builder{paths: DefaultFieldPaths()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Build resolves each entry's fields against the configured paths. The output
// always has the same length and order as the input.
func (b *builder) Build(entries []export.Entry) ([]Record, error) {
	if b == nil {
		return nil, errors.New("record: builder is nil")
	}

	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		rec := Record{
			Name:         strings.TrimSpace(resolve(entry, b.paths.Name)),
			Description:  resolve(entry, b.paths.Description),
			SystemPrompt: resolve(entry, b.paths.SystemPrompt),
		}
		if b.sanitizer != nil {
			rec.Description = b.sanitizer.Clean(rec.Description)
			rec.SystemPrompt = b.sanitizer.Clean(rec.SystemPrompt)
		}
		if b.links {
			if id, ok := entry.String("id"); ok && id != "" {
				rec.Link = fmt.Sprintf("%s%s", linkScheme, id)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
