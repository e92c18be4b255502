package render

import (
	"context"

	"github.com/goliatone/go-modelexport/pkg/record"
)

// Renderer serializes a normalized record sequence into one output format.
// Renderers must preserve record order and never mutate their input.
type Renderer interface {
	Name() string
	ContentType() string
	// Extension is the artifact filename extension, without the leading dot.
	Extension() string
	Render(ctx context.Context, records []record.Record, options RenderOptions) ([]byte, error)
}
