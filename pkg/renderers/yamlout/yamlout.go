package yamlout

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-modelexport/pkg/record"
	"github.com/goliatone/go-modelexport/pkg/render"
)

// Renderer implements render.Renderer for YAML output: a top-level sequence
// mirroring the simplified JSON shape, in input order.
type Renderer struct{}

// New constructs the YAML renderer.
func New() render.Renderer {
	return &Renderer{}
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "yaml"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "application/yaml"
}

// Extension reports the artifact filename extension.
func (r *Renderer) Extension() string {
	return "yaml"
}

// Render serializes the record sequence.
func (r *Renderer) Render(ctx context.Context, records []record.Record, _ render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("yamlout: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if records == nil {
		records = []record.Record{}
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("yamlout: marshal records: %w", err)
	}
	return data, nil
}
