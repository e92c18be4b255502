package jsonout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-modelexport/pkg/record"
	"github.com/goliatone/go-modelexport/pkg/render"
)

// Renderer implements render.Renderer for the simplified JSON format: a
// single top-level array of objects carrying the three canonical keys (plus
// link when enabled), in input order.
type Renderer struct {
	indent string
}

// Option customises the JSON renderer.
type Option func(*Renderer)

// WithIndent overrides the two-space default indentation. An empty string
// produces compact output.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// New constructs the JSON renderer.
func New(options ...Option) render.Renderer {
	r := &Renderer{indent: "  "}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "json"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "application/json"
}

// Extension reports the artifact filename extension.
func (r *Renderer) Extension() string {
	return "json"
}

// Render serializes the record sequence. An empty input yields an empty
// array, never null, so downstream parsers always see list-shaped output.
func (r *Renderer) Render(ctx context.Context, records []record.Record, _ render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("jsonout: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if records == nil {
		records = []record.Record{}
	}

	var (
		data []byte
		err  error
	)
	if r.indent == "" {
		data, err = json.Marshal(records)
	} else {
		data, err = json.MarshalIndent(records, "", r.indent)
	}
	if err != nil {
		return nil, fmt.Errorf("jsonout: marshal records: %w", err)
	}
	return append(data, '\n'), nil
}
