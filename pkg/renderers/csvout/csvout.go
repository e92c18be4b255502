package csvout

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/goliatone/go-modelexport/pkg/record"
	"github.com/goliatone/go-modelexport/pkg/render"
)

// Renderer implements render.Renderer for CSV output: one header row in
// canonical column order followed by one row per record, with standard
// quoting for embedded delimiters, quotes, and newlines.
type Renderer struct{}

// New constructs the CSV renderer.
func New() render.Renderer {
	return &Renderer{}
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "csv"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/csv; charset=utf-8"
}

// Extension reports the artifact filename extension.
func (r *Renderer) Extension() string {
	return "csv"
}

// Render serializes the record sequence, preserving input order.
func (r *Renderer) Render(ctx context.Context, records []record.Record, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("csvout: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(record.Columns(opts.IncludeLink)); err != nil {
		return nil, fmt.Errorf("csvout: write header: %w", err)
	}
	for i, rec := range records {
		if err := writer.Write(rec.Values(opts.IncludeLink)); err != nil {
			return nil, fmt.Errorf("csvout: write row %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("csvout: flush: %w", err)
	}
	return buf.Bytes(), nil
}
