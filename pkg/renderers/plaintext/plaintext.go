package plaintext

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-modelexport/pkg/record"
	"github.com/goliatone/go-modelexport/pkg/render"
	"github.com/goliatone/go-modelexport/pkg/render/template"
	"github.com/goliatone/go-modelexport/pkg/render/template/gotemplate"
)

const (
	defaultTitle   = "OPENWEBUI MODELS"
	separatorWidth = 50
)

// Renderer implements render.Renderer for plain-text output: the text
// rendition of the markdown layout, with underlined model names and a dashed
// separator per record.
type Renderer struct {
	engine template.TemplateRenderer
}

// Option customises the plain-text renderer.
type Option func(*Renderer)

// WithTemplateRenderer injects a custom template engine, replacing the
// embedded layout.
func WithTemplateRenderer(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		r.engine = engine
	}
}

// New constructs a plain-text renderer backed by the embedded template.
func New(options ...Option) (render.Renderer, error) {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.engine == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(embeddedTemplates))
		if err != nil {
			return nil, fmt.Errorf("plaintext: template engine: %w", err)
		}
		r.engine = engine
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "text"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Extension reports the artifact filename extension.
func (r *Renderer) Extension() string {
	return "txt"
}

// Render executes the document template over the record sequence.
func (r *Renderer) Render(ctx context.Context, records []record.Record, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("plaintext: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.engine == nil {
		return nil, errors.New("plaintext: template engine is nil")
	}

	title := opts.Title
	if title == "" {
		title = defaultTitle
	}

	rendered, err := r.engine.RenderTemplate("templates/models", templateData(title, records))
	if err != nil {
		return nil, fmt.Errorf("plaintext: render: %w", err)
	}
	return []byte(rendered), nil
}

func templateData(title string, records []record.Record) map[string]any {
	rows := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		rows = append(rows, map[string]any{
			"name":          rec.Name,
			"rule":          strings.Repeat("=", max(len(rec.Name), 1)),
			"description":   rec.Description,
			"system_prompt": rec.SystemPrompt,
			"link":          rec.Link,
		})
	}
	return map[string]any{
		"title":     title,
		"separator": strings.Repeat("-", separatorWidth),
		"records":   rows,
	}
}
