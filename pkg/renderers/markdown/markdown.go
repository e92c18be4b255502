package markdown

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-modelexport/pkg/record"
	"github.com/goliatone/go-modelexport/pkg/render"
	"github.com/goliatone/go-modelexport/pkg/render/template"
	"github.com/goliatone/go-modelexport/pkg/render/template/gotemplate"
)

const defaultTitle = "OpenWebUI Models"

// Renderer implements render.Renderer for Markdown output: model names as
// headers with description, fenced system prompt, and optional link
// underneath, separated per record.
type Renderer struct {
	engine template.TemplateRenderer
}

// Option customises the Markdown renderer.
type Option func(*Renderer)

// WithTemplateRenderer injects a custom template engine, replacing the
// embedded layout.
func WithTemplateRenderer(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		r.engine = engine
	}
}

// New constructs a Markdown renderer backed by the embedded template.
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
			return nil, fmt.Errorf("markdown: template engine: %w", err)
		}
		r.engine = engine
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "markdown"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

// Extension reports the artifact filename extension.
func (r *Renderer) Extension() string {
	return "md"
}

// Render executes the document template over the record sequence.
func (r *Renderer) Render(ctx context.Context, records []record.Record, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("markdown: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.engine == nil {
		return nil, errors.New("markdown: template engine is nil")
	}

	title := opts.Title
	if title == "" {
		title = defaultTitle
	}

	rendered, err := r.engine.RenderTemplate("templates/models", templateData(title, records))
	if err != nil {
		return nil, fmt.Errorf("markdown: render: %w", err)
	}
	return []byte(rendered), nil
}

// templateData flattens records into plain maps so the template engine sees
// simple values regardless of its context conversion rules.
func templateData(title string, records []record.Record) map[string]any {
	rows := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		rows = append(rows, map[string]any{
			"name":          rec.Name,
			"description":   rec.Description,
			"system_prompt": rec.SystemPrompt,
			"link":          rec.Link,
		})
	}
	return map[string]any{
		"title":   title,
		"records": rows,
	}
}
