package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	internalLoader "github.com/goliatone/go-modelexport/internal/export/loader"
	internalParser "github.com/goliatone/go-modelexport/internal/export/parser"
	"github.com/goliatone/go-modelexport/pkg/export"
	"github.com/goliatone/go-modelexport/pkg/pii"
	"github.com/goliatone/go-modelexport/pkg/record"
	"github.com/goliatone/go-modelexport/pkg/render"
	"github.com/goliatone/go-modelexport/pkg/renderers/csvout"
	"github.com/goliatone/go-modelexport/pkg/renderers/jsonout"
	"github.com/goliatone/go-modelexport/pkg/renderers/markdown"
	"github.com/goliatone/go-modelexport/pkg/renderers/plaintext"
	"github.com/goliatone/go-modelexport/pkg/renderers/yamlout"
)

const (
	defaultFormatName = "csv"
	defaultBaseName   = "models"
)

// Clock supplies the generation timestamp embedded in artifact names. Inject
// a fixed clock in tests for deterministic naming.
type Clock func() time.Time

// Option customises the pipeline configuration.
type Option func(*Pipeline)

// WithLoader injects a custom export document loader.
func WithLoader(loader export.Loader) Option {
	return func(p *Pipeline) {
		p.loader = loader
	}
}

// WithParser injects a custom export parser.
func WithParser(parser export.Parser) Option {
	return func(p *Pipeline) {
		p.parser = parser
	}
}

// WithBuilder injects a custom record builder. Callers supplying their own
// builder also own link and sanitizer behaviour.
func WithBuilder(builder record.Builder) Option {
	return func(p *Pipeline) {
		p.builder = builder
	}
}

// WithRegistry injects a renderer registry, replacing the built-in formats.
func WithRegistry(registry *render.Registry) Option {
	return func(p *Pipeline) {
		p.registry = registry
	}
}

// WithDetector injects the PII detector consulted when a request enables
// filtering. The default is the built-in rule set.
func WithDetector(detector pii.Detector) Option {
	return func(p *Pipeline) {
		p.detector = detector
	}
}

// WithClock injects the timestamp source for artifact naming.
func WithClock(clock Clock) Option {
	return func(p *Pipeline) {
		p.clock = clock
	}
}

// WithOutputDir sets the directory artifacts land in when a request does not
// override it. Defaults to the current directory.
func WithOutputDir(dir string) Option {
	return func(p *Pipeline) {
		p.outputDir = dir
	}
}

// WithDefaultFormat overrides the format used when a request omits one.
func WithDefaultFormat(name string) Option {
	return func(p *Pipeline) {
		p.defaultFormat = name
	}
}

// WithModelLinks makes the default builder attach openwebui://model/<id>
// links and tells renderers to include the link column/key.
func WithModelLinks() Option {
	return func(p *Pipeline) {
		p.includeLink = true
	}
}

// WithSanitizedText makes the default builder strip markup from description
// and system prompt text. Intended for markdown/text conversions.
func WithSanitizedText() Option {
	return func(p *Pipeline) {
		p.sanitize = true
	}
}

// Pipeline wires loader → parser → record builder → optional PII filter →
// renderer → artifact writer behind a single entry point. The zero value plus
// options is ready to use; defaults are applied on first conversion.
type Pipeline struct {
	loader   export.Loader
	parser   export.Parser
	builder  record.Builder
	registry *render.Registry
	detector pii.Detector
	clock    Clock

	outputDir     string
	defaultFormat string
	includeLink   bool
	sanitize      bool

	defaultsApplied bool
	initialiseErr   error
}

// New constructs a pipeline with the supplied options.
func New(options ...Option) *Pipeline {
	p := &Pipeline{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	p.applyDefaults()
	return p
}

// Request describes one conversion: where the export document lives, which
// format to produce, and where the artifact goes.
type Request struct {
	// Source identifies where the export document lives. Optional when
	// Document is supplied.
	Source export.Source

	// Document allows callers to bypass the loader when they already hold the
	// payload.
	Document *export.Document

	// Format names the output renderer. Empty falls back to the pipeline's
	// default format.
	Format string

	// BaseName is the artifact name prefix; "models" when empty.
	BaseName string

	// OutputDir overrides the pipeline's output directory for this request.
	OutputDir string

	// FilterPII enables the personal-information filter for this conversion.
	FilterPII bool

	// Title labels document-style outputs; formats that have no use for a
	// title ignore it.
	Title string
}

// Result reports one completed conversion.
type Result struct {
	// Artifact is the written output file.
	Artifact Artifact
	// Format is the renderer that produced the artifact.
	Format string
	// Records is the number of records serialized.
	Records int
	// Removed is the number of records dropped by the PII filter.
	Removed int
}

// Convert executes the full pipeline for one request. It reads exactly one
// input artifact and writes exactly one output artifact; any partially
// written file is removed before an error is returned.
func (p *Pipeline) Convert(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("pipeline: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := p.initialiseErr; err != nil {
		return Result{}, err
	}
	if !p.defaultsApplied {
		p.applyDefaults()
		if err := p.initialiseErr; err != nil {
			return Result{}, err
		}
	}

	doc, err := p.resolveDocument(ctx, req)
	if err != nil {
		return Result{}, err
	}

	entries, err := p.parser.Entries(ctx, doc)
	if err != nil {
		return Result{}, err
	}

	records, err := p.builder.Build(entries)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: build records: %w", err)
	}

	removed := 0
	if req.FilterPII {
		records, removed = pii.Filter(records, p.detector)
	}

	format := req.Format
	if format == "" {
		format = p.defaultFormat
	}
	renderer, err := p.registry.Get(format)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: %w", err)
	}

	output, err := renderer.Render(ctx, records, render.RenderOptions{
		IncludeLink: p.includeLink,
		Title:       req.Title,
	})
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: render %s: %w", format, err)
	}

	dir := req.OutputDir
	if dir == "" {
		dir = p.outputDir
	}
	base := req.BaseName
	if base == "" {
		base = defaultBaseName
	}

	path := artifactPath(dir, base, renderer.Extension(), p.clock())
	artifact, err := writeArtifact(path, output)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Artifact: artifact,
		Format:   renderer.Name(),
		Records:  len(records),
		Removed:  removed,
	}, nil
}

// Formats lists the registered output format names.
func (p *Pipeline) Formats() []string {
	if !p.defaultsApplied {
		p.applyDefaults()
	}
	if p.registry == nil {
		return nil
	}
	return p.registry.List()
}

func (p *Pipeline) resolveDocument(ctx context.Context, req Request) (export.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return export.Document{}, errors.New("pipeline: source or document is required")
	}
	doc, err := p.loader.Load(ctx, req.Source)
	if err != nil {
		return export.Document{}, fmt.Errorf("pipeline: load document: %w", err)
	}
	return doc, nil
}

func (p *Pipeline) applyDefaults() {
	if p.defaultsApplied {
		return
	}

	if p.loader == nil {
		p.loader = internalLoader.New(export.NewLoaderOptions())
	}
	if p.parser == nil {
		p.parser = internalParser.New(export.NewParserOptions())
	}
	if p.builder == nil {
		var builderOptions []record.BuilderOption
		if p.includeLink {
			builderOptions = append(builderOptions, record.WithModelLinks())
		}
		if p.sanitize {
			builderOptions = append(builderOptions, record.WithSanitizer(record.NewMarkupSanitizer()))
		}
		p.builder = record.NewBuilder(builderOptions...)
	}
	if p.detector == nil {
		p.detector = pii.MustNewDetector(pii.DefaultRuleSet())
	}
	if p.clock == nil {
		p.clock = time.Now
	}
	if p.outputDir == "" {
		p.outputDir = "."
	}
	if p.defaultFormat == "" {
		p.defaultFormat = defaultFormatName
	}

	if p.registry == nil {
		p.registry = render.NewRegistry()
		p.registry.MustRegister(csvout.New())
		p.registry.MustRegister(jsonout.New())
		p.registry.MustRegister(yamlout.New())

		md, err := markdown.New()
		if err != nil {
			p.initialiseErr = fmt.Errorf("pipeline: markdown renderer: %w", err)
			return
		}
		p.registry.MustRegister(md)

		txt, err := plaintext.New()
		if err != nil {
			p.initialiseErr = fmt.Errorf("pipeline: text renderer: %w", err)
			return
		}
		p.registry.MustRegister(txt)
	}

	p.defaultsApplied = true
}
