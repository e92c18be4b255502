// Package modelexport converts exported model-collection documents into
// condensed formats (csv, json, yaml, markdown, text), optionally dropping
// records that look like they contain personal information. The root package
// re-exports the pipeline entry points; the moving parts live under pkg/.
package modelexport

import (
	"context"

	internalLoader "github.com/goliatone/go-modelexport/internal/export/loader"
	internalParser "github.com/goliatone/go-modelexport/internal/export/parser"
	"github.com/goliatone/go-modelexport/pkg/export"
	"github.com/goliatone/go-modelexport/pkg/pipeline"
	"github.com/goliatone/go-modelexport/pkg/record"
)

// Record is the canonical three-field record exchanged between stages.
type Record = record.Record

// Request describes one conversion run.
type Request = pipeline.Request

// Result reports one completed conversion.
type Result = pipeline.Result

// Option customises a pipeline.
type Option = pipeline.Option

// NewPipeline exposes the pipeline constructor from the top-level module.
func NewPipeline(options ...pipeline.Option) *pipeline.Pipeline {
	return pipeline.New(options...)
}

// SourceFromFile returns a Source for an on-disk export document.
func SourceFromFile(path string) export.Source {
	return export.SourceFromFile(path)
}

// NewLoader constructs a document loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...export.LoaderOption) export.Loader {
	cfg := export.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs an export parser backed by the internal implementation.
func NewParser(options ...export.ParserOption) export.Parser {
	cfg := export.NewParserOptions(options...)
	return internalParser.New(cfg)
}

// ConvertFile runs one conversion over an on-disk export document. It is the
// simplest entry point for callers that just want an artifact.
func ConvertFile(ctx context.Context, path string, req Request, options ...pipeline.Option) (Result, error) {
	req.Source = export.SourceFromFile(path)
	return pipeline.New(options...).Convert(ctx, req)
}
