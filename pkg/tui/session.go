package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-modelexport/pkg/export"
	"github.com/goliatone/go-modelexport/pkg/pipeline"
)

// Session drives one interactive conversion: it collects the input path,
// output directory, format, and filter choices through the prompt driver,
// then runs a single synchronous Convert and reports the outcome.
type Session struct {
	driver          PromptDriver
	pipelineOptions []pipeline.Option
	defaultOutput   string
}

// SessionOption customises a Session.
type SessionOption func(*Session)

// WithDriver injects a prompt driver, replacing the survey default.
func WithDriver(driver PromptDriver) SessionOption {
	return func(s *Session) {
		s.driver = driver
	}
}

// WithPipelineOptions appends options applied to the pipeline built for the
// conversion (custom loaders, clocks, detectors).
func WithPipelineOptions(options ...pipeline.Option) SessionOption {
	return func(s *Session) {
		s.pipelineOptions = append(s.pipelineOptions, options...)
	}
}

// WithDefaultOutputDir sets the output directory suggested by the prompt.
func WithDefaultOutputDir(dir string) SessionOption {
	return func(s *Session) {
		s.defaultOutput = dir
	}
}

// NewSession constructs a Session with the survey driver by default.
func NewSession(options ...SessionOption) *Session {
	s := &Session{defaultOutput: "output"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver()
	}
	return s
}

// Run walks the prompts and executes one conversion. A user abort surfaces as
// ErrAborted; conversion failures come back untouched so callers can match
// export.ParseError / pipeline.WriteError.
func (s *Session) Run(ctx context.Context) (pipeline.Result, error) {
	if ctx == nil {
		return pipeline.Result{}, errors.New("tui: context is required")
	}

	inputPath, err := s.driver.Input(ctx, InputConfig{
		Message:   "Input JSON file:",
		Help:      "Path to the exported model collection (a top-level JSON array)",
		Validator: fileExists,
	})
	if err != nil {
		return pipeline.Result{}, err
	}

	outputDir, err := s.driver.Input(ctx, InputConfig{
		Message: "Output directory:",
		Default: s.defaultOutput,
		Help:    "Created if missing; artifacts are timestamp-named and never overwritten",
	})
	if err != nil {
		return pipeline.Result{}, err
	}

	formats := pipeline.New(s.pipelineOptions...).Formats()
	formatIdx, err := s.driver.Select(ctx, SelectConfig{
		Message:      "Output format:",
		Options:      formats,
		DefaultIndex: 0,
	})
	if err != nil {
		return pipeline.Result{}, err
	}
	if formatIdx < 0 || formatIdx >= len(formats) {
		return pipeline.Result{}, fmt.Errorf("tui: format selection out of range")
	}
	format := formats[formatIdx]

	filterPII, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: "Filter records that look like they contain personal information?",
		Default: true,
	})
	if err != nil {
		return pipeline.Result{}, err
	}

	withLinks, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: "Include openwebui://model links?",
		Default: false,
	})
	if err != nil {
		return pipeline.Result{}, err
	}

	options := append([]pipeline.Option(nil), s.pipelineOptions...)
	if withLinks {
		options = append(options, pipeline.WithModelLinks())
	}
	if format == "markdown" || format == "text" {
		options = append(options, pipeline.WithSanitizedText())
	}

	result, err := pipeline.New(options...).Convert(ctx, pipeline.Request{
		Source:    export.SourceFromFile(inputPath),
		Format:    format,
		OutputDir: outputDir,
		FilterPII: filterPII,
	})
	if err != nil {
		return pipeline.Result{}, err
	}

	summary := fmt.Sprintf("Wrote %d records to %s", result.Records, result.Artifact.Path)
	if result.Removed > 0 {
		summary += fmt.Sprintf(" (%d removed by the PII filter)", result.Removed)
	}
	if infoErr := s.driver.Info(ctx, summary); infoErr != nil {
		return result, infoErr
	}
	return result, nil
}

func fileExists(path string) error {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return errors.New("a file path is required")
	}
	info, err := os.Stat(trimmed)
	if err != nil {
		return fmt.Errorf("cannot read %s", trimmed)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", trimmed)
	}
	return nil
}
