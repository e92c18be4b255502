package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-modelexport/pkg/export"
	"github.com/goliatone/go-modelexport/pkg/pii"
	"github.com/goliatone/go-modelexport/pkg/pipeline"
)

func main() {
	outputDir := flag.String("output-dir", "output", "directory the artifact is written to")
	baseName := flag.String("base-name", "models", "artifact name prefix")
	filterPII := flag.Bool("filter-pii", false, "drop records that look like they contain personal information")
	rulesPath := flag.String("pii-rules", "", "YAML rule file overriding the built-in PII pattern set")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: convert-to-csv [flags] <input-path>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	inputPath := flag.Arg(0)

	ctx := context.Background()

	options := []pipeline.Option{
		pipeline.WithOutputDir(*outputDir),
		pipeline.WithDefaultFormat("csv"),
	}
	if *rulesPath != "" {
		rules, err := pii.LoadRules(*rulesPath)
		if err != nil {
			log.Fatalf("Failed to load PII rules: %v", err)
		}
		detector, err := pii.NewDetector(rules)
		if err != nil {
			log.Fatalf("Failed to compile PII rules: %v", err)
		}
		options = append(options, pipeline.WithDetector(detector))
	}

	result, err := pipeline.New(options...).Convert(ctx, pipeline.Request{
		Source:    export.SourceFromFile(inputPath),
		BaseName:  *baseName,
		FilterPII: *filterPII,
	})
	if err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}

	fmt.Printf("Wrote %d records to %s\n", result.Records, result.Artifact.Path)
	if result.Removed > 0 {
		fmt.Printf("Removed %d records containing personal information\n", result.Removed)
	}
}
