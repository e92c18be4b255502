package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-modelexport/pkg/pii"
	"github.com/goliatone/go-modelexport/pkg/pipeline"
	"github.com/goliatone/go-modelexport/pkg/tui"
)

func main() {
	outputDir := flag.String("output-dir", "output", "output directory suggested by the prompts")
	rulesPath := flag.String("pii-rules", "", "YAML rule file overriding the built-in PII pattern set")
	flag.Parse()

	ctx := context.Background()

	var options []tui.SessionOption
	options = append(options, tui.WithDefaultOutputDir(*outputDir))
	if *rulesPath != "" {
		rules, err := pii.LoadRules(*rulesPath)
		if err != nil {
			log.Fatalf("Failed to load PII rules: %v", err)
		}
		detector, err := pii.NewDetector(rules)
		if err != nil {
			log.Fatalf("Failed to compile PII rules: %v", err)
		}
		options = append(options, tui.WithPipelineOptions(pipeline.WithDetector(detector)))
	}

	session := tui.NewSession(options...)
	if _, err := session.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(os.Stderr, "Aborted.")
			os.Exit(1)
		}
		log.Fatalf("Conversion failed: %v", err)
	}
}
