package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/procureparse/tender-extractor/internal/common"
	"github.com/procureparse/tender-extractor/internal/fields"
	"github.com/procureparse/tender-extractor/internal/ner"
	"github.com/procureparse/tender-extractor/internal/pdfdoc"
	"github.com/procureparse/tender-extractor/internal/pipeline"
)

func main() {
	// Logs go to stderr; stdout is reserved for the record printout.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	inputPath := cfg.Input.Path
	if len(os.Args) > 2 {
		logger.Error("usage", "cmd", "tender-extract [document.pdf]")
		os.Exit(2)
	}
	if len(os.Args) == 2 {
		inputPath = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	loader := pdfdoc.NewLoader(pdfdoc.Config{Pdftotext: cfg.Input.PdftotextBin}, logger)
	extractor := fields.NewExtractor(logger)

	var recognizer pipeline.EntityRecognizer
	if cfg.NER.APIToken != "" {
		recognizer = ner.NewClient(ner.Config{
			BaseURL:  cfg.NER.BaseURL,
			Model:    cfg.NER.Model,
			APIToken: cfg.NER.APIToken,
			Timeout:  cfg.NER.Timeout,
			MaxChars: cfg.NER.MaxChars,
		}, logger)
	}

	p := pipeline.New(logger, loader, extractor, recognizer)

	start := time.Now()
	_, out, err := p.Run(ctx, inputPath, cfg.Output.JSONPath)
	if err != nil {
		logger.Error("extraction failed",
			"input", inputPath, "error", err,
			"duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	fmt.Println("Extracted Data:")
	if _, err := os.Stdout.Write(out); err != nil {
		logger.Error("print record", "error", err)
		os.Exit(1)
	}
}
