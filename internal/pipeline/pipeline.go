// Package pipeline coordinates the extraction stages: load, regex
// fields, entity recognition, then record assembly and write.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/procureparse/tender-extractor/constants"
	"github.com/procureparse/tender-extractor/internal/fields"
	"github.com/procureparse/tender-extractor/internal/ner"
	"github.com/procureparse/tender-extractor/internal/pdfdoc"
	"github.com/procureparse/tender-extractor/internal/record"
)

// DocumentLoader is stage 1: path -> raw text and tables.
type DocumentLoader interface {
	Load(ctx context.Context, path string) (pdfdoc.Document, error)
}

// EntityRecognizer lets us stub the hosted model in tests.
type EntityRecognizer interface {
	Recognize(ctx context.Context, text string) ([]ner.Entity, error)
}

// Pipeline runs one document through every stage. Execution is
// sequential and single-document; there is no queueing or retry.
type Pipeline struct {
	Logger *slog.Logger
	Loader DocumentLoader
	Fields *fields.Extractor
	NER    EntityRecognizer // nil = stage skipped
}

func New(logger *slog.Logger, loader DocumentLoader, fx *fields.Extractor, recognizer EntityRecognizer) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{Logger: logger, Loader: loader, Fields: fx, NER: recognizer}
}

// Run extracts inputPath into a record and writes it to outputPath.
// The written JSON bytes are returned for console echo.
func (p *Pipeline) Run(ctx context.Context, inputPath, outputPath string) (record.Record, []byte, error) {
	start := time.Now()

	doc, err := p.Loader.Load(ctx, inputPath)
	if err != nil {
		p.Logger.Error("pipeline.load.failed", "path", inputPath, "status", constants.StageFailed, "error", err)
		return record.Record{}, nil, fmt.Errorf("load document: %w", err)
	}
	p.Logger.Info("pipeline.load.ok",
		"path", inputPath,
		"status", constants.StageLoadOK,
		"method", doc.Method,
		"pages", doc.Pages,
		"tables", len(doc.Tables),
		"text_bytes", len(doc.Text),
		"warnings", len(doc.Warnings),
	)

	fr := p.Fields.Extract(doc)
	p.Logger.Info("pipeline.fields.ok",
		"status", constants.StageFieldsOK,
		"reference", fr.ReferenceNumber,
		"emails", len(fr.Emails),
		"phones", len(fr.PhoneNumbers),
	)

	var ents []ner.Entity
	if p.NER == nil {
		p.Logger.Warn("pipeline.ner.skipped",
			"status", constants.StageNERSkip,
			"reason", "no API token configured",
		)
	} else {
		ents, err = p.NER.Recognize(ctx, fields.CleanText(doc.Text))
		if err != nil {
			p.Logger.Error("pipeline.ner.failed", "status", constants.StageFailed, "error", err)
			return record.Record{}, nil, fmt.Errorf("entity recognition: %w", err)
		}
		p.Logger.Info("pipeline.ner.ok", "status", constants.StageNEROK, "entities", len(ents))
	}

	rec := record.Build(fr, ents)
	out, err := record.Write(rec, outputPath, p.Logger)
	if err != nil {
		p.Logger.Error("pipeline.write.failed", "path", outputPath, "status", constants.StageFailed, "error", err)
		return rec, nil, err
	}

	p.Logger.Info("pipeline.ok",
		"status", constants.StageWriteOK,
		"input", inputPath,
		"output", outputPath,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, out, nil
}
