package pdfdoc

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/procureparse/tender-extractor/constants"
)

// Config holds loader behavior knobs.
type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
}

// Loader extracts text and tables from a PDF, falling back to the
// pdftotext tool when the native parser yields nothing usable.
type Loader struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewLoader(cfg Config, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	return &Loader{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Load opens the PDF at path and returns its text and tables.
func (l *Loader) Load(ctx context.Context, path string) (Document, error) {
	start := time.Now()

	ext := filepath.Ext(path)
	if !constants.IsAllowedExt(ext) {
		return Document{}, fmt.Errorf("unsupported extension: %q", ext)
	}

	doc, nativeErr := l.extractNative(path)
	if nativeErr == nil && strings.TrimSpace(doc.Text) != "" {
		doc.Method = constants.MethodPDFText
		doc.Duration = time.Since(start)
		return doc, nil
	}

	if nativeErr != nil {
		l.logger.Warn("native pdf extraction failed, trying pdftotext",
			"path", path, "error", nativeErr)
	} else {
		l.logger.Warn("native pdf extraction yielded no text, trying pdftotext",
			"path", path)
	}

	fallback, toolErr := l.pdftotextText(ctx, path)
	if toolErr != nil {
		if nativeErr != nil {
			return Document{}, fmt.Errorf("load document %s: %w", path, nativeErr)
		}
		return Document{}, fmt.Errorf("load document %s: %w", path, toolErr)
	}
	fallback.Method = constants.MethodPDFTool
	fallback.Duration = time.Since(start)
	if nativeErr != nil {
		fallback.Warnings = append(fallback.Warnings, nativeErr.Error())
	}
	return fallback, nil
}

// extractNative reads text objects and row geometry with the pdf library.
func (l *Loader) extractNative(path string) (Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			l.logger.Warn("close pdf", "path", path, "error", cerr)
		}
	}()

	var text strings.Builder
	var tables []Table
	var warnings []string
	totalPages := r.NumPage()

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		p := r.Page(pageNum)
		if p.V.IsNull() {
			continue
		}

		pageText, err := p.GetPlainText(nil)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("page %d text: %v", pageNum, err))
		} else {
			text.WriteString(pageText)
			text.WriteString("\n")
		}

		rows, err := p.GetTextByRow()
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("page %d rows: %v", pageNum, err))
			continue
		}
		var cellRows [][]string
		for _, row := range rows {
			if cells := splitRowCells(row.Content, colGap); len(cells) > 0 {
				cellRows = append(cellRows, cells)
			}
		}
		tables = append(tables, groupTables(cellRows)...)
	}

	return Document{
		Text:     text.String(),
		Pages:    totalPages,
		Tables:   tables,
		Warnings: warnings,
	}, nil
}

// pdftotextText shells out to pdftotext; tables are not recovered this way.
func (l *Loader) pdftotextText(ctx context.Context, path string) (Document, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := l.runner.Run(ctx, l.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return Document{}, fmt.Errorf("pdftotext: %w: %s", err, truncate(string(errb), 512))
	}
	text := string(out)
	// A form-feed \f is used as page separator by default
	pages := 1 + strings.Count(text, "\f")
	return Document{Text: text, Pages: pages}, nil
}
