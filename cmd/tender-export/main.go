package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/procureparse/tender-extractor/internal/common"
	"github.com/procureparse/tender-extractor/internal/record"
)

// tender-export renders a previously extracted record as an XLSX report.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()

	jsonPath := cfg.Output.JSONPath
	if len(os.Args) > 2 {
		logger.Error("usage", "cmd", "tender-export [extracted_data.json]")
		os.Exit(2)
	}
	if len(os.Args) == 2 {
		jsonPath = os.Args[1]
	}

	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		logger.Error("read record", "path", jsonPath, "error", err)
		os.Exit(1)
	}
	if err := record.ValidateJSONAgainstSchema(record.BuildRecordSchema(), raw); err != nil {
		logger.Error("record does not match the output schema", "path", jsonPath, "error", err)
		os.Exit(1)
	}

	var rec record.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		logger.Error("decode record", "path", jsonPath, "error", err)
		os.Exit(1)
	}

	start := time.Now()
	out, err := record.ExportXLSX(rec, logger)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(cfg.Output.XLSXPath, out, 0o644); err != nil {
		logger.Error("write workbook", "path", cfg.Output.XLSXPath, "error", err)
		os.Exit(1)
	}

	logger.Info("export OK",
		"input", jsonPath,
		"output", cfg.Output.XLSXPath,
		"bytes", len(out),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
