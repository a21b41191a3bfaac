package record

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Marshal serializes the record with the fixed field order and 4-space
// indentation, ending in a newline. The same bytes go to the output file
// and the console, and repeat runs produce them byte for byte.
func Marshal(rec Record) ([]byte, error) {
	b, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	return append(b, '\n'), nil
}

// Write validates the record against the output schema and overwrites
// path with its JSON form. The written bytes are returned so callers can
// echo them to the console.
func Write(rec Record, path string, logger *slog.Logger) ([]byte, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	b, err := Marshal(rec)
	if err != nil {
		return nil, err
	}
	if err := ValidateJSONAgainstSchema(BuildRecordSchema(), b); err != nil {
		return nil, fmt.Errorf("validate record: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}

	logger.Info("record.write.ok",
		"path", path,
		"bytes", len(b),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return b, nil
}
