package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Config holds the inference endpoint settings.
type Config struct {
	BaseURL  string // e.g. https://api-inference.huggingface.co
	Model    string // e.g. dbmdz/bert-large-cased-finetuned-conll03-english
	APIToken string
	Timeout  time.Duration
	MaxChars int // input truncation; 0 = no limit
}

// Client calls a hosted token-classification model over HTTP.
type Client struct {
	cfg Config
	hc  *http.Client
	log *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	return &Client{
		cfg: cfg,
		hc:  &http.Client{Timeout: cfg.Timeout},
		log: logger,
	}
}

// Recognize sends text to the model and returns merged entity spans,
// sorted by start offset.
func (c *Client) Recognize(ctx context.Context, text string) ([]Entity, error) {
	rid := uuid.New().String()
	start := time.Now()

	if c.cfg.MaxChars > 0 && len(text) > c.cfg.MaxChars {
		c.log.Warn("ner.input_truncated", "req_id", rid, "from", len(text), "to", c.cfg.MaxChars)
		text = text[:c.cfg.MaxChars]
	}

	body := map[string]any{
		"inputs":  text,
		"options": map[string]any{"wait_for_model": true},
	}
	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/models/" + c.cfg.Model

	headers := map[string]string{}
	if c.cfg.APIToken != "" {
		headers["Authorization"] = "Bearer " + c.cfg.APIToken
	}

	c.log.Info("ner.request", "req_id", rid, "model", c.cfg.Model, "text_len", len(text))

	raw, status, err := sendJSON(ctx, c.hc, url, body, headers, c.log, rid)
	if err != nil {
		c.log.Error("ner.http_error",
			"req_id", rid, "status", status, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("ner inference: %w", err)
	}

	var spans []Entity
	if err := json.Unmarshal(raw, &spans); err != nil {
		c.log.Error("ner.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("decode ner response: %w", err)
	}

	merged := MergeAdjacent(spans)
	c.log.Info("ner.ok",
		"req_id", rid,
		"spans", len(spans),
		"merged", len(merged),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return merged, nil
}

// sendJSON posts a JSON body and returns the raw response bytes. It does not
// assume any provider; callers decide the URL and headers.
func sendJSON(ctx context.Context, client *http.Client, url string, body any, headers map[string]string, logger *slog.Logger, reqID string) ([]byte, int, error) {
	bs, err := json.Marshal(body)
	if err != nil {
		return nil, 0, fmt.Errorf("encode json: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}

	// Default headers; allow caller overrides.
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func(b io.ReadCloser) {
		if cerr := b.Close(); cerr != nil {
			logger.Warn("ner.response_body_close_error", "req_id", reqID, "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return raw, resp.StatusCode, fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}
	return raw, resp.StatusCode, nil
}
