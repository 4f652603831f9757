// Package rest carries the shared HTTP plumbing for the annotation-service
// clients.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds a single annotation-service request.
const DefaultTimeout = 30 * time.Second

// GetJSON performs a GET against a full URL and decodes the JSON response into
// out. It does not assume any provider (Ensembl/EBI/etc.); callers decide the
// URL. A non-2xx status is returned as an error with the status code.
func GetJSON(ctx context.Context, client *http.Client, url string, out any, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	reqID := uuid.New().String()
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.Error("rest.http.build_request_error", "req_id", reqID, "error", err)
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	logger.Debug("rest.http.request", "req_id", reqID, "url", url)

	resp, err := client.Do(req)
	if err != nil {
		logger.Error("rest.http.send_error", "req_id", reqID, "url", url, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logger.Warn("rest.http.response_body_close_error", "req_id", reqID, "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	logger.Debug("rest.http.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("non-2xx status %d for %s", resp.StatusCode, url)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response from %s: %w", url, err)
	}
	return nil
}
