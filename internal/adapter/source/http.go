package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/symptom-advisor/internal/domain"
)

// maxTableBytes bounds a single table download.
const maxTableBytes = 16 << 20

// HTTP fetches <baseURL>/<table>.csv.
type HTTP struct {
	baseURL    string
	httpClient *http.Client
	maxBytes   int64
	logger     *slog.Logger
}

// NewHTTP creates a fetcher for CSV files published under baseURL.
func NewHTTP(baseURL string, timeout time.Duration, logger *slog.Logger) *HTTP {
	return &HTTP{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxBytes: maxTableBytes,
		logger:   logger,
	}
}

func (h *HTTP) Fetch(ctx context.Context, table domain.Table) (string, error) {
	u, err := url.JoinPath(h.baseURL, fileName(table))
	if err != nil {
		return "", fmt.Errorf("build %s url: %w", table, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%s: status %d: %s", table, resp.StatusCode, body)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, h.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read %s body: %w", table, err)
	}
	if int64(len(data)) > h.maxBytes {
		return "", fmt.Errorf("%s: body exceeds %d bytes", table, h.maxBytes)
	}
	h.logger.Debug("table downloaded", "table", table, "url", u, "bytes", len(data), "duration", time.Since(start))
	return string(data), nil
}

func (h *HTTP) Close() error {
	h.httpClient.CloseIdleConnections()
	return nil
}
