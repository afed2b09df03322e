// Package source fetches the four dataset tables from wherever DATASET_SOURCE
// points: a directory of CSV files, an HTTP base URL, a PostgreSQL database or
// an XLSX workbook.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/couchcryptid/symptom-advisor/internal/domain"
)

// Fetcher returns the raw comma-separated text of one table, header line first.
type Fetcher interface {
	Fetch(ctx context.Context, table domain.Table) (string, error)
	Close() error
}

// New selects a Fetcher by the shape of source.
func New(ctx context.Context, source string, timeout time.Duration, logger *slog.Logger) (Fetcher, error) {
	lower := strings.ToLower(source)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return NewHTTP(source, timeout, logger), nil
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return NewPostgres(ctx, source, logger)
	case strings.HasSuffix(lower, ".xlsx"):
		return OpenWorkbook(source, logger)
	}

	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("dataset source: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("dataset source %q is not a directory, URL, or .xlsx workbook", source)
	}
	return NewDir(source, logger), nil
}

// fileName is the CSV resource name of a table.
func fileName(t domain.Table) string {
	return string(t) + ".csv"
}
