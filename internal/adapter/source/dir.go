package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/couchcryptid/symptom-advisor/internal/domain"
)

// Dir reads <root>/<table>.csv from the local filesystem.
type Dir struct {
	root   string
	logger *slog.Logger
}

func NewDir(root string, logger *slog.Logger) *Dir {
	return &Dir{root: root, logger: logger}
}

func (d *Dir) Fetch(ctx context.Context, table domain.Table) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := filepath.Join(d.root, fileName(table))
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", table, err)
	}
	d.logger.Debug("table read", "table", table, "path", path, "bytes", len(data))
	return string(data), nil
}

func (d *Dir) Close() error { return nil }
