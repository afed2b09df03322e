package source

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/couchcryptid/symptom-advisor/internal/domain"
)

// Workbook reads each table from the sheet of the same name in an XLSX file.
// Cells are joined with commas so rows parse like the CSV sources.
type Workbook struct {
	mu     sync.Mutex
	file   *excelize.File
	path   string
	logger *slog.Logger
}

// OpenWorkbook opens the workbook at path.
func OpenWorkbook(path string, logger *slog.Logger) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &Workbook{file: f, path: path, logger: logger}, nil
}

func (w *Workbook) Fetch(ctx context.Context, table domain.Table) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	w.mu.Lock()
	rows, err := w.file.GetRows(string(table))
	w.mu.Unlock()
	if err != nil {
		return "", fmt.Errorf("read sheet %s: %w", table, err)
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	w.logger.Debug("sheet read", "table", table, "path", w.path, "rows", len(rows))
	return b.String(), nil
}

func (w *Workbook) Close() error {
	return w.file.Close()
}
