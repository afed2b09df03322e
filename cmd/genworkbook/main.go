// Command genworkbook converts a dataset into an XLSX workbook with one sheet
// per table, ready to be served with DATASET_SOURCE=<file>.xlsx. Rows are
// split exactly as the advisor splits them, so the workbook parses to the same
// knowledge base as its source.
//
// Usage:
//
//	go run ./cmd/genworkbook -source data -out data/dataset.xlsx
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/couchcryptid/symptom-advisor/internal/adapter/source"
	"github.com/couchcryptid/symptom-advisor/internal/advisor"
	"github.com/couchcryptid/symptom-advisor/internal/domain"
)

const defaultSheet = "Sheet1"

func main() {
	src := flag.String("source", "", "dataset directory, http(s) base URL, postgres:// URL, or .xlsx workbook")
	out := flag.String("out", "", "output path for the .xlsx workbook")
	timeout := flag.Duration("timeout", 30*time.Second, "deadline for fetching all tables")
	flag.Parse()

	if *src == "" || *out == "" {
		flag.Usage()
		log.Fatal("both -source and -out are required")
	}

	if err := run(context.Background(), *src, *out, *timeout); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", *out)
}

func run(ctx context.Context, src, out string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	fetcher, err := source.New(ctx, src, timeout, slog.Default())
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer fetcher.Close()

	raw, err := advisor.FetchTables(ctx, fetcher)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	texts := map[domain.Table]string{
		domain.TableSeverity:     raw.Severity,
		domain.TableDescriptions: raw.Descriptions,
		domain.TablePrecautions:  raw.Precautions,
		domain.TableDataset:      raw.Dataset,
	}
	for _, table := range domain.Tables {
		if err := writeSheet(f, string(table), texts[table]); err != nil {
			return fmt.Errorf("write sheet %s: %w", table, err)
		}
	}
	if err := f.DeleteSheet(defaultSheet); err != nil {
		return fmt.Errorf("remove default sheet: %w", err)
	}

	if err := f.SaveAs(out); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet, text string) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	row := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		row++
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		values := cellValues(line)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

// cellValues splits a line on commas. Integers become numeric cells so
// severity weights stay numbers in the workbook.
func cellValues(line string) []any {
	fields := strings.Split(line, ",")
	values := make([]any, len(fields))
	for i, field := range fields {
		if n, err := strconv.Atoi(field); err == nil {
			values[i] = n
			continue
		}
		values[i] = field
	}
	return values
}
