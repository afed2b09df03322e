package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Table identifies one of the four source tables.
type Table string

const (
	TableDataset      Table = "dataset"
	TableDescriptions Table = "symptom_Description"
	TablePrecautions  Table = "symptom_precaution"
	TableSeverity     Table = "Symptom-severity"
)

// Tables lists every source table in the order the knowledge base consumes them.
var Tables = []Table{TableSeverity, TableDescriptions, TablePrecautions, TableDataset}

// ErrUnknownTable is returned when a table name is not one of Tables.
var ErrUnknownTable = errors.New("unknown table")

// ParseTable resolves a table name, e.g. "symptom_precaution".
func ParseTable(name string) (Table, error) {
	for _, t := range Tables {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTable, name)
}

// RawTables holds the unparsed text of each source table.
type RawTables struct {
	Severity     string
	Descriptions string
	Precautions  string
	Dataset      string
}

// Set stores the text for the given table.
func (r *RawTables) Set(t Table, text string) error {
	switch t {
	case TableSeverity:
		r.Severity = text
	case TableDescriptions:
		r.Descriptions = text
	case TablePrecautions:
		r.Precautions = text
	case TableDataset:
		r.Dataset = text
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTable, string(t))
	}
	return nil
}

// SeverityRow is one symptom weight from the severity table.
type SeverityRow struct {
	Symptom string
	Weight  int
}

// DescriptionRow is one condition description.
type DescriptionRow struct {
	Condition   string
	Description string
}

// PrecautionRow lists the precautions for one condition in source order.
type PrecautionRow struct {
	Condition   string
	Precautions []string
}

// DatasetRow is one observed condition/symptom combination.
type DatasetRow struct {
	Condition string
	Symptoms  []string
}

// SkippedRow records a source line the parser dropped.
type SkippedRow struct {
	Table  Table
	Line   int // 1-based, header is line 1
	Reason string
}

// ParsedTables is the typed form of RawTables plus every line that was dropped.
type ParsedTables struct {
	Severity     []SeverityRow
	Descriptions []DescriptionRow
	Precautions  []PrecautionRow
	Dataset      []DatasetRow
	Skipped      []SkippedRow
}

// ParseTables parses all four tables. Malformed rows are skipped, never fatal.
func ParseTables(raw RawTables) ParsedTables {
	var p ParsedTables
	var skipped []SkippedRow

	p.Severity, skipped = ParseSeverity(raw.Severity)
	p.Skipped = append(p.Skipped, skipped...)
	p.Descriptions, skipped = ParseDescriptions(raw.Descriptions)
	p.Skipped = append(p.Skipped, skipped...)
	p.Precautions, skipped = ParsePrecautions(raw.Precautions)
	p.Skipped = append(p.Skipped, skipped...)
	p.Dataset, skipped = ParseDataset(raw.Dataset)
	p.Skipped = append(p.Skipped, skipped...)

	return p
}

// ParseSeverity parses "symptom,weight" rows. A row whose weight is not an
// integer is skipped.
func ParseSeverity(text string) ([]SeverityRow, []SkippedRow) {
	var rows []SeverityRow
	var skipped []SkippedRow
	for _, l := range dataLines(text) {
		fields := strings.Split(l.text, ",")
		if len(fields) < 2 {
			skipped = append(skipped, SkippedRow{Table: TableSeverity, Line: l.number, Reason: "missing weight"})
			continue
		}
		symptom := normalizeSymptom(fields[0])
		if symptom == "" {
			skipped = append(skipped, SkippedRow{Table: TableSeverity, Line: l.number, Reason: "empty symptom"})
			continue
		}
		weight, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			skipped = append(skipped, SkippedRow{Table: TableSeverity, Line: l.number, Reason: fmt.Sprintf("invalid weight %q", fields[1])})
			continue
		}
		rows = append(rows, SeverityRow{Symptom: symptom, Weight: weight})
	}
	return rows, skipped
}

// ParseDescriptions parses "condition,description" rows. Only the second field
// is kept: text after a further comma is dropped, not reassembled.
func ParseDescriptions(text string) ([]DescriptionRow, []SkippedRow) {
	var rows []DescriptionRow
	var skipped []SkippedRow
	for _, l := range dataLines(text) {
		fields := strings.Split(l.text, ",")
		condition := strings.TrimSpace(fields[0])
		if condition == "" {
			skipped = append(skipped, SkippedRow{Table: TableDescriptions, Line: l.number, Reason: "empty condition"})
			continue
		}
		if len(fields) < 2 {
			skipped = append(skipped, SkippedRow{Table: TableDescriptions, Line: l.number, Reason: "missing description"})
			continue
		}
		rows = append(rows, DescriptionRow{Condition: condition, Description: strings.TrimSpace(fields[1])})
	}
	return rows, skipped
}

// ParsePrecautions parses "condition,precaution_1,...,precaution_n" rows.
// Empty precautions are dropped; a row may end up with none.
func ParsePrecautions(text string) ([]PrecautionRow, []SkippedRow) {
	var rows []PrecautionRow
	var skipped []SkippedRow
	for _, l := range dataLines(text) {
		fields := strings.Split(l.text, ",")
		condition := strings.TrimSpace(fields[0])
		if condition == "" {
			skipped = append(skipped, SkippedRow{Table: TablePrecautions, Line: l.number, Reason: "empty condition"})
			continue
		}
		precautions := make([]string, 0, len(fields)-1)
		for _, f := range fields[1:] {
			if p := strings.TrimSpace(f); p != "" {
				precautions = append(precautions, p)
			}
		}
		rows = append(rows, PrecautionRow{Condition: condition, Precautions: precautions})
	}
	return rows, skipped
}

// ParseDataset parses "condition,symptom_1,...,symptom_n" rows. Symptoms are
// lowercased and trimmed; empty symptom columns are dropped.
func ParseDataset(text string) ([]DatasetRow, []SkippedRow) {
	var rows []DatasetRow
	var skipped []SkippedRow
	for _, l := range dataLines(text) {
		fields := strings.Split(l.text, ",")
		condition := strings.TrimSpace(fields[0])
		if condition == "" {
			skipped = append(skipped, SkippedRow{Table: TableDataset, Line: l.number, Reason: "empty condition"})
			continue
		}
		symptoms := make([]string, 0, len(fields)-1)
		for _, f := range fields[1:] {
			if s := normalizeSymptom(f); s != "" {
				symptoms = append(symptoms, s)
			}
		}
		rows = append(rows, DatasetRow{Condition: condition, Symptoms: symptoms})
	}
	return rows, skipped
}

type line struct {
	number int
	text   string
}

// dataLines splits text into lines, drops the header line and every blank line,
// and strips a trailing carriage return from CRLF sources.
func dataLines(text string) []line {
	all := strings.Split(text, "\n")
	if len(all) <= 1 {
		return nil
	}
	out := make([]line, 0, len(all)-1)
	for i, l := range all[1:] {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, line{number: i + 2, text: l})
	}
	return out
}

func normalizeSymptom(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
