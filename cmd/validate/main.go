// Command validate checks the integrity of a symptom dataset before it is
// served: every table is fetched and parsed exactly as the advisor does, and
// the result is cross-checked for rows that were dropped, conditions missing
// reference data, and symptoms that carry no severity weight.
//
// Usage:
//
//	go run ./cmd/validate -source data
//	go run ./cmd/validate -source https://cdn.example.com/datasets -timeout 1m
//
// The exit code is 1 when the dataset cannot be loaded or yields no
// conditions. Warnings never fail the run.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/couchcryptid/symptom-advisor/internal/adapter/source"
	"github.com/couchcryptid/symptom-advisor/internal/advisor"
	"github.com/couchcryptid/symptom-advisor/internal/domain"
)

// phase tracks the outcome of one validation phase.
type phase struct {
	name     string
	errors   []string
	warnings []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) warnf(format string, args ...any) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	src := flag.String("source", "", "dataset directory, http(s) base URL, postgres:// URL, or .xlsx workbook")
	timeout := flag.Duration("timeout", 30*time.Second, "deadline for fetching all tables")
	flag.Parse()

	if *src == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(context.Background(), *src, *timeout, os.Stdout); code != 0 {
		os.Exit(code)
	}
}

func run(ctx context.Context, src string, timeout time.Duration, out io.Writer) int {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	fmt.Fprintln(out, "=== Symptom Dataset Integrity Validation ===")
	fmt.Fprintln(out)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fetcher, err := source.New(ctx, src, timeout, logger)
	if err != nil {
		fmt.Fprintf(out, "FATAL: open source: %v\n", err)
		return 1
	}
	defer fetcher.Close()

	raw, err := advisor.FetchTables(ctx, fetcher)
	if err != nil {
		fmt.Fprintf(out, "FATAL: %v\n", err)
		return 1
	}

	parsed := domain.ParseTables(raw)
	kb := domain.BuildFromParsed(parsed)

	phases := []*phase{
		validateParsing(parsed),
		validateBuild(kb),
		validateConditionCoverage(parsed, kb),
		validateSeverityCoverage(kb),
	}

	fmt.Fprintln(out)
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		switch {
		case !p.passed():
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		case len(p.warnings) > 0:
			status = fmt.Sprintf("\033[33mWARN (%d warnings)\033[0m", len(p.warnings))
		}
		fmt.Fprintf(out, "  %-42s %s\n", p.name, status)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Conditions: %d (%d dataset rows merged), severity weights: %d, skipped rows: %d\n",
		kb.Len(), kb.MergedRows(), kb.Severity().Len(), len(parsed.Skipped))

	for _, p := range phases {
		if len(p.errors) == 0 && len(p.warnings) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [E%d] %s\n", i+1, e)
		}
		for i, w := range p.warnings {
			fmt.Fprintf(out, "  [W%d] %s\n", i+1, w)
		}
	}

	if allPassed {
		fmt.Fprintln(out, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(out, "\nValidation FAILED.")
	return 1
}

// ── Phase 1: Table Parsing ──
// Reports every source line the parser dropped.

func validateParsing(parsed domain.ParsedTables) *phase {
	p := &phase{name: "Phase 1: Table Parsing"}
	for _, s := range parsed.Skipped {
		p.warnf("%s line %d: %s", s.Table, s.Line, s.Reason)
	}
	return p
}

// ── Phase 2: Knowledge Base Build ──

func validateBuild(kb *domain.KnowledgeBase) *phase {
	p := &phase{name: "Phase 2: Knowledge Base Build"}
	if kb.Len() == 0 {
		p.errorf("no conditions were built from the dataset table")
	}
	for _, c := range kb.Conditions() {
		if len(c.Symptoms) == 0 {
			p.warnf("%s: no symptoms", c.Name)
		}
	}
	return p
}

// ── Phase 3: Condition Coverage ──
// Cross-checks the description and precaution tables against the dataset.

func validateConditionCoverage(parsed domain.ParsedTables, kb *domain.KnowledgeBase) *phase {
	p := &phase{name: "Phase 3: Condition Coverage"}

	for _, c := range kb.Conditions() {
		if c.Description == nil {
			p.warnf("%s: no description", c.Name)
		}
		if c.Precautions == nil {
			p.warnf("%s: no precautions", c.Name)
		}
	}

	for _, d := range parsed.Descriptions {
		if _, ok := kb.Condition(d.Condition); !ok {
			p.warnf("description for unknown condition %q", d.Condition)
		}
	}
	for _, pr := range parsed.Precautions {
		if _, ok := kb.Condition(pr.Condition); !ok {
			p.warnf("precautions for unknown condition %q", pr.Condition)
		}
	}
	return p
}

// ── Phase 4: Severity Coverage ──
// Unweighted symptoms still match but add nothing to a condition's score.

func validateSeverityCoverage(kb *domain.KnowledgeBase) *phase {
	p := &phase{name: "Phase 4: Severity Coverage"}

	seen := make(map[string]bool)
	var missing []string
	for _, c := range kb.Conditions() {
		for _, s := range c.Symptoms {
			if seen[s] {
				continue
			}
			seen[s] = true
			if !kb.Severity().Has(s) {
				missing = append(missing, s)
			}
		}
	}
	slices.Sort(missing)
	for _, s := range missing {
		p.warnf("symptom %q has no severity weight", s)
	}
	return p
}
