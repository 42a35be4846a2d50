package domain

import (
	"fmt"
	"strings"
	"time"
)

// OutputFormat selects the shape of the persisted harvest document.
type OutputFormat string

const (
	// FormatRecords writes one flat, ordered array of records.
	FormatRecords OutputFormat = "records"

	// FormatMonthly writes an array with one array of records per window.
	FormatMonthly OutputFormat = "monthly"

	// FormatNames writes an object mapping window start dates to repository full names.
	FormatNames OutputFormat = "names"
)

// AllOutputFormats returns every supported output format.
func AllOutputFormats() []OutputFormat {
	return []OutputFormat{FormatRecords, FormatMonthly, FormatNames}
}

// ParseOutputFormat parses a format name. An empty string selects FormatRecords.
func ParseOutputFormat(s string) (OutputFormat, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatRecords, nil
	}
	for _, f := range AllOutputFormats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// OutputSpec describes where and how a harvest is written.
type OutputSpec struct {
	Path   string
	Format OutputFormat
	Pretty bool
}

// HarvestRequest holds everything the collector needs for one run.
type HarvestRequest struct {
	// Language is the repository language filter.
	Language string

	// Start and End bound the harvest range [Start, End).
	Start time.Time
	End   time.Time

	// ReposPerMonth is the per-window record target (1..MaxReposPerMonth).
	ReposPerMonth int

	// Token is an explicit credential; empty defers to the token provider.
	Token string

	// TrailingWindow includes the final partial window ending at End.
	TrailingWindow bool

	// Qualifiers are extra search qualifiers appended to every query.
	Qualifiers []string

	// PageSize is the number of results requested per page (default MaxPerPage).
	PageSize int

	// Output describes the persisted document.
	Output OutputSpec
}

// WindowResult holds what one window contributed to the harvest.
type WindowResult struct {
	Window  Window
	Records []RepoRecord

	// Pages is the number of successful page fetches.
	Pages int

	// TotalCount is the match count reported by the first page.
	TotalCount int

	// Failed is set when the window ended on a non-rate-limit error.
	Failed bool
}

// Harvest is the ordered accumulator of one run.
type Harvest struct {
	RunID      string
	Request    HarvestRequest
	Windows    []WindowResult
	Warnings   []string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Records returns all records in chronological window order.
func (h *Harvest) Records() []RepoRecord {
	n := 0
	for _, w := range h.Windows {
		n += len(w.Records)
	}
	out := make([]RepoRecord, 0, n)
	for _, w := range h.Windows {
		out = append(out, w.Records...)
	}
	return out
}

// RecordCount returns the number of accumulated records.
func (h *Harvest) RecordCount() int {
	n := 0
	for _, w := range h.Windows {
		n += len(w.Records)
	}
	return n
}

// Monthly returns one slice of records per window, in window order.
func (h *Harvest) Monthly() [][]RepoRecord {
	out := make([][]RepoRecord, 0, len(h.Windows))
	for _, w := range h.Windows {
		records := w.Records
		if records == nil {
			records = []RepoRecord{}
		}
		out = append(out, records)
	}
	return out
}

// Names maps each window's start date to the full names collected in it.
func (h *Harvest) Names() map[string][]string {
	out := make(map[string][]string, len(h.Windows))
	for _, w := range h.Windows {
		names := make([]string, 0, len(w.Records))
		for _, r := range w.Records {
			names = append(names, r.DisplayName())
		}
		out[w.Window.Key()] = names
	}
	return out
}

// Warn appends a formatted non-fatal warning.
func (h *Harvest) Warn(format string, args ...any) {
	h.Warnings = append(h.Warnings, fmt.Sprintf(format, args...))
}
