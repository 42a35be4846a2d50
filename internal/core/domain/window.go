package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO date layout used for window bounds and CLI input.
const DateLayout = "2006-01-02"

// Window is a half-open date range [Start, End) scoping one search query.
// Bounds are UTC midnight.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// String renders the window as "start..end" with an exclusive end.
func (w Window) String() string {
	return w.Start.Format(DateLayout) + ".." + w.End.Format(DateLayout)
}

// LastDay returns the last day covered by the window.
func (w Window) LastDay() time.Time {
	return w.End.AddDate(0, 0, -1)
}

// Key returns the start date used to label the window in output documents.
func (w Window) Key() string {
	return w.Start.Format(DateLayout)
}

// CreatedQualifier renders the window as a GitHub created: qualifier.
// GitHub ranges are inclusive on both ends, so the exclusive end becomes the
// previous day.
func (w Window) CreatedQualifier() string {
	return fmt.Sprintf("created:%s..%s", w.Start.Format(DateLayout), w.LastDay().Format(DateLayout))
}

// ParseDate parses an ISO date (YYYY-MM-DD) as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, s)
	}
	return t, nil
}

// Today returns the current UTC date at midnight.
func Today(now time.Time) time.Time {
	return TruncateDay(now)
}

// TruncateDay drops the time of day, returning UTC midnight.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddMonths adds n calendar months to t, clamping the day to the length of
// the target month (Jan 31 + 1 month is Feb 29 in a leap year).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}
