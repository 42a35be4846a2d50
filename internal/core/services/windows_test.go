package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ghmine/internal/core/domain"
)

func TestMonthlyWindows(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		trailing bool
		want     []string
	}{
		{
			name:  "two whole months",
			start: date(2024, 1, 1), end: date(2024, 3, 1),
			want: []string{"2024-01-01..2024-02-01", "2024-02-01..2024-03-01"},
		},
		{
			name:  "single whole month",
			start: date(2023, 6, 1), end: date(2023, 7, 1),
			want: []string{"2023-06-01..2023-07-01"},
		},
		{
			name:  "trailing partial window kept",
			start: date(2024, 1, 1), end: date(2024, 3, 15), trailing: true,
			want: []string{"2024-01-01..2024-02-01", "2024-02-01..2024-03-01", "2024-03-01..2024-03-15"},
		},
		{
			name:  "trailing partial window dropped",
			start: date(2024, 1, 1), end: date(2024, 3, 15), trailing: false,
			want: []string{"2024-01-01..2024-02-01", "2024-02-01..2024-03-01"},
		},
		{
			name:  "month end clamps without drift",
			start: date(2024, 1, 31), end: date(2024, 4, 30),
			want: []string{"2024-01-31..2024-02-29", "2024-02-29..2024-03-31", "2024-03-31..2024-04-30"},
		},
		{
			name:  "range shorter than a month with trailing",
			start: date(2024, 5, 10), end: date(2024, 5, 20), trailing: true,
			want: []string{"2024-05-10..2024-05-20"},
		},
		{
			name:  "year boundary",
			start: date(2023, 12, 1), end: date(2024, 2, 1),
			want: []string{"2023-12-01..2024-01-01", "2024-01-01..2024-02-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows, err := MonthlyWindows(tt.start, tt.end, tt.trailing)
			require.NoError(t, err)

			got := make([]string, 0, len(windows))
			for _, w := range windows {
				got = append(got, w.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonthlyWindows_ShortRangeWithoutTrailing(t *testing.T) {
	windows, err := MonthlyWindows(date(2024, 5, 10), date(2024, 5, 20), false)
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestMonthlyWindows_RejectsEmptyRange(t *testing.T) {
	t.Run("equal bounds", func(t *testing.T) {
		_, err := MonthlyWindows(date(2024, 1, 1), date(2024, 1, 1), true)
		assert.ErrorIs(t, err, domain.ErrConfiguration)
	})

	t.Run("reversed bounds", func(t *testing.T) {
		_, err := MonthlyWindows(date(2024, 3, 1), date(2024, 1, 1), true)
		assert.ErrorIs(t, err, domain.ErrConfiguration)
	})
}

func TestMonthlyWindows_TruncatesTimeOfDay(t *testing.T) {
	start := time.Date(2024, 1, 1, 13, 45, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

	windows, err := MonthlyWindows(start, end, true)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, date(2024, 1, 1), windows[0].Start)
	assert.Equal(t, date(2024, 2, 1), windows[0].End)
}

// Windows cover the range exactly: consecutive, non-overlapping, calendar
// aligned to the start day, and ending at the requested end.
func TestMonthlyWindows_CoverRange(t *testing.T) {
	starts := []time.Time{date(2020, 1, 1), date(2021, 8, 31), date(2022, 2, 28), date(2023, 10, 15)}
	ends := []time.Time{date(2023, 12, 31), date(2024, 1, 1), date(2024, 2, 29)}

	for _, start := range starts {
		for _, end := range ends {
			windows, err := MonthlyWindows(start, end, true)
			require.NoError(t, err)
			require.NotEmpty(t, windows)

			assert.Equal(t, start, windows[0].Start)
			assert.Equal(t, end, windows[len(windows)-1].End)

			for i, w := range windows {
				assert.True(t, w.Start.Before(w.End), "window %s is empty", w)
				if i > 0 {
					assert.Equal(t, windows[i-1].End, w.Start, "gap or overlap before %s", w)
				}
				if i < len(windows)-1 {
					assert.Equal(t, domain.AddMonths(start, i+1), w.End, "window %s is not a calendar month", w)
				}
			}
		}
	}
}
