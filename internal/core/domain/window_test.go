package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	t.Run("parses ISO date as UTC midnight", func(t *testing.T) {
		got, err := ParseDate("2024-01-15")

		require.NoError(t, err)
		assert.Equal(t, date(2024, time.January, 15), got)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		got, err := ParseDate(" 2024-02-01 ")

		require.NoError(t, err)
		assert.Equal(t, date(2024, time.February, 1), got)
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		_, err := ParseDate("01/15/2024")

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{"mid month", date(2024, time.January, 15), 1, date(2024, time.February, 15)},
		{"first of month", date(2024, time.January, 1), 1, date(2024, time.February, 1)},
		{"clamps to leap february", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"clamps to february", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"no drift from start", date(2024, time.January, 31), 2, date(2024, time.March, 31)},
		{"clamps to 30 day month", date(2024, time.March, 31), 1, date(2024, time.April, 30)},
		{"crosses year", date(2023, time.December, 15), 1, date(2024, time.January, 15)},
		{"zero months", date(2024, time.May, 5), 0, date(2024, time.May, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.in, tt.n))
		})
	}
}

func TestWindow(t *testing.T) {
	w := Window{Start: date(2024, time.January, 1), End: date(2024, time.February, 1)}

	t.Run("string uses exclusive end", func(t *testing.T) {
		assert.Equal(t, "2024-01-01..2024-02-01", w.String())
	})

	t.Run("created qualifier is inclusive", func(t *testing.T) {
		assert.Equal(t, "created:2024-01-01..2024-01-31", w.CreatedQualifier())
	})

	t.Run("key is start date", func(t *testing.T) {
		assert.Equal(t, "2024-01-01", w.Key())
	})

	t.Run("last day", func(t *testing.T) {
		assert.Equal(t, date(2024, time.January, 31), w.LastDay())
	})
}

func TestTruncateDay(t *testing.T) {
	in := time.Date(2024, time.March, 3, 17, 45, 12, 99, time.FixedZone("X", 2*3600))

	assert.Equal(t, date(2024, time.March, 3), TruncateDay(in))
}
