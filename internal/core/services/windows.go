package services

import (
	"time"

	"github.com/custodia-labs/ghmine/internal/core/domain"
)

// MonthlyWindows partitions [start, end) into consecutive calendar-month windows.
//
// Window i spans AddMonths(start, i) to AddMonths(start, i+1), so day clamping
// never drifts (Jan 31, Feb 29, Mar 31). The final window ends exactly at end
// when trailing is set; otherwise a final window shorter than a month is dropped.
func MonthlyWindows(start, end time.Time, trailing bool) ([]domain.Window, error) {
	start = domain.TruncateDay(start)
	end = domain.TruncateDay(end)

	if !start.Before(end) {
		return nil, domain.NewConfigurationError("starting_date",
			"must be before ending date "+end.Format(domain.DateLayout))
	}

	var windows []domain.Window
	for i := 0; ; i++ {
		ws := domain.AddMonths(start, i)
		if !ws.Before(end) {
			break
		}

		we := domain.AddMonths(start, i+1)
		if we.After(end) {
			if trailing {
				windows = append(windows, domain.Window{Start: ws, End: end})
			}
			break
		}
		windows = append(windows, domain.Window{Start: ws, End: we})
	}

	return windows, nil
}
