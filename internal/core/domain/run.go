package domain

import "time"

// Run is the history entry of a finished harvest.
type Run struct {
	ID            string
	Language      string
	Start         time.Time
	End           time.Time
	ReposPerMonth int
	Windows       int
	Records       int
	Warnings      int
	OutputPath    string
	Format        OutputFormat
	StartedAt     time.Time
	FinishedAt    time.Time
}

// NewRun summarises a harvest as a history entry.
func NewRun(h *Harvest) Run {
	return Run{
		ID:            h.RunID,
		Language:      h.Request.Language,
		Start:         h.Request.Start,
		End:           h.Request.End,
		ReposPerMonth: h.Request.ReposPerMonth,
		Windows:       len(h.Windows),
		Records:       h.RecordCount(),
		Warnings:      len(h.Warnings),
		OutputPath:    h.Request.Output.Path,
		Format:        h.Request.Output.Format,
		StartedAt:     h.StartedAt,
		FinishedAt:    h.FinishedAt,
	}
}

// Duration returns how long the run took.
func (r Run) Duration() time.Duration {
	if r.FinishedAt.Before(r.StartedAt) {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
