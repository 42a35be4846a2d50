package driving

import (
	"context"

	"github.com/custodia-labs/ghmine/internal/core/domain"
)

// Collector gathers repository records window by window.
type Collector interface {
	// Collect runs the monthly paginated collection and returns the harvest.
	// Configuration problems are reported before any network call.
	Collect(ctx context.Context, req domain.HarvestRequest) (*domain.Harvest, error)
}

// HarvestService runs complete harvests and exposes their history.
type HarvestService interface {
	// Run collects, writes the harvest once, and records it in history.
	Run(ctx context.Context, req domain.HarvestRequest) (*domain.Harvest, error)

	// History lists up to limit past runs, newest first.
	History(ctx context.Context, limit int) ([]domain.Run, error)

	// Get returns the run whose ID is id or starts with id.
	// Returns domain.ErrNotFound when nothing matches.
	Get(ctx context.Context, id string) (*domain.Run, error)
}
