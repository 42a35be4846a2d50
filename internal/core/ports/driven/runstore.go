package driven

import (
	"context"

	"github.com/custodia-labs/ghmine/internal/core/domain"
)

// RunStore persists the history of finished harvests.
type RunStore interface {
	// Save stores a run. Saving an existing ID replaces it.
	Save(ctx context.Context, run domain.Run) error

	// Get retrieves a run by ID.
	// Returns domain.ErrNotFound if the run does not exist.
	Get(ctx context.Context, id string) (*domain.Run, error)

	// List returns up to limit runs, newest first. limit <= 0 returns all.
	List(ctx context.Context, limit int) ([]domain.Run, error)
}
