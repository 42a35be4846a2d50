package driven

import (
	"context"

	"github.com/custodia-labs/ghmine/internal/core/domain"
)

// HarvestWriter persists a finished harvest.
// Write is called exactly once per run and replaces any previous document.
type HarvestWriter interface {
	Write(ctx context.Context, out domain.OutputSpec, h *domain.Harvest) error
}
