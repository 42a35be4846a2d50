package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/ghmine/internal/core/domain"
	"github.com/custodia-labs/ghmine/internal/core/ports/driven"
	"github.com/custodia-labs/ghmine/internal/core/ports/driving"
	"github.com/custodia-labs/ghmine/internal/logger"
)

// Ensure Harvester implements the interface.
var _ driving.HarvestService = (*Harvester)(nil)

// Harvester runs a collection, persists it once, and records it in history.
type Harvester struct {
	collector driving.Collector
	writer    driven.HarvestWriter
	runs      driven.RunStore
	newID     func() string
}

// NewHarvester creates a harvester. runs may be nil to disable history.
func NewHarvester(collector driving.Collector, writer driven.HarvestWriter, runs driven.RunStore) *Harvester {
	return &Harvester{
		collector: collector,
		writer:    writer,
		runs:      runs,
		newID:     uuid.NewString,
	}
}

// Run collects req, writes the harvest exactly once and saves a history entry.
// A cancelled collection writes nothing. History failures are logged only.
func (h *Harvester) Run(ctx context.Context, req domain.HarvestRequest) (*domain.Harvest, error) {
	out, err := normalizeOutput(req.Output)
	if err != nil {
		return nil, err
	}
	req.Output = out

	harvest, err := h.collector.Collect(ctx, req)
	if err != nil {
		return nil, err
	}
	harvest.RunID = h.newID()

	if err := h.writer.Write(ctx, out, harvest); err != nil {
		return harvest, fmt.Errorf("write harvest: %w", err)
	}
	logger.Info("Wrote %d repositories to %s (%s)", harvest.RecordCount(), out.Path, out.Format)

	if h.runs != nil {
		if err := h.runs.Save(ctx, domain.NewRun(harvest)); err != nil {
			logger.Warn("failed to record run %s: %v", harvest.RunID, err)
		}
	}

	return harvest, nil
}

// History lists up to limit past runs, newest first.
func (h *Harvester) History(ctx context.Context, limit int) ([]domain.Run, error) {
	if h.runs == nil {
		return []domain.Run{}, nil
	}
	runs, err := h.runs.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// Get returns the run with the given ID. A unique ID prefix, as shown by the
// history table, is accepted too.
func (h *Harvester) Get(ctx context.Context, id string) (*domain.Run, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: run id is required", domain.ErrInvalidInput)
	}
	if h.runs == nil {
		return nil, fmt.Errorf("run %s: %w", id, domain.ErrNotFound)
	}

	run, err := h.runs.Get(ctx, id)
	if err == nil {
		return run, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get run: %w", err)
	}

	runs, err := h.runs.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	var matches []domain.Run
	for _, r := range runs {
		if strings.HasPrefix(r.ID, id) {
			matches = append(matches, r)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("run %s: %w", id, domain.ErrNotFound)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("%w: run id %q matches %d runs", domain.ErrInvalidInput, id, len(matches))
	}
}

func normalizeOutput(out domain.OutputSpec) (domain.OutputSpec, error) {
	out.Path = strings.TrimSpace(out.Path)
	if out.Path == "" {
		return out, domain.NewConfigurationError("output", "path is required")
	}

	format, err := domain.ParseOutputFormat(string(out.Format))
	if err != nil {
		return out, domain.NewConfigurationError("format", err.Error())
	}
	out.Format = format
	return out, nil
}
