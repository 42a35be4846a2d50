package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/ghmine/internal/core/domain"
	"github.com/custodia-labs/ghmine/internal/core/ports/driven"
)

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

const runColumns = `id, language, range_start, range_end, repos_per_month, windows,
	records, warnings, output_path, format, started_at, finished_at`

// Save stores or replaces a run.
func (s *runStore) Save(ctx context.Context, run domain.Run) error {
	if run.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO runs (`+runColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			language = excluded.language,
			range_start = excluded.range_start,
			range_end = excluded.range_end,
			repos_per_month = excluded.repos_per_month,
			windows = excluded.windows,
			records = excluded.records,
			warnings = excluded.warnings,
			output_path = excluded.output_path,
			format = excluded.format,
			started_at = excluded.started_at,
			finished_at = excluded.finished_at
	`, run.ID, run.Language,
		run.Start.Format(domain.DateLayout), run.End.Format(domain.DateLayout),
		run.ReposPerMonth, run.Windows, run.Records, run.Warnings,
		nullString(run.OutputPath), string(run.Format),
		run.StartedAt.UTC().Format(time.RFC3339), formatNullableTime(run.FinishedAt))
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// Get retrieves a run by ID.
func (s *runStore) Get(ctx context.Context, id string) (*domain.Run, error) {
	row := s.store.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// List returns up to limit runs, newest first. limit <= 0 returns all.
func (s *runStore) List(ctx context.Context, limit int) ([]domain.Run, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+runColumns+`
		FROM runs
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	runs := []domain.Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.Run, error) {
	var run domain.Run
	var rangeStart, rangeEnd, format, startedAt string
	var outputPath, finishedAt sql.NullString

	if err := row.Scan(&run.ID, &run.Language, &rangeStart, &rangeEnd,
		&run.ReposPerMonth, &run.Windows, &run.Records, &run.Warnings,
		&outputPath, &format, &startedAt, &finishedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	var err error
	if run.Start, err = domain.ParseDate(rangeStart); err != nil {
		return nil, fmt.Errorf("scanning run %s: %w", run.ID, err)
	}
	if run.End, err = domain.ParseDate(rangeEnd); err != nil {
		return nil, fmt.Errorf("scanning run %s: %w", run.ID, err)
	}
	run.StartedAt = parseNullableTime(sql.NullString{String: startedAt, Valid: true})
	run.FinishedAt = parseNullableTime(finishedAt)
	run.OutputPath = outputPath.String
	run.Format = domain.OutputFormat(format)

	return &run, nil
}
