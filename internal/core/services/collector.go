package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/ghmine/internal/core/domain"
	"github.com/custodia-labs/ghmine/internal/core/ports/driven"
	"github.com/custodia-labs/ghmine/internal/core/ports/driving"
	"github.com/custodia-labs/ghmine/internal/logger"
)

// Ensure Collector implements the interface.
var _ driving.Collector = (*Collector)(nil)

const (
	// DefaultRateLimitWait is used when a rate-limit response carries no reset hint.
	DefaultRateLimitWait = 60 * time.Second

	// MinRateLimitWait is the floor for reset-derived waits.
	MinRateLimitWait = time.Second
)

// Collector runs the monthly paginated collection against a RepoSearcher.
type Collector struct {
	searcher driven.RepoSearcher
	tokens   driven.TokenProvider
	sleeper  driven.Sleeper
	clock    driven.Clock
}

// CollectorOption configures a Collector.
type CollectorOption func(*Collector)

// WithSleeper replaces the rate-limit sleeper.
func WithSleeper(s driven.Sleeper) CollectorOption {
	return func(c *Collector) { c.sleeper = s }
}

// WithClock replaces the clock used for timestamps and reset arithmetic.
func WithClock(clock driven.Clock) CollectorOption {
	return func(c *Collector) { c.clock = clock }
}

// NewCollector creates a collector over searcher.
// tokens may be nil when every request carries an explicit token.
func NewCollector(searcher driven.RepoSearcher, tokens driven.TokenProvider, opts ...CollectorOption) *Collector {
	c := &Collector{
		searcher: searcher,
		tokens:   tokens,
		sleeper:  TimerSleeper{},
		clock:    SystemClock{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect partitions the request range into monthly windows and gathers up to
// ReposPerMonth star-sorted records from each, in window order.
//
// Configuration problems fail before any request is made. Rate limits are
// waited out and the same page retried. Any other page failure ends its window
// with a warning. Only context cancellation or a rejected credential aborts
// the whole collection.
func (c *Collector) Collect(ctx context.Context, req domain.HarvestRequest) (*domain.Harvest, error) {
	req, err := NormalizeRequest(req)
	if err != nil {
		return nil, err
	}

	token, err := ResolveToken(ctx, req.Token, c.tokens)
	if err != nil {
		return nil, err
	}

	windows, err := MonthlyWindows(req.Start, req.End, req.TrailingWindow)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return nil, domain.NewConfigurationError("ending_date",
			"range is shorter than one month and the trailing window is disabled")
	}

	harvest := &domain.Harvest{
		Request:   req,
		Windows:   make([]domain.WindowResult, 0, len(windows)),
		StartedAt: c.clock.Now(),
	}

	logger.Section("Collect")
	logger.Debug("language=%s range=%s..%s windows=%d per_month=%d",
		req.Language, req.Start.Format(domain.DateLayout), req.End.Format(domain.DateLayout),
		len(windows), req.ReposPerMonth)

	for _, w := range windows {
		result, err := c.collectWindow(ctx, req, token, w, harvest)
		if err != nil {
			return nil, err
		}
		harvest.Windows = append(harvest.Windows, result)
		logger.Info("%s: %d repositories (%d pages)", w, len(result.Records), result.Pages)
	}

	harvest.FinishedAt = c.clock.Now()
	return harvest, nil
}

// collectWindow fetches pages for one window until the target is reached, a
// page comes back empty, or the page ceiling is hit.
// It returns an error only when ctx is done or the credential is rejected.
func (c *Collector) collectWindow(
	ctx context.Context,
	req domain.HarvestRequest,
	token string,
	w domain.Window,
	harvest *domain.Harvest,
) (domain.WindowResult, error) {
	result := domain.WindowResult{
		Window:  w,
		Records: make([]domain.RepoRecord, 0, req.ReposPerMonth),
	}

	q := domain.SearchQuery{
		Query:   domain.BuildQuery(req.Language, w, req.Qualifiers...),
		Sort:    domain.SortStars,
		Order:   domain.OrderDesc,
		PerPage: req.PageSize,
		Page:    1,
		Token:   token,
	}
	logger.Debug("window %s query %q", w, q.Query)

	for q.Page <= domain.MaxPages && len(result.Records) < req.ReposPerMonth {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		page, err := c.searcher.SearchRepositories(ctx, q)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return result, ctxErr
			}

			var rlErr *domain.RateLimitError
			if errors.As(err, &rlErr) {
				wait := c.rateLimitWait(rlErr)
				logger.Warn("rate limited on %s page %d, sleeping %s", w, q.Page, wait)
				if err := c.sleeper.Sleep(ctx, wait); err != nil {
					return result, err
				}
				continue
			}

			if errors.Is(err, domain.ErrUnauthorized) {
				return result, fmt.Errorf("%s: %w", w, err)
			}

			result.Failed = true
			if errors.Is(err, domain.ErrMalformedPage) {
				harvest.Warn("%s page %d: malformed response, window ended", w, q.Page)
			} else {
				harvest.Warn("%s page %d: %v", w, q.Page, err)
			}
			logger.Warn("%s page %d failed, moving to next window: %v", w, q.Page, err)
			return result, nil
		}

		result.Pages++
		if q.Page == 1 {
			result.TotalCount = page.TotalCount
		}
		if page.Incomplete {
			logger.Debug("%s page %d: search reported incomplete results", w, q.Page)
		}

		if len(page.Items) == 0 {
			break
		}

		for _, item := range page.Items {
			if len(result.Records) >= req.ReposPerMonth {
				break
			}
			result.Records = append(result.Records, item)
		}
		q.Page++
	}

	return result, nil
}

// rateLimitWait returns how long to sleep before retrying a throttled page.
func (c *Collector) rateLimitWait(err *domain.RateLimitError) time.Duration {
	if err.ResetAt.IsZero() {
		return DefaultRateLimitWait
	}
	wait := err.ResetAt.Sub(c.clock.Now())
	if wait < MinRateLimitWait {
		return MinRateLimitWait
	}
	return wait
}

// NormalizeRequest validates req and fills defaults (page size, date truncation).
func NormalizeRequest(req domain.HarvestRequest) (domain.HarvestRequest, error) {
	req.Language = strings.TrimSpace(req.Language)
	if req.Language == "" {
		return req, domain.NewConfigurationError("language", "must not be empty")
	}
	if strings.ContainsAny(req.Language, " \t\n") {
		return req, domain.NewConfigurationError("language", "must be a single word")
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return req, domain.NewConfigurationError("starting_date", "start and end dates are required")
	}
	req.Start = domain.TruncateDay(req.Start)
	req.End = domain.TruncateDay(req.End)
	if !req.Start.Before(req.End) {
		return req, domain.NewConfigurationError("starting_date", fmt.Sprintf(
			"%s must be before ending date %s",
			req.Start.Format(domain.DateLayout), req.End.Format(domain.DateLayout)))
	}

	if req.ReposPerMonth < 1 || req.ReposPerMonth > domain.MaxReposPerMonth {
		return req, domain.NewConfigurationError("repos_per_month",
			fmt.Sprintf("must be between 1 and %d, got %d", domain.MaxReposPerMonth, req.ReposPerMonth))
	}

	if req.PageSize == 0 {
		req.PageSize = domain.MaxPerPage
	}
	if req.PageSize < 1 || req.PageSize > domain.MaxPerPage {
		return req, domain.NewConfigurationError("page_size",
			fmt.Sprintf("must be between 1 and %d, got %d", domain.MaxPerPage, req.PageSize))
	}

	return req, nil
}
