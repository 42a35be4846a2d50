package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/ghmine/internal/core/domain"
	"github.com/custodia-labs/ghmine/internal/core/ports/driven"
)

// --- Test doubles shared by the services tests ---

var (
	_ driven.Clock         = (*fakeClock)(nil)
	_ driven.Sleeper       = (*fakeSleeper)(nil)
	_ driven.TokenProvider = (*stubTokens)(nil)
	_ driven.RepoSearcher  = (*scriptedSearcher)(nil)
	_ driven.HarvestWriter = (*recordingWriter)(nil)
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// repo builds a record with a full name and star count.
func repo(fullName string, stars int) domain.RepoRecord {
	return domain.RepoRecord{FullName: &fullName, StargazersCount: &stars}
}

func names(records []domain.RepoRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.DisplayName())
	}
	return out
}

// fakeClock returns a fixed time that the sleeper advances.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeSleeper records requested sleeps instead of blocking.
type fakeSleeper struct {
	mu    sync.Mutex
	clock *fakeClock
	slept []time.Duration
	// onSleep runs before returning, e.g. to cancel a context.
	onSleep func()
}

func (s *fakeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	s.slept = append(s.slept, d)
	s.mu.Unlock()

	if s.clock != nil {
		s.clock.advance(d)
	}
	if s.onSleep != nil {
		s.onSleep()
	}
	return ctx.Err()
}

func (s *fakeSleeper) durations() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.slept...)
}

// stubTokens is a fixed TokenProvider.
type stubTokens struct {
	token string
	err   error
}

func (p *stubTokens) GetToken(_ context.Context) (string, error) { return p.token, p.err }
func (p *stubTokens) AuthMethod() domain.AuthMethod             { return domain.AuthMethodPAT }
func (p *stubTokens) IsAuthenticated() bool                     { return p.token != "" }

// scriptedSearcher answers each request through respond and records the queries.
type scriptedSearcher struct {
	mu      sync.Mutex
	calls   []domain.SearchQuery
	respond func(q domain.SearchQuery, call int) (*domain.SearchPage, error)
}

func (s *scriptedSearcher) SearchRepositories(_ context.Context, q domain.SearchQuery) (*domain.SearchPage, error) {
	s.mu.Lock()
	s.calls = append(s.calls, q)
	call := len(s.calls)
	s.mu.Unlock()
	return s.respond(q, call)
}

func (s *scriptedSearcher) queries() []domain.SearchQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.SearchQuery(nil), s.calls...)
}

// starSource serves per-window result lists, keyed by the created: qualifier
// of the window, already sorted by stars, paged by PerPage.
func starSource(byWindow map[string][]domain.RepoRecord) func(domain.SearchQuery, int) (*domain.SearchPage, error) {
	return func(q domain.SearchQuery, _ int) (*domain.SearchPage, error) {
		var items []domain.RepoRecord
		for key, records := range byWindow {
			if strings.Contains(q.Query, key) {
				items = records
				break
			}
		}

		lo := (q.Page - 1) * q.PerPage
		hi := lo + q.PerPage
		if lo > len(items) {
			lo = len(items)
		}
		if hi > len(items) {
			hi = len(items)
		}
		return &domain.SearchPage{
			TotalCount: len(items),
			Items:      append([]domain.RepoRecord(nil), items[lo:hi]...),
		}, nil
	}
}

// endlessSource returns full pages forever.
func endlessSource(q domain.SearchQuery, _ int) (*domain.SearchPage, error) {
	items := make([]domain.RepoRecord, 0, q.PerPage)
	for i := 0; i < q.PerPage; i++ {
		items = append(items, repo(fmt.Sprintf("p%d/r%d", q.Page, i), 1000-q.Page*q.PerPage-i))
	}
	return &domain.SearchPage{TotalCount: 5000, Items: items}, nil
}

// recordingWriter captures every Write call.
type recordingWriter struct {
	mu       sync.Mutex
	calls    int
	lastSpec domain.OutputSpec
	last     *domain.Harvest
	err      error
}

func (w *recordingWriter) Write(_ context.Context, out domain.OutputSpec, h *domain.Harvest) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	w.lastSpec = out
	w.last = h
	return w.err
}

// failingRunStore rejects every save.
type failingRunStore struct {
	err error
}

func (s *failingRunStore) Save(context.Context, domain.Run) error { return s.err }
func (s *failingRunStore) Get(context.Context, string) (*domain.Run, error) {
	return nil, domain.ErrNotFound
}
func (s *failingRunStore) List(context.Context, int) ([]domain.Run, error) { return nil, s.err }
