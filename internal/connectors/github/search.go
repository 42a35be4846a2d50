package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/ghmine/internal/core/domain"
	"github.com/custodia-labs/ghmine/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.RepoSearcher = (*Searcher)(nil)

// Searcher adapts Client to the driven.RepoSearcher port.
type Searcher struct {
	client *Client
}

// NewSearcher creates a Searcher over client.
func NewSearcher(client *Client) *Searcher {
	return &Searcher{client: client}
}

// SearchRepositories fetches one page of repository search results.
func (s *Searcher) SearchRepositories(ctx context.Context, q domain.SearchQuery) (*domain.SearchPage, error) {
	opts := &gh.SearchOptions{
		Sort:  q.Sort,
		Order: q.Order,
		ListOptions: gh.ListOptions{
			Page:    q.Page,
			PerPage: q.PerPage,
		},
	}

	result, err := s.client.SearchRepositories(ctx, q.Token, q.Query, opts)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return &domain.SearchPage{}, nil
	}

	page := &domain.SearchPage{
		TotalCount: result.GetTotal(),
		Incomplete: result.GetIncompleteResults(),
		Items:      make([]domain.RepoRecord, 0, len(result.Repositories)),
	}
	for _, repo := range result.Repositories {
		if repo == nil {
			continue
		}
		page.Items = append(page.Items, ExtractRecord(repo))
	}
	return page, nil
}
