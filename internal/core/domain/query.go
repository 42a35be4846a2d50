package domain

import "strings"

// Search limits imposed by the GitHub search API.
const (
	// MaxReposPerMonth is the largest per-window target accepted by the collector.
	MaxReposPerMonth = 100

	// MaxPerPage is the largest page size the search endpoint returns.
	MaxPerPage = 100

	// MaxPages is the hard page ceiling per window.
	MaxPages = 10
)

// Sort keys and orders understood by the repository search.
const (
	SortStars = "stars"
	OrderDesc = "desc"
)

// SearchQuery holds the parameters of one repository-search request.
// Everything except Page is fixed for a window.
type SearchQuery struct {
	Query   string
	Sort    string
	Order   string
	PerPage int
	Page    int

	// Token authenticates the request. Empty defers to the searcher's own
	// token provider.
	Token string
}

// BuildQuery assembles the free-text query for a language and window.
// Extra qualifiers (e.g. "size:<10000") are appended verbatim.
func BuildQuery(language string, w Window, qualifiers ...string) string {
	parts := []string{"language:" + strings.ToLower(strings.TrimSpace(language)), w.CreatedQualifier()}
	for _, q := range qualifiers {
		if q = strings.TrimSpace(q); q != "" {
			parts = append(parts, q)
		}
	}
	return strings.Join(parts, " ")
}

// SearchPage is one page of search results.
type SearchPage struct {
	// TotalCount is the number of matches reported by the source for the query.
	TotalCount int

	// Incomplete is set when the source timed out and returned partial results.
	Incomplete bool

	// Items are the extracted records in source order.
	Items []RepoRecord
}
