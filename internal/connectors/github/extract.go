package github

import (
	"time"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/ghmine/internal/core/domain"
)

// ExtractRecord flattens a search hit into a RepoRecord.
// Fields absent from the payload stay nil.
func ExtractRecord(repo *gh.Repository) domain.RepoRecord {
	rec := domain.RepoRecord{
		ID:            repo.ID,
		Name:          repo.Name,
		FullName:      repo.FullName,
		HTMLURL:       repo.HTMLURL,
		Description:   repo.Description,
		Homepage:      repo.Homepage,
		Language:      repo.Language,
		DefaultBranch: repo.DefaultBranch,
		CreatedAt:     timestamp(repo.CreatedAt),
		UpdatedAt:     timestamp(repo.UpdatedAt),
		PushedAt:      timestamp(repo.PushedAt),

		Size:            repo.Size,
		StargazersCount: repo.StargazersCount,
		WatchersCount:   repo.WatchersCount,
		ForksCount:      repo.ForksCount,
		OpenIssuesCount: repo.OpenIssuesCount,

		Topics: repo.Topics,

		Visibility:     repo.Visibility,
		Private:        repo.Private,
		Fork:           repo.Fork,
		Archived:       repo.Archived,
		Disabled:       repo.Disabled,
		IsTemplate:     repo.IsTemplate,
		HasIssues:      repo.HasIssues,
		HasProjects:    repo.HasProjects,
		HasWiki:        repo.HasWiki,
		HasPages:       repo.HasPages,
		HasDownloads:   repo.HasDownloads,
		HasDiscussions: repo.HasDiscussions,
	}

	if repo.License != nil {
		rec.License = repo.License.Key
	}
	if repo.Owner != nil {
		rec.OwnerLogin = repo.Owner.Login
		rec.OwnerType = repo.Owner.Type
	}

	return rec
}

func timestamp(ts *gh.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.UTC()
	return &t
}
