package domain

import "time"

// RepoRecord is the flattened metadata of one repository search hit.
// Every field is optional on the source side and encodes as JSON null when absent.
type RepoRecord struct {
	ID            *int64     `json:"id"`
	Name          *string    `json:"name"`
	FullName      *string    `json:"full_name"`
	HTMLURL       *string    `json:"html_url"`
	Description   *string    `json:"description"`
	Homepage      *string    `json:"homepage"`
	Language      *string    `json:"language"`
	DefaultBranch *string    `json:"default_branch"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
	PushedAt      *time.Time `json:"pushed_at"`

	Size            *int `json:"size"`
	StargazersCount *int `json:"stargazers_count"`
	WatchersCount   *int `json:"watchers_count"`
	ForksCount      *int `json:"forks_count"`
	OpenIssuesCount *int `json:"open_issues_count"`

	Topics     []string `json:"topics"`
	License    *string  `json:"license"`
	OwnerLogin *string  `json:"owner_login"`
	OwnerType  *string  `json:"owner_type"`

	Visibility     *string `json:"visibility"`
	Private        *bool   `json:"private"`
	Fork           *bool   `json:"fork"`
	Archived       *bool   `json:"archived"`
	Disabled       *bool   `json:"disabled"`
	IsTemplate     *bool   `json:"is_template"`
	HasIssues      *bool   `json:"has_issues"`
	HasProjects    *bool   `json:"has_projects"`
	HasWiki        *bool   `json:"has_wiki"`
	HasPages       *bool   `json:"has_pages"`
	HasDownloads   *bool   `json:"has_downloads"`
	HasDiscussions *bool   `json:"has_discussions"`
}

// DisplayName returns the full name, falling back to the short name.
func (r RepoRecord) DisplayName() string {
	switch {
	case r.FullName != nil:
		return *r.FullName
	case r.Name != nil:
		return *r.Name
	default:
		return "<unnamed>"
	}
}
