package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/ghmine/internal/core/domain"
	"github.com/custodia-labs/ghmine/internal/core/ports/driven"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Client wraps the go-github client with rate limiting and error mapping.
type Client struct {
	mu            sync.Mutex
	gh            *gh.Client
	byToken       map[string]*gh.Client
	tokenProvider driven.TokenProvider
	rateLimiter   *RateLimiter
	cfg           Config
	httpClient    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the base HTTP client. The token transport wraps its Transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimiter replaces the default rate limiter.
func WithRateLimiter(rl *RateLimiter) Option {
	return func(c *Client) { c.rateLimiter = rl }
}

// NewClient creates a GitHub API client that pulls its token from tokenProvider.
func NewClient(tokenProvider driven.TokenProvider, cfg Config, opts ...Option) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	c := &Client{
		tokenProvider: tokenProvider,
		cfg:           cfg,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rateLimiter == nil {
		c.rateLimiter = NewRateLimiter(cfg.RequestsPerSecond)
	}
	return c
}

// clientFor returns the go-github client for token. An empty token selects
// the provider-backed client, built lazily so the provider is read when first
// needed. Explicit tokens get their own cached client.
func (c *Client) clientFor(ctx context.Context, token string) (*gh.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token != "" {
		if client, ok := c.byToken[token]; ok {
			return client, nil
		}
		client, err := c.newGitHubClient(ctx, token)
		if err != nil {
			return nil, err
		}
		if c.byToken == nil {
			c.byToken = make(map[string]*gh.Client)
		}
		c.byToken[token] = client
		return client, nil
	}

	if c.gh != nil {
		return c.gh, nil
	}

	if c.tokenProvider != nil {
		t, err := c.tokenProvider.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("get token: %w", err)
		}
		token = t
	}

	client, err := c.newGitHubClient(ctx, token)
	if err != nil {
		return nil, err
	}
	c.gh = client
	return client, nil
}

// newGitHubClient builds a go-github client authenticated with token, or
// anonymous when token is empty.
func (c *Client) newGitHubClient(ctx context.Context, token string) (*gh.Client, error) {
	base := c.httpClient
	if base == nil {
		base = &http.Client{}
	}

	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		// oauth2 builds on the client stored in the context
		hc = oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, base), ts)
	} else {
		hc = &http.Client{Transport: base.Transport}
	}
	hc.Timeout = c.cfg.Timeout

	client := gh.NewClient(hc)
	if c.cfg.BaseURL != "" {
		u, err := parseBaseURL(c.cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		client.BaseURL = u
	}
	return client, nil
}

// parseBaseURL parses an API root, forcing the trailing slash go-github requires.
func parseBaseURL(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, raw)
	}
	return u, nil
}

// SearchRepositories runs one repository search request. A non-empty token
// overrides the token provider for this request.
func (c *Client) SearchRepositories(
	ctx context.Context,
	token string,
	query string,
	opts *gh.SearchOptions,
) (*gh.RepositoriesSearchResult, error) {
	client, err := c.clientFor(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	result, resp, err := client.Search.Repositories(ctx, query, opts)
	c.updateRateLimitFromResponse(resp)
	if err != nil {
		return nil, c.wrapError(err, "search repositories")
	}
	return result, nil
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// updateRateLimitFromResponse updates the rate limiter from GitHub response headers.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to domain and connector error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	// Context errors pass through untouched so callers can abort.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &domain.RateLimitError{
			ResetAt:   rateLimitErr.Rate.Reset.Time,
			Remaining: rateLimitErr.Rate.Remaining,
			Limit:     rateLimitErr.Rate.Limit,
		}
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		rlErr := &domain.RateLimitError{Secondary: true}
		if abuseErr.RetryAfter != nil {
			rlErr.ResetAt = c.rateLimiter.now().Add(*abuseErr.RetryAfter)
		}
		return rlErr
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		if rlErr := c.rateLimiter.CheckRateLimit(ghErr.Response); rlErr != nil {
			return rlErr
		}
		apiErr := &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
		}
		if ghErr.Response.Request != nil && ghErr.Response.Request.URL != nil {
			apiErr.URL = ghErr.Response.Request.URL.String()
		}
		return apiErr
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%s: %w: %v", operation, domain.ErrMalformedPage, err)
	}

	return fmt.Errorf("%s: %w", operation, err)
}
