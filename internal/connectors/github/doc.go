// Package github implements the repository search source backed by the
// GitHub REST API.
//
// # Components
//
//   - Client: go-github client built lazily from a [driven.TokenProvider]
//     or a per-query token,
//     wrapped in an oauth2 static token transport
//   - RateLimiter: proactive token bucket plus quota tracking from headers
//   - Searcher: the [driven.RepoSearcher] adapter issuing one request per call
//   - ExtractRecord: flattens a search hit into a [domain.RepoRecord]
//
// # Rate Limiting
//
// The authenticated search quota is 30 requests per minute. The client
// throttles proactively at 0.5 requests per second and records the
// X-RateLimit-* headers of every response. Throttled responses (429, or 403
// with the quota exhausted or a Retry-After hint, and go-github's own
// rate-limit errors) are returned as [domain.RateLimitError] carrying the
// reset time. The connector never retries; waiting is the collector's job.
//
// # Errors
//
//   - Rate limits: [domain.RateLimitError]
//   - 401 responses: [APIError] matching domain.ErrUnauthorized
//   - Other non-2xx responses: [APIError]
//   - Undecodable bodies: wrap [domain.ErrMalformedPage]
//   - Context cancellation: returned unchanged
package github
