// Package domain defines the core business entities for ghmine.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Window: a one-calendar-month slice of the harvest range
//   - SearchQuery: the parameters of one repository-search request
//   - SearchPage: one page of results returned by the search source
//   - RepoRecord: the flattened metadata extracted from a search hit
//   - Harvest: the ordered accumulator produced by one run
//   - Run: a history entry describing a finished harvest
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
