// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - RepoSearcher: Fetches one page of repository search results
//   - TokenProvider: Resolves the API credential
//   - HarvestWriter: Persists the finished harvest as one document
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunStore: Harvest history. Without it, runs are not recorded.
//   - Sleeper: Suspends the collector. Defaults to a context-aware timer.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
