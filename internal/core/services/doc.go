// Package services implements the driving port interfaces.
// Services hold the harvest logic (window partitioning, the monthly
// paginated collector, token resolution and run bookkeeping) and
// orchestrate calls to driven ports.
//
// Services depend only on ports, never on adapters.
package services
