// Package sqlite persists the run history in an SQLite database using the
// pure-Go modernc.org/sqlite driver.
//
// The schema is created from the embedded migrations on open. Only finished
// runs are recorded; the history is a ledger and is never used to resume a
// harvest.
package sqlite
