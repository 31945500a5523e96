// Package sqlite provides the SQLite-backed HistoryStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// One table, user_history, holds a row per phone number with two parallel
// newline-joined logs (query and response). The schema is managed through
// versioned migrations stored in the migrations/ directory. Each migration is
// a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.docquery/data/history.db
//
// # Thread Safety
//
// All operations are safe for concurrent use. Each operation runs in its own
// transaction; appends to one record are atomic under SQLite's locking in WAL mode.
package sqlite
