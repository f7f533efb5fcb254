// Package phasedeuce maintains a per-day append-only log of synthetic
// customer identities, each record self-validated by an Adler-32 checksum.
package phasedeuce

// Storage Backend Comparison
//
// This package provides two storage backends for the daily log:
//
// 1. CSV File Storage (file_store.go) - DEFAULT
//    - One plain CSV file per calendar day
//    - Rows readable by any spreadsheet or text tool
//    - Handles opened and closed per operation
//    - Best for: the classic workflow, auditing files by hand
//
// 2. SQLite Storage (sqlite_store.go) - ALTERNATIVE
//    - One database holding every day's rows, keyed by log_date
//    - WAL mode, ACID transactions
//    - SQL queries for flexible access across days
//    - Best for: applications already using SQLite, cross-day queries
//
// Usage Examples:
//
// === CSV File Storage (Default) ===
//
//   store, err := phasedeuce.OpenFileStore(".", phasedeuce.Config{})
//   if err != nil {
//       log.Fatal(err)
//   }
//   defer store.Close()
//
//   source := phasedeuce.NewPersonSource(rand.New(rand.NewSource(seed)))
//   outcome := store.Append(source) // writes one row, then re-validates the file
//
//
// === SQLite Storage (Alternative) ===
//
//   store, err := phasedeuce.OpenSQLiteStore("file:phase-deuce.db", phasedeuce.Config{})
//   if err != nil {
//       log.Fatal(err)
//   }
//   defer store.Close()
//
//   outcome := store.Append(source) // same API
//
//
// Both backends return the same Outcome taxonomy: corruption found during
// the post-append validation pass surfaces as a warning on the configured
// console (the write still counts), while permission and I/O failures
// surface as hard errors. The stored representation is text in both cases,
// so a checksum always re-verifies over exactly the bytes that were
// persisted, never over a re-formatted value.
