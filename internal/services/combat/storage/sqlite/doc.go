// Package sqlite implements the combat storage contracts on SQLite.
//
// Sessions, checkpoints, and the intent journal share one database file. The
// schema is applied from embedded migrations when the store opens.
package sqlite
