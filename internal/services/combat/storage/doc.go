// Package storage defines persistence contracts for combat sessions.
//
// A session is stored as its identity record, an append-only journal of
// player and enemy intents, and periodic checkpoints holding encoded
// simulation snapshots. Resuming a session restores the newest checkpoint
// whose hash verifies and replays the journal entries written after it.
//
// Implementations live in subpackages: sqlite for durable storage and the
// checkpoint package for an in-memory store used by tests and ephemeral
// deployments.
//
// Common error types:
//   - ErrNotFound: requested record is missing
//   - ErrSessionExists: a session with the same id was already stored
package storage
