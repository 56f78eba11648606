// Package checkpoint seals simulation snapshots into hashed checkpoints and
// provides an in-memory implementation of the combat storage contracts.
package checkpoint
