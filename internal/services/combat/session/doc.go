// Package session runs live combat sessions on top of the disposition
// simulation.
//
// Every intent a player or the enemy driver submits is applied to the
// session's simulation and journaled with its acceptance. Checkpoints are
// sealed at session start, every N intents, when a duel ends, and on demand.
// Sessions evicted from memory, or lost to a restart, are rebuilt lazily from
// storage through the replay package.
package session
