// Package disposition contains the pure combat model for disposition duels.
//
// A duel moves a single signed track, the enemy's disposition, between
// -100 (destroyed) and +100 (subjugated). The package provides:
//
//   - Effective power calculation (streaks, threat, switch penalties, caps)
//   - The affinity matrix for starting disposition
//   - Per-enemy vulnerability modifiers
//   - Fate keyword interpretation
//   - Enemy mode selection and enemy action resolution
//   - The Simulation aggregate with its player action API
//   - Snapshot capture, restore, and the versioned save encoding
//
// Everything here is synchronous and deterministic: the only randomness comes
// from the rng.Source owned by each Simulation.
package disposition
