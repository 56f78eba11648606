// Package grpc exposes combat sessions through the duskmarch.combat.v1
// CombatService.
//
// State snapshots, intents, and enemy turns cross the wire in their
// canonical JSON form inside bytes fields.
package grpc
