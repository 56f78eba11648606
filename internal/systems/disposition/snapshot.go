package disposition

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/louisbranch/duskmarch/internal/core/rng"
)

// SnapshotSchemaVersion is the current save schema.
const SnapshotSchemaVersion = 1

var (
	// ErrSnapshotCorrupt indicates a payload that is not a well-formed snapshot.
	ErrSnapshotCorrupt = errors.New("snapshot payload is corrupt")
	// ErrSnapshotMissingKey indicates a required key is absent.
	ErrSnapshotMissingKey = errors.New("snapshot is missing a required key")
	// ErrSnapshotVersion indicates an unsupported schema version.
	ErrSnapshotVersion = errors.New("unsupported snapshot schema version")
	// ErrSnapshotInvalid indicates a snapshot that violates a state invariant.
	ErrSnapshotInvalid = errors.New("snapshot violates state invariants")
)

// RequiredSnapshotKeys lists the keys every encoded snapshot must carry.
var RequiredSnapshotKeys = []string{
	"schema_version",
	"seed",
	"rng_state",
	"disposition",
	"energy",
	"starting_energy",
	"hand",
	"hero_hp",
	"hero_max_hp",
	"resonance_zone",
	"enemy_type",
}

// Snapshot is the flat, serializable form of a Simulation.
type Snapshot struct {
	SchemaVersion int    `json:"schema_version"`
	Seed          uint64 `json:"seed"`
	RNGState      uint64 `json:"rng_state"`

	Disposition    int `json:"disposition"`
	Energy         int `json:"energy"`
	StartingEnergy int `json:"starting_energy"`

	StreakType  ActionKind `json:"streak_type,omitempty"`
	StreakCount int        `json:"streak_count,omitempty"`

	LastAction         ActionKind `json:"last_action,omitempty"`
	LastCardID         string     `json:"last_card_id,omitempty"`
	LastTargetID       string     `json:"last_target_id,omitempty"`
	LastBasePower      int        `json:"last_base_power,omitempty"`
	LastFateModifier   int        `json:"last_fate_modifier,omitempty"`
	LastFateKeyword    Keyword    `json:"last_fate_keyword,omitempty"`
	LastEffectivePower int        `json:"last_effective_power,omitempty"`
	EchoUsed           bool       `json:"echo_used_this_action,omitempty"`

	Hand          []Card `json:"hand"`
	DiscardPile   []Card `json:"discard_pile,omitempty"`
	ExhaustPile   []Card `json:"exhaust_pile,omitempty"`
	SacrificeUsed bool   `json:"sacrifice_used_this_turn,omitempty"`

	DefendReduction    int `json:"defend_reduction,omitempty"`
	ProvokePenalty     int `json:"provoke_penalty,omitempty"`
	AdaptPenalty       int `json:"adapt_penalty,omitempty"`
	PleaBacklash       int `json:"plea_backlash,omitempty"`
	EnemySacrificeBuff int `json:"enemy_sacrifice_buff,omitempty"`

	HeroHP    int `json:"hero_hp"`
	HeroMaxHP int `json:"hero_max_hp"`

	Zone      Zone    `json:"resonance_zone"`
	EnemyType string  `json:"enemy_type"`
	Outcome   Outcome `json:"outcome,omitempty"`

	Turn            int     `json:"turn,omitempty"`
	Phase           Phase   `json:"phase,omitempty"`
	MatchMultiplier float64 `json:"match_multiplier,omitempty"`

	EnemySurvivalThreshold    int  `json:"enemy_survival_threshold,omitempty"`
	EnemyDesperationThreshold int  `json:"enemy_desperation_threshold,omitempty"`
	EnemyBand                 Mode `json:"enemy_band,omitempty"`
	EnemyMode                 Mode `json:"enemy_mode,omitempty"`
	EnemyLastDisposition      int  `json:"enemy_last_disposition,omitempty"`
}

// Capture copies every field of the simulation, including the RNG state.
func Capture(s *Simulation) Snapshot {
	hand := slices.Clone(s.hand)
	if hand == nil {
		hand = []Card{}
	}
	return Snapshot{
		SchemaVersion:             SnapshotSchemaVersion,
		Seed:                      s.seed,
		RNGState:                  s.rng.State(),
		Disposition:               s.disposition,
		Energy:                    s.energy,
		StartingEnergy:            s.startingEnergy,
		StreakType:                s.streakType,
		StreakCount:               s.streakCount,
		LastAction:                s.lastAction,
		LastCardID:                s.lastCardID,
		LastTargetID:              s.lastTargetID,
		LastBasePower:             s.lastBasePower,
		LastFateModifier:          s.lastFateModifier,
		LastFateKeyword:           s.lastKeyword,
		LastEffectivePower:        s.lastEffectivePower,
		EchoUsed:                  s.echoUsed,
		Hand:                      hand,
		DiscardPile:               slices.Clone(s.discard),
		ExhaustPile:               slices.Clone(s.exhaust),
		SacrificeUsed:             s.sacrificeUsed,
		DefendReduction:           s.defendReduction,
		ProvokePenalty:            s.provokePenalty,
		AdaptPenalty:              s.adaptPenalty,
		PleaBacklash:              s.pleaBacklash,
		EnemySacrificeBuff:        s.enemySacrificeBuff,
		HeroHP:                    s.heroHP,
		HeroMaxHP:                 s.heroMaxHP,
		Zone:                      s.zone,
		EnemyType:                 s.enemyType,
		Outcome:                   s.outcome,
		Turn:                      s.turn,
		Phase:                     s.phase,
		MatchMultiplier:           s.matchMultiplier,
		EnemySurvivalThreshold:    s.enemy.SurvivalThreshold,
		EnemyDesperationThreshold: s.enemy.DesperationThreshold,
		EnemyBand:                 s.enemy.Band,
		EnemyMode:                 s.enemy.Mode,
		EnemyLastDisposition:      s.enemy.LastDisposition,
	}
}

// Restore rebuilds a simulation that behaves identically to the captured one.
// Options supply collaborators that are not part of the saved state, such as
// the vulnerability registry.
func (snap Snapshot) Restore(opts ...Option) (*Simulation, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	multiplier := snap.MatchMultiplier
	if multiplier == 0 {
		multiplier = DefaultMatchMultiplier
	}
	turn := snap.Turn
	if turn == 0 {
		turn = 1
	}
	s := &Simulation{
		disposition:        snap.Disposition,
		energy:             snap.Energy,
		startingEnergy:     snap.StartingEnergy,
		streakType:         snap.StreakType,
		streakCount:        snap.StreakCount,
		lastAction:         snap.LastAction,
		lastCardID:         snap.LastCardID,
		lastTargetID:       snap.LastTargetID,
		lastBasePower:      snap.LastBasePower,
		lastFateModifier:   snap.LastFateModifier,
		lastKeyword:        snap.LastFateKeyword,
		lastEffectivePower: snap.LastEffectivePower,
		echoUsed:           snap.EchoUsed,
		hand:               slices.Clone(snap.Hand),
		discard:            slices.Clone(snap.DiscardPile),
		exhaust:            slices.Clone(snap.ExhaustPile),
		sacrificeUsed:      snap.SacrificeUsed,
		defendReduction:    snap.DefendReduction,
		provokePenalty:     snap.ProvokePenalty,
		adaptPenalty:       snap.AdaptPenalty,
		pleaBacklash:       snap.PleaBacklash,
		enemySacrificeBuff: snap.EnemySacrificeBuff,
		heroHP:             snap.HeroHP,
		heroMaxHP:          snap.HeroMaxHP,
		zone:               snap.Zone,
		enemyType:          snap.EnemyType,
		seed:               snap.Seed,
		rng:                rng.FromState(snap.RNGState),
		outcome:            snap.Outcome,
		turn:               turn,
		phase:              snap.Phase,
		enemy: EnemyModeState{
			Seed:                 snap.Seed,
			SurvivalThreshold:    snap.EnemySurvivalThreshold,
			DesperationThreshold: snap.EnemyDesperationThreshold,
			Band:                 snap.EnemyBand,
			Mode:                 snap.EnemyMode,
			LastDisposition:      snap.EnemyLastDisposition,
		},
		vulnerabilities: DefaultVulnerabilities(),
		matchMultiplier: multiplier,
	}
	s.apply(opts)
	return s, nil
}

// Validate checks the snapshot against the simulation invariants.
func (snap Snapshot) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrSnapshotInvalid, fmt.Sprintf(format, args...))
	}
	if snap.SchemaVersion < 1 || snap.SchemaVersion > SnapshotSchemaVersion {
		return fmt.Errorf("%w: %d", ErrSnapshotVersion, snap.SchemaVersion)
	}
	if snap.RNGState == 0 {
		return invalid("rng state must be non-zero")
	}
	if snap.Disposition < MinDisposition || snap.Disposition > MaxDisposition {
		return invalid("disposition %d outside [%d, %d]", snap.Disposition, MinDisposition, MaxDisposition)
	}
	if snap.Energy < 0 || snap.StartingEnergy < 0 {
		return invalid("energy must not be negative")
	}
	if snap.HeroMaxHP <= 0 || snap.HeroHP < 0 || snap.HeroHP > snap.HeroMaxHP {
		return invalid("hero hp %d/%d out of range", snap.HeroHP, snap.HeroMaxHP)
	}
	if !snap.Zone.Valid() {
		return invalid("resonance zone is required")
	}
	if snap.StreakCount < 0 || (snap.StreakCount == 0) != (snap.StreakType == ActionNone) {
		return invalid("streak %s x%d is inconsistent", snap.StreakType, snap.StreakCount)
	}
	if snap.DefendReduction < 0 || snap.ProvokePenalty < 0 || snap.AdaptPenalty < 0 ||
		snap.PleaBacklash < 0 || snap.EnemySacrificeBuff < 0 {
		return invalid("enemy statuses must not be negative")
	}
	if snap.MatchMultiplier != 0 && (snap.MatchMultiplier < 1 || snap.MatchMultiplier > MaxMatchMultiplier) {
		return invalid("match multiplier %v out of range", snap.MatchMultiplier)
	}
	if snap.EnemyDesperationThreshold >= snap.EnemySurvivalThreshold || snap.EnemySurvivalThreshold >= 0 {
		return invalid("enemy thresholds %d/%d out of order", snap.EnemySurvivalThreshold, snap.EnemyDesperationThreshold)
	}
	switch {
	case snap.Outcome == OutcomeDestroyed && snap.Disposition != MinDisposition,
		snap.Outcome == OutcomeSubjugated && snap.Disposition != MaxDisposition,
		snap.Outcome == OutcomeNone && (snap.Disposition == MinDisposition || snap.Disposition == MaxDisposition):
		return invalid("outcome %q does not match disposition %d", snap.Outcome, snap.Disposition)
	}
	if err := validateCards(snap.Hand, snap.DiscardPile, snap.ExhaustPile); err != nil {
		return invalid("%v", err)
	}
	return nil
}

// Equal reports whether two snapshots hold the same state. Nil and empty
// piles compare equal.
func (snap Snapshot) Equal(other Snapshot) bool {
	a, b := snap, other
	if !slices.Equal(a.Hand, b.Hand) || !slices.Equal(a.DiscardPile, b.DiscardPile) || !slices.Equal(a.ExhaustPile, b.ExhaustPile) {
		return false
	}
	a.Hand, a.DiscardPile, a.ExhaustPile = nil, nil, nil
	b.Hand, b.DiscardPile, b.ExhaustPile = nil, nil, nil
	return reflect.DeepEqual(a, b)
}

// EncodeSnapshot serializes a snapshot to JSON.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	if snap.Hand == nil {
		snap.Hand = []Card{}
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses and validates a JSON snapshot.
//
// Unknown keys are ignored and optional keys default to their zero values.
// Snapshots written before the enemy thresholds were persisted get them
// re-derived from the seed. Truncated or malformed payloads, missing required
// keys, and invariant violations all fail the decode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrSnapshotCorrupt, err)
	}
	for _, key := range RequiredSnapshotKeys {
		if _, ok := keys[key]; !ok {
			return Snapshot{}, fmt.Errorf("%w: %s", ErrSnapshotMissingKey, key)
		}
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrSnapshotCorrupt, err)
	}
	if _, ok := keys["enemy_survival_threshold"]; !ok {
		legacy := NewEnemyModeState(snap.Seed, snap.Disposition)
		snap.EnemySurvivalThreshold = legacy.SurvivalThreshold
		snap.EnemyDesperationThreshold = legacy.DesperationThreshold
		snap.EnemyBand = legacy.Band
		snap.EnemyMode = legacy.Mode
		snap.EnemyLastDisposition = legacy.LastDisposition
	}
	if err := snap.Validate(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
