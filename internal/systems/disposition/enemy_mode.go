package disposition

import (
	"fmt"

	"github.com/louisbranch/duskmarch/internal/core/rng"
)

// Mode is the enemy's behavioral mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSurvival
	ModeDesperation
	ModeWeakened
)

var modeNames = map[Mode]string{
	ModeNormal:      "normal",
	ModeSurvival:    "survival",
	ModeDesperation: "desperation",
	ModeWeakened:    "weakened",
}

// String returns the wire name of the mode.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	name, ok := modeNames[m]
	if !ok {
		return nil, fmt.Errorf("unknown mode %d", int(m))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	for mode, name := range modeNames {
		if name == string(text) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("unknown mode %q", string(text))
}

func (m Mode) severity() int {
	switch m {
	case ModeSurvival:
		return 1
	case ModeDesperation:
		return 2
	default:
		return 0
	}
}

const (
	// ModeHysteresisMargin is how far above a threshold disposition must rise
	// before the enemy leaves that mode.
	ModeHysteresisMargin = 5
	// WeakenedSwingThreshold is the single-step disposition swing that turns
	// entering survival or desperation into weakened.
	WeakenedSwingThreshold = 25

	survivalThresholdBase    = -30
	desperationThresholdBase = -65
	thresholdJitter          = 10

	// modeSeedSalt separates the threshold stream from the combat stream.
	modeSeedSalt uint64 = 0x6D6F64655F616931
)

// EnemyModeState carries the enemy AI thresholds and hysteresis memory.
//
// Thresholds are derived from the seed once and never re-rolled.
type EnemyModeState struct {
	Seed                 uint64
	SurvivalThreshold    int
	DesperationThreshold int
	// Band is the mode ignoring weakened; Mode is the last reported mode.
	Band            Mode
	Mode            Mode
	LastDisposition int
}

// NewEnemyModeState derives thresholds for the seed and settles the initial
// band for the starting disposition.
func NewEnemyModeState(seed uint64, disposition int) EnemyModeState {
	survival, desperation := DeriveModeThresholds(seed)
	state := EnemyModeState{
		Seed:                 seed,
		SurvivalThreshold:    survival,
		DesperationThreshold: desperation,
		LastDisposition:      disposition,
	}
	state.Band = state.band(ModeNormal, disposition)
	state.Mode = state.Band
	return state
}

// DeriveModeThresholds returns the survival and desperation thresholds for a seed.
// Survival falls in [-40, -30] and desperation in [-75, -65].
func DeriveModeThresholds(seed uint64) (survival, desperation int) {
	r := rng.New(seed ^ modeSeedSalt)
	survival = survivalThresholdBase - r.NextInt(0, thresholdJitter)
	desperation = desperationThresholdBase - r.NextInt(0, thresholdJitter)
	return survival, desperation
}

// Evaluate returns the next state and the mode for the given disposition.
//
// Entering a more severe band through a swing of at least
// WeakenedSwingThreshold reports weakened for that evaluation; the underlying
// band is still tracked so the following evaluation settles into it.
func (s EnemyModeState) Evaluate(disposition int) (EnemyModeState, Mode) {
	next := s
	band := s.band(s.Band, disposition)
	mode := band
	swing := disposition - s.LastDisposition
	if swing < 0 {
		swing = -swing
	}
	if band.severity() > s.Band.severity() && swing >= WeakenedSwingThreshold {
		mode = ModeWeakened
	}
	next.Band = band
	next.Mode = mode
	next.LastDisposition = disposition
	return next, mode
}

// EvaluateMode is the functional form of EnemyModeState.Evaluate.
func EvaluateMode(state EnemyModeState, disposition int) Mode {
	_, mode := state.Evaluate(disposition)
	return mode
}

func (s EnemyModeState) band(previous Mode, disposition int) Mode {
	switch {
	case disposition <= s.DesperationThreshold:
		return ModeDesperation
	case previous == ModeDesperation && disposition <= s.DesperationThreshold+ModeHysteresisMargin:
		return ModeDesperation
	case disposition <= s.SurvivalThreshold:
		return ModeSurvival
	case previous.severity() >= ModeSurvival.severity() && disposition <= s.SurvivalThreshold+ModeHysteresisMargin:
		return ModeSurvival
	default:
		return ModeNormal
	}
}

const (
	// DefaultEnemyBaseDamage is the attack damage when callers do not override it.
	DefaultEnemyBaseDamage = 3
	// MomentumCounterStreak is the streak length a normal-mode enemy reacts to.
	MomentumCounterStreak = 3
	// CounterDefendReduction is the defend raised against strike streaks.
	CounterDefendReduction = 3
	// CounterProvokePenalty is the provoke raised against influence streaks.
	CounterProvokePenalty = 3
)

// SelectEnemyAction chooses the enemy action for a mode and the hero's momentum.
//
// Only normal mode reads momentum; every other mode attacks. The selector is
// handed the simulation's random source but the current table never draws
// from it, so selection never shifts the stream.
func SelectEnemyAction(mode Mode, sim *Simulation, source *rng.Source, baseDamage int) EnemyAction {
	if mode == ModeNormal && sim != nil && sim.StreakCount() >= MomentumCounterStreak {
		switch sim.StreakType() {
		case ActionStrike:
			return Defend(CounterDefendReduction)
		case ActionInfluence:
			return Provoke(CounterProvokePenalty)
		case ActionSacrifice:
			return Adapt()
		}
	}
	return Attack(baseDamage)
}
