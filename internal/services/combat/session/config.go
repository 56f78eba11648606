package session

import (
	"errors"
	"strings"

	apperrors "github.com/louisbranch/duskmarch/internal/platform/errors"
	"github.com/louisbranch/duskmarch/internal/systems/disposition"
)

// Defaults applied to StartConfig fields left at zero.
const (
	DefaultEnergy    = 3
	DefaultHeroMaxHP = 20
	// MaxSituation bounds the situation modifier added to affinity.
	MaxSituation = 100
)

// StartConfig describes a new duel.
type StartConfig struct {
	Hand      []disposition.Card `json:"hand"`
	Zone      disposition.Zone   `json:"zone"`
	EnemyType string             `json:"enemy_type"`
	// Seed drives all randomness of the duel. Zero draws a random seed.
	Seed uint64 `json:"seed,omitempty"`
	// Disposition overrides the affinity-derived starting disposition.
	Disposition *int `json:"disposition,omitempty"`
	// Situation shifts the affinity-derived starting disposition.
	Situation       int     `json:"situation,omitempty"`
	Energy          int     `json:"energy,omitempty"`
	HeroHP          int     `json:"hero_hp,omitempty"`
	HeroMaxHP       int     `json:"hero_max_hp,omitempty"`
	MatchMultiplier float64 `json:"match_multiplier,omitempty"`
}

func (c StartConfig) validate() error {
	if !c.Zone.Valid() {
		return apperrors.New(apperrors.CodeInvalidZone, "resonance zone is required")
	}
	if strings.TrimSpace(c.EnemyType) == "" {
		return apperrors.New(apperrors.CodeEnemyTypeRequired, "enemy type is required")
	}
	if len(c.Hand) == 0 {
		return apperrors.New(apperrors.CodeHandRequired, "starting hand is empty")
	}
	if c.Situation < -MaxSituation || c.Situation > MaxSituation {
		return apperrors.Newf(apperrors.CodeSituationOutOfRange, "situation %d outside [-%d, %d]", c.Situation, MaxSituation, MaxSituation)
	}
	return nil
}

// simulationConfig resolves defaults into a disposition config.
func (c StartConfig) simulationConfig(seed uint64) disposition.Config {
	energy := c.Energy
	if energy == 0 {
		energy = DefaultEnergy
	}
	maxHP := c.HeroMaxHP
	if maxHP == 0 {
		maxHP = DefaultHeroMaxHP
	}
	hp := c.HeroHP
	if hp == 0 {
		hp = maxHP
	}
	start := disposition.StartingDisposition(c.Zone, c.EnemyType, c.Situation)
	if c.Disposition != nil {
		start = *c.Disposition
	}
	return disposition.Config{
		Hand:           c.Hand,
		Disposition:    start,
		Energy:         energy,
		StartingEnergy: energy,
		HeroHP:         hp,
		HeroMaxHP:      maxHP,
		Zone:           c.Zone,
		EnemyType:      strings.TrimSpace(c.EnemyType),
		Seed:           seed,
	}
}

func (c StartConfig) newSimulation(seed uint64, opts ...disposition.Option) (*disposition.Simulation, error) {
	if c.MatchMultiplier != 0 {
		opts = append(opts, disposition.WithMatchMultiplier(c.MatchMultiplier))
	}
	sim, err := disposition.New(c.simulationConfig(seed), opts...)
	if errors.Is(err, disposition.ErrInvalidConfig) {
		return nil, apperrors.Wrap(apperrors.CodeInvalidConfig, "invalid duel config", err)
	}
	return sim, err
}
