package disposition

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/louisbranch/duskmarch/internal/core/rng"
)

const (
	// SacrificeRefund is the energy returned by every successful sacrifice.
	SacrificeRefund = 1
	// NavSacrificeDiscount lowers sacrifice costs in Nav.
	NavSacrificeDiscount = 1
	// PravExtraExhaustChance is the chance a Prav sacrifice burns a second card.
	PravExtraExhaustChance = 0.5
	// PravStrikeBacklash is the HP a strike in Prav costs the hero unless warded.
	PravStrikeBacklash = 1
	// PleaBacklashValue is the extra damage the next enemy attack deals after
	// the hero strikes an enemy that was being persuaded.
	PleaBacklashValue = 2
	// MinAdaptPenalty is the floor of the adapt soft block.
	MinAdaptPenalty = 3
)

// ErrInvalidConfig indicates a simulation cannot be built from the config.
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config describes a new duel.
type Config struct {
	Hand           []Card
	Disposition    int
	Energy         int
	StartingEnergy int
	HeroHP         int
	HeroMaxHP      int
	Zone           Zone
	EnemyType      string
	Seed           uint64
}

// Option configures optional collaborators of a Simulation.
type Option func(*Simulation)

// WithVulnerabilities sets the registry used for vulnerability modifiers.
func WithVulnerabilities(registry *VulnerabilityRegistry) Option {
	return func(s *Simulation) {
		s.vulnerabilities = registry
	}
}

// WithMatchMultiplier sets the bonus multiplier for fates aligned with the zone.
func WithMatchMultiplier(multiplier float64) Option {
	return func(s *Simulation) {
		s.matchMultiplier = min(max(multiplier, 1), MaxMatchMultiplier)
	}
}

// Simulation is the mutable state of one duel.
//
// All mutation goes through the action methods. Expected rejections return
// false and leave the state untouched. A Simulation is not safe for
// concurrent use; callers own it exclusively.
type Simulation struct {
	disposition    int
	energy         int
	startingEnergy int

	streakType  ActionKind
	streakCount int

	lastAction         ActionKind
	lastCardID         string
	lastTargetID       string
	lastBasePower      int
	lastFateModifier   int
	lastKeyword        Keyword
	lastEffectivePower int
	echoUsed           bool

	hand          []Card
	discard       []Card
	exhaust       []Card
	sacrificeUsed bool

	defendReduction    int
	provokePenalty     int
	adaptPenalty       int
	pleaBacklash       int
	enemySacrificeBuff int

	heroHP    int
	heroMaxHP int

	zone      Zone
	enemyType string

	seed    uint64
	rng     *rng.Source
	outcome Outcome

	turn  int
	phase Phase
	enemy EnemyModeState

	vulnerabilities *VulnerabilityRegistry
	matchMultiplier float64
}

// New builds a simulation from an explicit config. The disposition is
// clamped to the track; a config that starts on an endpoint is already over.
func New(cfg Config, opts ...Option) (*Simulation, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	disposition := ClampDisposition(cfg.Disposition)
	s := &Simulation{
		disposition:     disposition,
		energy:          cfg.Energy,
		startingEnergy:  cfg.StartingEnergy,
		hand:            slices.Clone(cfg.Hand),
		heroHP:          cfg.HeroHP,
		heroMaxHP:       cfg.HeroMaxHP,
		zone:            cfg.Zone,
		enemyType:       cfg.EnemyType,
		seed:            cfg.Seed,
		rng:             rng.New(cfg.Seed),
		turn:            1,
		phase:           PhasePlayer,
		enemy:           NewEnemyModeState(cfg.Seed, disposition),
		vulnerabilities: DefaultVulnerabilities(),
		matchMultiplier: DefaultMatchMultiplier,
	}
	s.apply(opts)
	s.checkOutcome()
	return s, nil
}

// NewFromAffinity builds a simulation whose starting disposition comes from
// the affinity matrix for the config's zone and enemy type. cfg.Disposition
// is ignored.
func NewFromAffinity(cfg Config, situationModifier int, opts ...Option) (*Simulation, error) {
	cfg.Disposition = StartingDisposition(cfg.Zone, cfg.EnemyType, situationModifier)
	return New(cfg, opts...)
}

func (s *Simulation) apply(opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
}

func (c Config) validate() error {
	if !c.Zone.Valid() {
		return fmt.Errorf("%w: resonance zone is required", ErrInvalidConfig)
	}
	if c.HeroMaxHP <= 0 {
		return fmt.Errorf("%w: hero max hp must be positive", ErrInvalidConfig)
	}
	if c.HeroHP < 0 || c.HeroHP > c.HeroMaxHP {
		return fmt.Errorf("%w: hero hp %d outside [0, %d]", ErrInvalidConfig, c.HeroHP, c.HeroMaxHP)
	}
	if c.StartingEnergy < 0 || c.Energy < 0 {
		return fmt.Errorf("%w: energy must not be negative", ErrInvalidConfig)
	}
	return validateCards(c.Hand)
}

func validateCards(piles ...[]Card) error {
	seen := make(map[string]struct{})
	for _, pile := range piles {
		for _, card := range pile {
			if card.ID == "" {
				return fmt.Errorf("%w: card id is required", ErrInvalidConfig)
			}
			if card.Cost < 0 || card.Power < 0 {
				return fmt.Errorf("%w: card %s has negative cost or power", ErrInvalidConfig, card.ID)
			}
			if _, ok := seen[card.ID]; ok {
				return fmt.Errorf("%w: duplicate card id %s", ErrInvalidConfig, card.ID)
			}
			seen[card.ID] = struct{}{}
		}
	}
	return nil
}

// PlayStrike plays a card from hand as a strike, lowering disposition.
func (s *Simulation) PlayStrike(cardID, targetID string, fate Fate) bool {
	return s.playCard(ActionStrike, cardID, targetID, fate)
}

// PlayInfluence plays a card from hand as influence, raising disposition.
func (s *Simulation) PlayInfluence(cardID string, fate Fate) bool {
	return s.playCard(ActionInfluence, cardID, "", fate)
}

func (s *Simulation) playCard(kind ActionKind, cardID, targetID string, fate Fate) bool {
	if s.outcome != OutcomeNone {
		return false
	}
	idx := s.handIndex(cardID)
	if idx < 0 {
		return false
	}
	card := s.hand[idx]
	if s.energy < card.Cost {
		return false
	}

	s.energy -= card.Cost
	s.hand = slices.Delete(s.hand, idx, idx+1)
	s.discard = append(s.discard, card)
	s.lastCardID = card.ID
	s.lastTargetID = targetID
	s.echoUsed = false
	s.resolveAttack(kind, card.Power, fate, false)
	return true
}

// PlayEcho replays the last strike or influence at no energy cost without a
// new fate draw. The streak continues. Echo is rejected after a sacrifice,
// before any strike or influence, and immediately after another echo.
func (s *Simulation) PlayEcho(fateModifier int) bool {
	if s.outcome != OutcomeNone {
		return false
	}
	if !s.lastAction.attacking() || s.echoUsed {
		return false
	}
	// The replay keeps the original strike's Ward against the Prav backlash.
	s.resolveAttack(s.lastAction, s.lastBasePower, Fate{Modifier: fateModifier}, s.lastKeyword == KeywordWard)
	s.echoUsed = true
	return true
}

// resolveAttack runs the power formula for a strike or influence and applies it.
func (s *Simulation) resolveAttack(kind ActionKind, basePower int, fate Fate, warded bool) {
	ctx := ContextCombatPhysical
	if kind == ActionInfluence {
		ctx = ContextCombatSpiritual
	}
	effect, keyword := s.resolveFate(fate, ctx)
	fateModifier := saturate(fate.Modifier) + effect.BonusDamage

	before := s.disposition
	priorType, priorCount := s.streakType, s.streakCount
	count := 1
	if priorType == kind {
		count = priorCount + 1
	}

	breakdown := CalculatePower(PowerInput{
		BasePower:             basePower,
		StreakCount:           count,
		PriorStreakType:       priorType,
		PriorStreakCount:      priorCount,
		LastAction:            s.lastAction,
		Action:                kind,
		Keyword:               keyword,
		FateModifier:          fateModifier,
		Zone:                  s.zone,
		VulnerabilityModifier: s.vulnerabilities.Modifier(s.enemyType, kind, s.zone),
		Disposition:           before,
		IncomingReduction:     s.consumeReduction(kind, keyword, before),
	})

	switch kind {
	case ActionStrike:
		s.disposition = ClampDisposition(before - breakdown.Effective)
		if s.zone == ZonePrav && keyword != KeywordWard && !warded {
			s.damageHero(PravStrikeBacklash)
		}
		if before > keywordDispositionThreshold {
			s.pleaBacklash = PleaBacklashValue
		}
	case ActionInfluence:
		s.disposition = ClampDisposition(before + breakdown.Effective)
	}

	s.streakType = kind
	s.streakCount = count
	s.lastAction = kind
	s.lastBasePower = basePower
	s.lastFateModifier = fateModifier
	s.lastKeyword = keyword
	s.lastEffectivePower = breakdown.Effective
	s.checkOutcome()
}

// resolveFate interprets a fate draw in context. A fate whose suit opposes the
// zone loses its keyword entirely.
func (s *Simulation) resolveFate(fate Fate, ctx KeywordContext) (KeywordEffect, Keyword) {
	if fate.Keyword == KeywordNone {
		return KeywordEffect{}, KeywordNone
	}
	if IsMismatch(fate.Suit, s.zone) {
		return ResolveKeywordWithAlignment(fate.Keyword, ctx, true), KeywordNone
	}
	return ResolveKeyword(fate.Keyword, ctx, IsMatch(fate.Suit, s.zone), s.matchMultiplier), fate.Keyword
}

// consumeReduction returns and clears the enemy statuses the action triggers.
func (s *Simulation) consumeReduction(kind ActionKind, keyword Keyword, disposition int) int {
	reduction := 0
	switch kind {
	case ActionStrike:
		if !FocusIgnoresDefend(disposition, keyword) && !ShadowDisablesDefend(disposition, keyword) {
			reduction += s.defendReduction
		}
		s.defendReduction = 0
	case ActionInfluence:
		if !FocusIgnoresProvoke(disposition, keyword) {
			reduction += s.provokePenalty
		}
		s.provokePenalty = 0
	}
	reduction += s.adaptPenalty
	s.adaptPenalty = 0
	return reduction
}

// PlayCardAsSacrifice exhausts a card for an energy refund and an enemy buff.
//
// At most one sacrifice is allowed per turn. Nav discounts the cost by one.
// In Prav a coin flip may exhaust one more random card from hand.
func (s *Simulation) PlayCardAsSacrifice(cardID string) bool {
	if s.outcome != OutcomeNone || s.sacrificeUsed {
		return false
	}
	idx := s.handIndex(cardID)
	if idx < 0 {
		return false
	}
	card := s.hand[idx]
	cost := s.SacrificeCost(card)
	if s.energy < cost {
		return false
	}

	s.energy = s.energy - cost + SacrificeRefund
	if s.enemySacrificeBuff < math.MaxInt32 {
		s.enemySacrificeBuff++
	}
	s.hand = slices.Delete(s.hand, idx, idx+1)
	s.exhaust = append(s.exhaust, card)

	if s.zone == ZonePrav && s.rng.NextBool(PravExtraExhaustChance) && len(s.hand) > 0 {
		extra := s.rng.NextInt(0, len(s.hand)-1)
		s.exhaust = append(s.exhaust, s.hand[extra])
		s.hand = slices.Delete(s.hand, extra, extra+1)
	}

	s.sacrificeUsed = true
	if s.streakType == ActionSacrifice {
		s.streakCount++
	} else {
		s.streakType = ActionSacrifice
		s.streakCount = 1
	}
	s.lastAction = ActionSacrifice
	s.lastCardID = card.ID
	s.lastTargetID = ""
	s.lastBasePower = card.Power
	s.lastFateModifier = 0
	s.lastKeyword = KeywordNone
	s.lastEffectivePower = 0
	s.echoUsed = false
	return true
}

// SacrificeCost returns the energy a sacrifice of card costs before the refund.
func (s *Simulation) SacrificeCost(card Card) int {
	if s.zone == ZoneNav {
		return max(0, card.Cost-NavSacrificeDiscount)
	}
	return card.Cost
}

// ApplyEnemyAttack damages the hero by damage plus the enemy's sacrifice buff
// and any pending plea backlash. HP never drops below zero.
func (s *Simulation) ApplyEnemyAttack(damage int) bool {
	if s.outcome != OutcomeNone {
		return false
	}
	total := saturate(max(0, damage)) + s.enemySacrificeBuff + s.pleaBacklash
	s.pleaBacklash = 0
	s.damageHero(total)
	return true
}

// ApplyEnemyDefend reduces the power of the next strike.
func (s *Simulation) ApplyEnemyDefend(reduction int) bool {
	if s.outcome != OutcomeNone {
		return false
	}
	s.defendReduction = max(0, reduction)
	return true
}

// ApplyEnemyProvoke reduces the power of the next influence.
func (s *Simulation) ApplyEnemyProvoke(penalty int) bool {
	if s.outcome != OutcomeNone {
		return false
	}
	s.provokePenalty = max(0, penalty)
	return true
}

// ApplyEnemyAdapt soft-blocks the next strike or influence. The action still
// resolves; it only loses power.
func (s *Simulation) ApplyEnemyAdapt() bool {
	if s.outcome != OutcomeNone {
		return false
	}
	s.adaptPenalty = max(MinAdaptPenalty, StreakBonus(s.streakCount))
	return true
}

// EndPlayerTurn hands the round to the enemy. Streaks persist.
func (s *Simulation) EndPlayerTurn() bool {
	if s.outcome != OutcomeNone {
		return false
	}
	s.phase = PhaseEnemy
	return true
}

// BeginPlayerTurn refills energy and re-arms the sacrifice. Streaks persist.
func (s *Simulation) BeginPlayerTurn() bool {
	if s.outcome != OutcomeNone {
		return false
	}
	s.energy = s.startingEnergy
	s.sacrificeUsed = false
	s.phase = PhasePlayer
	s.turn++
	return true
}

func (s *Simulation) damageHero(amount int) {
	if amount <= 0 {
		return
	}
	s.heroHP = max(0, s.heroHP-amount)
}

func (s *Simulation) checkOutcome() {
	if s.outcome != OutcomeNone {
		return
	}
	switch s.disposition {
	case MinDisposition:
		s.outcome = OutcomeDestroyed
	case MaxDisposition:
		s.outcome = OutcomeSubjugated
	}
}

func (s *Simulation) handIndex(cardID string) int {
	return slices.IndexFunc(s.hand, func(c Card) bool { return c.ID == cardID })
}

// Clone returns an independent deep copy, including the random stream.
func (s *Simulation) Clone() *Simulation {
	c := *s
	c.hand = slices.Clone(s.hand)
	c.discard = slices.Clone(s.discard)
	c.exhaust = slices.Clone(s.exhaust)
	c.rng = s.rng.Clone()
	return &c
}

// Disposition returns the current disposition.
func (s *Simulation) Disposition() int { return s.disposition }

// Energy returns the energy available this turn.
func (s *Simulation) Energy() int { return s.energy }

// StartingEnergy returns the energy restored at each turn start.
func (s *Simulation) StartingEnergy() int { return s.startingEnergy }

// IsAutoTurnEnd reports whether the hero is out of energy.
func (s *Simulation) IsAutoTurnEnd() bool { return s.energy == 0 }

// StreakType returns the action type of the current streak.
func (s *Simulation) StreakType() ActionKind { return s.streakType }

// StreakCount returns the current streak length.
func (s *Simulation) StreakCount() int { return s.streakCount }

// LastAction returns the most recent player action type.
func (s *Simulation) LastAction() ActionKind { return s.lastAction }

// LastPlayedCardID returns the id of the most recently played card.
func (s *Simulation) LastPlayedCardID() string { return s.lastCardID }

// LastTargetID returns the target of the most recent strike.
func (s *Simulation) LastTargetID() string { return s.lastTargetID }

// LastPlayedBasePower returns the base power echo replays.
func (s *Simulation) LastPlayedBasePower() int { return s.lastBasePower }

// LastFateModifier returns the total fate modifier of the last action.
func (s *Simulation) LastFateModifier() int { return s.lastFateModifier }

// LastKeyword returns the keyword that took effect on the last action.
func (s *Simulation) LastKeyword() Keyword { return s.lastKeyword }

// LastEffectivePower returns the clamped power of the last strike or influence.
func (s *Simulation) LastEffectivePower() int { return s.lastEffectivePower }

// EchoUsedThisAction reports whether the last action was an echo.
func (s *Simulation) EchoUsedThisAction() bool { return s.echoUsed }

// Hand returns a copy of the hand.
func (s *Simulation) Hand() []Card { return slices.Clone(s.hand) }

// DiscardPile returns a copy of the discard pile.
func (s *Simulation) DiscardPile() []Card { return slices.Clone(s.discard) }

// ExhaustPile returns a copy of the exhaust pile.
func (s *Simulation) ExhaustPile() []Card { return slices.Clone(s.exhaust) }

// SacrificeUsedThisTurn reports whether this turn's sacrifice is spent.
func (s *Simulation) SacrificeUsedThisTurn() bool { return s.sacrificeUsed }

// DefendReduction returns the pending defend.
func (s *Simulation) DefendReduction() int { return s.defendReduction }

// ProvokePenalty returns the pending provoke.
func (s *Simulation) ProvokePenalty() int { return s.provokePenalty }

// AdaptPenalty returns the pending adapt soft block.
func (s *Simulation) AdaptPenalty() int { return s.adaptPenalty }

// PleaBacklash returns the extra damage pending on the next enemy attack.
func (s *Simulation) PleaBacklash() int { return s.pleaBacklash }

// EnemySacrificeBuff returns the damage bonus earned from hero sacrifices.
func (s *Simulation) EnemySacrificeBuff() int { return s.enemySacrificeBuff }

// HeroHP returns the hero's current HP.
func (s *Simulation) HeroHP() int { return s.heroHP }

// HeroMaxHP returns the hero's maximum HP.
func (s *Simulation) HeroMaxHP() int { return s.heroMaxHP }

// HeroDefeated reports whether the hero has no HP left. It is not a
// disposition outcome; the caller decides what a fallen hero means.
func (s *Simulation) HeroDefeated() bool { return s.heroHP == 0 }

// Zone returns the resonance zone.
func (s *Simulation) Zone() Zone { return s.zone }

// EnemyType returns the enemy type key.
func (s *Simulation) EnemyType() string { return s.enemyType }

// Seed returns the seed the duel started from.
func (s *Simulation) Seed() uint64 { return s.seed }

// RNGState returns the current state of the owned random source.
func (s *Simulation) RNGState() uint64 { return s.rng.State() }

// Outcome returns the terminal outcome, or OutcomeNone while in progress.
func (s *Simulation) Outcome() Outcome { return s.outcome }

// IsOver reports whether the duel reached an outcome.
func (s *Simulation) IsOver() bool { return s.outcome != OutcomeNone }

// Turn returns the 1-based turn number.
func (s *Simulation) Turn() int { return s.turn }

// Phase returns whose half of the round is active.
func (s *Simulation) Phase() Phase { return s.phase }

// EnemyMode returns the enemy's last evaluated mode state.
func (s *Simulation) EnemyMode() EnemyModeState { return s.enemy }

// MatchMultiplier returns the aligned-fate multiplier.
func (s *Simulation) MatchMultiplier() float64 { return s.matchMultiplier }
