package disposition

const (
	// MinDisposition is the destroyed endpoint of the track.
	MinDisposition = -100
	// MaxDisposition is the subjugated endpoint of the track.
	MaxDisposition = 100
	// MaxEffectivePower caps the power of any single action.
	MaxEffectivePower = 25

	// ThreatBonusValue rewards following a strike with an influence.
	ThreatBonusValue = 2
	// ResonanceBonusValue rewards strikes in Nav and influence in Prav.
	ResonanceBonusValue = 2
	// ShadowSwitchPenaltyValue is the extra switch cost Shadow adds when the enemy is hostile.
	ShadowSwitchPenaltyValue = 2

	// keywordDispositionThreshold is the strict bound Focus and Shadow compare against.
	keywordDispositionThreshold = 30

	// powerTermLimit saturates each term of the power sum so the total cannot
	// overflow. Any term this large already saturates the clamp.
	powerTermLimit = 1 << 24
)

// PowerInput carries everything the effective power formula reads.
type PowerInput struct {
	BasePower int
	// StreakCount is the streak length including the action being resolved.
	StreakCount int
	// PriorStreakType and PriorStreakCount describe the streak before this action.
	PriorStreakType  ActionKind
	PriorStreakCount int
	LastAction       ActionKind
	Action           ActionKind
	Keyword          Keyword
	FateModifier     int
	Zone             Zone
	// VulnerabilityModifier is already capped by the registry.
	VulnerabilityModifier int
	// Disposition is the value before the action resolves.
	Disposition int
	// IncomingReduction is the enemy status consumed by this action.
	IncomingReduction int
}

// PowerBreakdown exposes each term of the effective power sum.
type PowerBreakdown struct {
	Base           int
	StreakBonus    int
	ThreatBonus    int
	ResonanceBonus int
	Vulnerability  int
	Fate           int
	SwitchPenalty  int
	ShadowPenalty  int
	Reduction      int
	Raw            int
	Effective      int
}

// CalculatePower resolves the effective power formula and keeps every term.
//
// Surge multiplies only the card's base power, never the total, and the
// result is always clamped to [0, MaxEffectivePower].
func CalculatePower(in PowerInput) PowerBreakdown {
	b := PowerBreakdown{
		Base:           SurgedBase(in.BasePower, in.Keyword),
		StreakBonus:    StreakBonus(saturate(in.StreakCount)),
		ThreatBonus:    ThreatBonus(in.LastAction, in.Action),
		ResonanceBonus: ResonanceBonus(in.Action, in.Zone),
		Vulnerability:  saturate(in.VulnerabilityModifier),
		Fate:           saturate(in.FateModifier),
		Reduction:      saturate(in.IncomingReduction),
	}
	if IsSwitch(in.PriorStreakType, in.Action) {
		b.SwitchPenalty = SwitchPenalty(saturate(in.PriorStreakCount))
		b.ShadowPenalty = ShadowSwitchPenalty(in.Disposition, in.Keyword)
	}
	b.Raw = b.Base + b.StreakBonus + b.ThreatBonus + b.ResonanceBonus + b.Vulnerability + b.Fate -
		b.SwitchPenalty - b.ShadowPenalty - b.Reduction
	b.Effective = clamp(b.Raw, 0, MaxEffectivePower)
	return b
}

// EffectivePower returns the clamped power of an action.
func EffectivePower(in PowerInput) int {
	return CalculatePower(in).Effective
}

// SurgedBase applies the Surge multiplier (x1.5, floored) to a base power.
// Base powers beyond the term limit are saturated first.
func SurgedBase(basePower int, keyword Keyword) int {
	basePower = saturate(basePower)
	if keyword != KeywordSurge {
		return basePower
	}
	return floorDiv(basePower*3, 2)
}

func saturate(value int) int {
	return clamp(value, -powerTermLimit, powerTermLimit)
}

// StreakBonus is one point per consecutive same-type action after the first.
func StreakBonus(streakCount int) int {
	return max(0, streakCount-1)
}

// ThreatBonus applies when an influence follows a strike.
func ThreatBonus(last, current ActionKind) int {
	if last == ActionStrike && current == ActionInfluence {
		return ThreatBonusValue
	}
	return 0
}

// SwitchPenalty is the cost of breaking a streak of the given length.
func SwitchPenalty(priorStreakCount int) int {
	return max(0, priorStreakCount-2)
}

// IsSwitch reports whether current breaks a strike or influence streak.
// Sacrifice streaks never produce switch penalties.
func IsSwitch(priorStreakType, current ActionKind) bool {
	return priorStreakType.attacking() && current.attacking() && priorStreakType != current
}

// ResonanceBonus returns the zone bonus for an action.
func ResonanceBonus(action ActionKind, zone Zone) int {
	switch {
	case action == ActionStrike && zone == ZoneNav:
		return ResonanceBonusValue
	case action == ActionInfluence && zone == ZonePrav:
		return ResonanceBonusValue
	default:
		return 0
	}
}

// FocusIgnoresDefend reports whether Focus pierces an enemy defend.
func FocusIgnoresDefend(disposition int, keyword Keyword) bool {
	return keyword == KeywordFocus && disposition < -keywordDispositionThreshold
}

// FocusIgnoresProvoke reports whether Focus shrugs off an enemy provoke.
func FocusIgnoresProvoke(disposition int, keyword Keyword) bool {
	return keyword == KeywordFocus && disposition > keywordDispositionThreshold
}

// ShadowSwitchPenalty is the extra switch penalty Shadow adds against a hostile enemy.
func ShadowSwitchPenalty(disposition int, keyword Keyword) int {
	if keyword == KeywordShadow && disposition < -keywordDispositionThreshold {
		return ShadowSwitchPenaltyValue
	}
	return 0
}

// ShadowDisablesDefend reports whether Shadow slips past an enemy defend.
func ShadowDisablesDefend(disposition int, keyword Keyword) bool {
	return keyword == KeywordShadow && disposition > keywordDispositionThreshold
}

// ClampDisposition bounds a disposition to the track.
func ClampDisposition(value int) int {
	return clamp(value, MinDisposition, MaxDisposition)
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
