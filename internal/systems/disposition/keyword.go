package disposition

import "fmt"

// KeywordContext is the situation a fate keyword is resolved in.
type KeywordContext int

const (
	ContextCombatPhysical KeywordContext = iota
	ContextCombatSpiritual
	ContextDefense
)

// String returns a readable name for the context.
func (c KeywordContext) String() string {
	switch c {
	case ContextCombatPhysical:
		return "combat_physical"
	case ContextCombatSpiritual:
		return "combat_spiritual"
	case ContextDefense:
		return "defense"
	default:
		return fmt.Sprintf("context(%d)", int(c))
	}
}

// Special is the qualitative part of a keyword effect.
type Special int

const (
	SpecialNone Special = iota
	SpecialSurge
	SpecialPierce
	SpecialEcho
	SpecialShadow
	SpecialEvade
	SpecialWard
)

// KeywordEffect is the structured result of interpreting a keyword.
type KeywordEffect struct {
	BonusDamage int
	BonusValue  int
	Special     Special
}

const (
	// DefaultMatchMultiplier doubles bonus damage on an aligned fate.
	DefaultMatchMultiplier = 2.0
	// MaxMatchMultiplier bounds configured multipliers.
	MaxMatchMultiplier = 3.0
)

type keywordEntry struct {
	keyword Keyword
	context KeywordContext
}

var keywordEffects = map[keywordEntry]KeywordEffect{
	{KeywordSurge, ContextCombatPhysical}:  {BonusDamage: 2, Special: SpecialSurge},
	{KeywordSurge, ContextCombatSpiritual}: {BonusDamage: 1, Special: SpecialSurge},
	{KeywordSurge, ContextDefense}:         {BonusValue: 1},

	{KeywordFocus, ContextCombatPhysical}:  {BonusDamage: 1, Special: SpecialPierce},
	{KeywordFocus, ContextCombatSpiritual}: {BonusDamage: 1, Special: SpecialPierce},
	{KeywordFocus, ContextDefense}:         {BonusValue: 1},

	{KeywordEcho, ContextCombatPhysical}:  {BonusValue: 1, Special: SpecialEcho},
	{KeywordEcho, ContextCombatSpiritual}: {BonusValue: 1, Special: SpecialEcho},

	{KeywordShadow, ContextCombatPhysical}:  {BonusDamage: 2, Special: SpecialShadow},
	{KeywordShadow, ContextCombatSpiritual}: {BonusDamage: 1, Special: SpecialShadow},
	{KeywordShadow, ContextDefense}:         {Special: SpecialEvade},

	{KeywordWard, ContextCombatPhysical}:  {Special: SpecialWard},
	{KeywordWard, ContextCombatSpiritual}: {Special: SpecialWard},
	{KeywordWard, ContextDefense}:         {BonusValue: 3, Special: SpecialWard},
}

// ResolveKeyword returns the fixed effect of a keyword in a context.
//
// When isMatch is set, BonusDamage is multiplied by matchMultiplier and
// truncated. The multiplier is clamped to [1, MaxMatchMultiplier].
func ResolveKeyword(keyword Keyword, ctx KeywordContext, isMatch bool, matchMultiplier float64) KeywordEffect {
	effect := keywordEffects[keywordEntry{keyword: keyword, context: ctx}]
	if isMatch && effect.BonusDamage != 0 {
		m := min(max(matchMultiplier, 1), MaxMatchMultiplier)
		effect.BonusDamage = int(float64(effect.BonusDamage) * m)
	}
	return effect
}

// ResolveKeywordWithAlignment nullifies the whole effect on a mismatched fate.
func ResolveKeywordWithAlignment(keyword Keyword, ctx KeywordContext, isMismatch bool) KeywordEffect {
	if isMismatch {
		return KeywordEffect{}
	}
	return ResolveKeyword(keyword, ctx, false, DefaultMatchMultiplier)
}

// IsMismatch reports whether a fate suit opposes the zone. Yav suits and
// unaligned fates never mismatch.
func IsMismatch(suit, zone Zone) bool {
	if suit == ZoneUnknown || suit == ZoneYav {
		return false
	}
	return suit != zone
}

// IsMatch reports whether a fate suit belongs to the zone.
func IsMatch(suit, zone Zone) bool {
	return suit != ZoneUnknown && suit == zone
}
