package disposition

import "sync"

// MaxVulnerabilityModifier bounds every registered modifier symmetrically.
const MaxVulnerabilityModifier = 5

// VulnerabilityKey identifies a modifier for one action in one zone.
type VulnerabilityKey struct {
	Action ActionKind
	Zone   Zone
}

// EnemyVulnerabilityDefinition lists the modifiers of one enemy type.
type EnemyVulnerabilityDefinition struct {
	EnemyType string
	Modifiers map[VulnerabilityKey]int
}

type vulnerabilityEntry struct {
	enemyType string
	action    ActionKind
	zone      Zone
}

// VulnerabilityRegistry resolves per-enemy action modifiers.
//
// Registration and lookup are safe for concurrent use so a single registry
// can back every live session.
type VulnerabilityRegistry struct {
	mu        sync.RWMutex
	modifiers map[vulnerabilityEntry]int
}

// NewVulnerabilityRegistry creates a registry seeded with the given definitions.
func NewVulnerabilityRegistry(definitions ...EnemyVulnerabilityDefinition) *VulnerabilityRegistry {
	r := &VulnerabilityRegistry{modifiers: make(map[vulnerabilityEntry]int)}
	for _, def := range definitions {
		r.Register(def)
	}
	return r
}

// Register adds or replaces the modifiers of an enemy type.
func (r *VulnerabilityRegistry) Register(def EnemyVulnerabilityDefinition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, value := range def.Modifiers {
		r.modifiers[vulnerabilityEntry{enemyType: def.EnemyType, action: key.Action, zone: key.Zone}] = value
	}
}

// Set registers a single modifier.
func (r *VulnerabilityRegistry) Set(enemyType string, action ActionKind, zone Zone, value int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modifiers[vulnerabilityEntry{enemyType: enemyType, action: action, zone: zone}] = value
}

// Modifier returns the capped modifier, or 0 for unknown combinations.
func (r *VulnerabilityRegistry) Modifier(enemyType string, action ActionKind, zone Zone) int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	value, ok := r.modifiers[vulnerabilityEntry{enemyType: enemyType, action: action, zone: zone}]
	r.mu.RUnlock()
	if !ok {
		return 0
	}
	return clamp(value, -MaxVulnerabilityModifier, MaxVulnerabilityModifier)
}

// DefaultVulnerabilities returns a registry loaded with the built-in enemies.
func DefaultVulnerabilities() *VulnerabilityRegistry {
	return NewVulnerabilityRegistry(
		EnemyVulnerabilityDefinition{
			EnemyType: EnemyUpyr,
			Modifiers: map[VulnerabilityKey]int{
				{ActionStrike, ZonePrav}:    3,
				{ActionInfluence, ZoneNav}:  -3,
				{ActionInfluence, ZonePrav}: -2,
			},
		},
		EnemyVulnerabilityDefinition{
			EnemyType: EnemyLeshy,
			Modifiers: map[VulnerabilityKey]int{
				{ActionInfluence, ZoneYav}: 2,
				{ActionStrike, ZoneYav}:    -2,
			},
		},
		EnemyVulnerabilityDefinition{
			EnemyType: EnemyRusalka,
			Modifiers: map[VulnerabilityKey]int{
				{ActionInfluence, ZoneNav}: 3,
				{ActionStrike, ZoneNav}:    -1,
			},
		},
		EnemyVulnerabilityDefinition{
			EnemyType: EnemyBandit,
			Modifiers: map[VulnerabilityKey]int{
				{ActionInfluence, ZoneYav}: 1,
			},
		},
	)
}
