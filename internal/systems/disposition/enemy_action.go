package disposition

import "fmt"

// EnemyActionKind identifies an enemy action.
type EnemyActionKind int

const (
	EnemyAttack EnemyActionKind = iota
	EnemyDefend
	EnemyProvoke
	EnemyAdapt
)

var enemyActionNames = map[EnemyActionKind]string{
	EnemyAttack:  "attack",
	EnemyDefend:  "defend",
	EnemyProvoke: "provoke",
	EnemyAdapt:   "adapt",
}

// String returns the wire name of the enemy action.
func (k EnemyActionKind) String() string {
	if name, ok := enemyActionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("enemy_action(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k EnemyActionKind) MarshalText() ([]byte, error) {
	name, ok := enemyActionNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown enemy action %d", int(k))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *EnemyActionKind) UnmarshalText(text []byte) error {
	for kind, name := range enemyActionNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown enemy action %q", string(text))
}

// EnemyAction is an action chosen by the enemy AI. Value is the damage,
// reduction, or penalty depending on Kind; adapt carries none.
type EnemyAction struct {
	Kind  EnemyActionKind `json:"kind"`
	Value int             `json:"value,omitempty"`
}

// Attack deals damage to the hero.
func Attack(damage int) EnemyAction {
	return EnemyAction{Kind: EnemyAttack, Value: damage}
}

// Defend reduces the power of the next strike.
func Defend(reduction int) EnemyAction {
	return EnemyAction{Kind: EnemyDefend, Value: reduction}
}

// Provoke reduces the power of the next influence.
func Provoke(penalty int) EnemyAction {
	return EnemyAction{Kind: EnemyProvoke, Value: penalty}
}

// Adapt soft-blocks the hero's momentum.
func Adapt() EnemyAction {
	return EnemyAction{Kind: EnemyAdapt}
}

// String formats the action for logs.
func (a EnemyAction) String() string {
	if a.Kind == EnemyAdapt {
		return a.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", a.Kind, a.Value)
}

// ResolveEnemyAction applies an enemy action to the simulation.
// It reports false when the simulation has already ended.
func ResolveEnemyAction(action EnemyAction, sim *Simulation) bool {
	if sim == nil {
		return false
	}
	switch action.Kind {
	case EnemyAttack:
		return sim.ApplyEnemyAttack(action.Value)
	case EnemyDefend:
		return sim.ApplyEnemyDefend(action.Value)
	case EnemyProvoke:
		return sim.ApplyEnemyProvoke(action.Value)
	case EnemyAdapt:
		return sim.ApplyEnemyAdapt()
	default:
		return false
	}
}

// EnemyTurn reports what happened during an enemy turn.
type EnemyTurn struct {
	Mode   Mode        `json:"mode"`
	Action EnemyAction `json:"action"`
	// HeroDamage is the HP the hero actually lost.
	HeroDamage int `json:"hero_damage,omitempty"`
}

// RunEnemyTurn evaluates the enemy mode, selects an action, and resolves it.
//
// A defense fate (resolved in the defense context) lowers incoming attack
// damage by its bonus value, never below zero; an evading fate drops the base
// damage entirely. A mismatched defense fate has no effect. Enemy-side buffs
// still land on top of the reduced damage.
func (s *Simulation) RunEnemyTurn(baseDamage int, defense Fate) (EnemyTurn, bool) {
	if s.outcome != OutcomeNone {
		return EnemyTurn{}, false
	}
	next, mode := s.enemy.Evaluate(s.disposition)
	s.enemy = next

	action := SelectEnemyAction(mode, s, s.rng, baseDamage)
	if action.Kind == EnemyAttack {
		effect, _ := s.resolveFate(defense, ContextDefense)
		if effect.Special == SpecialEvade {
			action.Value = 0
		}
		action.Value = max(0, action.Value-effect.BonusValue)
	}

	hpBefore := s.heroHP
	if !ResolveEnemyAction(action, s) {
		return EnemyTurn{}, false
	}
	return EnemyTurn{Mode: mode, Action: action, HeroDamage: hpBefore - s.heroHP}, true
}
