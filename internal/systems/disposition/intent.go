package disposition

import "fmt"

// IntentKind names a journaled simulation command.
type IntentKind int

const (
	IntentUnknown IntentKind = iota
	IntentStrike
	IntentInfluence
	IntentSacrifice
	IntentEcho
	IntentEnemyTurn
	IntentEndTurn
	IntentBeginTurn
)

var intentNames = map[IntentKind]string{
	IntentUnknown:   "",
	IntentStrike:    "strike",
	IntentInfluence: "influence",
	IntentSacrifice: "sacrifice",
	IntentEcho:      "echo",
	IntentEnemyTurn: "enemy_turn",
	IntentEndTurn:   "end_turn",
	IntentBeginTurn: "begin_turn",
}

// String returns the wire name of the intent.
func (k IntentKind) String() string {
	if name, ok := intentNames[k]; ok {
		return name
	}
	return fmt.Sprintf("intent(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k IntentKind) MarshalText() ([]byte, error) {
	name, ok := intentNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown intent kind %d", int(k))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *IntentKind) UnmarshalText(text []byte) error {
	parsed, err := ParseIntentKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseIntentKind resolves a wire name to an intent kind.
func ParseIntentKind(name string) (IntentKind, error) {
	for kind, n := range intentNames {
		if kind != IntentUnknown && n == name {
			return kind, nil
		}
	}
	return IntentUnknown, fmt.Errorf("unknown intent kind %q", name)
}

// Intent is one command against a simulation. Journals of intents replay
// deterministically on top of a snapshot.
type Intent struct {
	Kind     IntentKind `json:"kind"`
	CardID   string     `json:"card_id,omitempty"`
	TargetID string     `json:"target_id,omitempty"`
	Fate     Fate       `json:"fate,omitzero"`
	// BaseDamage applies to enemy_turn; zero means DefaultEnemyBaseDamage.
	BaseDamage int `json:"base_damage,omitempty"`
}

// IntentResult is what applying an intent produced.
type IntentResult struct {
	Accepted  bool       `json:"accepted"`
	EnemyTurn *EnemyTurn `json:"enemy_turn,omitempty"`
}

// Apply runs the intent against sim. For echo intents only the fate modifier
// is used.
func (in Intent) Apply(sim *Simulation) IntentResult {
	if sim == nil {
		return IntentResult{}
	}
	switch in.Kind {
	case IntentStrike:
		return IntentResult{Accepted: sim.PlayStrike(in.CardID, in.TargetID, in.Fate)}
	case IntentInfluence:
		return IntentResult{Accepted: sim.PlayInfluence(in.CardID, in.Fate)}
	case IntentSacrifice:
		return IntentResult{Accepted: sim.PlayCardAsSacrifice(in.CardID)}
	case IntentEcho:
		return IntentResult{Accepted: sim.PlayEcho(in.Fate.Modifier)}
	case IntentEnemyTurn:
		damage := in.BaseDamage
		if damage == 0 {
			damage = DefaultEnemyBaseDamage
		}
		turn, ok := sim.RunEnemyTurn(damage, in.Fate)
		if !ok {
			return IntentResult{}
		}
		return IntentResult{Accepted: true, EnemyTurn: &turn}
	case IntentEndTurn:
		return IntentResult{Accepted: sim.EndPlayerTurn()}
	case IntentBeginTurn:
		return IntentResult{Accepted: sim.BeginPlayerTurn()}
	default:
		return IntentResult{}
	}
}

// ApplyAll applies intents in order and returns how many were accepted.
func ApplyAll(sim *Simulation, intents []Intent) int {
	accepted := 0
	for _, in := range intents {
		if in.Apply(sim).Accepted {
			accepted++
		}
	}
	return accepted
}
