package disposition

import "fmt"

// ActionKind is a player action category tracked by the momentum system.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionStrike
	ActionInfluence
	ActionSacrifice
)

var actionNames = map[ActionKind]string{
	ActionNone:      "",
	ActionStrike:    "strike",
	ActionInfluence: "influence",
	ActionSacrifice: "sacrifice",
}

// String returns the wire name of the action.
func (a ActionKind) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a ActionKind) MarshalText() ([]byte, error) {
	name, ok := actionNames[a]
	if !ok {
		return nil, fmt.Errorf("unknown action kind %d", int(a))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *ActionKind) UnmarshalText(text []byte) error {
	for kind, name := range actionNames {
		if name == string(text) {
			*a = kind
			return nil
		}
	}
	return fmt.Errorf("unknown action kind %q", string(text))
}

// attacking reports whether the action moves disposition directly.
func (a ActionKind) attacking() bool {
	return a == ActionStrike || a == ActionInfluence
}

// Zone is the resonance zone a duel takes place in.
type Zone int

const (
	ZoneUnknown Zone = iota
	ZoneNav
	ZoneYav
	ZonePrav
)

var zoneNames = map[Zone]string{
	ZoneUnknown: "",
	ZoneNav:     "nav",
	ZoneYav:     "yav",
	ZonePrav:    "prav",
}

// String returns the wire name of the zone.
func (z Zone) String() string {
	if name, ok := zoneNames[z]; ok {
		return name
	}
	return fmt.Sprintf("zone(%d)", int(z))
}

// Valid reports whether z names one of the three worlds.
func (z Zone) Valid() bool {
	return z == ZoneNav || z == ZoneYav || z == ZonePrav
}

// MarshalText implements encoding.TextMarshaler.
func (z Zone) MarshalText() ([]byte, error) {
	name, ok := zoneNames[z]
	if !ok {
		return nil, fmt.Errorf("unknown zone %d", int(z))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Zone) UnmarshalText(text []byte) error {
	for zone, name := range zoneNames {
		if name == string(text) {
			*z = zone
			return nil
		}
	}
	return fmt.Errorf("unknown zone %q", string(text))
}

// ParseZone parses a zone wire name.
func ParseZone(value string) (Zone, error) {
	var z Zone
	if err := z.UnmarshalText([]byte(value)); err != nil {
		return ZoneUnknown, err
	}
	return z, nil
}

// Keyword is a fate keyword attached to a single action.
type Keyword int

const (
	KeywordNone Keyword = iota
	KeywordSurge
	KeywordFocus
	KeywordEcho
	KeywordShadow
	KeywordWard
)

var keywordNames = map[Keyword]string{
	KeywordNone:   "",
	KeywordSurge:  "surge",
	KeywordFocus:  "focus",
	KeywordEcho:   "echo",
	KeywordShadow: "shadow",
	KeywordWard:   "ward",
}

// String returns the wire name of the keyword.
func (k Keyword) String() string {
	if name, ok := keywordNames[k]; ok {
		return name
	}
	return fmt.Sprintf("keyword(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Keyword) MarshalText() ([]byte, error) {
	name, ok := keywordNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown keyword %d", int(k))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Keyword) UnmarshalText(text []byte) error {
	for keyword, name := range keywordNames {
		if name == string(text) {
			*k = keyword
			return nil
		}
	}
	return fmt.Errorf("unknown keyword %q", string(text))
}

// Outcome is the terminal result of a duel.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeDestroyed
	OutcomeSubjugated
)

var outcomeNames = map[Outcome]string{
	OutcomeNone:       "",
	OutcomeDestroyed:  "destroyed",
	OutcomeSubjugated: "subjugated",
}

// String returns the wire name of the outcome.
func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	name, ok := outcomeNames[o]
	if !ok {
		return nil, fmt.Errorf("unknown outcome %d", int(o))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	for outcome, name := range outcomeNames {
		if name == string(text) {
			*o = outcome
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", string(text))
}

// Phase tracks whose half of the round is active.
type Phase int

const (
	PhasePlayer Phase = iota
	PhaseEnemy
)

var phaseNames = map[Phase]string{
	PhasePlayer: "player",
	PhaseEnemy:  "enemy",
}

// String returns the wire name of the phase.
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	name, ok := phaseNames[p]
	if !ok {
		return nil, fmt.Errorf("unknown phase %d", int(p))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Phase) UnmarshalText(text []byte) error {
	for phase, name := range phaseNames {
		if name == string(text) {
			*p = phase
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", string(text))
}

// Card is a playable card in the hero's hand.
type Card struct {
	ID    string `json:"id"`
	Cost  int    `json:"cost"`
	Power int    `json:"power"`
}

// Fate is the fate draw accompanying an action.
type Fate struct {
	Keyword  Keyword `json:"keyword,omitempty"`
	Modifier int     `json:"modifier,omitempty"`
	// Suit is the world the fate card belongs to; ZoneUnknown means unaligned.
	Suit Zone `json:"suit,omitempty"`
}

// NoFate is an action without a fate draw.
var NoFate = Fate{}

// WithKeyword returns a fate carrying only a keyword.
func WithKeyword(k Keyword) Fate {
	return Fate{Keyword: k}
}
