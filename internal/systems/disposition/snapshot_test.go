package disposition

import (
	"encoding/json"
	"errors"
	"testing"
)

func playedSim(t *testing.T) *Simulation {
	t.Helper()
	sim := newTestSim(t, func(c *Config) {
		c.Zone = ZonePrav
		c.EnemyType = EnemyUpyr
		c.Seed = 1234
	})
	sim.PlayStrike("a", "upyr-1", Fate{Keyword: KeywordSurge, Suit: ZonePrav})
	sim.PlayEcho(1)
	sim.ApplyEnemyDefend(3)
	sim.PlayCardAsSacrifice("b")
	sim.EndPlayerTurn()
	sim.RunEnemyTurn(3, WithKeyword(KeywordWard))
	sim.BeginPlayerTurn()
	return sim
}

func mutateJSON(t *testing.T, data []byte, fn func(map[string]json.RawMessage)) []byte {
	t.Helper()
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	fn(fields)
	out, err := json.Marshal(fields)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return out
}

func encoded(t *testing.T, sim *Simulation) []byte {
	t.Helper()
	data, err := EncodeSnapshot(Capture(sim))
	if err != nil {
		t.Fatalf("EncodeSnapshot() error = %v", err)
	}
	return data
}

func TestSnapshotRoundTrip(t *testing.T) {
	sim := playedSim(t)
	snap := Capture(sim)
	data := encoded(t, sim)
	decoded, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}
	if !decoded.Equal(snap) {
		t.Fatalf("decoded = %+v, want %+v", decoded, snap)
	}
	if decoded.RNGState != sim.RNGState() {
		t.Fatalf("rng state = %d, want %d", decoded.RNGState, sim.RNGState())
	}
}

func TestRestoreContinuesIdentically(t *testing.T) {
	sim := playedSim(t)
	decoded, err := DecodeSnapshot(encoded(t, sim))
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}
	restored, err := decoded.Restore()
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	script := []Intent{
		{Kind: IntentStrike, CardID: "c", Fate: WithKeyword(KeywordFocus)},
		{Kind: IntentSacrifice, CardID: "d"},
		{Kind: IntentEndTurn},
		{Kind: IntentEnemyTurn},
		{Kind: IntentBeginTurn},
		{Kind: IntentInfluence, CardID: "e", Fate: Fate{Modifier: 2}},
	}
	for i, in := range script {
		a, b := in.Apply(sim), in.Apply(restored)
		if a.Accepted != b.Accepted {
			t.Fatalf("step %d accepted = %v vs %v", i, a.Accepted, b.Accepted)
		}
		if !Capture(sim).Equal(Capture(restored)) {
			t.Fatalf("step %d diverged:\noriginal %+v\nrestored %+v", i, Capture(sim), Capture(restored))
		}
	}
}

func TestDecodeSnapshotRejectsTruncatedPayloads(t *testing.T) {
	data := encoded(t, playedSim(t))
	for _, n := range []int{0, 1, len(data) / 3, len(data) / 2, len(data) - 1} {
		if _, err := DecodeSnapshot(data[:n]); !errors.Is(err, ErrSnapshotCorrupt) {
			t.Fatalf("truncated to %d: error = %v, want ErrSnapshotCorrupt", n, err)
		}
	}
}

func TestDecodeSnapshotRequiresKeys(t *testing.T) {
	data := encoded(t, playedSim(t))
	for _, key := range RequiredSnapshotKeys {
		t.Run(key, func(t *testing.T) {
			partial := mutateJSON(t, data, func(m map[string]json.RawMessage) { delete(m, key) })
			if _, err := DecodeSnapshot(partial); !errors.Is(err, ErrSnapshotMissingKey) {
				t.Fatalf("error = %v, want ErrSnapshotMissingKey", err)
			}
		})
	}
}

func TestDecodeSnapshotIgnoresUnknownKeys(t *testing.T) {
	sim := playedSim(t)
	data := mutateJSON(t, encoded(t, sim), func(m map[string]json.RawMessage) {
		m["weather"] = json.RawMessage(`"storm"`)
	})
	decoded, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}
	if !decoded.Equal(Capture(sim)) {
		t.Fatal("unknown key changed the snapshot")
	}
}

func TestDecodeLegacySnapshot(t *testing.T) {
	sim := newTestSim(t, func(c *Config) { c.Seed = 99 })
	sim.PlayStrike("a", "", WithKeyword(KeywordFocus))
	data := mutateJSON(t, encoded(t, sim), func(m map[string]json.RawMessage) {
		for _, key := range []string{
			"enemy_survival_threshold", "enemy_desperation_threshold", "enemy_band",
			"enemy_mode", "enemy_last_disposition", "match_multiplier", "last_fate_keyword", "turn",
		} {
			delete(m, key)
		}
	})
	decoded, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}
	survival, desperation := DeriveModeThresholds(99)
	if decoded.EnemySurvivalThreshold != survival || decoded.EnemyDesperationThreshold != desperation {
		t.Fatalf("thresholds = %d/%d, want %d/%d", decoded.EnemySurvivalThreshold, decoded.EnemyDesperationThreshold, survival, desperation)
	}
	if decoded.LastFateKeyword != KeywordNone {
		t.Fatalf("last keyword = %s, want none", decoded.LastFateKeyword)
	}
	restored, err := decoded.Restore()
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if restored.MatchMultiplier() != DefaultMatchMultiplier || restored.Turn() != 1 {
		t.Fatalf("multiplier, turn = %v, %d, want %v, 1", restored.MatchMultiplier(), restored.Turn(), DefaultMatchMultiplier)
	}
	if restored.Disposition() != sim.Disposition() || restored.RNGState() != sim.RNGState() {
		t.Fatal("legacy restore lost core state")
	}
}

func TestDecodeSnapshotValidates(t *testing.T) {
	data := encoded(t, playedSim(t))
	tests := []struct {
		name  string
		key   string
		value string
		want  error
	}{
		{"future version", "schema_version", `2`, ErrSnapshotVersion},
		{"disposition out of range", "disposition", `150`, ErrSnapshotInvalid},
		{"zero rng state", "rng_state", `0`, ErrSnapshotInvalid},
		{"negative energy", "energy", `-1`, ErrSnapshotInvalid},
		{"hp above max", "hero_hp", `999`, ErrSnapshotInvalid},
		{"unknown zone", "resonance_zone", `"asgard"`, ErrSnapshotCorrupt},
		{"empty zone", "resonance_zone", `""`, ErrSnapshotInvalid},
		{"outcome without endpoint", "outcome", `"destroyed"`, ErrSnapshotInvalid},
		{"card in two piles", "discard_pile", `[{"id":"e","cost":1,"power":5}]`, ErrSnapshotInvalid},
		{"wrong type", "energy", `"lots"`, ErrSnapshotCorrupt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := mutateJSON(t, data, func(m map[string]json.RawMessage) { m[tt.key] = json.RawMessage(tt.value) })
			if _, err := DecodeSnapshot(bad); !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSnapshotEqualTreatsEmptyPilesAsNil(t *testing.T) {
	a := Capture(newTestSim(t))
	b := a
	b.DiscardPile = []Card{}
	if !a.Equal(b) {
		t.Fatal("empty and nil piles compared unequal")
	}
	b.Disposition++
	if a.Equal(b) {
		t.Fatal("different dispositions compared equal")
	}
}

func TestRestoreWithOptions(t *testing.T) {
	sim := newTestSim(t)
	reg := NewVulnerabilityRegistry()
	reg.Set(EnemyWolf, ActionStrike, ZoneYav, 2)
	restored, err := Capture(sim).Restore(WithVulnerabilities(reg))
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	restored.PlayStrike("a", "", NoFate)
	if restored.Disposition() != -7 {
		t.Fatalf("disposition = %d, want -7", restored.Disposition())
	}
}
