package disposition

import (
	"sync"
	"testing"
)

func TestStartingDisposition(t *testing.T) {
	tests := []struct {
		world     Zone
		enemy     string
		situation int
		want      int
	}{
		{ZonePrav, EnemyUpyr, 0, -25},
		{ZonePrav, EnemyLeshy, 0, 20},
		{ZoneYav, EnemyWolf, 0, -10},
		{ZoneNav, EnemyUpyr, 0, 15},
		{ZoneNav, "dragon", 0, 0},
		{ZoneYav, EnemyWolf, -5, -15},
		{ZonePrav, EnemyUpyr, -200, -225},
	}
	for _, tt := range tests {
		if got := StartingDisposition(tt.world, tt.enemy, tt.situation); got != tt.want {
			t.Fatalf("StartingDisposition(%s, %s, %d) = %d, want %d", tt.world, tt.enemy, tt.situation, got, tt.want)
		}
	}
}

func TestVulnerabilityRegistryCapsAndDefaults(t *testing.T) {
	reg := NewVulnerabilityRegistry(EnemyVulnerabilityDefinition{
		EnemyType: "golem",
		Modifiers: map[VulnerabilityKey]int{
			{ActionStrike, ZoneNav}:    9,
			{ActionInfluence, ZoneNav}: -12,
			{ActionStrike, ZoneYav}:    4,
		},
	})

	if got := reg.Modifier("golem", ActionStrike, ZoneNav); got != MaxVulnerabilityModifier {
		t.Fatalf("capped modifier = %d, want %d", got, MaxVulnerabilityModifier)
	}
	if got := reg.Modifier("golem", ActionInfluence, ZoneNav); got != -MaxVulnerabilityModifier {
		t.Fatalf("capped negative modifier = %d, want %d", got, -MaxVulnerabilityModifier)
	}
	if got := reg.Modifier("golem", ActionStrike, ZoneYav); got != 4 {
		t.Fatalf("modifier = %d, want 4", got)
	}
	if got := reg.Modifier("golem", ActionStrike, ZonePrav); got != 0 {
		t.Fatalf("unknown zone modifier = %d, want 0", got)
	}
	if got := reg.Modifier("ghost", ActionStrike, ZoneNav); got != 0 {
		t.Fatalf("unknown enemy modifier = %d, want 0", got)
	}

	reg.Set("golem", ActionStrike, ZonePrav, -2)
	if got := reg.Modifier("golem", ActionStrike, ZonePrav); got != -2 {
		t.Fatalf("post-construction modifier = %d, want -2", got)
	}

	var nilRegistry *VulnerabilityRegistry
	if got := nilRegistry.Modifier("golem", ActionStrike, ZoneNav); got != 0 {
		t.Fatalf("nil registry modifier = %d, want 0", got)
	}
}

func TestVulnerabilityRegistryConcurrentAccess(t *testing.T) {
	reg := DefaultVulnerabilities()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.Set("shade", ActionStrike, ZoneNav, i%5)
			_ = reg.Modifier(EnemyUpyr, ActionStrike, ZonePrav)
		}()
	}
	wg.Wait()
	if got := reg.Modifier(EnemyUpyr, ActionStrike, ZonePrav); got != 3 {
		t.Fatalf("upyr strike in prav = %d, want 3", got)
	}
}

func TestResolveKeyword(t *testing.T) {
	tests := []struct {
		name       string
		keyword    Keyword
		ctx        KeywordContext
		match      bool
		multiplier float64
		want       KeywordEffect
	}{
		{"surge physical", KeywordSurge, ContextCombatPhysical, false, 2, KeywordEffect{BonusDamage: 2, Special: SpecialSurge}},
		{"surge physical match", KeywordSurge, ContextCombatPhysical, true, 2, KeywordEffect{BonusDamage: 4, Special: SpecialSurge}},
		{"surge spiritual match x1.5 truncates", KeywordSurge, ContextCombatSpiritual, true, 1.5, KeywordEffect{BonusDamage: 1, Special: SpecialSurge}},
		{"shadow physical match x3", KeywordShadow, ContextCombatPhysical, true, 3, KeywordEffect{BonusDamage: 6, Special: SpecialShadow}},
		{"multiplier clamped to 3", KeywordShadow, ContextCombatPhysical, true, 10, KeywordEffect{BonusDamage: 6, Special: SpecialShadow}},
		{"multiplier clamped to 1", KeywordFocus, ContextCombatPhysical, true, 0.2, KeywordEffect{BonusDamage: 1, Special: SpecialPierce}},
		{"ward defense", KeywordWard, ContextDefense, false, 2, KeywordEffect{BonusValue: 3, Special: SpecialWard}},
		{"ward defense match keeps value", KeywordWard, ContextDefense, true, 2, KeywordEffect{BonusValue: 3, Special: SpecialWard}},
		{"shadow defense evades", KeywordShadow, ContextDefense, false, 2, KeywordEffect{Special: SpecialEvade}},
		{"echo defense is empty", KeywordEcho, ContextDefense, false, 2, KeywordEffect{}},
		{"no keyword", KeywordNone, ContextCombatPhysical, true, 2, KeywordEffect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveKeyword(tt.keyword, tt.ctx, tt.match, tt.multiplier)
			if got != tt.want {
				t.Fatalf("ResolveKeyword() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveKeywordWithAlignment(t *testing.T) {
	if got := ResolveKeywordWithAlignment(KeywordSurge, ContextCombatPhysical, true); got != (KeywordEffect{}) {
		t.Fatalf("mismatched effect = %+v, want zero", got)
	}
	want := KeywordEffect{BonusDamage: 2, Special: SpecialSurge}
	if got := ResolveKeywordWithAlignment(KeywordSurge, ContextCombatPhysical, false); got != want {
		t.Fatalf("aligned effect = %+v, want %+v", got, want)
	}
}

func TestFateAlignment(t *testing.T) {
	tests := []struct {
		suit, zone         Zone
		mismatch, matching bool
	}{
		{ZoneUnknown, ZoneNav, false, false},
		{ZoneYav, ZoneNav, false, false},
		{ZoneYav, ZoneYav, false, true},
		{ZoneNav, ZoneNav, false, true},
		{ZoneNav, ZonePrav, true, false},
		{ZonePrav, ZoneYav, true, false},
	}
	for _, tt := range tests {
		if got := IsMismatch(tt.suit, tt.zone); got != tt.mismatch {
			t.Fatalf("IsMismatch(%s, %s) = %v, want %v", tt.suit, tt.zone, got, tt.mismatch)
		}
		if got := IsMatch(tt.suit, tt.zone); got != tt.matching {
			t.Fatalf("IsMatch(%s, %s) = %v, want %v", tt.suit, tt.zone, got, tt.matching)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, zone := range []Zone{ZoneNav, ZoneYav, ZonePrav} {
		text, err := zone.MarshalText()
		if err != nil {
			t.Fatalf("marshal zone %d: %v", zone, err)
		}
		var got Zone
		if err := got.UnmarshalText(text); err != nil || got != zone {
			t.Fatalf("zone round trip = %v, %v, want %v", got, err, zone)
		}
	}
	var kw Keyword
	if err := kw.UnmarshalText([]byte("thunder")); err == nil {
		t.Fatal("expected unknown keyword error")
	}
}
