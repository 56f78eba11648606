package disposition

import (
	"errors"
	"math"
	"testing"
)

func testHand() []Card {
	return []Card{
		{ID: "a", Cost: 1, Power: 5},
		{ID: "b", Cost: 1, Power: 5},
		{ID: "c", Cost: 1, Power: 5},
		{ID: "d", Cost: 1, Power: 5},
		{ID: "e", Cost: 1, Power: 5},
	}
}

func newTestSim(t *testing.T, mutate ...func(*Config)) *Simulation {
	t.Helper()
	cfg := Config{
		Hand:           testHand(),
		Energy:         3,
		StartingEnergy: 3,
		HeroHP:         20,
		HeroMaxHP:      20,
		Zone:           ZoneYav,
		EnemyType:      EnemyWolf,
		Seed:           42,
	}
	for _, m := range mutate {
		m(&cfg)
	}
	sim, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return sim
}

func assertUnchanged(t *testing.T, sim *Simulation, before Snapshot) {
	t.Helper()
	if after := Capture(sim); !after.Equal(before) {
		t.Fatalf("state mutated on rejection:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestNewValidatesConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing zone", func(c *Config) { c.Zone = ZoneUnknown }},
		{"zero max hp", func(c *Config) { c.HeroMaxHP = 0 }},
		{"hp above max", func(c *Config) { c.HeroHP = 21 }},
		{"negative energy", func(c *Config) { c.Energy = -1 }},
		{"duplicate card", func(c *Config) { c.Hand = append(c.Hand, Card{ID: "a", Cost: 1, Power: 1}) }},
		{"empty card id", func(c *Config) { c.Hand = []Card{{Cost: 1, Power: 1}} }},
		{"negative power", func(c *Config) { c.Hand = []Card{{ID: "x", Cost: 1, Power: -1}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Hand: testHand(), Energy: 3, StartingEnergy: 3, HeroHP: 20, HeroMaxHP: 20, Zone: ZoneYav}
			tt.mutate(&cfg)
			if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("New() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestNewClampsDisposition(t *testing.T) {
	sim := newTestSim(t, func(c *Config) { c.Disposition = -250 })
	if sim.Disposition() != MinDisposition {
		t.Fatalf("disposition = %d, want %d", sim.Disposition(), MinDisposition)
	}
	if sim.Outcome() != OutcomeDestroyed {
		t.Fatalf("outcome = %s, want destroyed", sim.Outcome())
	}
}

func TestNewFromAffinity(t *testing.T) {
	sim, err := NewFromAffinity(Config{
		Hand: testHand(), Energy: 3, StartingEnergy: 3, HeroHP: 20, HeroMaxHP: 20,
		Zone: ZonePrav, EnemyType: EnemyUpyr, Seed: 7, Disposition: 99,
	}, -5)
	if err != nil {
		t.Fatalf("NewFromAffinity() error = %v", err)
	}
	if sim.Disposition() != -30 {
		t.Fatalf("disposition = %d, want -30", sim.Disposition())
	}
}

func TestStrikeClampsToDestroyed(t *testing.T) {
	sim := newTestSim(t, func(c *Config) {
		c.Disposition = -95
		c.Hand = []Card{{ID: "blade", Cost: 1, Power: 10}, {ID: "spare", Cost: 0, Power: 1}}
	})
	if !sim.PlayStrike("blade", "enemy-1", NoFate) {
		t.Fatal("strike rejected")
	}
	if sim.Disposition() != -100 {
		t.Fatalf("disposition = %d, want -100", sim.Disposition())
	}
	if sim.Outcome() != OutcomeDestroyed {
		t.Fatalf("outcome = %s, want destroyed", sim.Outcome())
	}

	before := Capture(sim)
	if sim.PlayInfluence("spare", NoFate) {
		t.Fatal("influence accepted after outcome")
	}
	if sim.PlayStrike("spare", "", NoFate) || sim.PlayCardAsSacrifice("spare") || sim.PlayEcho(0) {
		t.Fatal("action accepted after outcome")
	}
	if sim.ApplyEnemyAttack(3) || sim.ApplyEnemyDefend(3) || sim.ApplyEnemyProvoke(3) || sim.ApplyEnemyAdapt() {
		t.Fatal("enemy action accepted after outcome")
	}
	if sim.EndPlayerTurn() || sim.BeginPlayerTurn() {
		t.Fatal("turn boundary accepted after outcome")
	}
	assertUnchanged(t, sim, before)
}

func TestInfluenceReachesSubjugated(t *testing.T) {
	sim := newTestSim(t, func(c *Config) { c.Disposition = 97 })
	if !sim.PlayInfluence("a", NoFate) {
		t.Fatal("influence rejected")
	}
	if sim.Disposition() != 100 || sim.Outcome() != OutcomeSubjugated {
		t.Fatalf("disposition, outcome = %d, %s, want 100, subjugated", sim.Disposition(), sim.Outcome())
	}
	if !sim.IsOver() {
		t.Fatal("IsOver() = false, want true")
	}
}

func TestEnergyExhaustionEndsTurn(t *testing.T) {
	sim := newTestSim(t, func(c *Config) {
		c.Energy = 2
		c.Hand = []Card{{ID: "heavy", Cost: 2, Power: 4}, {ID: "light", Cost: 1, Power: 2}}
	})
	if !sim.PlayStrike("heavy", "", NoFate) {
		t.Fatal("strike rejected")
	}
	if sim.Energy() != 0 || !sim.IsAutoTurnEnd() {
		t.Fatalf("energy = %d, auto end = %v, want 0, true", sim.Energy(), sim.IsAutoTurnEnd())
	}
	before := Capture(sim)
	if sim.PlayStrike("light", "", NoFate) {
		t.Fatal("second strike accepted without energy")
	}
	assertUnchanged(t, sim, before)
}

func TestUnknownCardRejected(t *testing.T) {
	sim := newTestSim(t)
	before := Capture(sim)
	if sim.PlayStrike("missing", "", NoFate) || sim.PlayInfluence("missing", NoFate) || sim.PlayCardAsSacrifice("missing") {
		t.Fatal("unknown card accepted")
	}
	assertUnchanged(t, sim, before)
}

func TestStreakAndThreatBonus(t *testing.T) {
	sim := newTestSim(t)
	sim.PlayStrike("a", "", NoFate)
	sim.PlayStrike("b", "", NoFate)
	if sim.Disposition() != -11 || sim.StreakCount() != 2 {
		t.Fatalf("disposition, streak = %d, %d, want -11, 2", sim.Disposition(), sim.StreakCount())
	}
	sim.PlayInfluence("c", NoFate)
	if sim.Disposition() != -4 {
		t.Fatalf("disposition = %d, want -4", sim.Disposition())
	}
	if sim.StreakType() != ActionInfluence || sim.StreakCount() != 1 {
		t.Fatalf("streak = %s x%d, want influence x1", sim.StreakType(), sim.StreakCount())
	}
}

func TestStreakSurvivesTurnBoundary(t *testing.T) {
	sim := newTestSim(t)
	sim.PlayStrike("a", "", NoFate)
	if !sim.EndPlayerTurn() || sim.Phase() != PhaseEnemy {
		t.Fatal("end turn did not move to enemy phase")
	}
	if !sim.BeginPlayerTurn() || sim.Phase() != PhasePlayer || sim.Turn() != 2 {
		t.Fatalf("phase, turn = %s, %d, want player, 2", sim.Phase(), sim.Turn())
	}
	sim.PlayStrike("b", "", NoFate)
	if sim.StreakCount() != 2 {
		t.Fatalf("streak = %d, want 2", sim.StreakCount())
	}
}

func TestBeginPlayerTurnResetsEnergyAndSacrifice(t *testing.T) {
	sim := newTestSim(t, func(c *Config) { c.Energy = 1 })
	sim.PlayCardAsSacrifice("a")
	sim.PlayStrike("b", "", NoFate)
	sim.BeginPlayerTurn()
	if sim.Energy() != sim.StartingEnergy() || sim.SacrificeUsedThisTurn() {
		t.Fatalf("energy, sacrifice used = %d, %v, want %d, false", sim.Energy(), sim.SacrificeUsedThisTurn(), sim.StartingEnergy())
	}
	sim.BeginPlayerTurn()
	if sim.Energy() != sim.StartingEnergy() {
		t.Fatalf("energy = %d, want %d", sim.Energy(), sim.StartingEnergy())
	}
}

func TestSacrificeEnergyByZone(t *testing.T) {
	tests := []struct {
		zone Zone
		want int
	}{
		{ZoneNav, 3},
		{ZoneYav, 2},
	}
	for _, tt := range tests {
		t.Run(tt.zone.String(), func(t *testing.T) {
			sim := newTestSim(t, func(c *Config) {
				c.Zone = tt.zone
				c.Hand = []Card{{ID: "relic", Cost: 2, Power: 3}, {ID: "other", Cost: 1, Power: 1}}
			})
			if !sim.PlayCardAsSacrifice("relic") {
				t.Fatal("sacrifice rejected")
			}
			if sim.Energy() != tt.want {
				t.Fatalf("energy = %d, want %d", sim.Energy(), tt.want)
			}
			if sim.EnemySacrificeBuff() != 1 {
				t.Fatalf("enemy buff = %d, want 1", sim.EnemySacrificeBuff())
			}
			if got := sim.ExhaustPile(); len(got) != 1 || got[0].ID != "relic" {
				t.Fatalf("exhaust = %v, want [relic]", got)
			}
			if sim.StreakType() != ActionSacrifice || sim.StreakCount() != 1 {
				t.Fatalf("streak = %s x%d, want sacrifice x1", sim.StreakType(), sim.StreakCount())
			}
		})
	}
}

func TestSacrificeOncePerTurn(t *testing.T) {
	sim := newTestSim(t)
	if !sim.PlayCardAsSacrifice("a") {
		t.Fatal("first sacrifice rejected")
	}
	before := Capture(sim)
	if sim.PlayCardAsSacrifice("b") {
		t.Fatal("second sacrifice accepted in one turn")
	}
	assertUnchanged(t, sim, before)
	sim.EndPlayerTurn()
	sim.BeginPlayerTurn()
	if !sim.PlayCardAsSacrifice("b") {
		t.Fatal("sacrifice rejected on new turn")
	}
	if sim.EnemySacrificeBuff() != 2 {
		t.Fatalf("enemy buff = %d, want 2", sim.EnemySacrificeBuff())
	}
}

func TestSacrificeRejectedWithoutEnergy(t *testing.T) {
	sim := newTestSim(t, func(c *Config) {
		c.Energy = 1
		c.Hand = []Card{{ID: "relic", Cost: 2, Power: 3}}
	})
	before := Capture(sim)
	if sim.PlayCardAsSacrifice("relic") {
		t.Fatal("sacrifice accepted without energy")
	}
	assertUnchanged(t, sim, before)
}

func TestPravSacrificeConservesCards(t *testing.T) {
	sawExtra := false
	for seed := uint64(1); seed <= 40; seed++ {
		sim := newTestSim(t, func(c *Config) {
			c.Zone = ZonePrav
			c.Seed = seed
		})
		if !sim.PlayCardAsSacrifice("a") {
			t.Fatalf("seed %d: sacrifice rejected", seed)
		}
		total := len(sim.Hand()) + len(sim.DiscardPile()) + len(sim.ExhaustPile())
		if total != 5 {
			t.Fatalf("seed %d: card total = %d, want 5", seed, total)
		}
		switch len(sim.ExhaustPile()) {
		case 1:
		case 2:
			sawExtra = true
		default:
			t.Fatalf("seed %d: exhaust = %d cards, want 1 or 2", seed, len(sim.ExhaustPile()))
		}

		twin := newTestSim(t, func(c *Config) {
			c.Zone = ZonePrav
			c.Seed = seed
		})
		twin.PlayCardAsSacrifice("a")
		if !Capture(twin).Equal(Capture(sim)) {
			t.Fatalf("seed %d: sacrifice not deterministic", seed)
		}
	}
	if !sawExtra {
		t.Fatal("no seed exhausted an extra card")
	}
}

func TestEcho(t *testing.T) {
	sim := newTestSim(t)
	sim.PlayStrike("a", "wolf-1", NoFate)
	energy, hand := sim.Energy(), len(sim.Hand())
	if !sim.PlayEcho(0) {
		t.Fatal("echo rejected")
	}
	if sim.Disposition() != -11 {
		t.Fatalf("disposition = %d, want -11", sim.Disposition())
	}
	if sim.Energy() != energy || len(sim.Hand()) != hand {
		t.Fatalf("echo spent resources: energy %d hand %d", sim.Energy(), len(sim.Hand()))
	}
	if sim.StreakCount() != 2 || !sim.EchoUsedThisAction() || sim.LastTargetID() != "wolf-1" {
		t.Fatalf("streak %d, echo used %v, target %q", sim.StreakCount(), sim.EchoUsedThisAction(), sim.LastTargetID())
	}
	before := Capture(sim)
	if sim.PlayEcho(0) {
		t.Fatal("echo of an echo accepted")
	}
	assertUnchanged(t, sim, before)

	sim.PlayStrike("b", "", NoFate)
	if !sim.PlayEcho(1) {
		t.Fatal("echo after a new card rejected")
	}
	if sim.LastFateModifier() != 1 {
		t.Fatalf("last fate modifier = %d, want 1", sim.LastFateModifier())
	}
}

func TestStrikeWithHugePowerSaturates(t *testing.T) {
	sim := newTestSim(t, func(c *Config) {
		c.Hand = []Card{{ID: "huge", Cost: 1, Power: math.MaxInt}, {ID: "a", Cost: 1, Power: 5}}
	})
	if !sim.PlayStrike("huge", "", NoFate) {
		t.Fatal("strike rejected")
	}
	if sim.Disposition() != -MaxEffectivePower {
		t.Fatalf("disposition = %d, want %d", sim.Disposition(), -MaxEffectivePower)
	}
	if sim.LastEffectivePower() != MaxEffectivePower {
		t.Fatalf("last effective power = %d, want %d", sim.LastEffectivePower(), MaxEffectivePower)
	}
	if !sim.PlayEcho(math.MaxInt) {
		t.Fatal("echo rejected")
	}
	if sim.Disposition() != -2*MaxEffectivePower {
		t.Fatalf("echoed disposition = %d, want %d", sim.Disposition(), -2*MaxEffectivePower)
	}
}

func TestEchoRejections(t *testing.T) {
	sim := newTestSim(t)
	before := Capture(sim)
	if sim.PlayEcho(0) {
		t.Fatal("echo with no prior action accepted")
	}
	assertUnchanged(t, sim, before)

	sim.PlayStrike("a", "", NoFate)
	sim.PlayCardAsSacrifice("b")
	before = Capture(sim)
	if sim.PlayEcho(0) {
		t.Fatal("echo after sacrifice accepted")
	}
	assertUnchanged(t, sim, before)
}

func TestPravStrikeBacklash(t *testing.T) {
	sim := newTestSim(t, func(c *Config) { c.Zone = ZonePrav })
	sim.PlayStrike("a", "", NoFate)
	if sim.HeroHP() != 19 {
		t.Fatalf("hero hp = %d, want 19", sim.HeroHP())
	}
	sim.PlayStrike("b", "", WithKeyword(KeywordWard))
	if sim.HeroHP() != 19 {
		t.Fatalf("warded hero hp = %d, want 19", sim.HeroHP())
	}
	if !sim.PlayEcho(0) {
		t.Fatal("echo of warded strike rejected")
	}
	if sim.HeroHP() != 19 {
		t.Fatalf("echoed warded hero hp = %d, want 19", sim.HeroHP())
	}
	sim.PlayInfluence("c", NoFate)
	if sim.HeroHP() != 19 {
		t.Fatalf("influence hero hp = %d, want 19", sim.HeroHP())
	}
}

func TestVulnerabilityApplied(t *testing.T) {
	sim := newTestSim(t, func(c *Config) {
		c.Zone = ZonePrav
		c.EnemyType = EnemyUpyr
	})
	sim.PlayStrike("a", "", NoFate)
	if sim.Disposition() != -8 {
		t.Fatalf("disposition = %d, want -8", sim.Disposition())
	}

	reg := NewVulnerabilityRegistry()
	reg.Set(EnemyWolf, ActionStrike, ZoneYav, 4)
	custom, err := New(Config{Hand: testHand(), Energy: 3, StartingEnergy: 3, HeroHP: 20, HeroMaxHP: 20, Zone: ZoneYav, EnemyType: EnemyWolf}, WithVulnerabilities(reg))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	custom.PlayStrike("a", "", NoFate)
	if custom.Disposition() != -9 {
		t.Fatalf("custom registry disposition = %d, want -9", custom.Disposition())
	}
}

func TestFateAlignmentInPlay(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		fate Fate
		want int
	}{
		{"matched surge doubles bonus", nil, Fate{Keyword: KeywordSurge, Suit: ZoneNav}, -13},
		{"matched surge tripled", []Option{WithMatchMultiplier(3)}, Fate{Keyword: KeywordSurge, Suit: ZoneNav}, -15},
		{"unaligned surge", nil, WithKeyword(KeywordSurge), -11},
		{"yav suit never mismatches", nil, Fate{Keyword: KeywordSurge, Suit: ZoneYav}, -11},
		{"mismatched surge is nullified", nil, Fate{Keyword: KeywordSurge, Suit: ZonePrav}, -7},
		{"plain modifier", nil, Fate{Modifier: -3}, -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, err := New(Config{
				Hand: testHand(), Energy: 3, StartingEnergy: 3, HeroHP: 20, HeroMaxHP: 20,
				Zone: ZoneNav, EnemyType: EnemyWolf,
			}, tt.opts...)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			sim.PlayStrike("a", "", tt.fate)
			if sim.Disposition() != tt.want {
				t.Fatalf("disposition = %d, want %d", sim.Disposition(), tt.want)
			}
		})
	}
}

func TestMismatchedFateClearsKeyword(t *testing.T) {
	sim := newTestSim(t)
	sim.PlayStrike("a", "", Fate{Keyword: KeywordShadow, Suit: ZoneNav})
	if sim.LastKeyword() != KeywordNone {
		t.Fatalf("last keyword = %s, want none", sim.LastKeyword())
	}
}

func TestDefendConsumedByStrikeOnly(t *testing.T) {
	sim := newTestSim(t)
	sim.ApplyEnemyDefend(3)
	sim.PlayInfluence("a", NoFate)
	if sim.Disposition() != 5 || sim.DefendReduction() != 3 {
		t.Fatalf("disposition, defend = %d, %d, want 5, 3", sim.Disposition(), sim.DefendReduction())
	}
	sim.PlayStrike("b", "", NoFate)
	if sim.Disposition() != 3 || sim.DefendReduction() != 0 {
		t.Fatalf("disposition, defend = %d, %d, want 3, 0", sim.Disposition(), sim.DefendReduction())
	}
}

func TestProvokeConsumedByInfluenceOnly(t *testing.T) {
	sim := newTestSim(t)
	sim.ApplyEnemyProvoke(4)
	sim.PlayStrike("a", "", NoFate)
	if sim.ProvokePenalty() != 4 {
		t.Fatalf("provoke = %d, want 4", sim.ProvokePenalty())
	}
	sim.PlayInfluence("b", NoFate)
	if sim.Disposition() != -2 || sim.ProvokePenalty() != 0 {
		t.Fatalf("disposition, provoke = %d, %d, want -2, 0", sim.Disposition(), sim.ProvokePenalty())
	}
}

func TestFocusPiercesDefendWhenHostile(t *testing.T) {
	sim := newTestSim(t, func(c *Config) { c.Disposition = -40 })
	sim.ApplyEnemyDefend(3)
	sim.PlayStrike("a", "", WithKeyword(KeywordFocus))
	if sim.Disposition() != -46 {
		t.Fatalf("disposition = %d, want -46", sim.Disposition())
	}
	if sim.DefendReduction() != 0 {
		t.Fatalf("defend = %d, want consumed", sim.DefendReduction())
	}
}

func TestShadowSlipsDefendWhenFriendly(t *testing.T) {
	sim := newTestSim(t, func(c *Config) { c.Disposition = 40 })
	sim.ApplyEnemyDefend(3)
	sim.PlayStrike("a", "", WithKeyword(KeywordShadow))
	if sim.Disposition() != 33 {
		t.Fatalf("disposition = %d, want 33", sim.Disposition())
	}
}

func TestAdaptIsSoftBlock(t *testing.T) {
	sim := newTestSim(t)
	if !sim.ApplyEnemyAdapt() || sim.AdaptPenalty() != MinAdaptPenalty {
		t.Fatalf("adapt penalty = %d, want %d", sim.AdaptPenalty(), MinAdaptPenalty)
	}
	if !sim.PlayInfluence("a", NoFate) {
		t.Fatal("influence hard-rejected under adapt")
	}
	if sim.Disposition() != 2 || sim.AdaptPenalty() != 0 {
		t.Fatalf("disposition, adapt = %d, %d, want 2, 0", sim.Disposition(), sim.AdaptPenalty())
	}
}

func TestAdaptScalesWithStreak(t *testing.T) {
	sim := newTestSim(t, func(c *Config) { c.Energy = 10 })
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		sim.PlayInfluence(id, NoFate)
	}
	sim.ApplyEnemyAdapt()
	if sim.AdaptPenalty() != 4 {
		t.Fatalf("adapt penalty = %d, want 4", sim.AdaptPenalty())
	}
}

func TestEnemyAttackDamage(t *testing.T) {
	sim := newTestSim(t)
	sim.PlayCardAsSacrifice("a")
	sim.ApplyEnemyAttack(3)
	if sim.HeroHP() != 16 {
		t.Fatalf("hero hp = %d, want 16", sim.HeroHP())
	}
	sim.ApplyEnemyAttack(50)
	if sim.HeroHP() != 0 || !sim.HeroDefeated() {
		t.Fatalf("hero hp = %d, defeated = %v, want 0, true", sim.HeroHP(), sim.HeroDefeated())
	}
	if sim.IsOver() {
		t.Fatal("hero defeat set a disposition outcome")
	}

	sim = newTestSim(t)
	sim.PlayCardAsSacrifice("a")
	sim.ApplyEnemyAttack(math.MaxInt)
	if sim.HeroHP() != 0 {
		t.Fatalf("hero hp after max damage = %d, want 0", sim.HeroHP())
	}
}

func TestPleaBacklash(t *testing.T) {
	sim := newTestSim(t, func(c *Config) { c.Disposition = 40 })
	sim.PlayStrike("a", "", NoFate)
	if sim.PleaBacklash() != PleaBacklashValue {
		t.Fatalf("plea backlash = %d, want %d", sim.PleaBacklash(), PleaBacklashValue)
	}
	sim.ApplyEnemyAttack(3)
	if sim.HeroHP() != 15 || sim.PleaBacklash() != 0 {
		t.Fatalf("hero hp, backlash = %d, %d, want 15, 0", sim.HeroHP(), sim.PleaBacklash())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	sim := newTestSim(t, func(c *Config) { c.Zone = ZonePrav })
	clone := sim.Clone()
	sim.PlayStrike("a", "", NoFate)
	sim.PlayCardAsSacrifice("b")
	if len(clone.Hand()) != 5 || clone.Disposition() != 0 || clone.EnemySacrificeBuff() != 0 {
		t.Fatalf("clone changed with original: hand %d disposition %d", len(clone.Hand()), clone.Disposition())
	}
	if !Capture(clone).Equal(Capture(newTestSim(t, func(c *Config) { c.Zone = ZonePrav }))) {
		t.Fatal("clone diverged from a fresh simulation")
	}
}
