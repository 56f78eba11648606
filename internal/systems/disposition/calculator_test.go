package disposition

import (
	"math"
	"testing"
)

func TestCalculatePowerSurgeAppliesOnlyToBase(t *testing.T) {
	got := EffectivePower(PowerInput{
		BasePower:        6,
		StreakCount:      4,
		PriorStreakType:  ActionStrike,
		PriorStreakCount: 3,
		LastAction:       ActionStrike,
		Action:           ActionStrike,
		Keyword:          KeywordSurge,
		Zone:             ZoneYav,
	})
	if got != 12 {
		t.Fatalf("effective power = %d, want 12", got)
	}
}

func TestCalculatePowerTerms(t *testing.T) {
	tests := []struct {
		name string
		in   PowerInput
		want PowerBreakdown
	}{
		{
			name: "plain strike",
			in:   PowerInput{BasePower: 5, StreakCount: 1, Action: ActionStrike, Zone: ZoneYav},
			want: PowerBreakdown{Base: 5, Raw: 5, Effective: 5},
		},
		{
			name: "threat bonus on influence after strike",
			in: PowerInput{
				BasePower: 4, StreakCount: 1, PriorStreakType: ActionStrike, PriorStreakCount: 1,
				LastAction: ActionStrike, Action: ActionInfluence, Zone: ZoneYav,
			},
			want: PowerBreakdown{Base: 4, ThreatBonus: 2, Raw: 6, Effective: 6},
		},
		{
			name: "switch penalty from long streak",
			in: PowerInput{
				BasePower: 5, StreakCount: 1, PriorStreakType: ActionInfluence, PriorStreakCount: 5,
				LastAction: ActionInfluence, Action: ActionStrike, Zone: ZoneYav,
			},
			want: PowerBreakdown{Base: 5, SwitchPenalty: 3, Raw: 2, Effective: 2},
		},
		{
			name: "shadow adds penalty on hostile switch",
			in: PowerInput{
				BasePower: 5, StreakCount: 1, PriorStreakType: ActionStrike, PriorStreakCount: 3,
				LastAction: ActionStrike, Action: ActionInfluence, Keyword: KeywordShadow,
				Zone: ZoneYav, Disposition: -31,
			},
			want: PowerBreakdown{Base: 5, ThreatBonus: 2, SwitchPenalty: 1, ShadowPenalty: 2, Raw: 4, Effective: 4},
		},
		{
			name: "shadow without switch has no penalty",
			in: PowerInput{
				BasePower: 5, StreakCount: 2, PriorStreakType: ActionStrike, PriorStreakCount: 1,
				LastAction: ActionStrike, Action: ActionStrike, Keyword: KeywordShadow,
				Zone: ZoneYav, Disposition: -50,
			},
			want: PowerBreakdown{Base: 5, StreakBonus: 1, Raw: 6, Effective: 6},
		},
		{
			name: "sacrifice streak never switches",
			in: PowerInput{
				BasePower: 5, StreakCount: 1, PriorStreakType: ActionSacrifice, PriorStreakCount: 6,
				LastAction: ActionSacrifice, Action: ActionStrike, Zone: ZoneYav,
			},
			want: PowerBreakdown{Base: 5, Raw: 5, Effective: 5},
		},
		{
			name: "nav strike resonance",
			in:   PowerInput{BasePower: 3, StreakCount: 1, Action: ActionStrike, Zone: ZoneNav},
			want: PowerBreakdown{Base: 3, ResonanceBonus: 2, Raw: 5, Effective: 5},
		},
		{
			name: "prav influence resonance",
			in:   PowerInput{BasePower: 3, StreakCount: 1, Action: ActionInfluence, Zone: ZonePrav},
			want: PowerBreakdown{Base: 3, ResonanceBonus: 2, Raw: 5, Effective: 5},
		},
		{
			name: "vulnerability fate and reduction",
			in: PowerInput{
				BasePower: 4, StreakCount: 1, Action: ActionStrike, Zone: ZoneYav,
				VulnerabilityModifier: 3, FateModifier: 2, IncomingReduction: 3,
			},
			want: PowerBreakdown{Base: 4, Vulnerability: 3, Fate: 2, Reduction: 3, Raw: 6, Effective: 6},
		},
		{
			name: "floored at zero",
			in: PowerInput{
				BasePower: 1, StreakCount: 1, Action: ActionStrike, Zone: ZoneYav, IncomingReduction: 5,
			},
			want: PowerBreakdown{Base: 1, Reduction: 5, Raw: -4, Effective: 0},
		},
		{
			name: "capped at max",
			in: PowerInput{
				BasePower: 30, StreakCount: 6, PriorStreakType: ActionStrike, PriorStreakCount: 5,
				LastAction: ActionStrike, Action: ActionStrike, Keyword: KeywordSurge, Zone: ZoneNav,
				VulnerabilityModifier: 5,
			},
			want: PowerBreakdown{Base: 45, StreakBonus: 5, ResonanceBonus: 2, Vulnerability: 5, Raw: 57, Effective: 25},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePower(tt.in)
			if got != tt.want {
				t.Fatalf("CalculatePower() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCalculatePowerAlwaysWithinCap(t *testing.T) {
	keywords := []Keyword{KeywordNone, KeywordSurge, KeywordFocus, KeywordEcho, KeywordShadow, KeywordWard}
	actions := []ActionKind{ActionStrike, ActionInfluence}
	zones := []Zone{ZoneNav, ZoneYav, ZonePrav}
	for base := 0; base <= 40; base += 5 {
		for streak := 1; streak <= 10; streak += 3 {
			for _, keyword := range keywords {
				for _, action := range actions {
					for _, zone := range zones {
						for _, fate := range []int{-10, 0, 10} {
							got := EffectivePower(PowerInput{
								BasePower:             base,
								StreakCount:           streak,
								PriorStreakType:       ActionStrike,
								PriorStreakCount:      streak,
								LastAction:            ActionStrike,
								Action:                action,
								Keyword:               keyword,
								FateModifier:          fate,
								Zone:                  zone,
								VulnerabilityModifier: 5,
								Disposition:           -40,
							})
							if got < 0 || got > MaxEffectivePower {
								t.Fatalf("effective power = %d, want within [0, %d]", got, MaxEffectivePower)
							}
						}
					}
				}
			}
		}
	}
}

func TestCalculatePowerSaturatesExtremeTerms(t *testing.T) {
	tests := []struct {
		name string
		in   PowerInput
		want int
	}{
		{"max base", PowerInput{BasePower: math.MaxInt, StreakCount: 1, Action: ActionStrike, Zone: ZoneYav}, MaxEffectivePower},
		{"surged half max base", PowerInput{BasePower: math.MaxInt/2 + 1, StreakCount: 1, Action: ActionStrike, Keyword: KeywordSurge, Zone: ZoneYav}, MaxEffectivePower},
		{"max base and fate", PowerInput{BasePower: math.MaxInt, StreakCount: math.MaxInt, FateModifier: math.MaxInt, VulnerabilityModifier: math.MaxInt, Action: ActionStrike, Zone: ZoneNav}, MaxEffectivePower},
		{"min fate", PowerInput{BasePower: 5, StreakCount: 1, FateModifier: math.MinInt, Action: ActionStrike, Zone: ZoneYav}, 0},
		{"max reduction", PowerInput{BasePower: math.MaxInt, StreakCount: 1, IncomingReduction: math.MaxInt, Action: ActionStrike, Zone: ZoneYav}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectivePower(tt.in); got != tt.want {
				t.Fatalf("effective power = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHelperBonuses(t *testing.T) {
	if got := StreakBonus(0); got != 0 {
		t.Fatalf("StreakBonus(0) = %d, want 0", got)
	}
	if got := StreakBonus(4); got != 3 {
		t.Fatalf("StreakBonus(4) = %d, want 3", got)
	}
	if got := SwitchPenalty(2); got != 0 {
		t.Fatalf("SwitchPenalty(2) = %d, want 0", got)
	}
	if got := SwitchPenalty(6); got != 4 {
		t.Fatalf("SwitchPenalty(6) = %d, want 4", got)
	}
	if got := ThreatBonus(ActionInfluence, ActionStrike); got != 0 {
		t.Fatalf("ThreatBonus(influence, strike) = %d, want 0", got)
	}
	if got := SurgedBase(7, KeywordSurge); got != 10 {
		t.Fatalf("SurgedBase(7) = %d, want 10", got)
	}
	if got := SurgedBase(7, KeywordFocus); got != 7 {
		t.Fatalf("SurgedBase(7, focus) = %d, want 7", got)
	}
}

func TestKeywordDispositionThresholdsAreStrict(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"focus defend at -30", FocusIgnoresDefend(-30, KeywordFocus), false},
		{"focus defend at -31", FocusIgnoresDefend(-31, KeywordFocus), true},
		{"focus defend other keyword", FocusIgnoresDefend(-90, KeywordSurge), false},
		{"focus provoke at 30", FocusIgnoresProvoke(30, KeywordFocus), false},
		{"focus provoke at 31", FocusIgnoresProvoke(31, KeywordFocus), true},
		{"shadow defend at 30", ShadowDisablesDefend(30, KeywordShadow), false},
		{"shadow defend at 31", ShadowDisablesDefend(31, KeywordShadow), true},
		{"shadow switch at -30", ShadowSwitchPenalty(-30, KeywordShadow) == 2, false},
		{"shadow switch at -31", ShadowSwitchPenalty(-31, KeywordShadow) == 2, true},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestClampDisposition(t *testing.T) {
	for _, tc := range []struct{ in, want int }{{-150, -100}, {-100, -100}, {0, 0}, {100, 100}, {101, 100}} {
		if got := ClampDisposition(tc.in); got != tc.want {
			t.Fatalf("ClampDisposition(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
