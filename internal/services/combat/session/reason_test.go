package session

import (
	"testing"

	"github.com/louisbranch/duskmarch/internal/services/combat/i18n"
	"github.com/louisbranch/duskmarch/internal/systems/disposition"
)

func TestRejectionReasonForFinishedDuel(t *testing.T) {
	sim, err := disposition.New(disposition.Config{
		Hand:           []disposition.Card{{ID: "a", Cost: 1, Power: 1}},
		Disposition:    100,
		Energy:         1,
		StartingEnergy: 1,
		HeroHP:         5,
		HeroMaxHP:      5,
		Zone:           disposition.ZoneNav,
		EnemyType:      disposition.EnemyLeshy,
		Seed:           1,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	in := disposition.Intent{Kind: disposition.IntentInfluence, CardID: "a"}
	if got := rejectionReason(sim, in); got != i18n.ReasonDuelOver {
		t.Fatalf("reason = %q, want %q", got, i18n.ReasonDuelOver)
	}
}

func TestRejectionReasonNavSacrificeDiscount(t *testing.T) {
	sim, err := disposition.New(disposition.Config{
		Hand:           []disposition.Card{{ID: "a", Cost: 2, Power: 1}},
		StartingEnergy: 3,
		HeroHP:         5,
		HeroMaxHP:      5,
		Zone:           disposition.ZoneNav,
		EnemyType:      disposition.EnemyLeshy,
		Seed:           1,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	in := disposition.Intent{Kind: disposition.IntentSacrifice, CardID: "a"}
	if got := rejectionReason(sim, in); got != i18n.ReasonNotEnoughEnergy {
		t.Fatalf("reason = %q, want %q", got, i18n.ReasonNotEnoughEnergy)
	}
}
