package session

import (
	"github.com/louisbranch/duskmarch/internal/services/combat/i18n"
	"github.com/louisbranch/duskmarch/internal/systems/disposition"
)

// rejectionReason explains why in would be rejected by sim. It inspects the
// state before the intent is applied.
func rejectionReason(sim *disposition.Simulation, in disposition.Intent) string {
	if sim.IsOver() {
		return i18n.ReasonDuelOver
	}
	switch in.Kind {
	case disposition.IntentStrike, disposition.IntentInfluence, disposition.IntentSacrifice:
		card, ok := findCard(sim.Hand(), in.CardID)
		if !ok {
			return i18n.ReasonCardNotInHand
		}
		if in.Kind == disposition.IntentSacrifice {
			if sim.SacrificeUsedThisTurn() {
				return i18n.ReasonSacrificeUsed
			}
			if sim.Energy() < sim.SacrificeCost(card) {
				return i18n.ReasonNotEnoughEnergy
			}
			return i18n.ReasonNotAllowed
		}
		if sim.Energy() < card.Cost {
			return i18n.ReasonNotEnoughEnergy
		}
	case disposition.IntentEcho:
		last := sim.LastAction()
		if sim.EchoUsedThisAction() || (last != disposition.ActionStrike && last != disposition.ActionInfluence) {
			return i18n.ReasonEchoUnavailable
		}
	}
	return i18n.ReasonNotAllowed
}

func findCard(hand []disposition.Card, id string) (disposition.Card, bool) {
	for _, card := range hand {
		if card.ID == id {
			return card, true
		}
	}
	return disposition.Card{}, false
}
