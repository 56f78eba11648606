package grpc

import (
	"encoding/json"
	"fmt"

	combatv1 "github.com/louisbranch/duskmarch/api/gen/go/combat/v1"
	"github.com/louisbranch/duskmarch/internal/services/combat/session"
	"github.com/louisbranch/duskmarch/internal/services/combat/storage"
	"github.com/louisbranch/duskmarch/internal/systems/disposition"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func startConfigFromProto(in *combatv1.StartRequest, zone disposition.Zone) session.StartConfig {
	cfg := session.StartConfig{
		Hand:            cardsFromProto(in.GetHand()),
		Zone:            zone,
		EnemyType:       in.GetEnemyType(),
		Seed:            in.GetSeed(),
		Situation:       int(in.GetSituation()),
		Energy:          int(in.GetEnergy()),
		HeroHP:          int(in.GetHeroHp()),
		HeroMaxHP:       int(in.GetHeroMaxHp()),
		MatchMultiplier: in.GetMatchMultiplier(),
	}
	if in.Disposition != nil {
		value := int(in.GetDisposition())
		cfg.Disposition = &value
	}
	return cfg
}

func cardsFromProto(cards []*combatv1.Card) []disposition.Card {
	if len(cards) == 0 {
		return nil
	}
	out := make([]disposition.Card, 0, len(cards))
	for _, card := range cards {
		out = append(out, disposition.Card{
			ID:    card.GetId(),
			Cost:  int(card.GetCost()),
			Power: int(card.GetPower()),
		})
	}
	return out
}

func sessionViewToProto(view session.View) (*combatv1.SessionView, error) {
	state, err := disposition.EncodeSnapshot(view.State)
	if err != nil {
		return nil, err
	}
	return &combatv1.SessionView{
		SessionId:   view.SessionID,
		Seq:         view.Seq,
		StateJson:   state,
		Disposition: int32(view.State.Disposition),
		Outcome:     view.State.Outcome.String(),
	}, nil
}

func enemyTurnToProto(turn *disposition.EnemyTurn) ([]byte, error) {
	if turn == nil {
		return nil, nil
	}
	data, err := json.Marshal(turn)
	if err != nil {
		return nil, fmt.Errorf("encode enemy turn: %w", err)
	}
	return data, nil
}

func checkpointInfoToProto(info session.CheckpointInfo) *combatv1.CheckpointInfo {
	return &combatv1.CheckpointInfo{
		SessionId: info.SessionID,
		Seq:       info.Seq,
		Hash:      info.Hash,
		CreatedAt: timestamppb.New(info.CreatedAt),
	}
}

func journalEntryToProto(rec storage.IntentRecord) (*combatv1.JournalEntry, error) {
	intent, err := json.Marshal(rec.Intent)
	if err != nil {
		return nil, fmt.Errorf("encode intent at seq %d: %w", rec.Seq, err)
	}
	return &combatv1.JournalEntry{
		Seq:        rec.Seq,
		Kind:       rec.Intent.Kind.String(),
		IntentJson: intent,
		Status:     rec.Status(),
		CreatedAt:  timestamppb.New(rec.CreatedAt),
	}, nil
}
