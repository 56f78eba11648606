package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	combatv1 "github.com/louisbranch/duskmarch/api/gen/go/combat/v1"
	apperrors "github.com/louisbranch/duskmarch/internal/platform/errors"
	"github.com/louisbranch/duskmarch/internal/platform/grpc/pagination"
	"github.com/louisbranch/duskmarch/internal/services/combat/i18n"
	"github.com/louisbranch/duskmarch/internal/services/combat/session"
	"github.com/louisbranch/duskmarch/internal/systems/disposition"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Journal page sizes.
const (
	defaultJournalPageSize = 50
	maxJournalPageSize     = 200
)

// CombatService implements the combat gRPC API over a session manager.
type CombatService struct {
	combatv1.UnimplementedCombatServiceServer
	manager *session.Manager
}

// NewCombatService creates a combat service.
func NewCombatService(manager *session.Manager) *CombatService {
	return &CombatService{manager: manager}
}

// Start creates a new duel.
func (s *CombatService) Start(ctx context.Context, in *combatv1.StartRequest) (*combatv1.StartResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "start request is required")
	}
	zone, err := disposition.ParseZone(in.GetZone())
	if err != nil {
		return nil, handleDomainError(ctx, apperrors.WrapWithMetadata(apperrors.CodeInvalidZone,
			"unknown resonance zone", map[string]string{"Zone": in.GetZone()}, err))
	}
	view, err := s.manager.Start(ctx, startConfigFromProto(in, zone))
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	pv, err := sessionViewToProto(view)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &combatv1.StartResponse{Session: pv}, nil
}

// Act applies one intent. Rejected intents are successful calls with
// Accepted set to false.
func (s *CombatService) Act(ctx context.Context, in *combatv1.ActRequest) (*combatv1.ActResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "act request is required")
	}
	var intent disposition.Intent
	if len(in.GetIntentJson()) == 0 {
		return nil, handleDomainError(ctx, apperrors.New(apperrors.CodeInvalidIntent, "intent is required"))
	}
	if err := json.Unmarshal(in.GetIntentJson(), &intent); err != nil {
		return nil, handleDomainError(ctx, apperrors.Wrap(apperrors.CodeInvalidIntent, "decode intent", err))
	}
	result, err := s.manager.Act(ctx, in.GetSessionId(), intent)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	pv, err := sessionViewToProto(result.View)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	enemyTurn, err := enemyTurnToProto(result.EnemyTurn)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	resp := &combatv1.ActResponse{
		Accepted:      result.Accepted,
		Reason:        result.Reason,
		EnemyTurnJson: enemyTurn,
		Session:       pv,
	}
	if !result.Accepted {
		resp.Message = i18n.RejectionMessage(LocaleFromContext(ctx), result.Reason)
	}
	return resp, nil
}

// GetState returns the current state of a duel.
func (s *CombatService) GetState(ctx context.Context, in *combatv1.GetStateRequest) (*combatv1.GetStateResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get state request is required")
	}
	view, err := s.manager.State(ctx, in.GetSessionId())
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	pv, err := sessionViewToProto(view)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &combatv1.GetStateResponse{Session: pv}, nil
}

// Checkpoint seals the current state of a duel.
func (s *CombatService) Checkpoint(ctx context.Context, in *combatv1.CheckpointRequest) (*combatv1.CheckpointResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "checkpoint request is required")
	}
	info, err := s.manager.Checkpoint(ctx, in.GetSessionId())
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &combatv1.CheckpointResponse{Checkpoint: checkpointInfoToProto(info)}, nil
}

// Resume rebuilds a duel from storage.
func (s *CombatService) Resume(ctx context.Context, in *combatv1.ResumeRequest) (*combatv1.ResumeResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "resume request is required")
	}
	view, info, err := s.manager.Resume(ctx, in.GetSessionId())
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	pv, err := sessionViewToProto(view)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	return &combatv1.ResumeResponse{
		Session:       pv,
		CheckpointSeq: info.CheckpointSeq,
		Replayed:      int32(info.Replayed),
		Skipped:       int32(info.Skipped),
	}, nil
}

// ListJournal returns a page of journaled intents.
func (s *CombatService) ListJournal(ctx context.Context, in *combatv1.ListJournalRequest) (*combatv1.ListJournalResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list journal request is required")
	}
	afterSeq, err := pagination.DecodeSeqToken(in.GetPageToken())
	if err != nil {
		return nil, handleDomainError(ctx, apperrors.Wrap(apperrors.CodeInvalidPageToken, "decode page token", err))
	}
	pageSize := pagination.ClampPageSize(in.GetPageSize(), pagination.PageSizeConfig{
		Default: defaultJournalPageSize,
		Max:     maxJournalPageSize,
	})
	page, err := s.manager.Journal(ctx, in.GetSessionId(), in.GetFilter(), pageSize, afterSeq)
	if err != nil {
		return nil, handleDomainError(ctx, err)
	}
	resp := &combatv1.ListJournalResponse{Entries: make([]*combatv1.JournalEntry, 0, len(page.Records))}
	for _, rec := range page.Records {
		entry, err := journalEntryToProto(rec)
		if err != nil {
			return nil, handleDomainError(ctx, err)
		}
		resp.Entries = append(resp.Entries, entry)
	}
	if page.NextAfterSeq > 0 {
		resp.NextPageToken = pagination.EncodeSeqToken(page.NextAfterSeq)
	}
	return resp, nil
}

// handleDomainError converts an error into a gRPC status whose localized
// message follows the caller's accept-language metadata.
func handleDomainError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		tag := LocaleFromContext(ctx)
		return appErr.ToGRPCStatus(tag.String(), i18n.ErrorMessage(tag, appErr.Code, appErr.Metadata))
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}
	log.Printf("combat request %s: %v", RequestIDFromContext(ctx), err)
	return status.Error(codes.Internal, "an unexpected error occurred")
}
