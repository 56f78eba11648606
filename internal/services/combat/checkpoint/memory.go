package checkpoint

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	apperrors "github.com/louisbranch/duskmarch/internal/platform/errors"
	"github.com/louisbranch/duskmarch/internal/services/combat/storage"
	"github.com/louisbranch/duskmarch/internal/services/combat/storage/filter"
)

// MemoryStore keeps sessions, checkpoints, and journals in process memory.
type MemoryStore struct {
	mu          sync.RWMutex
	sessions    map[string]storage.SessionRecord
	checkpoints map[string]map[uint64]storage.Checkpoint
	journals    map[string][]storage.IntentRecord
}

var _ storage.Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions:    make(map[string]storage.SessionRecord),
		checkpoints: make(map[string]map[uint64]storage.Checkpoint),
		journals:    make(map[string][]storage.IntentRecord),
	}
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }

// PutSession stores a new session record.
func (s *MemoryStore) PutSession(ctx context.Context, record storage.SessionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(record.ID) == "" {
		return apperrors.New(apperrors.CodeSessionIDRequired, "session id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[record.ID]; ok {
		return storage.ErrSessionExists
	}
	s.sessions[record.ID] = record
	return nil
}

// GetSession loads a session record.
func (s *MemoryStore) GetSession(ctx context.Context, id string) (storage.SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.SessionRecord{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.sessions[id]
	if !ok {
		return storage.SessionRecord{}, storage.ErrNotFound
	}
	return record, nil
}

// PutCheckpoint stores a checkpoint, replacing one with the same seq.
func (s *MemoryStore) PutCheckpoint(ctx context.Context, cp storage.Checkpoint) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[cp.SessionID]; !ok {
		return storage.ErrNotFound
	}
	bySeq := s.checkpoints[cp.SessionID]
	if bySeq == nil {
		bySeq = make(map[uint64]storage.Checkpoint)
		s.checkpoints[cp.SessionID] = bySeq
	}
	cp.Payload = slices.Clone(cp.Payload)
	bySeq[cp.Seq] = cp
	return nil
}

// GetLatestCheckpoint returns the checkpoint with the highest seq.
func (s *MemoryStore) GetLatestCheckpoint(ctx context.Context, sessionID string) (storage.Checkpoint, error) {
	all, err := s.ListCheckpoints(ctx, sessionID)
	if err != nil {
		return storage.Checkpoint{}, err
	}
	if len(all) == 0 {
		return storage.Checkpoint{}, storage.ErrNotFound
	}
	return all[0], nil
}

// ListCheckpoints returns a session's checkpoints, newest first.
func (s *MemoryStore) ListCheckpoints(ctx context.Context, sessionID string) ([]storage.Checkpoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []storage.Checkpoint
	for _, cp := range s.checkpoints[sessionID] {
		cp.Payload = slices.Clone(cp.Payload)
		out = append(out, cp)
	}
	slices.SortFunc(out, func(a, b storage.Checkpoint) int {
		return cmp.Compare(b.Seq, a.Seq)
	})
	return out, nil
}

// AppendIntent journals one intent. Seq values are unique per session.
func (s *MemoryStore) AppendIntent(ctx context.Context, record storage.IntentRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[record.SessionID]; !ok {
		return storage.ErrNotFound
	}
	journal := s.journals[record.SessionID]
	idx, found := slices.BinarySearchFunc(journal, record.Seq, func(r storage.IntentRecord, seq uint64) int {
		return cmp.Compare(r.Seq, seq)
	})
	if found {
		return apperrors.Wrap(apperrors.CodeStorage, "append intent",
			fmt.Errorf("duplicate seq %d for session %s", record.Seq, record.SessionID))
	}
	s.journals[record.SessionID] = slices.Insert(journal, idx, record)
	return nil
}

// ListIntents returns journal entries after query.AfterSeq in seq order.
func (s *MemoryStore) ListIntents(ctx context.Context, query storage.ListIntentsQuery) ([]storage.IntentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := filter.Parse(query.Filter)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidFilter, "invalid journal filter", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []storage.IntentRecord
	for _, record := range s.journals[query.SessionID] {
		if record.Seq <= query.AfterSeq {
			continue
		}
		if !f.Match(filter.Row{Kind: record.Intent.Kind.String(), Status: record.Status(), Seq: record.Seq}) {
			continue
		}
		out = append(out, record)
		if query.Limit > 0 && len(out) == query.Limit {
			break
		}
	}
	return out, nil
}
