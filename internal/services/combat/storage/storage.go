package storage

import (
	"context"
	"time"

	apperrors "github.com/louisbranch/duskmarch/internal/platform/errors"
	"github.com/louisbranch/duskmarch/internal/systems/disposition"
)

// ErrNotFound indicates a requested persistence record is missing.
var ErrNotFound = apperrors.New(apperrors.CodeSessionNotFound, "record not found")

// ErrSessionExists indicates a session id was already taken.
var ErrSessionExists = apperrors.New(apperrors.CodeSessionExists, "session already exists")

// Journal statuses exposed to filters.
const (
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// SessionRecord identifies one duel.
type SessionRecord struct {
	ID        string
	Seed      uint64
	EnemyType string
	Zone      disposition.Zone
	CreatedAt time.Time
}

// Checkpoint is an encoded simulation snapshot taken after Seq journal
// entries were applied. Seq 0 is the state the session started from.
type Checkpoint struct {
	SessionID string
	Seq       uint64
	Payload   []byte
	Hash      string
	CreatedAt time.Time
}

// IntentRecord is one journaled intent. Seq starts at 1 and increases by one
// per intent within a session, whether or not the intent was accepted.
type IntentRecord struct {
	SessionID string
	Seq       uint64
	Intent    disposition.Intent
	Accepted  bool
	CreatedAt time.Time
}

// Status reports the journal status used by filters.
func (r IntentRecord) Status() string {
	if r.Accepted {
		return StatusAccepted
	}
	return StatusRejected
}

// ListIntentsQuery selects a window of one session's journal.
type ListIntentsQuery struct {
	SessionID string
	// AfterSeq excludes entries with Seq <= AfterSeq.
	AfterSeq uint64
	// Limit caps the result; zero means no limit.
	Limit int
	// Filter is an AIP-160 expression over kind, status, and seq.
	Filter string
}

// SessionStore persists session identity records.
type SessionStore interface {
	PutSession(ctx context.Context, record SessionRecord) error
	GetSession(ctx context.Context, id string) (SessionRecord, error)
}

// CheckpointStore persists encoded snapshots.
type CheckpointStore interface {
	PutCheckpoint(ctx context.Context, checkpoint Checkpoint) error
	GetLatestCheckpoint(ctx context.Context, sessionID string) (Checkpoint, error)
	// ListCheckpoints returns a session's checkpoints, newest first.
	ListCheckpoints(ctx context.Context, sessionID string) ([]Checkpoint, error)
}

// JournalStore persists the intent journal.
type JournalStore interface {
	AppendIntent(ctx context.Context, record IntentRecord) error
	// ListIntents returns matching entries in ascending Seq order.
	ListIntents(ctx context.Context, query ListIntentsQuery) ([]IntentRecord, error)
}

// Store is the full persistence surface of the combat service.
type Store interface {
	SessionStore
	CheckpointStore
	JournalStore
	Close() error
}
