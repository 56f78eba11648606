// Package replay rebuilds combat simulations from checkpoints and the intent
// journal.
package replay

import (
	"context"
	"errors"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/duskmarch/internal/platform/errors"
	"github.com/louisbranch/duskmarch/internal/services/combat/checkpoint"
	"github.com/louisbranch/duskmarch/internal/services/combat/storage"
	"github.com/louisbranch/duskmarch/internal/systems/disposition"
)

const defaultPageSize = 200

var (
	// ErrJournalRequired indicates a missing journal store.
	ErrJournalRequired = errors.New("journal store is required")
	// ErrCheckpointsRequired indicates a missing checkpoint store.
	ErrCheckpointsRequired = errors.New("checkpoint store is required")
)

// Journal lists journaled intents.
type Journal interface {
	ListIntents(ctx context.Context, query storage.ListIntentsQuery) ([]storage.IntentRecord, error)
}

// Checkpoints lists stored checkpoints, newest first.
type Checkpoints interface {
	ListCheckpoints(ctx context.Context, sessionID string) ([]storage.Checkpoint, error)
}

// Options configures replay behavior.
type Options struct {
	// UntilSeq stops replay after this journal entry; zero replays everything.
	UntilSeq uint64
	PageSize int
	// SimOptions are passed to the restored simulation.
	SimOptions []disposition.Option
	// OnSkip observes checkpoints rejected during fallback.
	OnSkip func(cp storage.Checkpoint, err error)
}

// Result captures replay outcomes.
type Result struct {
	Sim           *disposition.Simulation
	CheckpointSeq uint64
	LastSeq       uint64
	Applied       int
	Skipped       int
}

// Resume restores the newest checkpoint that verifies and replays the journal
// entries written after it. Checkpoints that fail verification are skipped in
// favor of older ones. Replay fails when a journaled intent no longer
// produces the recorded acceptance, since the rebuilt state would differ from
// the one players saw.
func Resume(ctx context.Context, journal Journal, checkpoints Checkpoints, sessionID string, options Options) (Result, error) {
	if journal == nil {
		return Result{}, ErrJournalRequired
	}
	if checkpoints == nil {
		return Result{}, ErrCheckpointsRequired
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return Result{}, apperrors.New(apperrors.CodeSessionIDRequired, "session id is required")
	}

	result, err := restoreLatest(ctx, checkpoints, sessionID, options)
	if err != nil {
		return result, err
	}

	pageSize := options.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	for {
		records, err := journal.ListIntents(ctx, storage.ListIntentsQuery{
			SessionID: sessionID,
			AfterSeq:  result.LastSeq,
			Limit:     pageSize,
		})
		if err != nil {
			return result, err
		}
		if len(records) == 0 {
			return result, nil
		}
		for _, record := range records {
			if options.UntilSeq > 0 && record.Seq > options.UntilSeq {
				return result, nil
			}
			expected := result.LastSeq + 1
			if record.Seq != expected {
				return result, divergence(sessionID, record.Seq, "journal sequence gap: expected "+strconv.FormatUint(expected, 10))
			}
			if got := record.Intent.Apply(result.Sim); got.Accepted != record.Accepted {
				return result, divergence(sessionID, record.Seq, "intent acceptance changed on replay")
			}
			result.LastSeq = record.Seq
			result.Applied++
		}
	}
}

func restoreLatest(ctx context.Context, checkpoints Checkpoints, sessionID string, options Options) (Result, error) {
	all, err := checkpoints.ListCheckpoints(ctx, sessionID)
	if err != nil {
		return Result{}, err
	}
	var result Result
	for _, cp := range all {
		if options.UntilSeq > 0 && cp.Seq > options.UntilSeq {
			continue
		}
		snap, err := checkpoint.Open(cp)
		if err == nil {
			var sim *disposition.Simulation
			sim, err = snap.Restore(options.SimOptions...)
			if err == nil {
				result.Sim = sim
				result.CheckpointSeq = cp.Seq
				result.LastSeq = cp.Seq
				return result, nil
			}
		}
		result.Skipped++
		if options.OnSkip != nil {
			options.OnSkip(cp, err)
		}
	}
	if len(all) == 0 {
		return result, storage.ErrNotFound
	}
	return result, apperrors.WithMetadata(apperrors.CodeNoValidCheckpoint, "no checkpoint passed verification",
		map[string]string{"SessionID": sessionID})
}

func divergence(sessionID string, seq uint64, message string) error {
	return apperrors.WithMetadata(apperrors.CodeReplayDiverged, message, map[string]string{
		"SessionID": sessionID,
		"Seq":       strconv.FormatUint(seq, 10),
	})
}
