package checkpoint

import (
	"strconv"
	"time"

	"github.com/louisbranch/duskmarch/internal/core/encoding"
	apperrors "github.com/louisbranch/duskmarch/internal/platform/errors"
	"github.com/louisbranch/duskmarch/internal/services/combat/storage"
	"github.com/louisbranch/duskmarch/internal/systems/disposition"
)

// Seal captures sim and returns a checkpoint whose payload is the canonical
// snapshot JSON and whose hash covers that payload.
func Seal(sessionID string, seq uint64, sim *disposition.Simulation, now time.Time) (storage.Checkpoint, error) {
	encoded, err := disposition.EncodeSnapshot(disposition.Capture(sim))
	if err != nil {
		return storage.Checkpoint{}, apperrors.Wrap(apperrors.CodeStorage, "encode snapshot", err)
	}
	payload, err := encoding.CanonicalizeJSON(encoded)
	if err != nil {
		return storage.Checkpoint{}, apperrors.Wrap(apperrors.CodeStorage, "canonicalize snapshot", err)
	}
	return storage.Checkpoint{
		SessionID: sessionID,
		Seq:       seq,
		Payload:   payload,
		Hash:      encoding.HashBytes(payload),
		CreatedAt: now.UTC(),
	}, nil
}

// Open verifies the checkpoint hash and decodes its snapshot.
func Open(cp storage.Checkpoint) (disposition.Snapshot, error) {
	if encoding.HashBytes(cp.Payload) != cp.Hash {
		return disposition.Snapshot{}, apperrors.WithMetadata(
			apperrors.CodeCheckpointCorrupt, "checkpoint hash mismatch",
			map[string]string{"SessionID": cp.SessionID, "Seq": formatSeq(cp.Seq)},
		)
	}
	snap, err := disposition.DecodeSnapshot(cp.Payload)
	if err != nil {
		return disposition.Snapshot{}, apperrors.WrapWithMetadata(
			apperrors.CodeCheckpointCorrupt, "decode checkpoint",
			map[string]string{"SessionID": cp.SessionID, "Seq": formatSeq(cp.Seq)}, err,
		)
	}
	return snap, nil
}

func formatSeq(seq uint64) string {
	return strconv.FormatUint(seq, 10)
}
