// Package errors provides structured, code-typed errors for service boundaries.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Request validation
	CodeSessionIDRequired   Code = "SESSION_ID_REQUIRED"
	CodeInvalidZone         Code = "INVALID_ZONE"
	CodeInvalidIntent       Code = "INVALID_INTENT"
	CodeInvalidConfig       Code = "INVALID_CONFIG"
	CodeInvalidFilter       Code = "INVALID_FILTER"
	CodeInvalidPageToken    Code = "INVALID_PAGE_TOKEN"
	CodeEnemyTypeRequired   Code = "ENEMY_TYPE_REQUIRED"
	CodeHandRequired        Code = "HAND_REQUIRED"
	CodeSituationOutOfRange Code = "SITUATION_OUT_OF_RANGE"

	// Session state
	CodeSessionNotFound Code = "SESSION_NOT_FOUND"
	CodeSessionEnded    Code = "SESSION_ENDED"
	CodeSessionExists   Code = "SESSION_EXISTS"

	// Persistence
	CodeCheckpointCorrupt Code = "CHECKPOINT_CORRUPT"
	CodeNoValidCheckpoint Code = "NO_VALID_CHECKPOINT"
	CodeReplayDiverged    Code = "REPLAY_DIVERGED"
	CodeStorage           Code = "STORAGE_FAILURE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeSessionIDRequired,
		CodeInvalidZone,
		CodeInvalidIntent,
		CodeInvalidConfig,
		CodeInvalidFilter,
		CodeInvalidPageToken,
		CodeEnemyTypeRequired,
		CodeHandRequired,
		CodeSituationOutOfRange:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeSessionEnded:
		return codes.FailedPrecondition

	// NotFound - resource doesn't exist
	case CodeSessionNotFound:
		return codes.NotFound

	// AlreadyExists - unique resource constraint
	case CodeSessionExists:
		return codes.AlreadyExists

	// DataLoss - persisted state cannot be trusted
	case CodeCheckpointCorrupt,
		CodeNoValidCheckpoint,
		CodeReplayDiverged:
		return codes.DataLoss

	case CodeStorage:
		return codes.Unavailable

	default:
		return codes.Internal
	}
}
