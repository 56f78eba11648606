package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/louisbranch/duskmarch/internal/platform/errors"
	"github.com/louisbranch/duskmarch/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/duskmarch/internal/services/combat/storage"
	"github.com/louisbranch/duskmarch/internal/services/combat/storage/filter"
	"github.com/louisbranch/duskmarch/internal/services/combat/storage/sqlite/migrations"
	"github.com/louisbranch/duskmarch/internal/systems/disposition"
	_ "modernc.org/sqlite"
)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Store provides a SQLite-backed combat store.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.Store = (*Store)(nil)

// Open opens (creating if needed) the SQLite database at path and applies
// embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.CombatFS, "combat"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database. It is nil-safe.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutSession stores a new session record.
func (s *Store) PutSession(ctx context.Context, record storage.SessionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(record.ID) == "" {
		return apperrors.New(apperrors.CodeSessionIDRequired, "session id is required")
	}
	zone, err := record.Zone.MarshalText()
	if err != nil {
		return fmt.Errorf("encode zone: %w", err)
	}
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO sessions (id, seed, enemy_type, zone, created_at) VALUES (?, ?, ?, ?, ?)`,
		record.ID, strconv.FormatUint(record.Seed, 10), record.EnemyType, string(zone), toMillis(record.CreatedAt),
	)
	if err != nil {
		if isConstraintError(err) {
			return storage.ErrSessionExists
		}
		return apperrors.Wrap(apperrors.CodeStorage, "put session", err)
	}
	return nil
}

// GetSession loads a session record.
func (s *Store) GetSession(ctx context.Context, id string) (storage.SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.SessionRecord{}, err
	}
	var (
		record    storage.SessionRecord
		seed      string
		zone      string
		createdAt int64
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, seed, enemy_type, zone, created_at FROM sessions WHERE id = ?`, id,
	).Scan(&record.ID, &seed, &record.EnemyType, &zone, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.SessionRecord{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.SessionRecord{}, apperrors.Wrap(apperrors.CodeStorage, "get session", err)
	}
	record.Seed, err = strconv.ParseUint(seed, 10, 64)
	if err != nil {
		return storage.SessionRecord{}, fmt.Errorf("parse session seed: %w", err)
	}
	if err := record.Zone.UnmarshalText([]byte(zone)); err != nil {
		return storage.SessionRecord{}, fmt.Errorf("parse session zone: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	return record, nil
}

// PutCheckpoint stores a checkpoint, replacing one with the same seq.
func (s *Store) PutCheckpoint(ctx context.Context, checkpoint storage.Checkpoint) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(checkpoint.SessionID) == "" {
		return apperrors.New(apperrors.CodeSessionIDRequired, "session id is required")
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO checkpoints (session_id, seq, payload, hash, created_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (session_id, seq) DO UPDATE SET payload = excluded.payload, hash = excluded.hash, created_at = excluded.created_at`,
		checkpoint.SessionID, int64(checkpoint.Seq), checkpoint.Payload, checkpoint.Hash, toMillis(checkpoint.CreatedAt),
	)
	if err != nil {
		if isConstraintError(err) {
			return storage.ErrNotFound
		}
		return apperrors.Wrap(apperrors.CodeStorage, "put checkpoint", err)
	}
	return nil
}

// GetLatestCheckpoint returns the checkpoint with the highest seq.
func (s *Store) GetLatestCheckpoint(ctx context.Context, sessionID string) (storage.Checkpoint, error) {
	checkpoints, err := s.listCheckpoints(ctx, sessionID, 1)
	if err != nil {
		return storage.Checkpoint{}, err
	}
	if len(checkpoints) == 0 {
		return storage.Checkpoint{}, storage.ErrNotFound
	}
	return checkpoints[0], nil
}

// ListCheckpoints returns all checkpoints of a session, newest first.
func (s *Store) ListCheckpoints(ctx context.Context, sessionID string) ([]storage.Checkpoint, error) {
	return s.listCheckpoints(ctx, sessionID, -1)
}

func (s *Store) listCheckpoints(ctx context.Context, sessionID string, limit int) ([]storage.Checkpoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT session_id, seq, payload, hash, created_at FROM checkpoints
		 WHERE session_id = ? ORDER BY seq DESC LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "list checkpoints", err)
	}
	defer rows.Close()

	var checkpoints []storage.Checkpoint
	for rows.Next() {
		var (
			cp        storage.Checkpoint
			seq       int64
			createdAt int64
		)
		if err := rows.Scan(&cp.SessionID, &seq, &cp.Payload, &cp.Hash, &createdAt); err != nil {
			return nil, fmt.Errorf("scan checkpoint: %w", err)
		}
		cp.Seq = uint64(seq)
		cp.CreatedAt = fromMillis(createdAt)
		checkpoints = append(checkpoints, cp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read checkpoints: %w", err)
	}
	return checkpoints, nil
}

// AppendIntent journals one intent. Seq values are unique per session.
func (s *Store) AppendIntent(ctx context.Context, record storage.IntentRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(record.SessionID) == "" {
		return apperrors.New(apperrors.CodeSessionIDRequired, "session id is required")
	}
	payload, err := json.Marshal(record.Intent)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidIntent, "encode intent", err)
	}
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO journal (session_id, seq, kind, status, intent_json, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		record.SessionID, int64(record.Seq), record.Intent.Kind.String(), record.Status(), string(payload), toMillis(record.CreatedAt),
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "foreign key") {
			return storage.ErrNotFound
		}
		return apperrors.Wrap(apperrors.CodeStorage, "append intent", err)
	}
	return nil
}

// ListIntents returns journal entries after query.AfterSeq in seq order.
func (s *Store) ListIntents(ctx context.Context, query storage.ListIntentsQuery) ([]storage.IntentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := filter.Parse(query.Filter)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidFilter, "invalid journal filter", err)
	}
	cond, err := f.SQL()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidFilter, "invalid journal filter", err)
	}

	sqlQuery := `SELECT session_id, seq, intent_json, status, created_at FROM journal WHERE session_id = ? AND seq > ?`
	params := []any{query.SessionID, int64(query.AfterSeq)}
	if cond.Clause != "" {
		sqlQuery += " AND " + cond.Clause
		params = append(params, cond.Params...)
	}
	sqlQuery += " ORDER BY seq ASC LIMIT ?"
	limit := -1
	if query.Limit > 0 {
		limit = query.Limit
	}
	params = append(params, limit)

	rows, err := s.sqlDB.QueryContext(ctx, sqlQuery, params...)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "list intents", err)
	}
	defer rows.Close()

	var records []storage.IntentRecord
	for rows.Next() {
		var (
			record    storage.IntentRecord
			seq       int64
			payload   string
			status    string
			createdAt int64
		)
		if err := rows.Scan(&record.SessionID, &seq, &payload, &status, &createdAt); err != nil {
			return nil, fmt.Errorf("scan intent: %w", err)
		}
		var intent disposition.Intent
		if err := json.Unmarshal([]byte(payload), &intent); err != nil {
			return nil, apperrors.Wrap(apperrors.CodeCheckpointCorrupt, "decode journaled intent", err)
		}
		record.Seq = uint64(seq)
		record.Intent = intent
		record.Accepted = status == storage.StatusAccepted
		record.CreatedAt = fromMillis(createdAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read intents: %w", err)
	}
	return records, nil
}

func isConstraintError(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "constraint failed")
}
