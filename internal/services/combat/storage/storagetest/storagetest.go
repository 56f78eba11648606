// Package storagetest holds conformance checks shared by combat store
// implementations.
package storagetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/louisbranch/duskmarch/internal/services/combat/storage"
	"github.com/louisbranch/duskmarch/internal/systems/disposition"
)

// OpenFunc returns a fresh empty store for one subtest.
type OpenFunc func(t *testing.T) storage.Store

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// Run exercises the storage.Store contract against open.
func Run(t *testing.T, open OpenFunc) {
	t.Run("session round trip", func(t *testing.T) { testSessionRoundTrip(t, open(t)) })
	t.Run("duplicate session", func(t *testing.T) { testDuplicateSession(t, open(t)) })
	t.Run("missing records", func(t *testing.T) { testMissingRecords(t, open(t)) })
	t.Run("checkpoints newest first", func(t *testing.T) { testCheckpointOrder(t, open(t)) })
	t.Run("checkpoint replace", func(t *testing.T) { testCheckpointReplace(t, open(t)) })
	t.Run("journal window", func(t *testing.T) { testJournalWindow(t, open(t)) })
	t.Run("journal filter", func(t *testing.T) { testJournalFilter(t, open(t)) })
	t.Run("journal rejects bad filter", func(t *testing.T) { testJournalBadFilter(t, open(t)) })
}

// SeedSession stores a session record with a fixed identity.
func SeedSession(t *testing.T, store storage.Store, id string) storage.SessionRecord {
	t.Helper()
	record := storage.SessionRecord{
		ID:        id,
		Seed:      ^uint64(0) - 7,
		EnemyType: disposition.EnemyUpyr,
		Zone:      disposition.ZonePrav,
		CreatedAt: epoch,
	}
	if err := store.PutSession(context.Background(), record); err != nil {
		t.Fatalf("PutSession() error = %v", err)
	}
	return record
}

func testSessionRoundTrip(t *testing.T, store storage.Store) {
	want := SeedSession(t, store, "s1")
	got, err := store.GetSession(context.Background(), "s1")
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if !SameSession(got, want) {
		t.Fatalf("session = %+v, want %+v", got, want)
	}
}

// SameSession compares session records, treating equal instants as equal.
func SameSession(a, b storage.SessionRecord) bool {
	return a.ID == b.ID && a.Seed == b.Seed && a.EnemyType == b.EnemyType &&
		a.Zone == b.Zone && a.CreatedAt.Equal(b.CreatedAt)
}

func testDuplicateSession(t *testing.T, store storage.Store) {
	record := SeedSession(t, store, "s1")
	if err := store.PutSession(context.Background(), record); !errors.Is(err, storage.ErrSessionExists) {
		t.Fatalf("duplicate PutSession() error = %v, want ErrSessionExists", err)
	}
}

func testMissingRecords(t *testing.T, store storage.Store) {
	ctx := context.Background()
	if _, err := store.GetSession(ctx, "ghost"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("GetSession() error = %v, want ErrNotFound", err)
	}
	if _, err := store.GetLatestCheckpoint(ctx, "ghost"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("GetLatestCheckpoint() error = %v, want ErrNotFound", err)
	}
	checkpoints, err := store.ListCheckpoints(ctx, "ghost")
	if err != nil || len(checkpoints) != 0 {
		t.Fatalf("ListCheckpoints() = %v, %v, want empty", checkpoints, err)
	}
	intents, err := store.ListIntents(ctx, storage.ListIntentsQuery{SessionID: "ghost"})
	if err != nil || len(intents) != 0 {
		t.Fatalf("ListIntents() = %v, %v, want empty", intents, err)
	}
}

func testCheckpointOrder(t *testing.T, store storage.Store) {
	ctx := context.Background()
	SeedSession(t, store, "s1")
	for _, seq := range []uint64{0, 10, 5} {
		cp := storage.Checkpoint{SessionID: "s1", Seq: seq, Payload: []byte(`{"seq":1}`), Hash: "h", CreatedAt: epoch}
		if err := store.PutCheckpoint(ctx, cp); err != nil {
			t.Fatalf("PutCheckpoint(%d) error = %v", seq, err)
		}
	}
	latest, err := store.GetLatestCheckpoint(ctx, "s1")
	if err != nil {
		t.Fatalf("GetLatestCheckpoint() error = %v", err)
	}
	if latest.Seq != 10 || string(latest.Payload) != `{"seq":1}` || !latest.CreatedAt.Equal(epoch) {
		t.Fatalf("latest = %+v, want seq 10", latest)
	}
	all, err := store.ListCheckpoints(ctx, "s1")
	if err != nil {
		t.Fatalf("ListCheckpoints() error = %v", err)
	}
	var seqs []uint64
	for _, cp := range all {
		seqs = append(seqs, cp.Seq)
	}
	if len(seqs) != 3 || seqs[0] != 10 || seqs[1] != 5 || seqs[2] != 0 {
		t.Fatalf("checkpoint seqs = %v, want [10 5 0]", seqs)
	}
}

func testCheckpointReplace(t *testing.T, store storage.Store) {
	ctx := context.Background()
	SeedSession(t, store, "s1")
	for _, hash := range []string{"first", "second"} {
		cp := storage.Checkpoint{SessionID: "s1", Seq: 3, Payload: []byte(hash), Hash: hash, CreatedAt: epoch}
		if err := store.PutCheckpoint(ctx, cp); err != nil {
			t.Fatalf("PutCheckpoint() error = %v", err)
		}
	}
	all, err := store.ListCheckpoints(ctx, "s1")
	if err != nil {
		t.Fatalf("ListCheckpoints() error = %v", err)
	}
	if len(all) != 1 || all[0].Hash != "second" {
		t.Fatalf("checkpoints = %+v, want single replaced checkpoint", all)
	}
}

func appendScript(t *testing.T, store storage.Store, sessionID string) {
	t.Helper()
	script := []struct {
		intent   disposition.Intent
		accepted bool
	}{
		{disposition.Intent{Kind: disposition.IntentStrike, CardID: "a", Fate: disposition.WithKeyword(disposition.KeywordSurge)}, true},
		{disposition.Intent{Kind: disposition.IntentEcho, Fate: disposition.Fate{Modifier: 2}}, true},
		{disposition.Intent{Kind: disposition.IntentStrike, CardID: "zz"}, false},
		{disposition.Intent{Kind: disposition.IntentEndTurn}, true},
		{disposition.Intent{Kind: disposition.IntentEnemyTurn, BaseDamage: 4}, true},
	}
	for i, step := range script {
		record := storage.IntentRecord{
			SessionID: sessionID,
			Seq:       uint64(i + 1),
			Intent:    step.intent,
			Accepted:  step.accepted,
			CreatedAt: epoch.Add(time.Duration(i) * time.Second),
		}
		if err := store.AppendIntent(context.Background(), record); err != nil {
			t.Fatalf("AppendIntent(%d) error = %v", i+1, err)
		}
	}
}

func seqsOf(records []storage.IntentRecord) []uint64 {
	seqs := make([]uint64, 0, len(records))
	for _, r := range records {
		seqs = append(seqs, r.Seq)
	}
	return seqs
}

func equalSeqs(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func testJournalWindow(t *testing.T, store storage.Store) {
	ctx := context.Background()
	SeedSession(t, store, "s1")
	SeedSession(t, store, "s2")
	appendScript(t, store, "s1")
	appendScript(t, store, "s2")

	all, err := store.ListIntents(ctx, storage.ListIntentsQuery{SessionID: "s1"})
	if err != nil {
		t.Fatalf("ListIntents() error = %v", err)
	}
	if !equalSeqs(seqsOf(all), []uint64{1, 2, 3, 4, 5}) {
		t.Fatalf("seqs = %v, want 1..5", seqsOf(all))
	}
	first := all[0]
	if first.Intent.Kind != disposition.IntentStrike || first.Intent.Fate.Keyword != disposition.KeywordSurge || !first.Accepted {
		t.Fatalf("first record = %+v", first)
	}
	if all[2].Accepted {
		t.Fatal("rejected intent stored as accepted")
	}
	if all[4].Intent.BaseDamage != 4 || !all[4].CreatedAt.Equal(epoch.Add(4*time.Second)) {
		t.Fatalf("last record = %+v", all[4])
	}

	window, err := store.ListIntents(ctx, storage.ListIntentsQuery{SessionID: "s1", AfterSeq: 2, Limit: 2})
	if err != nil {
		t.Fatalf("ListIntents() error = %v", err)
	}
	if !equalSeqs(seqsOf(window), []uint64{3, 4}) {
		t.Fatalf("window seqs = %v, want [3 4]", seqsOf(window))
	}
}

func testJournalFilter(t *testing.T, store storage.Store) {
	ctx := context.Background()
	SeedSession(t, store, "s1")
	appendScript(t, store, "s1")

	tests := []struct {
		filter string
		want   []uint64
	}{
		{`kind = "strike"`, []uint64{1, 3}},
		{`status = "rejected"`, []uint64{3}},
		{`kind = "strike" AND status = "accepted"`, []uint64{1}},
		{`seq >= 4`, []uint64{4, 5}},
	}
	for _, tt := range tests {
		got, err := store.ListIntents(ctx, storage.ListIntentsQuery{SessionID: "s1", Filter: tt.filter})
		if err != nil {
			t.Fatalf("ListIntents(%q) error = %v", tt.filter, err)
		}
		if !equalSeqs(seqsOf(got), tt.want) {
			t.Fatalf("ListIntents(%q) seqs = %v, want %v", tt.filter, seqsOf(got), tt.want)
		}
	}
}

func testJournalBadFilter(t *testing.T, store storage.Store) {
	SeedSession(t, store, "s1")
	_, err := store.ListIntents(context.Background(), storage.ListIntentsQuery{SessionID: "s1", Filter: "invalid @@@ filter"})
	if err == nil {
		t.Fatal("expected invalid filter error")
	}
}
