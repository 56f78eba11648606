package session

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	apperrors "github.com/louisbranch/duskmarch/internal/platform/errors"
	"github.com/louisbranch/duskmarch/internal/platform/id"
	platformotel "github.com/louisbranch/duskmarch/internal/platform/otel"
	"github.com/louisbranch/duskmarch/internal/random"
	"github.com/louisbranch/duskmarch/internal/services/combat/checkpoint"
	"github.com/louisbranch/duskmarch/internal/services/combat/replay"
	"github.com/louisbranch/duskmarch/internal/services/combat/storage"
	"github.com/louisbranch/duskmarch/internal/systems/disposition"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultCheckpointEvery is how many journaled intents pass between
// automatic checkpoints.
const DefaultCheckpointEvery = 5

// View is the observable state of a session after its last journaled intent.
type View struct {
	SessionID string               `json:"session_id"`
	Seq       uint64               `json:"seq"`
	State     disposition.Snapshot `json:"state"`
}

// ActResult reports what one intent did.
type ActResult struct {
	Accepted bool `json:"accepted"`
	// Reason names why a rejected intent was refused.
	Reason    string                 `json:"reason,omitempty"`
	EnemyTurn *disposition.EnemyTurn `json:"enemy_turn,omitempty"`
	View      View                   `json:"view"`
}

// CheckpointInfo describes a sealed checkpoint.
type CheckpointInfo struct {
	SessionID string    `json:"session_id"`
	Seq       uint64    `json:"seq"`
	Hash      string    `json:"hash"`
	CreatedAt time.Time `json:"created_at"`
}

// ResumeInfo describes how a session was rebuilt.
type ResumeInfo struct {
	CheckpointSeq uint64 `json:"checkpoint_seq"`
	Replayed      int    `json:"replayed"`
	Skipped       int    `json:"skipped"`
}

// JournalPage is one page of a session journal.
type JournalPage struct {
	Records []storage.IntentRecord
	// NextAfterSeq resumes listing; zero means there are no more entries.
	NextAfterSeq uint64
}

type liveSession struct {
	mu              sync.Mutex
	sim             *disposition.Simulation
	lastSeq         uint64
	sinceCheckpoint int
	// detached is set under mu once the session left the live map. Holders of
	// a detached session must look it up again.
	detached bool
}

// Manager owns live sessions and their persistence.
type Manager struct {
	store           storage.Store
	checkpointEvery int
	vulnerabilities *disposition.VulnerabilityRegistry
	now             func() time.Time
	newID           func() (string, error)
	newSeed         func() (uint64, error)
	tracer          trace.Tracer
	logf            func(string, ...any)

	mu   sync.Mutex
	live map[string]*liveSession
}

// Option configures a Manager.
type Option func(*Manager)

// WithCheckpointEvery sets the automatic checkpoint interval. Values below
// one are ignored.
func WithCheckpointEvery(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.checkpointEvery = n
		}
	}
}

// WithVulnerabilities sets the registry every simulation uses.
func WithVulnerabilities(registry *disposition.VulnerabilityRegistry) Option {
	return func(m *Manager) { m.vulnerabilities = registry }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithIDGenerator overrides session id generation.
func WithIDGenerator(newID func() (string, error)) Option {
	return func(m *Manager) { m.newID = newID }
}

// WithSeedSource overrides the seed drawn when a start config has none.
func WithSeedSource(newSeed func() (uint64, error)) Option {
	return func(m *Manager) { m.newSeed = newSeed }
}

// WithTracer overrides the tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(m *Manager) { m.tracer = tracer }
}

// WithLogger overrides lifecycle logging.
func WithLogger(logf func(string, ...any)) Option {
	return func(m *Manager) { m.logf = logf }
}

// NewManager builds a manager over store.
func NewManager(store storage.Store, opts ...Option) (*Manager, error) {
	if store == nil {
		return nil, errors.New("combat store is required")
	}
	m := &Manager{
		store:           store,
		checkpointEvery: DefaultCheckpointEvery,
		vulnerabilities: disposition.DefaultVulnerabilities(),
		now:             time.Now,
		newID:           id.NewID,
		newSeed:         random.NewSeed,
		tracer:          platformotel.Tracer("combat"),
		logf:            log.Printf,
		live:            make(map[string]*liveSession),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m, nil
}

// Start creates a duel, stores it with its initial checkpoint, and returns
// its first view.
func (m *Manager) Start(ctx context.Context, cfg StartConfig) (view View, err error) {
	ctx, span := m.tracer.Start(ctx, "combat.start", trace.WithAttributes(
		attribute.String("combat.enemy_type", cfg.EnemyType),
		attribute.String("combat.zone", cfg.Zone.String()),
	))
	defer func() { endSpan(span, err) }()

	if err := cfg.validate(); err != nil {
		return View{}, err
	}
	seed := cfg.Seed
	if seed == 0 {
		if seed, err = m.newSeed(); err != nil {
			return View{}, err
		}
	}
	sim, err := cfg.newSimulation(seed, m.simOptions()...)
	if err != nil {
		return View{}, err
	}
	sessionID, err := m.newID()
	if err != nil {
		return View{}, err
	}
	span.SetAttributes(attribute.String("combat.session_id", sessionID))

	now := m.now().UTC()
	if err := m.store.PutSession(ctx, storage.SessionRecord{
		ID:        sessionID,
		Seed:      seed,
		EnemyType: sim.EnemyType(),
		Zone:      sim.Zone(),
		CreatedAt: now,
	}); err != nil {
		return View{}, err
	}
	cp, err := checkpoint.Seal(sessionID, 0, sim, now)
	if err != nil {
		return View{}, err
	}
	if err := m.store.PutCheckpoint(ctx, cp); err != nil {
		return View{}, err
	}

	m.mu.Lock()
	m.live[sessionID] = &liveSession{sim: sim}
	m.mu.Unlock()

	span.SetAttributes(attribute.Int("combat.disposition", sim.Disposition()))
	return View{SessionID: sessionID, State: disposition.Capture(sim)}, nil
}

// Act applies one intent to a session and journals it. Rejections are
// results, not errors; acting on a finished duel is an error.
func (m *Manager) Act(ctx context.Context, sessionID string, in disposition.Intent) (result ActResult, err error) {
	ctx, span := m.tracer.Start(ctx, "combat.act", trace.WithAttributes(
		attribute.String("combat.session_id", sessionID),
		attribute.String("combat.intent", in.Kind.String()),
	))
	defer func() { endSpan(span, err) }()

	if in.Kind == disposition.IntentUnknown {
		return ActResult{}, apperrors.New(apperrors.CodeInvalidIntent, "intent kind is required")
	}
	live, err := m.acquire(ctx, sessionID)
	if err != nil {
		return ActResult{}, err
	}
	defer live.mu.Unlock()

	if live.sim.IsOver() {
		return ActResult{}, apperrors.WithMetadata(apperrors.CodeSessionEnded, "duel already ended",
			map[string]string{"SessionID": sessionID})
	}

	// Apply on a copy so a failed journal write leaves the live state intact.
	next := live.sim.Clone()
	applied := in.Apply(next)
	seq := live.lastSeq + 1
	now := m.now().UTC()
	if err := m.store.AppendIntent(ctx, storage.IntentRecord{
		SessionID: sessionID,
		Seq:       seq,
		Intent:    in,
		Accepted:  applied.Accepted,
		CreatedAt: now,
	}); err != nil {
		return ActResult{}, err
	}

	result = ActResult{Accepted: applied.Accepted, EnemyTurn: applied.EnemyTurn}
	if !applied.Accepted {
		result.Reason = rejectionReason(live.sim, in)
	}
	live.sim = next
	live.lastSeq = seq
	live.sinceCheckpoint++

	if live.sinceCheckpoint >= m.checkpointEvery || next.IsOver() {
		if _, err := m.seal(ctx, sessionID, live, now); err != nil {
			m.logf("checkpoint session %s at seq %d: %v", sessionID, seq, err)
		}
	}

	span.SetAttributes(
		attribute.Bool("combat.accepted", applied.Accepted),
		attribute.Int("combat.disposition", next.Disposition()),
	)
	result.View = View{SessionID: sessionID, Seq: seq, State: disposition.Capture(next)}
	return result, nil
}

// State returns the current view of a session.
func (m *Manager) State(ctx context.Context, sessionID string) (View, error) {
	live, err := m.acquire(ctx, sessionID)
	if err != nil {
		return View{}, err
	}
	defer live.mu.Unlock()
	return View{SessionID: sessionID, Seq: live.lastSeq, State: disposition.Capture(live.sim)}, nil
}

// Checkpoint seals the current state of a session immediately.
func (m *Manager) Checkpoint(ctx context.Context, sessionID string) (info CheckpointInfo, err error) {
	ctx, span := m.tracer.Start(ctx, "combat.checkpoint", trace.WithAttributes(
		attribute.String("combat.session_id", sessionID),
	))
	defer func() { endSpan(span, err) }()

	live, err := m.acquire(ctx, sessionID)
	if err != nil {
		return CheckpointInfo{}, err
	}
	defer live.mu.Unlock()
	return m.seal(ctx, sessionID, live, m.now().UTC())
}

// Resume drops any in-memory state of a session and rebuilds it from the
// newest valid checkpoint plus the journal.
func (m *Manager) Resume(ctx context.Context, sessionID string) (view View, info ResumeInfo, err error) {
	ctx, span := m.tracer.Start(ctx, "combat.resume", trace.WithAttributes(
		attribute.String("combat.session_id", sessionID),
	))
	defer func() { endSpan(span, err) }()

	m.detach(strings.TrimSpace(sessionID))
	live, info, err := m.load(ctx, sessionID)
	if err != nil {
		return View{}, ResumeInfo{}, err
	}
	live.mu.Lock()
	defer live.mu.Unlock()
	span.SetAttributes(
		attribute.Int64("combat.checkpoint_seq", int64(info.CheckpointSeq)),
		attribute.Int("combat.replayed", info.Replayed),
		attribute.Int("combat.skipped", info.Skipped),
	)
	return View{SessionID: sessionID, Seq: live.lastSeq, State: disposition.Capture(live.sim)}, info, nil
}

// Journal lists a page of a session's journal after afterSeq.
func (m *Manager) Journal(ctx context.Context, sessionID, filter string, pageSize int, afterSeq uint64) (JournalPage, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return JournalPage{}, apperrors.New(apperrors.CodeSessionIDRequired, "session id is required")
	}
	if _, err := m.store.GetSession(ctx, sessionID); err != nil {
		return JournalPage{}, m.notFound(sessionID, err)
	}
	if pageSize <= 0 {
		pageSize = 50
	}
	records, err := m.store.ListIntents(ctx, storage.ListIntentsQuery{
		SessionID: sessionID,
		AfterSeq:  afterSeq,
		Limit:     pageSize + 1,
		Filter:    filter,
	})
	if err != nil {
		return JournalPage{}, err
	}
	page := JournalPage{Records: records}
	if len(records) > pageSize {
		page.Records = records[:pageSize]
		page.NextAfterSeq = page.Records[pageSize-1].Seq
	}
	return page, nil
}

// Evict drops a session from memory. The next access reloads it from storage.
func (m *Manager) Evict(sessionID string) {
	m.detach(sessionID)
}

// detach removes a session from the live map once any in-flight operation on
// it has finished, and marks it so waiting callers reload it.
func (m *Manager) detach(sessionID string) {
	m.mu.Lock()
	live, ok := m.live[sessionID]
	m.mu.Unlock()
	if !ok {
		return
	}
	live.mu.Lock()
	defer live.mu.Unlock()
	live.detached = true
	m.mu.Lock()
	if m.live[sessionID] == live {
		delete(m.live, sessionID)
	}
	m.mu.Unlock()
}

// acquire returns the live session with its lock held, skipping sessions
// detached while the caller waited for the lock.
func (m *Manager) acquire(ctx context.Context, sessionID string) (*liveSession, error) {
	for {
		live, err := m.session(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		live.mu.Lock()
		if !live.detached {
			return live, nil
		}
		live.mu.Unlock()
	}
}

func (m *Manager) simOptions() []disposition.Option {
	return []disposition.Option{disposition.WithVulnerabilities(m.vulnerabilities)}
}

// session returns the live session, loading it from storage when needed.
func (m *Manager) session(ctx context.Context, sessionID string) (*liveSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, apperrors.New(apperrors.CodeSessionIDRequired, "session id is required")
	}
	m.mu.Lock()
	live, ok := m.live[sessionID]
	m.mu.Unlock()
	if ok {
		return live, nil
	}
	live, _, err := m.load(ctx, sessionID)
	return live, err
}

func (m *Manager) load(ctx context.Context, sessionID string) (*liveSession, ResumeInfo, error) {
	if _, err := m.store.GetSession(ctx, sessionID); err != nil {
		return nil, ResumeInfo{}, m.notFound(sessionID, err)
	}
	res, err := replay.Resume(ctx, m.store, m.store, sessionID, replay.Options{
		SimOptions: m.simOptions(),
		OnSkip: func(cp storage.Checkpoint, err error) {
			m.logf("session %s: skipping checkpoint at seq %d: %v", sessionID, cp.Seq, err)
		},
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ResumeInfo{}, apperrors.WithMetadata(apperrors.CodeNoValidCheckpoint,
				"session has no checkpoints", map[string]string{"SessionID": sessionID})
		}
		return nil, ResumeInfo{}, err
	}
	info := ResumeInfo{CheckpointSeq: res.CheckpointSeq, Replayed: res.Applied, Skipped: res.Skipped}
	if res.Skipped > 0 {
		m.logf("session %s resumed from checkpoint %d after skipping %d", sessionID, res.CheckpointSeq, res.Skipped)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another caller may have loaded the session meanwhile; keep the first.
	if existing, ok := m.live[sessionID]; ok {
		return existing, info, nil
	}
	live := &liveSession{sim: res.Sim, lastSeq: res.LastSeq, sinceCheckpoint: res.Applied}
	m.live[sessionID] = live
	return live, info, nil
}

// seal writes a checkpoint of live. Callers hold live.mu.
func (m *Manager) seal(ctx context.Context, sessionID string, live *liveSession, now time.Time) (CheckpointInfo, error) {
	cp, err := checkpoint.Seal(sessionID, live.lastSeq, live.sim, now)
	if err != nil {
		return CheckpointInfo{}, err
	}
	if err := m.store.PutCheckpoint(ctx, cp); err != nil {
		return CheckpointInfo{}, err
	}
	live.sinceCheckpoint = 0
	return CheckpointInfo{SessionID: sessionID, Seq: cp.Seq, Hash: cp.Hash, CreatedAt: cp.CreatedAt}, nil
}

func (m *Manager) notFound(sessionID string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperrors.WithMetadata(apperrors.CodeSessionNotFound, "session not found",
			map[string]string{"SessionID": sessionID})
	}
	return err
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
	}
	span.End()
}
