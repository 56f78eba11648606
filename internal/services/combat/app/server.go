package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	combatv1 "github.com/louisbranch/duskmarch/api/gen/go/combat/v1"
	"github.com/louisbranch/duskmarch/internal/platform/timeouts"
	combatgrpc "github.com/louisbranch/duskmarch/internal/services/combat/api/grpc"
	"github.com/louisbranch/duskmarch/internal/services/combat/checkpoint"
	"github.com/louisbranch/duskmarch/internal/services/combat/session"
	"github.com/louisbranch/duskmarch/internal/services/combat/storage"
	storagesqlite "github.com/louisbranch/duskmarch/internal/services/combat/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config configures a combat server.
type Config struct {
	// Addr is the listen address, for example ":8090".
	Addr            string
	Store           string
	DBPath          string
	CheckpointEvery int
	// ShutdownTimeout bounds graceful stop; zero uses timeouts.Shutdown.
	ShutdownTimeout time.Duration
}

// Server hosts the combat service.
type Server struct {
	listener        net.Listener
	grpcServer      *grpc.Server
	health          *health.Server
	store           storage.Store
	shutdownTimeout time.Duration
}

// New creates a configured combat server listening on cfg.Addr.
func New(ctx context.Context, cfg Config) (*Server, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	manager, err := session.NewManager(store, session.WithCheckpointEvery(cfg.CheckpointEvery))
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(combatgrpc.UnaryServerInterceptor(nil)),
	)
	combatv1.RegisterCombatServiceServer(grpcServer, combatgrpc.NewCombatService(manager))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(combatgrpc.HealthService, grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(combatv1.CombatService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = timeouts.Shutdown
	}
	return &Server{
		listener:        listener,
		grpcServer:      grpcServer,
		health:          healthServer,
		store:           store,
		shutdownTimeout: shutdownTimeout,
	}, nil
}

// Addr returns the listener address for the combat server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a combat server until the context ends.
func Run(ctx context.Context, cfg Config) error {
	srv, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	return srv.Serve(ctx)
}

// Serve starts the combat server and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.closeStore()

	log.Printf("combat server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	handleErr := func(err error) error {
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.stop()
		return handleErr(<-serveErr)
	case err := <-serveErr:
		return handleErr(err)
	}
}

// stop drains in-flight calls, forcing the stop once the shutdown timeout
// passes.
func (s *Server) stop() {
	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()
	timer := time.NewTimer(s.shutdownTimeout)
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
		log.Printf("combat server graceful stop exceeded %s; forcing stop", s.shutdownTimeout)
		s.grpcServer.Stop()
		<-done
	}
}

func openStore(ctx context.Context, cfg Config) (storage.Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Store)) {
	case StoreMemory:
		return checkpoint.NewMemoryStore(), nil
	case "", StoreSQLite:
	default:
		return nil, fmt.Errorf("unknown combat store %q", cfg.Store)
	}
	path := strings.TrimSpace(cfg.DBPath)
	if path == "" {
		path = filepath.Join("data", "combat.db")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := storagesqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	return store, nil
}

func (s *Server) closeStore() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		log.Printf("close combat store: %v", err)
	}
}
