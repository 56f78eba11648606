// Package grpc holds client connection helpers shared by duskmarch services.
package grpc

import (
	"context"
	"fmt"
	"time"

	"github.com/louisbranch/duskmarch/internal/platform/timeouts"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	initialHealthBackoff = 100 * time.Millisecond
	maxHealthBackoff     = time.Second
)

// ConnectStage describes where a connection attempt failed.
type ConnectStage string

const (
	// ConnectStageClient indicates the client could not be created.
	ConnectStageClient ConnectStage = "client"
	// ConnectStageHealth indicates the health check never reported SERVING.
	ConnectStageHealth ConnectStage = "health"
)

// ConnectError wraps connection failures with the stage they happened in.
type ConnectError struct {
	Stage ConnectStage
	Err   error
}

// Error implements the error interface.
func (e *ConnectError) Error() string {
	if e == nil {
		return "gRPC connect error"
	}
	return fmt.Sprintf("gRPC %s error: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConnectError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DefaultClientDialOptions returns insecure transport credentials plus the
// OTel client handler, so outbound calls propagate trace context.
func DefaultClientDialOptions() []gogrpc.DialOption {
	return []gogrpc.DialOption{
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
		gogrpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}
}

// ConnectWithHealth creates a client for target and waits until the health
// service reports SERVING for service. The wait is bounded by timeouts.GRPCDial
// unless ctx ends sooner. The connection is closed on failure.
func ConnectWithHealth(ctx context.Context, target, service string, logf func(string, ...any), opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(opts) == 0 {
		opts = DefaultClientDialOptions()
	}
	conn, err := gogrpc.NewClient(target, opts...)
	if err != nil {
		return nil, &ConnectError{Stage: ConnectStageClient, Err: err}
	}

	waitCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCDial)
	defer cancel()
	if err := WaitForHealth(waitCtx, conn, service, logf); err != nil {
		_ = conn.Close()
		return nil, &ConnectError{Stage: ConnectStageHealth, Err: err}
	}
	return conn, nil
}

// WaitForHealth blocks until the gRPC health check reports SERVING or the context ends.
func WaitForHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, logf func(string, ...any)) error {
	if conn == nil {
		return fmt.Errorf("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}

	client := grpc_health_v1.NewHealthClient(conn)
	backoff := initialHealthBackoff
	for {
		probeCtx, cancel := context.WithTimeout(ctx, timeouts.HealthPoll)
		resp, err := client.Check(probeCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
		cancel()
		switch {
		case err == nil && resp.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING:
			return nil
		case err != nil:
			logf("waiting for gRPC health: %v", err)
		default:
			logf("waiting for gRPC health: status %s", resp.GetStatus())
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for gRPC health: %w", ctx.Err())
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxHealthBackoff)
	}
}
