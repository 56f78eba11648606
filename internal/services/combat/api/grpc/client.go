package grpc

import (
	"context"

	combatv1 "github.com/louisbranch/duskmarch/api/gen/go/combat/v1"
	platformgrpc "github.com/louisbranch/duskmarch/internal/platform/grpc"
	gogrpc "google.golang.org/grpc"
)

// HealthService is the health check name the combat server reports under.
const HealthService = "combat"

// Dial connects to a combat server and waits until it reports healthy.
func Dial(ctx context.Context, target string, logf func(string, ...any), opts ...gogrpc.DialOption) (*gogrpc.ClientConn, combatv1.CombatServiceClient, error) {
	conn, err := platformgrpc.ConnectWithHealth(ctx, target, HealthService, logf, opts...)
	if err != nil {
		return nil, nil, err
	}
	return conn, combatv1.NewCombatServiceClient(conn), nil
}
