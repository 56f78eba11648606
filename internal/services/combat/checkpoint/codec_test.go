package checkpoint

import (
	"errors"
	"testing"
	"time"

	"github.com/louisbranch/duskmarch/internal/core/encoding"
	apperrors "github.com/louisbranch/duskmarch/internal/platform/errors"
	"github.com/louisbranch/duskmarch/internal/systems/disposition"
)

func newSim(t *testing.T) *disposition.Simulation {
	t.Helper()
	sim, err := disposition.New(disposition.Config{
		Hand:           []disposition.Card{{ID: "a", Cost: 1, Power: 5}, {ID: "b", Cost: 1, Power: 3}},
		Energy:         3,
		StartingEnergy: 3,
		HeroHP:         20,
		HeroMaxHP:      20,
		Zone:           disposition.ZoneNav,
		EnemyType:      disposition.EnemyWolf,
		Seed:           7,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return sim
}

func TestSealOpenRoundTrip(t *testing.T) {
	sim := newSim(t)
	sim.PlayStrike("a", "", disposition.NoFate)
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.FixedZone("x", 3600))

	cp, err := Seal("s1", 4, sim, now)
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}
	if cp.SessionID != "s1" || cp.Seq != 4 || cp.CreatedAt.Location() != time.UTC {
		t.Fatalf("checkpoint = %+v", cp)
	}
	if len(cp.Hash) != 64 {
		t.Fatalf("hash length = %d, want 64", len(cp.Hash))
	}
	snap, err := Open(cp)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if !snap.Equal(disposition.Capture(sim)) {
		t.Fatal("opened snapshot differs from simulation")
	}
}

func TestSealIsStable(t *testing.T) {
	a, err := Seal("s1", 0, newSim(t), time.Now())
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}
	b, err := Seal("s1", 0, newSim(t), time.Now())
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}
	if a.Hash != b.Hash || string(a.Payload) != string(b.Payload) {
		t.Fatal("identical simulations sealed differently")
	}
}

func TestOpenRejectsTampering(t *testing.T) {
	cp, err := Seal("s1", 2, newSim(t), time.Now())
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	tampered := cp
	tampered.Payload = append([]byte(nil), cp.Payload...)
	tampered.Payload[len(tampered.Payload)/2] ^= 0x01
	if _, err := Open(tampered); apperrors.CodeOf(err) != apperrors.CodeCheckpointCorrupt {
		t.Fatalf("tampered payload error = %v, want checkpoint corrupt", err)
	}

	truncated := cp
	truncated.Payload = cp.Payload[:len(cp.Payload)/2]
	truncated.Hash = encoding.HashBytes(truncated.Payload)
	_, err = Open(truncated)
	if apperrors.CodeOf(err) != apperrors.CodeCheckpointCorrupt {
		t.Fatalf("truncated payload code = %s, want checkpoint corrupt", apperrors.CodeOf(err))
	}
	if !errors.Is(err, disposition.ErrSnapshotCorrupt) {
		t.Fatalf("truncated payload error = %v, want wrapped ErrSnapshotCorrupt", err)
	}
}
