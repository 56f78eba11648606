package migrations

import (
	"io/fs"
	"testing"
)

func TestCombatMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(CombatFS, "combat/*.sql")
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("expected embedded combat migrations")
	}
}
