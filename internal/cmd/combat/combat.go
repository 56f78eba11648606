// Package combat parses combat command flags and starts the combat service.
package combat

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/duskmarch/internal/platform/cmd"
	server "github.com/louisbranch/duskmarch/internal/services/combat/app"
)

// Config holds combat command configuration, read from DUSKMARCH_COMBAT_*.
type Config struct {
	Port            int    `env:"PORT" envDefault:"8090"`
	Addr            string `env:"ADDR"`
	DBPath          string `env:"DB_PATH" envDefault:"data/combat.db"`
	CheckpointEvery int    `env:"CHECKPOINT_EVERY" envDefault:"5"`
	Store           string `env:"STORE" envDefault:"sqlite"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseServiceConfig(&cfg, entrypoint.ServiceCombat); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The combat server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The combat server listen address (overrides -port)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "The SQLite database path")
	fs.IntVar(&cfg.CheckpointEvery, "checkpoint-every", cfg.CheckpointEvery, "Intents between automatic checkpoints")
	fs.StringVar(&cfg.Store, "store", cfg.Store, "Storage backend: sqlite or memory")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.CheckpointEvery < 1 {
		return Config{}, fmt.Errorf("checkpoint interval must be positive, got %d", cfg.CheckpointEvery)
	}
	return cfg, nil
}

// ServerConfig resolves the listen address and storage settings.
func (c Config) ServerConfig() server.Config {
	addr := c.Addr
	if addr == "" {
		addr = fmt.Sprintf(":%d", c.Port)
	}
	return server.Config{
		Addr:            addr,
		Store:           c.Store,
		DBPath:          c.DBPath,
		CheckpointEvery: c.CheckpointEvery,
	}
}

// Run starts the combat service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCombat, func(ctx context.Context) error {
		return server.Run(ctx, cfg.ServerConfig())
	})
}
