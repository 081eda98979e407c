// battlesim runs scripted battles through the combat engine and prints the
// results as JSON.
//
// Usage:
//
//	go run ./cmd/battlesim -scenario scenarios/example.yaml
//	go run ./cmd/battlesim -scenario scenarios/example.yaml -seed 42 -workers 8
//	go run ./cmd/battlesim -scenario scenarios/example.yaml -persist
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/battlecore/internal/ai"
	"github.com/udisondev/battlecore/internal/config"
	"github.com/udisondev/battlecore/internal/db"
	"github.com/udisondev/battlecore/internal/game/roster"
	"github.com/udisondev/battlecore/internal/rng"
)

const ConfigPath = "config/battlesim.yaml"

type options struct {
	configPath   string
	scenarioPath string
	seed         uint64
	workers      int
	persist      bool
	verify       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "config file (default $"+config.EnvPath+" or "+ConfigPath+")")
	flag.StringVar(&opts.scenarioPath, "scenario", "scenarios/example.yaml", "scenario file")
	flag.Uint64Var(&opts.seed, "seed", 0, "base seed (0 = config value or random)")
	flag.IntVar(&opts.workers, "workers", 0, "parallel battles (0 = config value)")
	flag.BoolVar(&opts.persist, "persist", false, "store battles in PostgreSQL")
	flag.BoolVar(&opts.verify, "verify", false, "replay every battle from its seed and compare digests")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, opts, os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	cfg, err := config.LoadSimulator(config.ResolvePath(opts.configPath, ConfigPath))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Configure slog (stderr: stdout carries the JSON report)
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
	ai.EnableDebugLogging(level == slog.LevelDebug)

	if opts.workers > 0 {
		cfg.Engine.Workers = opts.workers
	}
	if opts.seed != 0 {
		cfg.Engine.Seed = opts.seed
	}
	if cfg.Engine.Seed == 0 {
		if cfg.Engine.Seed, err = rng.NewSeed(); err != nil {
			return err
		}
	}
	if opts.persist {
		cfg.Database.Enabled = true
	}

	sc, err := LoadScenario(opts.scenarioPath)
	if err != nil {
		return err
	}
	jobs, err := sc.expand(roster.NewBuilder(nil, nil))
	if err != nil {
		return fmt.Errorf("resolving scenario: %w", err)
	}
	slog.Info("scenario loaded",
		"path", opts.scenarioPath,
		"matchups", len(sc.Matchups),
		"battles", len(jobs),
		"seed", cfg.Engine.Seed,
		"workers", cfg.Engine.Workers)

	sim := &simulator{
		rules:   cfg.Engine.Rules(),
		seed:    cfg.Engine.Seed,
		workers: cfg.Engine.Workers,
		verify:  opts.verify,
	}

	if cfg.Database.Enabled {
		dsn := cfg.Database.DSN()
		if err := db.RunMigrations(ctx, dsn); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		database, err := db.New(ctx, dsn)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		slog.Info("database connected", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)

		sim.store = db.NewBattleRepository(database.Pool())
		sim.storeTimeout = cfg.Database.Timeout
	}

	reports, err := sim.runAll(ctx, jobs)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
