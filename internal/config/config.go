package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/battlecore/internal/game/combat"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "BATTLECORE_CONFIG"

// Simulator holds all configuration for the battle simulator.
type Simulator struct {
	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Battle rules
	Engine Engine `yaml:"engine"`

	// Battle store
	Database DatabaseConfig `yaml:"database"`
}

// Engine holds battle rules and runner limits.
type Engine struct {
	MaxRounds int    `yaml:"max_rounds"`
	TieBreak  string `yaml:"tie_break"` // non_player, player
	Workers   int    `yaml:"workers"`   // parallel battles
	Seed      uint64 `yaml:"seed"`      // 0 = random
}

// Rules converts the engine section into combat rules.
func (e Engine) Rules() combat.Rules {
	return combat.Rules{
		MaxRounds: e.MaxRounds,
		TieBreak:  combat.TieBreak(e.TieBreak),
	}
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Host     string        `yaml:"host"`
	Port     int           `yaml:"port"`
	User     string        `yaml:"user"`
	Password string        `yaml:"password"`
	DBName   string        `yaml:"dbname"`
	SSLMode  string        `yaml:"sslmode"`
	Timeout  time.Duration `yaml:"timeout"` // per-battle write deadline
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultSimulator returns Simulator config with sensible defaults.
func DefaultSimulator() Simulator {
	return Simulator{
		LogLevel: "info",
		Engine: Engine{
			MaxRounds: combat.DefaultMaxRounds,
			TieBreak:  string(combat.TieBreakNonPlayer),
			Workers:   4,
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "battlecore",
			Password: "battlecore",
			DBName:   "battlecore",
			SSLMode:  "disable",
			Timeout:  5 * time.Second,
		},
	}
}

// LoadSimulator loads simulator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSimulator(path string) (Simulator, error) {
	cfg := DefaultSimulator()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects values the simulator cannot run with.
func (s Simulator) Validate() error {
	if _, err := ParseLogLevel(s.LogLevel); err != nil {
		return err
	}
	switch combat.TieBreak(s.Engine.TieBreak) {
	case combat.TieBreakNonPlayer, combat.TieBreakPlayer:
	default:
		return fmt.Errorf("unknown tie_break %q", s.Engine.TieBreak)
	}
	if s.Engine.MaxRounds < 0 {
		return fmt.Errorf("max_rounds must not be negative, got %d", s.Engine.MaxRounds)
	}
	if s.Engine.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", s.Engine.Workers)
	}
	return nil
}

// ParseLogLevel maps a config log level to slog.Level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log_level %q", level)
	}
}

// ResolvePath returns the config path: the flag value if set, then
// $BATTLECORE_CONFIG, then fallback.
func ResolvePath(flagValue, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env
	}
	return fallback
}
