// Package config loads application configuration from a YAML file.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration loaded from file.
type Config struct {
	ListenAddr        string        `yaml:"listen_addr"`
	GraceTimeout      time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`

	// PostgresDSN selects the Postgres pool store; empty runs in-memory.
	PostgresDSN string `yaml:"postgres_dsn"`

	// MinLiquidity floors the claims minted by a first deposit.
	MinLiquidity uint64 `yaml:"min_liquidity"`

	// MaxCommitRetries bounds optimistic-commit retries per operation.
	MaxCommitRetries int `yaml:"max_commit_retries"`

	// EnableFaucet exposes the dev balance faucet. In-memory ledger only.
	EnableFaucet bool `yaml:"enable_faucet"`

	LogLevel string `yaml:"log_level"`
}

// Load reads the config from a YAML file path, applying fallback defaults
// for anything unset. A missing file is an error; an empty path loads pure
// defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open config file")
		}
		defer func() { _ = f.Close() }()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, errors.Wrap(err, "parse config file")
		}
	}

	// Fallbacks
	const defaultTimeout = 5 * time.Second
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.GraceTimeout == 0 {
		cfg.GraceTimeout = defaultTimeout
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	if cfg.ReadHeaderTimeout == 0 {
		cfg.ReadHeaderTimeout = defaultTimeout
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return &cfg, nil
}
