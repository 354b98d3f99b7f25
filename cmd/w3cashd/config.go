package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the daemon's TOML configuration.
type Config struct {
	Listen     string `toml:"listen"`
	LogLevel   string `toml:"log_level"`
	ProgressDB string `toml:"progress_db"`
	Owner      string `toml:"owner"`

	// Domains hosted in this process. The first one is served over
	// gRPC; additional domains exist to exercise cross-domain routes
	// through the loopback relay.
	Domains []DomainConfig `toml:"domain"`
}

// DomainConfig describes one hosted execution domain.
type DomainConfig struct {
	Name       string          `toml:"name"`
	Index      uint8           `toml:"index"`
	ID         uint64          `toml:"id"`
	Dispatcher string          `toml:"dispatcher"`
	Adapters   []AdapterConfig `toml:"adapter"`
	Relay      *RelayConfig    `toml:"relay"`
}

// AdapterConfig instantiates a catalog adapter at a location and,
// when Register is set, registers it under that provider ID.
type AdapterConfig struct {
	Name     string            `toml:"name"`
	Location string            `toml:"location"`
	Register *uint8            `toml:"register"`
	Params   map[string]string `toml:"params"`
}

// RelayConfig wires the loopback transport for a domain.
type RelayConfig struct {
	Location string `toml:"location"`
	Register uint8  `toml:"register"`
	BaseFee  uint64 `toml:"base_fee"`
	PerGas   uint64 `toml:"per_gas"`
}

// LoadConfig reads and sanity-checks a config file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Listen == "" {
		cfg.Listen = "127.0.0.1:7733"
	}
	if cfg.Owner == "" {
		return nil, fmt.Errorf("config: owner address is required")
	}
	if len(cfg.Domains) == 0 {
		return nil, fmt.Errorf("config: at least one domain is required")
	}
	seen := map[uint8]bool{}
	for _, d := range cfg.Domains {
		if d.Name == "" {
			return nil, fmt.Errorf("config: every domain needs a name")
		}
		if d.ID == 0 {
			return nil, fmt.Errorf("config: domain %q: zero is not a valid domain identifier", d.Name)
		}
		if seen[d.Index] {
			return nil, fmt.Errorf("config: duplicate domain index %d", d.Index)
		}
		seen[d.Index] = true
	}
	return &cfg, nil
}
