package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "w3cashd.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const validConfig = `
listen = "127.0.0.1:7733"
log_level = "debug"
owner = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

[[domain]]
name = "main"
index = 1
id = 100
dispatcher = "0x0101010101010101010101010101010101010101"

  [[domain.adapter]]
  name = "transfer"
  location = "0x1010101010101010101010101010101010101010"
  register = 1

  [domain.relay]
  location = "0x3030303030303030303030303030303030303030"
  register = 0
  base_fee = 10
  per_gas = 2

[[domain]]
name = "side"
index = 2
id = 200
dispatcher = "0x0202020202020202020202020202020202020202"
`

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Listen != "127.0.0.1:7733" || cfg.LogLevel != "debug" {
		t.Fatalf("top-level fields: %+v", cfg)
	}
	if len(cfg.Domains) != 2 {
		t.Fatalf("domains %d, want 2", len(cfg.Domains))
	}
	main := cfg.Domains[0]
	if main.Name != "main" || main.Index != 1 || main.ID != 100 {
		t.Fatalf("domain %+v", main)
	}
	if len(main.Adapters) != 1 || main.Adapters[0].Name != "transfer" {
		t.Fatalf("adapters %+v", main.Adapters)
	}
	if main.Adapters[0].Register == nil || *main.Adapters[0].Register != 1 {
		t.Fatalf("adapter register %+v", main.Adapters[0].Register)
	}
	if main.Relay == nil || main.Relay.BaseFee != 10 || main.Relay.PerGas != 2 {
		t.Fatalf("relay %+v", main.Relay)
	}
	if cfg.Domains[1].Relay != nil {
		t.Fatal("side domain has no relay")
	}
}

func TestLoadConfigDefaultsListen(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
owner = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
[[domain]]
name = "main"
index = 1
id = 100
dispatcher = "0x0101010101010101010101010101010101010101"
`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Listen == "" {
		t.Fatal("listen must default")
	}
}

func TestLoadConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing owner", `
[[domain]]
name = "main"
index = 1
id = 100
dispatcher = "0x0101010101010101010101010101010101010101"
`},
		{"no domains", `owner = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"`},
		{"unnamed domain", `
owner = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
[[domain]]
index = 1
id = 100
`},
		{"zero domain id", `
owner = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
[[domain]]
name = "main"
index = 1
id = 0
`},
		{"duplicate index", `
owner = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
[[domain]]
name = "a"
index = 1
id = 100
[[domain]]
name = "b"
index = 1
id = 200
`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tc.body)); err == nil {
				t.Fatal("invalid config must be rejected")
			}
		})
	}
}
