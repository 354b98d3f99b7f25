// Package catalog is a build-time plugin registry for capability
// providers. Adapter packages register a factory in init(); a binary
// that imports the package can then instantiate the adapter by name
// from configuration.
package catalog

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Tora-Build/w3cash-sdk-sub001/adapter"
	"github.com/Tora-Build/w3cash-sdk-sub001/model"
	"github.com/Tora-Build/w3cash-sdk-sub001/substrate"
)

// Config is what a factory gets to build one provider instance.
type Config struct {
	// Dispatcher is the identity providers accept calls from.
	Dispatcher model.Address
	// Ledger is the substrate value store, for value-moving adapters.
	Ledger substrate.Ledger
	// Now is the substrate clock, for condition adapters.
	Now func() time.Time
	// Params carries adapter-specific settings from configuration.
	Params map[string]string
}

// Factory describes one instantiable adapter.
type Factory struct {
	Name        string
	Description string

	// New constructs the provider. It must not retain Config.Params.
	New func(cfg Config) (adapter.Provider, error)
}

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

// Register registers a factory.
func Register(f Factory) error {
	if f.Name == "" {
		return fmt.Errorf("catalog: factory name is required")
	}
	if f.New == nil {
		return fmt.Errorf("catalog: factory %q missing New", f.Name)
	}
	mu.Lock()
	defer mu.Unlock()
	if _, exists := factories[f.Name]; exists {
		return fmt.Errorf("catalog: factory %q already registered", f.Name)
	}
	factories[f.Name] = f
	return nil
}

// MustRegister is like Register but panics on error.
func MustRegister(f Factory) {
	if err := Register(f); err != nil {
		panic(err)
	}
}

// List returns all factories sorted by name.
func List() []Factory {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Factory, 0, len(factories))
	for _, f := range factories {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Open instantiates the named adapter.
func Open(name string, cfg Config) (adapter.Provider, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("catalog: unknown adapter %q", name)
	}
	return f.New(cfg)
}
