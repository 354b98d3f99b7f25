// Package memsub is the in-memory reference substrate: provider
// bindings, a journaled value ledger, and snapshot-based atomicity.
// It backs the daemon's single-process mode and the engine's tests.
package memsub

import (
	"math/big"
	"sync"
	"time"

	"github.com/Tora-Build/w3cash-sdk-sub001/adapter"
	"github.com/Tora-Build/w3cash-sdk-sub001/model"
	"github.com/Tora-Build/w3cash-sdk-sub001/substrate"
)

// Env implements substrate.Environment and substrate.Ledger in memory.
type Env struct {
	domain uint64

	txMu sync.Mutex // serializes invocations; Transact is not reentrant

	mu        sync.RWMutex
	providers map[model.Address]adapter.Provider
	balances  map[model.Address]*big.Int
	now       func() time.Time
}

// New constructs an environment for the given global domain identifier.
func New(domain uint64) *Env {
	return &Env{
		domain:    domain,
		providers: make(map[model.Address]adapter.Provider),
		balances:  make(map[model.Address]*big.Int),
		now:       time.Now,
	}
}

// Bind installs a provider at a location. Bindings are deployment-time
// state and are not covered by Transact rollback.
func (e *Env) Bind(location model.Address, p adapter.Provider) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.providers[location] = p
}

// SetNow overrides the substrate clock.
func (e *Env) SetNow(now func() time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.now = now
}

func (e *Env) ProviderAt(location model.Address) (adapter.Provider, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	p, ok := e.providers[location]
	return p, ok
}

func (e *Env) LocalDomain() uint64 { return e.domain }

func (e *Env) Now() time.Time {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.now()
}

// Transact snapshots the ledger, runs fn, and restores the snapshot if
// fn fails. Invocations are serialized into a total order here.
func (e *Env) Transact(fn func() error) error {
	e.txMu.Lock()
	defer e.txMu.Unlock()

	snapshot := e.snapshotBalances()
	if err := fn(); err != nil {
		e.restoreBalances(snapshot)
		return err
	}
	return nil
}

func (e *Env) snapshotBalances() map[model.Address]*big.Int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make(map[model.Address]*big.Int, len(e.balances))
	for a, v := range e.balances {
		out[a] = new(big.Int).Set(v)
	}
	return out
}

func (e *Env) restoreBalances(snapshot map[model.Address]*big.Int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.balances = snapshot
}

// Balance returns a copy of the current balance.
func (e *Env) Balance(addr model.Address) *big.Int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if v, ok := e.balances[addr]; ok {
		return new(big.Int).Set(v)
	}
	return new(big.Int)
}

func (e *Env) Credit(addr model.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return adapter.ErrBadInput
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	cur, ok := e.balances[addr]
	if !ok {
		cur = new(big.Int)
		e.balances[addr] = cur
	}
	cur.Add(cur, amount)
	return nil
}

func (e *Env) Debit(addr model.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return adapter.ErrBadInput
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	cur, ok := e.balances[addr]
	if !ok || cur.Cmp(amount) < 0 {
		return substrate.ErrInsufficientFunds
	}
	cur.Sub(cur, amount)
	return nil
}

var _ substrate.Environment = (*Env)(nil)
var _ substrate.Ledger = (*Env)(nil)
