// Package substrate declares what the engine assumes from its external
// execution environment: resolution of provider locations, the local
// domain identity, a clock, atomic all-or-nothing invocations, and a
// value ledger. The engine never implements these itself; package
// memsub provides the in-memory reference implementation.
package substrate

import (
	"errors"
	"math/big"
	"time"

	"github.com/Tora-Build/w3cash-sdk-sub001/adapter"
	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

var (
	ErrUnknownProvider   = errors.New("substrate: no provider bound at address")
	ErrInsufficientFunds = errors.New("substrate: insufficient funds")
)

// Environment is the execution substrate one dispatcher runs inside.
type Environment interface {
	// ProviderAt resolves the executable provider bound at a location.
	ProviderAt(location model.Address) (adapter.Provider, bool)

	// LocalDomain is the global identifier of the current execution domain.
	LocalDomain() uint64

	// Now is the substrate's notion of current time, used by condition
	// providers.
	Now() time.Time

	// Transact runs fn as one atomic unit: if fn returns an error, every
	// state change made through the substrate inside fn is rolled back.
	Transact(fn func() error) error
}

// Ledger is the substrate's value store. Amounts are non-negative.
type Ledger interface {
	Balance(addr model.Address) *big.Int
	Credit(addr model.Address, amount *big.Int) error
	Debit(addr model.Address, amount *big.Int) error
}
