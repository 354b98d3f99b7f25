// Package adapter defines the capability-provider contract. A provider
// is one unit of executable behavior; new capabilities are added by
// registering a new implementation under a new ID, never by modifying
// the dispatcher.
//
// Providers enforce single-entry-point discipline themselves: Execute
// and Send reject any caller other than the registered dispatcher,
// because a direct invocation would bypass signature verification.
package adapter

import (
	"bytes"
	"context"
	"errors"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

var (
	// ErrNotDispatcher rejects a call whose caller is not the dispatcher.
	ErrNotDispatcher = errors.New("adapter: caller is not the dispatcher")
	// ErrNotTransport rejects Send on a provider that cannot forward
	// instructions across domains.
	ErrNotTransport = errors.New("adapter: provider is not transport-capable")
	// ErrBadInput rejects a structurally invalid input blob.
	ErrBadInput = errors.New("adapter: malformed input")
)

// Call carries the identities and value attached to one provider
// invocation. Effects are attributed to Initiator, never to Caller.
type Call struct {
	Caller    model.Address
	Initiator model.Address
	Value     *big.Int
}

// Provider is the capability contract every adapter satisfies.
type Provider interface {
	// Execute performs the provider's effect attributed to
	// call.Initiator. It returns the pause sentinel (see IsPause) to
	// signal "precondition not met, do not advance, do not fail".
	Execute(ctx context.Context, call Call, input []byte) ([]byte, error)

	// Send forwards the remaining instruction toward another domain.
	// Non-transport providers return ErrNotTransport.
	Send(ctx context.Context, call Call, instruction []byte, domainIndex uint8, fee uint64, value *big.Int) (model.MessageHandle, error)

	// EstimateFee is pure cost estimation with no side effects. It fails
	// only for structurally invalid inputs, never merely because of state.
	EstimateFee(ctx context.Context, domainIndex uint8, value *big.Int, gasBudget uint64) (uint64, error)

	// ID is the provider's stable self-identifying tag. IDs below 100
	// are conventionally actions, 100 and above conditions.
	ID() uint8
}

// pauseSentinel is the distinguished Execute result meaning "halt without
// failing". Derived from a fixed tag so every implementation agrees on it.
var pauseSentinel = func() []byte {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write([]byte("w3cash.workflow.pause"))
	return h.Sum(nil)
}()

// Pause returns the pause sentinel result value.
func Pause() []byte {
	out := make([]byte, len(pauseSentinel))
	copy(out, pauseSentinel)
	return out
}

// IsPause reports whether an Execute result is the pause sentinel.
func IsPause(result []byte) bool {
	return bytes.Equal(result, pauseSentinel)
}

// GuardCaller is the identity check every provider performs at the top
// of Execute and Send.
func GuardCaller(call Call, dispatcher model.Address) error {
	if call.Caller != dispatcher {
		return ErrNotDispatcher
	}
	return nil
}
