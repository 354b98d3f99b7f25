// Package timecond is the wait-until-timestamp condition provider: it
// pauses a workflow until the substrate clock passes the deadline in
// the step input.
package timecond

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/big"
	"time"

	"github.com/Tora-Build/w3cash-sdk-sub001/adapter"
	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

// DefaultID follows the 100+ convention for condition providers.
const DefaultID = 100

// Provider implements the wait-until condition.
type Provider struct {
	dispatcher model.Address
	now        func() time.Time
	id         uint8
}

// New constructs the condition bound to its dispatcher. now is the
// substrate clock.
func New(dispatcher model.Address, now func() time.Time) *Provider {
	return &Provider{dispatcher: dispatcher, now: now, id: DefaultID}
}

// Execute expects an 8-byte big-endian unix-seconds deadline. It
// returns the pause sentinel while the deadline is in the future.
func (p *Provider) Execute(ctx context.Context, call adapter.Call, input []byte) ([]byte, error) {
	if err := adapter.GuardCaller(call, p.dispatcher); err != nil {
		return nil, err
	}
	if len(input) != 8 {
		return nil, fmt.Errorf("deadline must be 8 bytes: %w", adapter.ErrBadInput)
	}
	deadline := time.Unix(int64(binary.BigEndian.Uint64(input)), 0)
	if p.now().Before(deadline) {
		return adapter.Pause(), nil
	}
	return nil, nil
}

func (p *Provider) Send(context.Context, adapter.Call, []byte, uint8, uint64, *big.Int) (model.MessageHandle, error) {
	return model.MessageHandle{}, adapter.ErrNotTransport
}

func (p *Provider) EstimateFee(context.Context, uint8, *big.Int, uint64) (uint64, error) {
	return 0, adapter.ErrNotTransport
}

func (p *Provider) ID() uint8 { return p.id }

// DeadlineInput encodes a deadline for a wait-until step.
func DeadlineInput(t time.Time) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(t.Unix()))
}
