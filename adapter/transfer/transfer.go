// Package transfer is the value-transfer action provider: it moves
// funds on the substrate ledger, attributed to the workflow initiator.
package transfer

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Tora-Build/w3cash-sdk-sub001/adapter"
	"github.com/Tora-Build/w3cash-sdk-sub001/model"
	"github.com/Tora-Build/w3cash-sdk-sub001/substrate"
)

// DefaultID follows the 0-99 convention for action providers.
const DefaultID = 1

// InputSize is recipient (20B) + amount (u112, 14B).
const InputSize = model.AddressSize + model.ValueSize

// Provider implements the transfer action.
type Provider struct {
	dispatcher model.Address
	ledger     substrate.Ledger
	id         uint8
}

// New constructs the action bound to its dispatcher and ledger.
func New(dispatcher model.Address, ledger substrate.Ledger) *Provider {
	return &Provider{dispatcher: dispatcher, ledger: ledger, id: DefaultID}
}

// Execute expects recipient||amount and debits the initiator.
func (p *Provider) Execute(ctx context.Context, call adapter.Call, input []byte) ([]byte, error) {
	if err := adapter.GuardCaller(call, p.dispatcher); err != nil {
		return nil, err
	}
	if len(input) != InputSize {
		return nil, fmt.Errorf("transfer input must be %d bytes: %w", InputSize, adapter.ErrBadInput)
	}
	var to model.Address
	copy(to[:], input[:model.AddressSize])
	amount := new(big.Int).SetBytes(input[model.AddressSize:])

	if err := p.ledger.Debit(call.Initiator, amount); err != nil {
		return nil, err
	}
	if err := p.ledger.Credit(to, amount); err != nil {
		return nil, err
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

// Input encodes a recipient/amount pair for a transfer step.
func Input(to model.Address, amount *big.Int) ([]byte, error) {
	if amount == nil || amount.Sign() < 0 || amount.BitLen() > 112 {
		return nil, adapter.ErrBadInput
	}
	out := make([]byte, 0, InputSize)
	out = append(out, to[:]...)
	out = append(out, amount.FillBytes(make([]byte, model.ValueSize))...)
	return out, nil
}
