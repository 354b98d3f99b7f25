// Package relay is the loopback transport provider: it carries a
// forwarded instruction to another domain's processor in the same
// process, through that processor's authorized-endpoint entry point.
// It stands in for a real cross-domain messaging bridge and gives the
// engine's forwarding path a complete round trip.
package relay

import (
	"context"
	"fmt"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/Tora-Build/w3cash-sdk-sub001/adapter"
	"github.com/Tora-Build/w3cash-sdk-sub001/dispatch"
	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

// DefaultID is the conventional transport provider ID.
const DefaultID = 0

// Route is one reachable remote domain.
type Route struct {
	// Target is the remote domain's processor.
	Target *dispatch.Processor
	// Endpoint is the hash this relay presents to the remote allowlist.
	Endpoint model.Digest
	// BaseFee and PerGas define the route's pure fee schedule.
	BaseFee uint64
	PerGas  uint64
}

// Provider implements the loopback transport.
type Provider struct {
	dispatcher model.Address
	routes     map[uint8]Route
	id         uint8
}

// New constructs the transport bound to its dispatcher. routes maps the
// domain index of each reachable remote domain to its delivery target.
func New(dispatcher model.Address, routes map[uint8]Route) *Provider {
	if routes == nil {
		routes = make(map[uint8]Route)
	}
	return &Provider{dispatcher: dispatcher, routes: routes, id: DefaultID}
}

// Execute is not a capability of a pure transport.
func (p *Provider) Execute(ctx context.Context, call adapter.Call, input []byte) ([]byte, error) {
	if err := adapter.GuardCaller(call, p.dispatcher); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("relay has no local effect: %w", adapter.ErrBadInput)
}

// Send delivers the instruction to the routed domain's processor and
// returns a handle derived from the message bytes.
func (p *Provider) Send(ctx context.Context, call adapter.Call, instruction []byte, domainIndex uint8, fee uint64, value *big.Int) (model.MessageHandle, error) {
	if err := adapter.GuardCaller(call, p.dispatcher); err != nil {
		return model.MessageHandle{}, err
	}
	route, ok := p.routes[domainIndex]
	if !ok || route.Target == nil {
		return model.MessageHandle{}, fmt.Errorf("relay: no route for domain index %d", domainIndex)
	}

	handle := messageHandle(instruction)
	if _, err := route.Target.Receive(ctx, route.Endpoint, instruction); err != nil {
		return model.MessageHandle{}, fmt.Errorf("relay delivery: %w", err)
	}
	return handle, nil
}

// EstimateFee is the route's pure fee schedule. It fails only for an
// unrouted domain index, never because of state.
func (p *Provider) EstimateFee(ctx context.Context, domainIndex uint8, value *big.Int, gasBudget uint64) (uint64, error) {
	route, ok := p.routes[domainIndex]
	if !ok {
		return 0, fmt.Errorf("relay: no route for domain index %d", domainIndex)
	}
	return route.BaseFee + route.PerGas*gasBudget, nil
}

func (p *Provider) ID() uint8 { return p.id }

func messageHandle(instruction []byte) model.MessageHandle {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write(instruction)
	var out model.MessageHandle
	copy(out[:], h.Sum(nil))
	return out
}
