package dispatch

import (
	"github.com/Tora-Build/w3cash-sdk-sub001/events"
	"github.com/Tora-Build/w3cash-sdk-sub001/model"
	"github.com/Tora-Build/w3cash-sdk-sub001/registry"
)

// SetAuthorizedEndpoint curates the inbound cross-domain allowlist. It
// is gated on the registry's current owner; the processor's execution
// path itself carries no administrative control.
func (p *Processor) SetAuthorizedEndpoint(caller model.Address, endpoint model.Digest, allowed bool) error {
	if caller != p.reg.Owner() {
		return model.WrapError(model.KindAdmin, "W3-ADMIN-001", "endpoint allowlist is owner-gated", registry.ErrNotOwner)
	}
	p.mu.Lock()
	if allowed {
		p.endpoints[endpoint] = true
	} else {
		delete(p.endpoints, endpoint)
	}
	p.mu.Unlock()
	p.sink.Emit(events.EndpointAuthorized{Endpoint: endpoint, Allowed: allowed})
	return nil
}

// IsAuthorizedEndpoint reports whether an endpoint hash is allowlisted.
func (p *Processor) IsAuthorizedEndpoint(endpoint model.Digest) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.endpoints[endpoint]
}
