// Package registry is the single source of truth for which provider
// implements a capability ID and which domain identifier a domain index
// maps to. Entries follow a one-way mutability lattice: writable by the
// owner until frozen, then permanently immutable. New IDs may always be
// added.
package registry

import (
	"fmt"
	"sync"

	"github.com/Tora-Build/w3cash-sdk-sub001/events"
	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

// Registry maps small integer IDs to provider locations and domain
// identifiers. All mutations are gated on the current owner; reads are
// open. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	owner     model.Address
	providers map[uint8]*entry[model.Address]
	domains   map[uint8]*entry[uint64]
	sink      events.Sink
}

// New constructs a registry owned by owner. A nil sink discards events.
func New(owner model.Address, sink events.Sink) (*Registry, error) {
	if owner.IsZero() {
		return nil, ErrZeroOwner
	}
	if sink == nil {
		sink = events.NopSink{}
	}
	return &Registry{
		owner:     owner,
		providers: make(map[uint8]*entry[model.Address]),
		domains:   make(map[uint8]*entry[uint64]),
		sink:      sink,
	}, nil
}

// Owner returns the current owner identity.
func (r *Registry) Owner() model.Address {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.owner
}

// TransferOwnership hands the registry to newOwner. Ownership is
// orthogonal to the freeze mechanism.
func (r *Registry) TransferOwnership(caller, newOwner model.Address) error {
	if newOwner.IsZero() {
		return ErrZeroOwner
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if caller != r.owner {
		return ErrNotOwner
	}
	prev := r.owner
	r.owner = newOwner
	r.sink.Emit(events.OwnershipTransferred{Previous: prev, Current: newOwner})
	return nil
}

// SetProvider upserts the location for a provider ID. Fails if the entry
// is frozen or the location is null.
func (r *Registry) SetProvider(caller model.Address, id uint8, location model.Address) error {
	return r.SetProviders(caller, []uint8{id}, []model.Address{location})
}

// SetProviders is the batch form of SetProvider: every element is
// checked first and either all upserts apply or none do.
func (r *Registry) SetProviders(caller model.Address, ids []uint8, locations []model.Address) error {
	if len(ids) != len(locations) {
		return ErrLengthMismatch
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if caller != r.owner {
		return ErrNotOwner
	}
	for i, id := range ids {
		if locations[i].IsZero() {
			return fmt.Errorf("provider %d: %w", id, ErrZeroLocation)
		}
		if r.providers[id].frozen() {
			return fmt.Errorf("provider %d: %w", id, ErrFrozen)
		}
	}
	for i, id := range ids {
		e := r.providers[id]
		if e == nil {
			e = &entry[model.Address]{}
			r.providers[id] = e
		}
		_ = e.set(locations[i])
		r.sink.Emit(events.ProviderSet{ID: id, Location: locations[i]})
	}
	return nil
}

// FreezeProvider marks a provider entry permanently immutable.
func (r *Registry) FreezeProvider(caller model.Address, id uint8) error {
	return r.FreezeProviders(caller, []uint8{id})
}

// FreezeProviders is the batch form of FreezeProvider, all-or-nothing.
func (r *Registry) FreezeProviders(caller model.Address, ids []uint8) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if caller != r.owner {
		return ErrNotOwner
	}
	for _, id := range ids {
		e := r.providers[id]
		if e == nil || e.st == stateUnset {
			return fmt.Errorf("provider %d: %w", id, ErrNotRegistered)
		}
		if e.frozen() {
			return fmt.Errorf("provider %d: %w", id, ErrFrozen)
		}
	}
	for _, id := range ids {
		_ = r.providers[id].freeze()
		r.sink.Emit(events.ProviderFrozen{ID: id})
	}
	return nil
}

// SetDomain upserts the domain identifier for an index. Zero is an
// invalid identifier and is rejected at write time.
func (r *Registry) SetDomain(caller model.Address, index uint8, domainID uint64) error {
	return r.SetDomains(caller, []uint8{index}, []uint64{domainID})
}

// SetDomains is the batch form of SetDomain, all-or-nothing.
func (r *Registry) SetDomains(caller model.Address, indexes []uint8, domainIDs []uint64) error {
	if len(indexes) != len(domainIDs) {
		return ErrLengthMismatch
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if caller != r.owner {
		return ErrNotOwner
	}
	for i, idx := range indexes {
		if domainIDs[i] == 0 {
			return fmt.Errorf("domain %d: %w", idx, ErrZeroDomain)
		}
		if r.domains[idx].frozen() {
			return fmt.Errorf("domain %d: %w", idx, ErrFrozen)
		}
	}
	for i, idx := range indexes {
		e := r.domains[idx]
		if e == nil {
			e = &entry[uint64]{}
			r.domains[idx] = e
		}
		_ = e.set(domainIDs[i])
		r.sink.Emit(events.DomainSet{Index: idx, DomainID: domainIDs[i]})
	}
	return nil
}

// FreezeDomain marks a domain entry permanently immutable.
func (r *Registry) FreezeDomain(caller model.Address, index uint8) error {
	return r.FreezeDomains(caller, []uint8{index})
}

// FreezeDomains is the batch form of FreezeDomain, all-or-nothing.
func (r *Registry) FreezeDomains(caller model.Address, indexes []uint8) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if caller != r.owner {
		return ErrNotOwner
	}
	for _, idx := range indexes {
		e := r.domains[idx]
		if e == nil || e.st == stateUnset {
			return fmt.Errorf("domain %d: %w", idx, ErrNotRegistered)
		}
		if e.frozen() {
			return fmt.Errorf("domain %d: %w", idx, ErrFrozen)
		}
	}
	for _, idx := range indexes {
		_ = r.domains[idx].freeze()
		r.sink.Emit(events.DomainFrozen{Index: idx})
	}
	return nil
}

// Provider returns the current location for a provider ID. Frozen
// entries are simply values that can no longer change.
func (r *Registry) Provider(id uint8) (model.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	loc, ok := r.providers[id].get()
	if !ok {
		return model.ZeroAddress, fmt.Errorf("provider %d: %w", id, ErrNotRegistered)
	}
	return loc, nil
}

// Domain returns the current identifier for a domain index.
func (r *Registry) Domain(index uint8) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.domains[index].get()
	if !ok {
		return 0, fmt.Errorf("domain %d: %w", index, ErrNotRegistered)
	}
	return id, nil
}

// IsProviderRegistered reports whether a provider ID has a location.
func (r *Registry) IsProviderRegistered(id uint8) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.providers[id].get()
	return ok
}

// IsProviderFrozen reports whether a provider entry is immutable.
func (r *Registry) IsProviderFrozen(id uint8) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.providers[id].frozen()
}

// IsDomainRegistered reports whether a domain index has an identifier.
func (r *Registry) IsDomainRegistered(index uint8) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.domains[index].get()
	return ok
}

// IsDomainFrozen reports whether a domain entry is immutable.
func (r *Registry) IsDomainFrozen(index uint8) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.domains[index].frozen()
}
