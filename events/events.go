// Package events defines the notification events the engine emits and
// the sink interface that receives them. The core stays log-free;
// observers attach whatever sink they need (the daemon uses the zerolog
// sink, tests use a Recorder).
package events

import (
	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

// Event is implemented by every notification the engine emits.
type Event interface {
	EventName() string
}

// Sink receives events. Implementations must be safe for concurrent use.
type Sink interface {
	Emit(Event)
}

// StepProcessed is emitted after a local step executes successfully.
type StepProcessed struct {
	Step          uint32
	PayloadDigest model.Digest
	Initiator     model.Address
	Target        model.Address
}

func (StepProcessed) EventName() string { return "step_processed" }

// WorkflowPaused is emitted when a step's provider returns the pause
// sentinel. The workflow resumes only by an external re-invocation with
// cursor equal to Step.
type WorkflowPaused struct {
	Step          uint32
	PayloadDigest model.Digest
}

func (WorkflowPaused) EventName() string { return "workflow_paused" }

// InstructionForwarded is emitted when the remaining instruction is
// handed to a transport provider for another domain.
type InstructionForwarded struct {
	Step          uint32
	DomainIndex   uint8
	TransportID   uint8
	PayloadDigest model.Digest
	Handle        model.MessageHandle
}

func (InstructionForwarded) EventName() string { return "instruction_forwarded" }

// InboundAccepted is emitted when an allowlisted endpoint delivers a
// cross-domain instruction for local execution.
type InboundAccepted struct {
	Endpoint      model.Digest
	PayloadDigest model.Digest
}

func (InboundAccepted) EventName() string { return "inbound_accepted" }

// ProviderSet is emitted on a provider upsert.
type ProviderSet struct {
	ID       uint8
	Location model.Address
}

func (ProviderSet) EventName() string { return "provider_set" }

// ProviderFrozen is emitted when a provider entry becomes immutable.
type ProviderFrozen struct {
	ID uint8
}

func (ProviderFrozen) EventName() string { return "provider_frozen" }

// DomainSet is emitted on a domain upsert.
type DomainSet struct {
	Index    uint8
	DomainID uint64
}

func (DomainSet) EventName() string { return "domain_set" }

// DomainFrozen is emitted when a domain entry becomes immutable.
type DomainFrozen struct {
	Index uint8
}

func (DomainFrozen) EventName() string { return "domain_frozen" }

// OwnershipTransferred is emitted when the registry owner changes.
type OwnershipTransferred struct {
	Previous model.Address
	Current  model.Address
}

func (OwnershipTransferred) EventName() string { return "ownership_transferred" }

// EndpointAuthorized is emitted when the inbound allowlist changes.
type EndpointAuthorized struct {
	Endpoint model.Digest
	Allowed  bool
}

func (EndpointAuthorized) EventName() string { return "endpoint_authorized" }
