package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Tora-Build/w3cash-sdk-sub001/adapter"
	"github.com/Tora-Build/w3cash-sdk-sub001/auth"
	"github.com/Tora-Build/w3cash-sdk-sub001/codec"
	"github.com/Tora-Build/w3cash-sdk-sub001/events"
	"github.com/Tora-Build/w3cash-sdk-sub001/model"
	"github.com/Tora-Build/w3cash-sdk-sub001/progress"
	"github.com/Tora-Build/w3cash-sdk-sub001/registry"
	"github.com/Tora-Build/w3cash-sdk-sub001/substrate"
)

// Options configures a Processor.
type Options struct {
	// Self is the dispatcher's own identity; providers accept calls from
	// this address only.
	Self model.Address
	// Registry resolves transport IDs and domain indexes.
	Registry *registry.Registry
	// Environment is the execution substrate the processor runs inside.
	Environment substrate.Environment
	// Sink receives notification events. Nil discards them.
	Sink events.Sink
	// Progress, when set, hardens resumption: cursors behind recorded
	// progress are rejected and settled steps are recorded. Nil keeps
	// the original caller-tracked-cursor behavior.
	Progress progress.Store
}

// Processor executes signed workflow instructions. It holds no
// per-workflow state of its own; the authorized-endpoint allowlist is
// its only long-lived mutable state.
type Processor struct {
	self  model.Address
	reg   *registry.Registry
	env   substrate.Environment
	sink  events.Sink
	store progress.Store

	mu        sync.RWMutex
	endpoints map[model.Digest]bool
}

// New constructs a Processor.
func New(opts Options) (*Processor, error) {
	if opts.Self.IsZero() {
		return nil, model.NewError(model.KindInternal, "W3-EXEC-001", "dispatcher identity is required")
	}
	if opts.Registry == nil || opts.Environment == nil {
		return nil, model.NewError(model.KindInternal, "W3-EXEC-001", "registry and environment are required")
	}
	sink := opts.Sink
	if sink == nil {
		sink = events.NopSink{}
	}
	return &Processor{
		self:      opts.Self,
		reg:       opts.Registry,
		env:       opts.Environment,
		sink:      sink,
		store:     opts.Progress,
		endpoints: make(map[model.Digest]bool),
	}, nil
}

// Self returns the dispatcher's identity.
func (p *Processor) Self() model.Address { return p.self }

// Execute runs one invocation over an encoded signed payload. It
// returns the outcome, or an error that classifies the rejection
// (model.Kind* taxonomy); a rejected invocation leaves all state exactly
// as before the call.
func (p *Processor) Execute(ctx context.Context, raw []byte) (Outcome, error) {
	return p.submit(ctx, raw, nil)
}

// Receive is the inbound cross-domain entry point: an allowlisted
// endpoint delivers a signed payload forwarded from another domain.
// Authorization and integrity are re-checked locally.
func (p *Processor) Receive(ctx context.Context, endpoint model.Digest, raw []byte) (Outcome, error) {
	if !p.IsAuthorizedEndpoint(endpoint) {
		return Outcome{}, model.NewError(model.KindAuth, "W3-AUTH-020", "endpoint is not allowlisted")
	}
	return p.submit(ctx, raw, &endpoint)
}

func (p *Processor) submit(ctx context.Context, raw []byte, inbound *model.Digest) (Outcome, error) {
	sp, err := codec.DecodeSignedPayload(raw)
	if err != nil {
		return Outcome{}, err
	}
	instr, err := codec.DecodeInstruction(sp.Instruction)
	if err != nil {
		return Outcome{}, err
	}

	// The signature covers payload bytes only; the header and its cursor
	// are caller-supplied.
	if err := auth.Verify(instr.Payload, sp.Initiator, sp.Signature); err != nil {
		return Outcome{}, err
	}

	hdr, err := codec.DecodeHeader(instr.Header)
	if err != nil {
		return Outcome{}, err
	}
	digest := auth.PayloadDigest(instr.Payload)
	if digest != hdr.PayloadDigest {
		return Outcome{}, model.NewError(model.KindIntegrity, "W3-EXEC-002", "header digest does not match payload")
	}
	pay, err := codec.DecodePayload(instr.Payload)
	if err != nil {
		return Outcome{}, err
	}
	if hdr.Length != uint32(len(pay.Operations)) {
		return Outcome{}, model.NewError(model.KindIntegrity, "W3-EXEC-003", "header length does not match payload step count")
	}
	if hdr.Cursor > hdr.Length {
		return Outcome{}, model.NewError(model.KindIntegrity, "W3-EXEC-004", "cursor exceeds workflow length")
	}
	if p.store != nil {
		recorded, ok, err := p.store.Cursor(digest)
		if err != nil {
			return Outcome{}, model.WrapError(model.KindInternal, "W3-EXEC-006", "progress store failed", err)
		}
		if ok && hdr.Cursor < recorded {
			return Outcome{}, model.WrapError(model.KindIntegrity, "W3-EXEC-005",
				fmt.Sprintf("cursor %d is behind recorded progress %d", hdr.Cursor, recorded),
				progress.ErrCursorBehind)
		}
	}

	// Events are buffered and flushed only if the invocation settles;
	// a rolled-back invocation must not be observable.
	var buf []events.Event
	if inbound != nil {
		buf = append(buf, events.InboundAccepted{Endpoint: *inbound, PayloadDigest: digest})
	}

	var out Outcome
	err = p.env.Transact(func() error {
		for i := hdr.Cursor; i < hdr.Length; i++ {
			op := pay.Operations[i]

			domainID, err := p.reg.Domain(op.DomainIndex)
			if err != nil {
				return model.WrapError(model.KindLookup, "W3-EXEC-010",
					fmt.Sprintf("step %d: domain index %d", i, op.DomainIndex), err)
			}

			if domainID != p.env.LocalDomain() {
				handle, err := p.forward(ctx, sp, op, i)
				if err != nil {
					return err
				}
				buf = append(buf, events.InstructionForwarded{
					Step:          i,
					DomainIndex:   op.DomainIndex,
					TransportID:   op.TransportID,
					PayloadDigest: digest,
					Handle:        handle,
				})
				out = Outcome{Status: StatusForwarded, Step: i, PayloadDigest: digest, Handle: handle}
				return nil
			}

			prov, ok := p.env.ProviderAt(op.Target)
			if !ok {
				return model.NewError(model.KindLookup, "W3-EXEC-014",
					fmt.Sprintf("step %d: no provider at %s", i, op.Target))
			}
			res, err := prov.Execute(ctx, adapter.Call{
				Caller:    p.self,
				Initiator: sp.Initiator,
				Value:     op.Value,
			}, pay.Inputs[i])
			if err != nil {
				return model.WrapError(model.KindProvider, "W3-EXEC-015",
					fmt.Sprintf("step %d: provider %s failed", i, op.Target), err)
			}
			if adapter.IsPause(res) {
				buf = append(buf, events.WorkflowPaused{Step: i, PayloadDigest: digest})
				out = Outcome{Status: StatusPaused, Step: i, PayloadDigest: digest}
				return nil
			}
			buf = append(buf, events.StepProcessed{
				Step:          i,
				PayloadDigest: digest,
				Initiator:     sp.Initiator,
				Target:        op.Target,
			})
		}
		out = Outcome{Status: StatusCompleted, Step: hdr.Length, PayloadDigest: digest}
		return nil
	})
	if err != nil {
		return Outcome{}, err
	}

	for _, e := range buf {
		p.sink.Emit(e)
	}
	if p.store != nil {
		// Step is the lowest acceptable resume cursor for every outcome.
		if err := p.store.Record(digest, out.Step); err != nil {
			return out, model.WrapError(model.KindInternal, "W3-EXEC-006", "progress store failed", err)
		}
	}
	return out, nil
}

// forward rewrites the instruction cursor to the current step and hands
// the re-encoded signed payload to the step's transport provider.
func (p *Processor) forward(ctx context.Context, sp model.SignedPayload, op model.Operation, step uint32) (model.MessageHandle, error) {
	loc, err := p.reg.Provider(op.TransportID)
	if err != nil {
		return model.MessageHandle{}, model.WrapError(model.KindLookup, "W3-EXEC-011",
			fmt.Sprintf("step %d: transport %d", step, op.TransportID), err)
	}
	prov, ok := p.env.ProviderAt(loc)
	if !ok {
		return model.MessageHandle{}, model.NewError(model.KindLookup, "W3-EXEC-012",
			fmt.Sprintf("step %d: no transport provider at %s", step, loc))
	}

	fwd := append([]byte(nil), sp.Instruction...)
	if err := codec.SetInstructionCursor(fwd, step); err != nil {
		return model.MessageHandle{}, err
	}
	outbound := codec.EncodeSignedPayload(model.SignedPayload{
		Instruction: fwd,
		Initiator:   sp.Initiator,
		Signature:   sp.Signature,
	})

	handle, err := prov.Send(ctx, adapter.Call{
		Caller:    p.self,
		Initiator: sp.Initiator,
		Value:     op.Value,
	}, outbound, op.DomainIndex, op.TransportFee, op.Value)
	if err != nil {
		return model.MessageHandle{}, model.WrapError(model.KindProvider, "W3-EXEC-013",
			fmt.Sprintf("step %d: transport send failed", step), err)
	}
	return handle, nil
}

// IsRejection reports whether err classifies as any rejection kind from
// the engine's taxonomy.
func IsRejection(err error) bool {
	var e *model.Error
	return errors.As(err, &e)
}
