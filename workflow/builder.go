// Package workflow builds encoded instructions on the client side. The
// engine never depends on this package; it exists so the CLI, tests,
// and SDK users construct byte-exact instructions without hand-rolling
// the wire format.
package workflow

import (
	"fmt"

	"github.com/Tora-Build/w3cash-sdk-sub001/auth"
	"github.com/Tora-Build/w3cash-sdk-sub001/codec"
	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

// Builder accumulates steps and encodes the instruction.
type Builder struct {
	ops    []model.Operation
	inputs [][]byte
}

// Add appends one step: the operation tuple and its input blob.
func (b *Builder) Add(op model.Operation, input []byte) *Builder {
	b.ops = append(b.ops, op)
	b.inputs = append(b.inputs, input)
	return b
}

// Len returns the number of steps added so far.
func (b *Builder) Len() int { return len(b.ops) }

// Payload encodes the signed portion only.
func (b *Builder) Payload() ([]byte, error) {
	return codec.EncodePayload(model.Payload{Operations: b.ops, Inputs: b.inputs})
}

// Encode produces the full instruction with the header's cursor set.
// The header carries the payload digest the dispatcher will verify.
func (b *Builder) Encode(cursor uint32) ([]byte, error) {
	if len(b.ops) == 0 {
		return nil, fmt.Errorf("workflow has no steps")
	}
	payload, err := b.Payload()
	if err != nil {
		return nil, err
	}
	header := codec.EncodeHeader(model.Header{
		Cursor:        cursor,
		Length:        uint32(len(b.ops)),
		PayloadDigest: auth.PayloadDigest(payload),
	})
	return codec.EncodeInstruction(model.Instruction{Header: header, Payload: payload}), nil
}

// Selector builds the informational step tag from a short label.
func Selector(label string) (model.Selector, error) {
	var s model.Selector
	if len(label) > model.SelectorSize {
		return s, fmt.Errorf("selector %q exceeds %d bytes", label, model.SelectorSize)
	}
	copy(s[:], label)
	return s, nil
}
