package codec

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

const (
	// OperationSize is the fixed wire width of one operation tuple:
	// domainIndex u8 | transportId u8 | transportFee u64 | target 20B |
	// selector 8B | value u112.
	OperationSize = 1 + 1 + 8 + model.AddressSize + model.SelectorSize + model.ValueSize

	// HeaderSize is the fixed wire width of an instruction header:
	// cursor u32 | length u32 | payloadDigest 32B.
	HeaderSize = 4 + 4 + model.DigestSize

	// SignedPayloadVersion is the only envelope version this codec accepts.
	SignedPayloadVersion = 1

	// maxValueBits bounds an operation value on the wire.
	maxValueBits = 112
)

func newErr(ruleID, msg string) error {
	return model.NewError(model.KindIntegrity, ruleID, msg)
}

func newErrf(ruleID, format string, args ...any) error {
	return model.NewError(model.KindIntegrity, ruleID, fmt.Sprintf(format, args...))
}

// EncodeOperation appends op's fixed-width encoding to dst.
func EncodeOperation(dst []byte, op model.Operation) ([]byte, error) {
	v := op.Value
	if v == nil {
		v = new(big.Int)
	}
	if v.Sign() < 0 {
		return nil, newErr("W3-WIRE-001", "operation value is negative")
	}
	if v.BitLen() > maxValueBits {
		return nil, newErrf("W3-WIRE-002", "operation value exceeds %d bits", maxValueBits)
	}

	dst = append(dst, op.DomainIndex, op.TransportID)
	dst = binary.BigEndian.AppendUint64(dst, op.TransportFee)
	dst = append(dst, op.Target[:]...)
	dst = append(dst, op.Selector[:]...)
	dst = append(dst, v.FillBytes(make([]byte, model.ValueSize))...)
	return dst, nil
}

// DecodeOperation decodes exactly one operation tuple.
func DecodeOperation(b []byte) (model.Operation, error) {
	var op model.Operation
	if len(b) != OperationSize {
		return op, newErrf("W3-WIRE-003", "operation must be %d bytes, got %d", OperationSize, len(b))
	}
	op.DomainIndex = b[0]
	op.TransportID = b[1]
	op.TransportFee = binary.BigEndian.Uint64(b[2:10])
	copy(op.Target[:], b[10:10+model.AddressSize])
	copy(op.Selector[:], b[30:30+model.SelectorSize])
	op.Value = new(big.Int).SetBytes(b[38 : 38+model.ValueSize])
	return op, nil
}

// EncodeHeader returns h's fixed-width encoding.
func EncodeHeader(h model.Header) []byte {
	out := make([]byte, 0, HeaderSize)
	out = binary.BigEndian.AppendUint32(out, h.Cursor)
	out = binary.BigEndian.AppendUint32(out, h.Length)
	out = append(out, h.PayloadDigest[:]...)
	return out
}

// DecodeHeader decodes a fixed-width header.
func DecodeHeader(b []byte) (model.Header, error) {
	var h model.Header
	if len(b) != HeaderSize {
		return h, newErrf("W3-WIRE-004", "header must be %d bytes, got %d", HeaderSize, len(b))
	}
	h.Cursor = binary.BigEndian.Uint32(b[0:4])
	h.Length = binary.BigEndian.Uint32(b[4:8])
	copy(h.PayloadDigest[:], b[8:8+model.DigestSize])
	return h, nil
}

// EncodePayload encodes index-aligned operations and inputs.
func EncodePayload(p model.Payload) ([]byte, error) {
	if len(p.Operations) != len(p.Inputs) {
		return nil, newErrf("W3-WIRE-005", "operations/inputs length mismatch: %d vs %d",
			len(p.Operations), len(p.Inputs))
	}
	out := binary.BigEndian.AppendUint32(nil, uint32(len(p.Operations)))
	for _, op := range p.Operations {
		var err error
		out, err = EncodeOperation(out, op)
		if err != nil {
			return nil, err
		}
	}
	for _, in := range p.Inputs {
		out = binary.BigEndian.AppendUint32(out, uint32(len(in)))
		out = append(out, in...)
	}
	return out, nil
}

// DecodePayload decodes a payload and rejects any trailing bytes.
func DecodePayload(b []byte) (model.Payload, error) {
	var p model.Payload
	if len(b) < 4 {
		return p, newErr("W3-WIRE-006", "payload truncated before count")
	}
	count := binary.BigEndian.Uint32(b[0:4])
	rest := b[4:]

	need := int(count) * OperationSize
	if count > uint32(len(b)) || len(rest) < need {
		return p, newErr("W3-WIRE-007", "payload truncated inside operations")
	}
	p.Operations = make([]model.Operation, 0, count)
	for i := uint32(0); i < count; i++ {
		op, err := DecodeOperation(rest[:OperationSize])
		if err != nil {
			return model.Payload{}, err
		}
		p.Operations = append(p.Operations, op)
		rest = rest[OperationSize:]
	}

	p.Inputs = make([][]byte, 0, count)
	for i := uint32(0); i < count; i++ {
		if len(rest) < 4 {
			return model.Payload{}, newErr("W3-WIRE-008", "payload truncated before input length")
		}
		n := binary.BigEndian.Uint32(rest[0:4])
		rest = rest[4:]
		if uint32(len(rest)) < n {
			return model.Payload{}, newErr("W3-WIRE-009", "payload truncated inside input")
		}
		in := make([]byte, n)
		copy(in, rest[:n])
		p.Inputs = append(p.Inputs, in)
		rest = rest[n:]
	}
	if len(rest) != 0 {
		return model.Payload{}, newErr("W3-WIRE-010", "payload has trailing bytes")
	}
	return p, nil
}

// EncodeInstruction encodes a header/payload pair.
func EncodeInstruction(instr model.Instruction) []byte {
	out := binary.BigEndian.AppendUint32(nil, uint32(len(instr.Header)))
	out = append(out, instr.Header...)
	out = binary.BigEndian.AppendUint32(out, uint32(len(instr.Payload)))
	out = append(out, instr.Payload...)
	return out
}

// DecodeInstruction splits an encoded instruction into header and
// payload bytes, rejecting trailing data.
func DecodeInstruction(b []byte) (model.Instruction, error) {
	var instr model.Instruction
	hdr, rest, err := readChunk(b, "header")
	if err != nil {
		return instr, err
	}
	pay, rest, err := readChunk(rest, "payload")
	if err != nil {
		return instr, err
	}
	if len(rest) != 0 {
		return instr, newErr("W3-WIRE-011", "instruction has trailing bytes")
	}
	instr.Header = hdr
	instr.Payload = pay
	return instr, nil
}

// EncodeSignedPayload encodes the submission envelope.
func EncodeSignedPayload(sp model.SignedPayload) []byte {
	out := []byte{SignedPayloadVersion}
	out = binary.BigEndian.AppendUint32(out, uint32(len(sp.Instruction)))
	out = append(out, sp.Instruction...)
	out = append(out, sp.Initiator[:]...)
	out = binary.BigEndian.AppendUint32(out, uint32(len(sp.Signature)))
	out = append(out, sp.Signature...)
	return out
}

// DecodeSignedPayload decodes the submission envelope.
func DecodeSignedPayload(b []byte) (model.SignedPayload, error) {
	var sp model.SignedPayload
	if len(b) < 1 {
		return sp, newErr("W3-WIRE-012", "signed payload is empty")
	}
	if b[0] != SignedPayloadVersion {
		return sp, newErrf("W3-WIRE-013", "unsupported signed payload version %d", b[0])
	}
	instr, rest, err := readChunk(b[1:], "instruction")
	if err != nil {
		return sp, err
	}
	if len(rest) < model.AddressSize {
		return sp, newErr("W3-WIRE-014", "signed payload truncated before initiator")
	}
	copy(sp.Initiator[:], rest[:model.AddressSize])
	sig, rest, err := readChunk(rest[model.AddressSize:], "signature")
	if err != nil {
		return sp, err
	}
	if len(rest) != 0 {
		return sp, newErr("W3-WIRE-015", "signed payload has trailing bytes")
	}
	sp.Instruction = instr
	sp.Signature = sig
	return sp, nil
}

// readChunk reads a u32-length-prefixed chunk, copying it out of b.
func readChunk(b []byte, what string) ([]byte, []byte, error) {
	if len(b) < 4 {
		return nil, nil, newErrf("W3-WIRE-016", "truncated before %s length", what)
	}
	n := binary.BigEndian.Uint32(b[0:4])
	b = b[4:]
	if uint32(len(b)) < n {
		return nil, nil, newErrf("W3-WIRE-017", "truncated inside %s", what)
	}
	out := make([]byte, n)
	copy(out, b[:n])
	return out, b[n:], nil
}
