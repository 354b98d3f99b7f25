package codec

import (
	"encoding/binary"
	"errors"
	"math/big"
	"testing"

	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

func testOperation() model.Operation {
	var target model.Address
	copy(target[:], []byte("transfer-provider-01"))
	var sel model.Selector
	copy(sel[:], "xfer")
	return model.Operation{
		DomainIndex:  3,
		TransportID:  7,
		TransportFee: 1_000_000,
		Target:       target,
		Selector:     sel,
		Value:        big.NewInt(42),
	}
}

func TestOperationRoundTrip(t *testing.T) {
	op := testOperation()
	b, err := EncodeOperation(nil, op)
	if err != nil {
		t.Fatalf("EncodeOperation: %v", err)
	}
	if len(b) != OperationSize {
		t.Fatalf("encoded operation is %d bytes, want %d", len(b), OperationSize)
	}
	got, err := DecodeOperation(b)
	if err != nil {
		t.Fatalf("DecodeOperation: %v", err)
	}
	if got.DomainIndex != op.DomainIndex || got.TransportID != op.TransportID ||
		got.TransportFee != op.TransportFee || got.Target != op.Target || got.Selector != op.Selector {
		t.Fatalf("decoded operation differs: %+v vs %+v", got, op)
	}
	if got.Value.Cmp(op.Value) != 0 {
		t.Fatalf("decoded value %s, want %s", got.Value, op.Value)
	}
}

func TestOperationNilValueEncodesAsZero(t *testing.T) {
	op := testOperation()
	op.Value = nil
	b, err := EncodeOperation(nil, op)
	if err != nil {
		t.Fatalf("EncodeOperation: %v", err)
	}
	got, err := DecodeOperation(b)
	if err != nil {
		t.Fatalf("DecodeOperation: %v", err)
	}
	if got.Value.Sign() != 0 {
		t.Fatalf("nil value decoded as %s, want 0", got.Value)
	}
}

func TestOperationValueBounds(t *testing.T) {
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 112), big.NewInt(1))

	op := testOperation()
	op.Value = max
	b, err := EncodeOperation(nil, op)
	if err != nil {
		t.Fatalf("max 112-bit value must encode: %v", err)
	}
	got, err := DecodeOperation(b)
	if err != nil {
		t.Fatalf("DecodeOperation: %v", err)
	}
	if got.Value.Cmp(max) != 0 {
		t.Fatalf("decoded %s, want %s", got.Value, max)
	}

	op.Value = new(big.Int).Add(max, big.NewInt(1))
	if _, err := EncodeOperation(nil, op); err == nil {
		t.Fatal("value above 112 bits must be rejected")
	}

	op.Value = big.NewInt(-1)
	if _, err := EncodeOperation(nil, op); err == nil {
		t.Fatal("negative value must be rejected")
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	var d model.Digest
	for i := range d {
		d[i] = byte(i)
	}
	h := model.Header{Cursor: 2, Length: 5, PayloadDigest: d}
	b := EncodeHeader(h)
	if len(b) != HeaderSize {
		t.Fatalf("encoded header is %d bytes, want %d", len(b), HeaderSize)
	}
	got, err := DecodeHeader(b)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if got != h {
		t.Fatalf("decoded header %+v, want %+v", got, h)
	}
	if _, err := DecodeHeader(b[:HeaderSize-1]); err == nil {
		t.Fatal("short header must be rejected")
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	p := model.Payload{
		Operations: []model.Operation{testOperation(), testOperation()},
		Inputs:     [][]byte{[]byte("first"), nil},
	}
	b, err := EncodePayload(p)
	if err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	got, err := DecodePayload(b)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if len(got.Operations) != 2 || len(got.Inputs) != 2 {
		t.Fatalf("decoded %d ops / %d inputs, want 2/2", len(got.Operations), len(got.Inputs))
	}
	if string(got.Inputs[0]) != "first" || len(got.Inputs[1]) != 0 {
		t.Fatalf("decoded inputs differ: %q, %q", got.Inputs[0], got.Inputs[1])
	}
}

func TestPayloadLengthMismatch(t *testing.T) {
	p := model.Payload{
		Operations: []model.Operation{testOperation()},
		Inputs:     nil,
	}
	if _, err := EncodePayload(p); err == nil {
		t.Fatal("misaligned operations/inputs must be rejected")
	}
}

func TestPayloadFailClosed(t *testing.T) {
	valid, err := EncodePayload(model.Payload{
		Operations: []model.Operation{testOperation()},
		Inputs:     [][]byte{[]byte("input")},
	})
	if err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}

	cases := []struct {
		name string
		b    []byte
	}{
		{"empty", nil},
		{"truncated count", valid[:3]},
		{"truncated operation", valid[:4+OperationSize-1]},
		{"truncated input length", valid[:4+OperationSize+2]},
		{"truncated input body", valid[:len(valid)-1]},
		{"trailing bytes", append(append([]byte(nil), valid...), 0x00)},
		{"count overstated", func() []byte {
			b := append([]byte(nil), valid...)
			binary.BigEndian.PutUint32(b[0:4], 2)
			return b
		}()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodePayload(tc.b); err == nil {
				t.Fatal("malformed payload must be rejected")
			} else if !model.IsKind(err, model.KindIntegrity) {
				t.Fatalf("want Integrity kind, got %v", err)
			}
		})
	}
}

func TestInstructionRoundTrip(t *testing.T) {
	instr := model.Instruction{
		Header:  EncodeHeader(model.Header{Cursor: 0, Length: 1}),
		Payload: []byte("payload-bytes"),
	}
	b := EncodeInstruction(instr)
	got, err := DecodeInstruction(b)
	if err != nil {
		t.Fatalf("DecodeInstruction: %v", err)
	}
	if string(got.Payload) != "payload-bytes" || len(got.Header) != HeaderSize {
		t.Fatalf("decoded instruction differs")
	}
	if _, err := DecodeInstruction(append(b, 0xff)); err == nil {
		t.Fatal("trailing bytes must be rejected")
	}
	if _, err := DecodeInstruction(b[:len(b)-1]); err == nil {
		t.Fatal("truncated payload must be rejected")
	}
}

func TestSignedPayloadRoundTrip(t *testing.T) {
	var initiator model.Address
	copy(initiator[:], []byte("initiator-address-00"))
	sp := model.SignedPayload{
		Instruction: []byte("instruction"),
		Initiator:   initiator,
		Signature:   []byte("signature"),
	}
	b := EncodeSignedPayload(sp)
	if b[0] != SignedPayloadVersion {
		t.Fatalf("version byte %d, want %d", b[0], SignedPayloadVersion)
	}
	got, err := DecodeSignedPayload(b)
	if err != nil {
		t.Fatalf("DecodeSignedPayload: %v", err)
	}
	if string(got.Instruction) != "instruction" || got.Initiator != initiator || string(got.Signature) != "signature" {
		t.Fatalf("decoded signed payload differs: %+v", got)
	}
}

func TestSignedPayloadFailClosed(t *testing.T) {
	sp := model.SignedPayload{Instruction: []byte("i"), Signature: []byte("s")}
	valid := EncodeSignedPayload(sp)

	bad := append([]byte(nil), valid...)
	bad[0] = 99
	if _, err := DecodeSignedPayload(bad); err == nil {
		t.Fatal("unknown version must be rejected")
	}
	if _, err := DecodeSignedPayload(nil); err == nil {
		t.Fatal("empty envelope must be rejected")
	}
	if _, err := DecodeSignedPayload(valid[:len(valid)-1]); err == nil {
		t.Fatal("truncated signature must be rejected")
	}
	if _, err := DecodeSignedPayload(append(append([]byte(nil), valid...), 0x00)); err == nil {
		t.Fatal("trailing bytes must be rejected")
	}
}

func TestSetInstructionCursor(t *testing.T) {
	hdr := EncodeHeader(model.Header{Cursor: 0, Length: 4})
	instr := EncodeInstruction(model.Instruction{Header: hdr, Payload: []byte("p")})

	if err := SetInstructionCursor(instr, 3); err != nil {
		t.Fatalf("SetInstructionCursor: %v", err)
	}
	got, err := DecodeInstruction(instr)
	if err != nil {
		t.Fatalf("DecodeInstruction: %v", err)
	}
	h, err := DecodeHeader(got.Header)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if h.Cursor != 3 || h.Length != 4 {
		t.Fatalf("header after rewrite: %+v", h)
	}

	// Only the cursor may change.
	if err := SetInstructionCursor([]byte{0, 0}, 1); err == nil {
		t.Fatal("short instruction must be rejected")
	}
	noHeader := EncodeInstruction(model.Instruction{Header: []byte("short"), Payload: nil})
	if err := SetInstructionCursor(noHeader, 1); err == nil {
		t.Fatal("instruction without a full header must be rejected")
	}
}

func TestDecodeErrorsCarryRuleIDs(t *testing.T) {
	_, err := DecodePayload(nil)
	var e *model.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected structured error, got %v", err)
	}
	if e.RuleID == "" {
		t.Fatal("decode error must carry a rule ID")
	}
}
