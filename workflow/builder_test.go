package workflow

import (
	"math/big"
	"testing"

	"github.com/Tora-Build/w3cash-sdk-sub001/auth"
	"github.com/Tora-Build/w3cash-sdk-sub001/codec"
	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

func TestBuilderEncode(t *testing.T) {
	var target model.Address
	target[0] = 0x10
	sel, err := Selector("step1")
	if err != nil {
		t.Fatalf("Selector: %v", err)
	}

	var b Builder
	b.Add(model.Operation{DomainIndex: 1, Target: target, Selector: sel, Value: big.NewInt(5)}, []byte("in1")).
		Add(model.Operation{DomainIndex: 1, Target: target}, nil)
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}

	instr, err := b.Encode(1)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dec, err := codec.DecodeInstruction(instr)
	if err != nil {
		t.Fatalf("DecodeInstruction: %v", err)
	}
	hdr, err := codec.DecodeHeader(dec.Header)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if hdr.Cursor != 1 || hdr.Length != 2 {
		t.Fatalf("header %+v, want cursor 1 length 2", hdr)
	}
	if hdr.PayloadDigest != auth.PayloadDigest(dec.Payload) {
		t.Fatal("header digest must match payload bytes")
	}

	pay, err := codec.DecodePayload(dec.Payload)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if len(pay.Operations) != 2 || string(pay.Inputs[0]) != "in1" {
		t.Fatalf("payload %+v", pay)
	}
}

func TestBuilderRejectsEmptyWorkflow(t *testing.T) {
	var b Builder
	if _, err := b.Encode(0); err == nil {
		t.Fatal("empty workflow must not encode")
	}
}

func TestSelectorBounds(t *testing.T) {
	s, err := Selector("x")
	if err != nil {
		t.Fatalf("Selector: %v", err)
	}
	if s[0] != 'x' || s[1] != 0 {
		t.Fatalf("selector %v", s)
	}
	if _, err := Selector("exactly8b"); err == nil {
		t.Fatal("labels over the selector width must be rejected")
	}
	if _, err := Selector("eight_by"); err != nil {
		t.Fatalf("8-byte label: %v", err)
	}
}

func TestBuilderPayloadIsStableAcrossCursors(t *testing.T) {
	var target model.Address
	target[0] = 0x10
	var b Builder
	b.Add(model.Operation{DomainIndex: 1, Target: target}, []byte("in"))

	i0, err := b.Encode(0)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	i1, err := b.Encode(1)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	d0, _ := codec.DecodeInstruction(i0)
	d1, _ := codec.DecodeInstruction(i1)
	if string(d0.Payload) != string(d1.Payload) {
		t.Fatal("cursor must not affect the signed payload bytes")
	}
}
