package model

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

const (
	// AddressSize is the width of a provider or initiator address.
	AddressSize = 20
	// DigestSize is the width of a payload digest.
	DigestSize = 32
	// SelectorSize is the width of an operation's informational selector tag.
	SelectorSize = 8
	// ValueSize is the wire width of an operation value (112 bits).
	ValueSize = 14
)

// Address identifies a capability provider location or an initiator.
type Address [AddressSize]byte

// ZeroAddress is the null location; registries reject it at write time.
var ZeroAddress Address

// IsZero reports whether the address is the null location.
func (a Address) IsZero() bool { return a == ZeroAddress }

func (a Address) String() string { return "0x" + hex.EncodeToString(a[:]) }

// ParseAddress parses a 0x-prefixed or bare 40-hex-char address.
func ParseAddress(s string) (Address, error) {
	var a Address
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return a, fmt.Errorf("invalid address hex: %w", err)
	}
	if len(b) != AddressSize {
		return a, fmt.Errorf("expected address length of %d bytes, got %d", AddressSize, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// Digest is a 256-bit hash value (payload digests, endpoint hashes).
type Digest [DigestSize]byte

func (d Digest) String() string { return "0x" + hex.EncodeToString(d[:]) }

// ParseDigest parses a 0x-prefixed or bare 64-hex-char digest.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("invalid digest hex: %w", err)
	}
	if len(b) != DigestSize {
		return d, fmt.Errorf("expected digest length of %d bytes, got %d", DigestSize, len(b))
	}
	copy(d[:], b)
	return d, nil
}

// MessageHandle identifies a cross-domain message accepted by a transport
// provider. Opaque to the engine.
type MessageHandle [32]byte

func (h MessageHandle) String() string { return "0x" + hex.EncodeToString(h[:]) }

// Selector is the informational 8-byte tag carried by every operation.
// Dispatch never inspects it; clients use it to label steps.
type Selector [SelectorSize]byte

// Operation is one step of a workflow.
//
// Target is the capability-provider location for local steps. For steps
// whose DomainIndex resolves to a non-local domain, TransportID selects
// the transport provider that carries the remaining instruction onward
// and TransportFee is the fee handed to it.
type Operation struct {
	DomainIndex  uint8
	TransportID  uint8
	TransportFee uint64
	Target       Address
	Selector     Selector
	Value        *big.Int // 112-bit unsigned; nil means zero
}

// Header prefixes an encoded instruction. It is not covered by the
// workflow signature: Cursor is caller-supplied progress, and
// PayloadDigest must equal the hash of the payload bytes.
type Header struct {
	Cursor        uint32
	Length        uint32
	PayloadDigest Digest
}

// Payload is the signed portion of an instruction: index-aligned
// operations and their opaque input blobs.
type Payload struct {
	Operations []Operation
	Inputs     [][]byte
}

// Instruction pairs an unsigned header with the signed payload bytes.
type Instruction struct {
	Header  []byte
	Payload []byte
}

// SignedPayload is the unit a caller submits for execution. It is
// ephemeral: consumed within a single dispatcher invocation, never
// persisted by the engine.
type SignedPayload struct {
	Instruction []byte
	Initiator   Address
	Signature   []byte
}
