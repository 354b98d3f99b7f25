package auth

import (
	"crypto/ed25519"

	"github.com/cloudflare/circl/sign/dilithium/mode3"

	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

// Algorithm tags the signature scheme inside an envelope.
type Algorithm uint8

const (
	AlgEd25519    Algorithm = 1
	AlgDilithium3 Algorithm = 2
)

func (a Algorithm) String() string {
	switch a {
	case AlgEd25519:
		return "ed25519"
	case AlgDilithium3:
		return "dilithium3"
	default:
		return "unknown"
	}
}

// Envelope is a self-describing signature: the scheme tag, the signer's
// public key, and the signature over the signing digest. Identity is
// recovered from the embedded public key, never trusted from the caller.
type Envelope struct {
	Alg       Algorithm
	PublicKey []byte
	Sig       []byte
}

func newAuthErr(ruleID, msg string) error {
	return model.NewError(model.KindAuth, ruleID, msg)
}

// Encode returns the wire form: alg u8 | pubkey | sig. Key and signature
// widths are fixed per algorithm, so no length prefixes are needed.
func (e Envelope) Encode() ([]byte, error) {
	switch e.Alg {
	case AlgEd25519:
		if len(e.PublicKey) != ed25519.PublicKeySize {
			return nil, newAuthErr("W3-AUTH-010", "invalid ed25519 public key length")
		}
		if len(e.Sig) != ed25519.SignatureSize {
			return nil, newAuthErr("W3-AUTH-011", "invalid ed25519 signature length")
		}
	case AlgDilithium3:
		if len(e.PublicKey) != mode3.PublicKeySize {
			return nil, newAuthErr("W3-AUTH-012", "invalid dilithium3 public key length")
		}
		if len(e.Sig) != mode3.SignatureSize {
			return nil, newAuthErr("W3-AUTH-013", "invalid dilithium3 signature length")
		}
	default:
		return nil, newAuthErr("W3-AUTH-014", "unsupported signature algorithm")
	}
	out := make([]byte, 0, 1+len(e.PublicKey)+len(e.Sig))
	out = append(out, byte(e.Alg))
	out = append(out, e.PublicKey...)
	out = append(out, e.Sig...)
	return out, nil
}

// DecodeEnvelope parses the wire form, failing closed on any width
// mismatch.
func DecodeEnvelope(b []byte) (Envelope, error) {
	var e Envelope
	if len(b) < 1 {
		return e, newAuthErr("W3-AUTH-015", "empty signature envelope")
	}
	e.Alg = Algorithm(b[0])
	rest := b[1:]

	var pkLen, sigLen int
	switch e.Alg {
	case AlgEd25519:
		pkLen, sigLen = ed25519.PublicKeySize, ed25519.SignatureSize
	case AlgDilithium3:
		pkLen, sigLen = mode3.PublicKeySize, mode3.SignatureSize
	default:
		return Envelope{}, newAuthErr("W3-AUTH-014", "unsupported signature algorithm")
	}
	if len(rest) != pkLen+sigLen {
		return Envelope{}, newAuthErr("W3-AUTH-016", "signature envelope width mismatch")
	}
	e.PublicKey = append([]byte(nil), rest[:pkLen]...)
	e.Sig = append([]byte(nil), rest[pkLen:]...)
	return e, nil
}
