package auth

import (
	"crypto/ed25519"

	"github.com/cloudflare/circl/sign/dilithium/mode3"

	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

// AddressFromPublicKey derives the signer identity from a raw public key:
// the last 20 bytes of keccak256(pubkey).
func AddressFromPublicKey(pub []byte) model.Address {
	d := keccak256(pub)
	var a model.Address
	copy(a[:], d[model.DigestSize-model.AddressSize:])
	return a
}

// Recover returns the identity that produced sig over digest, or an
// authorization error if the signature does not verify.
func Recover(digest model.Digest, sig []byte) (model.Address, error) {
	env, err := DecodeEnvelope(sig)
	if err != nil {
		return model.ZeroAddress, err
	}
	switch env.Alg {
	case AlgEd25519:
		if !ed25519.Verify(ed25519.PublicKey(env.PublicKey), digest[:], env.Sig) {
			return model.ZeroAddress, newAuthErr("W3-AUTH-002", "ed25519 signature does not verify")
		}
	case AlgDilithium3:
		var pk mode3.PublicKey
		if err := pk.UnmarshalBinary(env.PublicKey); err != nil {
			return model.ZeroAddress, model.WrapError(model.KindAuth, "W3-AUTH-012", "invalid dilithium3 public key", err)
		}
		if !mode3.Verify(&pk, digest[:], env.Sig) {
			return model.ZeroAddress, newAuthErr("W3-AUTH-003", "dilithium3 signature does not verify")
		}
	default:
		return model.ZeroAddress, newAuthErr("W3-AUTH-014", "unsupported signature algorithm")
	}
	return AddressFromPublicKey(env.PublicKey), nil
}

// Verify checks that sig recovers to initiator over the signing digest of
// payload. It returns a KindAuth error otherwise.
func Verify(payload []byte, initiator model.Address, sig []byte) error {
	got, err := Recover(SigningDigest(payload), sig)
	if err != nil {
		return err
	}
	if got != initiator {
		return newAuthErr("W3-AUTH-001", "signature does not recover to initiator")
	}
	return nil
}
