package auth

import (
	"crypto/ed25519"

	"github.com/cloudflare/circl/sign/dilithium/mode3"

	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

// SignEd25519 signs the signing digest of payload and returns the
// encoded envelope plus the signer's identity.
func SignEd25519(payload []byte, priv ed25519.PrivateKey) ([]byte, model.Address, error) {
	digest := SigningDigest(payload)
	pub := priv.Public().(ed25519.PublicKey)
	env := Envelope{
		Alg:       AlgEd25519,
		PublicKey: pub,
		Sig:       ed25519.Sign(priv, digest[:]),
	}
	b, err := env.Encode()
	if err != nil {
		return nil, model.ZeroAddress, err
	}
	return b, AddressFromPublicKey(pub), nil
}

// SignDilithium3 signs the signing digest of payload with a post-quantum
// key and returns the encoded envelope plus the signer's identity.
func SignDilithium3(payload []byte, pub *mode3.PublicKey, priv *mode3.PrivateKey) ([]byte, model.Address, error) {
	if pub == nil || priv == nil {
		return nil, model.ZeroAddress, newAuthErr("W3-AUTH-017", "missing dilithium3 key")
	}
	digest := SigningDigest(payload)
	sig := make([]byte, mode3.SignatureSize)
	mode3.SignTo(priv, digest[:], sig)
	pk, err := pub.MarshalBinary()
	if err != nil {
		return nil, model.ZeroAddress, model.WrapError(model.KindAuth, "W3-AUTH-012", "invalid dilithium3 public key", err)
	}
	env := Envelope{Alg: AlgDilithium3, PublicKey: pk, Sig: sig}
	b, err := env.Encode()
	if err != nil {
		return nil, model.ZeroAddress, err
	}
	return b, AddressFromPublicKey(pk), nil
}
