package keys

import (
	"crypto/ed25519"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"github.com/cloudflare/circl/sign/dilithium/mode3"

	"github.com/Tora-Build/w3cash-sdk-sub001/auth"
	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

// DeriveRoleSeed deterministically derives a role-specific Ed25519 seed
// from a root seed. The derivation tag is versioned; changing it would
// change every derived identity.
func DeriveRoleSeed(rootSeed []byte, role string) ([]byte, error) {
	if len(rootSeed) != ed25519.SeedSize {
		return nil, fmt.Errorf("root seed must be %d bytes", ed25519.SeedSize)
	}
	if err := CheckName(role); err != nil {
		return nil, err
	}

	h := sha256.New()
	_, _ = h.Write(rootSeed)
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte("w3cash-kms-lite-v1"))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte("role:"))
	_, _ = h.Write([]byte(role))
	sum := h.Sum(nil)
	if len(sum) < ed25519.SeedSize {
		return nil, errors.New("kdf output too short")
	}
	out := make([]byte, ed25519.SeedSize)
	copy(out, sum[:ed25519.SeedSize])
	return out, nil
}

// AddressFromSeed returns the initiator identity for an Ed25519 seed.
func AddressFromSeed(seed []byte) (model.Address, error) {
	if len(seed) != ed25519.SeedSize {
		return model.ZeroAddress, fmt.Errorf("seed must be %d bytes", ed25519.SeedSize)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return auth.AddressFromPublicKey(priv.Public().(ed25519.PublicKey)), nil
}

// GenerateDilithium3Keypair returns a new post-quantum keypair.
func GenerateDilithium3Keypair(rand io.Reader) (*mode3.PublicKey, *mode3.PrivateKey, error) {
	return mode3.GenerateKey(rand)
}
