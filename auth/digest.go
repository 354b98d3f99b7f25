package auth

import (
	"golang.org/x/crypto/sha3"

	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

// signingPrefix is prepended to the payload digest before signing, so a
// workflow signature can never be confused with a signature over raw
// payload bytes in another protocol.
const signingPrefix = "\x19w3cash Signed Payload:\n32"

// keccak256 returns the legacy Keccak-256 digest of data.
func keccak256(data ...[]byte) model.Digest {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		_, _ = h.Write(d)
	}
	var out model.Digest
	copy(out[:], h.Sum(nil))
	return out
}

// PayloadDigest returns the digest a header's payloadDigest field must
// carry for the given payload bytes.
func PayloadDigest(payload []byte) model.Digest {
	return keccak256(payload)
}

// SigningDigest returns the digest that is actually signed: the prefixed
// hash of the payload digest.
func SigningDigest(payload []byte) model.Digest {
	pd := PayloadDigest(payload)
	return keccak256([]byte(signingPrefix), pd[:])
}
