package dispatch

import (
	"golang.org/x/crypto/sha3"

	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

// EndpointHash names an inbound cross-domain endpoint for the
// allowlist. Both sides of a route derive the same hash from the
// sending domain's name.
func EndpointHash(sender string) model.Digest {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write([]byte("w3cash.endpoint/"))
	_, _ = h.Write([]byte(sender))
	var out model.Digest
	copy(out[:], h.Sum(nil))
	return out
}
