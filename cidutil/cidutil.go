// Package cidutil derives content identifiers for workflow payloads.
// The wire format carries a raw keccak digest; CIDs are the
// human-facing name used by the CLI and the progress tooling.
package cidutil

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// WorkflowCID returns the CIDv1 (raw multicodec, sha2-256 multihash)
// naming a workflow's canonical payload bytes.
func WorkflowCID(payload []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(payload, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// WorkflowCIDString is WorkflowCID rendered as a string, or "" when the
// bytes cannot be hashed (unreachable for sha2-256 at default length).
func WorkflowCIDString(payload []byte) string {
	id, err := WorkflowCID(payload)
	if err != nil {
		return ""
	}
	return id.String()
}
