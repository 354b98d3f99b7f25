// Package keys is a local-first key management system ("KMS-lite") for
// workflow initiators.
//
// Features:
// - Ed25519 root keys with deterministic role-derived subkeys
// - Keys stored on the local filesystem (0600 private key files)
// - Dilithium3 keypair generation for post-quantum envelopes
//
// This package is designed to be straightforward and explicit; it is a
// CLI convenience, not part of the engine's execution path.
package keys
