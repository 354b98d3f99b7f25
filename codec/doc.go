// Package codec implements the byte-exact wire format for workflow
// instructions: the fixed-width operation tuple, the header, the
// payload, and the signed-payload envelope.
//
// All functions are pure. Decoding fails closed: malformed or truncated
// input is a structural error (model.KindIntegrity), never a zero-filled
// default. Integers are big-endian; field order and widths are part of
// the interchange contract and must not change.
package codec
