// Package model defines the core value types shared across the w3cash
// workflow engine: addresses, digests, and the instruction object graph
// (header, payload, operations, signed payload).
//
// Types here are plain values with no behavior beyond parsing and
// formatting. The byte-exact wire encoding lives in package codec.
package model
