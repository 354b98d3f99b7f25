package model

import "errors"

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions.
// Callers should branch on Kind/RuleID rather than matching error strings.
type Kind string

const (
	// KindAuth: a signature does not recover to the claimed initiator, or
	// an inbound endpoint is not allowlisted.
	KindAuth Kind = "Auth"
	// KindIntegrity: digest mismatch, malformed or truncated encoding,
	// or a structural violation such as mismatched list lengths.
	KindIntegrity Kind = "Integrity"
	// KindLookup: an unregistered provider ID, domain index, or unbound
	// provider location.
	KindLookup Kind = "Lookup"
	// KindProvider: a capability provider raised a hard failure.
	KindProvider Kind = "Provider"
	// KindAdmin: an owner-gated mutation attempted by a non-owner, or a
	// write to a frozen or invalid entry.
	KindAdmin Kind = "Admin"
	// KindInternal: invariant violations inside the engine itself.
	KindInternal Kind = "Internal"
)

// Error is the engine's structured error type.
//
// RuleID is a stable identifier (e.g., W3-AUTH-001, W3-WIRE-004) naming
// the violated invariant. Message is intended for humans; do not match
// on it. Use errors.As to extract *Error for structured handling.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewError constructs a structured error.
func NewError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

// WrapError constructs a structured error around a cause.
func WrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return NewError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
