package registry

import "errors"

var (
	ErrNotOwner       = errors.New("registry: caller is not the owner")
	ErrNotRegistered  = errors.New("registry: not registered")
	ErrFrozen         = errors.New("registry: entry is frozen")
	ErrZeroLocation   = errors.New("registry: provider location is null")
	ErrZeroDomain     = errors.New("registry: zero is not a valid domain identifier")
	ErrZeroOwner      = errors.New("registry: owner cannot be the zero address")
	ErrLengthMismatch = errors.New("registry: batch argument lengths differ")
)

// IsNotRegistered reports whether err is (or wraps) ErrNotRegistered.
func IsNotRegistered(err error) bool { return errors.Is(err, ErrNotRegistered) }
