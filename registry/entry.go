package registry

// entryState is the one-way mutability lattice of a registry entry.
// An entry is born unset, becomes mutable on first write, and may be
// frozen exactly once. Frozen entries never change again.
type entryState uint8

const (
	stateUnset entryState = iota
	stateMutable
	stateFrozen
)

// entry holds one registered value behind its lifecycle state. The value
// is only reachable through methods that respect the lattice, so
// "frozen implies immutable forever" holds structurally.
type entry[T any] struct {
	st    entryState
	value T
}

// get returns the value if the entry is set.
func (e *entry[T]) get() (T, bool) {
	var zero T
	if e == nil || e.st == stateUnset {
		return zero, false
	}
	return e.value, true
}

func (e *entry[T]) frozen() bool {
	return e != nil && e.st == stateFrozen
}

// set writes the value unless the entry is frozen.
func (e *entry[T]) set(v T) error {
	if e.frozen() {
		return ErrFrozen
	}
	e.st = stateMutable
	e.value = v
	return nil
}

// freeze marks a set entry permanently immutable.
func (e *entry[T]) freeze() error {
	if e == nil || e.st == stateUnset {
		return ErrNotRegistered
	}
	if e.st == stateFrozen {
		return ErrFrozen
	}
	e.st = stateFrozen
	return nil
}
