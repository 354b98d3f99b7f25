// Package progress is the opt-in resumption hardening for workflows.
//
// The dispatcher never persists a cursor on behalf of a workflow; the
// cursor is caller-supplied and not covered by the signature. A Store,
// when configured on a processor, records per-payload-digest progress so
// a resumed invocation cannot rewind behind steps that already settled
// locally. Without a Store the original trustless behavior is preserved.
package progress

import (
	"errors"
	"sync"

	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

// ErrCursorBehind rejects a cursor lower than recorded progress.
var ErrCursorBehind = errors.New("progress: cursor is behind recorded progress")

// Store tracks the lowest acceptable cursor per payload digest.
type Store interface {
	// Cursor returns the recorded cursor for a digest, if any.
	Cursor(digest model.Digest) (uint32, bool, error)
	// Record stores cursor for digest if it exceeds what is recorded.
	Record(digest model.Digest, cursor uint32) error
}

// Memory is a process-local Store.
type Memory struct {
	mu      sync.RWMutex
	cursors map[model.Digest]uint32
}

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{cursors: make(map[model.Digest]uint32)}
}

func (m *Memory) Cursor(digest model.Digest) (uint32, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.cursors[digest]
	return c, ok, nil
}

func (m *Memory) Record(digest model.Digest, cursor uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.cursors[digest]; !ok || cursor > cur {
		m.cursors[digest] = cursor
	}
	return nil
}
