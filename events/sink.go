package events

import "sync"

// NopSink discards every event.
type NopSink struct{}

func (NopSink) Emit(Event) {}

// Recorder is a thread-safe sink that keeps every event in order.
// Intended for tests and for the CLI's dry-run output.
type Recorder struct {
	mu   sync.Mutex
	evts []Event
}

func (r *Recorder) Emit(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evts = append(r.evts, e)
}

// Events returns a snapshot of everything emitted so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.evts))
	copy(out, r.evts)
	return out
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evts = nil
}
