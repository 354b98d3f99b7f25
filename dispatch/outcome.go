package dispatch

import "github.com/Tora-Build/w3cash-sdk-sub001/model"

// Status is the terminal state of one successful invocation. Rejection
// is not a Status; rejected invocations return an error and no outcome.
type Status uint8

const (
	// StatusCompleted: the loop reached the workflow length.
	StatusCompleted Status = iota
	// StatusPaused: a provider returned the pause sentinel at Step.
	// Resuming requires a re-invocation with cursor = Step.
	StatusPaused
	// StatusForwarded: the remaining instruction was handed to a
	// transport provider at Step; later steps belong to the forwarded
	// instruction, not to this invocation.
	StatusForwarded
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusPaused:
		return "paused"
	case StatusForwarded:
		return "forwarded"
	default:
		return "unknown"
	}
}

// Outcome describes how an invocation ended.
type Outcome struct {
	Status        Status
	Step          uint32 // pause/forward position; equals length on completion
	PayloadDigest model.Digest
	Handle        model.MessageHandle // set only for StatusForwarded
}
