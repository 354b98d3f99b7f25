// Package dispatch is the workflow control loop. A Processor decodes a
// signed instruction, verifies that the signature recovers to the
// claimed initiator, checks payload integrity, and walks the operation
// list from the caller-supplied cursor: local steps are executed through
// their providers, non-local steps hand the remaining instruction to a
// transport provider, and a pause sentinel halts the walk without
// failing it.
//
// Pause and forward are expected outcomes, returned as values. Hard
// failures reject the whole invocation; the substrate rolls back every
// effect of the rejected invocation as one unit.
package dispatch
