package golay

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure modes of unit parsing and layout
// resolution. Per-node failures during a pass are wrapped in NodeError and
// collected; none of them aborts a resolution pass.
var (
	// ErrInvalidUnit reports a unit string that does not match the grammar.
	// Surfaced at theme-load time, never during a resolution pass.
	ErrInvalidUnit = errors.New("golay: invalid unit")

	// ErrNegativeExtent reports a contradictory layout spec whose resolved
	// width or height is negative even after clamping.
	ErrNegativeExtent = errors.New("golay: negative extent")

	// ErrUnresolvedParent reports a node visited before its parent, either
	// because the caller-supplied order is malformed or because the tree
	// contains a cycle.
	ErrUnresolvedParent = errors.New("golay: parent not yet resolved")

	// ErrConflictingAxis reports an axis that supplies both opposing edges
	// and an explicit size. Only produced under ResolveOptions.StrictEdgeSize;
	// by default the edge pair wins and the size is ignored.
	ErrConflictingAxis = errors.New("golay: both edges and explicit size given")
)

// NodeError records one component's failure during a resolution pass.
type NodeError struct {
	ID  ComponentID
	Err error
}

func (e NodeError) Error() string {
	return fmt.Sprintf("%s: %v", e.ID, e.Err)
}

func (e NodeError) Unwrap() error {
	return e.Err
}
