package regiontree

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("regiontree: invalid configuration")
	// ErrInvalidRange signals a rectangle with r1 > r2 or c1 > c2, or with
	// coordinates outside of the tree's bounds.
	ErrInvalidRange = errors.New("regiontree: invalid range")
	// ErrResourceExhausted signals that materializing nodes would exceed the
	// configured node budget. The operation has been aborted.
	ErrResourceExhausted = errors.New("regiontree: node budget exhausted")
	// ErrInvariantViolated is reported by Check for a corrupted tree.
	ErrInvariantViolated = errors.New("regiontree: invariant violated")
)
