package regiontree

import (
	"math"

	"github.com/cockroachdb/errors"
)

const (
	// DefaultRows is the number of rows of a tree configured with Rows == 0,
	// i.e. row coordinates range over [0, 10^9].
	DefaultRows = 1_000_000_001
	// DefaultCols is the number of columns of a tree configured with Cols == 0.
	DefaultCols = 1_000_000_001
)

// MaxExtent is the largest number of rows or columns a tree may have.
// It keeps the area of every rectangle within an int64 and every coordinate
// within an int.
const MaxExtent int64 = min(1<<31, math.MaxInt)

// Policy defines value and delta semantics of a tree.
//
// T is the aggregate value type, D is the type of (pending) updates.
// Implementations must obey the following laws, for values a, b, c,
// deltas d, d1, d2, d3 and areas n, m > 0:
//
//	JoinValues(JoinValues(a, b), c) == JoinValues(a, JoinValues(b, c))
//	JoinRegion(v, n+m) == JoinValues(JoinRegion(v, n), JoinRegion(v, m))
//	JoinValueWithDelta(JoinRegion(v, n), d, n) == JoinRegion(JoinValueWithDelta(v, d, 1), n)
//	JoinDeltas(JoinDeltas(d1, d2), d3) == JoinDeltas(d1, JoinDeltas(d2, d3))
//	JoinValueWithDelta(JoinValueWithDelta(v, d1, n), d2, n) == JoinValueWithDelta(v, JoinDeltas(d1, d2), n)
//
// JoinValues is never required to be commutative: aggregates are always
// combined in quadrant order NW, NE, SW, SE.
type Policy[T, D any] interface {
	JoinValues(a, b T) T
	JoinRegion(v T, area int64) T
	JoinValueWithDelta(v T, d D, area int64) T
	JoinDeltas(d1, d2 D) D
}

// PolicyFuncs adapts four plain functions to interface Policy.
// All four functions are required.
type PolicyFuncs[T, D any] struct {
	Values         func(a, b T) T
	Region         func(v T, area int64) T
	ValueWithDelta func(v T, d D, area int64) T
	Deltas         func(d1, d2 D) D
}

// JoinValues is part of interface Policy.
func (pf PolicyFuncs[T, D]) JoinValues(a, b T) T { return pf.Values(a, b) }

// JoinRegion is part of interface Policy.
func (pf PolicyFuncs[T, D]) JoinRegion(v T, area int64) T { return pf.Region(v, area) }

// JoinValueWithDelta is part of interface Policy.
func (pf PolicyFuncs[T, D]) JoinValueWithDelta(v T, d D, area int64) T {
	return pf.ValueWithDelta(v, d, area)
}

// JoinDeltas is part of interface Policy.
func (pf PolicyFuncs[T, D]) JoinDeltas(d1, d2 D) D { return pf.Deltas(d1, d2) }

func (pf PolicyFuncs[T, D]) complete() bool {
	return pf.Values != nil && pf.Region != nil && pf.ValueWithDelta != nil && pf.Deltas != nil
}

// Config configures a region tree.
type Config[T, D any] struct {
	// Policy defines value and delta semantics. Required.
	Policy Policy[T, D]
	// Init is the value every cell holds before it is first updated.
	Init T
	// Rows is the number of rows; row coordinates range over [0, Rows-1].
	// 0 selects DefaultRows.
	Rows int
	// Cols is the number of columns; column coordinates range over [0, Cols-1].
	// 0 selects DefaultCols.
	Cols int
	// MaxNodes limits the number of live nodes. 0 means unlimited.
	MaxNodes int
}

func (cfg Config[T, D]) normalized() Config[T, D] {
	if cfg.Rows == 0 {
		cfg.Rows = DefaultRows
	}
	if cfg.Cols == 0 {
		cfg.Cols = DefaultCols
	}
	return cfg
}

func (cfg Config[T, D]) validate() error {
	cfg = cfg.normalized()
	if cfg.Policy == nil {
		return errors.Wrap(ErrInvalidConfig, "policy is required")
	}
	if pf, ok := cfg.Policy.(PolicyFuncs[T, D]); ok && !pf.complete() {
		return errors.Wrap(ErrInvalidConfig, "policy functions must all be set")
	}
	if cfg.Rows < 0 || int64(cfg.Rows) > MaxExtent {
		return errors.Wrapf(ErrInvalidConfig, "rows=%d not in [1, %d]", cfg.Rows, MaxExtent)
	}
	if cfg.Cols < 0 || int64(cfg.Cols) > MaxExtent {
		return errors.Wrapf(ErrInvalidConfig, "cols=%d not in [1, %d]", cfg.Cols, MaxExtent)
	}
	if cfg.MaxNodes < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative node budget %d", cfg.MaxNodes)
	}
	return nil
}
