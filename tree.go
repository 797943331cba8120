package regiontree

import (
	"github.com/cockroachdb/errors"
)

// Tree is a sparse two-dimensional range-update / range-query tree.
//
// T is the aggregate value type, D the type of updates (deltas). Semantics
// of both are defined by the Policy of the tree's configuration.
//
// A Tree is not safe for concurrent use. Queries modify the tree as well,
// as they push pending deltas down.
type Tree[T, D any] struct {
	cfg    Config[T, D]
	policy Policy[T, D]
	bounds Rect
	root   *node[T, D] // nil until first touched
	stats  Stats
}

// Stats reports node and operation counters of a tree.
type Stats struct {
	NodesCreated uint64 // nodes materialized over the lifetime of the tree
	NodesFreed   uint64 // nodes released by Destroy
	Updates      uint64 // successfully validated update calls
	Queries      uint64 // successfully validated query calls
}

// Live returns the number of currently materialized nodes.
func (s Stats) Live() uint64 {
	return s.NodesCreated - s.NodesFreed
}

// New creates an empty tree with validated configuration.
func New[T, D any](cfg Config[T, D]) (*Tree[T, D], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[T, D]{
		cfg:    cfg,
		policy: cfg.Policy,
		bounds: Rect{R1: 0, C1: 0, R2: cfg.Rows - 1, C2: cfg.Cols - 1},
	}
	tracer().Debugf("region tree: new tree over %v", t.bounds)
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T, D]) Config() Config[T, D] {
	return t.cfg
}

// Bounds returns the rectangle of all cells of the tree.
func (t *Tree[T, D]) Bounds() Rect {
	return t.bounds
}

// Init returns the value of cells never updated.
func (t *Tree[T, D]) Init() T {
	return t.cfg.Init
}

// Stats returns the tree's counters.
func (t *Tree[T, D]) Stats() Stats {
	return t.stats
}

// Update applies delta d to every cell of rectangle [r1,r2]×[c1,c2].
//
// The rectangle must satisfy r1 ≤ r2, c1 ≤ c2 and lie within the tree's
// bounds, otherwise ErrInvalidRange is returned and the tree is not touched.
// If the node budget is exceeded, ErrResourceExhausted is returned. In this
// case the update may have been applied to a part of the rectangle only,
// but the tree is still consistent.
func (t *Tree[T, D]) Update(r1, c1, r2, c2 int, d D) error {
	target := Rect{R1: r1, C1: c1, R2: r2, C2: c2}
	if err := t.checkRange(target); err != nil {
		return errors.Wrap(err, "update")
	}
	t.stats.Updates++
	return t.update(&t.root, t.bounds, target, d)
}

// UpdateAt applies delta d to the single cell (r, c).
func (t *Tree[T, D]) UpdateAt(r, c int, d D) error {
	return t.Update(r, c, r, c, d)
}

// Query returns the aggregate of all cells of rectangle [r1,r2]×[c1,c2].
//
// Preconditions are the same as for Update. A query may materialize nodes
// while pushing down pending deltas and may therefore fail with
// ErrResourceExhausted.
func (t *Tree[T, D]) Query(r1, c1, r2, c2 int) (T, error) {
	var zero T
	target := Rect{R1: r1, C1: c1, R2: r2, C2: c2}
	if err := t.checkRange(target); err != nil {
		return zero, errors.Wrap(err, "query")
	}
	t.stats.Queries++
	var acc accumulator[T]
	if err := t.query(t.root, t.bounds, target, &acc); err != nil {
		return zero, err
	}
	assert(acc.found, "query over a valid range found no cells")
	return acc.result, nil
}

// At returns the value of cell (r, c).
func (t *Tree[T, D]) At(r, c int) (T, error) {
	return t.Query(r, c, r, c)
}

// Destroy releases all nodes of the tree and returns the number of nodes
// released. Afterwards every cell holds the initial value again, and the tree
// may be used further.
func (t *Tree[T, D]) Destroy() int {
	freed := release(t.root)
	t.root = nil
	t.stats.NodesFreed += uint64(freed)
	tracer().Debugf("region tree: released %d nodes, %d created in total",
		freed, t.stats.NodesCreated)
	return freed
}

func (t *Tree[T, D]) checkRange(target Rect) error {
	if target.Empty() || !target.Within(t.bounds) {
		tracer().Errorf("region tree: rectangle %v invalid for bounds %v", target, t.bounds)
		return errors.Wrapf(ErrInvalidRange, "rectangle %v, bounds %v", target, t.bounds)
	}
	return nil
}
