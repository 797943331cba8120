package regiontree

import "github.com/cockroachdb/errors"

// Check validates structural tree invariants:
// every node is owned by exactly one parent, nodes for single cells have no
// children, empty quadrants are never materialized, and the number of
// reachable nodes matches the node counters.
//
// This checker is intended for tests.
func (t *Tree[T, D]) Check() error {
	if t == nil {
		return errors.Wrap(ErrInvariantViolated, "nil tree")
	}
	seen := make(map[*node[T, D]]struct{})
	count, err := t.checkNode(t.root, t.bounds, seen)
	if err != nil {
		return err
	}
	if uint64(count) != t.stats.Live() {
		return errors.Wrapf(ErrInvariantViolated, "%d reachable nodes, but %d live",
			count, t.stats.Live())
	}
	return nil
}

func (t *Tree[T, D]) checkNode(n *node[T, D], r Rect, seen map[*node[T, D]]struct{}) (int, error) {
	if n == nil {
		return 0, nil
	}
	if _, ok := seen[n]; ok {
		return 0, errors.Wrapf(ErrInvariantViolated, "node for %v has more than one owner", r)
	}
	seen[n] = struct{}{}
	if r.Area() == 1 {
		for i, c := range n.child {
			if c != nil {
				return 0, errors.Wrapf(ErrInvariantViolated, "single cell %v has child %d", r, i)
			}
		}
		return 1, nil
	}
	count := 1
	for i, q := range r.quadrants() {
		c := n.child[i]
		if c == nil {
			continue
		}
		if q.Empty() {
			return 0, errors.Wrapf(ErrInvariantViolated, "node for %v has child in empty quadrant %d", r, i)
		}
		k, err := t.checkNode(c, q, seen)
		if err != nil {
			return 0, err
		}
		count += k
	}
	return count, nil
}

// CheckAggregates validates that the value of every node spanning more than
// one cell equals the ordered join of its quadrants, where pending deltas
// of children count as applied and absent children as holding the initial
// value. eq decides equality of values.
//
// The check relies on the laws of the tree's policy and is intended for tests.
func (t *Tree[T, D]) CheckAggregates(eq func(a, b T) bool) error {
	if t == nil || eq == nil {
		return errors.Wrap(ErrInvariantViolated, "nil tree or comparator")
	}
	return t.checkAggregate(t.root, t.bounds, eq)
}

func (t *Tree[T, D]) checkAggregate(n *node[T, D], r Rect, eq func(a, b T) bool) error {
	if n == nil || r.Area() == 1 {
		return nil
	}
	quads := r.quadrants()
	if joined := t.joinQuadrants(n, quads); !eq(n.value, joined) {
		return errors.Wrapf(ErrInvariantViolated, "node for %v holds %v, quadrants join to %v",
			r, n.value, joined)
	}
	for i, q := range quads {
		if q.Empty() {
			continue
		}
		if err := t.checkAggregate(n.child[i], q, eq); err != nil {
			return err
		}
	}
	return nil
}
