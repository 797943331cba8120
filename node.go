package regiontree

// node holds the aggregate of its (implicit) rectangle. Children are owned
// exclusively by their parent; a nil child stands for a rectangle in which
// every cell still holds the tree's initial value.
type node[T, D any] struct {
	value   T // valid for the node's rectangle once pending is resolved
	delta   D // deferred update, not yet applied to value or children
	pending bool
	child   [4]*node[T, D]
}

// newNode materializes a node for rectangle r, charging it to the node budget.
func (t *Tree[T, D]) newNode(r Rect) (*node[T, D], error) {
	if err := t.reserve(1); err != nil {
		return nil, err
	}
	return t.alloc(r), nil
}

// alloc creates a node without checking the budget. Callers have to reserve
// capacity beforehand.
func (t *Tree[T, D]) alloc(r Rect) *node[T, D] {
	t.stats.NodesCreated++
	return &node[T, D]{value: t.policy.JoinRegion(t.cfg.Init, r.Area())}
}

// reserve checks that n more nodes fit into the node budget.
func (t *Tree[T, D]) reserve(n int) error {
	if t.cfg.MaxNodes == 0 || n == 0 {
		return nil
	}
	if t.stats.Live()+uint64(n) > uint64(t.cfg.MaxNodes) {
		tracer().Errorf("region tree: node budget of %d exhausted", t.cfg.MaxNodes)
		return ErrResourceExhausted
	}
	return nil
}

// postpone records delta d as pending on n, composing it with an already
// pending delta.
func (n *node[T, D]) postpone(p Policy[T, D], d D) {
	if n.pending {
		n.delta = p.JoinDeltas(n.delta, d)
	} else {
		n.delta = d
	}
	n.pending = true
}

// aggregate returns n's value for a rectangle of the given area, including a
// pending delta which has not been resolved yet.
func (n *node[T, D]) aggregate(p Policy[T, D], area int64) T {
	if n.pending {
		return p.JoinValueWithDelta(n.value, n.delta, area)
	}
	return n.value
}

// resolve applies a pending delta to n (covering rectangle r) and passes it
// on to the children, materializing absent children of non-empty quadrants.
// Resolve has to run before any read of n's value or any recursion into n's
// children.
//
// If the children cannot be materialized within the node budget, n is left
// untouched and still pending.
func (t *Tree[T, D]) resolve(n *node[T, D], r Rect) error {
	if !n.pending {
		return nil
	}
	area := r.Area()
	if area > 1 {
		quads := r.quadrants()
		missing := 0
		for i, q := range quads {
			if !q.Empty() && n.child[i] == nil {
				missing++
			}
		}
		if err := t.reserve(missing); err != nil {
			return err
		}
		for i, q := range quads {
			if q.Empty() {
				continue
			}
			if n.child[i] == nil {
				n.child[i] = t.alloc(q)
			}
			n.child[i].postpone(t.policy, n.delta)
		}
	}
	n.value = t.policy.JoinValueWithDelta(n.value, n.delta, area)
	var zero D
	n.delta = zero
	n.pending = false
	return nil
}

// release frees the subtree at n bottom-up and returns the number of
// nodes released.
func release[T, D any](n *node[T, D]) int {
	if n == nil {
		return 0
	}
	freed := 0
	for i := range n.child {
		freed += release(n.child[i])
		n.child[i] = nil
	}
	return freed + 1
}
