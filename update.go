package regiontree

// update applies delta d to every cell of target within the subtree at slot,
// which covers rectangle r. Absent nodes are materialized on the way.
func (t *Tree[T, D]) update(slot **node[T, D], r, target Rect, d D) error {
	if *slot == nil {
		n, err := t.newNode(r)
		if err != nil {
			return err
		}
		*slot = n
	}
	n := *slot
	if err := t.resolve(n, r); err != nil {
		return err
	}
	if !r.Intersects(target) {
		return nil
	}
	if r.Within(target) {
		// Resolving right away makes n's aggregate reflect d, while the
		// children receive d only when they are visited next.
		n.postpone(t.policy, d)
		return t.resolve(n, r)
	}
	quads := r.quadrants()
	var err error
	for i, q := range quads {
		if q.Empty() {
			continue
		}
		if err = t.update(&n.child[i], q, target, d); err != nil {
			break
		}
	}
	// Re-aggregate even after a failed recursion: children already touched
	// have changed and n has to stay consistent with them.
	n.value = t.joinQuadrants(n, quads)
	return err
}

// joinQuadrants combines the aggregates of n's children in quadrant order.
// Absent children contribute the initial value over their area; empty
// quadrants contribute nothing.
func (t *Tree[T, D]) joinQuadrants(n *node[T, D], quads [4]Rect) T {
	var acc accumulator[T]
	for i, q := range quads {
		if q.Empty() {
			continue
		}
		if c := n.child[i]; c != nil {
			acc.add(t.policy.JoinValues, c.aggregate(t.policy, q.Area()))
		} else {
			acc.add(t.policy.JoinValues, t.policy.JoinRegion(t.cfg.Init, q.Area()))
		}
	}
	assert(acc.found, "partial overlap with a rectangle without quadrants")
	return acc.result
}
