package regiontree

// accumulator collects contributions of a traversal. The first contribution
// is taken verbatim, later ones are joined to the right.
type accumulator[T any] struct {
	result T
	found  bool
}

func (acc *accumulator[T]) add(join func(a, b T) T, v T) {
	if acc.found {
		acc.result = join(acc.result, v)
		return
	}
	acc.result = v
	acc.found = true
}

// query joins the aggregates of all cells of target within the subtree at n,
// which covers rectangle r, into acc. n may be nil.
func (t *Tree[T, D]) query(n *node[T, D], r, target Rect, acc *accumulator[T]) error {
	if !r.Intersects(target) {
		return nil
	}
	if n == nil {
		overlap := r.Intersect(target)
		acc.add(t.policy.JoinValues, t.policy.JoinRegion(t.cfg.Init, overlap.Area()))
		return nil
	}
	if err := t.resolve(n, r); err != nil {
		return err
	}
	if r.Within(target) {
		acc.add(t.policy.JoinValues, n.value)
		return nil
	}
	for i, q := range r.quadrants() {
		if q.Empty() {
			continue
		}
		if err := t.query(n.child[i], q, target, acc); err != nil {
			return err
		}
	}
	return nil
}
