package regiontree

import "sync"

// Locked serializes access to a tree with a single mutex.
//
// The whole tree is locked for every operation: updates re-aggregate the
// complete chain of ancestors of every touched node, and queries push pending
// deltas down, so no two operations may overlap.
type Locked[T, D any] struct {
	mu   sync.Mutex
	tree *Tree[T, D]
}

// NewLocked wraps tree. Clients must not use tree directly afterwards.
func NewLocked[T, D any](tree *Tree[T, D]) *Locked[T, D] {
	assert(tree != nil, "NewLocked called with nil tree")
	return &Locked[T, D]{tree: tree}
}

// Update is the serialized version of Tree.Update.
func (l *Locked[T, D]) Update(r1, c1, r2, c2 int, d D) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.Update(r1, c1, r2, c2, d)
}

// UpdateAt is the serialized version of Tree.UpdateAt.
func (l *Locked[T, D]) UpdateAt(r, c int, d D) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.UpdateAt(r, c, d)
}

// Query is the serialized version of Tree.Query.
func (l *Locked[T, D]) Query(r1, c1, r2, c2 int) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.Query(r1, c1, r2, c2)
}

// At is the serialized version of Tree.At.
func (l *Locked[T, D]) At(r, c int) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.At(r, c)
}

// Destroy is the serialized version of Tree.Destroy.
func (l *Locked[T, D]) Destroy() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.Destroy()
}

// Stats returns a snapshot of the tree's counters. It is safe to call
// concurrently with other operations, e.g. from a metrics collector.
func (l *Locked[T, D]) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.Stats()
}

// Do runs f with exclusive access to the tree, for sequences of operations
// which have to appear atomic to other clients.
func (l *Locked[T, D]) Do(f func(tree *Tree[T, D]) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return f(l.tree)
}
