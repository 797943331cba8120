/*
Package regiontree maintains a sparse two-dimensional grid supporting
rectangle updates and rectangle aggregate queries over coordinate spaces far
too large to materialize (by default 10^9+1 rows × 10^9+1 columns).

Region Trees

A region tree is a quadtree over the cell grid. Every node implicitly
represents a rectangle, determined solely by the path from the root: a
rectangle [r1,r2]×[c1,c2] is split at

	rmid = (r1+r2)/2,  cmid = (c1+c2)/2

into four quadrants, always visited in the same order:

	NW = [r1,rmid]×[c1,cmid]      NE = [rmid+1,r2]×[c1,cmid]
	SW = [r1,rmid]×[cmid+1,c2]    SE = [rmid+1,r2]×[cmid+1,c2]

Nodes are created only when an operation first reaches their rectangle. An
absent node stands for a rectangle in which every cell still holds the tree's
initial value. Updates covering a whole node are recorded as a pending delta
on that node and pushed down to the children only when the children are next
visited (lazy propagation).

Policies

What a value is, how values combine and how an update changes them is
supplied by a Policy:

	JoinValues(a, b)            associative combination of aggregates
	JoinRegion(v, area)         aggregate of area cells all holding v
	JoinValueWithDelta(v, d, a) aggregate after applying d to a cells
	JoinDeltas(d1, d2)          "apply d1, then d2" as a single delta

Aggregates are always combined in the fixed quadrant order NW, NE, SW, SE.
JoinValues therefore has to be associative, but need not be commutative.
Package regiontree/policy offers the usual stock policies ("assign" and
"accumulate" families).

Usage

	tree, err := regiontree.New(regiontree.Config[int64, int64]{
		Policy: policy.AccumulateSum[int64]{},
	})
	...
	err = tree.Update(0, 0, 999, 999, 5)  // add 5 to a 1000×1000 block
	sum, err := tree.Query(0, 0, 9, 9)     // sum = 500

A Tree is not safe for concurrent use, not even for concurrent queries, as
queries materialize nodes while pushing down pending deltas. Wrap it in a
Locked for shared access.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package regiontree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'regiontree'
func tracer() tracing.Trace {
	return tracing.Select("regiontree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
