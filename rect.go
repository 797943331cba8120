package regiontree

import "fmt"

// Rect is a closed rectangle of grid cells [R1,R2]×[C1,C2].
// A Rect with R1 > R2 or C1 > C2 is empty.
type Rect struct {
	R1, C1 int
	R2, C2 int
}

// Cell returns the degenerate rectangle holding the single cell (r, c).
func Cell(r, c int) Rect {
	return Rect{R1: r, C1: c, R2: r, C2: c}
}

// Empty reports whether r contains no cells.
func (r Rect) Empty() bool {
	return r.R1 > r.R2 || r.C1 > r.C2
}

// Area returns the number of cells in r.
func (r Rect) Area() int64 {
	if r.Empty() {
		return 0
	}
	return int64(r.R2-r.R1+1) * int64(r.C2-r.C1+1)
}

// Intersects reports whether r and other share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return other.R2 >= r.R1 && other.R1 <= r.R2 && other.C2 >= r.C1 && other.C1 <= r.C2
}

// Within reports whether every cell of r is contained in other.
func (r Rect) Within(other Rect) bool {
	return other.R1 <= r.R1 && r.R2 <= other.R2 && other.C1 <= r.C1 && r.C2 <= other.C2
}

// Intersect returns the cells common to r and other, which may be empty.
func (r Rect) Intersect(other Rect) Rect {
	return Rect{
		R1: max(r.R1, other.R1),
		C1: max(r.C1, other.C1),
		R2: min(r.R2, other.R2),
		C2: min(r.C2, other.C2),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d…%d]×[%d…%d]", r.R1, r.R2, r.C1, r.C2)
}

// Quadrant indices. Aggregates are always combined in this order.
const (
	nw = iota
	ne
	sw
	se
)

// quadrants splits r at its row and column midpoints. Update, query and
// push-down all rely on this being the only split rule, so that a node
// materialized by one operation covers the same rectangle when revisited by
// another one. For rectangles one cell high or wide some quadrants are empty.
func (r Rect) quadrants() [4]Rect {
	rmid, cmid := r.R1+(r.R2-r.R1)/2, r.C1+(r.C2-r.C1)/2
	return [4]Rect{
		nw: {R1: r.R1, C1: r.C1, R2: rmid, C2: cmid},
		ne: {R1: rmid + 1, C1: r.C1, R2: r.R2, C2: cmid},
		sw: {R1: r.R1, C1: cmid + 1, R2: rmid, C2: r.C2},
		se: {R1: rmid + 1, C1: cmid + 1, R2: r.R2, C2: r.C2},
	}
}
