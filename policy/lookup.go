package policy

import "sort"

// Int64 is the method set of a region tree policy over int64 values and
// deltas. Values of this type are assignable to regiontree.Policy[int64, int64].
type Int64 interface {
	JoinValues(a, b int64) int64
	JoinRegion(v int64, area int64) int64
	JoinValueWithDelta(v int64, d int64, area int64) int64
	JoinDeltas(d1, d2 int64) int64
}

var stock = map[string]Int64{
	"assign-min":     AssignMin[int64]{},
	"assign-max":     AssignMax[int64]{},
	"assign-sum":     AssignSum[int64]{},
	"accumulate":     AccumulateSum[int64]{},
	"accumulate-min": AccumulateMin[int64]{},
	"accumulate-max": AccumulateMax[int64]{},
}

// Lookup returns the stock int64 policy of the given name.
func Lookup(name string) (Int64, bool) {
	p, ok := stock[name]
	return p, ok
}

// Names returns the names of all stock policies, sorted.
func Names() []string {
	names := make([]string, 0, len(stock))
	for name := range stock {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
