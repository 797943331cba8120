/*
Package policy provides stock policies for region trees.

Policies of the "assign" family overwrite cells with the delta (the most
recent delta wins), policies of the "accumulate" family add the delta to
every cell. The second part of a name tells how cell values are aggregated.

	Policy         JoinValues   JoinValueWithDelta(v, d, area)   JoinDeltas(d1, d2)
	-----------------------------------------------------------------------------
	AssignMin      min          d                                d2
	AssignMax      max          d                                d2
	AssignSum      a + b        d·area                           d2
	AssignWith     pick         d                                d2
	AccumulateSum  a + b        v + d·area                       d1 + d2
	AccumulateMin  min          v + d                            d1 + d2
	AccumulateMax  max          v + d                            d1 + d2

Every type in this package satisfies regiontree.Policy[T, T].

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package policy

import (
	"golang.org/x/exp/constraints"
)

// Number is the set of value types supporting sums.
type Number interface {
	constraints.Integer | constraints.Float
}

// AssignMin sets cells to a value and aggregates with min.
type AssignMin[T constraints.Ordered] struct{}

func (AssignMin[T]) JoinValues(a, b T) T                    { return min(a, b) }
func (AssignMin[T]) JoinRegion(v T, _ int64) T              { return v }
func (AssignMin[T]) JoinValueWithDelta(_ T, d T, _ int64) T { return d }
func (AssignMin[T]) JoinDeltas(_, d2 T) T                   { return d2 }

// AssignMax sets cells to a value and aggregates with max.
type AssignMax[T constraints.Ordered] struct{}

func (AssignMax[T]) JoinValues(a, b T) T                    { return max(a, b) }
func (AssignMax[T]) JoinRegion(v T, _ int64) T              { return v }
func (AssignMax[T]) JoinValueWithDelta(_ T, d T, _ int64) T { return d }
func (AssignMax[T]) JoinDeltas(_, d2 T) T                   { return d2 }

// AssignSum sets cells to a value and aggregates with +.
type AssignSum[T Number] struct{}

func (AssignSum[T]) JoinValues(a, b T) T                       { return a + b }
func (AssignSum[T]) JoinRegion(v T, area int64) T              { return v * T(area) }
func (AssignSum[T]) JoinValueWithDelta(_ T, d T, area int64) T { return d * T(area) }
func (AssignSum[T]) JoinDeltas(_, d2 T) T                      { return d2 }

// AssignWith sets cells to a value and aggregates with an
// application-specific pick. Pick has to be associative and idempotent
// (pick(v, v) == v), as a region of equal cells aggregates to the cell
// value.
type AssignWith[T any] struct {
	Pick func(a, b T) T
}

func (p AssignWith[T]) JoinValues(a, b T) T                  { return p.Pick(a, b) }
func (AssignWith[T]) JoinRegion(v T, _ int64) T              { return v }
func (AssignWith[T]) JoinValueWithDelta(_ T, d T, _ int64) T { return d }
func (AssignWith[T]) JoinDeltas(_, d2 T) T                   { return d2 }

// AccumulateSum adds a delta to cells and aggregates with +.
type AccumulateSum[T Number] struct{}

func (AccumulateSum[T]) JoinValues(a, b T) T          { return a + b }
func (AccumulateSum[T]) JoinRegion(v T, area int64) T { return v * T(area) }
func (AccumulateSum[T]) JoinValueWithDelta(v T, d T, area int64) T {
	return v + d*T(area)
}
func (AccumulateSum[T]) JoinDeltas(d1, d2 T) T { return d1 + d2 }

// AccumulateMin adds a delta to cells and aggregates with min.
type AccumulateMin[T Number] struct{}

func (AccumulateMin[T]) JoinValues(a, b T) T                    { return min(a, b) }
func (AccumulateMin[T]) JoinRegion(v T, _ int64) T              { return v }
func (AccumulateMin[T]) JoinValueWithDelta(v T, d T, _ int64) T { return v + d }
func (AccumulateMin[T]) JoinDeltas(d1, d2 T) T                  { return d1 + d2 }

// AccumulateMax adds a delta to cells and aggregates with max.
type AccumulateMax[T Number] struct{}

func (AccumulateMax[T]) JoinValues(a, b T) T                    { return max(a, b) }
func (AccumulateMax[T]) JoinRegion(v T, _ int64) T              { return v }
func (AccumulateMax[T]) JoinValueWithDelta(v T, d T, _ int64) T { return v + d }
func (AccumulateMax[T]) JoinDeltas(d1, d2 T) T                  { return d1 + d2 }
