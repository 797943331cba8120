/*
Package script runs line-oriented command scripts against int64 region trees.

A script holds one command per line:

	update r1 c1 r2 c2 delta     apply delta to a rectangle
	set r c delta                apply delta to a single cell
	query r1 c1 r2 c2            print the aggregate of a rectangle
	at r c                       print the value of a cell
	grid r1 c1 r2 c2             print the cells of a rectangle row by row
	stats                        print node and operation counters

Everything following a '#' is a comment. Blank lines are ignored.

Trees for scripts are configured by Settings, usually read from a YAML file:

	policy: accumulate-min
	init: 100
	max_row: 999
	max_col: 999
	max_nodes: 100000

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package script

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'regiontree'
func tracer() tracing.Trace {
	return tracing.Select("regiontree")
}
