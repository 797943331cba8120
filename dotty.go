package regiontree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T, D any] struct {
	idTable map[*node[T, D]]int
	max     int
}

func newtable[T, D any]() nodeids[T, D] {
	return nodeids[T, D]{
		idTable: make(map[*node[T, D]]int),
		max:     1,
	}
}

func (ids nodeids[T, D]) find(n *node[T, D]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T, D]) alloc(n *node[T, D]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.fresh()
	return ids.idTable[n]
}

// fresh returns an id not used for any other node, e.g. for placeholders.
func (ids *nodeids[T, D]) fresh() int {
	ids.max++
	return ids.max - 1
}

// labelEscaper quotes characters with a meaning inside DOT strings.
var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Tree2Dot outputs the materialized nodes of a tree in Graphviz DOT format
// (for debugging purposes). Pending nodes are highlighted, absent quadrants
// are drawn as small empty circles.
func Tree2Dot[T, D any](t *Tree[T, D], w io.Writer) error {
	if t == nil {
		return ErrInvariantViolated
	}
	var bf []byte
	bf = append(bf, "strict digraph {\n"...)
	bf = append(bf, "\tnode [fontname=Arial,fontsize=12];\n"...)
	ids := newtable[T, D]()
	var nodelist, edgelist []byte
	var walk func(n *node[T, D], r Rect)
	walk = func(n *node[T, D], r Rect) {
		ID := ids.alloc(n)
		label := fmt.Sprintf("%v\\n%s", r, labelEscaper.Replace(fmt.Sprint(n.value)))
		if n.pending {
			label += fmt.Sprintf("\\nΔ %s", labelEscaper.Replace(fmt.Sprint(n.delta)))
		}
		nodelist = fmt.Appendf(nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label,
			nodeDotStyles(r.Area() == 1, n.pending))
		if r.Area() == 1 {
			return
		}
		for i, q := range r.quadrants() {
			if q.Empty() {
				continue
			}
			if n.child[i] == nil {
				nilid := ids.fresh()
				nodelist = fmt.Appendf(nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				edgelist = fmt.Appendf(edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			edgelist = fmt.Appendf(edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(n.child[i]))
			walk(n.child[i], q)
		}
	}
	if t.root != nil {
		walk(t.root, t.bounds)
	}
	bf = append(bf, nodelist...)
	bf = append(bf, edgelist...)
	bf = append(bf, "}\n"...)
	if _, err := w.Write(bf); err != nil {
		tracer().Errorf("region tree DOT: %s", err.Error())
		return err
	}
	return nil
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool, pending bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=ellipse"
	}
	if pending {
		s += ",fillcolor=\"#FFBB88\""
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}
