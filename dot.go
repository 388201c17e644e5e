package sortedmap

import (
	"fmt"
	"io"

	"github.com/npillmayer/sortedmap/avl"
)

type nodeids[K, V any] struct {
	idTable map[*avl.Node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*avl.Node[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(node *avl.Node[K, V]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K, V]) alloc(node *avl.Node[K, V]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Map2Dot outputs the internal structure of a Map in Graphviz DOT format
// (for debugging purposes).
func Map2Dot[K, V any](m Map[K, V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K, V]()
	nodelist, edgelist := "", ""
	var walk func(node *avl.Node[K, V])
	walk = func(node *avl.Node[K, V]) {
		if node == nil {
			return
		}
		ID := ids.alloc(node)
		styles := nodeDotStyles(node.IsLeaf())
		if node.IsLeaf() {
			label := fmt.Sprintf("%v\\n“%v”", node.Key(), node.Value())
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
			return
		}
		label := fmt.Sprintf("%v h=%d", node.Key(), node.Height())
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
		if node.Left() == nil {
			nilid := ID + 10000
			nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
		} else {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(node.Left()))
			walk(node.Left())
		}
		if node.Right() == nil {
			nilid := ID + 20000
			nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
		} else {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(node.Right()))
			walk(node.Right())
		}
	}
	walk(m.root)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
