package sortedmap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/sortedmap/avl"
	"golang.org/x/term"
)

// palette maps tree node classes to display colors.
type palette struct {
	branch func(a ...interface{}) string
	leaf   func(a ...interface{}) string
}

func makeDefaultPalette() palette {
	return palette{
		branch: color.New(color.FgBlue).SprintFunc(),
		leaf:   color.New(color.FgGreen).SprintFunc(),
	}
}

func plainPalette() palette {
	plain := func(a ...interface{}) string {
		return fmt.Sprint(a...)
	}
	return palette{branch: plain, leaf: plain}
}

// Dump prints the structure of the backing tree to w, one node per
// line, the right subtree above its parent and the left below, each
// level indented one step further. Output is colored if w is an
// interactive terminal.
//
// Dump is a debugging aid; clients should not rely on the exact output
// format.
func (m Map[K, V]) Dump(w io.Writer) {
	pal := plainPalette()
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		pal = makeDefaultPalette()
	}
	if m.root == nil {
		fmt.Fprintln(w, "·")
		return
	}
	dumpNode(w, m.root, 0, pal)
}

func dumpNode[K, V any](w io.Writer, n *avl.Node[K, V], depth int, pal palette) {
	if n == nil {
		return
	}
	dumpNode(w, n.Right(), depth+1, pal)
	indent := strings.Repeat("    ", depth)
	if n.IsLeaf() {
		fmt.Fprintf(w, "%s%s\n", indent, pal.leaf(fmt.Sprintf("%v: %v", n.Key(), n.Value())))
	} else {
		fmt.Fprintf(w, "%s%s\n", indent, pal.branch(fmt.Sprintf("(%v: %v) h=%d", n.Key(), n.Value(), n.Height())))
	}
	dumpNode(w, n.Left(), depth+1, pal)
}
