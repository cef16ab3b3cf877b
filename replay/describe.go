package replay

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/primstep/prim_kruskal"
)

// Describe renders a step as a three-line caption:
//
//	Step 3/8: chosen edge 1 -> 2 (weight 3)
//	Frontier: [(3, 2, 1) (5, 4, 1) (6, 3, 0) (8, 3, 1)]
//	Tree: [0 - 1 (weight 2) 1 - 2 (weight 3)]
//
// index is zero-based, total is the number of steps.
func Describe(st prim_kruskal.Step, index, total int) string {
	var b strings.Builder

	c := st.Extracted
	fmt.Fprintf(&b, "Step %d/%d: ", index+1, total)
	switch {
	case c.IsStart():
		fmt.Fprintf(&b, "start at vertex %d", c.Target)
	case st.Stale:
		fmt.Fprintf(&b, "skip edge %d -> %d (weight %g), vertex %d already in tree", c.Source, c.Target, c.Weight, c.Target)
	default:
		fmt.Fprintf(&b, "chosen edge %d -> %d (weight %g)", c.Source, c.Target, c.Weight)
	}
	fmt.Fprintf(&b, "\nFrontier: %v", st.Frontier)
	fmt.Fprintf(&b, "\nTree: %v", st.Tree)

	return b.String()
}
