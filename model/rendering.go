package model

import (
	"fmt"
	"io"
)

// TerminalRenderer prints board snapshots to the console.
type TerminalRenderer struct {
	Out io.Writer
}

// PreviewCorner writes the top-left k×k corner of the board as raw cell
// values, one row per line. The preview is capped at the grid size.
func (r *TerminalRenderer) PreviewCorner(g *Grid, k int) {
	if k > g.Size() {
		k = g.Size()
	}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			fmt.Fprintf(r.Out, "%d ", g.Get(i, j))
		}
		fmt.Fprintln(r.Out)
	}
}
