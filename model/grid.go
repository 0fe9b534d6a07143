package model

import (
	"time"

	"github.com/mentekid/GameOfLife/rules"
	"github.com/mentekid/GameOfLife/utils"
)

// Cell is a single board position, exactly Dead or Alive.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Grid represents the game board: an N×N torus stored as one flat slice of
// N² cells in row-major order. The board is updated double-buffered, so a
// generation is read in full from a frozen snapshot while the next one is
// written elsewhere.
type Grid struct {
	size  int
	cells []Cell
}

// Transitions tallies how the cells of one generation were classified.
// Every cell lands in exactly one bucket, so Total must equal N².
type Transitions struct {
	Births    int
	Deaths    int
	Unchanged int
}

// Total returns the number of cells accounted for by the tally.
func (t Transitions) Total() int {
	return t.Births + t.Deaths + t.Unchanged
}

// Observer receives the result of each generation: its index, the
// transition tally, and the wall-clock time the step took. Observers report
// only; they must not touch the grid.
type Observer func(generation int, tr Transitions, elapsed time.Duration)

// NewGrid creates an all-Dead grid with the specified side length.
func NewGrid(n int) *Grid {
	if n < 0 {
		n = 0
	}
	return &Grid{
		size:  n,
		cells: make([]Cell, n*n),
	}
}

// Size returns the side length N of the grid.
func (g *Grid) Size() int {
	return g.size
}

// Cells exposes the backing slice, row-major.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// SetCells copies the provided values into the board. A short slice fills
// only a prefix and leaves the tail Dead.
func (g *Grid) SetCells(cells []Cell) {
	copy(g.cells, cells)
}

// Index returns the flat slice index for row i, column j. All neighbor
// arithmetic goes through this one accessor.
func (g *Grid) Index(i, j int) int {
	return i*g.size + j
}

// Get returns the state of the cell at row i, column j.
func (g *Grid) Get(i, j int) Cell {
	return g.cells[g.Index(i, j)]
}

// Set sets the cell at row i, column j.
func (g *Grid) Set(i, j int, c Cell) {
	g.cells[g.Index(i, j)] = c
}

// CountNeighbors sums the eight toroidal neighbors of (i, j). Adding N
// before the modulo converts the potential -1 into N-1, and the modulo
// itself folds N back to 0, so edges wrap to the opposite side with no
// special-case boundary logic.
func (g *Grid) CountNeighbors(i, j int) int {
	var (
		n     = g.size
		up    = (i - 1 + n) % n
		down  = (i + 1) % n
		left  = (j - 1 + n) % n
		right = (j + 1) % n
	)
	return int(g.cells[g.Index(up, left)]) +
		int(g.cells[g.Index(up, j)]) +
		int(g.cells[g.Index(up, right)]) +
		int(g.cells[g.Index(i, left)]) +
		int(g.cells[g.Index(i, right)]) +
		int(g.cells[g.Index(down, left)]) +
		int(g.cells[g.Index(down, j)]) +
		int(g.cells[g.Index(down, right)])
}

// Step plays the game for one generation. Conway's updates are
// simultaneous, so the new states are computed into a scratch buffer drawn
// from the pool and only swapped in once every cell is settled; the buffer
// being read is never written during the step. The retired buffer returns
// to the pool. A nil pool falls back to plain allocation.
func (g *Grid) Step(pool *BufferPool) Transitions {
	var (
		next  []Cell
		tally Transitions
	)
	if pool != nil {
		next = pool.Get(g.size)
	} else {
		next = make([]Cell, g.size*g.size)
	}

	for i := 0; i < g.size; i++ {
		for j := 0; j < g.size; j++ {
			var (
				idx       = g.Index(i, j)
				alive, tr = rules.Next(g.cells[idx] == Alive, g.CountNeighbors(i, j))
			)
			if alive {
				next[idx] = Alive
			} else {
				next[idx] = Dead
			}
			switch tr {
			case rules.Birth:
				tally.Births++
			case rules.Death:
				tally.Deaths++
			default:
				tally.Unchanged++
			}
		}
	}

	prev := g.cells
	g.cells = next
	if pool != nil {
		pool.Put(prev)
	}
	return tally
}

// Run plays the game for t generations in strict order; generation k+1 is
// computed only from the fully-settled generation k. t <= 0 is a no-op.
// The observer, if any, is called after each generation with its timing.
// Each tally is checked against N²; a mismatch indicates a counting bug
// and is returned as a warning rather than aborting the run.
func (g *Grid) Run(t int, pool *BufferPool, obs Observer) []utils.Warning {
	var warnings []utils.Warning
	for gen := 0; gen < t; gen++ {
		start := time.Now()
		tally := g.Step(pool)
		elapsed := time.Since(start)

		if total := tally.Total(); total != g.size*g.size {
			warnings = append(warnings, utils.Warnf("Run",
				"generation %d classified %d cells, expected %d", gen, total, g.size*g.size))
		}
		if obs != nil {
			obs(gen, tally, elapsed)
		}
	}
	return warnings
}

// CountLiving returns the total number of living cells.
func (g *Grid) CountLiving() (count int) {
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	dup := NewGrid(g.size)
	copy(dup.cells, g.cells)
	return dup
}

// Equal reports whether two grids have identical size and cell values.
func (g *Grid) Equal(other *Grid) bool {
	if g.size != other.size {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// AddBlock places a 2×2 block still life with its top-left corner at (i, j).
func (g *Grid) AddBlock(i, j int) {
	g.Set(i, j, Alive)
	g.Set(i, j+1, Alive)
	g.Set(i+1, j, Alive)
	g.Set(i+1, j+1, Alive)
}

// AddBlinker places a horizontal blinker oscillator starting at (i, j).
func (g *Grid) AddBlinker(i, j int) {
	g.Set(i, j, Alive)
	g.Set(i, j+1, Alive)
	g.Set(i, j+2, Alive)
}

// AddGlider places a glider pattern with its top-left corner at (i, j).
func (g *Grid) AddGlider(i, j int) {
	pattern := [][]Cell{
		{Dead, Alive, Dead},
		{Dead, Dead, Alive},
		{Alive, Alive, Alive},
	}
	for di, row := range pattern {
		for dj, cell := range row {
			g.Set(i+di, j+dj, cell)
		}
	}
}
