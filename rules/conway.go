package rules

// Transition classifies what happened to a cell during one generation.
type Transition int

const (
	Unchanged Transition = iota
	Birth
	Death
)

// String returns the transition label used in diagnostics.
func (t Transition) String() string {
	switch t {
	case Birth:
		return "birth"
	case Death:
		return "death"
	default:
		return "unchanged"
	}
}

/*
Next applies Conway's Game of Life rules to determine the next state of a cell.

  - A dead cell with exactly 3 living neighbors becomes alive (birth)
  - A dead cell with any other number of neighbors stays dead (barren)
  - A live cell with 0 or 1 living neighbors dies (loneliness)
  - A live cell with 4 or more living neighbors dies (overpopulation)
  - A live cell with 2 or 3 living neighbors stays alive (survival)

The table is exhaustive over both states and every neighbor sum in [0, 8],
so every cell falls into exactly one of birth, death, or unchanged.
*/
func Next(alive bool, neighbors int) (bool, Transition) {
	switch {
	case !alive && neighbors == 3:
		return true, Birth
	case alive && (neighbors < 2 || neighbors > 3):
		return false, Death
	default:
		return alive, Unchanged
	}
}
