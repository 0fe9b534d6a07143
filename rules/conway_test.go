package rules

import "testing"

func TestNextCoversEveryNeighborSum(t *testing.T) {
	type outcome struct {
		alive bool
		tr    Transition
	}

	// Expected next state and transition for every (state, sum) pair.
	dead := map[int]outcome{
		0: {false, Unchanged},
		1: {false, Unchanged},
		2: {false, Unchanged},
		3: {true, Birth},
		4: {false, Unchanged},
		5: {false, Unchanged},
		6: {false, Unchanged},
		7: {false, Unchanged},
		8: {false, Unchanged},
	}
	live := map[int]outcome{
		0: {false, Death},
		1: {false, Death},
		2: {true, Unchanged},
		3: {true, Unchanged},
		4: {false, Death},
		5: {false, Death},
		6: {false, Death},
		7: {false, Death},
		8: {false, Death},
	}

	for sum, want := range dead {
		next, tr := Next(false, sum)
		if next != want.alive || tr != want.tr {
			t.Errorf("dead cell with %d neighbors: got (%v, %v), want (%v, %v)",
				sum, next, tr, want.alive, want.tr)
		}
	}
	for sum, want := range live {
		next, tr := Next(true, sum)
		if next != want.alive || tr != want.tr {
			t.Errorf("live cell with %d neighbors: got (%v, %v), want (%v, %v)",
				sum, next, tr, want.alive, want.tr)
		}
	}
}

func TestTransitionString(t *testing.T) {
	cases := map[Transition]string{
		Birth:     "birth",
		Death:     "death",
		Unchanged: "unchanged",
	}
	for tr, want := range cases {
		if got := tr.String(); got != want {
			t.Errorf("Transition(%d).String() = %q, want %q", tr, got, want)
		}
	}
}
