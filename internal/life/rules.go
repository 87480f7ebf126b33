package life

import "torus-life/internal/core"

/*
NextAlive applies Conway's rule to a boolean cell.

A live cell survives with 2 or 3 live neighbors; a dead cell is born with
exactly 3.
*/
func NextAlive(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// NextAge applies the aged rule: birth at age 1, survivors age by one
// (saturating at core.MaxAge), everything else resets to 0.
func NextAge(age uint8, neighbors int) uint8 {
	switch {
	case age == 0 && neighbors == 3:
		return 1
	case age > 0 && (neighbors == 2 || neighbors == 3):
		if age == core.MaxAge {
			return age
		}
		return age + 1
	}
	return 0
}

func (k CellKind) next(state uint8, neighbors int) uint8 {
	if k == CellAged {
		return NextAge(state, neighbors)
	}
	if NextAlive(state != 0, neighbors) {
		return 1
	}
	return 0
}
