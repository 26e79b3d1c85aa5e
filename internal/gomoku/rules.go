package gomoku

import "github.com/stonegrid/gomoku/internal/entity"

const (
	// winRun is the run length that wins a game.
	winRun = 5
	// openFourRun is the run length that, flanked by two Empty cells,
	// forms an open four.
	openFourRun = winRun - 1
	// overlineRun is the run length forbidden for Black under Renju.
	overlineRun = winRun + 1
)

// axis is a unit step along one of the four scan directions.
type axis struct {
	dx int
	dy int
}

// The four axes through any intersection: vertical, horizontal,
// diagonal-down (top-left to bottom-right) and diagonal-up.
var axes = [4]axis{
	{dx: 0, dy: 1},
	{dx: 1, dy: 0},
	{dx: 1, dy: 1},
	{dx: 1, dy: -1},
}

// lineStart walks from (x, y) against the axis direction to the first
// on-board cell of the full line through that point.
func lineStart(board *entity.Board, x, y int, ax axis) (int, int) {
	for {
		px, py := x-ax.dx, y-ax.dy
		if px < 0 || py < 0 || px >= board.Size() || py >= board.Size() {
			return x, y
		}
		x, y = px, py
	}
}

// runReaches scans the full line through (x, y) along the given axis,
// counting consecutive cells of the given color and resetting on any
// mismatch. It reports whether any run reaches target cells.
func runReaches(board *entity.Board, stone entity.Stone, x, y int, ax axis, target int) bool {
	cx, cy := lineStart(board, x, y, ax)

	run := 0
	for cx >= 0 && cy >= 0 && cx < board.Size() && cy < board.Size() {
		if board.Get(cx, cy) == stone {
			run++
			if run == target {
				return true
			}
		} else {
			run = 0
		}
		cx += ax.dx
		cy += ax.dy
	}
	return false
}

// LineWin reports whether the just-placed stone at (x, y) sits on any axis
// carrying a run of five or more of its color. Overline suppression for
// Renju is a separate check layered on top by the ruleset.
func LineWin(board *entity.Board, stone entity.Stone, x, y int) bool {
	for _, ax := range axes {
		if runReaches(board, stone, x, y, ax, winRun) {
			return true
		}
	}
	return false
}

// Overline reports whether any axis through (x, y) carries a run of six or
// more of the given color.
func Overline(board *entity.Board, stone entity.Stone, x, y int) bool {
	for _, ax := range axes {
		if runReaches(board, stone, x, y, ax, overlineRun) {
			return true
		}
	}
	return false
}

// OpenFours counts the open fours on the four axes through (x, y): runs of
// exactly four of the given color whose cells immediately beyond both ends
// are Empty. The flank probes may land one cell off the board; the board's
// border sentinel reads those as Empty, which correctly rejects the four as
// closed only when a real stone blocks it.
func OpenFours(board *entity.Board, stone entity.Stone, x, y int) int {
	fours := 0
	for _, ax := range axes {
		cx, cy := lineStart(board, x, y, ax)

		run := 0
		for cx >= 0 && cy >= 0 && cx < board.Size() && cy < board.Size() {
			if board.Get(cx, cy) == stone {
				run++
				if run == openFourRun {
					// (cx, cy) is the fourth cell of the run; probe just past
					// both ends. A fifth same-color cell ahead reads as a
					// stone and closes the four.
					afterX, afterY := cx+ax.dx, cy+ax.dy
					beforeX, beforeY := cx-openFourRun*ax.dx, cy-openFourRun*ax.dy
					if board.Get(afterX, afterY) == entity.Empty &&
						board.Get(beforeX, beforeY) == entity.Empty {
						fours++
					}
				}
			} else {
				run = 0
			}
			cx += ax.dx
			cy += ax.dy
		}
	}
	return fours
}
