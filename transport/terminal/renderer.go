package terminal

import (
	"fmt"
	"io"

	"github.com/stonegrid/gomoku/internal/entity"
	"github.com/stonegrid/gomoku/internal/gomoku"
)

const (
	blackGlyph = "●"
	whiteGlyph = "○"
	emptyGlyph = "+"
)

// Renderer draws a board as text: row numbers down the left edge, column
// letters along the bottom, stones as filled and hollow circles. With
// ClearScreen set it first emits the ANSI home-and-clear sequence so the
// board redraws in place.
type Renderer struct {
	Out         io.Writer
	ClearScreen bool
}

func (that *Renderer) Render(board *entity.Board) {
	if that.ClearScreen {
		fmt.Fprint(that.Out, "\033[H\033[J")
	}

	size := board.Size()
	for y := 0; y < size; y++ {
		fmt.Fprintf(that.Out, "%2d ", size-y)
		for x := 0; x < size; x++ {
			switch board.Get(x, y) {
			case entity.Black:
				fmt.Fprint(that.Out, blackGlyph)
			case entity.White:
				fmt.Fprint(that.Out, whiteGlyph)
			default:
				fmt.Fprint(that.Out, emptyGlyph)
			}
			if x < size-1 {
				fmt.Fprint(that.Out, "-")
			}
		}
		fmt.Fprintln(that.Out)
	}

	fmt.Fprint(that.Out, "   ")
	for x := 0; x < size; x++ {
		if x < size-1 {
			fmt.Fprintf(that.Out, "%c ", 'A'+byte(x))
		} else {
			fmt.Fprintf(that.Out, "%c\n", 'A'+byte(x))
		}
	}
}

// RenderResult prints the closing banner for a game that is no longer in
// play.
func (that *Renderer) RenderResult(game *gomoku.Game) {
	switch game.State() {
	case gomoku.StateForbidden:
		fmt.Fprintln(that.Out, "Game concluded, black made a forbidden move, white won.")
	case gomoku.StateFinished:
		if game.Winner() == entity.Empty {
			fmt.Fprintln(that.Out, "Game concluded, the board is full, draw.")
		} else {
			fmt.Fprintf(that.Out, "Game concluded, %s won.\n", game.Winner())
		}
	case gomoku.StateStopped:
		fmt.Fprintln(that.Out, "The game is stopped.")
	}
}
