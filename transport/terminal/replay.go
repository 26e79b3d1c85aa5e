package terminal

import (
	"fmt"
	"time"

	"github.com/stonegrid/gomoku/internal/gomoku"
)

// Replayer presents a saved game move by move: after each placement it
// redraws the board, lists the moves made so far in formal coordinates and
// pauses before the next one.
type Replayer struct {
	Renderer *Renderer
	Pause    time.Duration
}

func (that *Replayer) Replay(saved *gomoku.Game) error {
	live, err := gomoku.NewGame(saved.Board().Size(), saved.Type())
	if err != nil {
		return fmt.Errorf("replay setup: %w", err)
	}
	live.SetOutcome(saved.State(), saved.Winner())

	moves := saved.Moves().All()
	for i, move := range moves {
		live.PlaceStone(move.X, move.Y)
		that.renderStep(live, i)

		if i == len(moves)-1 {
			that.Renderer.RenderResult(live)
		}

		time.Sleep(that.Pause)
	}

	return nil
}

func (that *Replayer) renderStep(live *gomoku.Game, step int) {
	out := that.Renderer.Out

	that.Renderer.Render(live.Board())

	fmt.Fprintln(out, "Moves:")
	for j := 0; j <= step; j++ {
		move := live.Moves().At(j)
		coord, _ := live.Board().FormalCoord(move.X, move.Y)

		if j%2 == 0 {
			fmt.Fprintf(out, "Black: %3s", coord)
		} else {
			fmt.Fprintf(out, "  White: %3s", coord)
		}

		if j%2 != 0 || j == step {
			fmt.Fprintln(out)
		}
	}
}
