package terminal

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/stonegrid/gomoku/internal/entity"
	"github.com/stonegrid/gomoku/internal/gomoku"
	"github.com/stonegrid/gomoku/internal/usecase"
)

// Loop runs a game interactively: render the board, prompt the player to
// move, re-prompt on a malformed coordinate or an occupied cell, stop the
// game when input runs out. All rule decisions stay inside the engine; the
// loop only shuttles text.
type Loop struct {
	logger   *slog.Logger
	manager  *usecase.MatchManager
	renderer *Renderer
	in       *bufio.Scanner
	out      io.Writer
}

func NewLoop(logger *slog.Logger, manager *usecase.MatchManager, renderer *Renderer, in io.Reader) *Loop {
	return &Loop{
		logger:   logger.With("component", "terminal"),
		manager:  manager,
		renderer: renderer,
		in:       bufio.NewScanner(in),
		out:      renderer.Out,
	}
}

// Run plays the game until it leaves the Playing state, then prints the
// result banner over the final board.
func (that *Loop) Run(game *gomoku.Game) error {
	for game.State() == gomoku.StatePlaying {
		that.renderer.Render(game.Board())

		if err := that.playTurn(game); err != nil {
			return err
		}
	}

	that.renderer.Render(game.Board())
	that.renderer.RenderResult(game)

	return nil
}

// playTurn prompts until one stone is placed or input is exhausted.
func (that *Loop) playTurn(game *gomoku.Game) error {
	for {
		if game.ToMove() == entity.Black {
			fmt.Fprint(that.out, "Black stone's turn, please enter a move: ")
		} else {
			fmt.Fprint(that.out, "White stone's turn, please enter a move: ")
		}

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return fmt.Errorf("read move: %w", err)
			}

			// End of input abandons the match.
			game.Stop()
			that.logger.Info("input exhausted, game stopped")

			return nil
		}

		placed, err := that.manager.PlaceFormal(game, that.in.Text())
		if err != nil {
			fmt.Fprintln(that.out, "The coordinate you entered is invalid, please try again.")
			continue
		}
		if !placed {
			fmt.Fprintln(that.out, "There is already a stone at the coordinate you entered, please try again.")
			continue
		}

		return nil
	}
}
