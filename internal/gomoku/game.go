package gomoku

import (
	"fmt"

	"github.com/stonegrid/gomoku/internal/apperror"
	"github.com/stonegrid/gomoku/internal/entity"
)

// GameType selects the rule variant.
type GameType uint8

const (
	Freestyle GameType = iota
	Renju
)

func (that GameType) Valid() bool {
	return that == Freestyle || that == Renju
}

func (that GameType) String() string {
	switch that {
	case Freestyle:
		return "freestyle"
	case Renju:
		return "renju"
	default:
		return "unknown"
	}
}

// State is the lifecycle phase of a game. The numeric values are part of the
// save file format and must not be reordered.
type State uint8

const (
	StatePlaying State = iota
	StateForbidden
	StateStopped
	StateFinished
)

func (that State) String() string {
	switch that {
	case StatePlaying:
		return "playing"
	case StateForbidden:
		return "forbidden"
	case StateStopped:
		return "stopped"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends the game for good. Stopped is not
// terminal: it can be resumed.
func (that State) Terminal() bool {
	return that == StateFinished || that == StateForbidden
}

// Game aggregates a board, a move log and turn bookkeeping, and derives
// state transitions through its ruleset. A game is owned by exactly one
// driver; there is no internal locking.
type Game struct {
	board    *entity.Board
	gameType GameType
	toMove   entity.Stone
	state    State
	winner   entity.Stone
	moves    *entity.MoveLog
	rules    Ruleset
}

// NewGame creates a fresh game: empty board, empty log, Black to move.
func NewGame(boardSize int, gameType GameType) (*Game, error) {
	board, err := entity.NewBoard(boardSize)
	if err != nil {
		return nil, fmt.Errorf("create board: %w", err)
	}

	return &Game{
		board:    board,
		gameType: gameType,
		toMove:   entity.Black,
		state:    StatePlaying,
		winner:   entity.Empty,
		moves:    entity.NewMoveLog(),
		rules:    rulesFor(gameType),
	}, nil
}

func (that *Game) Board() *entity.Board {
	return that.board
}

func (that *Game) Type() GameType {
	return that.gameType
}

func (that *Game) ToMove() entity.Stone {
	return that.toMove
}

func (that *Game) State() State {
	return that.state
}

func (that *Game) Winner() entity.Stone {
	return that.winner
}

func (that *Game) Moves() *entity.MoveLog {
	return that.moves
}

// PlaceStone plays the next stone at (x, y). It returns false without any
// mutation when the cell is occupied; that is the "try again" signal, not an
// error. An accepted placement returns true even when it ends the game.
func (that *Game) PlaceStone(x, y int) bool {
	if that.board.Get(x, y) != entity.Empty {
		return false
	}

	move := entity.Move{X: x, Y: y, Stone: that.toMove}
	that.moves.Append(move)
	_ = that.board.Set(x, y, move.Stone)

	verdict := that.rules.Judge(that.board, move.Stone, x, y)
	if verdict.State == StatePlaying {
		that.toMove = that.toMove.Other()
		return true
	}

	that.state = verdict.State
	that.winner = verdict.Winner

	return true
}

// Stop abandons play before a conclusion. The driver calls this when
// interactive input runs out; a stopped game can be resumed later.
func (that *Game) Stop() {
	that.state = StateStopped
}

// Resume returns a stopped game to play.
func (that *Game) Resume() error {
	if that.state != StateStopped || !that.gameType.Valid() {
		return fmt.Errorf("%w: state %s, type %s", apperror.ErrCannotResume, that.state, that.gameType)
	}

	that.state = StatePlaying

	return nil
}

// SetOutcome overrides state and winner. It exists for reconstruction from a
// save file, where the stored outcome is applied before the move log is
// replayed; regular play must go through PlaceStone.
func (that *Game) SetOutcome(state State, winner entity.Stone) {
	that.state = state
	that.winner = winner
}

// Replay reconstructs the saved game by playing its move log against a fresh
// board. The result is a pure function of the recorded moves plus the saved
// outcome, so a finished game replays to the same state and winner.
func Replay(saved *Game) (*Game, error) {
	if saved == nil {
		return nil, fmt.Errorf("%w: saved game", apperror.ErrNilReference)
	}

	replayed, err := NewGame(saved.board.Size(), saved.gameType)
	if err != nil {
		return nil, err
	}
	replayed.SetOutcome(saved.state, saved.winner)

	for _, move := range saved.moves.All() {
		replayed.PlaceStone(move.X, move.Y)
	}

	return replayed, nil
}
