// Package savefile implements the text save format for gomoku and renju
// matches. A file is newline-separated: the literal magic "GA", the board
// size, the game type, the game state, the winner, then one formal
// coordinate per move in play order. Decoding validates every field and
// refuses the whole file on the first violation.
package savefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/stonegrid/gomoku/internal/apperror"
	"github.com/stonegrid/gomoku/internal/entity"
	"github.com/stonegrid/gomoku/internal/gomoku"
)

const magic = "GA"

// Encode writes the game to w in the save file format. Coordinates are
// re-derived from the move log, one per line. Only concluded or stopped
// games are representable: the format has no encoding for a game still in
// play.
func Encode(w io.Writer, game *gomoku.Game) error {
	if game == nil {
		return fmt.Errorf("%w: game", apperror.ErrNilReference)
	}
	if game.State() == gomoku.StatePlaying {
		return fmt.Errorf("%w: cannot save a game still in play", apperror.ErrInvalidFileFormat)
	}

	out := bufio.NewWriter(w)

	fmt.Fprintf(out, "%s\n", magic)
	fmt.Fprintf(out, "%d\n", game.Board().Size())
	fmt.Fprintf(out, "%d\n", game.Type())
	fmt.Fprintf(out, "%d\n", game.State())
	fmt.Fprintf(out, "%d\n", game.Winner())

	for _, move := range game.Moves().All() {
		coord, err := game.Board().FormalCoord(move.X, move.Y)
		if err != nil {
			return fmt.Errorf("encode move: %w", err)
		}
		fmt.Fprintf(out, "%s\n", coord)
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("write save file: %w", err)
	}

	return nil
}

// Decode reads a save file and reconstructs the game: the stored outcome is
// applied first, then every stored coordinate is replayed through
// PlaceStone, which rebuilds the board, the move log and the derived turn.
func Decode(r io.Reader) (*gomoku.Game, error) {
	lines := bufio.NewScanner(r)

	header, err := readLine(lines)
	if err != nil {
		return nil, err
	}
	if header != magic {
		return nil, fmt.Errorf("%w: bad magic %q", apperror.ErrInvalidFileFormat, header)
	}

	size, err := readNumber(lines, "size")
	if err != nil {
		return nil, err
	}
	if size != entity.BoardSize15 && size != entity.BoardSize17 && size != entity.BoardSize19 {
		return nil, fmt.Errorf("%w: size %d", apperror.ErrInvalidFileFormat, size)
	}

	rawType, err := readNumber(lines, "type")
	if err != nil {
		return nil, err
	}
	gameType := gomoku.GameType(rawType)
	if !gameType.Valid() {
		return nil, fmt.Errorf("%w: type %d", apperror.ErrInvalidFileFormat, rawType)
	}

	rawState, err := readNumber(lines, "state")
	if err != nil {
		return nil, err
	}
	state := gomoku.State(rawState)
	if state != gomoku.StateForbidden && state != gomoku.StateStopped && state != gomoku.StateFinished {
		return nil, fmt.Errorf("%w: state %d", apperror.ErrInvalidFileFormat, rawState)
	}

	rawWinner, err := readNumber(lines, "winner")
	if err != nil {
		return nil, err
	}
	winner := entity.Stone(rawWinner)
	if winner != entity.Empty && winner != entity.Black && winner != entity.White {
		return nil, fmt.Errorf("%w: winner %d", apperror.ErrInvalidFileFormat, rawWinner)
	}

	game, err := gomoku.NewGame(size, gameType)
	if err != nil {
		return nil, fmt.Errorf("reconstruct game: %w", err)
	}
	game.SetOutcome(state, winner)

	for lines.Scan() {
		coord := lines.Text()
		if coord == "" {
			continue
		}

		x, y, err := game.Board().ParseCoord(coord)
		if err != nil {
			return nil, fmt.Errorf("%w: coordinate %q", apperror.ErrInvalidFileFormat, coord)
		}
		if !game.PlaceStone(x, y) {
			return nil, fmt.Errorf("%w: duplicate coordinate %q", apperror.ErrInvalidFileFormat, coord)
		}
	}
	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("read save file: %w", err)
	}

	return game, nil
}

func readLine(lines *bufio.Scanner) (string, error) {
	if !lines.Scan() {
		if err := lines.Err(); err != nil {
			return "", fmt.Errorf("read save file: %w", err)
		}
		return "", fmt.Errorf("%w: unexpected end of file", apperror.ErrInvalidFileFormat)
	}
	return lines.Text(), nil
}

func readNumber(lines *bufio.Scanner, field string) (int, error) {
	line, err := readLine(lines)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", apperror.ErrInvalidFileFormat, field, line)
	}

	return value, nil
}
