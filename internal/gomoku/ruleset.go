package gomoku

import "github.com/stonegrid/gomoku/internal/entity"

// allowedOpenFours is how many simultaneous open fours a single Black
// placement may create under Renju before it is forbidden.
const allowedOpenFours = 1

// Verdict is a ruleset's judgement of one placement. StatePlaying means the
// game continues and Winner is Empty.
type Verdict struct {
	State  State
	Winner entity.Stone
}

// Ruleset judges a single just-made placement against a board. All
// implementations are pure: they only read board contents.
type Ruleset interface {
	Judge(board *entity.Board, stone entity.Stone, x, y int) Verdict
}

// freestyleRules wins on any run of five or more; a full board with no win
// is a draw.
type freestyleRules struct{}

func (freestyleRules) Judge(board *entity.Board, stone entity.Stone, x, y int) Verdict {
	if LineWin(board, stone, x, y) {
		return Verdict{State: StateFinished, Winner: stone}
	}

	if board.IsFull() {
		return Verdict{State: StateFinished, Winner: entity.Empty}
	}

	return Verdict{State: StatePlaying}
}

// renjuRules adds Black's forbidden moves on top of the freestyle rules.
// White placements are judged exactly as in freestyle. For Black, the
// precedence is: line win first, then the overline check which downgrades an
// apparent win into a loss, then the double-four check.
type renjuRules struct{}

func (renjuRules) Judge(board *entity.Board, stone entity.Stone, x, y int) Verdict {
	if stone != entity.Black {
		return freestyleRules{}.Judge(board, stone, x, y)
	}

	if LineWin(board, stone, x, y) {
		if Overline(board, stone, x, y) {
			return Verdict{State: StateForbidden, Winner: entity.White}
		}
		return Verdict{State: StateFinished, Winner: entity.Black}
	}

	if OpenFours(board, stone, x, y) > allowedOpenFours {
		return Verdict{State: StateForbidden, Winner: entity.White}
	}

	return Verdict{State: StatePlaying}
}

// rulesFor selects the ruleset strategy for a game type.
func rulesFor(gameType GameType) Ruleset {
	if gameType == Renju {
		return renjuRules{}
	}
	return freestyleRules{}
}
