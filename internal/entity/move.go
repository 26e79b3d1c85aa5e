package entity

// initialLogCapacity is the move storage allocated up front; the log doubles
// whenever it fills.
const initialLogCapacity = 16

// Move records a single placed stone. Immutable once appended to a log.
type Move struct {
	X     int
	Y     int
	Stone Stone
}

// MoveLog is the append-only chronological record of a game's placements.
// Index i holds Black's move when i is even, White's when odd.
type MoveLog struct {
	moves []Move
}

func NewMoveLog() *MoveLog {
	return &MoveLog{
		moves: make([]Move, 0, initialLogCapacity),
	}
}

// Append adds a move at the end of the log, doubling capacity when full.
func (that *MoveLog) Append(move Move) {
	if len(that.moves) == cap(that.moves) {
		grown := make([]Move, len(that.moves), cap(that.moves)*2)
		copy(grown, that.moves)
		that.moves = grown
	}
	that.moves = append(that.moves, move)
}

func (that *MoveLog) Len() int {
	return len(that.moves)
}

func (that *MoveLog) At(i int) Move {
	return that.moves[i]
}

// All returns a copy of the recorded moves in play order.
func (that *MoveLog) All() []Move {
	out := make([]Move, len(that.moves))
	copy(out, that.moves)
	return out
}
