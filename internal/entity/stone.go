package entity

// Stone is the occupation state of a single board intersection. The zero
// value Empty doubles as "no winner" in game results and save files.
type Stone uint8

const (
	Empty Stone = iota
	Black
	White
)

// Other returns the opposing color. Empty maps to itself.
func (that Stone) Other() Stone {
	switch that {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (that Stone) IsColor() bool {
	return that == Black || that == White
}

func (that Stone) String() string {
	switch that {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}
