package entity

import (
	"fmt"
	"strings"

	"github.com/stonegrid/gomoku/internal/apperror"
)

const (
	BoardSize15 = 15
	BoardSize17 = 17
	BoardSize19 = 19
)

// maxFormalLength is the longest formal coordinate accepted, e.g. "A15".
// Two row digits cover every valid size up to 19.
const maxFormalLength = 3

// Board is a square grid of intersections. The backing storage carries a
// one-cell Empty border around the playable area, so Get tolerates reads one
// cell beyond any edge and reports them as Empty. The rule scans depend on
// that: they probe the cell just past a run's end without bounds checks.
type Board struct {
	size int
	grid []Stone
}

// NewBoard creates an all-Empty board of one of the supported sizes.
func NewBoard(size int) (*Board, error) {
	if size != BoardSize15 && size != BoardSize17 && size != BoardSize19 {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidBoardSize, size)
	}

	span := size + 2
	return &Board{
		size: size,
		grid: make([]Stone, span*span),
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

// Get returns the stone at (x, y). Coordinates from -1 to size inclusive are
// well-defined; the border reports Empty. Anything further out is the
// caller's bug.
func (that *Board) Get(x, y int) Stone {
	return that.grid[(y+1)*(that.size+2)+(x+1)]
}

// Set places a stone at (x, y). Coordinates are not bounds-checked; callers
// validate them first, the same as Get.
func (that *Board) Set(x, y int, stone Stone) error {
	if !stone.IsColor() {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidStone, stone)
	}

	that.grid[(y+1)*(that.size+2)+(x+1)] = stone

	return nil
}

// IsFull reports whether no playable intersection remains Empty.
func (that *Board) IsFull() bool {
	for y := 0; y < that.size; y++ {
		for x := 0; x < that.size; x++ {
			if that.Get(x, y) == Empty {
				return false
			}
		}
	}
	return true
}

// FormalCoord converts grid coordinates to the "letter+number" text form.
// Columns map to letters from 'A'; rows are numbered bottom-up, so y=0 (the
// top row in storage) becomes the highest row number.
func (that *Board) FormalCoord(x, y int) (string, error) {
	if x < 0 || y < 0 || x >= that.size || y >= that.size {
		return "", fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCoordinate, x, y)
	}

	return fmt.Sprintf("%c%d", 'A'+byte(x), that.size-y), nil
}

// ParseCoord converts a formal coordinate back to grid coordinates. The
// first character must be a column letter for this board, the rest a row
// number from 1 to size, at most three characters total.
func (that *Board) ParseCoord(text string) (int, int, error) {
	if len(text) < 2 || len(text) > maxFormalLength {
		return 0, 0, fmt.Errorf("%w: %q", apperror.ErrFormalCoordinate, text)
	}

	column := text[0]
	if column < 'A' || column >= 'A'+byte(that.size) {
		return 0, 0, fmt.Errorf("%w: %q", apperror.ErrFormalCoordinate, text)
	}

	row := 0
	for _, digit := range []byte(text[1:]) {
		if digit < '0' || digit > '9' {
			return 0, 0, fmt.Errorf("%w: %q", apperror.ErrFormalCoordinate, text)
		}
		row = row*10 + int(digit-'0')
	}

	if row < 1 || row > that.size {
		return 0, 0, fmt.Errorf("%w: %q", apperror.ErrFormalCoordinate, text)
	}

	return int(column - 'A'), that.size - row, nil
}

// String renders the grid row by row, mostly for test failure output.
func (that *Board) String() string {
	var sb strings.Builder
	for y := 0; y < that.size; y++ {
		for x := 0; x < that.size; x++ {
			switch that.Get(x, y) {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
