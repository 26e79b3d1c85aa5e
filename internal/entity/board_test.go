package entity

import (
	"fmt"
	"testing"

	"github.com/stonegrid/gomoku/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("Creates an all-empty board for every supported size", func(t *testing.T) {
		for _, size := range []int{BoardSize15, BoardSize17, BoardSize19} {
			// Given: a supported board size
			// When: creating the board
			board, err := NewBoard(size)

			// Then: every intersection starts Empty
			require.NoError(t, err)
			require.Equal(t, size, board.Size())

			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					require.Equal(t, Empty, board.Get(x, y))
				}
			}
		}
	})

	t.Run("Rejects any other size", func(t *testing.T) {
		for _, size := range []int{0, 1, 9, 14, 16, 18, 20, 21, -15} {
			// When: creating a board of an unsupported size
			board, err := NewBoard(size)

			// Then: an ErrInvalidBoardSize error should be returned
			require.ErrorIs(t, err, apperror.ErrInvalidBoardSize)
			assert.Nil(t, board)
		}
	})
}

func TestBoard_SetGet(t *testing.T) {
	t.Run("Set stores a stone and Get reads it back", func(t *testing.T) {
		// Given: an empty board
		board, err := NewBoard(BoardSize15)
		require.NoError(t, err)

		// When: placing stones
		require.NoError(t, board.Set(0, 0, Black))
		require.NoError(t, board.Set(14, 14, White))

		// Then: Get returns them and the rest stays Empty
		assert.Equal(t, Black, board.Get(0, 0))
		assert.Equal(t, White, board.Get(14, 14))
		assert.Equal(t, Empty, board.Get(7, 7))
	})

	t.Run("Set rejects a non-stone value", func(t *testing.T) {
		// Given: an empty board
		board, err := NewBoard(BoardSize15)
		require.NoError(t, err)

		// When: setting Empty or a garbage value
		// Then: an ErrInvalidStone error should be returned
		require.ErrorIs(t, board.Set(0, 0, Empty), apperror.ErrInvalidStone)
		require.ErrorIs(t, board.Set(0, 0, Stone(7)), apperror.ErrInvalidStone)
		assert.Equal(t, Empty, board.Get(0, 0))
	})

	t.Run("Reads one cell beyond any edge report Empty", func(t *testing.T) {
		// Given: a board with stones along the top-left edges
		board, err := NewBoard(BoardSize15)
		require.NoError(t, err)
		require.NoError(t, board.Set(0, 0, Black))
		require.NoError(t, board.Set(14, 14, Black))

		// When/Then: the border sentinel reads as Empty on all sides
		assert.Equal(t, Empty, board.Get(-1, 0))
		assert.Equal(t, Empty, board.Get(0, -1))
		assert.Equal(t, Empty, board.Get(-1, -1))
		assert.Equal(t, Empty, board.Get(15, 14))
		assert.Equal(t, Empty, board.Get(14, 15))
		assert.Equal(t, Empty, board.Get(15, 15))
	})
}

func TestBoard_IsFull(t *testing.T) {
	// Given: a 15x15 board
	board, err := NewBoard(BoardSize15)
	require.NoError(t, err)

	// Then: the empty board is not full
	require.False(t, board.IsFull())

	// When: filling every cell but one
	for y := 0; y < board.Size(); y++ {
		for x := 0; x < board.Size(); x++ {
			if x == 7 && y == 7 {
				continue
			}
			require.NoError(t, board.Set(x, y, Black))
		}
	}

	// Then: still not full until the last cell is placed
	require.False(t, board.IsFull())
	require.NoError(t, board.Set(7, 7, White))
	assert.True(t, board.IsFull())
}

func TestBoard_FormalCoord(t *testing.T) {
	t.Run("Maps columns to letters and rows bottom-up", func(t *testing.T) {
		// Given: a 15x15 board
		board, err := NewBoard(BoardSize15)
		require.NoError(t, err)

		tests := []struct {
			x, y int
			want string
		}{
			{x: 0, y: 0, want: "A15"},
			{x: 0, y: 14, want: "A1"},
			{x: 14, y: 0, want: "O15"},
			{x: 14, y: 14, want: "O1"},
			{x: 7, y: 7, want: "H8"},
			{x: 2, y: 5, want: "C10"},
		}

		for _, tc := range tests {
			// When: converting grid coordinates
			coord, err := board.FormalCoord(tc.x, tc.y)

			// Then: the text form matches
			require.NoError(t, err)
			assert.Equal(t, tc.want, coord)
		}
	})

	t.Run("Rejects coordinates off the board", func(t *testing.T) {
		// Given: a 15x15 board
		board, err := NewBoard(BoardSize15)
		require.NoError(t, err)

		for _, tc := range [][2]int{{15, 0}, {0, 15}, {-1, 0}, {0, -1}, {19, 19}} {
			// When: converting an out-of-range coordinate
			_, err := board.FormalCoord(tc[0], tc[1])

			// Then: an ErrInvalidCoordinate error should be returned
			assert.ErrorIs(t, err, apperror.ErrInvalidCoordinate)
		}
	})
}

func TestBoard_ParseCoord(t *testing.T) {
	t.Run("Round-trips every cell on every size", func(t *testing.T) {
		for _, size := range []int{BoardSize15, BoardSize17, BoardSize19} {
			board, err := NewBoard(size)
			require.NoError(t, err)

			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					// When: converting to text and back
					coord, err := board.FormalCoord(x, y)
					require.NoError(t, err)

					gotX, gotY, err := board.ParseCoord(coord)

					// Then: the original coordinates come back
					require.NoError(t, err, "coordinate %q", coord)
					require.Equal(t, x, gotX, "coordinate %q", coord)
					require.Equal(t, y, gotY, "coordinate %q", coord)
				}
			}
		}
	})

	t.Run("Rejects malformed text", func(t *testing.T) {
		// Given: a 15x15 board
		board, err := NewBoard(BoardSize15)
		require.NoError(t, err)

		bad := []string{
			"",     // empty
			"A",    // missing row
			"15",   // missing column letter
			"P1",   // column beyond size 15
			"a1",   // lower case letter
			"A0",   // row below 1
			"A16",  // row beyond size
			"A151", // too long
			"AA1",  // letter where a digit belongs
			"A1x",  // trailing junk
			"A-1",  // sign is not a digit
			"Z9",   // column far out of range
		}

		for _, text := range bad {
			// When: parsing the malformed coordinate
			_, _, err := board.ParseCoord(text)

			// Then: an ErrFormalCoordinate error should be returned
			assert.ErrorIs(t, err, apperror.ErrFormalCoordinate, fmt.Sprintf("input %q", text))
		}
	})

	t.Run("Accepts the extreme valid coordinates on a 19x19 board", func(t *testing.T) {
		// Given: the largest supported board
		board, err := NewBoard(BoardSize19)
		require.NoError(t, err)

		// When: parsing the far corner
		x, y, err := board.ParseCoord("S19")

		// Then: it maps to the top-right storage corner
		require.NoError(t, err)
		assert.Equal(t, 18, x)
		assert.Equal(t, 0, y)
	})
}
