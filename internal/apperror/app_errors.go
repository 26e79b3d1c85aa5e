package apperror

import "errors"

var (
	ErrInvalidBoardSize  = errors.New("board size must be 15, 17 or 19")
	ErrInvalidStone      = errors.New("stone must be black or white")
	ErrInvalidCoordinate = errors.New("coordinate is outside the board")
	ErrFormalCoordinate  = errors.New("malformed formal coordinate")
	ErrInvalidFileFormat = errors.New("invalid save file format")
	ErrCannotResume      = errors.New("game cannot be resumed")
	ErrNilReference      = errors.New("required reference is nil")
)
