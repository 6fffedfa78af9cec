package tetris

import "errors"

// ErrInvalidPlacement flags a caller contract violation: a piece that does
// not fit on the board, or a fill targeting an already occupied cell.
var ErrInvalidPlacement = errors.New("invalid placement")

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
