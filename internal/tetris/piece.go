package tetris

import (
	"fmt"
)

// Piece enumerates the seven block variants.
type Piece int8

const (
	I Piece = iota
	J
	L
	Q
	S
	T
	Z
)

var pieceNames = [...]string{"I", "J", "L", "Q", "S", "T", "Z"}

func (p Piece) String() string {
	if p < I || p > Z {
		return "?"
	}
	return pieceNames[p]
}

// ParsePiece maps a single-character tag to its Piece.
func ParsePiece(s string) (Piece, error) {
	switch s {
	case "I":
		return I, nil
	case "J":
		return J, nil
	case "L":
		return L, nil
	case "Q":
		return Q, nil
	case "S":
		return S, nil
	case "T":
		return T, nil
	case "Z":
		return Z, nil
	}
	return 0, fmt.Errorf("%w: unknown piece %q", ErrInvalidPlacement, s)
}

/*
pieceShapes lists, bottom to top, the local column offsets each sub-row of
a piece occupies, as if the piece's leftmost column were 0. The caller's
horizontal offset shifts these into board columns.
*/
var pieceShapes = [...][][]int{
	I: {{0, 1, 2, 3}},
	J: {{0, 1}, {1}, {1}},
	L: {{0, 1}, {0}, {0}},
	Q: {{0, 1}, {0, 1}},
	S: {{0, 1}, {1, 2}},
	T: {{1}, {0, 1, 2}},
	Z: {{1, 2}, {0, 1}},
}

/*
collisionColumns lists the local columns whose cursor must be consulted to
find where a falling piece comes to rest. For bottom-flat pieces this is
the whole footprint; for T, S and Z it is the columns touched by the
piece's lowest cell in each footprint column.
*/
var collisionColumns = [...][]int{
	I: {0, 1, 2, 3},
	J: {0, 1},
	L: {0, 1},
	Q: {0, 1},
	S: {0, 1, 2},
	T: {0, 1, 2},
	Z: {0, 1, 2},
}

var pieceWidths = [...]int{I: 4, J: 2, L: 2, Q: 2, S: 3, T: 3, Z: 3}

// Width is the number of board columns the piece's footprint spans.
func (p Piece) Width() int { return pieceWidths[p] }

// highest picks the handle of the topmost row among the given cursors.
// Equal cursors reference the same row, so ties need no special handling.
func (g *Grid) highest(cursors []rowHandle) rowHandle {
	best := cursors[0]
	for _, h := range cursors[1:] {
		if g.above(h, best) {
			best = h
		}
	}
	return best
}

/*
rowsForPlacement applies the shape-specific collision policy and returns
one row per sub-row of the piece, bottom to top.

Bottom-flat pieces (I, J, L, Q) rest on top of the highest cursor among
their footprint columns. T, S and Z have irregular undersides: when a side
column's cursor sits strictly higher than the rest, the piece hangs off
that neighbor and its bottom sub-row shares the cursor's row instead of
starting a new row above everything.
*/
func (g *Grid) rowsForPlacement(p Piece, offset int) []rowHandle {
	cols := collisionColumns[p]
	vis := make([]rowHandle, len(cols))
	for i, c := range cols {
		vis[i] = g.visible[c+offset]
	}
	n := len(pieceShapes[p])

	switch p {
	case I, J, L, Q:
		return g.getNextRows(g.highest(vis), n, false)

	case T:
		left, mid, right := vis[0], vis[1], vis[2]
		switch {
		// hangs on the left side
		case g.above(left, mid) && g.above(left, right):
			return g.getNextRows(left, n, true)
		// hangs on the right side
		case g.above(right, mid) && g.above(right, left):
			return g.getNextRows(right, n, true)
		// hangs on both sides
		case g.above(left, mid) && g.orderOf(left) == g.orderOf(right):
			return g.getNextRows(left, n, true)
		// rests flush on the middle column
		default:
			return g.getNextRows(mid, n, false)
		}

	case S:
		left, mid, right := vis[0], vis[1], vis[2]
		// hangs on the right side
		if g.above(right, left) && g.above(right, mid) {
			return g.getNextRows(right, n, true)
		}
		// rests flush on the higher of the two bottom columns
		return g.getNextRows(g.highest([]rowHandle{left, mid}), n, false)

	case Z:
		left, mid, right := vis[0], vis[1], vis[2]
		// hangs on the left side
		if g.above(left, mid) && g.above(left, right) {
			return g.getNextRows(left, n, true)
		}
		// rests flush on the higher of the two bottom columns
		return g.getNextRows(g.highest([]rowHandle{mid, right}), n, false)
	}

	panic(AssertionError{fmt.Sprintf("no placement policy for piece %d", p)})
}
