package tetris

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
)

// GameState is one simulated game: the board plus a running tally of
// placements, kept for session records.
type GameState struct {
	Grid         *Grid
	PiecesPlaced int
}

func NewGame() *GameState {
	return &GameState{Grid: NewGrid()}
}

func DecodeGameState(buf []byte) (*GameState, error) {
	var game GameState
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (g GameState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(g)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Place drops one piece with its left edge at the given column and returns
// the resulting stack height.
func (g *GameState) Place(p Piece, offset int) (int, error) {
	height, err := g.Grid.Place(p, offset)
	if err != nil {
		return height, err
	}
	g.PiecesPlaced++
	return height, nil
}

func (g *GameState) Height() int       { return g.Grid.Height() }
func (g *GameState) LinesCleared() int { return g.Grid.LinesCleared() }

/*
Place drops piece p with its left edge at column offset, fills its cells
row by row and returns the resulting stack height. A piece that does not
fit on the board is rejected before any mutation. Internal consistency
violations surface as an [AssertionError].
*/
func (g *Grid) Place(p Piece, offset int) (height int, err error) {
	if p < I || p > Z {
		return g.height, fmt.Errorf("%w: unknown piece %d", ErrInvalidPlacement, p)
	}
	if offset < 0 || offset+p.Width() > NumColumns {
		return g.height, fmt.Errorf(
			"%w: piece %s does not fit at offset %d", ErrInvalidPlacement, p, offset,
		)
	}

	defer func() {
		var ae AssertionError
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.As(e, &ae) {
				height, err = g.height, ae
			} else {
				panic(r)
			}
		}
	}()

	rows := g.rowsForPlacement(p, offset)
	for i, sub := range pieceShapes[p] {
		columns := make([]int, len(sub))
		for j, c := range sub {
			columns[j] = c + offset
		}
		g.fillColumns(rows[i], columns)
	}
	return g.height, nil
}

// gridImage is the serialized form of a board: just the bottom-to-top
// sequence of empty-column masks. Arena layout, order keys and cursors are
// rebuilt on decode.
type gridImage struct {
	Rows    []uint16
	Cleared int
}

// [Grid] implements [gob.GobEncoder]
func (g *Grid) GobEncode() ([]byte, error) {
	img := gridImage{Rows: make([]uint16, 0, g.height), Cleared: g.cleared}
	for h := g.rows[floorRow].next; h != ceilingRow; h = g.rows[h].next {
		img.Rows = append(img.Rows, g.rows[h].empty)
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// [Grid] implements [gob.GobDecoder]
func (g *Grid) GobDecode(data []byte) error {
	var img gridImage
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&img); err != nil {
		return err
	}
	*g = *NewGrid()
	for _, empty := range img.Rows {
		g.pushRow(empty)
	}
	g.cleared = img.Cleared
	return nil
}
