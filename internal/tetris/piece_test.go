package tetris

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePiece(t *testing.T) {
	for _, p := range []Piece{I, J, L, Q, S, T, Z} {
		parsed, err := ParsePiece(p.String())
		require.NoError(t, err)
		require.Equal(t, p, parsed)
	}

	_, err := ParsePiece("X")
	require.ErrorIs(t, err, ErrInvalidPlacement)
	_, err = ParsePiece("")
	require.ErrorIs(t, err, ErrInvalidPlacement)
}

func TestPieceWidths(t *testing.T) {
	require.Equal(t, 4, I.Width())
	require.Equal(t, 2, J.Width())
	require.Equal(t, 2, L.Width())
	require.Equal(t, 2, Q.Width())
	require.Equal(t, 3, S.Width())
	require.Equal(t, 3, T.Width())
	require.Equal(t, 3, Z.Width())
}

func place(t *testing.T, g *Grid, p Piece, offset int) int {
	t.Helper()
	height, err := g.Place(p, offset)
	require.NoError(t, err)
	return height
}

func TestBottomFlatRestsOnHighestColumn(t *testing.T) {
	// a single cell in column 0 holds the whole Q up
	g, _ := buildGrid(withOccupied(0))
	height := place(t, g, Q, 0)
	require.Equal(t, 3, height)
	require.Equal(t, []string{
		"oo--------",
		"oo--------",
		"o---------",
	}, g.Rows())
}

func TestTPieceHangsOnLeft(t *testing.T) {
	g, _ := buildGrid(withOccupied(0), withOccupied(0))
	height := place(t, g, T, 0)
	require.Equal(t, 3, height)
	require.Equal(t, []string{
		"ooo-------",
		"oo--------",
		"o---------",
	}, g.Rows())
}

func TestTPieceHangsOnRight(t *testing.T) {
	g, _ := buildGrid(withOccupied(2), withOccupied(2))
	height := place(t, g, T, 0)
	require.Equal(t, 3, height)
	require.Equal(t, []string{
		"ooo-------",
		"-oo-------",
		"--o-------",
	}, g.Rows())
}

func TestTPieceHangsOnBothSides(t *testing.T) {
	g, _ := buildGrid(withOccupied(0, 2))
	height := place(t, g, T, 0)
	require.Equal(t, 2, height)
	require.Equal(t, []string{
		"ooo-------",
		"ooo-------",
	}, g.Rows())
}

func TestTPieceRestsFlush(t *testing.T) {
	g, _ := buildGrid(withOccupied(1))
	height := place(t, g, T, 0)
	require.Equal(t, 3, height)
	require.Equal(t, []string{
		"ooo-------",
		"-o--------",
		"-o--------",
	}, g.Rows())
}

func TestSPieceHangsOnRight(t *testing.T) {
	g, _ := buildGrid(withOccupied(2))
	height := place(t, g, S, 0)
	require.Equal(t, 2, height)
	require.Equal(t, []string{
		"-oo-------",
		"ooo-------",
	}, g.Rows())
}

func TestSPieceRestsFlush(t *testing.T) {
	g, _ := buildGrid(withOccupied(0))
	height := place(t, g, S, 0)
	require.Equal(t, 3, height)
	require.Equal(t, []string{
		"-oo-------",
		"oo--------",
		"o---------",
	}, g.Rows())
}

func TestZPieceHangsOnLeft(t *testing.T) {
	g, _ := buildGrid(withOccupied(0))
	height := place(t, g, Z, 0)
	require.Equal(t, 2, height)
	require.Equal(t, []string{
		"oo--------",
		"ooo-------",
	}, g.Rows())
}

func TestZPieceRestsFlush(t *testing.T) {
	g, _ := buildGrid(withOccupied(2))
	height := place(t, g, Z, 0)
	require.Equal(t, 3, height)
	require.Equal(t, []string{
		"oo--------",
		"-oo-------",
		"--o-------",
	}, g.Rows())
}

func TestPlacementHonorsOffset(t *testing.T) {
	g := NewGrid()
	height := place(t, g, T, 6)
	require.Equal(t, 2, height)
	require.Equal(t, []string{
		"------ooo-",
		"-------o--",
	}, g.Rows())
}
