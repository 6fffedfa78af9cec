package tetris

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// playSequence plays a comma-separated placement line like "Q0,I2,I6" and
// returns the final reported height.
func playSequence(t *testing.T, game *GameState, line string) (height int) {
	t.Helper()
	for _, s := range strings.Split(line, ",") {
		piece, err := ParsePiece(s[:1])
		require.NoError(t, err)
		offset, err := strconv.Atoi(s[1:])
		require.NoError(t, err)
		height, err = game.Place(piece, offset)
		require.NoError(t, err)
	}
	return height
}

func TestReferenceSequences(t *testing.T) {
	tests := []struct {
		line   string
		height int
	}{
		{"I0,I4,Q8", 1},
		{"T1,Z3,I4", 4},
		{"Q0,I2,I6,I0,I6,I6,Q2,Q4", 3},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			game := NewGame()
			require.Equal(t, tt.height, playSequence(t, game, tt.line))
		})
	}
}

func TestLineClearAccounting(t *testing.T) {
	game := NewGame()
	playSequence(t, game, "I0,I4,Q8")
	require.Equal(t, 1, game.LinesCleared())
	require.Equal(t, 3, game.PiecesPlaced)
	require.Equal(t, []string{"--------oo"}, game.Grid.Rows())
}

func TestPlaceRejectsOutOfRangeOffset(t *testing.T) {
	game := NewGame()
	playSequence(t, game, "Q0")
	before := game.Grid.Rows()

	for _, tt := range []struct {
		piece  Piece
		offset int
	}{
		{I, 7},
		{Q, 9},
		{T, 8},
		{Q, -1},
	} {
		height, err := game.Place(tt.piece, tt.offset)
		require.ErrorIs(t, err, ErrInvalidPlacement)
		require.Equal(t, 2, height)
	}

	require.Equal(t, before, game.Grid.Rows())
	require.Equal(t, 1, game.PiecesPlaced)
}

func TestGobRoundTrip(t *testing.T) {
	game := NewGame()
	playSequence(t, game, "Q0,I2,I6,I0,T4")

	buf, err := game.Bytes()
	require.NoError(t, err)
	decoded, err := DecodeGameState(buf)
	require.NoError(t, err)

	require.Equal(t, game.Height(), decoded.Height())
	require.Equal(t, game.LinesCleared(), decoded.LinesCleared())
	require.Equal(t, game.PiecesPlaced, decoded.PiecesPlaced)
	require.Equal(t, game.Grid.Rows(), decoded.Grid.Rows())

	// the rebuilt board must keep behaving like the original
	h1, err := game.Place(Q, 8)
	require.NoError(t, err)
	h2, err := decoded.Place(Q, 8)
	require.NoError(t, err)
	require.Equal(t, h1, h2)
	require.Equal(t, game.Grid.Rows(), decoded.Grid.Rows())
}

func TestRebaseKeepsBoardConsistent(t *testing.T) {
	game := NewGame()

	// every round lays down two full rows of Qs and clears them both;
	// each round burns two order keys, so enough rounds push the counter
	// past its ceiling several times
	const rounds = 600
	for range rounds {
		playSequence(t, game, "Q0,Q2,Q4,Q6,Q8")
	}

	require.Equal(t, 0, game.Height())
	require.Equal(t, 2*rounds, game.LinesCleared())
	require.Equal(t, 5*rounds, game.PiecesPlaced)
	require.LessOrEqual(t, game.Grid.order, maxOrderKey)
	for c := range NumColumns {
		require.Equal(t, floorRow, game.Grid.visible[c], "column %d", c)
	}

	height, err := game.Place(Q, 0)
	require.NoError(t, err)
	require.Equal(t, 2, height)
}
