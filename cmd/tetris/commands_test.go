package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vancomm/tetris-server/internal/tetris"
)

func TestExecuteCommand(t *testing.T) {
	game := tetris.NewGame()

	require.NoError(t, executeCommand(game, "g"))
	require.NoError(t, executeCommand(game, "p Q 0"))
	require.Equal(t, 2, game.Height())

	require.Error(t, executeCommand(game, "x"))
	require.Error(t, executeCommand(game, "p Q"))
	require.Error(t, executeCommand(game, "p Q zero"))
	require.Error(t, executeCommand(game, "p X 0"))
	require.Equal(t, 2, game.Height())
}

func TestApplyPlacements(t *testing.T) {
	game := tetris.NewGame()
	require.NoError(t, applyPlacements(game, "I0,I4,Q8"))
	require.Equal(t, 1, game.Height())
	require.Equal(t, 1, game.LinesCleared())

	err := applyPlacements(game, "I8")
	require.ErrorIs(t, err, tetris.ErrInvalidPlacement)

	err = applyPlacements(game, "Q")
	require.ErrorIs(t, err, tetris.ErrInvalidPlacement)
}
