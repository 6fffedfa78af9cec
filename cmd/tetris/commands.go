package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/tetris-server/internal/tetris"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0,
	"p": 2,
	"b": 1,
}

func executeCommand(g *tetris.GameState, c string) error {
	parts := strings.Split(c, " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "g":
		return nil
	case "p":
		piece, err := tetris.ParsePiece(parts[1])
		if err != nil {
			return err
		}
		offset, err := strconv.Atoi(parts[2])
		if err != nil {
			return errors.New("second argument must be an int")
		}
		_, err = g.Place(piece, offset)
		return err
	case "b":
		return applyPlacements(g, parts[1])
	}
	return errors.New("invalid command")
}

// applyPlacements plays a comma-separated placement line like "Q0,I2,I6".
func applyPlacements(g *tetris.GameState, line string) error {
	for _, s := range byPiece(strings.TrimSpace(line), ",") {
		s = strings.TrimSpace(s)
		if len(s) < 2 {
			return fmt.Errorf("%w: malformed placement %q", tetris.ErrInvalidPlacement, s)
		}
		piece, err := tetris.ParsePiece(s[:1])
		if err != nil {
			return err
		}
		offset, err := strconv.Atoi(s[1:])
		if err != nil {
			return fmt.Errorf("%w: malformed offset in %q", tetris.ErrInvalidPlacement, s)
		}
		if _, err := g.Place(piece, offset); err != nil {
			return err
		}
	}
	return nil
}
