package main

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/vancomm/tetris-server/internal/tetris"
)

type GameSession struct {
	SessionId int
	PlayerId  *int
	State     tetris.GameState
	StartedAt time.Time
	EndedAt   time.Time
}

func (s GameSession) Finished() bool {
	return !s.EndedAt.IsZero()
}

type GameSessionJSON struct {
	SessionId    string   `json:"session_id"`
	Board        []string `json:"board"`
	Height       int      `json:"height"`
	LinesCleared int      `json:"lines_cleared"`
	PiecesPlaced int      `json:"pieces_placed"`
	StartedAt    int64    `json:"started_at"`
	EndedAt      *int64   `json:"ended_at,omitempty"`
}

func (s GameSession) MarshalJSON() ([]byte, error) {
	var endedAt *int64
	if !s.EndedAt.IsZero() {
		e := s.EndedAt.UnixMilli()
		endedAt = &e
	}
	return json.Marshal(GameSessionJSON{
		SessionId:    strconv.Itoa(s.SessionId),
		Board:        s.State.Grid.Rows(),
		Height:       s.State.Height(),
		LinesCleared: s.State.LinesCleared(),
		PiecesPlaced: s.State.PiecesPlaced,
		StartedAt:    s.StartedAt.UnixMilli(),
		EndedAt:      endedAt,
	})
}
