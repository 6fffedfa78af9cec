package main

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vancomm/tetris-server/internal/tetris"
)

type postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(ctx context.Context, dbUrl string) (*postgres, error) {
	poolConfig, err := pgxpool.ParseConfig(dbUrl)
	if err != nil {
		return nil, err
	}
	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}
	return &postgres{db}, nil
}

func (pg *postgres) Ping(ctx context.Context) error {
	return pg.db.Ping(ctx)
}

func (pg *postgres) Close() {
	pg.db.Close()
}

type Player struct {
	PlayerId     int    `db:"player_id"`
	Username     string `db:"username"`
	PasswordHash []byte `db:"password_hash"`
}

func (pg *postgres) CreatePlayer(
	ctx context.Context, username string, passwordHash []byte,
) (*Player, error) {
	var playerId int
	if err := pg.db.QueryRow(ctx, `
		INSERT INTO player (
			username, password_hash
		)
		VALUES (
			@username, @password_hash
		)
		RETURNING player_id`,
		pgx.NamedArgs{
			"username":      username,
			"password_hash": passwordHash,
		}).Scan(&playerId); err != nil {
		return nil, err
	}
	player := &Player{
		PlayerId: playerId,
		Username: username,
	}
	return player, nil
}

func (pg *postgres) GetPlayer(
	ctx context.Context, username string,
) (*Player, error) {
	rows, err := pg.db.Query(ctx, `
		SELECT player_id, username, password_hash
		FROM player
		WHERE username = $1;`,
		username)
	if err != nil {
		return nil, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Player])
}

func (pg *postgres) CreateAnonymousGameSession(
	ctx context.Context, state *tetris.GameState,
) (*GameSession, error) {
	var (
		gameSessionId int
		startedAt     time.Time
	)
	stateBuf, err := state.Bytes()
	if err != nil {
		return nil, err
	}
	if err := pg.db.QueryRow(ctx, `
		INSERT INTO game_session (
			pieces_placed, lines_cleared, height, state
		)
		VALUES (
			@pieces_placed, @lines_cleared, @height, @state
		)
		RETURNING game_session_id, started_at;`,
		pgx.NamedArgs{
			"pieces_placed": state.PiecesPlaced,
			"lines_cleared": state.LinesCleared(),
			"height":        state.Height(),
			"state":         stateBuf,
		}).Scan(&gameSessionId, &startedAt); err != nil {
		return nil, err
	}
	session := &GameSession{
		SessionId: gameSessionId,
		State:     *state,
		StartedAt: startedAt,
	}
	return session, nil
}

func (pg *postgres) CreatePlayerGameSession(
	ctx context.Context, playerId int, state *tetris.GameState,
) (*GameSession, error) {
	var (
		gameSessionId int
		startedAt     time.Time
	)
	stateBuf, err := state.Bytes()
	if err != nil {
		return nil, err
	}
	if err := pg.db.QueryRow(ctx, `
		INSERT INTO game_session (
			player_id, pieces_placed, lines_cleared, height, state
		)
		VALUES (
			@player_id, @pieces_placed, @lines_cleared, @height, @state
		)
		RETURNING game_session_id, started_at;`,
		pgx.NamedArgs{
			"player_id":     playerId,
			"pieces_placed": state.PiecesPlaced,
			"lines_cleared": state.LinesCleared(),
			"height":        state.Height(),
			"state":         stateBuf,
		}).Scan(&gameSessionId, &startedAt); err != nil {
		return nil, err
	}
	session := &GameSession{
		SessionId: gameSessionId,
		PlayerId:  &playerId,
		State:     *state,
		StartedAt: startedAt,
	}
	return session, nil
}

func (pg *postgres) GetSession(
	ctx context.Context, gameSessionId int,
) (*GameSession, error) {
	var (
		stateBuf  []byte
		startedAt time.Time
		endedAt   pgtype.Timestamptz
	)
	if err := pg.db.QueryRow(ctx, `
		SELECT state, started_at, ended_at
		FROM game_session
		WHERE game_session_id = $1;`,
		gameSessionId).Scan(
		&stateBuf, &startedAt, &endedAt,
	); err != nil {
		return nil, err
	}
	state, err := tetris.DecodeGameState(stateBuf)
	if err != nil {
		return nil, err
	}
	gameSession := &GameSession{
		SessionId: gameSessionId,
		State:     *state,
		StartedAt: startedAt,
		EndedAt:   endedAt.Time,
	}
	return gameSession, nil
}

func (pg *postgres) UpdateGameSession(
	ctx context.Context, gameSession *GameSession,
) error {
	stateBuf, err := gameSession.State.Bytes()
	if err != nil {
		return err
	}
	var endedAt any
	if gameSession.Finished() {
		endedAt = gameSession.EndedAt
	}
	_, err = pg.db.Exec(ctx, `
		UPDATE game_session
		SET pieces_placed = @pieces_placed
			, lines_cleared = @lines_cleared
			, height = @height
			, ended_at = @ended_at
			, state = @state
		WHERE game_session_id = @game_session_id;`,
		pgx.NamedArgs{
			"game_session_id": gameSession.SessionId,
			"pieces_placed":   gameSession.State.PiecesPlaced,
			"lines_cleared":   gameSession.State.LinesCleared(),
			"height":          gameSession.State.Height(),
			"ended_at":        endedAt,
			"state":           stateBuf,
		})
	return err
}
