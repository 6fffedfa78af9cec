package main

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

type GameRecord struct {
	GameSessionId string  `json:"session_id"`
	Username      *string `json:"username"`
	PiecesPlaced  int     `json:"pieces_placed"`
	LinesCleared  int     `json:"lines_cleared"`
	Height        int     `json:"height"`
	Playtime      float64 `json:"playtime"`
}

type GameRecordFilters struct {
	username *string
	minLines *int
}

func (f GameRecordFilters) WhereClause() (string, pgx.NamedArgs) {
	args := pgx.NamedArgs{}
	whereClauses := []string{}
	if f.username != nil {
		args["username"] = &f.username
		whereClauses = append(whereClauses, "username = @username")
	}
	if f.minLines != nil {
		args["minLines"] = &f.minLines
		whereClauses = append(whereClauses, "lines_cleared >= @minLines")
	}

	if len(whereClauses) == 0 {
		return "", args
	}
	return strings.Join(whereClauses, " and "), args
}

type GameRecordsOption = func(*GameRecordFilters) error

func GameRecordsForPlayer(username string) GameRecordsOption {
	return func(f *GameRecordFilters) error {
		f.username = &username
		return nil
	}
}

func GameRecordsWithMinLines(minLines int) GameRecordsOption {
	return func(f *GameRecordFilters) error {
		f.minLines = &minLines
		return nil
	}
}

func getGameRecords(
	ctx context.Context, options ...GameRecordsOption,
) ([]GameRecord, error) {
	filters := &GameRecordFilters{}
	for _, op := range options {
		err := op(filters)
		if err != nil {
			return nil, err
		}
	}

	sql := `
	select
		game_session_id
		, username
		, pieces_placed
		, lines_cleared
		, height
		, (
			extract('epoch' from ended_at) - extract('epoch' from started_at)
		) * 1000 playtime
	from game_session
		left outer join player using (player_id)
	where
		ended_at is not null`

	whereClause, args := filters.WhereClause()
	if whereClause != "" {
		sql += " and " + whereClause
	}

	sql += " order by lines_cleared desc, playtime"

	rows, err := pg.db.Query(ctx, sql, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[GameRecord])
}
