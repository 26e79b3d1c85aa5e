package repository

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/stonegrid/gomoku/internal/gomoku"
	"github.com/stonegrid/gomoku/internal/savefile"
)

// ArchiveRepository keeps a permanent record of concluded matches in SQLite.
// Unlike the Redis park, archive rows are never deleted by the application.
type ArchiveRepository interface {
	SaveConcluded(ctx context.Context, id string, game *gomoku.Game) error
	GetByID(ctx context.Context, id string) (*gomoku.Game, error)
}

type dbArchive struct {
	conn *sql.DB
}

func NewArchiveRepository(conn *sql.DB) ArchiveRepository {
	return &dbArchive{
		conn: conn,
	}
}

func (that *dbArchive) SaveConcluded(ctx context.Context, id string, game *gomoku.Game) error {
	var payload bytes.Buffer
	if err := savefile.Encode(&payload, game); err != nil {
		return fmt.Errorf("could not encode match: %w", err)
	}

	query := `INSERT OR REPLACE INTO matches
		(id, board_size, game_type, state, winner, move_count, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query,
		id,
		game.Board().Size(),
		int(game.Type()),
		int(game.State()),
		int(game.Winner()),
		game.Moves().Len(),
		payload.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to archive match: %w", err)
	}

	return nil
}

func (that *dbArchive) GetByID(ctx context.Context, id string) (*gomoku.Game, error) {
	query := `SELECT payload FROM matches WHERE id = ?`

	var payload string
	err := that.conn.QueryRowContext(ctx, query, id).Scan(&payload)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMatchNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load archived match: %w", err)
	}

	game, err := savefile.Decode(strings.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to decode match: %w", err)
	}

	return game, nil
}
