package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/stonegrid/gomoku/internal/gomoku"
	"github.com/stonegrid/gomoku/internal/savefile"
)

var ErrMatchNotFound = errors.New("match not found")

// MatchRepository parks stopped or concluded matches in Redis so they can be
// fetched and resumed later. Values are stored in the save file text format,
// the same bytes an export to disk would produce.
type MatchRepository interface {
	Park(ctx context.Context, id string, game *gomoku.Game) error
	GetByID(ctx context.Context, id string) (*gomoku.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbMatch struct {
	client *redis.Client
}

func NewMatchRepository(client *redis.Client) MatchRepository {
	return &dbMatch{
		client: client,
	}
}

func (that *dbMatch) Park(ctx context.Context, id string, game *gomoku.Game) error {
	var payload bytes.Buffer
	if err := savefile.Encode(&payload, game); err != nil {
		return fmt.Errorf("could not encode match: %w", err)
	}

	matchKey := "match:" + id
	err := that.client.Set(ctx, matchKey, payload.String(), 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set match: %w", err)
	}

	return nil
}

func (that *dbMatch) GetByID(ctx context.Context, id string) (*gomoku.Game, error) {
	matchKey := "match:" + id

	response, err := that.client.Get(ctx, matchKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrMatchNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match by ID: %w", err)
	}

	game, err := savefile.Decode(strings.NewReader(response))
	if err != nil {
		return nil, fmt.Errorf("failed to decode match: %w", err)
	}

	return game, nil
}

func (that *dbMatch) DeleteByID(ctx context.Context, id string) error {
	matchKey := "match:" + id

	err := that.client.Del(ctx, matchKey).Err()
	if err != nil {
		return fmt.Errorf("failed to delete match by ID: %w", err)
	}

	return nil
}
