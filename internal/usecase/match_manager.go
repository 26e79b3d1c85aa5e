package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/stonegrid/gomoku/internal/apperror"
	"github.com/stonegrid/gomoku/internal/gomoku"
	"github.com/stonegrid/gomoku/internal/savefile"
)

type matchRepo interface {
	Park(ctx context.Context, id string, game *gomoku.Game) error
	GetByID(ctx context.Context, id string) (*gomoku.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type archiveRepo interface {
	SaveConcluded(ctx context.Context, id string, game *gomoku.Game) error
}

// MatchManager orchestrates a match's lifecycle around the core engine:
// creation, placement by formal coordinate, file export/import, parking
// unfinished matches in the repository and archiving concluded ones. Both
// repositories are optional; a nil repository turns the operation into a
// logged no-op so the terminal driver works without any backing store.
type MatchManager struct {
	logger      *slog.Logger
	matchRepo   matchRepo
	archiveRepo archiveRepo
}

func NewMatchManager(logger *slog.Logger, matchRepo matchRepo, archiveRepo archiveRepo) *MatchManager {
	return &MatchManager{
		logger: logger.With("component", "match_manager"),

		matchRepo:   matchRepo,
		archiveRepo: archiveRepo,
	}
}

// NewMatch starts a fresh match of the given board size and variant.
func (that *MatchManager) NewMatch(boardSize int, gameType gomoku.GameType) (*gomoku.Game, error) {
	game, err := gomoku.NewGame(boardSize, gameType)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("match created", "size", boardSize, "type", gameType.String())

	return game, nil
}

// PlaceFormal plays a move given in formal coordinate text. The boolean
// mirrors PlaceStone: false means the cell was occupied and the caller
// should re-prompt. A malformed coordinate is an error instead.
func (that *MatchManager) PlaceFormal(game *gomoku.Game, coord string) (bool, error) {
	if game == nil {
		return false, fmt.Errorf("%w: game", apperror.ErrNilReference)
	}

	x, y, err := game.Board().ParseCoord(coord)
	if err != nil {
		return false, fmt.Errorf("failed to parse coordinate: %w", err)
	}

	return game.PlaceStone(x, y), nil
}

// ExportToFile writes the match to a save file at path.
func (that *MatchManager) ExportToFile(game *gomoku.Game, path string) error {
	if game == nil {
		return fmt.Errorf("%w: game", apperror.ErrNilReference)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create save file: %w", err)
	}
	defer file.Close()

	if err = savefile.Encode(file, game); err != nil {
		return fmt.Errorf("failed to export match: %w", err)
	}

	that.logger.Info("match exported", "path", path, "moves", game.Moves().Len())

	return nil
}

// ImportFromFile reconstructs a match from a save file at path.
func (that *MatchManager) ImportFromFile(path string) (*gomoku.Game, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open save file: %w", err)
	}
	defer file.Close()

	game, err := savefile.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to import match: %w", err)
	}

	that.logger.Info("match imported", "path", path, "state", game.State().String())

	return game, nil
}

// Park stores an unfinished match in the repository under a fresh ID and
// returns that ID so the match can be fetched later.
func (that *MatchManager) Park(ctx context.Context, game *gomoku.Game) (string, error) {
	if game == nil {
		return "", fmt.Errorf("%w: game", apperror.ErrNilReference)
	}

	if that.matchRepo == nil {
		that.logger.Debug("no match repository configured, skipping park")
		return "", nil
	}

	id := uuid.NewString()
	if err := that.matchRepo.Park(ctx, id, game); err != nil {
		return "", fmt.Errorf("failed to park match: %w", err)
	}

	that.logger.Info("match parked", "id", id)

	return id, nil
}

// Fetch retrieves a parked match and removes it from the repository.
func (that *MatchManager) Fetch(ctx context.Context, id string) (*gomoku.Game, error) {
	if that.matchRepo == nil {
		return nil, fmt.Errorf("%w: match repository", apperror.ErrNilReference)
	}

	game, err := that.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match: %w", err)
	}

	if err = that.matchRepo.DeleteByID(ctx, id); err != nil {
		that.logger.Error("could not delete fetched match", "id", id, "error", err)
	}

	return game, nil
}

// Archive records a concluded match permanently. Matches that are merely
// stopped are not archived.
func (that *MatchManager) Archive(ctx context.Context, game *gomoku.Game) error {
	if game == nil {
		return fmt.Errorf("%w: game", apperror.ErrNilReference)
	}

	if !game.State().Terminal() {
		return nil
	}

	if that.archiveRepo == nil {
		that.logger.Debug("no archive repository configured, skipping archive")
		return nil
	}

	id := uuid.NewString()
	if err := that.archiveRepo.SaveConcluded(ctx, id, game); err != nil {
		return fmt.Errorf("failed to archive match: %w", err)
	}

	that.logger.Info("match archived", "id", id, "winner", game.Winner().String())

	return nil
}
