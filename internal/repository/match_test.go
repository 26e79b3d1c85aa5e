package repository

import (
	"testing"

	"github.com/stonegrid/gomoku/internal/entity"
	"github.com/stonegrid/gomoku/internal/gomoku"
	"github.com/stonegrid/gomoku/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stoppedGame builds a renju game with three moves, then stops it.
func stoppedGame(t *testing.T) *gomoku.Game {
	t.Helper()

	game, err := gomoku.NewGame(entity.BoardSize15, gomoku.Renju)
	require.NoError(t, err)
	require.True(t, game.PlaceStone(7, 7))
	require.True(t, game.PlaceStone(8, 7))
	require.True(t, game.PlaceStone(7, 8))
	game.Stop()

	return game
}

func TestMatchRepository_Park(t *testing.T) {
	ctx, st := suite.New(t)

	matchRepo := NewMatchRepository(st.Storage)

	// Given: a stopped match
	game := stoppedGame(t)

	// When: parking it
	err := matchRepo.Park(ctx, "123", game)

	// Then: no error should be returned
	require.NoError(t, err)
}

func TestMatchRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage)

		// Given: a parked match
		game := stoppedGame(t)
		require.NoError(t, matchRepo.Park(ctx, "123", game))

		// When: fetching it by ID
		fetched, err := matchRepo.GetByID(ctx, "123")

		// Then: the reconstruction matches what was parked
		require.NoError(t, err)
		assert.Equal(t, game.State(), fetched.State())
		assert.Equal(t, game.Type(), fetched.Type())
		assert.Equal(t, game.Moves().All(), fetched.Moves().All())
		assert.Equal(t, game.Board().String(), fetched.Board().String())
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage)

		// When: fetching an ID that was never parked
		_, err := matchRepo.GetByID(ctx, "does-not-exist")

		// Then: an ErrMatchNotFound error should be returned
		require.ErrorIs(t, err, ErrMatchNotFound)
	})
}

func TestMatchRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	matchRepo := NewMatchRepository(st.Storage)

	// Given: a parked match
	game := stoppedGame(t)
	require.NoError(t, matchRepo.Park(ctx, "123", game))

	// When: deleting it
	require.NoError(t, matchRepo.DeleteByID(ctx, "123"))

	// Then: it can no longer be fetched
	_, err := matchRepo.GetByID(ctx, "123")
	assert.ErrorIs(t, err, ErrMatchNotFound)
}
