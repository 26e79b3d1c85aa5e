package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/stonegrid/gomoku/internal/config"
	"github.com/stonegrid/gomoku/internal/gomoku"
	"github.com/stonegrid/gomoku/internal/repository"
	"github.com/stonegrid/gomoku/internal/repository/storage"
	"github.com/stonegrid/gomoku/internal/usecase"
	"github.com/stonegrid/gomoku/transport/terminal"
)

// Options come from the command line: which save file to resume or replay,
// where to export the match when it ends, and the board size for a fresh
// match. Empty paths mean "not requested".
type Options struct {
	BoardSize   int
	GameType    gomoku.GameType
	ImportPath  string
	ExportPath  string
	ReplayPath  string
	ClearScreen bool
}

// RunApp wires storage, the match manager and the terminal driver, then
// plays, resumes or replays one match according to the options.
func RunApp(logger *slog.Logger, conf *config.Config, opts Options) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	matchRepo, archiveRepo, cleanup, err := buildRepositories(ctx, log, conf)
	if err != nil {
		return err
	}
	defer cleanup()

	manager := usecase.NewMatchManager(logger, matchRepo, archiveRepo)
	renderer := &terminal.Renderer{Out: os.Stdout, ClearScreen: opts.ClearScreen}

	if opts.ReplayPath != "" {
		saved, err := manager.ImportFromFile(opts.ReplayPath)
		if err != nil {
			return err
		}

		replayer := &terminal.Replayer{Renderer: renderer, Pause: conf.ReplayPause}
		return replayer.Replay(saved)
	}

	game, err := openMatch(manager, opts)
	if err != nil {
		return err
	}

	loop := terminal.NewLoop(logger, manager, renderer, os.Stdin)
	if err = loop.Run(game); err != nil {
		return err
	}

	return concludeMatch(ctx, log, manager, game, opts)
}

// openMatch either resumes an imported save or starts a fresh match.
func openMatch(manager *usecase.MatchManager, opts Options) (*gomoku.Game, error) {
	if opts.ImportPath == "" {
		return manager.NewMatch(opts.BoardSize, opts.GameType)
	}

	game, err := manager.ImportFromFile(opts.ImportPath)
	if err != nil {
		return nil, err
	}

	if err = game.Resume(); err != nil {
		return nil, fmt.Errorf("resume imported match: %w", err)
	}

	return game, nil
}

// concludeMatch exports, parks or archives the finished loop's game.
func concludeMatch(ctx context.Context, log *slog.Logger, manager *usecase.MatchManager, game *gomoku.Game, opts Options) error {
	if opts.ExportPath != "" {
		if err := manager.ExportToFile(game, opts.ExportPath); err != nil {
			return err
		}
	}

	if game.State() == gomoku.StateStopped {
		id, err := manager.Park(ctx, game)
		if err != nil {
			log.Error("could not park stopped match", "error", err)
		} else if id != "" {
			log.Info("stopped match parked", "id", id)
		}
		return nil
	}

	if err := manager.Archive(ctx, game); err != nil {
		log.Error("could not archive match", "error", err)
	}

	return nil
}

// buildRepositories connects the optional Redis park and SQLite archive.
// Either may be absent from the config; the manager treats a nil repository
// as a no-op.
func buildRepositories(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.MatchRepository, repository.ArchiveRepository, func(), error) {
	var (
		matchRepo   repository.MatchRepository
		archiveRepo repository.ArchiveRepository
		closers     []func()
	)

	cleanup := func() {
		for _, closeFn := range closers {
			closeFn()
		}
	}

	if addr := conf.Redis.GetRedisAddr(); addr != "" {
		redisStorage, err := storage.NewRedisStorage(ctx, addr)
		if err != nil {
			return nil, nil, cleanup, fmt.Errorf("could not connect to redis storage: %w", err)
		}
		closers = append(closers, func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		})

		matchRepo = repository.NewMatchRepository(redisStorage.Connection)
	}

	if conf.SQLiteArchivePath != "" {
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteArchivePath)
		if err != nil {
			return nil, nil, cleanup, fmt.Errorf("could not open sqlite storage: %w", err)
		}
		closers = append(closers, func() {
			if err := sqliteStorage.Close(); err != nil {
				log.Error("could not close sqlite storage", "error", err)
			}
		})

		if err = sqliteStorage.Init(ctx); err != nil {
			return nil, nil, cleanup, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		archiveRepo = repository.NewArchiveRepository(sqliteStorage.Connection)
	}

	return matchRepo, archiveRepo, cleanup, nil
}
