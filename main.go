package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/stonegrid/gomoku/internal"
	"github.com/stonegrid/gomoku/internal/config"
	"github.com/stonegrid/gomoku/internal/entity"
	"github.com/stonegrid/gomoku/internal/gomoku"
)

// main - is the entry point of the application. It parses the command line,
// initializes the configuration and logger, and runs one match.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	opts := parseArgs()
	conf := initConfig()
	logger := initLogger(conf)

	if opts.BoardSize == 0 {
		opts.BoardSize = conf.BoardSize
	}

	if err := app.RunApp(logger, conf, opts); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// parseArgs maps the command line onto run options. Resuming a save file
// conflicts with choosing a board size, since the size comes from the file.
func parseArgs() app.Options {
	var opts app.Options
	var renju bool

	flag.IntVar(&opts.BoardSize, "b", 0, "board size for a new match (15, 17 or 19)")
	flag.StringVar(&opts.ExportPath, "o", "", "export the match to this file when it ends")
	flag.StringVar(&opts.ImportPath, "r", "", "resume the match saved in this file")
	flag.StringVar(&opts.ReplayPath, "replay", "", "replay the match saved in this file")
	flag.BoolVar(&renju, "renju", false, "play under renju rules")
	flag.BoolVar(&opts.ClearScreen, "clear", true, "redraw the board in place")
	flag.Parse()

	if opts.ImportPath != "" && opts.BoardSize != 0 {
		fmt.Fprintln(os.Stderr, "usage: gomoku [-r <unfinished-match.gmk>] [-o <saved-match.gmk>] [-b <15|17|19>] [-renju]")
		fmt.Fprintln(os.Stderr, "       -r and -b conflict with each other")
		os.Exit(1)
	}

	if opts.BoardSize != 0 &&
		opts.BoardSize != entity.BoardSize15 &&
		opts.BoardSize != entity.BoardSize17 &&
		opts.BoardSize != entity.BoardSize19 {
		fmt.Fprintln(os.Stderr, "board size must be 15, 17 or 19")
		os.Exit(1)
	}

	if renju {
		opts.GameType = gomoku.Renju
	}

	return opts
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
