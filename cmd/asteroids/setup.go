package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/highscore"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

const (
	defaultDBPath     = "~/.asteroids/history.db"
	defaultScoresPath = "~/.asteroids/highscores.txt"
)

// newLogger returns the CLI logger. It writes to stderr, so it is only used
// before or after the terminal UI runs.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "asteroids",
	})
}

// loadConfig loads the game config and applies the --difficulty preset.
func loadConfig() (config.AsteroidsConfig, error) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return config.AsteroidsConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.LoadAsteroids(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyAsteroidsPreset(&cfg, config.ParsePreset(flagDifficulty))
	return cfg, nil
}

// difficultyLabel names the difficulty recorded with finished games.
func difficultyLabel() string {
	if flagDifficulty == "" {
		return "default"
	}
	return flagDifficulty
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the history database. A failure is logged and the
// game continues without history.
func openStore(logger *log.Logger, path string) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open history database", "path", path, "error", err)
		return nil
	}
	return store
}

// openScores opens the high-score file. Malformed lines are logged and skipped.
func openScores(logger *log.Logger, cfg config.AsteroidsConfig) *highscore.File {
	scores, err := highscore.NewFile(flagScoresPath, cfg.HighScores.MaxEntries, cfg.HighScores.MaxNameLength)
	if err != nil {
		logger.Warn("could not resolve high-score file", "path", flagScoresPath, "error", err)
		return nil
	}
	scores.OnMalformed = func(fe *highscore.FormatError) {
		logger.Warn("skipping malformed high-score line", "path", scores.Path(), "line", fe.Line, "reason", fe.Reason)
	}
	return scores
}

// checkScores reads the high-score file once so problems are logged before
// the terminal UI takes over the screen, then silences further reports.
func checkScores(logger *log.Logger, scores *highscore.File) {
	if scores == nil {
		return
	}
	if _, err := scores.Table(); err != nil {
		logger.Warn("could not read high-score file", "path", scores.Path(), "error", err)
	}
	scores.OnMalformed = nil
}
