package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tile-blast/internal/config"
	"github.com/vovakirdan/tile-blast/internal/core"
	"github.com/vovakirdan/tile-blast/internal/games/blast"
	"github.com/vovakirdan/tile-blast/internal/games/blast/levels"
)

// newLogger creates the command logger. The full-screen UI owns the
// terminal, so interactive commands log to ~/.tile-blast/blast.log instead
// of stderr. The returned closer must be called on exit.
func newLogger(toFile bool) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	if toFile {
		w = io.Discard
		if path := config.UserPath("blast.log"); path != "" {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
				f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
				if err == nil {
					w = f
					closeFn = func() { f.Close() }
				}
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blast",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	logger.SetLevel(level)

	return logger, closeFn
}

// levelLoader returns the loader selected by --levels, or nil for the
// built-in levels.
func levelLoader() *levels.Loader {
	if flagLevels == "" {
		return nil
	}
	return levels.NewLoader(flagLevels)
}

// configureGames applies the global flags to game modes created afterwards.
func configureGames(logger *log.Logger) error {
	cfg, source, err := config.LoadBlast(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyBlastPreset(&cfg, preset)
	}
	logger.Debug("config loaded", "source", source)

	blast.SetConfig(cfg)
	blast.SetLevelLoader(levelLoader())
	blast.SetLogger(logger)
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
