package main

import (
	"context"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"word-snake/config"
	"word-snake/game"
	"word-snake/game/words"
	"word-snake/ui"
	"word-snake/ui/term"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open log file")
	}
	defer closeLog()
	log.Logger = logger

	bank, err := words.Open(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Debug().Interface("words_by_length", bank.Stats()).Msg("word bank loaded")

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine, err := game.NewEngine(game.Options{
		Speed:  cfg.TickInterval(),
		Bank:   bank,
		Rand:   rand.New(rand.NewSource(seed)),
		Logger: logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}
	log.Info().Str("ui", cfg.UI).Int64("seed", seed).Int("speed_ms", cfg.Speed).Msg("starting word snake")

	switch cfg.UI {
	case config.UITerm:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := term.Run(ctx, engine, term.Options{Autopilot: cfg.Autopilot, Logger: logger}); err != nil {
			log.Error().Err(err).Msg("terminal ui exited")
		}
	default:
		ui.Run(engine, ui.Options{
			Width:     cfg.Width,
			Height:    cfg.Height,
			Autopilot: cfg.Autopilot,
			Logger:    logger,
		})
	}
}

// newLogger writes to LOG_FILE when set. Otherwise the window frontend logs
// to stderr and the terminal frontend, which owns the tty, logs nothing.
func newLogger(cfg config.Config) (zerolog.Logger, func(), error) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	closeFn := func() {}
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, nil, err
		}
		out = f
		closeFn = func() { f.Close() }
	case cfg.UI == config.UITerm:
		out = io.Discard
	}
	return zerolog.New(out).With().Timestamp().Logger(), closeFn, nil
}
