// Package config loads runtime settings from an optional .env file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"word-snake/game/types"
)

const (
	UIWindow = "window"
	UITerm   = "term"
)

type Config struct {
	UI        string
	Speed     int // milliseconds per tick
	WordsFile string
	Seed      int64
	Autopilot bool
	LogLevel  string
	LogFile   string
	Width     int
	Height    int
}

// Load reads .env (if present), then the environment, then parses args.
func Load(args []string) (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		UI:        getEnv("WORDSNAKE_UI", UIWindow),
		WordsFile: getEnv("WORDS_FILE", ""),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFile:   getEnv("LOG_FILE", ""),
		Width:     1280,
		Height:    800,
	}

	var err error
	if cfg.Speed, err = getEnvInt("WORDSNAKE_SPEED", int(types.InitialSpeed/time.Millisecond)); err != nil {
		return Config{}, err
	}
	seed, err := getEnvInt("WORDSNAKE_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.Seed = int64(seed)

	fs := flag.NewFlagSet("word-snake", flag.ContinueOnError)
	fs.StringVar(&cfg.UI, "ui", cfg.UI, "Frontend: window or term")
	fs.IntVar(&cfg.Speed, "speed", cfg.Speed, "Tick interval in milliseconds (lower = faster)")
	fs.StringVar(&cfg.WordsFile, "words", cfg.WordsFile, "Word list file, one word per line (default: built-in list)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = time based)")
	fs.BoolVar(&cfg.Autopilot, "autopilot", cfg.Autopilot, "Let the computer steer")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: trace, debug, info, warn, error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file instead of stderr")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Window width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Window height")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the values Load cannot catch while parsing.
func (c Config) Validate() error {
	if c.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %d", c.Speed)
	}
	switch c.UI {
	case UIWindow, UITerm:
	default:
		return fmt.Errorf("unknown ui %q (want %s or %s)", c.UI, UIWindow, UITerm)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}

// TickInterval is Speed as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Speed) * time.Millisecond
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}
