// Package config loads minefield settings from the environment.
package config

import (
	"fmt"
	"math"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Config holds the host settings. Size and Mines are nil unless set, so an
// explicit zero is kept apart from "use the level".
type Config struct {
	Level    int    `env:"LEVEL" envDefault:"1"`
	Size     *int   `env:"SIZE"`
	Mines    *int   `env:"MINES"`
	Seed     int64  `env:"SEED"`
	Dump     bool   `env:"DUMP"`
	OpenAll  bool   `env:"OPEN_ALL"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

const envPrefix = "MINEFIELD_"

// Load reads MINEFIELD_* variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LevelDimensions returns the board preset for a difficulty level, 1
// (10x10, 10 mines) through 5 (30x30, 180 mines). Mine density grows with
// the level. Unknown levels get level 1.
func LevelDimensions(level int) (sideLength, mineCount int) {
	switch level {
	case 2:
		return 15, 40
	case 3:
		return 20, 80
	case 4:
		return 25, 125
	case 5:
		return 30, 180
	default:
		return 10, 10
	}
}

// Dimensions resolves the level preset, then applies explicit overrides.
// A size override without a mine count keeps the level's mine density.
// Values are not validated here; the board does that.
func (c Config) Dimensions() (sideLength, mineCount int) {
	levelSide, levelMines := LevelDimensions(c.Level)
	sideLength, mineCount = levelSide, levelMines
	if c.Size != nil {
		sideLength = *c.Size
		side := float64(sideLength)
		mineCount = int(math.Round(float64(levelMines) * side * side / float64(levelSide*levelSide)))
	}
	if c.Mines != nil {
		mineCount = *c.Mines
	}
	return sideLength, mineCount
}

func (c Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := logrus.StandardLogger()
	logger.SetLevel(level)
	return logger, nil
}
