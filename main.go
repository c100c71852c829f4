package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minefield/config"
	"github.com/dimaq12/minefield/game"
	"github.com/dimaq12/minefield/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	logger, err := cfg.Logger()
	if err != nil {
		logrus.WithError(err).Fatal("configure logging")
	}

	var source models.IntSource
	if cfg.Seed != 0 {
		source = models.NewRandSource(cfg.Seed)
	}

	sideLength, mineCount := cfg.Dimensions()
	board, err := models.NewBoard(sideLength, mineCount, source)
	if err != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"side_length": sideLength,
			"mine_count":  mineCount,
		}).Fatal("create board")
	}

	if cfg.Dump {
		if cfg.OpenAll {
			board.OpenAll()
		}
		if err := board.Show(os.Stdout); err != nil {
			logger.WithError(err).Fatal("dump board")
		}
		return
	}

	// The inspector owns the terminal until it exits.
	logger.SetOutput(io.Discard)
	controller := game.NewController(game.NewBoardService(board), game.NewRenderer())
	if err := controller.Run(); err != nil {
		logger.SetOutput(os.Stderr)
		logger.WithError(err).Fatal("inspector")
	}
}
