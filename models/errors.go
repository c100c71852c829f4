package models

import "errors"

var (
	ErrInvalidDimension = errors.New("invalid board dimension")
	ErrInvalidMineCount = errors.New("invalid mine count")
	ErrCapacityExceeded = errors.New("not enough cells for mines")
	ErrOutOfBounds      = errors.New("cell out of bounds")
)
