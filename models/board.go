package models

import (
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "board")

const (
	HiddenGlyph = "#"
	MineGlyph   = "*"
)

type Cell struct {
	NearbyMines int
	IsMine      bool
	IsOpen      bool
}

// String returns the glyph shown for the cell in its current state.
func (c Cell) String() string {
	if !c.IsOpen {
		return HiddenGlyph
	}
	if c.IsMine {
		return MineGlyph
	}
	return strconv.Itoa(c.NearbyMines)
}

// Board is a square minesweeper field. Cells are stored row-major in a
// single slice; use Cell to read one.
type Board struct {
	sideLength int
	mineCount  int
	area       int
	cells      []Cell
	source     IntSource
}

// NewBoard validates the dimensions, then allocates and scatters the grid.
// A nil source falls back to a generator seeded from crypto/rand.
func NewBoard(sideLength, mineCount int, source IntSource) (*Board, error) {
	if err := validateDimensions(sideLength, mineCount); err != nil {
		return nil, err
	}
	if source == nil {
		seed, err := NewSeed()
		if err != nil {
			return nil, err
		}
		source = NewRandSource(seed)
	}

	b := &Board{
		sideLength: sideLength,
		mineCount:  mineCount,
		area:       sideLength * sideLength,
		source:     source,
	}
	b.Init()
	return b, nil
}

func validateDimensions(sideLength, mineCount int) error {
	if sideLength <= 0 {
		return fmt.Errorf("%w: side length %d", ErrInvalidDimension, sideLength)
	}
	// sideLength² must fit in an int
	if sideLength > math.MaxInt/sideLength {
		return fmt.Errorf("%w: side length %d overflows the cell count", ErrInvalidDimension, sideLength)
	}
	if mineCount < 0 {
		return fmt.Errorf("%w: mine count %d", ErrInvalidMineCount, mineCount)
	}
	if mineCount > sideLength*sideLength {
		return fmt.Errorf("%w: %dx%d board can not hold %d mines",
			ErrCapacityExceeded, sideLength, sideLength, mineCount)
	}
	return nil
}

func (b *Board) SideLength() int { return b.sideLength }

func (b *Board) MineCount() int { return b.mineCount }

// Init throws the current grid away and builds a fresh one with a new mine
// layout drawn from the board's source.
func (b *Board) Init() {
	b.cells = make([]Cell, b.area)
	if b.mineCount == 0 {
		return
	}
	draws := b.scatterMines()
	log.WithFields(logrus.Fields{
		"side_length": b.sideLength,
		"mine_count":  b.mineCount,
		"draws":       draws,
	}).Debug("mines scattered")
}

// scatterMines places mineCount mines by drawing a random index over the
// whole grid and rejecting indexes that already hold a mine. It returns the
// number of draws taken, rejected ones included.
func (b *Board) scatterMines() int {
	draws := 0
	for placed := 0; placed < b.mineCount; placed++ {
		index := b.source.Intn(b.area)
		draws++
		for b.cells[index].IsMine {
			index = b.source.Intn(b.area)
			draws++
		}
		b.cells[index].IsMine = true
		b.markNeighbours(index/b.sideLength, index%b.sideLength)
	}
	return draws
}

// markNeighbours bumps NearbyMines on every in-bounds cell around (row, col).
func (b *Board) markNeighbours(row, col int) {
	for deltaRow := -1; deltaRow <= 1; deltaRow++ {
		for deltaCol := -1; deltaCol <= 1; deltaCol++ {
			if deltaRow == 0 && deltaCol == 0 {
				continue
			}
			r, c := row+deltaRow, col+deltaCol
			if b.inBounds(r, c) {
				b.cells[b.index(r, c)].NearbyMines++
			}
		}
	}
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.sideLength && col >= 0 && col < b.sideLength
}

func (b *Board) index(row, col int) int {
	return row*b.sideLength + col
}

func (b *Board) checkBounds(row, col int) error {
	if row < 0 || row >= b.sideLength {
		return fmt.Errorf("%w: row %d not in [0, %d)", ErrOutOfBounds, row, b.sideLength)
	}
	if col < 0 || col >= b.sideLength {
		return fmt.Errorf("%w: column %d not in [0, %d)", ErrOutOfBounds, col, b.sideLength)
	}
	return nil
}

// Cell returns a copy of the cell at (row, col).
func (b *Board) Cell(row, col int) (Cell, error) {
	if err := b.checkBounds(row, col); err != nil {
		return Cell{}, err
	}
	return b.cells[b.index(row, col)], nil
}

// OpenCell marks a single cell as open. Neighbours are left untouched.
func (b *Board) OpenCell(row, col int) error {
	if err := b.checkBounds(row, col); err != nil {
		return err
	}
	b.cells[b.index(row, col)].IsOpen = true
	return nil
}

func (b *Board) OpenAll() {
	for i := range b.cells {
		b.cells[i].IsOpen = true
	}
}

// Render yields one text row per board row, glyphs separated by a space.
// Each call walks the current grid again.
func (b *Board) Render() iter.Seq[string] {
	return func(yield func(string) bool) {
		glyphs := make([]string, b.sideLength)
		for row := 0; row < b.sideLength; row++ {
			for col := range glyphs {
				glyphs[col] = b.cells[b.index(row, col)].String()
			}
			if !yield(strings.Join(glyphs, " ")) {
				return
			}
		}
	}
}

// Show writes the rendered rows to w, one per line.
func (b *Board) Show(w io.Writer) error {
	for row := range b.Render() {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}
