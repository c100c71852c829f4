package game

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/dimaq12/minefield/models"
)

type Renderer struct {
	boardTable *tview.Table
}

func NewRenderer() *Renderer {
	return &Renderer{
		boardTable: tview.NewTable(),
	}
}

func (r *Renderer) Table() *tview.Table {
	return r.boardTable
}

// DrawBoard fills the table from rendered board rows and makes every cell
// selectable.
func (r *Renderer) DrawBoard(rows []string) {
	r.DrawRows(rows)
	r.boardTable.SetSelectable(true, true)
}

func (r *Renderer) DrawRows(rows []string) {
	for row, line := range rows {
		for col, glyph := range strings.Fields(line) {
			r.RenderCell(row, col, glyph)
		}
	}
}

func (r *Renderer) RenderCell(row, col int, glyph string) {
	color := tcell.ColorWhite
	switch glyph {
	case models.HiddenGlyph:
		color = tcell.ColorGray
	case models.MineGlyph:
		color = tcell.ColorRed
	case "0":
		color = tcell.ColorDarkGray
	}

	r.boardTable.SetCell(row, col,
		tview.NewTableCell(glyph).SetAlign(tview.AlignCenter).SetTextColor(color))
}
