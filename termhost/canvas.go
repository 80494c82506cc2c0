// Package termhost runs a match inside a terminal using tcell. The field is
// scaled onto the character grid below a one-line status row.
package termhost

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// statusRows is the number of rows above the field used for the score
const statusRows = 1

// Canvas maps field coordinates onto terminal cells. A rect fills every
// cell it touches, so thin shapes like the divider still show up.
type Canvas struct {
	screen      tcell.Screen
	fieldWidth  float64
	fieldHeight float64
}

// NewCanvas creates a canvas for a field of the given size
func NewCanvas(screen tcell.Screen, fieldWidth, fieldHeight float64) *Canvas {
	return &Canvas{
		screen:      screen,
		fieldWidth:  fieldWidth,
		fieldHeight: fieldHeight,
	}
}

// grid returns the field area in cells
func (c *Canvas) grid() (cols, rows int) {
	w, h := c.screen.Size()
	return w, max(h-statusRows, 0)
}

// ClearAndFill paints the whole screen with clr
func (c *Canvas) ClearAndFill(clr color.Color) {
	c.screen.Fill(' ', tcell.StyleDefault.Background(tcell.FromImageColor(clr)))
}

// DrawRect fills the cells covered by the rect
func (c *Canvas) DrawRect(x, y, w, h float64, clr color.Color) {
	x0, y0, x1, y1, ok := c.CellRect(x, y, w, h)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Background(tcell.FromImageColor(clr))
	for row := y0; row <= y1; row++ {
		for col := x0; col <= x1; col++ {
			c.screen.SetContent(col, row+statusRows, ' ', nil, style)
		}
	}
}

// CellRect converts a field rect to an inclusive cell range within the
// field area. ok is false when nothing is visible.
func (c *Canvas) CellRect(x, y, w, h float64) (x0, y0, x1, y1 int, ok bool) {
	cols, rows := c.grid()
	if cols == 0 || rows == 0 || w <= 0 || h <= 0 {
		return 0, 0, 0, 0, false
	}
	sx := c.fieldWidth / float64(cols)
	sy := c.fieldHeight / float64(rows)

	x0 = int(math.Floor(x / sx))
	y0 = int(math.Floor(y / sy))
	x1 = int(math.Ceil((x+w)/sx)) - 1
	y1 = int(math.Ceil((y+h)/sy)) - 1

	x0, x1 = max(x0, 0), min(x1, cols-1)
	y0, y1 = max(y0, 0), min(y1, rows-1)
	if x0 > x1 || y0 > y1 {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1, y1, true
}
