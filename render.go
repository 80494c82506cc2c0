package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// imageCanvas renders match primitives onto an ebiten image
type imageCanvas struct {
	dst *ebiten.Image
}

// ClearAndFill fills the whole image with clr
func (c imageCanvas) ClearAndFill(clr color.Color) {
	c.dst.Fill(clr)
}

// DrawRect draws a filled rectangle
func (c imageCanvas) DrawRect(x, y, width, height float64, clr color.Color) {
	drawRect(c.dst, x, y, width, height, clr)
}

// drawRect draws a filled rectangle
func drawRect(dst *ebiten.Image, x, y, width, height float64, clr color.Color) {
	vector.FillRect(dst, float32(x), float32(y), float32(width), float32(height), clr, false)
}

// drawRectOutline draws an outlined rectangle
func drawRectOutline(dst *ebiten.Image, x, y, width, height float64, clr color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(width), float32(height), 1, clr, false)
}
