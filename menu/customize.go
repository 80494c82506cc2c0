package menu

import (
	"image/color"

	"golang.org/x/image/colornames"

	"pong/game"
)

// Swatch is a named palette entry
type Swatch struct {
	Name  string
	Color color.RGBA
}

// Palette is the list of colors the customization screen cycles through
var Palette = []Swatch{
	{"white", colornames.White},
	{"black", colornames.Black},
	{"charcoal", color.RGBA{R: 0x28, G: 0x2c, B: 0x34, A: 0xff}},
	{"tomato", colornames.Tomato},
	{"gold", colornames.Gold},
	{"lime", colornames.Lime},
	{"deepskyblue", colornames.Deepskyblue},
	{"orchid", colornames.Orchid},
	{"midnightblue", colornames.Midnightblue},
	{"darkslategray", colornames.Darkslategray},
}

// Field is one customizable color
type Field int

const (
	FieldPaddle Field = iota
	FieldBall
	FieldBackground
	fieldCount
)

func (f Field) String() string {
	switch f {
	case FieldPaddle:
		return "Paddle"
	case FieldBall:
		return "Ball"
	case FieldBackground:
		return "Background"
	}
	return "?"
}

// Customization holds the colors that the next Start will apply
type Customization struct {
	colors   game.Colors
	selected Field
}

// NewCustomization starts from the given colors
func NewCustomization(colors game.Colors) *Customization {
	return &Customization{colors: colors}
}

// Colors returns the pending colors
func (c *Customization) Colors() game.Colors {
	return c.colors
}

// Selected returns the field being edited
func (c *Customization) Selected() Field {
	return c.selected
}

// Select moves the selection by delta, wrapping around
func (c *Customization) Select(delta int) {
	c.selected = Field(wrap(int(c.selected)+delta, int(fieldCount)))
}

// Cycle moves the selected field's color by delta through the palette. A
// color that is not in the palette jumps to the first entry.
func (c *Customization) Cycle(delta int) {
	ptr := c.field(c.selected)
	i := paletteIndex(*ptr)
	if i < 0 {
		*ptr = Palette[0].Color
		return
	}
	*ptr = Palette[wrap(i+delta, len(Palette))].Color
}

// Value returns the color of f and its palette name, or its hex form when
// it is not a palette color
func (c *Customization) Value(f Field) (color.RGBA, string) {
	clr := *c.field(f)
	if i := paletteIndex(clr); i >= 0 {
		return clr, Palette[i].Name
	}
	return clr, game.FormatColor(clr)
}

func (c *Customization) field(f Field) *color.RGBA {
	switch f {
	case FieldBall:
		return &c.colors.Ball
	case FieldBackground:
		return &c.colors.Background
	}
	return &c.colors.Paddle
}

func paletteIndex(clr color.RGBA) int {
	for i, s := range Palette {
		if s.Color == clr {
			return i
		}
	}
	return -1
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
