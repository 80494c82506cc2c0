package game

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned by ParseColor for unrecognized input
var ErrInvalidColor = errors.New("invalid color")

// Colors are the host-configurable colors, applied on Start
type Colors struct {
	Paddle     color.RGBA
	Ball       color.RGBA
	Background color.RGBA
}

var (
	colorDivider           = colornames.White
	defaultBackgroundColor = color.RGBA{R: 0x28, G: 0x2c, B: 0x34, A: 0xff}
)

// DefaultColors returns white paddles and ball on a dark background
func DefaultColors() Colors {
	return Colors{
		Paddle:     colornames.White,
		Ball:       colornames.White,
		Background: defaultBackgroundColor,
	}
}

// ParseColor accepts "#rgb", "#rrggbb" or a CSS color name ("white",
// "tomato", ...).
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return color.RGBA{}, fmt.Errorf("%w: empty", ErrInvalidColor)
	}
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[s]
		if !ok {
			return color.RGBA{}, fmt.Errorf("%w: unknown name %q", ErrInvalidColor, s)
		}
		return c, nil
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: %w", ErrInvalidColor, s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// FormatColor renders c as "#rrggbb"
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
