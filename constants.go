package main

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const windowTitle = "Pong"

// Title sprite size in field units
const (
	titleWidth  = 240
	titleHeight = 72
)

// UI layout constants
const (
	titleTop       = 40.0
	menuTop        = 150.0
	lineHeight     = 24.0
	scoreTop       = 12.0
	swatchSize     = 14.0
	swatchOffsetX  = 90.0
	customizeLeft  = 170.0
	footerFromBase = 36.0
)

// Color constants
var (
	colorText      = colornames.White
	colorHighlight = colornames.Gold
	colorDim       = colornames.Gray
	colorOverlay   = color.RGBA{R: 0, G: 0, B: 0, A: 0xa0}
)
