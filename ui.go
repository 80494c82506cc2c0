package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"pong/game"
	"pong/menu"
)

func newFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// drawText draws s with its top edge at y, aligned around x
func (a *App) drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(dst, s, a.face, op)
}

func (a *App) centerX(dst *ebiten.Image) float64 {
	return float64(dst.Bounds().Dx()) / 2
}

func (a *App) drawFooter(dst *ebiten.Image, s string) {
	y := float64(dst.Bounds().Dy()) - footerFromBase
	a.drawText(dst, s, a.centerX(dst), y, colorDim, text.AlignCenter)
}

// drawMain draws the title and the main menu entries
func (a *App) drawMain(dst *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(a.centerX(dst)-titleWidth/2, titleTop)
	dst.DrawImage(a.title, op)

	for i, item := range menu.MainItems {
		clr, label := color.Color(colorText), item.Label
		if i == a.menu.Cursor() {
			clr, label = colorHighlight, "> "+label+" <"
		}
		a.drawText(dst, label, a.centerX(dst), menuTop+float64(i)*lineHeight, clr, text.AlignCenter)
	}
	a.drawFooter(dst, "Enter: select   1/2: quick start   Q: quit")
}

func (a *App) drawInstructions(dst *ebiten.Image) {
	for i, line := range menu.Instructions {
		a.drawText(dst, line, a.centerX(dst), menuTop+float64(i)*lineHeight, colorText, text.AlignCenter)
	}
	a.drawFooter(dst, "Esc: back")
}

// drawCustomize draws each color field with a swatch of its current value
func (a *App) drawCustomize(dst *ebiten.Image) {
	custom := a.menu.Customization()
	a.drawText(dst, "Customize", a.centerX(dst), menuTop-2*lineHeight, colorText, text.AlignCenter)

	for i, f := range []menu.Field{menu.FieldPaddle, menu.FieldBall, menu.FieldBackground} {
		y := menuTop + float64(i)*lineHeight
		clr, name := custom.Value(f)

		labelColor := color.Color(colorText)
		if f == custom.Selected() {
			labelColor = colorHighlight
		}
		a.drawText(dst, f.String(), customizeLeft, y, labelColor, text.AlignStart)

		sx := customizeLeft + swatchOffsetX
		drawRect(dst, sx, y, swatchSize, swatchSize, clr)
		drawRectOutline(dst, sx, y, swatchSize, swatchSize, colorText)
		a.drawText(dst, "< "+name+" >", sx+swatchSize+8, y, labelColor, text.AlignStart)
	}
	a.drawFooter(dst, "Up/Down: field   Left/Right: color   Esc: back")
}

func (a *App) drawScore(dst *ebiten.Image) {
	a.drawText(dst, a.menu.Match().ScoreText(), a.centerX(dst), scoreTop, colorText, text.AlignCenter)
}

// drawPause dims the frozen field and shows the pause options
func (a *App) drawPause(dst *ebiten.Image) {
	b := dst.Bounds()
	drawRect(dst, 0, 0, float64(b.Dx()), float64(b.Dy()), colorOverlay)

	y := float64(b.Dy())/2 - lineHeight
	a.drawText(dst, "Paused", a.centerX(dst), y, colorHighlight, text.AlignCenter)
	a.drawText(dst, "Enter/Esc: resume   Q: main menu", a.centerX(dst), y+lineHeight, colorText, text.AlignCenter)
}

func (a *App) drawDebug(dst *ebiten.Image) {
	if a.menu.Screen() == menu.ScreenPlaying {
		a.drawPredictedPath(dst)
	}
	frames, ticks := a.scheduler.Stats()
	ebitenutil.DebugPrint(dst, game.DebugText(a.menu.Match().Snapshot(), ebiten.ActualTPS(), frames, ticks))
}
