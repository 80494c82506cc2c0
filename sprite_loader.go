package main

import (
	"bytes"
	_ "embed"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/title.svg
var titleSVGData []byte

// loadTitle rasterizes the menu title sprite
func loadTitle() (*ebiten.Image, error) {
	img, err := svgToImage(titleSVGData, titleWidth, titleHeight)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// svgToImage rasterizes SVG data at the given size
func svgToImage(svgData []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
