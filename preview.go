package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

const (
	maxPreviewScale = 64
	checkerCells    = 4 // icon pixels per checker square
)

var (
	checkerLight = color.RGBA{255, 255, 255, 255}
	checkerDark  = color.RGBA{204, 204, 204, 255}
)

// validPreviewScale reports whether s is an accepted preview magnification.
func validPreviewScale(s int) bool {
	return s >= 1 && s <= maxPreviewScale
}

// newPreviewContext renders img enlarged by scale over a checkerboard so
// transparent pixels stay visible.
func newPreviewContext(img image.Image, scale int) *gg.Context {
	b := img.Bounds()
	w, h := b.Dx()*scale, b.Dy()*scale
	dc := gg.NewContext(w, h)

	dc.SetColor(checkerLight)
	dc.Clear()
	cell := float64(scale * checkerCells)
	dc.SetColor(checkerDark)
	for row := 0; float64(row)*cell < float64(h); row++ {
		for col := row % 2; float64(col)*cell < float64(w); col += 2 {
			dc.DrawRectangle(float64(col)*cell, float64(row)*cell, cell, cell)
		}
	}
	dc.Fill()

	// Nearest-neighbour keeps the hard pixel edges of the cursor. The
	// destination must be RGBA: x/image/draw leaves an NRGBA target blank here.
	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)
	dc.DrawImage(scaled, 0, 0)
	return dc
}

// renderPreview returns the enlarged preview image.
func renderPreview(img image.Image, scale int) image.Image {
	return newPreviewContext(img, scale).Image()
}

// savePreview writes the enlarged preview of img to path as PNG.
func savePreview(path string, img image.Image, scale int) error {
	if !validPreviewScale(scale) {
		return fmt.Errorf("preview scale %d out of range 1-%d", scale, maxPreviewScale)
	}
	if err := gg.SavePNG(path, renderPreview(img, scale)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
