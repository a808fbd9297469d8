package main

import (
	"image"
	"image/color"
)

const gridSize = 32

var (
	arrowBorder = color.NRGBA{0, 0, 0, 255}       // Black
	arrowFill   = color.NRGBA{255, 255, 255, 255} // White
	transparent = color.NRGBA{}                   // Alpha 0
)

// PixelGrid is the fixed 32x32 cursor bitmap. Rows are indexed from the top.
type PixelGrid [gridSize][gridSize]color.NRGBA

func (g *PixelGrid) ColorModel() color.Model { return color.NRGBAModel }

func (g *PixelGrid) Bounds() image.Rectangle { return image.Rect(0, 0, gridSize, gridSize) }

func (g *PixelGrid) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(g.Bounds())) {
		return transparent
	}
	return g[y][x]
}

// drawArrow classifies every pixel of the grid into border, fill or transparent.
func drawArrow() *PixelGrid {
	var g PixelGrid
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			g[y][x] = classifyArrowPixel(x, y)
		}
	}
	return &g
}

// classifyArrowPixel returns the color at (x, y). Border wins over fill.
func classifyArrowPixel(x, y int) color.NRGBA {
	switch {
	case x == 2 && y >= 2 && y <= 26: // left edge
		return arrowBorder
	case x == y && x >= 2 && x <= 18: // diagonal
		return arrowBorder
	case y == 26 && x >= 2 && x <= 8: // bottom
		return arrowBorder
	case x == 8 && y >= 18 && y <= 26: // stem
		return arrowBorder
	}

	// The stem carves a notch out of the lower right of the fill.
	if x > 2 && x < y && x < 18 && !(x >= 8 && y >= 18) {
		return arrowFill
	}
	return transparent
}
