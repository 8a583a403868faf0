// presentation.go - Grid to pixels: cell rectangles and colour labels

/*
ChromaGrid - a musical RGB grid screensaver

(c) 2025 - 2026 ChromaGrid contributors
https://github.com/chromagrid/chromagrid
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	unsetCellFill   = color.RGBA{0x0a, 0x0a, 0x0a, 0xff}
	unsetCellBorder = color.RGBA{0x1a, 0x1a, 0x1a, 0xff}
)

// Label face scales applied to basicfont.Face7x13
const (
	LABEL_SCALE_LARGE  = 1.0 // Decimal R,G,B labels
	LABEL_SCALE_MEDIUM = 0.8 // Hex labels
)

// labelTextColor picks black or white for legibility over a cell colour.
func labelTextColor(c CellColor) color.RGBA {
	brightness := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
	if brightness > BRIGHTNESS_PIVOT {
		return color.RGBA{0x00, 0x00, 0x00, 0xff}
	}
	return color.RGBA{0xff, 0xff, 0xff, 0xff}
}

// cellLabel chooses the label text and face scale for a cell size.
// Large cells show the decimal triple, medium cells the uppercase hex
// code, small cells nothing.
func cellLabel(c CellColor, cellSize float64) (string, float64) {
	switch {
	case cellSize > TEXT_RGB_CELL:
		return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B), LABEL_SCALE_LARGE
	case cellSize > TEXT_HEX_CELL:
		return strings.ToUpper(c.Hex()), LABEL_SCALE_MEDIUM
	default:
		return "", 0
	}
}

// drawGrid renders the full cell sequence onto the screen: unset cells
// as dark bordered squares, set cells as filled squares with a centred
// label when the cell is large enough to carry one.
func drawGrid(screen *ebiten.Image, grid *GridStore) {
	screen.Fill(color.Black)

	size := grid.CellSize()
	cols := grid.Cols()
	for i, cell := range grid.Cells() {
		x := float64(i%cols) * (size + GRID_GAP)
		y := float64(i/cols) * (size + GRID_GAP)

		if cell == nil {
			ebitenutil.DrawRect(screen, x, y, size, size, unsetCellFill)
			drawCellBorder(screen, x, y, size, unsetCellBorder)
			continue
		}

		fill := color.RGBA{cell.R, cell.G, cell.B, 0xff}
		ebitenutil.DrawRect(screen, x, y, size, size, fill)

		if size > TEXT_MIN_CELL {
			if label, scale := cellLabel(*cell, size); label != "" {
				drawCellLabel(screen, label, scale, x+size/2, y+size/2, labelTextColor(*cell))
			}
		}
	}
}

// drawCellBorder outlines a cell with four 1px edges.
func drawCellBorder(screen *ebiten.Image, x, y, size float64, clr color.Color) {
	ebitenutil.DrawRect(screen, x, y, size, 1, clr)
	ebitenutil.DrawRect(screen, x, y+size-1, size, 1, clr)
	ebitenutil.DrawRect(screen, x, y, 1, size, clr)
	ebitenutil.DrawRect(screen, x+size-1, y, 1, size, clr)
}

// drawCellLabel centres a scaled label on (cx, cy).
func drawCellLabel(screen *ebiten.Image, label string, scale, cx, cy float64, clr color.RGBA) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	w := float64(bounds.Dx()) * scale
	h := float64(bounds.Dy()) * scale

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(cx-w/2, cy+h/2)
	opts.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, label, face, opts)
}
