// grid_store.go - FIFO colour grid backing the screensaver display

/*
ChromaGrid - a musical RGB grid screensaver

(c) 2025 - 2026 ChromaGrid contributors
https://github.com/chromagrid/chromagrid
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"math"
	"math/rand"
)

// CellColor is one RGB triple. Cells are written once by Advance and only
// move as a whole during eviction shifts and resize copies.
type CellColor struct {
	R, G, B uint8
}

func (c CellColor) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// GridStore holds rows*cols optional cells in row-major order plus a write
// cursor. While the grid is filling, new colours land at the cursor. Once
// cursor == capacity every further write shifts all cells one slot left,
// discarding the oldest, and appends at the end.
type GridStore struct {
	cols     int
	rows     int
	cellSize float64 // actual square cell edge in pixels
	cells    []*CellColor
	cursor   int
}

// NewGridStore creates a grid sized for the given display dimensions.
func NewGridStore(pixelWidth, pixelHeight int) *GridStore {
	g := &GridStore{}
	g.Resize(pixelWidth, pixelHeight)
	return g
}

// Resize re-derives cols, rows and cell size for new display dimensions.
// Existing cells are preserved by index up to the smaller capacity and the
// cursor is clamped to the new capacity. Degenerate dimensions still yield
// at least the minimum 10x10 grid.
func (g *GridStore) Resize(pixelWidth, pixelHeight int) {
	width := float64(pixelWidth)
	height := float64(pixelHeight)

	target := math.Max(MIN_CELL_SIZE, math.Min(width, height)/CELL_SIZE_DIVISOR)

	cols := int((width + GRID_GAP) / (target + GRID_GAP))
	rows := int((height + GRID_GAP) / (target + GRID_GAP))
	if cols < MIN_GRID_COLS {
		cols = MIN_GRID_COLS
	}
	if rows < MIN_GRID_ROWS {
		rows = MIN_GRID_ROWS
	}

	// Recompute the edge so the cells exactly fill the shorter axis.
	cellWidth := (width - float64(cols-1)*GRID_GAP) / float64(cols)
	cellHeight := (height - float64(rows-1)*GRID_GAP) / float64(rows)
	g.cols = cols
	g.rows = rows
	g.cellSize = math.Min(cellWidth, cellHeight)
	if g.cellSize < 1 {
		g.cellSize = 1
	}

	total := cols * rows
	if len(g.cells) != total {
		old := g.cells
		g.cells = make([]*CellColor, total)
		copy(g.cells, old)
		if g.cursor > total {
			g.cursor = total
		}
	}
}

// Advance writes one new colour from colorFn and returns it. The returned
// colour feeds the pitch mapping and tone playback downstream.
func (g *GridStore) Advance(colorFn func() CellColor) CellColor {
	c := colorFn()
	if g.cursor >= len(g.cells) {
		copy(g.cells, g.cells[1:])
		g.cells[len(g.cells)-1] = &c
	} else {
		g.cells[g.cursor] = &c
		g.cursor++
	}
	return c
}

func (g *GridStore) Cols() int         { return g.cols }
func (g *GridStore) Rows() int         { return g.rows }
func (g *GridStore) CellSize() float64 { return g.cellSize }
func (g *GridStore) Capacity() int     { return len(g.cells) }
func (g *GridStore) Cursor() int       { return g.cursor }

// CellAt returns the cell at a row-major index, nil while unset.
func (g *GridStore) CellAt(index int) *CellColor {
	if index < 0 || index >= len(g.cells) {
		return nil
	}
	return g.cells[index]
}

// Cells exposes the full row-major sequence for presentation.
func (g *GridStore) Cells() []*CellColor {
	return g.cells
}

// UniformColor returns a colour source drawing each channel independently
// uniform over [0,255]. The rand source is injected so tests and the -seed
// flag can make the stream deterministic.
func UniformColor(rng *rand.Rand) func() CellColor {
	return func() CellColor {
		return CellColor{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
		}
	}
}
