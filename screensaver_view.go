// screensaver_view.go - Ebiten run loop: input, tick and redraw

/*
ChromaGrid - a musical RGB grid screensaver

(c) 2025 - 2026 ChromaGrid contributors
https://github.com/chromagrid/chromagrid
License: GPLv3 or later
*/

package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ScreensaverView owns the single-threaded render/update loop. All grid
// and timer state is touched only from ebiten's game loop goroutine, so
// no locking is needed anywhere in the core.
type ScreensaverView struct {
	grid      *GridStore
	scheduler *FillScheduler
	now       func() time.Time // Injectable clock for tests

	outsideW int
	outsideH int
	keyBuf   []ebiten.Key
}

func NewScreensaverView(grid *GridStore, scheduler *FillScheduler) *ScreensaverView {
	return &ScreensaverView{
		grid:      grid,
		scheduler: scheduler,
		now:       time.Now,
	}
}

// Update exits on any input event; otherwise it gives the scheduler a
// clock sample. Ebiten caps this loop at 60 ticks per second.
func (v *ScreensaverView) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	v.keyBuf = inpututil.AppendJustPressedKeys(v.keyBuf[:0])
	if len(v.keyBuf) > 0 {
		return ebiten.Termination
	}

	buttons := []ebiten.MouseButton{
		ebiten.MouseButtonLeft,
		ebiten.MouseButtonMiddle,
		ebiten.MouseButtonRight,
	}
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b) {
			return ebiten.Termination
		}
	}

	v.scheduler.Tick(v.now())
	return nil
}

func (v *ScreensaverView) Draw(screen *ebiten.Image) {
	drawGrid(screen, v.grid)
}

// Layout tracks the outside (monitor or window) size and re-derives the
// grid geometry whenever it changes, preserving cell contents.
func (v *ScreensaverView) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.outsideW || outsideHeight != v.outsideH {
		v.outsideW = outsideWidth
		v.outsideH = outsideHeight
		v.grid.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
