//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Stats is the snapshot of simulation state the HUD renders each frame.
type Stats struct {
	Generation int
	Population int
	CellSize   int
	Delay      time.Duration
	Running    bool
}

// HUD draws the status line and the key help panel over the board.
type HUD struct {
	pixel    *ebiten.Image
	showHelp bool
}

// NewHUD constructs a HUD with the help panel hidden.
func NewHUD() *HUD {
	h := &HUD{}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// ToggleHelp flips the help panel.
func (h *HUD) ToggleHelp() {
	h.showHelp = !h.showHelp
}

var helpLines = []string{
	"space  play / pause",
	"n      step one generation",
	"r      reset to seed",
	"c      clear board",
	"click  toggle cell (while paused)",
	"drag   pan    wheel  scroll    ctrl+wheel  zoom",
	"up/dn  faster / slower",
	"v      reset view",
	"g      gridlines",
	"s      print share token",
	"e      export board",
	"1-8    insert preset",
	"h      toggle this help",
	"q/esc  quit",
}

// Draw paints the status line at the top-left and, when toggled, the help
// panel beneath it.
func (h *HUD) Draw(screen *ebiten.Image, stats Stats) {
	face := basicfont.Face7x13

	state := "paused"
	if stats.Running {
		state = "running"
	}
	status := fmt.Sprintf("gen %d   pop %d   %dms   cell %dpx   %s",
		stats.Generation, stats.Population, stats.Delay/time.Millisecond, stats.CellSize, state)

	h.fillRect(screen, 0, 0, float64(7*len(status)+16), 22, color.RGBA{A: 180})
	text.Draw(screen, status, face, 8, 15, color.RGBA{R: 220, G: 220, B: 230, A: 255})

	if !h.showHelp {
		return
	}
	const lineHeight = 16
	width := 0
	for _, line := range helpLines {
		if w := 7 * len(line); w > width {
			width = w
		}
	}
	h.fillRect(screen, 0, 26, float64(width+16), float64(len(helpLines)*lineHeight+12), color.RGBA{A: 180})
	for i, line := range helpLines {
		text.Draw(screen, line, face, 8, 40+i*lineHeight, color.RGBA{R: 180, G: 185, B: 195, A: 255})
	}
}

func (h *HUD) fillRect(dst *ebiten.Image, x, y, w, hgt float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, hgt)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	dst.DrawImage(h.pixel, op)
}
