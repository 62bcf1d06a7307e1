//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/HanzPo/gameoflife/internal/camera"
	"github.com/HanzPo/gameoflife/pkg/life"
)

// CellPainter draws the visible slice of a live set through a camera. A
// single white pixel image is scaled and tinted per rectangle.
type CellPainter struct {
	pixel *ebiten.Image

	background color.RGBA
	cellColor  color.RGBA
	gridColor  color.RGBA
}

// NewCellPainter allocates a painter with the default palette.
func NewCellPainter() *CellPainter {
	p := &CellPainter{
		background: color.RGBA{R: 18, G: 18, B: 22, A: 255},
		cellColor:  color.RGBA{R: 235, G: 235, B: 240, A: 255},
		gridColor:  color.RGBA{R: 42, G: 44, B: 52, A: 255},
	}
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	return p
}

// Draw paints the background, optional gridlines, and every live cell that
// intersects the dst viewport.
func (p *CellPainter) Draw(dst *ebiten.Image, cells life.Set, cam camera.Camera, showGrid bool) {
	dst.Fill(p.background)

	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()

	if showGrid {
		p.drawGrid(dst, cam, w, h)
	}

	size := float64(cam.CellSize)
	for c := range cells {
		x, y := cam.WorldToScreen(c)
		if x+size < 0 || y+size < 0 || x > float64(w) || y > float64(h) {
			continue
		}
		p.fillRect(dst, x, y, size, size, p.cellColor)
	}
}

// drawGrid paints one line per visible cell boundary, sitting in the gap
// between cells.
func (p *CellPainter) drawGrid(dst *ebiten.Image, cam camera.Camera, w, h int) {
	top, left, bottom, right := cam.VisibleRange(w, h)
	for col := left; col <= right; col++ {
		x, _ := cam.WorldToScreen(life.Cell{Row: cam.Row, Col: col})
		p.fillRect(dst, x-camera.Gap, 0, camera.Gap, float64(h), p.gridColor)
	}
	for row := top; row <= bottom; row++ {
		_, y := cam.WorldToScreen(life.Cell{Row: row, Col: cam.Col})
		p.fillRect(dst, 0, y-camera.Gap, float64(w), camera.Gap, p.gridColor)
	}
}

func (p *CellPainter) fillRect(dst *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	dst.DrawImage(p.pixel, op)
}
