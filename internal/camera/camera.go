// Package camera maps between integer world-cell coordinates and continuous
// screen pixels for a pannable, zoomable viewport over an unbounded plane.
package camera

import (
	"math"

	"github.com/HanzPo/gameoflife/pkg/life"
)

const (
	// MinCellSize and MaxCellSize bound the rendered cell edge in pixels.
	MinCellSize = 10
	MaxCellSize = 42
	// DefaultCellSize is the starting zoom level.
	DefaultCellSize = 20
	// Gap is the fixed spacing between adjacent cells in pixels.
	Gap = 2
	// LeadCells is the overscan margin so cells straddling the viewport edge
	// still render while the camera sits between cell boundaries.
	LeadCells = 1

	// zoomSensitivity shapes the exponential wheel-to-size response.
	zoomSensitivity = 0.002
)

// Camera is the viewport's reference point: an integer world cell plus a
// sub-cell pixel remainder. The pair always describes the same continuous
// position a single float would, but keeping the fraction below one pitch
// avoids precision loss when the camera wanders far from the origin.
type Camera struct {
	Row, Col int // world cell at the viewport's top-left corner

	// OffsetX and OffsetY are the scroll remainders, each in [0, pitch).
	OffsetX, OffsetY float64

	CellSize int
}

// New returns a camera at the origin with the default cell size.
func New() Camera {
	return Camera{CellSize: DefaultCellSize}
}

// Pitch returns the distance between adjacent cell origins in pixels.
func (c Camera) Pitch() float64 {
	return float64(c.CellSize + Gap)
}

// PanByPixels scrolls the view as if the content were dragged by (dx, dy):
// dragging content right or down moves the camera left or up.
func (c *Camera) PanByPixels(dx, dy float64) {
	c.Col, c.OffsetX = carry(c.Col, c.OffsetX-dx, c.Pitch())
	c.Row, c.OffsetY = carry(c.Row, c.OffsetY-dy, c.Pitch())
}

// PanByWheel scrolls the camera in the same direction as the wheel deltas.
func (c *Camera) PanByWheel(dx, dy float64) {
	c.Col, c.OffsetX = carry(c.Col, c.OffsetX+dx, c.Pitch())
	c.Row, c.OffsetY = carry(c.Row, c.OffsetY+dy, c.Pitch())
}

// carry re-derives the whole-cell/remainder split of a pixel total from
// scratch. Each pan recomputes this split instead of integrating floats, so
// arbitrarily long pan sequences cannot drift.
func carry(base int, total, pitch float64) (int, float64) {
	whole := math.Floor(total / pitch)
	rem := total - whole*pitch
	if rem >= pitch {
		// Rounding right at a cell boundary can leave rem == pitch.
		whole++
		rem -= pitch
	}
	if rem < 0 {
		rem = 0
	}
	return base + int(whole), rem
}

// ZoomAt rescales the view with an exponential response to the wheel delta,
// keeping the world coordinate under the anchor pixel fixed on screen. A
// delta too small to change the clamped cell size is a no-op.
func (c *Camera) ZoomAt(anchorX, anchorY, deltaY float64) {
	size := scaledSize(float64(c.CellSize) * math.Exp(-deltaY*zoomSensitivity))
	if size == c.CellSize {
		return
	}

	oldPitch := c.Pitch()
	worldX := float64(c.Col) + (c.OffsetX+anchorX)/oldPitch
	worldY := float64(c.Row) + (c.OffsetY+anchorY)/oldPitch

	c.CellSize = size
	newPitch := c.Pitch()

	// Solve camera' so that camera' + anchor/newPitch == world.
	camX := worldX - anchorX/newPitch
	camY := worldY - anchorY/newPitch
	c.Col = int(math.Floor(camX))
	c.Row = int(math.Floor(camY))
	c.OffsetX = (camX - math.Floor(camX)) * newPitch
	c.OffsetY = (camY - math.Floor(camY)) * newPitch
}

// Reset recenters the camera on the origin at the default cell size.
func (c *Camera) Reset() {
	*c = New()
}

// WorldToScreen returns the top-left pixel of the given world cell. Cells
// outside the viewport yield coordinates outside its pixel bounds.
func (c Camera) WorldToScreen(cell life.Cell) (x, y float64) {
	p := c.Pitch()
	x = float64(cell.Col-c.Col)*p - c.OffsetX
	y = float64(cell.Row-c.Row)*p - c.OffsetY
	return x, y
}

// ScreenToWorld returns the world cell under the given viewport pixel.
func (c Camera) ScreenToWorld(x, y float64) life.Cell {
	p := c.Pitch()
	return life.Cell{
		Row: c.Row + int(math.Floor((y+c.OffsetY)/p)),
		Col: c.Col + int(math.Floor((x+c.OffsetX)/p)),
	}
}

// VisibleRange returns the inclusive world-cell rectangle that can touch a
// viewport of w×h pixels, padded by the overscan margin.
func (c Camera) VisibleRange(w, h int) (top, left, bottom, right int) {
	p := c.Pitch()
	top = c.Row - LeadCells
	left = c.Col - LeadCells
	bottom = c.Row + int(math.Ceil((float64(h)+c.OffsetY)/p)) + LeadCells
	right = c.Col + int(math.Ceil((float64(w)+c.OffsetX)/p)) + LeadCells
	return top, left, bottom, right
}

// scaledSize clamps in float space first so an extreme wheel delta, whose
// exponential overflows, still lands on the right end of the range.
func scaledSize(scaled float64) int {
	switch {
	case scaled >= MaxCellSize:
		return MaxCellSize
	case scaled <= MinCellSize:
		return MinCellSize
	}
	return int(math.Round(scaled))
}
