//go:build !ebiten

package render

import (
	"github.com/HanzPo/gameoflife/internal/camera"
	"github.com/HanzPo/gameoflife/pkg/life"
)

// CellPainter is a no-op placeholder for headless builds.
type CellPainter struct{}

// NewCellPainter constructs a stub painter.
func NewCellPainter() *CellPainter { return &CellPainter{} }

// Draw is a no-op in headless builds.
func (p *CellPainter) Draw(any, life.Set, camera.Camera, bool) {}
