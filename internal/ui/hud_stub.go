//go:build !ebiten

package ui

import "time"

// Stats mirrors the GUI build's HUD snapshot.
type Stats struct {
	Generation int
	Population int
	CellSize   int
	Delay      time.Duration
	Running    bool
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns a stub HUD.
func NewHUD() *HUD { return &HUD{} }

// ToggleHelp is a no-op in headless builds.
func (h *HUD) ToggleHelp() {}

// Draw is a no-op in headless builds.
func (h *HUD) Draw(any, Stats) {}
