// Package debugui provides an immediate-mode Dear ImGui overlay for
// inspecting a running game. Panels must render between the backend's
// BeginFrame and EndFrame calls each update tick.
package debugui

import "github.com/plus3/whack/game"

// Overlay owns the debug panels and renders them while visible.
type Overlay struct {
	Visible   bool
	inspector GameInspectorPanel
	stats     PerformanceStatsPanel
}

// NewOverlay creates a hidden overlay with two seconds of frame history.
func NewOverlay() *Overlay {
	return &Overlay{
		stats: NewPerformanceStatsPanel(120),
	}
}

// Toggle flips overlay visibility.
func (o *Overlay) Toggle() {
	o.Visible = !o.Visible
}

// Render draws all panels for the current frame.
func (o *Overlay) Render(m *game.Manager, deltaTime float32) {
	if !o.Visible {
		return
	}
	o.inspector.Render(m)
	o.stats.Render(deltaTime)
}
