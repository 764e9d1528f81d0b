package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// Backend wraps the Ebiten-specific Dear ImGui backend implementation.
// Call BeginFrame before rendering panels and EndFrame after; Draw goes in
// the ebiten draw callback so the overlay paints above the game.
type Backend struct {
	*ebitenbackend.EbitenBackend
}

// NewBackend creates the ImGui backend and its window.
func NewBackend(title string, width, height int) *Backend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("") // no imgui.ini next to the binary
	return &Backend{EbitenBackend: b}
}
