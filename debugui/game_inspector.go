package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/whack/game"
)

// GameInspectorPanel renders the live state of a game: state machine
// phase, score, spawn timing and a 3x3 view of the board occupancy.
type GameInspectorPanel struct{}

func (p *GameInspectorPanel) Render(m *game.Manager) {
	if !imgui.BeginV("Game Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("State: %s", m.State))
	imgui.Text(fmt.Sprintf("Score: %d", m.Score))
	imgui.Text(fmt.Sprintf("Tile Timer: %.3fs", m.TileTimer))
	imgui.Text(fmt.Sprintf("Spawn Interval: %.3fs", m.SpawnInterval()))

	rect := m.Cursor.Rect()
	imgui.Text(fmt.Sprintf("Cursor: (%.1f, %.1f) %.1fx%.1f", rect[0], rect[1], rect[2], rect[3]))

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Free Slots: %d", len(m.Board.FreePositions())))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("BoardTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		for i := 0; i < game.BoardSlots; i++ {
			if i%3 == 0 {
				imgui.TableNextRow()
			}
			imgui.TableNextColumn()
			if tile, ok := m.Board.TileAt(i); ok {
				imgui.Text(fmt.Sprintf("%d: %.0f,%.0f", i, tile.Pos.X, tile.Pos.Y))
			} else {
				imgui.Text(fmt.Sprintf("%d: free", i))
			}
		}
		imgui.EndTable()
	}

	imgui.End()
}
