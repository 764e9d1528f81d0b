package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/whack/debugui"
	"github.com/plus3/whack/game"
)

const (
	windowSize = 480
	maxTime    = 1.0
	minTime    = 0.1
)

var keyBindings = []struct {
	ebiten ebiten.Key
	key    game.Key
}{
	{ebiten.KeyArrowUp, game.KeyUp},
	{ebiten.KeyArrowDown, game.KeyDown},
	{ebiten.KeyArrowLeft, game.KeyLeft},
	{ebiten.KeyArrowRight, game.KeyRight},
	{ebiten.KeySpace, game.KeySpace},
	{ebiten.KeyBackspace, game.KeyBackspace},
}

// App adapts the game to the ebiten event loop and layers the debug
// overlay on top.
type App struct {
	game    *game.Manager
	backend *debugui.Backend
	overlay *debugui.Overlay
	timer   *debugui.FrameTimer
}

func (a *App) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.overlay.Toggle()
	}

	a.backend.BeginFrame()

	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.ebiten) {
			a.game.KeyPress(b.key)
		}
	}
	a.game.Update(1.0 / 60.0)

	a.overlay.Render(a.game, a.timer.GetDeltaTime())
	a.backend.EndFrame()

	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(game.ColourBlue)

	for _, s := range a.game.Sprites() {
		r := s.Rect()
		vector.DrawFilledRect(screen, float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3]), s.Colour, false)
	}

	switch a.game.State {
	case game.StateReady:
		ebitenutil.DebugPrintAt(screen, "PRESS SPACE TO START", windowSize/2-60, windowSize/2-40)
	case game.StatePlaying:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE: %d", a.game.Score), 8, 8)
	case game.StateLose:
		msg := fmt.Sprintf("YOU LOSE - SCORE: %d\nPRESS SPACE TO RESTART", a.game.Score)
		ebitenutil.DebugPrintAt(screen, msg, windowSize/2-70, windowSize/2-40)
	}

	a.backend.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	app := &App{
		game: game.NewManager(game.Config{
			WindowSize: windowSize,
			MaxTime:    maxTime,
			MinTime:    minTime,
		}),
		backend: debugui.NewBackend("Whack!", windowSize, windowSize),
		overlay: debugui.NewOverlay(),
		timer:   debugui.NewFrameTimer(),
	}

	log.Println("F1 toggles the debug overlay, Esc or Q quits")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
