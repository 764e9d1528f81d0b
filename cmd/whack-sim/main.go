package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/plus3/whack/game"
)

func main() {
	games := flag.Int("games", 100, "The number of games to simulate.")
	seed := flag.Uint64("seed", 1, "The base RNG seed; game n runs with seed+n.")
	maxTime := flag.Float64("max-time", 1.0, "The slowest tile spawn interval in seconds.")
	minTime := flag.Float64("min-time", 0.1, "The fastest tile spawn interval in seconds.")
	dt := flag.Float64("dt", 1.0/60.0, "The simulated frame time in seconds.")
	maxFrames := flag.Int("max-frames", 100000, "The frame cap per game before giving up.")
	flag.Parse()

	log.Printf("Simulating %d games...\n", *games)

	report := &Report{
		Games:     *games,
		Dt:        *dt,
		MaxFrames: *maxFrames,
	}

	start := time.Now()
	for i := 0; i < *games; i++ {
		cfg := game.Config{
			WindowSize: 300,
			MaxTime:    *maxTime,
			MinTime:    *minTime,
			Seed:       *seed + uint64(i),
		}
		report.Add(runGame(cfg, *dt, *maxFrames))
	}
	report.WallTime = time.Since(start)
	report.Finalize()

	if err := report.Render(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// runGame plays one headless game with the bot until it loses or the
// frame cap is reached.
func runGame(cfg game.Config, dt float64, maxFrames int) GameResult {
	m := game.NewManager(cfg)
	m.KeyPress(game.KeySpace)

	frames := 0
	for m.State == game.StatePlaying && frames < maxFrames {
		botStep(m)
		m.Update(dt)
		frames++
	}

	return GameResult{
		Score:  m.Score,
		Frames: frames,
		Lost:   m.State == game.StateLose,
	}
}

// botStep issues at most one key press per frame: walk the cursor toward
// the lowest-index tile, then whack once over it. Cursor and tile centres
// share the same cell-sized lattice, so a half-cell tolerance puts the
// cursor inside exactly one cell.
func botStep(m *game.Manager) {
	target := -1
	var tile game.Sprite
	for i := 0; i < game.BoardSlots; i++ {
		if t, ok := m.Board.TileAt(i); ok {
			target, tile = i, t
			break
		}
	}
	if target < 0 {
		return
	}

	step := m.Board.TileLength()
	cx := m.Cursor.Pos.X + 0.5*m.Cursor.Width
	cy := m.Cursor.Pos.Y + 0.5*m.Cursor.Height
	tx := tile.Pos.X + 0.5*tile.Width
	ty := tile.Pos.Y + 0.5*tile.Height

	switch {
	case cx < tx-0.5*step:
		m.KeyPress(game.KeyRight)
	case cx > tx+0.5*step:
		m.KeyPress(game.KeyLeft)
	case cy < ty-0.5*step:
		m.KeyPress(game.KeyDown)
	case cy > ty+0.5*step:
		m.KeyPress(game.KeyUp)
	default:
		m.KeyPress(game.KeySpace)
	}
}
