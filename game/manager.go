package game

import (
	"fmt"
	"math/rand/v2"
)

// State identifies the phase of the game state machine.
type State int

const (
	StateReady State = iota
	StatePlaying
	StateLose
)

// String returns the state name for logs and the debug overlay.
func (s State) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StateLose:
		return "Lose"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Key is the logical key contract between a front-end and the manager.
// Front-ends translate their own key codes into these before dispatching.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyBackspace
)

// Config carries the startup parameters for a game instance.
type Config struct {
	// WindowSize is the side length of the square play field in pixels.
	WindowSize float64
	// MaxTime and MinTime bound the tile spawn interval in seconds. The
	// interval ramps linearly from MaxTime toward MinTime as the score
	// approaches 100.
	MaxTime float64
	MinTime float64
	// Placement selects the tile coordinate convention.
	Placement Placement
	// Seed initialises the tile placement RNG. Zero means a random seed.
	Seed uint64
}

// Manager owns the board and cursor and drives the Ready/Playing/Lose
// state machine. An external event loop feeds it update ticks and key
// presses and reads back the sprite list each render tick.
type Manager struct {
	Board  *Board
	Cursor Sprite
	State  State
	Score  uint32

	MaxTime   float64
	MinTime   float64
	TileTimer float64
}

// NewManager creates a manager in the Ready state with an empty board and
// the cursor centred on the window.
func NewManager(cfg Config) *Manager {
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}
	cursorSize := cfg.WindowSize / 16
	return &Manager{
		Board: NewBoard(cfg.WindowSize, cfg.Placement, rng),
		Cursor: NewSprite(
			cfg.WindowSize/2-0.5*cursorSize,
			cfg.WindowSize/2-0.5*cursorSize,
			cursorSize,
			cursorSize,
			ColourYellow,
		),
		State:   StateReady,
		MaxTime: cfg.MaxTime,
		MinTime: cfg.MinTime,
	}
}

// Reset restores the board, cursor, state, score and timer to their
// initial values in place.
func (m *Manager) Reset() {
	m.Board.Clear()
	m.Cursor.Pos = Vec2{
		X: m.Board.Length()/2 - 0.5*m.Cursor.Width,
		Y: m.Board.Length()/2 - 0.5*m.Cursor.Height,
	}
	m.State = StateReady
	m.Score = 0
	m.TileTimer = 0
}

// Update advances the game by dt seconds of elapsed frame time. Only the
// Playing state has per-tick behaviour.
func (m *Manager) Update(dt float64) {
	switch m.State {
	case StatePlaying:
		m.playingUpdate(dt)
	case StateReady, StateLose:
	}
}

func (m *Manager) playingUpdate(dt float64) {
	m.TileTimer -= dt
	if m.TileTimer < 0 {
		m.TileTimer = m.SpawnInterval()
		m.Board.AddTile()
	}
	if m.Board.IsFull() {
		m.State = StateLose
	}
}

// SpawnInterval returns the current delay between tile spawns: a linear
// ramp from MaxTime down to MinTime as the score approaches 100, clamped
// to MinTime from there on.
func (m *Manager) SpawnInterval() float64 {
	if m.Score >= 100 {
		return m.MinTime
	}
	return m.MaxTime - (m.MaxTime-m.MinTime)*(float64(m.Score)/100)
}

// KeyPress dispatches a key press to the handler for the current state.
func (m *Manager) KeyPress(key Key) {
	switch m.State {
	case StateReady:
		m.readyKeyPress(key)
	case StatePlaying:
		m.playingKeyPress(key)
	case StateLose:
		m.loseKeyPress(key)
	}
}

func (m *Manager) readyKeyPress(key Key) {
	switch key {
	case KeySpace:
		m.State = StatePlaying
	case KeyUp, KeyDown, KeyLeft, KeyRight, KeyBackspace, KeyOther:
	}
}

func (m *Manager) playingKeyPress(key Key) {
	moveDist := m.Board.TileLength()
	switch key {
	case KeyUp:
		m.Cursor.Pos.Add(Vec2{Y: -moveDist})
	case KeyDown:
		m.Cursor.Pos.Add(Vec2{Y: moveDist})
	case KeyLeft:
		m.Cursor.Pos.Add(Vec2{X: -moveDist})
	case KeyRight:
		m.Cursor.Pos.Add(Vec2{X: moveDist})
	case KeySpace:
		m.whack()
	case KeyBackspace, KeyOther:
	}
}

func (m *Manager) loseKeyPress(key Key) {
	switch key {
	case KeySpace:
		m.Reset()
	case KeyUp, KeyDown, KeyLeft, KeyRight, KeyBackspace, KeyOther:
	}
}

// whack removes the tile under the cursor, if any, and scores it. Cell-
// sized cursor movement keeps the cursor inside a single cell, so more
// than one overlapping tile means the board state is corrupt.
func (m *Manager) whack() {
	hits := make([]int, 0, 1)
	for i := 0; i < BoardSlots; i++ {
		if tile, ok := m.Board.TileAt(i); ok && m.Cursor.Overlaps(tile) {
			hits = append(hits, i)
		}
	}
	if len(hits) == 0 {
		return
	}
	if len(hits) > 1 {
		panic(fmt.Sprintf("game: cursor overlaps %d tiles, board state corrupt", len(hits)))
	}
	m.Board.tiles[hits[0]] = nil
	m.Score++
}

// Sprites returns everything to draw this frame: occupied tiles in slot
// order, then the cursor, so the cursor paints on top.
func (m *Manager) Sprites() []Sprite {
	sprites := make([]Sprite, 0, BoardSlots+1)
	for _, t := range m.Board.tiles {
		if t != nil {
			sprites = append(sprites, *t)
		}
	}
	return append(sprites, m.Cursor)
}

// Equal reports whether two managers have the same observable game state:
// board, cursor, state machine phase, score, spawn bound and timer.
func (m *Manager) Equal(other *Manager) bool {
	return m.Board.Equal(other.Board) &&
		m.Cursor == other.Cursor &&
		m.State == other.State &&
		m.Score == other.Score &&
		m.MaxTime == other.MaxTime &&
		m.TileTimer == other.TileTimer
}
