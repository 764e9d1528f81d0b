package game_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/whack/game"
)

func newTestBoard(seed uint64) *game.Board {
	return game.NewBoard(300, game.PlacementTopLeft, rand.New(rand.NewPCG(seed, seed)))
}

func TestNewBoardIsEmpty(t *testing.T) {
	board := newTestBoard(1)

	assert.False(t, board.IsFull())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, board.FreePositions())
	for i := 0; i < game.BoardSlots; i++ {
		_, ok := board.TileAt(i)
		assert.False(t, ok)
	}
}

func TestCoordinatesFromIndex(t *testing.T) {
	tests := []struct {
		index int
		x, y  float64
	}{
		{0, 0, 0},
		{1, 100, 0},
		{2, 200, 0},
		{3, 0, 100},
		{4, 100, 100},
		{5, 200, 100},
		{6, 0, 200},
		{7, 100, 200},
		{8, 200, 200},
	}

	topLeft := newTestBoard(1)
	centered := game.NewBoard(300, game.PlacementCentered, rand.New(rand.NewPCG(1, 1)))

	for _, tt := range tests {
		t.Run(fmt.Sprintf("index=%d", tt.index), func(t *testing.T) {
			assert.Equal(t, tt.x, topLeft.XFromIndex(tt.index))
			assert.Equal(t, tt.y, topLeft.YFromIndex(tt.index))

			// Centered placement shifts both axes by half a cell.
			assert.Equal(t, tt.x+50, centered.XFromIndex(tt.index))
			assert.Equal(t, tt.y+50, centered.YFromIndex(tt.index))
		})
	}
}

func TestAddTileFillsOneFreeSlot(t *testing.T) {
	board := newTestBoard(7)

	for n := game.BoardSlots; n > 0; n-- {
		freeBefore := board.FreePositions()
		require.Len(t, freeBefore, n)

		board.AddTile()

		freeAfter := board.FreePositions()
		require.Len(t, freeAfter, n-1)

		// The newly occupied slot must be one of the previously free ones,
		// and its tile must sit at the deterministic slot coordinate.
		for i := 0; i < game.BoardSlots; i++ {
			tile, ok := board.TileAt(i)
			if !ok {
				continue
			}
			assert.Equal(t, board.XFromIndex(i), tile.Pos.X)
			assert.Equal(t, board.YFromIndex(i), tile.Pos.Y)
			assert.Equal(t, board.TileLength(), tile.Width)
			assert.Equal(t, board.TileLength(), tile.Height)
		}
		for _, i := range freeAfter {
			assert.Contains(t, freeBefore, i)
		}
	}

	assert.True(t, board.IsFull())
}

func TestAddTileOnFullBoardIsNoOp(t *testing.T) {
	board := newTestBoard(7)
	for i := 0; i < game.BoardSlots; i++ {
		board.AddTile()
	}
	require.True(t, board.IsFull())

	assert.NotPanics(t, board.AddTile)
	assert.True(t, board.IsFull())
	assert.Empty(t, board.FreePositions())
}

func TestClear(t *testing.T) {
	board := newTestBoard(7)
	for i := 0; i < game.BoardSlots; i++ {
		board.AddTile()
	}
	require.True(t, board.IsFull())

	board.Clear()

	assert.False(t, board.IsFull())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, board.FreePositions())
}

func TestIsFullMatchesFreePositions(t *testing.T) {
	board := newTestBoard(3)

	for i := 0; i < game.BoardSlots; i++ {
		assert.Equal(t, len(board.FreePositions()) == 0, board.IsFull())
		board.AddTile()
	}
	assert.True(t, board.IsFull())
	assert.Empty(t, board.FreePositions())
}

func TestSeededPlacementIsDeterministic(t *testing.T) {
	a := newTestBoard(42)
	b := newTestBoard(42)

	for i := 0; i < 5; i++ {
		a.AddTile()
		b.AddTile()
	}

	assert.True(t, a.Equal(b))
}

func TestBoardEqual(t *testing.T) {
	a := newTestBoard(42)
	b := newTestBoard(42)
	require.True(t, a.Equal(b))

	a.AddTile()
	assert.False(t, a.Equal(b))

	b.AddTile()
	assert.True(t, a.Equal(b))

	a.Clear()
	b.Clear()
	assert.True(t, a.Equal(b))

	other := game.NewBoard(600, game.PlacementTopLeft, rand.New(rand.NewPCG(42, 42)))
	assert.False(t, a.Equal(other))
}
