package game

import "math/rand/v2"

// BoardSlots is the number of tile slots on the board.
const BoardSlots = 9

// boardDim is the side length of the board in slots.
const boardDim = 3

// Placement selects how a slot index maps to a tile coordinate.
type Placement int

const (
	// PlacementTopLeft positions tiles at the top-left corner of their cell.
	PlacementTopLeft Placement = iota
	// PlacementCentered offsets tiles by half a cell in both axes.
	PlacementCentered
)

// Board is the fixed 3x3 grid of tile slots. Slot index i maps to grid
// cell (i%3, i/3); each occupied slot holds exactly one tile positioned at
// the deterministic coordinate for its index.
type Board struct {
	tiles     [BoardSlots]*Sprite
	length    float64
	placement Placement
	rng       *rand.Rand
}

// NewBoard creates an empty board whose sides span length pixels. A nil
// rng falls back to an entropy-seeded source; tests inject a seeded one
// for deterministic placement.
func NewBoard(length float64, placement Placement, rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Board{
		length:    length,
		placement: placement,
		rng:       rng,
	}
}

// Length returns the board side length in pixels.
func (b *Board) Length() float64 {
	return b.length
}

// TileLength returns the side length of a single cell.
func (b *Board) TileLength() float64 {
	return b.length / boardDim
}

// FreePositions returns the indices of all unoccupied slots in ascending
// order.
func (b *Board) FreePositions() []int {
	positions := make([]int, 0, BoardSlots)
	for i, t := range b.tiles {
		if t == nil {
			positions = append(positions, i)
		}
	}
	return positions
}

// IsFull reports whether every slot holds a tile.
func (b *Board) IsFull() bool {
	return len(b.FreePositions()) == 0
}

// AddTile places a tile at a free slot chosen uniformly at random. It is a
// no-op when the board is full.
func (b *Board) AddTile() {
	free := b.FreePositions()
	if len(free) == 0 {
		return
	}
	i := free[b.rng.IntN(len(free))]
	tile := NewSprite(b.XFromIndex(i), b.YFromIndex(i), b.TileLength(), b.TileLength(), ColourRed)
	b.tiles[i] = &tile
}

// XFromIndex returns the x coordinate of the slot with the given index.
func (b *Board) XFromIndex(i int) float64 {
	x := float64(i%boardDim) * b.TileLength()
	if b.placement == PlacementCentered {
		x += 0.5 * b.TileLength()
	}
	return x
}

// YFromIndex returns the y coordinate of the slot with the given index.
func (b *Board) YFromIndex(i int) float64 {
	y := float64(i/boardDim) * b.TileLength()
	if b.placement == PlacementCentered {
		y += 0.5 * b.TileLength()
	}
	return y
}

// TileAt returns the tile occupying slot i, if any.
func (b *Board) TileAt(i int) (Sprite, bool) {
	if b.tiles[i] == nil {
		return Sprite{}, false
	}
	return *b.tiles[i], true
}

// Clear removes every tile from the board.
func (b *Board) Clear() {
	b.tiles = [BoardSlots]*Sprite{}
}

// Equal reports whether two boards have the same geometry and the same
// tiles in the same slots.
func (b *Board) Equal(other *Board) bool {
	if b.length != other.length || b.placement != other.placement {
		return false
	}
	for i := range b.tiles {
		switch {
		case b.tiles[i] == nil && other.tiles[i] == nil:
		case b.tiles[i] == nil || other.tiles[i] == nil:
			return false
		case *b.tiles[i] != *other.tiles[i]:
			return false
		}
	}
	return true
}
