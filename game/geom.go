package game

import "image/color"

// Vec2 is a two-dimensional vector in screen coordinates.
type Vec2 struct {
	X, Y float64
}

// Add translates the vector by pairwise addition of another vector.
func (v *Vec2) Add(other Vec2) {
	v.X += other.X
	v.Y += other.Y
}

// Sprite is an axis-aligned rectangle that can be rendered. It represents
// both the player cursor and the tiles placed on the board.
type Sprite struct {
	Pos    Vec2
	Width  float64
	Height float64
	Colour color.RGBA
}

// NewSprite creates a sprite with the given top-left corner and size.
func NewSprite(x, y, width, height float64, colour color.RGBA) Sprite {
	return Sprite{
		Pos:    Vec2{X: x, Y: y},
		Width:  width,
		Height: height,
		Colour: colour,
	}
}

// Rect returns the sprite as an [x, y, width, height] array for rendering.
func (s Sprite) Rect() [4]float64 {
	return [4]float64{s.Pos.X, s.Pos.Y, s.Width, s.Height}
}

// Overlaps reports whether the two rectangles intersect. Only strict
// separation along an axis counts as disjoint, so rectangles that merely
// touch at an edge overlap.
func (s Sprite) Overlaps(other Sprite) bool {
	if s.Pos.X+s.Width < other.Pos.X || other.Pos.X+other.Width < s.Pos.X ||
		s.Pos.Y+s.Height < other.Pos.Y || other.Pos.Y+other.Height < s.Pos.Y {
		return false
	}
	return true
}
