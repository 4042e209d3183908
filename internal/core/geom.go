// Package core provides the fundamental types shared by the shooter: playfield
// geometry, colors, pixel frames, keyboard snapshots and the terminal screen
// buffer. It contains no external dependencies (especially no Bubble Tea) to
// keep simulation logic pure and testable.
package core

import "math"

// Location is a position on the playfield in pixel units.
// Left grows to the right, Top grows downwards.
type Location struct {
	Left float64
	Top  float64
}

// Add returns the location moved by dx, dy.
func (l Location) Add(dx, dy float64) Location {
	return Location{Left: l.Left + dx, Top: l.Top + dy}
}

// Step moves the location speed pixels along angle (degrees).
// 0 points right, 90 points down, 270 points up.
func (l Location) Step(angle, speed float64) Location {
	rad := angle * math.Pi / 180
	return Location{
		Left: l.Left + math.Cos(rad)*speed,
		Top:  l.Top + math.Sin(rad)*speed,
	}
}

// OffField is the sentinel location reported for entities without a frame.
var OffField = Location{Left: -1e6, Top: -1e6}

// Rectangle is an axis-aligned box on the playfield, used for hitboxes and
// field bounds.
type Rectangle struct {
	Left, Top, Right, Bottom float64
}

// Valid reports whether the rectangle has a positive area.
func (r Rectangle) Valid() bool {
	return r.Right > r.Left && r.Bottom > r.Top
}

// Width returns Right - Left.
func (r Rectangle) Width() float64 {
	return r.Right - r.Left
}

// Height returns Bottom - Top.
func (r Rectangle) Height() float64 {
	return r.Bottom - r.Top
}

// Overlaps is the strict collision predicate: touching edges do not count.
func (r Rectangle) Overlaps(o Rectangle) bool {
	return r.Left < o.Right &&
		r.Right > o.Left &&
		r.Top < o.Bottom &&
		r.Bottom > o.Top
}

// Contains reports whether the location lies inside the rectangle.
func (r Rectangle) Contains(l Location) bool {
	return l.Left >= r.Left && l.Left < r.Right && l.Top >= r.Top && l.Top < r.Bottom
}

// Center returns the midpoint of the rectangle.
func (r Rectangle) Center() Location {
	return Location{Left: (r.Left + r.Right) / 2, Top: (r.Top + r.Bottom) / 2}
}

// Rect represents a box of terminal cells, used by the screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new cell rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// NormalizeAngle maps any angle in degrees into [0, 360).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// AngleTo returns the angle in degrees pointing from one location to another.
func AngleTo(from, to Location) float64 {
	return NormalizeAngle(math.Atan2(to.Top-from.Top, to.Left-from.Left) * 180 / math.Pi)
}
