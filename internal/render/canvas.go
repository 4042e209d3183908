// Package render rasterises frames onto a pixel canvas and converts the
// canvas into terminal cells, two pixels per cell.
package render

import (
	"math"

	"github.com/vovakirdan/tui-r42/internal/core"
)

// Canvas is a fixed-size pixel surface.
type Canvas struct {
	width  int
	height int
	pixels []core.Color
}

// NewCanvas creates a transparent canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Resize changes the canvas size and clears it.
func (c *Canvas) Resize(width, height int) {
	c.width = width
	c.height = height
	c.pixels = make([]core.Color, width*height)
}

// Clear makes every pixel transparent.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Set paints one pixel. Out-of-bounds coordinates are ignored.
func (c *Canvas) Set(x, y int, col core.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = col
}

// Get returns a pixel, ColorNone when out of bounds.
func (c *Canvas) Get(x, y int) core.Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return core.ColorNone
	}
	return c.pixels[y*c.width+x]
}

// FillSquare paints a size x size square with its top-left at (left, top).
// Any square paints at least one pixel.
func (c *Canvas) FillSquare(left, top, size float64, col core.Color) {
	x0 := int(math.Round(left))
	y0 := int(math.Round(top))
	x1 := max(int(math.Round(left+size)), x0+1)
	y1 := max(int(math.Round(top+size)), y0+1)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.Set(x, y, col)
		}
	}
}

// DrawFrame paints every non-transparent cell of f as a square of
// pixelSize at (left + col*pixelSize, top + row*pixelSize).
func (c *Canvas) DrawFrame(f core.Frame, loc core.Location, pixelSize float64) {
	for row, cells := range f {
		for col, color := range cells {
			if color == core.ColorNone {
				continue
			}
			c.FillSquare(loc.Left+float64(col)*pixelSize, loc.Top+float64(row)*pixelSize, pixelSize, color)
		}
	}
}

// StrokeRect outlines a rectangle, used for hitbox debugging.
func (c *Canvas) StrokeRect(r core.Rectangle, col core.Color) {
	x0, y0 := int(math.Floor(r.Left)), int(math.Floor(r.Top))
	x1, y1 := int(math.Ceil(r.Right))-1, int(math.Ceil(r.Bottom))-1
	for x := x0; x <= x1; x++ {
		c.Set(x, y0, col)
		c.Set(x, y1, col)
	}
	for y := y0; y <= y1; y++ {
		c.Set(x0, y, col)
		c.Set(x1, y, col)
	}
}

// DrawPoints paints a square of size at every location.
func (c *Canvas) DrawPoints(locs []core.Location, size float64, col core.Color) {
	for _, l := range locs {
		c.FillSquare(l.Left, l.Top, size, col)
	}
}

// ToScreen copies the canvas into the screen starting at row y0. Each cell
// shows the upper pixel as foreground of '▀' and the lower one as
// background.
func (c *Canvas) ToScreen(s *core.Screen, x0, y0 int) {
	for y := 0; y*2 < c.height; y++ {
		for x := 0; x < c.width; x++ {
			top := c.Get(x, y*2)
			bottom := c.Get(x, y*2+1)
			s.SetCell(x0+x, y0+y, halfBlock(top, bottom))
		}
	}
}

func halfBlock(top, bottom core.Color) core.Cell {
	switch {
	case top == core.ColorNone && bottom == core.ColorNone:
		return core.Cell{Rune: ' '}
	case bottom == core.ColorNone:
		return core.Cell{Rune: '▀', Fg: top}
	case top == core.ColorNone:
		return core.Cell{Rune: '▄', Fg: bottom}
	case top == bottom:
		return core.Cell{Rune: '█', Fg: top}
	default:
		return core.Cell{Rune: '▀', Fg: top, Bg: bottom}
	}
}

// Beam returns the points of a straight beam from one location to another,
// spaced step pixels apart.
func Beam(from, to core.Location, step float64) []core.Location {
	if step <= 0 {
		step = 1
	}
	dist := math.Hypot(to.Left-from.Left, to.Top-from.Top)
	n := int(dist / step)
	out := make([]core.Location, 0, n+1)
	for i := 0; i <= n; i++ {
		t := 0.0
		if dist > 0 {
			t = float64(i) * step / dist
		}
		out = append(out, core.Location{
			Left: from.Left + (to.Left-from.Left)*t,
			Top:  from.Top + (to.Top-from.Top)*t,
		})
	}
	return out
}
