package core

import "strings"

// Cell is one terminal character with its foreground and background colors.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

var blankCell = Cell{Rune: ' '}

// Screen is a fixed-size grid of cells, stored row-major. The engine paints
// into it and the front end turns it into terminal output.
type Screen struct {
	width, height int
	cells         []Cell
}

// NewScreen returns a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height}
	s.cells = blankCells(width * height)
	return s
}

func blankCells(n int) []Cell {
	if n < 0 {
		n = 0
	}
	cells := make([]Cell, n)
	for i := range cells {
		cells[i] = blankCell
	}
	return cells
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Width returns the number of columns.
func (s *Screen) Width() int { return s.width }

// Height returns the number of rows.
func (s *Screen) Height() int { return s.height }

// Resize changes the size. Cells in the overlapping top-left area survive.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	next := blankCells(width * height)
	keepW, keepH := min(s.width, width), min(s.height, height)
	for y := 0; y < keepH; y++ {
		copy(next[y*width:y*width+keepW], s.cells[y*s.width:y*s.width+keepW])
	}
	s.width, s.height, s.cells = width, height, next
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

// Set writes r with default colors.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetColored writes r with a foreground color.
func (s *Screen) SetColored(x, y int, r rune, fg Color) {
	s.SetCell(x, y, Cell{Rune: r, Fg: fg})
}

// SetCell writes c at (x, y). Writes outside the screen are dropped.
func (s *Screen) SetCell(x, y int, c Cell) {
	if s.inside(x, y) {
		s.cells[y*s.width+x] = c
	}
}

// Get returns the rune at (x, y), a space outside the screen.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), blank outside the screen.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blankCell
	}
	return s.cells[y*s.width+x]
}

// DrawText writes text from (x, y) rightwards with default colors.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorNone)
}

// DrawTextColored writes text from (x, y) rightwards, one rune per column.
// Runes past the edge are clipped.
func (s *Screen) DrawTextColored(x, y int, text string, fg Color) {
	col := x
	for _, r := range text {
		s.SetColored(col, y, r, fg)
		col++
	}
}

// DrawTextCentered writes text centered on row y.
func (s *Screen) DrawTextCentered(y int, text string, fg Color) {
	s.DrawTextColored((s.width-len([]rune(text)))/2, y, text, fg)
}

// DrawBox outlines r with box-drawing runes.
func (s *Screen) DrawBox(r Rect, fg Color) {
	left, top := r.X, r.Y
	right, bottom := r.Right()-1, r.Bottom()-1
	s.DrawHLine(left+1, top, right-left-1, '─', fg)
	s.DrawHLine(left+1, bottom, right-left-1, '─', fg)
	for y := top + 1; y < bottom; y++ {
		s.SetColored(left, y, '│', fg)
		s.SetColored(right, y, '│', fg)
	}
	s.SetColored(left, top, '┌', fg)
	s.SetColored(right, top, '┐', fg)
	s.SetColored(left, bottom, '└', fg)
	s.SetColored(right, bottom, '┘', fg)
}

// DrawHLine repeats r over length columns starting at (x, y).
func (s *Screen) DrawHLine(x, y, length int, r rune, fg Color) {
	for i := 0; i < length; i++ {
		s.SetColored(x+i, y, r, fg)
	}
}

// String returns the runes of every row joined by newlines, without colors.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Row returns row y as plain text, all spaces outside the screen.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
