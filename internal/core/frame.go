package core

// Frame is a rectangular grid of color tokens. Rows may be empty only for
// an empty frame.
type Frame [][]Color

// ParseFrame builds a frame from rows of single-character tokens, e.g.
// "0VV0". Rows are padded with transparent cells to the widest row.
func ParseFrame(rows ...string) Frame {
	width := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}
	f := make(Frame, len(rows))
	for y, row := range rows {
		f[y] = make([]Color, width)
		for x, r := range []rune(row) {
			f[y][x] = ColorForToken(r)
		}
	}
	return f
}

// Rows returns the number of rows.
func (f Frame) Rows() int {
	return len(f)
}

// Cols returns the number of columns.
func (f Frame) Cols() int {
	if len(f) == 0 {
		return 0
	}
	return len(f[0])
}

// Empty reports whether the frame has no cells.
func (f Frame) Empty() bool {
	return f.Rows() == 0 || f.Cols() == 0
}

// Clone returns a deep copy of the frame.
func (f Frame) Clone() Frame {
	out := make(Frame, len(f))
	for y := range f {
		out[y] = append([]Color(nil), f[y]...)
	}
	return out
}

// Recolor returns a copy with every from cell replaced by to.
func (f Frame) Recolor(from, to Color) Frame {
	out := f.Clone()
	for y := range out {
		for x := range out[y] {
			if out[y][x] == from {
				out[y][x] = to
			}
		}
	}
	return out
}

// Dimensions returns the frame size in pixels for the given cell size.
func (f Frame) Dimensions(pixelSize float64) (width, height float64) {
	return float64(f.Cols()) * pixelSize, float64(f.Rows()) * pixelSize
}

// Bounds returns the frame's rectangle when drawn at loc.
func (f Frame) Bounds(loc Location, pixelSize float64) Rectangle {
	w, h := f.Dimensions(pixelSize)
	return Rectangle{Left: loc.Left, Top: loc.Top, Right: loc.Left + w, Bottom: loc.Top + h}
}

// Hitbox returns the frame bounds at loc with the vertical insets applied
// to the top and bottom edges. The result may be invalid for tiny frames.
func (f Frame) Hitbox(loc Location, pixelSize, topInset, bottomInset float64) Rectangle {
	r := f.Bounds(loc, pixelSize)
	r.Top += topInset
	r.Bottom += bottomInset
	return r
}

// Center returns the midpoint of the frame drawn at loc.
func (f Frame) Center(loc Location, pixelSize float64) Location {
	return f.Bounds(loc, pixelSize).Center()
}

// FrameSet is an ordered sequence of animation frames.
type FrameSet []Frame

// Recolor applies Frame.Recolor to every frame.
func (fs FrameSet) Recolor(from, to Color) FrameSet {
	out := make(FrameSet, len(fs))
	for i, f := range fs {
		out[i] = f.Recolor(from, to)
	}
	return out
}

// MaxDimensions returns the widest and tallest extent over all frames.
func (fs FrameSet) MaxDimensions(pixelSize float64) (width, height float64) {
	for _, f := range fs {
		w, h := f.Dimensions(pixelSize)
		if w > width {
			width = w
		}
		if h > height {
			height = h
		}
	}
	return width, height
}
