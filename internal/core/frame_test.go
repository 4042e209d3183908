package core

import "testing"

func TestParseFrame(t *testing.T) {
	f := ParseFrame(
		"0V0",
		"VrV",
		"0",
	)

	if f.Rows() != 3 || f.Cols() != 3 {
		t.Fatalf("dimensions = %dx%d, expected 3x3", f.Cols(), f.Rows())
	}
	if f[0][1] != ColorVariable {
		t.Errorf("f[0][1] = %v, expected ColorVariable", f[0][1])
	}
	if f[1][1] != ColorRed {
		t.Errorf("f[1][1] = %v, expected ColorRed", f[1][1])
	}
	if f[2][2] != ColorNone {
		t.Errorf("short rows should be padded with transparent cells")
	}
}

func TestFrameRecolorLeavesSourceIntact(t *testing.T) {
	src := ParseFrame("VV", "0V")
	out := src.Recolor(ColorVariable, ColorGreen)

	if out[0][0] != ColorGreen || out[1][1] != ColorGreen {
		t.Errorf("variable cells not recolored: %v", out)
	}
	if out[1][0] != ColorNone {
		t.Errorf("transparent cell changed: %v", out[1][0])
	}
	if src[0][0] != ColorVariable {
		t.Errorf("source frame was mutated")
	}
}

func TestFrameHitbox(t *testing.T) {
	f := ParseFrame("VVVV", "VVVV", "VVVV")
	const px = 2.0

	box := f.Hitbox(Location{10, 20}, px, -px, 0)
	expected := Rectangle{Left: 10, Top: 18, Right: 18, Bottom: 26}
	if box != expected {
		t.Errorf("Hitbox() = %+v, expected %+v", box, expected)
	}
	if !box.Valid() {
		t.Error("hitbox of a non-empty frame should be valid")
	}

	center := f.Center(Location{10, 20}, px)
	if center != (Location{14, 23}) {
		t.Errorf("Center() = %+v, expected {14 23}", center)
	}
}

func TestFrameSetMaxDimensions(t *testing.T) {
	fs := FrameSet{
		ParseFrame("VV", "VV"),
		ParseFrame("VVVV"),
		ParseFrame("V", "V", "V"),
	}
	w, h := fs.MaxDimensions(1)
	if w != 4 || h != 3 {
		t.Errorf("MaxDimensions() = (%v, %v), expected (4, 3)", w, h)
	}
}

func TestEmptyFrame(t *testing.T) {
	var f Frame
	if !f.Empty() {
		t.Error("nil frame should be empty")
	}
	if f.Cols() != 0 {
		t.Errorf("Cols() = %d, expected 0", f.Cols())
	}
}
