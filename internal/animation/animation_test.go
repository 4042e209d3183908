package animation

import (
	"testing"

	"github.com/vovakirdan/tui-r42/internal/core"
)

func frames(n int) core.FrameSet {
	fs := make(core.FrameSet, n)
	for i := range fs {
		fs[i] = core.ParseFrame("V")
	}
	return fs
}

func indices(p *Provider, steps int) []int {
	out := make([]int, 0, steps)
	for i := 0; i < steps; i++ {
		p.NextFrame()
		out = append(out, p.CurrentIndex())
	}
	return out
}

func TestNextFrameSequences(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		count    int
		expected []int
	}{
		{"back and forth", BackAndForth, 3, []int{1, 2, 1, 0, 1, 2, 1}},
		{"circular", Circular, 3, []int{1, 2, 0, 1, 2, 0}},
		{"manual clamps", Manual, 4, []int{1, 2, 3, 3, 3}},
		{"single frame", BackAndForth, 1, []int{0, 0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := New(Config{Kind: tc.kind}, frames(tc.count), nil)
			got := indices(p, len(tc.expected))
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Fatalf("sequence = %v, expected %v", got, tc.expected)
				}
			}
		})
	}
}

func TestUpdateStateInterval(t *testing.T) {
	p := New(Config{Kind: Circular, Interval: 3}, frames(4), nil)

	for tick := 1; tick <= 2; tick++ {
		p.UpdateState(tick)
	}
	if p.CurrentIndex() != 0 {
		t.Fatalf("index = %d before the interval elapsed", p.CurrentIndex())
	}
	p.UpdateState(3)
	if p.CurrentIndex() != 1 {
		t.Errorf("index = %d, expected 1 after 3 ticks", p.CurrentIndex())
	}
	p.UpdateState(3)
	if p.CurrentIndex() != 1 {
		t.Errorf("repeated tick advanced the frame")
	}
}

func TestManualIgnoresTicks(t *testing.T) {
	p := New(Config{Kind: Manual, Interval: 1}, frames(4), nil)
	for tick := 1; tick <= 10; tick++ {
		p.UpdateState(tick)
	}
	if p.CurrentIndex() != 0 {
		t.Errorf("manual provider advanced on ticks: %d", p.CurrentIndex())
	}
}

func TestIncreaseSpeedShortensInterval(t *testing.T) {
	p := New(Config{Kind: Circular, Interval: 4}, frames(8), nil)
	p.IncreaseSpeed(2)
	for tick := 1; tick <= 4; tick++ {
		p.UpdateState(tick)
	}
	if p.CurrentIndex() != 2 {
		t.Errorf("index = %d, expected 2 with halved interval", p.CurrentIndex())
	}
}

func TestRandomStartWithinRange(t *testing.T) {
	rng := core.NewRNG(11)
	for i := 0; i < 50; i++ {
		p := New(Config{Kind: Circular, RandomStart: true}, frames(5), rng)
		if idx := p.CurrentIndex(); idx < 0 || idx >= 5 {
			t.Fatalf("random start %d out of range", idx)
		}
	}
}

func TestMissingFrame(t *testing.T) {
	p := New(Config{Kind: Circular}, nil, nil)
	if _, ok := p.CurrentFrame(); ok {
		t.Error("empty frame set should report no frame")
	}
	if _, ok := p.NextFrame(); ok {
		t.Error("NextFrame on empty set should report no frame")
	}
}
