package levels

import (
	"github.com/vovakirdan/tui-r42/internal/core"
)

// Spawns returns the spawn locations for the level's enemies. width and
// height are the enemy's frame size in pixels.
func (l Level) Spawns(field core.Rectangle, width, height float64, rng *core.RNG) []core.Location {
	switch l.Layout {
	case LayoutGrid767:
		return grid767(field, width, height)
	case LayoutColumns:
		return columns(l.Count, field, width, height)
	case LayoutRandom:
		return scatter(l.Count, field, width, height, rng, false)
	case LayoutAbove:
		return scatter(l.Count, field, width, height, rng, true)
	default:
		return row(l.Count, field, width, field.Top+field.Height()*0.1)
	}
}

// row spaces n enemies evenly across the field at top.
func row(n int, field core.Rectangle, width, top float64) []core.Location {
	out := make([]core.Location, 0, n)
	span := field.Width() - width
	for i := 0; i < n; i++ {
		left := field.Left + span*float64(i+1)/float64(n+1)
		out = append(out, core.Location{Left: left, Top: top})
	}
	return out
}

func grid767(field core.Rectangle, width, height float64) []core.Location {
	gap := height * 1.5
	top := field.Top + field.Height()*0.08
	out := row(7, field, width, top)
	out = append(out, row(6, field, width, top+gap)...)
	return append(out, row(7, field, width, top+2*gap)...)
}

func columns(n int, field core.Rectangle, width, height float64) []core.Location {
	out := make([]core.Location, 0, n)
	cols := max(n/2, 1)
	span := field.Width() - width
	for i := 0; i < n; i++ {
		c := i % cols
		r := i / cols
		left := field.Left + span*float64(c+1)/float64(cols+1)
		top := field.Top + height*float64(r)*1.5 + float64(c%2)*height*0.75
		out = append(out, core.Location{Left: left, Top: top})
	}
	return out
}

func scatter(n int, field core.Rectangle, width, height float64, rng *core.RNG, above bool) []core.Location {
	if rng == nil {
		rng = core.NewRNG(1)
	}
	out := make([]core.Location, 0, n)
	maxLeft := max(field.Right-width, field.Left+1)
	for i := 0; i < n; i++ {
		left := rng.Range(field.Left, maxLeft)
		var top float64
		if above {
			top = field.Top - height - rng.Range(0, field.Height()/2)
		} else {
			top = rng.Range(field.Top, field.Top+field.Height()*0.4)
		}
		out = append(out, core.Location{Left: left, Top: top})
	}
	return out
}
