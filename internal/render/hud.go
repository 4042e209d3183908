package render

import (
	"fmt"

	"github.com/vovakirdan/tui-r42/internal/core"
	"github.com/vovakirdan/tui-r42/internal/store"
)

// HUDInfo is what the scoreboard rows show.
type HUDInfo struct {
	State     store.GameState
	LevelName string
	TimeLeft  int // seconds, time-limit levels only
	Banner    string
}

// HUD draws the two scoreboard rows starting at row y.
func HUD(s *core.Screen, y int, info HUDInfo) {
	st := info.State
	s.DrawHLine(0, y, s.Width(), '─', core.ColorGray)

	x := 1
	x = field(s, x, y+1, "SCORE", fmt.Sprintf("%06d", st.Score), core.ColorBrightYellow)
	x = field(s, x, y+1, "LIVES", fmt.Sprint(st.Lives), core.ColorBrightGreen)
	x = field(s, x, y+1, "PHASERS", fmt.Sprint(st.Phasers), core.ColorBrightMagenta)
	x = field(s, x, y+1, "LEVEL", fmt.Sprint(st.Level), core.ColorBrightCyan)
	if st.BulletsFired > 0 {
		x = field(s, x, y+1, "HIT", fmt.Sprintf("%.0f%%", st.Accuracy()), core.ColorWhite)
	}
	if info.TimeLeft > 0 {
		x = field(s, x, y+1, "TIME", fmt.Sprint(info.TimeLeft), core.ColorBrightRed)
	}

	switch {
	case st.GameOver:
		s.DrawTextColored(x+1, y+1, "GAME OVER  r restart  q quit", core.ColorBrightRed)
	case st.Pause:
		s.DrawTextColored(x+1, y+1, "PAUSED", core.ColorYellow)
	case info.LevelName != "":
		s.DrawTextColored(x+1, y+1, info.LevelName, core.ColorGray)
	}

	if info.Banner != "" {
		s.DrawTextCentered(y/2, info.Banner, core.ColorBrightWhite)
	}
}

func field(s *core.Screen, x, y int, label, value string, fg core.Color) int {
	s.DrawTextColored(x, y, label, core.ColorGray)
	x += len(label) + 1
	s.DrawTextColored(x, y, value, fg)
	return x + len(value) + 2
}
