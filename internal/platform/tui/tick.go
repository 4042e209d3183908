// Package tui runs the shooter in a terminal through Bubble Tea. It maps
// keys to held game actions, paces the simulation ticks, renders the
// half-block playfield and hosts the menu, scoreboard and SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// tick loop that scheduled it; a model ignores ticks of earlier loops.
type TickMsg struct {
	Time time.Time
	Loop int64
}

var loopIDs atomic.Int64

// newLoopID returns a process-wide unique tick loop ID.
func newLoopID() int64 {
	return loopIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
