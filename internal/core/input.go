package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone         Action = iota
	ActionUp                  // W, Up arrow
	ActionDown                // S, Down arrow
	ActionLeft                // A, Left arrow
	ActionRight               // D, Right arrow
	ActionFire                // Space
	ActionPhaser              // F
	ActionSelfDestruct        // X
	ActionPause               // P
	ActionRestart             // R after game over
	ActionQuit                // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionPhaser:
		return "Phaser"
	case ActionSelfDestruct:
		return "SelfDestruct"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyboardState is the snapshot of pressed game keys read once per tick.
type KeyboardState struct {
	Up, Down, Left, Right bool
	Fire                  bool
	SelfDestruct          bool
	Phaser                bool
}

// Any reports whether any key is pressed.
func (k KeyboardState) Any() bool {
	return k.Up || k.Down || k.Left || k.Right || k.Fire || k.SelfDestruct || k.Phaser
}

// KeyLatch turns discrete terminal key presses into held-key state.
// Terminals only report presses (and auto-repeat), never releases, so each
// press keeps its key down for a number of ticks.
type KeyLatch struct {
	hold  int
	ticks map[Action]int
}

// NewKeyLatch creates a latch that holds each press for hold ticks.
func NewKeyLatch(hold int) *KeyLatch {
	if hold < 1 {
		hold = 1
	}
	return &KeyLatch{hold: hold, ticks: make(map[Action]int)}
}

// Press marks the action as held for the configured number of ticks.
// Opposing directions cancel each other.
func (l *KeyLatch) Press(a Action) {
	switch a {
	case ActionLeft:
		delete(l.ticks, ActionRight)
	case ActionRight:
		delete(l.ticks, ActionLeft)
	case ActionUp:
		delete(l.ticks, ActionDown)
	case ActionDown:
		delete(l.ticks, ActionUp)
	}
	l.ticks[a] = l.hold
}

// Held reports whether the action is currently held.
func (l *KeyLatch) Held(a Action) bool {
	return l.ticks[a] > 0
}

// Snapshot returns the current keyboard state.
func (l *KeyLatch) Snapshot() KeyboardState {
	return KeyboardState{
		Up:           l.Held(ActionUp),
		Down:         l.Held(ActionDown),
		Left:         l.Held(ActionLeft),
		Right:        l.Held(ActionRight),
		Fire:         l.Held(ActionFire),
		SelfDestruct: l.Held(ActionSelfDestruct),
		Phaser:       l.Held(ActionPhaser),
	}
}

// Tick ages every held key by one tick.
func (l *KeyLatch) Tick() {
	for a, n := range l.ticks {
		if n <= 1 {
			delete(l.ticks, a)
			continue
		}
		l.ticks[a] = n - 1
	}
}

// Clear releases all keys.
func (l *KeyLatch) Clear() {
	for a := range l.ticks {
		delete(l.ticks, a)
	}
}
