package core

// RuntimeConfig contains the terminal and simulation settings for a session.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// MillisToTicks converts a duration in milliseconds to whole ticks at the
// configured tick rate. Any positive duration lasts at least one tick.
func (c RuntimeConfig) MillisToTicks(ms int) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	if ms <= 0 {
		return 0
	}
	ticks := ms * rate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// Field returns the playfield size in pixels for the screen. Each terminal
// cell shows two vertically stacked pixels; hudRows lines are reserved.
func (c RuntimeConfig) Field(hudRows int) (width, height int) {
	w := c.ScreenW
	h := (c.ScreenH - hudRows) * 2
	if w < 20 {
		w = 20
	}
	if h < 20 {
		h = 20
	}
	return w, h
}
