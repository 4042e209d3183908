package engine

import "github.com/vovakirdan/tui-r42/internal/config"

// Debugging holds developer toggles. They only change the draw pass and
// whether the player can be hit.
type Debugging struct {
	DrawHitboxes   bool
	PlayerImmortal bool
	RenderPhaser   bool
}

// DebuggingFrom copies the toggles from the configuration.
func DebuggingFrom(cfg config.DebugConfig) *Debugging {
	return &Debugging{
		DrawHitboxes:   cfg.DrawHitboxes,
		PlayerImmortal: cfg.PlayerImmortal,
		RenderPhaser:   cfg.RenderPhaser,
	}
}
