package config

// DifficultyManager turns the difficulty settings into an enemy speed
// multiplier for a given level and score.
type DifficultyManager struct {
	progression ProgressionConfig
	multiplier  float64
	floor       float64
	active      bool
}

// NewDifficultyManager returns a manager for cfg. The initial level is
// clamped into [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		progression: cfg.Progression,
		multiplier:  cfg.Scaling.SpeedMultiplier,
		floor:       unit(cfg.InitialLevel),
		active:      cfg.Enabled && cfg.Progression.Type != "none",
	}
}

// IsEnabled reports whether the difficulty grows during a run.
func (d *DifficultyManager) IsEnabled() bool {
	return d.active
}

// Level returns the difficulty in [0, 1]. It starts at the initial level
// and reaches 1 once the level or score hits the progression's MaxAt.
func (d *DifficultyManager) Level(gameLevel, score int) float64 {
	if !d.active {
		return d.floor
	}
	span := float64(d.progression.MaxAt)
	if span <= 0 {
		span = 1
	}
	var done float64
	switch d.progression.Type {
	case "level":
		done = float64(gameLevel-1) / span
	case "score":
		done = float64(score) / span
	default:
		return d.floor
	}
	return d.floor + unit(done)*(1-d.floor)
}

// SpeedScale is the factor applied to enemy base speeds, from 1 up to
// 1 + SpeedMultiplier.
func (d *DifficultyManager) SpeedScale(gameLevel, score int) float64 {
	return 1 + d.multiplier*d.Level(gameLevel, score)
}

func unit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
