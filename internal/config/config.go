// Package config provides YAML-based game configuration loading and
// difficulty management for the shooter.
package config

// ShooterConfig contains all tunable game settings.
type ShooterConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Phaser     PhaserConfig     `yaml:"phaser"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Debug      DebugConfig      `yaml:"debug"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the playfield geometry.
type FieldConfig struct {
	PixelSize float64 `yaml:"pixel_size"` // Size of one frame cell in field pixels
	HUDRows   int     `yaml:"hud_rows"`   // Terminal rows reserved for the scoreboard
}

// PlayerConfig defines the ship's handling and starting resources.
type PlayerConfig struct {
	Speed              float64 `yaml:"speed"`
	BulletSpeed        float64 `yaml:"bullet_speed"`
	BulletAcceleration float64 `yaml:"bullet_acceleration"`
	Lives              int     `yaml:"lives"`
	Phasers            int     `yaml:"phasers"`
	RespawnMillis      int     `yaml:"respawn_ms"`
	KeyHoldTicks       int     `yaml:"key_hold_ticks"` // How long a terminal key press counts as held
}

// PhaserConfig defines the phaser attack.
type PhaserConfig struct {
	PauseMillis int `yaml:"pause_ms"` // Freeze before the target is destroyed
}

// GameplayConfig defines scoring and pacing.
type GameplayConfig struct {
	ExtraLifeThreshold int    `yaml:"extra_life_threshold"`
	MaxEnemyBullets    int    `yaml:"max_enemy_bullets"`
	StartLevel         int    `yaml:"start_level"`
	LevelsFile         string `yaml:"levels_file"` // Optional custom level table
}

// DebugConfig holds developer toggles. They only affect drawing and
// collision gating.
type DebugConfig struct {
	DrawHitboxes   bool `yaml:"draw_hitboxes"`
	PlayerImmortal bool `yaml:"player_immortal"`
	RenderPhaser   bool `yaml:"render_phaser"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Level/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name; empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyNormal, true
	}
	return DifficultyNormal, false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
