package config

import (
	_ "embed"
)

//go:embed defaults/r42.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the hardcoded default configuration. It
// mirrors defaults/r42.yaml and is used when the embedded file cannot be
// parsed.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Field: FieldConfig{
			PixelSize: 1,
			HUDRows:   2,
		},
		Player: PlayerConfig{
			Speed:              0.9,
			BulletSpeed:        1.6,
			BulletAcceleration: 1.0,
			Lives:              2,
			Phasers:            20,
			RespawnMillis:      1500,
			KeyHoldTicks:       9,
		},
		Phaser: PhaserConfig{
			PauseMillis: 100,
		},
		Gameplay: GameplayConfig{
			ExtraLifeThreshold: 7500,
			MaxEnemyBullets:    6,
			StartLevel:         1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}
