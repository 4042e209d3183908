package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "r42.yaml"

// Load returns the shooter configuration. An explicit path must exist and
// parse. Without one, ~/.r42/configs/r42.yaml and then ./configs/r42.yaml
// are tried, and the embedded defaults apply when neither is usable. Keys
// missing from a file keep their default values.
func Load(customPath string) (ShooterConfig, error) {
	if customPath != "" {
		cfg, err := decodeFile(customPath)
		if err != nil {
			return DefaultShooterConfig(), err
		}
		return cfg, cfg.Validate()
	}

	for _, path := range searchPaths() {
		cfg, err := decodeFile(path)
		if err == nil {
			return cfg, cfg.Validate()
		}
	}

	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil {
		return DefaultShooterConfig(), nil
	}
	return cfg, nil
}

func decodeFile(path string) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".r42", "configs", ConfigFile))
	}
	return append(paths, filepath.Join("configs", ConfigFile))
}

// Validate rejects settings the simulation cannot run with.
func (c ShooterConfig) Validate() error {
	var errs []error
	if c.Field.PixelSize <= 0 {
		errs = append(errs, fmt.Errorf("field.pixel_size must be positive, got %v", c.Field.PixelSize))
	}
	if c.Player.Lives < 0 || c.Player.Phasers < 0 {
		errs = append(errs, errors.New("player lives and phasers must not be negative"))
	}
	if c.Player.Speed <= 0 || c.Player.BulletSpeed <= 0 {
		errs = append(errs, errors.New("player speed and bullet_speed must be positive"))
	}
	if c.Gameplay.StartLevel < 0 {
		errs = append(errs, errors.New("gameplay.start_level must not be negative"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ApplyPreset switches the difficulty ramp and starting resources to the
// named preset. Fixed keeps the current lives and phasers and turns the
// ramp off.
func ApplyPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = preset != DifficultyFixed
	if cfg.Difficulty.Enabled {
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives, cfg.Player.Phasers = 4, 30
	case DifficultyHard:
		cfg.Player.Lives, cfg.Player.Phasers = 1, 10
	}
}
