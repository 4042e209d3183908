// r42 is a terminal arcade shooter: fly the ship, shoot down 42 levels of
// enemy waves and keep the phaser for emergencies.
//
// Usage:
//
//	r42 play           - Play straight away
//	r42 menu           - Start menu with difficulty, start level and scores
//	r42 levels         - List the level table and the enemy types
//	r42 scores         - Show the best runs
//	r42 serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.r42/scores.db)
//	--config <path>       - Custom game config YAML
//	--levels <path>       - Custom level table YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-r42/internal/config"
	"github.com/vovakirdan/tui-r42/internal/core"
	"github.com/vovakirdan/tui-r42/internal/engine"
	"github.com/vovakirdan/tui-r42/internal/levels"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevels     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "r42",
	Short: "R42 - an arcade shooter in your terminal",
	Long: `R42 is a tick-driven arcade shooter rendered with half-block pixels.
Destroy every enemy of a level to advance; the phaser destroys a random
enemy when things get tight.

Available commands:
  play     - Start a game directly
  menu     - Interactive menu with difficulty and start level
  levels   - Show the level table and enemy types
  scores   - View the best runs
  serve    - Start SSH server for remote play

Examples:
  r42 play
  r42 play --difficulty hard --start-level 10
  r42 menu
  r42 serve --ssh :2222
  r42 scores --limit 20`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.r42/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Path to custom level table YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// fileLogger logs to ~/.r42/r42.log so the alternate screen stays clean.
// Logging is discarded when the file cannot be opened.
func fileLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closer := func() {}
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".r42")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join(dir, "r42.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err == nil {
				w = f
				closer = func() { f.Close() }
			}
		}
	}
	logger, err := newLogger(w, "r42")
	if err != nil {
		closer()
		return nil, nil, err
	}
	return logger, closer, nil
}

// terminalConfig returns the runtime config for the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// loadConfig loads the game config and applies --difficulty.
func loadConfig() (config.ShooterConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// loadLevels loads --levels, the config's level file, or the embedded table.
func loadLevels(cfg config.ShooterConfig) (*levels.Table, error) {
	path := flagLevels
	if path == "" {
		path = cfg.Gameplay.LevelsFile
	}
	return levels.Load(path)
}

// gameOptions assembles everything a game session needs.
func gameOptions(logger *log.Logger) (engine.Options, error) {
	cfg, err := loadConfig()
	if err != nil {
		return engine.Options{}, err
	}
	table, err := loadLevels(cfg)
	if err != nil {
		return engine.Options{}, err
	}
	return engine.Options{
		Config:  cfg,
		Runtime: terminalConfig(),
		Levels:  table,
		Logger:  logger,
	}, nil
}

// fail prints the error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
