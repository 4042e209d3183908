package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-r42/internal/platform/tui"
	"github.com/vovakirdan/tui-r42/internal/storage"
)

var (
	flagStartLevel int
	flagHitboxes   bool
	flagImmortal   bool
	flagPhaserBeam bool
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game straight away.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  F            - Phaser (destroys a random enemy)
  X            - Self-destruct (costs a life, clears the wave)
  P            - Pause
  R            - Restart (after game over)
  ?            - Key help
  Q/Ctrl+C     - Quit

Debug keys:
  F1  - Draw hitboxes
  F2  - Player immortal
  F3  - Speed up enemies

Difficulty options:
  easy   - More lives and phasers, slow enemy speed-up
  normal - Default lives and phasers
  hard   - One life, fewer phasers, fast enemies from the start
  fixed  - No difficulty progression

Examples:
  r42 play
  r42 play --difficulty easy
  r42 play --start-level 12 --seed 42
  r42 play --config ./my-r42.yaml --levels ./my-levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStartLevel, "start-level", 0, "Level to start at (0 = config default)")
	playCmd.Flags().BoolVar(&flagHitboxes, "hitboxes", false, "Draw hitboxes")
	playCmd.Flags().BoolVar(&flagImmortal, "immortal", false, "Player cannot be hit")
	playCmd.Flags().BoolVar(&flagPhaserBeam, "phaser-beam", false, "Always draw the phaser beam at the first enemy")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name stored with the run")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := fileLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	opts, err := gameOptions(logger)
	if err != nil {
		fail("%v", err)
	}
	if flagStartLevel > 0 {
		opts.Config.Gameplay.StartLevel = flagStartLevel
	}
	opts.Config.Debug.DrawHitboxes = opts.Config.Debug.DrawHitboxes || flagHitboxes
	opts.Config.Debug.PlayerImmortal = opts.Config.Debug.PlayerImmortal || flagImmortal
	opts.Config.Debug.RenderPhaser = opts.Config.Debug.RenderPhaser || flagPhaserBeam

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	result, runErr := tui.RunGame(tui.GameOptions{
		Engine: opts,
		Store:  store,
		Player: flagPlayer,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fail("running game: %v", runErr)
	}

	st := result.State
	fmt.Printf("Score %d  Level %d  Accuracy %.0f%%\n", st.Score, st.Level, st.Accuracy())
}
