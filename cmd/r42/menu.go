package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-r42/internal/config"
	"github.com/vovakirdan/tui-r42/internal/engine"
	"github.com/vovakirdan/tui-r42/internal/platform/tui"
	"github.com/vovakirdan/tui-r42/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the start menu",
	Long: `Open the R42 start menu.

Choose a difficulty preset and a start level, browse the scoreboard, then
play. Leaving a game with esc brings the menu back.

Menu keys:
  ↑/↓ or j/k   move
  ←/→ or h/l   change difficulty or start level
  enter        select
  tab          scoreboard
  q            quit

Examples:
  r42 menu
  r42 menu --difficulty hard --fps 30`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "name recorded with each run")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := fileLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	base, err := gameOptions(logger)
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scoreboard disabled", "db", flagDBPath, "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	choice := tui.MenuChoice{StartLevel: base.Config.Gameplay.StartLevel}
	if p, ok := config.ParsePreset(flagDifficulty); ok {
		choice.Difficulty = p
	}
	if err := menuLoop(store, base, choice); err != nil {
		logger.Error("menu loop", "error", err)
		fmt.Fprintln(os.Stderr, "r42:", err)
	}
}

// menuLoop alternates between the menu and the screens it opens until the
// player quits one of them.
func menuLoop(store *storage.Store, base engine.Options, choice tui.MenuChoice) error {
	for {
		res, err := tui.RunMenu(store, base.Levels, base.Runtime, choice)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		base.Runtime, choice = res.Config, res.Choice

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			back, err := tui.RunScoreboard(store, flagPlayer, base.Runtime.ScreenW, base.Runtime.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if !back {
				return nil
			}

		default:
			game, err := tui.RunGame(tui.GameOptions{
				Engine: tui.ApplyChoice(base, choice),
				Store:  store,
				Player: flagPlayer,
			})
			if err != nil {
				return fmt.Errorf("game: %w", err)
			}
			if !game.BackToMenu {
				return nil
			}
		}
	}
}
