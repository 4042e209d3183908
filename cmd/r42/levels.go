package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-r42/internal/levels"
	"github.com/vovakirdan/tui-r42/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level table and enemy types",
	Long: `Shows every level of the active level table (embedded, from the
config's levels_file, or from --levels) and all registered enemy types.

Examples:
  r42 levels
  r42 levels --levels ./my-levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	table, err := loadLevels(cfg)
	if err != nil {
		fail("%v", err)
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-22s  %-10s  %-9s  %-8s  %5s  %s\n", "#", "Name", "Enemy", "Kind", "Layout", "Count", "Limit")
	fmt.Printf("  %-3s  %-22s  %-10s  %-9s  %-8s  %5s  %s\n", "-", "----", "-----", "----", "------", "-----", "-----")
	for _, l := range table.Levels {
		limit := l.MoveLimit
		if l.Kind == levels.KindTimeLimit {
			limit = fmt.Sprintf("%ds, min %d", l.TimeLimit, l.MinEnemies)
		}
		marker := " "
		if !registry.Exists(l.Enemy) {
			marker = "!"
		}
		fmt.Printf("  %-3d  %-22s %s%-10s  %-9s  %-8s  %5d  %s\n", l.Number, l.Name, marker, l.Enemy, l.Kind, l.Layout, l.Count, limit)
	}

	enemies := registry.List()
	fmt.Println()
	fmt.Println("Enemy types:")
	fmt.Println()

	// Calculate column widths
	maxTagLen := 3 // "Tag" header
	for _, e := range enemies {
		if len(e.Tag) > maxTagLen {
			maxTagLen = len(e.Tag)
		}
	}

	fmt.Printf("  %-*s  %-16s  %6s  %s\n", maxTagLen, "Tag", "Title", "Points", "HP")
	fmt.Printf("  %-*s  %-16s  %6s  %s\n", maxTagLen, "---", "-----", "------", "--")
	for _, e := range enemies {
		fmt.Printf("  %-*s  %-16s  %6d  %d\n", maxTagLen, e.Tag, e.Title, e.Points, e.Hitpoints)
	}

	if err := table.CheckEnemies(registry.Exists); err != nil {
		fmt.Println()
		fail("%v", err)
	}
}
