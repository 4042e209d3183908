// Package levels loads the level table: which enemy type each level uses,
// how the enemies are laid out, and how the level is won.
package levels

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

// Kind is how a level is completed.
type Kind string

const (
	// KindEnemy is completed by destroying every enemy.
	KindEnemy Kind = "enemy"
	// KindTimeLimit keeps replenishing enemies until the time runs out.
	KindTimeLimit Kind = "timelimit"
)

// Layout names a spawn arrangement.
type Layout string

const (
	LayoutGrid767 Layout = "grid-767" // three rows of 7, 6 and 7; count must be 20
	LayoutRow     Layout = "row"      // one evenly spaced row
	LayoutColumns Layout = "columns"  // staggered descending columns
	LayoutRandom  Layout = "random"   // random places in the upper field
	LayoutAbove   Layout = "above"    // random columns above the field
)

// grid767Count is the fixed enemy count of LayoutGrid767.
const grid767Count = 20

// ErrNoLevels is returned for an empty level table.
var ErrNoLevels = errors.New("levels: table is empty")

// Level is one entry of the level table.
type Level struct {
	Number     int    `yaml:"number"`
	Name       string `yaml:"name"`
	Kind       Kind   `yaml:"kind"`
	Enemy      string `yaml:"enemy"`
	Layout     Layout `yaml:"layout"`
	Count      int    `yaml:"count"`
	MoveLimit  string `yaml:"move_limit"`
	TimeLimit  int    `yaml:"time_limit_s"` // KindTimeLimit only
	MinEnemies int    `yaml:"min_enemies"`  // KindTimeLimit only
}

// Table is the ordered list of levels.
type Table struct {
	Levels []Level `yaml:"levels"`
}

// Default returns the embedded level table.
func Default() (*Table, error) {
	return Parse(defaultLevelsYAML)
}

// Load reads a level table from path, or the embedded table when path is
// empty.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates a YAML level table.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(t.Levels) == 0 {
		return nil, ErrNoLevels
	}
	for i := range t.Levels {
		l := &t.Levels[i]
		if l.Number == 0 {
			l.Number = i + 1
		}
		if l.Kind == "" {
			l.Kind = KindEnemy
		}
		if l.Layout == "" {
			l.Layout = LayoutRow
		}
		if err := l.validate(); err != nil {
			return nil, fmt.Errorf("level %d: %w", l.Number, err)
		}
	}
	return &t, nil
}

func (l Level) validate() error {
	if l.Enemy == "" {
		return errors.New("missing enemy")
	}
	if l.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", l.Count)
	}
	switch l.Kind {
	case KindEnemy:
	case KindTimeLimit:
		if l.TimeLimit <= 0 {
			return errors.New("time limit level needs time_limit_s")
		}
	default:
		return fmt.Errorf("unknown kind %q", l.Kind)
	}
	switch l.Layout {
	case LayoutGrid767:
		if l.Count != grid767Count {
			return fmt.Errorf("layout %s holds exactly %d enemies, got count %d", l.Layout, grid767Count, l.Count)
		}
	case LayoutRow, LayoutColumns, LayoutRandom, LayoutAbove:
	default:
		return fmt.Errorf("unknown layout %q", l.Layout)
	}
	return nil
}

// CheckEnemies reports the first level whose enemy tag is not known.
func (t *Table) CheckEnemies(known func(tag string) bool) error {
	for _, l := range t.Levels {
		if !known(l.Enemy) {
			return fmt.Errorf("levels: level %d: unknown enemy %q", l.Number, l.Enemy)
		}
	}
	return nil
}

// For returns the level with the given number. Numbers beyond the table
// cycle through it.
func (t *Table) For(number int) Level {
	for _, l := range t.Levels {
		if l.Number == number {
			return l
		}
	}
	idx := (number - 1) % len(t.Levels)
	if idx < 0 {
		idx = 0
	}
	l := t.Levels[idx]
	l.Number = number
	return l
}
