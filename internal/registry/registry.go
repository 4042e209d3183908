// Package registry provides a global registry of enemy types.
// Asset packages register blueprints in init() functions, allowing levels to
// name enemies by tag without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-r42/internal/entity"
)

// ErrUnknownEnemy is returned when a tag has no registered blueprint.
var ErrUnknownEnemy = errors.New("unknown enemy type")

// EnemyInfo contains metadata about a registered enemy type.
type EnemyInfo struct {
	Tag       string
	Title     string
	Points    int
	Hitpoints int
}

// Factory returns a fresh blueprint for one enemy type.
type Factory func() entity.Blueprint

type entry struct {
	title   string
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds an enemy type to the registry.
// Panics if the tag is already registered.
func Register(tag, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[tag]; exists {
		panic(fmt.Sprintf("registry: enemy %q already registered", tag))
	}
	entries[tag] = entry{title: title, factory: f}
}

// List returns all registered enemy types, sorted by tag.
func List() []EnemyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]EnemyInfo, 0, len(entries))
	for tag, e := range entries {
		bp := e.factory()
		result = append(result, EnemyInfo{
			Tag:       tag,
			Title:     e.title,
			Points:    bp.Points,
			Hitpoints: bp.Hitpoints,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Tag < result[j].Tag
	})
	return result
}

// Blueprint returns the blueprint for tag.
func Blueprint(tag string) (entity.Blueprint, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[tag]
	if !ok {
		return entity.Blueprint{}, fmt.Errorf("registry: %w %q", ErrUnknownEnemy, tag)
	}
	bp := e.factory()
	bp.Type = tag
	return bp, nil
}

// Exists checks if an enemy type with the given tag is registered.
func Exists(tag string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[tag]
	return ok
}
