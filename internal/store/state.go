// Package store holds the authoritative game state. State changes only
// through named actions applied by a pure reducer; subscribers are notified
// after every dispatch.
package store

// MaxLevel is the last level; advancing past it wraps to level 1.
const MaxLevel = 42

// DefaultExtraLifeThreshold is the number of points between extra life awards.
const DefaultExtraLifeThreshold = 7500

// GameState is the snapshot shared by the runners and the draw pass.
type GameState struct {
	Score          int
	Lives          int
	Phasers        int
	Level          int
	Pause          bool
	BulletsFired   int
	EnemiesHit     int
	GameOver       bool
	WarpComplexity int

	// LastAwardScore is the score at which the last extra life was granted.
	LastAwardScore int
	// ExtraLifeThreshold is the point distance between awards.
	ExtraLifeThreshold int
}

// Accuracy returns the percentage of fired bullets that hit an enemy.
func (s GameState) Accuracy() float64 {
	if s.BulletsFired == 0 {
		return 0
	}
	return float64(s.EnemiesHit) * 100 / float64(s.BulletsFired)
}

// Initial returns the state a new game starts from.
func Initial(lives, phasers int) GameState {
	return GameState{
		Lives:              lives,
		Phasers:            phasers,
		Level:              1,
		ExtraLifeThreshold: DefaultExtraLifeThreshold,
	}
}
