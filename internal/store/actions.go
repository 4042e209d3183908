package store

import "fmt"

// ActionType names a state transition.
type ActionType int

const (
	IncreaseScore ActionType = iota
	SetLives
	AddLife
	RemoveLife
	SetPhasers
	AddPhaser
	RemovePhaser
	SetLevel
	NextLevel
	AddLifeAndPhaser
	SetPause
	BulletFired
	EnemyHit
	SetWarpComplexity
	GameOver
	Reset
)

var actionNames = map[ActionType]string{
	IncreaseScore:     "IncreaseScore",
	SetLives:          "SetLives",
	AddLife:           "AddLife",
	RemoveLife:        "RemoveLife",
	SetPhasers:        "SetPhasers",
	AddPhaser:         "AddPhaser",
	RemovePhaser:      "RemovePhaser",
	SetLevel:          "SetLevel",
	NextLevel:         "NextLevel",
	AddLifeAndPhaser:  "AddLifeAndPhaser",
	SetPause:          "SetPause",
	BulletFired:       "BulletFired",
	EnemyHit:          "EnemyHit",
	SetWarpComplexity: "SetWarpComplexity",
	GameOver:          "GameOver",
	Reset:             "Reset",
}

// String returns the action name.
func (t ActionType) String() string {
	if n, ok := actionNames[t]; ok {
		return n
	}
	return fmt.Sprintf("ActionType(%d)", int(t))
}

// Action is a named transition with its payload. Value is used by the
// integer actions, Flag by SetPause, State by Reset.
type Action struct {
	Type  ActionType
	Value int
	Flag  bool
	State GameState
}

// Score creates an IncreaseScore action.
func Score(points int) Action { return Action{Type: IncreaseScore, Value: points} }

// Pause creates a SetPause action.
func Pause(paused bool) Action { return Action{Type: SetPause, Flag: paused} }

// Level creates a SetLevel action.
func Level(level int) Action { return Action{Type: SetLevel, Value: level} }

// Simple creates an action without payload.
func Simple(t ActionType) Action { return Action{Type: t} }

// ResetTo creates a Reset action that replaces the whole state.
func ResetTo(s GameState) Action { return Action{Type: Reset, State: s} }
