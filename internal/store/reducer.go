package store

// Reduce applies an action to a state snapshot and returns the next
// snapshot. It has no side effects; the input is never modified.
func Reduce(s GameState, a Action) GameState {
	switch a.Type {
	case IncreaseScore:
		return awardExtraLife(withScore(s, s.Score+a.Value))
	case SetLives:
		s.Lives = max(a.Value, 0)
	case AddLife:
		s.Lives++
	case RemoveLife:
		if s.Lives <= 0 {
			s.GameOver = true
			return s
		}
		s.Lives--
	case SetPhasers:
		s.Phasers = max(a.Value, 0)
	case AddPhaser:
		s.Phasers++
	case RemovePhaser:
		if s.Phasers > 0 {
			s.Phasers--
		}
	case SetLevel:
		s.Level = clampLevel(a.Value)
	case NextLevel:
		s.Level = nextLevel(s.Level)
	case AddLifeAndPhaser:
		s.Lives++
		s.Phasers++
	case SetPause:
		s.Pause = a.Flag
	case BulletFired:
		s.BulletsFired++
	case EnemyHit:
		s.EnemiesHit++
	case SetWarpComplexity:
		s.WarpComplexity = max(a.Value, 0)
	case GameOver:
		s.GameOver = true
	case Reset:
		return a.State
	}
	return s
}

func withScore(s GameState, score int) GameState {
	s.Score = score
	return s
}

// awardExtraLife grants one life and one phaser charge per threshold
// crossed since the last award.
func awardExtraLife(s GameState) GameState {
	threshold := s.ExtraLifeThreshold
	if threshold <= 0 {
		return s
	}
	if s.Score-s.LastAwardScore >= threshold {
		s.Lives++
		s.Phasers++
		s.LastAwardScore = s.Score
	}
	return s
}

func nextLevel(level int) int {
	if level >= MaxLevel {
		return 1
	}
	return level + 1
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
