package blast

import "github.com/vovakirdan/tile-blast/internal/config"

// regionPoints returns the points for clearing a region of n tiles.
func regionPoints(s config.ScoringConfig, n int) int {
	points := n * s.PointsPerTile
	if s.BonusThreshold > 0 && n >= s.BonusThreshold {
		points += n * s.BonusPerTile
	}
	return points
}

// levelBonus returns the points for winning a level with movesLeft unused
// moves. movesLeft is negative for levels without a limit.
func levelBonus(s config.ScoringConfig, movesLeft int) int {
	bonus := s.LevelClearBonus
	if movesLeft > 0 {
		bonus += movesLeft * s.MoveBonus
	}
	return bonus
}
