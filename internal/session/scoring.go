package session

import "time"

// scoreFor returns the points awarded for clearing lines in one lock.
func (c Config) scoreFor(lines int) int {
	return lines * c.LinePoints
}

// levelFor returns the level reached at score. Levels start at 1.
func (c Config) levelFor(score int) int {
	return score/c.LevelThreshold + 1
}

// speedFor returns the gravity interval at level, never below SpeedFloor.
func (c Config) speedFor(level int) time.Duration {
	return max(c.SpeedFloor, c.InitialSpeed-time.Duration(level-1)*c.SpeedStep)
}
