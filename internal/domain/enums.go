package domain

// Difficulty is a caller-supplied label attached to stored puzzles.
// The engine never computes it.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles StrategyTier = iota // naked singles / sole candidates
	StrategyHidden                      // hidden singles (unique position in a unit)
	StrategyAdvanced                    // pairs, pointing/claiming, etc. (cap only)
)
