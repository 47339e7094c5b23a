package engine

import "github.com/kevinmchugh/anteforge/internal/values"

// ScoreBreakdown is play_hand's success postcondition payload (spec §4.7).
// Base is the final {chips, mult} the hand scored with (after every joker,
// card and hook contribution); Total = floor(Base.Chips * Base.Mult).
// RankChips is the sum of each non-debuffed scoring card's rank-chip
// contribution, before any enhancement/edition/joker effect.
type ScoreBreakdown struct {
	Hand           values.HandKind
	ScoringIndices []int
	Base           values.Score
	RankChips      int
	Total          int
	Trace          []ScoreTraceEntry
}
