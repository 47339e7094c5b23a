// Package classify implements the pure hand-classification function and the
// companion score table lookup described in spec §4.3.
package classify

import (
	"sort"

	"github.com/kevinmchugh/anteforge/internal/values"
)

// Rules are the configurable classifier flags, each sourced from the
// rule-variable store (or a flow-kernel Patch override) before classify is
// called. MaxGap is the max_gap rule variable's straight-gap tolerance;
// Classify applies Shortcut's gap of 2 itself and uses whichever of the two
// is larger, so callers pass MaxGap and Shortcut independently.
type Rules struct {
	FourFingers  bool
	Shortcut     bool
	SmearedSuits bool
	Splash       bool
	MaxGap       int
}

// Result is what Classify returns: the winning hand kind plus the subset of
// input indices that count as "scoring" for that kind. Stone cards are
// always included in ScoringIndices even though they never drive the
// flush/straight check itself.
type Result struct {
	Kind            values.HandKind
	ScoringIndices  []int
}

// Classify is a pure function: (cards, rules) -> (kind, scoring indices).
// Ties between simultaneously-matching classifications are broken by
// BuiltinHand.Rank(), highest wins, matching spec §4.3's ordering.
//
// Grounded on the teacher's internal/game/hands.go HandEvaluator list
// (royal flush down to high card, evaluated in priority order), generalized
// here to evaluate *all* matches and pick the highest-ranked one instead of
// the first match in a hardcoded priority list, so a mod-declared custom
// hand type's own priority composes correctly via the flow kernel's
// HandType Replace (handled one layer up, in the pipeline) without this
// function needing to know about mods at all.
func Classify(cards []values.Card, rules Rules) Result {
	if len(cards) == 0 {
		return Result{Kind: values.Builtin(values.HighCard)}
	}

	best := values.Builtin(values.HighCard)
	bestRank := -1
	for _, candidate := range []values.BuiltinHand{
		values.RoyalFlush, values.StraightFlush, values.FiveOfAKind, values.FlushHouse,
		values.Quads, values.FullHouse, values.Flush, values.Straight, values.Trips,
		values.TwoPair, values.Pair, values.HighCard, values.FlushFive,
	} {
		if matches(candidate, cards, rules) && candidate.Rank() > bestRank {
			best = values.Builtin(candidate)
			bestRank = candidate.Rank()
		}
	}

	return Result{Kind: best, ScoringIndices: scoringIndices(best.Builtin, cards, rules)}
}

func rankCounts(cards []values.Card) map[values.Rank]int {
	counts := make(map[values.Rank]int)
	for _, c := range cards {
		if c.IsWildEnhanced() {
			continue // wild-enhancement cards count toward every rank group below instead
		}
		counts[c.Rank]++
	}
	return counts
}

func suitGroup(s values.Suit, smeared bool) values.Suit {
	if !smeared {
		return s
	}
	switch s {
	case values.Diamonds:
		return values.Hearts
	case values.Clubs:
		return values.Spades
	default:
		return s
	}
}

// nonStoneScoringCards is every card eligible to drive a flush/straight
// check: Stone cards never count toward either (spec §3 invariant) but
// remain in the full scoring set.
func nonStoneScoringCards(cards []values.Card) []values.Card {
	out := make([]values.Card, 0, len(cards))
	for _, c := range cards {
		if !c.IsStone() {
			out = append(out, c)
		}
	}
	return out
}

func isFlushOf(cards []values.Card, rules Rules, minSize int) bool {
	eligible := nonStoneScoringCards(cards)
	if len(eligible) < minSize {
		return false
	}
	groups := make(map[values.Suit]int)
	wilds := 0
	for _, c := range eligible {
		if c.Suit == values.Wild || c.IsWildEnhanced() {
			wilds++
			continue
		}
		groups[suitGroup(c.Suit, rules.SmearedSuits)]++
	}
	for _, n := range groups {
		if n+wilds >= minSize {
			return true
		}
	}
	return wilds >= minSize && len(groups) == 0
}

func straightRanks(cards []values.Card, rules Rules) ([]int, bool) {
	eligible := nonStoneScoringCards(cards)
	need := 5
	if rules.FourFingers {
		need = 4
	}
	if len(eligible) < need {
		return nil, false
	}

	rankSet := make(map[int]bool)
	for _, c := range eligible {
		rankSet[int(c.Rank)] = true
		if c.Rank == values.Ace {
			rankSet[int(values.King)+1] = true // high ace, above King
		}
	}
	var sorted []int
	for r := range rankSet {
		sorted = append(sorted, r)
	}
	sort.Ints(sorted)

	maxGap := 1
	if rules.Shortcut {
		maxGap = 2
	}
	if rules.MaxGap > maxGap {
		maxGap = rules.MaxGap
	}

	// Slide a window looking for `need` ranks spanning a run whose
	// consecutive gaps are each <= maxGap (shortcut) and total span allows
	// exactly `need` distinct ranks within it.
	for start := 0; start < len(sorted); start++ {
		run := []int{sorted[start]}
		for k := start + 1; k < len(sorted) && len(run) < need; k++ {
			if sorted[k]-run[len(run)-1] <= maxGap && sorted[k]-run[len(run)-1] >= 1 {
				run = append(run, sorted[k])
			} else if sorted[k] == run[len(run)-1] {
				continue
			} else {
				break
			}
		}
		if len(run) == need {
			return run, true
		}
	}
	return nil, false
}

func matches(kind values.BuiltinHand, cards []values.Card, rules Rules) bool {
	counts := rankCounts(cards)
	wildCount := 0
	for _, c := range cards {
		if c.IsWildEnhanced() {
			wildCount++
		}
	}
	hasN := func(n int) bool {
		for _, c := range counts {
			if c+wildCount >= n {
				return true
			}
		}
		return n <= wildCount
	}
	pairCount := func() int {
		p := 0
		for _, c := range counts {
			if c >= 2 {
				p++
			}
		}
		return p
	}

	flush := isFlushOf(cards, rules, 5)
	straightRun, isStraight := straightRanks(cards, rules)
	_ = straightRun

	switch kind {
	case values.RoyalFlush:
		if !flush || !isStraight {
			return false
		}
		// must specifically be the A-10-J-Q-K run
		for _, r := range straightRun {
			if r < int(values.Ten) && r != 0 {
				return false
			}
		}
		return len(straightRun) == 5
	case values.StraightFlush:
		return flush && isStraight
	case values.FiveOfAKind:
		return hasN(5) && !flush
	case values.FlushFive:
		return hasN(5) && flush
	case values.FlushHouse:
		return flush && hasFullHouseShape(counts, wildCount)
	case values.Quads:
		return hasN(4)
	case values.FullHouse:
		return hasFullHouseShape(counts, wildCount)
	case values.Flush:
		return flush
	case values.Straight:
		return isStraight
	case values.Trips:
		return hasN(3)
	case values.TwoPair:
		return pairCount()+wildCount >= 2 || (pairCount() >= 1 && wildCount >= 1)
	case values.Pair:
		return hasN(2)
	case values.HighCard:
		return true
	default:
		return false
	}
}

func hasFullHouseShape(counts map[values.Rank]int, wildCount int) bool {
	var three, two int
	for _, c := range counts {
		switch {
		case c >= 3:
			three++
		case c == 2:
			two++
		}
	}
	if three >= 1 && (two >= 1 || wildCount >= 2) {
		return true
	}
	if three >= 1 && wildCount >= 2 {
		return true
	}
	// not quite three-of-a-kind without wilds: a pair plus enough wilds to
	// reach trips, plus another pair.
	var pairs int
	for _, c := range counts {
		if c == 2 {
			pairs++
		}
	}
	if pairs >= 1 && wildCount >= 1 && pairs >= 2 {
		return true
	}
	return false
}

// scoringIndices returns which input indices count toward the winning
// classification. Stone cards are always included; for hand kinds keyed on
// rank grouping, only cards in the winning rank group(s) count. The flush
// and straight families and FiveOfAKind score every played card (Balatro's
// own "all 5 score on a flush" rule); HighCard scores its single
// highest-ranked non-stone card.
func scoringIndices(kind values.BuiltinHand, cards []values.Card, rules Rules) []int {
	all := make([]int, len(cards))
	for i := range cards {
		all[i] = i
	}

	if rules.Splash {
		return all
	}

	switch kind {
	case values.Flush, values.Straight, values.StraightFlush, values.RoyalFlush,
		values.FlushFive, values.FlushHouse, values.FiveOfAKind:
		return all
	case values.HighCard:
		var idx, pos []int
		var rest []values.Card
		for i, c := range cards {
			if c.IsStone() {
				idx = append(idx, i)
			} else {
				rest = append(rest, c)
				pos = append(pos, i)
			}
		}
		for _, j := range highestRankIndex(rest) {
			idx = append(idx, pos[j])
		}
		sort.Ints(idx)
		return idx
	default:
		return rankGroupIndices(kind, cards)
	}
}

func highestRankIndex(cards []values.Card) []int {
	best := -1
	bestVal := -1
	for i, c := range cards {
		v := int(c.Rank)
		if c.Rank == values.Ace {
			v = 100
		}
		if v > bestVal {
			bestVal = v
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	return []int{best}
}

func rankGroupIndices(kind values.BuiltinHand, cards []values.Card) []int {
	counts := rankCounts(cards)
	need := 0
	switch kind {
	case values.Pair:
		need = 2
	case values.TwoPair:
		need = 2 // both groups of 2
	case values.Trips:
		need = 3
	case values.Quads:
		need = 4
	case values.FullHouse:
		need = 2 // both the trip and the pair count
	}

	targetRanks := make(map[values.Rank]bool)
	switch kind {
	case values.TwoPair:
		found := 0
		for r, c := range counts {
			if c >= 2 {
				targetRanks[r] = true
				found++
			}
		}
		_ = found
	case values.FullHouse:
		for r, c := range counts {
			if c >= 2 {
				targetRanks[r] = true
			}
		}
	default:
		for r, c := range counts {
			if c >= need {
				targetRanks[r] = true
			}
		}
	}

	var idx []int
	for i, c := range cards {
		if c.IsStone() || c.IsWildEnhanced() || targetRanks[c.Rank] {
			idx = append(idx, i)
		}
	}
	return idx
}
