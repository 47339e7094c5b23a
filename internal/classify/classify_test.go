package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kevinmchugh/anteforge/internal/values"
)

func card(suit values.Suit, rank values.Rank) values.Card {
	return values.Card{Suit: suit, Rank: rank}
}

func TestRoyalFlush(t *testing.T) {
	hand := []values.Card{
		card(values.Spades, values.Ace),
		card(values.Spades, values.King),
		card(values.Spades, values.Queen),
		card(values.Spades, values.Jack),
		card(values.Spades, values.Ten),
	}
	res := Classify(hand, Rules{})
	assert.Equal(t, values.RoyalFlush, res.Kind.Builtin)
	assert.Len(t, res.ScoringIndices, 5)
}

func TestFourFingersAllowsFourCardStraight(t *testing.T) {
	hand := []values.Card{
		card(values.Hearts, values.Ace),
		card(values.Spades, values.Two),
		card(values.Clubs, values.Three),
		card(values.Diamonds, values.Four),
	}
	res := Classify(hand, Rules{FourFingers: true})
	assert.Equal(t, values.Straight, res.Kind.Builtin)
}

func TestStoneCardContributesNoRankChipsButScores(t *testing.T) {
	stone := card(values.Spades, values.Five)
	stone.Enhancement = values.Stone
	assert.Equal(t, 0, stone.RankChips())

	hand := []values.Card{stone, card(values.Hearts, values.Five)}
	res := Classify(hand, Rules{})
	assert.Equal(t, values.Pair, res.Kind.Builtin)
	assert.Contains(t, res.ScoringIndices, 0)
}

func TestClassifyIdempotentUnderShuffle(t *testing.T) {
	hand := []values.Card{
		card(values.Spades, values.Ace),
		card(values.Hearts, values.Ace),
		card(values.Clubs, values.Two),
		card(values.Diamonds, values.Three),
		card(values.Spades, values.Four),
	}
	reversed := make([]values.Card, len(hand))
	for i, c := range hand {
		reversed[len(hand)-1-i] = c
	}

	a := Classify(hand, Rules{})
	b := Classify(reversed, Rules{})
	assert.True(t, a.Kind.Equal(b.Kind))
}

func TestDefaultTableRoyalFlushLevel1(t *testing.T) {
	tbl := DefaultTable()
	chips, mult := tbl.BaseForLevel(values.RoyalFlush.String(), 1)
	assert.Equal(t, 100, chips)
	assert.Equal(t, 8.0, mult)
}

func TestSmearedSuitsGroupsHeartsAndDiamonds(t *testing.T) {
	hand := []values.Card{
		card(values.Hearts, values.Two),
		card(values.Diamonds, values.Four),
		card(values.Hearts, values.Six),
		card(values.Diamonds, values.Eight),
		card(values.Hearts, values.Ten),
	}
	res := Classify(hand, Rules{SmearedSuits: true})
	assert.Equal(t, values.Flush, res.Kind.Builtin)
}

func TestSplashScoresEveryPlayedCard(t *testing.T) {
	hand := []values.Card{
		card(values.Spades, values.Two),
		card(values.Hearts, values.Nine),
		card(values.Clubs, values.King),
	}
	res := Classify(hand, Rules{Splash: true})
	assert.Equal(t, values.HighCard, res.Kind.Builtin)
	assert.ElementsMatch(t, []int{0, 1, 2}, res.ScoringIndices)
}

func TestMaxGapWidensStraightBeyondShortcut(t *testing.T) {
	hand := []values.Card{
		card(values.Hearts, values.Two),
		card(values.Spades, values.Five),
		card(values.Clubs, values.Eight),
		card(values.Diamonds, values.Jack),
		card(values.Hearts, values.Ace),
	}
	res := Classify(hand, Rules{})
	assert.NotEqual(t, values.Straight, res.Kind.Builtin)

	res = Classify(hand, Rules{MaxGap: 3})
	assert.Equal(t, values.Straight, res.Kind.Builtin)
}
