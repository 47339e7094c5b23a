package classify

import (
	"math/rand"
	"testing"

	"pgregory.net/rapid"

	"github.com/kevinmchugh/anteforge/internal/values"
)

// TestClassifyShuffleInvariantProperty is spec §8's "hand classifier
// idempotence" property: classify(cards) == classify(shuffle(cards)),
// checked across many random hands and shuffles.
func TestClassifyShuffleInvariantProperty(t *testing.T) {
	suits := []values.Suit{values.Spades, values.Hearts, values.Clubs, values.Diamonds}

	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 5).Draw(rt, "n")
		seed := rapid.Int64().Draw(rt, "seed")

		hand := make([]values.Card, n)
		for i := 0; i < n; i++ {
			suit := suits[rapid.IntRange(0, 3).Draw(rt, "suit")]
			rank := values.Rank(rapid.IntRange(1, 13).Draw(rt, "rank"))
			hand[i] = card(suit, rank)
		}

		shuffled := make([]values.Card, len(hand))
		copy(shuffled, hand)
		src := rand.New(rand.NewSource(seed))
		src.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		a := Classify(hand, Rules{})
		b := Classify(shuffled, Rules{})
		if !a.Kind.Equal(b.Kind) {
			rt.Fatalf("classify not shuffle-invariant: %v vs %v for hand %v", a.Kind, b.Kind, hand)
		}
	})
}
