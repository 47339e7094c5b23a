package values

import (
	"testing"

	"pgregory.net/rapid"
)

// TestShuffleIsPermutationProperty checks, across many random seeds, that
// shuffling a standard deck always yields a permutation of the same 52 ids:
// no card is lost or duplicated by Shuffle, whatever the seed.
func TestShuffleIsPermutationProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64().Draw(rt, "seed")
		d := NewStandardDeck()
		before := make(map[uint32]bool, 52)
		for _, c := range d.DrawPile() {
			before[c.ID] = true
		}

		d.Shuffle(NewRNG(seed))

		if len(d.DrawPile()) != 52 {
			rt.Fatalf("expected 52 cards after shuffle, got %d", len(d.DrawPile()))
		}
		after := make(map[uint32]bool, 52)
		for _, c := range d.DrawPile() {
			after[c.ID] = true
		}
		for id := range before {
			if !after[id] {
				rt.Fatalf("card id %d lost during shuffle", id)
			}
		}
	})
}
