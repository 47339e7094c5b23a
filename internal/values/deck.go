package values

// Deck is the draw/discard pair described in spec §3. Draw pops from the
// tail; when draw is exhausted, discard is moved into draw and reshuffled.
// Grounded on the teacher's internal/game/deck.go NewDeck/ShuffleDeck, split
// into an owned struct instead of a package-level slice plus index.
type Deck struct {
	draw    []Card
	discard []Card
	nextID  uint32
}

// NewStandardDeck builds the 52 distinct cards (13 ranks x 4 suits), each
// with a unique id assigned in construction order.
func NewStandardDeck() *Deck {
	d := &Deck{}
	for _, suit := range []Suit{Spades, Hearts, Clubs, Diamonds} {
		for rank := Ace; rank <= King; rank++ {
			d.draw = append(d.draw, Card{ID: d.nextID, Suit: suit, Rank: rank})
			d.nextID++
		}
	}
	return d
}

// NextID reserves a fresh unique card id, used when mods create new cards
// (e.g. a Tarot effect that adds a card to the deck).
func (d *Deck) NextID() uint32 {
	id := d.nextID
	d.nextID++
	return id
}

func (d *Deck) DrawPile() []Card    { return d.draw }
func (d *Deck) DiscardPile() []Card { return d.discard }
func (d *Deck) Len() int            { return len(d.draw) + len(d.discard) }

// Shuffle permutes the draw pile in place.
func (d *Deck) Shuffle(rng *RNG) { Shuffle(rng, d.draw) }

// ShuffleAll moves the discard pile back into draw and reshuffles the
// combined pile; used at blind start.
func (d *Deck) ShuffleAll(rng *RNG) {
	d.draw = append(d.draw, d.discard...)
	d.discard = nil
	Shuffle(rng, d.draw)
}

// Draw pops n cards from the tail of draw, reshuffling discard into draw
// first whenever draw runs dry mid-draw. Returns fewer than n cards only if
// the deck is entirely exhausted (draw and discard both empty).
func (d *Deck) Draw(rng *RNG, n int) []Card {
	out := make([]Card, 0, n)
	for len(out) < n {
		if len(d.draw) == 0 {
			if len(d.discard) == 0 {
				break
			}
			d.draw = d.discard
			d.discard = nil
			Shuffle(rng, d.draw)
		}
		last := len(d.draw) - 1
		out = append(out, d.draw[last])
		d.draw = d.draw[:last]
	}
	return out
}

// Discard appends cards to the discard pile.
func (d *Deck) Discard(cards ...Card) {
	d.discard = append(d.discard, cards...)
}

// Destroy removes cards from circulation entirely (neither draw nor
// discard); used by explicit destroy effects which are the sanctioned
// exception to the conservation invariant.
func (d *Deck) Destroy(ids map[uint32]bool) {
	d.draw = filterOutIDs(d.draw, ids)
	d.discard = filterOutIDs(d.discard, ids)
}

// AddCard injects a newly-created card directly into the discard pile
// (it will be reshuffled into draw in due course), used by create effects.
func (d *Deck) AddCard(c Card) {
	d.discard = append(d.discard, c)
}

func filterOutIDs(cards []Card, ids map[uint32]bool) []Card {
	out := cards[:0:0]
	for _, c := range cards {
		if !ids[c.ID] {
			out = append(out, c)
		}
	}
	return out
}
