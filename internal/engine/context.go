package engine

import (
	"math"
	"strconv"
	"strings"

	"github.com/kevinmchugh/anteforge/internal/classify"
	"github.com/kevinmchugh/anteforge/internal/expr"
	"github.com/kevinmchugh/anteforge/internal/rules"
	"github.com/kevinmchugh/anteforge/internal/values"
)

// EffectContext is the expr.Context every content-authored effect's
// `when`/action expressions evaluate against. It exposes run-level
// identifiers (money, ante, hands_left, ...), the card currently under
// consideration (card.suit, card.rank, card.enhancement, ...) when one
// applies, the classified hand (hand.kind, hand.size) when one
// applies, and the card-scope collections (Played/Held/Discarded) the
// count/lowest_rank/... calls search.
//
// Grounded on the teacher's internal/game package, which tracks similar
// per-evaluation state as loose locals inside its scoring loop; this struct
// gathers the equivalent of the Rust original's EvalContext (core/src/run/
// eval.rs) into one value threaded through the pipeline instead.
//
// Grounded on spec §4.2's note (carried over from internal/expr/eval.go)
// that smeared-suit grouping is a caller concern: card.suit here resolves
// through suitGroupName, which folds diamonds into hearts and clubs into
// spades whenever the rules.KeySmearedSuits flag is active.
type EffectContext struct {
	State *RunState
	Card  *values.Card
	Hand  *classify.Result
	Score values.Score

	// SourceID is the joker/consumable/tag/boss instance id currently
	// running its effects, set by runCompiledEffects/runActions. var(name)
	// reads it back to find the right instance's Locals.
	SourceID string

	// Played/Held/Discarded are the card-scope collections the count(),
	// lowest_rank()/min_rank() calls search by name ("played", "held",
	// "discarded"). Set by the pipeline step that owns each scope
	// (PlayHand, Discard); nil when not applicable.
	Played    []values.Card
	Held      []values.Card
	Discarded []values.Card

	// IsScoringCard/IsHeldCard/IsPlayedCard answer the is_scoring/is_held/
	// is_played identifiers for whatever card Card currently points at.
	IsScoringCard bool
	IsHeldCard    bool
	IsPlayedCard  bool

	// ConsumableKind/ConsumableID back consumable.kind/consumable.id while
	// a tarot/planet/spectral's own effects are running.
	ConsumableKind string
	ConsumableID   string

	// SoldValue backs the sold_value identifier while AnySell/a sell-
	// triggered effect for the just-sold joker is running.
	SoldValue int
}

var _ expr.Context = (*EffectContext)(nil)

func suitGroupName(s values.Suit, smeared bool) string {
	if smeared {
		switch s {
		case values.Diamonds:
			return values.Hearts.String()
		case values.Clubs:
			return values.Spades.String()
		}
	}
	return s.String()
}

func (c *EffectContext) Identifier(name string) (expr.Value, bool) {
	if c.Card != nil {
		if v, ok := c.cardIdentifier(name); ok {
			return v, true
		}
	}
	if c.Hand != nil {
		if v, ok := c.handIdentifier(name); ok {
			return v, true
		}
	}
	if v, ok := c.consumableIdentifier(name); ok {
		return v, true
	}
	return c.runIdentifier(name)
}

func (c *EffectContext) smearedSuitsActive() bool {
	return c.State != nil && c.State.Rules.Flag(rules.KeySmearedSuits)
}

func (c *EffectContext) cardIdentifier(name string) (expr.Value, bool) {
	rest, ok := strings.CutPrefix(name, "card.")
	if !ok {
		return expr.Value{}, false
	}
	card := c.Card
	switch rest {
	case "suit":
		return expr.String(suitGroupName(card.Suit, c.smearedSuitsActive())), true
	case "suit_id":
		return expr.Number(float64(card.Suit)), true
	case "rank":
		return expr.String(card.Rank.String()), true
	case "rank_chips":
		return expr.Number(float64(card.RankChips())), true
	case "enhancement":
		return expr.String(card.Enhancement.String()), true
	case "edition":
		return expr.String(card.Edition.String()), true
	case "seal":
		return expr.String(card.Seal.String()), true
	case "is_face":
		pareidolia := c.State != nil && c.State.Rules.Flag(rules.KeyPareidolia)
		return expr.Bool(card.Rank.IsFace() || (pareidolia && !card.IsStone())), true
	case "is_wild":
		return expr.Bool(card.IsWildEnhanced()), true
	case "is_odd":
		return expr.Bool(card.Rank.IsOdd()), true
	case "is_even":
		return expr.Bool(card.Rank.IsEven()), true
	case "is_stone":
		return expr.Bool(card.IsStone()), true
	case "face_down":
		return expr.Bool(card.FaceDown), true
	default:
		return expr.Value{}, false
	}
}

func (c *EffectContext) handIdentifier(name string) (expr.Value, bool) {
	rest, ok := strings.CutPrefix(name, "hand.")
	if !ok {
		return expr.Value{}, false
	}
	switch rest {
	case "kind":
		return expr.String(c.Hand.Kind.String()), true
	case "size":
		return expr.Number(float64(len(c.Hand.ScoringIndices))), true
	default:
		return expr.Value{}, false
	}
}

func (c *EffectContext) consumableIdentifier(name string) (expr.Value, bool) {
	rest, ok := strings.CutPrefix(name, "consumable.")
	if !ok {
		return expr.Value{}, false
	}
	switch rest {
	case "kind":
		if c.ConsumableKind == "" {
			return expr.Value{}, false
		}
		return expr.String(c.ConsumableKind), true
	case "id":
		if c.ConsumableID == "" {
			return expr.Value{}, false
		}
		return expr.String(c.ConsumableID), true
	default:
		return expr.Value{}, false
	}
}

func (c *EffectContext) runIdentifier(name string) (expr.Value, bool) {
	if c.State == nil {
		return expr.Value{}, false
	}
	s := c.State
	switch name {
	case "money":
		return expr.Number(float64(s.Money)), true
	case "ante":
		return expr.Number(float64(s.Ante)), true
	case "hands_left":
		return expr.Number(float64(s.HandsLeft)), true
	case "discards_left":
		return expr.Number(float64(s.DiscardsLeft)), true
	case "hands_max":
		return expr.Number(float64(s.HandsMax)), true
	case "discards_max":
		return expr.Number(float64(s.DiscardsMax)), true
	case "blind":
		return expr.String(s.Blind.String()), true
	case "is_boss_blind":
		return expr.Bool(s.Blind == BossBlind), true
	case "chips":
		return expr.Number(float64(c.Score.Chips)), true
	case "mult":
		return expr.Number(c.Score.Mult), true
	case "joker_count":
		return expr.Number(float64(len(s.Inventory.Jokers))), true
	case "joker_slots":
		return expr.Number(float64(s.Inventory.JokerSlots)), true
	case "empty_joker_slots":
		empty := s.Inventory.JokerSlots - len(s.Inventory.Jokers)
		if empty < 0 {
			empty = 0
		}
		return expr.Number(float64(empty)), true
	case "hand_size":
		return expr.Number(float64(s.HandSizeBase)), true
	case "blind_score":
		return expr.Number(float64(s.BlindScore)), true
	case "target":
		return expr.Number(float64(s.Target)), true
	case "scoring_count":
		if c.Hand == nil {
			return expr.Number(0), true
		}
		return expr.Number(float64(len(c.Hand.ScoringIndices))), true
	case "held_count":
		return expr.Number(float64(len(c.Held))), true
	case "deck_count":
		count := s.Deck.Len() + len(c.Held) + len(c.Played) + len(c.Discarded)
		return expr.Number(float64(count)), true
	case "hand_play_count":
		if c.Hand == nil {
			return expr.Number(0), true
		}
		return expr.Number(float64(s.HandPlayCounts[c.Hand.Kind.String()])), true
	case "hand_level":
		if c.Hand == nil {
			return expr.Number(0), true
		}
		return expr.Number(float64(s.HandLevels[c.Hand.Kind.String()])), true
	case "is_scoring":
		return expr.Bool(c.IsScoringCard), true
	case "is_held":
		return expr.Bool(c.IsHeldCard), true
	case "is_played":
		return expr.Bool(c.IsPlayedCard), true
	case "sold_value":
		return expr.Number(float64(c.SoldValue)), true
	}
	if v := s.Rules.Get(name); v != 0 {
		return expr.Number(v), true
	}
	return expr.Value{}, false
}

// scopeCards resolves a count()/lowest_rank() scope name to the matching
// card collection. "deck"/"full_deck" is handled by the caller (it spans
// draw+discard+held+played+discarded, not a single slice).
func (c *EffectContext) scopeCards(scope string) []values.Card {
	switch expr.NormalizeString(scope) {
	case "held", "hand":
		return c.Held
	case "played", "scoring":
		return c.Played
	case "discarded", "discard":
		return c.Discarded
	case "draw":
		if c.State != nil {
			return c.State.Deck.DrawPile()
		}
	case "discard_pile":
		if c.State != nil {
			return c.State.Deck.DiscardPile()
		}
	}
	return nil
}

// Call resolves function-style expressions content effects use. rule(x)/
// flag(x) are generic accessors onto the rule-variable store and level(x)
// reads a hand type's level from RunState.HandLevels (this
// engine's generalization of the Rust original's fixed identifier set,
// since rule variables here are an open, content-declared namespace rather
// than a closed enum); every other case is spec §4.2's call vocabulary,
// grounded on the Rust original's eval_call (core/src/run/eval.rs).
func (c *EffectContext) Call(name string, args []expr.Value) (expr.Value, bool, error) {
	if c.State == nil {
		return expr.Value{}, false, nil
	}
	s := c.State
	switch strings.ToLower(name) {
	case "rule":
		if len(args) != 1 {
			return expr.Value{}, false, nil
		}
		return expr.Number(s.Rules.Get(args[0].AsString())), true, nil
	case "flag":
		if len(args) != 1 {
			return expr.Value{}, false, nil
		}
		return expr.Bool(s.Rules.Flag(args[0].AsString())), true, nil
	case "level":
		if len(args) != 1 {
			return expr.Value{}, false, nil
		}
		key := args[0].AsString()
		if kind, ok := handKindFromString(key); ok {
			key = kind.String()
		}
		return expr.Number(float64(s.HandLevels[key])), true, nil

	case "contains":
		if len(args) != 2 {
			return expr.Bool(false), true, nil
		}
		// A bare `hand` identifier isn't bound by Identifier (only the
		// dotted hand.kind/hand.size are), so it evaluates to the literal
		// string "hand" via the kernel's unbound-identifier fallback;
		// resolve that specific literal back to the hand under evaluation.
		var hand values.HandKind
		var ok1 bool
		if args[0].AsString() == "hand" && c.Hand != nil {
			hand, ok1 = c.Hand.Kind, true
		} else {
			hand, ok1 = handKindFromString(args[0].AsString())
		}
		target, ok2 := handKindFromString(args[1].AsString())
		if !ok1 || !ok2 {
			return expr.Bool(false), true, nil
		}
		return expr.Bool(handContainsKind(hand, target)), true, nil

	case "roll":
		if len(args) != 1 {
			return expr.Bool(false), true, nil
		}
		sides := int(args[0].AsNumber())
		if sides <= 0 {
			return expr.Bool(false), true, nil
		}
		return expr.Bool(s.RNG.Roll(sides)), true, nil

	case "rand":
		if len(args) != 2 {
			return expr.Value{}, false, nil
		}
		low := int(args[0].AsNumber())
		high := int(args[1].AsNumber())
		return expr.Number(float64(s.RNG.IntRange(low, high))), true, nil

	case "count":
		if len(args) != 2 {
			return expr.Number(0), true, nil
		}
		scope := args[0].AsString()
		target := args[1].AsString()
		if scope == "deck" || scope == "full_deck" {
			return expr.Number(float64(c.countMatchingDeck(target))), true, nil
		}
		cards := c.scopeCards(scope)
		return expr.Number(float64(countMatching(cards, target, c.smearedSuitsActive()))), true, nil

	case "count_joker":
		if len(args) != 1 {
			return expr.Number(0), true, nil
		}
		return expr.Number(float64(s.countJoker(args[0].AsString()))), true, nil

	case "suit_match":
		if len(args) != 1 {
			return expr.Bool(false), true, nil
		}
		if c.Card == nil {
			return expr.Bool(false), true, nil
		}
		if c.Card.IsWildEnhanced() {
			return expr.Bool(true), true, nil
		}
		suit, ok := suitFromValue(args[0])
		if !ok {
			return expr.Bool(false), true, nil
		}
		if c.smearedSuitsActive() {
			return expr.Bool(suitGroupName(c.Card.Suit, true) == suitGroupName(suit, true)), true, nil
		}
		return expr.Bool(c.Card.Suit == suit), true, nil

	case "hand_count":
		if len(args) != 1 {
			return expr.Number(0), true, nil
		}
		hand, ok := handKindFromString(args[0].AsString())
		if !ok {
			return expr.Number(0), true, nil
		}
		return expr.Number(float64(s.HandPlayCounts[hand.String()])), true, nil

	case "var":
		if len(args) != 1 {
			return expr.Number(0), true, nil
		}
		return expr.Number(s.jokerLocal(c.SourceID, args[0].AsString())), true, nil

	case "lowest_rank", "min_rank":
		if len(args) != 1 {
			return expr.Number(0), true, nil
		}
		cards := c.scopeCards(args[0].AsString())
		best := -1
		for _, card := range cards {
			if card.IsStone() {
				continue
			}
			v := card.RankChips()
			if best == -1 || v < best {
				best = v
			}
		}
		if best == -1 {
			best = 0
		}
		return expr.Number(float64(best)), true, nil

	case "max":
		if len(args) == 0 {
			return expr.Value{}, false, nil
		}
		best := args[0].AsNumber()
		for _, a := range args[1:] {
			if v := a.AsNumber(); v > best {
				best = v
			}
		}
		return expr.Number(best), true, nil

	case "min":
		if len(args) == 0 {
			return expr.Value{}, false, nil
		}
		best := args[0].AsNumber()
		for _, a := range args[1:] {
			if v := a.AsNumber(); v < best {
				best = v
			}
		}
		return expr.Number(best), true, nil

	case "floor":
		if len(args) != 1 {
			return expr.Value{}, false, nil
		}
		return expr.Number(math.Floor(args[0].AsNumber())), true, nil

	case "ceil":
		if len(args) != 1 {
			return expr.Value{}, false, nil
		}
		return expr.Number(math.Ceil(args[0].AsNumber())), true, nil

	default:
		return expr.Value{}, false, nil
	}
}

// countMatchingDeck sums a matching count across every card currently in
// circulation: the deck's draw and discard piles plus whatever this
// evaluation's held/played/discarded scopes hold, matching the Rust
// original's deck_count/"deck" scope (every card not destroyed).
func (c *EffectContext) countMatchingDeck(target string) int {
	smeared := c.smearedSuitsActive()
	total := countMatching(c.State.Deck.DrawPile(), target, smeared)
	total += countMatching(c.State.Deck.DiscardPile(), target, smeared)
	total += countMatching(c.Held, target, smeared)
	total += countMatching(c.Played, target, smeared)
	total += countMatching(c.Discarded, target, smeared)
	return total
}

// countMatching counts cards in cards whose suit, rank, enhancement,
// edition or seal normalizes to target, plus the descriptive queries
// face/odd/even/stone/wild/any.
func countMatching(cards []values.Card, target string, smeared bool) int {
	n := 0
	for _, card := range cards {
		if cardMatchesQuery(card, target, smeared) {
			n++
		}
	}
	return n
}

func cardMatchesQuery(card values.Card, query string, smeared bool) bool {
	q := expr.NormalizeString(query)
	switch q {
	case "":
		return false
	case "face":
		return card.Rank.IsFace()
	case "odd":
		return card.Rank.IsOdd()
	case "even":
		return card.Rank.IsEven()
	case "stone":
		return card.IsStone()
	case "wild":
		return card.IsWildEnhanced()
	case "any", "all":
		return true
	}
	if suit, ok := suitFromString(q); ok {
		if card.IsWildEnhanced() {
			return true
		}
		if smeared {
			return suitGroupName(card.Suit, true) == suitGroupName(suit, true)
		}
		return card.Suit == suit
	}
	if rank, ok := rankFromString(q); ok {
		return card.Rank == rank
	}
	if enh, ok := enhancementFromString(q); ok {
		return card.Enhancement == enh
	}
	if ed, ok := editionFromString(q); ok {
		return card.Edition == ed
	}
	if seal, ok := sealFromString(q); ok {
		return card.Seal == seal
	}
	return false
}

func suitFromValue(v expr.Value) (values.Suit, bool) {
	if v.Kind == expr.KindNumber {
		switch int(v.Num) {
		case 0:
			return values.Spades, true
		case 1:
			return values.Hearts, true
		case 2:
			return values.Clubs, true
		case 3:
			return values.Diamonds, true
		default:
			return 0, false
		}
	}
	return suitFromString(expr.NormalizeString(v.AsString()))
}

var suitNames = map[string]values.Suit{
	"spades":   values.Spades,
	"hearts":   values.Hearts,
	"clubs":    values.Clubs,
	"diamonds": values.Diamonds,
}

func suitFromString(q string) (values.Suit, bool) {
	s, ok := suitNames[expr.NormalizeString(q)]
	return s, ok
}

var rankNames = map[string]values.Rank{
	"ace": values.Ace, "a": values.Ace, "1": values.Ace,
	"two": values.Two, "2": values.Two,
	"three": values.Three, "3": values.Three,
	"four": values.Four, "4": values.Four,
	"five": values.Five, "5": values.Five,
	"six": values.Six, "6": values.Six,
	"seven": values.Seven, "7": values.Seven,
	"eight": values.Eight, "8": values.Eight,
	"nine": values.Nine, "9": values.Nine,
	"ten": values.Ten, "10": values.Ten,
	"jack": values.Jack, "j": values.Jack, "11": values.Jack,
	"queen": values.Queen, "q": values.Queen, "12": values.Queen,
	"king": values.King, "k": values.King, "13": values.King,
}

func rankFromString(q string) (values.Rank, bool) {
	r, ok := rankNames[expr.NormalizeString(q)]
	return r, ok
}

var enhancementNames = map[string]values.Enhancement{
	"bonus": values.Bonus,
	"mult":  values.Mult,
	"glass": values.Glass,
	"steel": values.Steel,
	"stone": values.Stone,
	"lucky": values.Lucky,
	"gold":  values.Gold,
}

func enhancementFromString(q string) (values.Enhancement, bool) {
	e, ok := enhancementNames[expr.NormalizeString(q)]
	return e, ok
}

var editionNames = map[string]values.Edition{
	"foil":        values.Foil,
	"holographic": values.Holographic,
	"polychrome":  values.Polychrome,
	"negative":    values.Negative,
}

func editionFromString(q string) (values.Edition, bool) {
	e, ok := editionNames[expr.NormalizeString(q)]
	return e, ok
}

var sealNames = map[string]values.Seal{
	"red":    values.RedSeal,
	"blue":   values.BlueSeal,
	"gold":   values.GoldSeal,
	"purple": values.PurpleSeal,
}

func sealFromString(q string) (values.Seal, bool) {
	s, ok := sealNames[expr.NormalizeString(q)]
	return s, ok
}

// handKindFromString parses a content-authored hand-type name (e.g. "pair",
// "full_house") back into a values.HandKind, matching BuiltinHand.String()
// normalized. Custom hand types aren't resolvable this way yet (no run-wide
// custom-hand registry exists to look their names up in).
func handKindFromString(q string) (values.HandKind, bool) {
	norm := expr.NormalizeString(q)
	for b := values.HighCard; b <= values.FlushFive; b++ {
		if expr.NormalizeString(b.String()) == norm {
			return values.Builtin(b), true
		}
	}
	return values.HandKind{}, false
}

// handContainsHierarchy maps each built-in hand type to the simpler hand
// types structurally present within it (a full house is built from a pair
// and a three of a kind, etc.), backing the contains() call. A hand always
// contains itself; CustomHandDef.Contains is the extension point for
// mod-declared hand types once a run-wide custom-hand registry exists.
var handContainsHierarchy = map[values.BuiltinHand][]values.BuiltinHand{
	values.TwoPair:   {values.Pair},
	values.Trips:     {values.Pair},
	values.FullHouse: {values.Trips, values.Pair},
	values.Quads:     {values.Trips, values.Pair},
	values.FiveOfAKind: {values.Quads, values.Trips, values.Pair},
	values.StraightFlush: {values.Straight, values.Flush},
	values.RoyalFlush:    {values.StraightFlush, values.Straight, values.Flush},
	values.FlushHouse:    {values.FullHouse, values.Flush, values.Trips, values.Pair},
	values.FlushFive:     {values.FiveOfAKind, values.Quads, values.Flush, values.Trips, values.Pair},
}

func handContainsKind(hand, target values.HandKind) bool {
	if hand.Equal(target) {
		return true
	}
	for _, sub := range handContainsHierarchy[hand.Builtin] {
		if sub == target.Builtin {
			return true
		}
	}
	return false
}

// parseRuleValue turns an action's expr.Value result into the float64 the
// rules store expects, tolerating bool/string values (truthy -> 1/0,
// numeric strings parsed directly).
func parseRuleValue(v expr.Value) float64 {
	switch v.Kind {
	case expr.KindBool:
		if v.Bool {
			return 1
		}
		return 0
	case expr.KindNumber:
		return v.Num
	default:
		if f, err := strconv.ParseFloat(v.Str, 64); err == nil {
			return f
		}
		if v.Truthy() {
			return 1
		}
		return 0
	}
}
