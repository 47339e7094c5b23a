package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kevinmchugh/anteforge/internal/classify"
	"github.com/kevinmchugh/anteforge/internal/content"
	"github.com/kevinmchugh/anteforge/internal/diag"
	"github.com/kevinmchugh/anteforge/internal/expr"
	"github.com/kevinmchugh/anteforge/internal/rules"
	"github.com/kevinmchugh/anteforge/internal/values"
)

func newTestRunState(t *testing.T) *RunState {
	t.Helper()
	compiled, err := content.CompileContent(content.DefaultContent())
	if err != nil {
		t.Fatalf("compile default content: %v", err)
	}
	return NewRun(1, content.DefaultConfig(), compiled, diag.NewDiscardSink())
}

func TestIsFaceFalseForNumberCardWithoutPareidolia(t *testing.T) {
	s := newTestRunState(t)
	card := values.Card{Suit: values.Spades, Rank: values.Five}
	ctx := &EffectContext{State: s, Card: &card}

	v, err := expr.Eval(mustParse(t, "card.is_face"), ctx)
	assert.NoError(t, err)
	assert.False(t, v.Truthy())
}

func TestIsFaceTrueForAnyCardUnderPareidolia(t *testing.T) {
	s := newTestRunState(t)
	s.setRuleField(rules.KeyPareidolia, 1)
	card := values.Card{Suit: values.Spades, Rank: values.Five}
	ctx := &EffectContext{State: s, Card: &card}

	v, err := expr.Eval(mustParse(t, "card.is_face"), ctx)
	assert.NoError(t, err)
	assert.True(t, v.Truthy())
}

func TestIsWildIdentifiesWildEnhancement(t *testing.T) {
	s := newTestRunState(t)
	card := values.Card{Suit: values.Spades, Rank: values.Five, Enhancement: values.EnhWild}
	ctx := &EffectContext{State: s, Card: &card}

	v, err := expr.Eval(mustParse(t, "card.is_wild"), ctx)
	assert.NoError(t, err)
	assert.True(t, v.Truthy())
}

func TestBlindScoreAndTargetIdentifiers(t *testing.T) {
	s := newTestRunState(t)
	s.BlindScore = 120
	s.Target = 300
	ctx := &EffectContext{State: s}

	v, err := expr.Eval(mustParse(t, "blind_score >= target"), ctx)
	assert.NoError(t, err)
	assert.False(t, v.Truthy())

	s.BlindScore = 400
	v, err = expr.Eval(mustParse(t, "blind_score >= target"), ctx)
	assert.NoError(t, err)
	assert.True(t, v.Truthy())
}

func TestHandSizeScoringHeldDeckCountIdentifiers(t *testing.T) {
	s := newTestRunState(t)
	s.HandSizeBase = 8
	ctx := &EffectContext{
		State: s,
		Hand:  &classify.Result{Kind: values.Builtin(values.Pair), ScoringIndices: []int{0, 1}},
		Held:  []values.Card{{Suit: values.Spades, Rank: values.Two}},
	}

	v, err := expr.Eval(mustParse(t, "hand_size"), ctx)
	assert.NoError(t, err)
	assert.Equal(t, 8.0, v.AsNumber())

	v, err = expr.Eval(mustParse(t, "scoring_count"), ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, v.AsNumber())

	v, err = expr.Eval(mustParse(t, "held_count"), ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, v.AsNumber())

	v, err = expr.Eval(mustParse(t, "deck_count"), ctx)
	assert.NoError(t, err)
	assert.Equal(t, float64(s.Deck.Len()+1), v.AsNumber())
}

func TestIsScoringIsHeldIsPlayedIdentifiers(t *testing.T) {
	s := newTestRunState(t)
	ctx := &EffectContext{State: s, IsScoringCard: true, IsPlayedCard: true}

	v, err := expr.Eval(mustParse(t, "is_scoring"), ctx)
	assert.NoError(t, err)
	assert.True(t, v.Truthy())

	v, err = expr.Eval(mustParse(t, "is_played"), ctx)
	assert.NoError(t, err)
	assert.True(t, v.Truthy())

	v, err = expr.Eval(mustParse(t, "is_held"), ctx)
	assert.NoError(t, err)
	assert.False(t, v.Truthy())
}

func TestSoldValueAndConsumableIdentifiers(t *testing.T) {
	s := newTestRunState(t)
	ctx := &EffectContext{State: s, SoldValue: 7, ConsumableKind: "tarot", ConsumableID: "the_fool"}

	v, err := expr.Eval(mustParse(t, "sold_value"), ctx)
	assert.NoError(t, err)
	assert.Equal(t, 7.0, v.AsNumber())

	v, err = expr.Eval(mustParse(t, "consumable.kind"), ctx)
	assert.NoError(t, err)
	assert.Equal(t, "tarot", v.AsString())

	v, err = expr.Eval(mustParse(t, "consumable.id"), ctx)
	assert.NoError(t, err)
	assert.Equal(t, "the_fool", v.AsString())
}

func TestCardSuitIDIdentifier(t *testing.T) {
	s := newTestRunState(t)
	card := values.Card{Suit: values.Diamonds, Rank: values.Five}
	ctx := &EffectContext{State: s, Card: &card}

	v, err := expr.Eval(mustParse(t, "card.suit_id"), ctx)
	assert.NoError(t, err)
	assert.Equal(t, float64(values.Diamonds), v.AsNumber())
}

func TestContainsCallChecksHandHierarchy(t *testing.T) {
	s := newTestRunState(t)
	ctx := &EffectContext{State: s, Hand: &classify.Result{Kind: values.Builtin(values.FullHouse)}}

	v, err := expr.Eval(mustParse(t, `contains(hand, "pair")`), ctx)
	assert.NoError(t, err)
	assert.True(t, v.Truthy())

	v, err = expr.Eval(mustParse(t, `contains(hand, "flush")`), ctx)
	assert.NoError(t, err)
	assert.False(t, v.Truthy())

	v, err = expr.Eval(mustParse(t, `contains("straight_flush", "straight")`), ctx)
	assert.NoError(t, err)
	assert.True(t, v.Truthy())
}

func TestCountCallMatchesScopedCards(t *testing.T) {
	s := newTestRunState(t)
	ctx := &EffectContext{
		State: s,
		Held: []values.Card{
			{Suit: values.Hearts, Rank: values.King},
			{Suit: values.Hearts, Rank: values.Two},
			{Suit: values.Spades, Rank: values.Three},
		},
	}

	v, err := expr.Eval(mustParse(t, `count("held", "hearts")`), ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, v.AsNumber())

	v, err = expr.Eval(mustParse(t, `count("held", "face")`), ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, v.AsNumber())
}

func TestSuitMatchCallHonorsSmearedSuits(t *testing.T) {
	s := newTestRunState(t)
	s.setRuleField(rules.KeySmearedSuits, 1)
	card := values.Card{Suit: values.Diamonds, Rank: values.Five}
	ctx := &EffectContext{State: s, Card: &card}

	v, err := expr.Eval(mustParse(t, `suit_match("hearts")`), ctx)
	assert.NoError(t, err)
	assert.True(t, v.Truthy())

	v, err = expr.Eval(mustParse(t, `suit_match("spades")`), ctx)
	assert.NoError(t, err)
	assert.False(t, v.Truthy())
}

func TestVarCallReadsJokerLocalBySourceID(t *testing.T) {
	s := newTestRunState(t)
	inst := JokerInstance{ID: "joker-1", ContentID: "test_joker", Locals: map[string]float64{"triggered": 3}}
	s.Inventory.Jokers = append(s.Inventory.Jokers, inst)
	ctx := &EffectContext{State: s, SourceID: "joker-1"}

	v, err := expr.Eval(mustParse(t, `var("triggered")`), ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, v.AsNumber())
}

func TestSetLocalActionWritesBackToJokerLocals(t *testing.T) {
	s := newTestRunState(t)
	inst := JokerInstance{ID: "joker-1", ContentID: "test_joker", Locals: map[string]float64{}}
	s.Inventory.Jokers = append(s.Inventory.Jokers, inst)

	s.setJokerLocal("joker-1", "triggered", 5)

	assert.Equal(t, 5.0, s.jokerLocal("joker-1", "triggered"))
}

func TestCountJokerMatchesByContentIDOrName(t *testing.T) {
	s := newTestRunState(t)
	s.Inventory.Jokers = append(s.Inventory.Jokers, JokerInstance{ID: "j1", ContentID: "joker_joker"})
	s.Inventory.Jokers = append(s.Inventory.Jokers, JokerInstance{ID: "j2", ContentID: "joker_joker"})

	assert.Equal(t, 2, s.countJoker("joker_joker"))
	assert.Equal(t, 0, s.countJoker("no_such_joker"))
}

func TestMaxMinFloorCeilCalls(t *testing.T) {
	s := newTestRunState(t)
	ctx := &EffectContext{State: s}

	v, err := expr.Eval(mustParse(t, "max(1, 5, 3)"), ctx)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, v.AsNumber())

	v, err = expr.Eval(mustParse(t, "min(1, 5, 3)"), ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, v.AsNumber())

	v, err = expr.Eval(mustParse(t, "floor(2.7)"), ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, v.AsNumber())

	v, err = expr.Eval(mustParse(t, "ceil(2.1)"), ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, v.AsNumber())
}

func TestRollAndRandCallsUseRunRNG(t *testing.T) {
	s := newTestRunState(t)
	ctx := &EffectContext{State: s}

	v, err := expr.Eval(mustParse(t, "roll(1)"), ctx)
	assert.NoError(t, err)
	assert.True(t, v.Truthy(), "roll(1) always hits")

	v, err = expr.Eval(mustParse(t, "rand(2, 2)"), ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, v.AsNumber())
}

func TestLowestRankCallIgnoresStoneCards(t *testing.T) {
	s := newTestRunState(t)
	ctx := &EffectContext{State: s, Held: []values.Card{
		{Suit: values.Spades, Rank: values.King, Enhancement: values.Stone},
		{Suit: values.Hearts, Rank: values.Four},
		{Suit: values.Clubs, Rank: values.Seven},
	}}

	v, err := expr.Eval(mustParse(t, `lowest_rank("held")`), ctx)
	assert.NoError(t, err)
	assert.Equal(t, float64(values.Four.ChipValue()), v.AsNumber())
}

func TestHandCountAndHandPlayCountCalls(t *testing.T) {
	s := newTestRunState(t)
	s.HandPlayCounts[values.Builtin(values.Pair).String()] = 4
	ctx := &EffectContext{State: s, Hand: &classify.Result{Kind: values.Builtin(values.Pair)}}

	v, err := expr.Eval(mustParse(t, `hand_count("pair")`), ctx)
	assert.NoError(t, err)
	assert.Equal(t, 4.0, v.AsNumber())

	v, err = expr.Eval(mustParse(t, "hand_play_count"), ctx)
	assert.NoError(t, err)
	assert.Equal(t, 4.0, v.AsNumber())
}

func mustParse(t *testing.T, src string) expr.Node {
	t.Helper()
	node, err := expr.Parse(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return node
}
