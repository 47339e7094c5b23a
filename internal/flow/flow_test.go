package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyPatchAddAndMax(t *testing.T) {
	base := map[string]float64{"chips": 10, "mult": 1}
	policies := FieldPolicies{"chips": Add, "mult": Max}

	out, _ := ApplyPatch(base, nil, policies, []Contribution{
		{SourceID: "joker_a", Priority: 2, Numeric: map[string]float64{"chips": 20, "mult": 3}},
		{SourceID: "joker_b", Priority: 1, Numeric: map[string]float64{"chips": 5, "mult": 2}},
	})

	assert.Equal(t, 35.0, out["chips"]) // 10 + 20 + 5
	assert.Equal(t, 3.0, out["mult"])   // max(1, 3, 2)
}

func TestApplyPatchMulAndBoolOr(t *testing.T) {
	base := map[string]float64{"chips_mult": 1}
	baseBool := map[string]bool{"debuffed": false}
	policies := FieldPolicies{"chips_mult": Mul, "debuffed": BoolOr}

	out, outBool := ApplyPatch(base, baseBool, policies, []Contribution{
		{SourceID: "a", Priority: 1, Numeric: map[string]float64{"chips_mult": 2}, Bool: map[string]bool{"debuffed": false}},
		{SourceID: "b", Priority: 1, Numeric: map[string]float64{"chips_mult": 3}, Bool: map[string]bool{"debuffed": true}},
	})

	assert.Equal(t, 6.0, out["chips_mult"])
	assert.True(t, outBool["debuffed"])
}

func TestApplyPatchIgnoresUndeclaredFields(t *testing.T) {
	base := map[string]float64{"chips": 0}
	policies := FieldPolicies{"chips": Add}

	out, _ := ApplyPatch(base, nil, policies, []Contribution{
		{SourceID: "a", Priority: 1, Numeric: map[string]float64{"chips": 5, "unknown_field": 999}},
	})

	assert.Equal(t, 5.0, out["chips"])
	_, present := out["unknown_field"]
	assert.False(t, present)
}

func TestReplaceHighestPriorityWins(t *testing.T) {
	winner, ok := Replace([]ReplaceCandidate[string]{
		{SourceID: "boss_rule", Priority: 1, Value: "boss"},
		{SourceID: "joker_wild_card", Priority: 5, Value: "wild"},
	})
	assert.True(t, ok)
	assert.Equal(t, "wild", winner)
}

func TestReplaceTiesBrokenBySourceIDAscending(t *testing.T) {
	winner, ok := Replace([]ReplaceCandidate[int]{
		{SourceID: "zeta", Priority: 3, Value: 2},
		{SourceID: "alpha", Priority: 3, Value: 1},
	})
	assert.True(t, ok)
	assert.Equal(t, 1, winner)
}

func TestReplaceEmptyCandidates(t *testing.T) {
	_, ok := Replace[int](nil)
	assert.False(t, ok)
}

func TestComposeAroundOrdersHighestPriorityOutermost(t *testing.T) {
	var order []string
	base := func() int {
		order = append(order, "base")
		return 0
	}
	chain := ComposeAround(base, []AroundCandidate[int]{
		{SourceID: "low", Priority: 1, Wrap: func(next func() int) int {
			order = append(order, "low-before")
			v := next()
			order = append(order, "low-after")
			return v
		}},
		{SourceID: "high", Priority: 5, Wrap: func(next func() int) int {
			order = append(order, "high-before")
			v := next()
			order = append(order, "high-after")
			return v
		}},
	})

	chain()
	assert.Equal(t, []string{"high-before", "low-before", "base", "low-after", "high-after"}, order)
}

func TestComposeAroundCanShortCircuit(t *testing.T) {
	calledBase := false
	base := func() int {
		calledBase = true
		return 0
	}
	chain := ComposeAround(base, []AroundCandidate[int]{
		{SourceID: "cancel", Priority: 1, Wrap: func(next func() int) int {
			return 99 // never calls next
		}},
	})

	result := chain()
	assert.Equal(t, 99, result)
	assert.False(t, calledBase)
}

func TestComposeAroundNoCandidatesReturnsBase(t *testing.T) {
	base := func() int { return 7 }
	chain := ComposeAround(base, nil)
	assert.Equal(t, 7, chain())
}
