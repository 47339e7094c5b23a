package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinmchugh/anteforge/internal/rules"
	"github.com/kevinmchugh/anteforge/internal/values"
)

func TestScoreBaseForDefaultsMatchTableWhenNoRuleVariablesSet(t *testing.T) {
	s := newTestRunState(t)
	ctx := &EffectContext{State: s}

	kind := values.Builtin(values.Pair)
	score, err := s.scoreBaseFor(kind, ctx)
	require.NoError(t, err)

	chips, mult := s.HandTable.BaseForLevel(kind.String(), 0)
	assert.Equal(t, chips, score.Chips)
	assert.Equal(t, mult, score.Mult)
}

func TestScoreBaseForAppliesHandLevelDeltaRuleVariable(t *testing.T) {
	s := newTestRunState(t)
	s.setRuleField(rules.KeyHandLevelDelta, 2)
	ctx := &EffectContext{State: s}

	kind := values.Builtin(values.Pair)
	score, err := s.scoreBaseFor(kind, ctx)
	require.NoError(t, err)

	chips, mult := s.HandTable.BaseForLevel(kind.String(), 2)
	assert.Equal(t, chips, score.Chips)
	assert.Equal(t, mult, score.Mult)
}

func TestScoreBaseForAppliesBaseChipsMultRuleVariable(t *testing.T) {
	s := newTestRunState(t)
	s.setRuleField(rules.KeyBaseChipsMult, 1)
	ctx := &EffectContext{State: s}

	kind := values.Builtin(values.Pair)
	score, err := s.scoreBaseFor(kind, ctx)
	require.NoError(t, err)

	baseChips, _ := s.HandTable.BaseForLevel(kind.String(), 0)
	assert.Equal(t, baseChips*2, score.Chips)
}

func TestPlayHandScoresAndAdvancesState(t *testing.T) {
	s := newTestRunState(t)
	require.NoError(t, s.StartBlind(1, SmallBlind))

	breakdown, err := s.PlayHand([]int{0, 1, 2, 3, 4})
	require.NoError(t, err)
	assert.Greater(t, breakdown.Total, 0)
	assert.Equal(t, s.HandsMax-1, s.HandsLeft)
	assert.Len(t, s.Hand, s.HandSizeBase)
}

func TestPlayHandRejectsWrongPhase(t *testing.T) {
	s := newTestRunState(t)
	_, err := s.PlayHand([]int{0})
	assert.Error(t, err)
}
