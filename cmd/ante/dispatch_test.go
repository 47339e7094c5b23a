package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinmchugh/anteforge/internal/content"
	"github.com/kevinmchugh/anteforge/internal/diag"
	"github.com/kevinmchugh/anteforge/internal/engine"
)

func newTestRun(t *testing.T) *engine.RunState {
	t.Helper()
	compiled, err := content.CompileContent(content.DefaultContent())
	require.NoError(t, err)
	return engine.NewRun(1, content.DefaultConfig(), compiled, diag.NewDiscardSink())
}

func TestParseBlindKind(t *testing.T) {
	kind, err := parseBlindKind("boss")
	require.NoError(t, err)
	assert.Equal(t, engine.BossBlind, kind)

	_, err = parseBlindKind("nonsense")
	assert.Error(t, err)
}

func TestDispatchUnknownOpErrors(t *testing.T) {
	rs := newTestRun(t)
	_, err := dispatch(rs, Action{Op: "not_a_real_op"})
	assert.Error(t, err)
}

func TestDispatchStartBlindThenPrepareHand(t *testing.T) {
	rs := newTestRun(t)
	_, err := dispatch(rs, Action{Op: "start_blind", Ante: 1, Kind: "small"})
	require.NoError(t, err)

	_, err = dispatch(rs, Action{Op: "prepare_hand"})
	require.NoError(t, err)
	assert.Len(t, rs.Hand, rs.HandSizeBase)
}

func TestExecScriptRecordsFailureAndKeepsGoing(t *testing.T) {
	rs := newTestRun(t)
	actions := []Action{
		{Op: "prepare_hand"}, // wrong phase - not dealt into yet, should fail
		{Op: "start_blind", Ante: 1, Kind: "small"},
	}

	var buf bytes.Buffer
	require.NoError(t, execScript(&buf, rs, actions))

	dec := json.NewDecoder(&buf)
	var first, second StepResult
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))

	assert.NotEmpty(t, first.Error)
	assert.Empty(t, second.Error)
	assert.NotEmpty(t, second.Events)
}
