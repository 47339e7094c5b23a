package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEval(t *testing.T, src string, ctx Context) Value {
	t.Helper()
	n, err := Parse(src)
	require.NoError(t, err)
	v, err := Eval(n, ctx)
	require.NoError(t, err)
	return v
}

func TestArithmeticAndPrecedence(t *testing.T) {
	v := mustEval(t, "2 + 3 * 4", MapContext{})
	assert.Equal(t, 14.0, v.Num)

	v = mustEval(t, "(2 + 3) * 4", MapContext{})
	assert.Equal(t, 20.0, v.Num)
}

func TestDivisionByZeroReturnsDividend(t *testing.T) {
	v := mustEval(t, "5 / 0", MapContext{})
	assert.Equal(t, 5.0, v.Num)
}

// probeContext is a MapContext whose every call records that it ran.
type probeContext struct {
	MapContext
	called *bool
}

func (p probeContext) Call(string, []Value) (Value, bool, error) {
	*p.called = true
	return Bool(false), true, nil
}

func TestShortCircuitOr(t *testing.T) {
	called := false
	ctx := probeContext{MapContext: MapContext{Values: map[string]Value{"a": Bool(true)}}, called: &called}
	// The right operand is a call that records whether it ran; once a is
	// true, a short-circuiting || never evaluates it.
	v := mustEval(t, "a || probe()", ctx)
	assert.True(t, v.Truthy())
	assert.False(t, called)
}

func TestUnknownIdentifierFallsBackToNormalizedString(t *testing.T) {
	v := mustEval(t, "hearts", MapContext{})
	assert.Equal(t, KindString, v.Kind)
	assert.Equal(t, "hearts", v.Str)
}

func TestStringEqualityCaseInsensitive(t *testing.T) {
	v := mustEval(t, "\"Hearts\" == hearts", MapContext{})
	assert.True(t, v.Truthy())
}

func TestUnaryNotAndNegate(t *testing.T) {
	v := mustEval(t, "!false", MapContext{})
	assert.True(t, v.Truthy())

	v = mustEval(t, "-5", MapContext{})
	assert.Equal(t, -5.0, v.Num)
}

func TestComparisonOperators(t *testing.T) {
	assert.True(t, mustEval(t, "3 < 4", MapContext{}).Truthy())
	assert.True(t, mustEval(t, "4 <= 4", MapContext{}).Truthy())
	assert.True(t, mustEval(t, "5 > 4", MapContext{}).Truthy())
	assert.False(t, mustEval(t, "3 >= 4", MapContext{}).Truthy())
}

type callContext struct {
	calls map[string]func([]Value) Value
}

func (c callContext) Identifier(string) (Value, bool) { return None, false }
func (c callContext) Call(name string, args []Value) (Value, bool, error) {
	if fn, ok := c.calls[name]; ok {
		return fn(args), true, nil
	}
	return None, false, nil
}

func TestCallDispatchIsCaseInsensitive(t *testing.T) {
	ctx := callContext{calls: map[string]func([]Value) Value{
		"roll": func(args []Value) Value { return Bool(true) },
	}}
	v := mustEval(t, "ROLL(6)", ctx)
	assert.True(t, v.Truthy())
}

func TestUnknownCallEvaluatesToNone(t *testing.T) {
	v := mustEval(t, "nope()", MapContext{})
	assert.Equal(t, KindNone, v.Kind)
	assert.False(t, v.Truthy())
}
