package hooks

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEvent struct{ point Point }

func (e fakeEvent) HookPoint() Point { return e.point }

func TestDispatchRunsCoreClassBeforeJokerClass(t *testing.T) {
	var order []string
	r := NewRegistry()
	r.Register(Scored, Registration{SourceID: "core", Class: CoreRules, Handler: func(Event) (Result, error) {
		order = append(order, "core")
		return Continue, nil
	}})
	r.Register(Scored, Registration{SourceID: "joker_x", Class: Jokers, Handler: func(Event) (Result, error) {
		order = append(order, "joker_x")
		return Continue, nil
	}})
	r.Register(Scored, Registration{SourceID: "tag_y", Class: Tags, Handler: func(Event) (Result, error) {
		order = append(order, "tag_y")
		return Continue, nil
	}})

	res, err := r.Dispatch(fakeEvent{point: Scored})
	require.NoError(t, err)
	assert.Equal(t, Continue, res)
	assert.Equal(t, []string{"core", "tag_y", "joker_x"}, order)
}

func TestDispatchWithinClassOrdersByPriorityThenSourceID(t *testing.T) {
	var order []string
	r := NewRegistry()
	r.Register(Played, Registration{SourceID: "z_joker", Class: Jokers, Priority: 1, Handler: func(Event) (Result, error) {
		order = append(order, "z_joker")
		return Continue, nil
	}})
	r.Register(Played, Registration{SourceID: "a_joker", Class: Jokers, Priority: 1, Handler: func(Event) (Result, error) {
		order = append(order, "a_joker")
		return Continue, nil
	}})
	r.Register(Played, Registration{SourceID: "high_joker", Class: Jokers, Priority: 5, Handler: func(Event) (Result, error) {
		order = append(order, "high_joker")
		return Continue, nil
	}})

	_, err := r.Dispatch(fakeEvent{point: Played})
	require.NoError(t, err)
	assert.Equal(t, []string{"high_joker", "a_joker", "z_joker"}, order)
}

func TestDispatchStopHaltsRemainingHandlers(t *testing.T) {
	var order []string
	r := NewRegistry()
	r.Register(Discard, Registration{SourceID: "core", Class: CoreRules, Handler: func(Event) (Result, error) {
		order = append(order, "core")
		return Stop, nil
	}})
	r.Register(Discard, Registration{SourceID: "joker_x", Class: Jokers, Handler: func(Event) (Result, error) {
		order = append(order, "joker_x")
		return Continue, nil
	}})

	res, err := r.Dispatch(fakeEvent{point: Discard})
	require.NoError(t, err)
	assert.Equal(t, Stop, res)
	assert.Equal(t, []string{"core"}, order)
}

func TestDispatchCancelCoreDoesNotHaltDispatch(t *testing.T) {
	var order []string
	r := NewRegistry()
	r.Register(CardDestroyed, Registration{SourceID: "joker_glass", Class: Jokers, Handler: func(Event) (Result, error) {
		order = append(order, "joker_glass")
		return CancelCore, nil
	}})
	r.Register(CardDestroyed, Registration{SourceID: "joker_other", Class: Jokers, Priority: -1, Handler: func(Event) (Result, error) {
		order = append(order, "joker_other")
		return Continue, nil
	}})

	res, err := r.Dispatch(fakeEvent{point: CardDestroyed})
	require.NoError(t, err)
	assert.Equal(t, CancelCore, res)
	assert.Equal(t, []string{"joker_glass", "joker_other"}, order)
}

func TestDispatchPropagatesHandlerError(t *testing.T) {
	r := NewRegistry()
	r.Register(Sell, Registration{SourceID: "broken", Handler: func(Event) (Result, error) {
		return Continue, errors.New("boom")
	}})

	_, err := r.Dispatch(fakeEvent{point: Sell})
	assert.EqualError(t, err, "boom")
}

func TestUnregisterRemovesHandlersForSource(t *testing.T) {
	called := false
	r := NewRegistry()
	r.Register(AnySell, Registration{SourceID: "joker_a", Handler: func(Event) (Result, error) {
		called = true
		return Continue, nil
	}})
	r.Unregister(AnySell, "joker_a")

	_, err := r.Dispatch(fakeEvent{point: AnySell})
	require.NoError(t, err)
	assert.False(t, called)
}
