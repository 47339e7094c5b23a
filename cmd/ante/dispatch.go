package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kevinmchugh/anteforge/internal/engine"
)

// StepResult is one line of the script's output stream: the action that
// ran, its result (if any), the error it returned (if any), and the
// events/trace emitted since the previous step.
type StepResult struct {
	Index  int             `json:"index"`
	Op     string          `json:"op"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
	Events []engine.Event  `json:"events,omitempty"`
}

// execScript runs every action against rs in order, writing one JSON
// StepResult per line to w. A failing action is recorded (with its error
// message) but does not stop the script - later actions still run against
// whatever state the run was left in, mirroring how a real front-end would
// surface a rejected action to its user and keep going.
func execScript(w io.Writer, rs *engine.RunState, actions []Action) error {
	enc := json.NewEncoder(w)
	for i, a := range actions {
		result, err := dispatch(rs, a)

		step := StepResult{Index: i, Op: a.Op, Events: rs.DrainEvents()}
		if err != nil {
			step.Error = err.Error()
		} else if result != nil {
			raw, merr := json.Marshal(result)
			if merr != nil {
				return fmt.Errorf("ante: marshal result for step %d (%s): %w", i, a.Op, merr)
			}
			step.Result = raw
		}
		if encErr := enc.Encode(step); encErr != nil {
			return fmt.Errorf("ante: write step %d: %w", i, encErr)
		}
	}
	return nil
}

func dispatch(rs *engine.RunState, a Action) (interface{}, error) {
	switch a.Op {
	case "start_blind":
		kind, err := parseBlindKind(a.Kind)
		if err != nil {
			return nil, err
		}
		return nil, rs.StartBlind(a.Ante, kind)
	case "prepare_hand":
		return nil, rs.PrepareHand()
	case "play_hand":
		return rs.PlayHand(a.Indices)
	case "discard":
		return nil, rs.Discard(a.Indices)
	case "enter_shop":
		return nil, rs.EnterShop()
	case "reroll_shop":
		return nil, rs.RerollShop()
	case "buy_shop_offer":
		return nil, rs.BuyShopOffer(a.Index)
	case "choose_pack_options":
		return nil, rs.ChoosePackOptions(a.Indices)
	case "skip_pack":
		return nil, rs.SkipPack()
	case "use_consumable":
		return nil, rs.UseConsumable(a.Index, a.Selected)
	case "sell_joker":
		return nil, rs.SellJoker(a.Index)
	case "skip_blind":
		return nil, rs.SkipBlind()
	case "start_next_blind":
		return nil, rs.StartNextBlind()
	case "leave_shop":
		return nil, rs.LeaveShop()
	default:
		return nil, fmt.Errorf("unknown action %q", a.Op)
	}
}

func parseBlindKind(s string) (engine.BlindKind, error) {
	switch s {
	case "small":
		return engine.SmallBlind, nil
	case "big":
		return engine.BigBlind, nil
	case "boss":
		return engine.BossBlind, nil
	default:
		return 0, fmt.Errorf("unknown blind kind %q", s)
	}
}
