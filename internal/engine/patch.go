package engine

import (
	"github.com/kevinmchugh/anteforge/internal/content"
	"github.com/kevinmchugh/anteforge/internal/expr"
	"github.com/kevinmchugh/anteforge/internal/flow"
	"github.com/kevinmchugh/anteforge/internal/hooks"
)

// collectContributions gathers flow.Contributions for trigger (one of the
// flow.Point names - "score_base", "card_debuff", "hand_eval", "hand_type")
// from every active joker and, if one is assigned and not disabled, the
// boss, by scanning their compiled effects for OpContribute/
// OpContributeBool actions whose guard is currently truthy. This is the
// bridge between the DSL effect vocabulary and flow.ApplyPatch/Replace:
// unlike the hook-dispatched triggers (Scored, Held, Independent, ...)
// these triggers never mutate Score or run-state directly, they only
// declare a value for the flow kernel to fold.
func (s *RunState) collectContributions(trigger string, ctx *EffectContext) ([]flow.Contribution, error) {
	var out []flow.Contribution

	collect := func(sourceID string, effects []content.CompiledEffect) error {
		for _, eff := range effects {
			if eff.Trigger != trigger {
				continue
			}
			guard, err := expr.Eval(eff.When, ctx)
			if err != nil {
				return err
			}
			if !guard.Truthy() {
				continue
			}
			c := flow.Contribution{SourceID: sourceID}
			for _, a := range eff.Actions {
				switch a.Op {
				case content.OpContribute:
					v, err := expr.Eval(a.Value, ctx)
					if err != nil {
						return err
					}
					if c.Numeric == nil {
						c.Numeric = make(map[string]float64)
					}
					c.Numeric[a.Field] = v.AsNumber()
				case content.OpContributeBool:
					v, err := expr.Eval(a.Value, ctx)
					if err != nil {
						return err
					}
					if c.Bool == nil {
						c.Bool = make(map[string]bool)
					}
					c.Bool[a.Field] = v.Truthy()
				}
			}
			if len(c.Numeric) > 0 || len(c.Bool) > 0 {
				out = append(out, c)
			}
		}
		return nil
	}

	for _, j := range s.Inventory.Jokers {
		def, ok := s.Content.Jokers[j.ContentID]
		if !ok {
			continue
		}
		if err := collect(j.ID, def.Effects); err != nil {
			return nil, err
		}
	}
	if s.BossID != "" && !s.BossDisabled {
		if def, ok := s.Content.Bosses[s.BossID]; ok {
			if err := collect("boss:"+s.BossID, def.Effects); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// rebuildRulesIfDirty dispatches the Passive hook once when the rule store
// is flagged dirty (a joker/tag/boss was added, removed, or changed),
// letting every registered Passive handler re-declare its rule-variable
// contributions via set_rule/add_rule actions (runAction mutates the store
// directly, so this just needs to fire the handlers, not fold a result).
func (s *RunState) rebuildRulesIfDirty() error {
	if !s.Rules.Dirty() {
		return nil
	}
	// Start from an empty slate so a joker/tag/boss that was just removed
	// doesn't leave its rule variables stuck at a stale nonzero value;
	// every still-active Passive handler re-declares its own variables
	// via set_rule/add_rule from scratch.
	s.Rules.Rebuild(map[string]float64{})
	ctx := &EffectContext{State: s}
	_, err := s.Hooks.Dispatch(HookEvent{Point: hooks.Passive, Ctx: ctx})
	return err
}
