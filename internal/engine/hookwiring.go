package engine

import (
	"strings"

	"github.com/kevinmchugh/anteforge/internal/content"
	"github.com/kevinmchugh/anteforge/internal/expr"
	"github.com/kevinmchugh/anteforge/internal/hooks"
	"github.com/kevinmchugh/anteforge/internal/values"
)

// HookEvent is the payload dispatched through s.Hooks at every named hook
// point. Ctx carries the running score and whatever card/hand context
// applies; handlers mutate Ctx.Score directly so later handlers in the
// same dispatch (and the pipeline step that issued it) see the update.
type HookEvent struct {
	Point hooks.Point
	Ctx   *EffectContext
}

func (e HookEvent) HookPoint() hooks.Point { return e.Point }

// hookTriggerPoints lists the trigger names a joker/tag/boss's compiled
// effects can be installed against as a standing hooks.Registration,
// persisting from Acquire until Sell/removal. "sell" is deliberately
// excluded: a joker's own sell-triggered effect only ever concerns itself,
// so SellJoker invokes it directly via runCompiledEffects rather than
// broadcasting through the registry the way "any_sell" (every other joker
// reacting to a sale) correctly does.
var hookTriggerPoints = map[string]bool{
	triggerPlayed: true, triggerScoredPre: true, triggerScored: true, triggerHeld: true,
	triggerIndependent: true, triggerDiscard: true, triggerDiscardBatch: true,
	triggerCardDestroyed: true, triggerCardAdded: true, triggerRoundEnd: true,
	triggerHandEnd: true, triggerBlindStart: true, triggerBlindFailed: true,
	triggerShopEnter: true, triggerShopReroll: true, triggerShopExit: true,
	triggerPackOpened: true, triggerPackSkipped: true, triggerUseConsumable: true,
	triggerAnySell: true, triggerAcquire: true,
	triggerOtherJokers: true, triggerPassive: true,
}

// registerEffects installs one hooks.Registration per effect in effects
// whose Trigger names a hook point, all attributed to sourceID so they can
// later be removed as a group via unregisterEffects.
func (s *RunState) registerEffects(sourceID string, class hooks.PriorityClass, priority int, effects []content.CompiledEffect) {
	for _, eff := range effects {
		if !hookTriggerPoints[eff.Trigger] {
			continue
		}
		effect := eff
		s.Hooks.Register(hooks.Point(eff.Trigger), hooks.Registration{
			SourceID: sourceID,
			Class:    class,
			Priority: priority,
			Handler:  s.makeEffectHandler(sourceID, effect),
		})
	}
}

// unregisterEffects removes every registration sourceID installed across
// effects' hook points (used on sell / tag consumption / boss clear).
func (s *RunState) unregisterEffects(sourceID string, effects []content.CompiledEffect) {
	for _, eff := range effects {
		if !hookTriggerPoints[eff.Trigger] {
			continue
		}
		s.Hooks.Unregister(hooks.Point(eff.Trigger), sourceID)
	}
}

func (s *RunState) makeEffectHandler(sourceID string, effect content.CompiledEffect) hooks.Handler {
	bossID, isBoss := strings.CutPrefix(sourceID, "boss:")
	tagID, isTag := strings.CutPrefix(sourceID, "tag:")
	return func(ev Event) (hooks.Result, error) {
		he, ok := ev.(HookEvent)
		if !ok {
			return hooks.Continue, nil
		}
		if isBoss && bossID == s.BossID && s.BossDisabled {
			return hooks.Continue, nil
		}
		guard, err := expr.Eval(effect.When, he.Ctx)
		if err != nil {
			return hooks.Continue, err
		}
		if !guard.Truthy() {
			return hooks.Continue, nil
		}
		score, err := s.runActions(sourceID, effect.Actions, he.Ctx, he.Ctx.Score)
		if err != nil {
			return hooks.Continue, err
		}
		he.Ctx.Score = score
		if isTag {
			s.consumeTag(tagID)
		}
		return hooks.Continue, nil
	}
}

// dispatchHook is a small convenience wrapping hooks.Registry.Dispatch with
// the engine's HookEvent payload, returning the updated score.
func (s *RunState) dispatchHook(point hooks.Point, ctx *EffectContext, score values.Score) (values.Score, hooks.Result, error) {
	ctx.Score = score
	res, err := s.Hooks.Dispatch(HookEvent{Point: point, Ctx: ctx})
	return ctx.Score, res, err
}
