package engine

import (
	"github.com/kevinmchugh/anteforge/internal/content"
	"github.com/kevinmchugh/anteforge/internal/expr"
	"github.com/kevinmchugh/anteforge/internal/rules"
	"github.com/kevinmchugh/anteforge/internal/values"
)

// RuleEffectOp is spec §4.7's closed apply_rule_effect operation set.
type RuleEffectOp int

const (
	EffectAddChips RuleEffectOp = iota
	EffectAddMult
	EffectMultiplyMult
	EffectMultiplyChips
)

func (op RuleEffectOp) String() string {
	switch op {
	case EffectAddChips:
		return "add_chips"
	case EffectAddMult:
		return "add_mult"
	case EffectMultiplyMult:
		return "multiply_mult"
	case EffectMultiplyChips:
		return "multiply_chips"
	default:
		return "unknown"
	}
}

// applyRuleEffect is spec §4.7's apply_rule_effect: the only path that
// mutates a hand's running Score during per-card scoring and pass steps.
// It records a trace step into s.LastScoreTrace holding the source, the op
// and the chips/mult change it made (deltas, not the before/after totals),
// and returns the updated score.
func (s *RunState) applyRuleEffect(score values.Score, source string, op RuleEffectOp, amount float64) values.Score {
	before := score
	switch op {
	case EffectAddChips:
		score = score.AddChips(int(amount))
	case EffectAddMult:
		score = score.AddMult(amount)
	case EffectMultiplyMult:
		score = score.MultiplyMult(amount)
	case EffectMultiplyChips:
		score = score.MultiplyChips(amount)
	}
	s.LastScoreTrace = append(s.LastScoreTrace, ScoreTraceEntry{
		SourceID: source,
		Op:       op.String(),
		Chips:    score.Chips - before.Chips,
		Mult:     score.Mult - before.Mult,
	})
	return score
}

// runCompiledEffects evaluates each effect in effects whose Trigger matches
// trigger and whose When guard is truthy, applying its actions in order.
// sourceID identifies the joker/consumable/tag/boss instance for trace and
// copy-cycle bookkeeping. score/ctx are threaded through and returned
// updated (ctx.Score is kept in sync with score so later actions in the
// same call see the running total).
func (s *RunState) runCompiledEffects(
	sourceID string,
	effects []content.CompiledEffect,
	trigger string,
	ctx *EffectContext,
	score values.Score,
) (values.Score, error) {
	ctx.SourceID = sourceID
	for _, eff := range effects {
		if eff.Trigger != trigger {
			continue
		}
		ctx.Score = score
		guard, err := expr.Eval(eff.When, ctx)
		if err != nil {
			return score, err
		}
		if !guard.Truthy() {
			continue
		}
		for _, action := range eff.Actions {
			score, err = s.runAction(sourceID, action, ctx, score)
			if err != nil {
				return score, err
			}
			ctx.Score = score
		}
	}
	return score, nil
}

// runActions applies actions in order with no guard and no trigger filter -
// the caller (a hook handler, whose guard already fired) has already
// decided these actions should run.
func (s *RunState) runActions(sourceID string, actions []content.CompiledAction, ctx *EffectContext, score values.Score) (values.Score, error) {
	ctx.SourceID = sourceID
	for _, action := range actions {
		var err error
		score, err = s.runAction(sourceID, action, ctx, score)
		if err != nil {
			return score, err
		}
		ctx.Score = score
	}
	return score, nil
}

func (s *RunState) runAction(sourceID string, action content.CompiledAction, ctx *EffectContext, score values.Score) (values.Score, error) {
	var value expr.Value
	if action.Value != nil {
		var err error
		value, err = expr.Eval(action.Value, ctx)
		if err != nil {
			return score, err
		}
	}

	switch action.Op {
	case content.OpAddChips:
		return s.applyRuleEffect(score, sourceID+":"+content.OpAddChips, EffectAddChips, value.AsNumber()), nil
	case content.OpAddMult:
		return s.applyRuleEffect(score, sourceID+":"+content.OpAddMult, EffectAddMult, value.AsNumber()), nil
	case content.OpMultChips:
		return s.applyRuleEffect(score, sourceID+":"+content.OpMultChips, EffectMultiplyChips, value.AsNumber()), nil
	case content.OpMultMult:
		return s.applyRuleEffect(score, sourceID+":"+content.OpMultMult, EffectMultiplyMult, value.AsNumber()), nil
	case content.OpAddMoney:
		s.Money += int(value.AsNumber())
		if floor := int(s.Rules.Get(rules.KeyMoneyFloor)); s.Money < floor {
			s.Money = floor
		}
		return score, nil
	case content.OpSetRule:
		s.setRuleField(action.Field, parseRuleValue(value))
		return score, nil
	case content.OpAddRule:
		s.setRuleField(action.Field, s.Rules.Get(action.Field)+parseRuleValue(value))
		return score, nil
	case content.OpClearRule:
		s.setRuleField(action.Field, 0)
		return score, nil
	case content.OpDestroyCard:
		return score, nil // accepted but has no effect: cards are destroyed only by a shattering Glass roll
	case content.OpRetrigger:
		return score, nil // accepted but has no effect: the scoring loop repeats a card only for a Red seal
	case content.OpCopyJoker:
		return s.copyJokerEffect(sourceID, action.Field, ctx, score)
	case content.OpDisableBoss:
		// Spec §4.7: "Luchador sell queues boss_disable_pending, consumed at
		// shop-exit or next-blind" - a generic sell-triggered (or any other
		// trigger's) effect can author this, not just a hardcoded joker.
		s.BossDisablePending = true
		return score, nil
	case content.OpUpgradeHand:
		// A Planet card's "upgrade hand" effect; scoreBaseFor reads
		// s.HandLevels[kind.String()] back out, so the content field
		// ("pair", "high_card") is resolved to that hand name first, and an
		// unset level counts as level 1. This is also the "persists
		// planets-used for milestone tracking" spec §4.7 asks for - the
		// level itself is the persisted milestone count.
		if s.HandLevels == nil {
			s.HandLevels = map[string]int{}
		}
		key := action.Field
		if kind, ok := handKindFromString(action.Field); ok {
			key = kind.String()
		}
		if s.HandLevels[key] < 1 {
			s.HandLevels[key] = 1
		}
		s.HandLevels[key]++
		return score, nil
	case content.OpContribute, content.OpContributeBool:
		return score, nil // read directly by collectContributions, not executed here
	case content.OpSetLocal:
		s.setJokerLocal(sourceID, action.Field, value.AsNumber())
		return score, nil
	default:
		s.Diag.UnhandledCustomOp(sourceID, action.Op)
		return score, nil
	}
}

// setRuleField rewrites a single rule-variable value and marks the store
// dirty, since a rule-variable change can affect every future classify
// call this round (four_fingers, shortcut, smeared_suits, max_gap, ...).
func (s *RunState) setRuleField(field string, v float64) {
	snapshot := s.Rules.Snapshot()
	snapshot[field] = v
	s.Rules.Rebuild(snapshot)
}

// copyJokerEffect implements spec §4.7's copy-joker semantics: re-runs the
// target joker's independent-trigger effects, whichever trigger the copying
// effect fired on, guarded by a depth limit and a self-cycle check. The
// target's effects for other triggers are not copied.
func (s *RunState) copyJokerEffect(sourceID, targetID string, ctx *EffectContext, score values.Score) (values.Score, error) {
	const maxCopyDepth = 8
	if s.CopyDepth >= maxCopyDepth {
		return score, nil
	}
	for _, id := range s.CopyStack {
		if id == targetID {
			return score, nil // self-cycle guard
		}
	}

	target, ok := s.findJokerInstance(targetID)
	if !ok {
		s.Diag.UnknownContentRef("joker", targetID)
		return score, nil
	}
	def, ok := s.Content.Jokers[target.ContentID]
	if !ok {
		s.Diag.UnknownContentRef("joker", target.ContentID)
		return score, nil
	}

	s.CopyDepth++
	s.CopyStack = append(s.CopyStack, sourceID)
	defer func() {
		s.CopyDepth--
		s.CopyStack = s.CopyStack[:len(s.CopyStack)-1]
	}()

	return s.runCompiledEffects(target.ID, def.Effects, triggerIndependent, ctx, score)
}

func (s *RunState) findJokerInstance(id string) (JokerInstance, bool) {
	for _, j := range s.Inventory.Jokers {
		if j.ID == id || j.ContentID == id {
			return j, true
		}
	}
	return JokerInstance{}, false
}

// countJoker counts owned jokers matching query by content id or name (the
// count_joker() call), normalized so "Mr. Bones" and "mr_bones" both match.
func (s *RunState) countJoker(query string) int {
	key := expr.NormalizeString(query)
	if key == "" {
		return 0
	}
	n := 0
	for _, j := range s.Inventory.Jokers {
		if expr.NormalizeString(j.ContentID) == key {
			n++
			continue
		}
		if def, ok := s.Content.Jokers[j.ContentID]; ok && expr.NormalizeString(def.Name) == key {
			n++
		}
	}
	return n
}

// jokerLocal reads a per-instance local variable (the var() call), backing
// the guarded-retrigger contract where a joker's own effects stash state
// under its instance id via set_local and later guard on it.
func (s *RunState) jokerLocal(sourceID, key string) float64 {
	if sourceID == "" {
		return 0
	}
	for _, j := range s.Inventory.Jokers {
		if j.ID == sourceID {
			return j.Locals[expr.NormalizeString(key)]
		}
	}
	return 0
}

// setJokerLocal writes a per-instance local variable, the counterpart to
// jokerLocal, invoked by the set_local action.
func (s *RunState) setJokerLocal(sourceID, key string, v float64) {
	for i := range s.Inventory.Jokers {
		if s.Inventory.Jokers[i].ID == sourceID {
			if s.Inventory.Jokers[i].Locals == nil {
				s.Inventory.Jokers[i].Locals = map[string]float64{}
			}
			s.Inventory.Jokers[i].Locals[expr.NormalizeString(key)] = v
			return
		}
	}
}
