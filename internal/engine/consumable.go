package engine

import (
	"github.com/kevinmchugh/anteforge/internal/hooks"
	"github.com/kevinmchugh/anteforge/internal/values"
)

// UseConsumable applies the consumable at index, validating selected
// against the current hand (no duplicates, in range), running its
// use_consumable-triggered effects once per selected card when any are
// selected and once globally otherwise, then consuming the card from
// inventory.
//
// Simplification: spec §4.7 describes per-effect selection shape (required
// count, "select pair" exactly two) validated against each consumable's
// own OnUse block; this implementation validates selected generically
// (range + no duplicates) and leaves count enforcement to each effect's own
// `when` guard, since content.ConsumableDef carries no separate
// selection-arity field to validate against up front.
func (s *RunState) UseConsumable(index int, selected []int) error {
	if index < 0 || index >= len(s.Inventory.Consumables) {
		return errSimple(ErrInvalidSelection)
	}
	seen := make(map[int]bool, len(selected))
	for _, i := range selected {
		if i < 0 || i >= len(s.Hand) || seen[i] {
			return errSimple(ErrInvalidSelection)
		}
		seen[i] = true
	}

	inst := s.Inventory.Consumables[index]
	def, ok := s.Content.Consumables[inst.ContentID]
	if !ok {
		s.Diag.UnknownContentRef("consumable", inst.ContentID)
		return nil
	}

	ctx := &EffectContext{State: s, ConsumableKind: def.Kind, ConsumableID: def.ID}
	if len(selected) == 0 {
		if _, err := s.runCompiledEffects(inst.ID, def.Effects, triggerUseConsumable, ctx, values.Score{}); err != nil {
			return err
		}
	} else {
		for _, i := range selected {
			card := s.Hand[i]
			ctx.Card = &card
			if _, err := s.runCompiledEffects(inst.ID, def.Effects, triggerUseConsumable, ctx, values.Score{}); err != nil {
				return err
			}
			s.Hand[i] = card
		}
		ctx.Card = nil
	}

	if _, err := s.Hooks.Dispatch(HookEvent{Point: hooks.UseConsumable, Ctx: ctx}); err != nil {
		return err
	}

	if def.Kind == "tarot" || def.Kind == "planet" {
		if def.ID != "the_soul" {
			s.LastConsumable = def.ID
		}
	}

	_, err := s.removeConsumableAt(index)
	return err
}
