package engine

import (
	"github.com/kevinmchugh/anteforge/internal/hooks"
	"github.com/kevinmchugh/anteforge/internal/values"
)

const maxJokerAcquireDepth = 8

// AcquireJoker adds a new owned joker of contentID, registers its standing
// hook effects, and fires Acquire (spec §4.6/§4.8). An unknown contentID is
// a content-lookup error: logged to diag and otherwise a no-op, not a
// RunError (spec §7's error policy). A full joker inventory is a real
// RunError.
func (s *RunState) AcquireJoker(contentID string, edition values.Edition) (JokerInstance, error) {
	def, ok := s.Content.Jokers[contentID]
	if !ok {
		s.Diag.UnknownContentRef("joker", contentID)
		return JokerInstance{}, nil
	}
	if len(s.Inventory.Jokers) >= s.Inventory.JokerSlots {
		return JokerInstance{}, errInventory(NoJokerSlots)
	}
	if s.JokerAcquireDepth >= maxJokerAcquireDepth {
		return JokerInstance{}, nil
	}

	inst := JokerInstance{ID: newInstanceID(), ContentID: contentID, Edition: edition, Locals: map[string]float64{}}
	s.Inventory.Jokers = append(s.Inventory.Jokers, inst)
	s.registerEffects(inst.ID, hooks.Jokers, jokerPriority(len(s.Inventory.Jokers)-1), def.Effects)
	s.Rules.MarkDirty()

	s.JokerAcquireDepth++
	ctx := &EffectContext{State: s}
	_, err := s.Hooks.Dispatch(HookEvent{Point: hooks.Acquire, Ctx: ctx})
	s.JokerAcquireDepth--
	if err != nil {
		return inst, err
	}
	if err := s.rebuildRulesIfDirty(); err != nil {
		return inst, err
	}
	return inst, nil
}

// jokerPriority gives earlier-slotted jokers higher dispatch/contribution
// priority, so left-to-right slot order is the deterministic tie-break
// spec's flow/hook ordering contracts require.
func jokerPriority(slot int) int { return 10_000 - slot }

// RemoveJokerAt drops the joker at index without paying out (used by
// destroy/consumable effects; SellJoker is the player-facing path that also
// pays SellValue).
func (s *RunState) RemoveJokerAt(index int) (JokerInstance, error) {
	if index < 0 || index >= len(s.Inventory.Jokers) {
		return JokerInstance{}, errSimple(ErrInvalidJokerIndex)
	}
	inst := s.Inventory.Jokers[index]
	def := s.Content.Jokers[inst.ContentID]
	s.unregisterEffects(inst.ID, def.Effects)
	s.Inventory.Jokers = append(s.Inventory.Jokers[:index:index], s.Inventory.Jokers[index+1:]...)
	s.Rules.MarkDirty()
	return inst, s.rebuildRulesIfDirty()
}

// SellJoker removes the joker at index, runs its own sell-triggered effects
// (e.g. a boss-disabling Luchador), credits its SellValue, and broadcasts
// AnySell so other owned jokers/tags/boss can react.
func (s *RunState) SellJoker(index int) error {
	if index < 0 || index >= len(s.Inventory.Jokers) {
		return errSimple(ErrInvalidJokerIndex)
	}
	inst := s.Inventory.Jokers[index]
	def := s.Content.Jokers[inst.ContentID]

	ctx := &EffectContext{State: s, SoldValue: inst.SellValue}
	if _, err := s.runCompiledEffects(inst.ID, def.Effects, triggerSell, ctx, values.Score{}); err != nil {
		return err
	}

	if _, err := s.RemoveJokerAt(index); err != nil {
		return err
	}
	s.Money += inst.SellValue
	s.emit(JokerSold{ContentID: inst.ContentID, Value: inst.SellValue})

	_, err := s.Hooks.Dispatch(HookEvent{Point: hooks.AnySell, Ctx: ctx})
	return err
}

// AcquireConsumable adds a tarot/planet/spectral card to inventory if a
// slot is free.
func (s *RunState) AcquireConsumable(contentID string) (ConsumableInstance, error) {
	if _, ok := s.Content.Consumables[contentID]; !ok {
		s.Diag.UnknownContentRef("consumable", contentID)
		return ConsumableInstance{}, nil
	}
	if len(s.Inventory.Consumables) >= s.Inventory.ConsumableSlots {
		return ConsumableInstance{}, errInventory(NoConsumableSlots)
	}
	inst := ConsumableInstance{ID: newInstanceID(), ContentID: contentID}
	s.Inventory.Consumables = append(s.Inventory.Consumables, inst)
	return inst, nil
}

// removeConsumableAt drops the consumable at index with no side effects
// beyond the slice mutation; callers handle last_consumable bookkeeping.
func (s *RunState) removeConsumableAt(index int) (ConsumableInstance, error) {
	if index < 0 || index >= len(s.Inventory.Consumables) {
		return ConsumableInstance{}, errSimple(ErrInvalidSelection)
	}
	inst := s.Inventory.Consumables[index]
	s.Inventory.Consumables = append(s.Inventory.Consumables[:index:index], s.Inventory.Consumables[index+1:]...)
	return inst, nil
}

// addTag appends a tag to the ordered tag list and registers its standing
// effects at the Tags priority class.
func (s *RunState) addTag(id string) {
	def, ok := s.Content.Tags[id]
	if !ok {
		s.Diag.UnknownContentRef("tag", id)
		return
	}
	s.OrderedTags = append(s.OrderedTags, id)
	s.registerEffects("tag:"+id, hooks.Tags, jokerPriority(len(s.OrderedTags)-1), def.Effects)
	s.Rules.MarkDirty()
}

// consumeTag removes a tag from the ordered list and its standing
// registrations, used once a tag's guard fires (spec §4.8: a tag is
// consumed the instant any of its effects triggers).
func (s *RunState) consumeTag(id string) {
	def, ok := s.Content.Tags[id]
	if ok {
		s.unregisterEffects("tag:"+id, def.Effects)
	}
	for i, t := range s.OrderedTags {
		if t == id {
			s.OrderedTags = append(s.OrderedTags[:i:i], s.OrderedTags[i+1:]...)
			break
		}
	}
	s.Rules.MarkDirty()
}
