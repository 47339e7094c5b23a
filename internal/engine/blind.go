package engine

import (
	"github.com/kevinmchugh/anteforge/internal/content"
	"github.com/kevinmchugh/anteforge/internal/hooks"
	"github.com/kevinmchugh/anteforge/internal/rules"
)

// baseHandSize is the hand size before any voucher bonus, grounded on the
// teacher's InitialCards constant. Per-ante hands/discards allowances come
// from Config.BlindRuleFor instead of a fixed constant.
const baseHandSize = 7

// voucherSum totals the magnitude of every active voucher with the given
// effect, e.g. voucherSum(content.AddHandsPerRound) for the +hands bonus.
func (s *RunState) voucherSum(effect content.VoucherEffect) float64 {
	total := 0.0
	for _, id := range s.ActiveVouchers {
		if v, ok := content.Vouchers[id]; ok && v.Effect == effect {
			total += v.Magnitude
		}
	}
	return total
}

// StartBlind resets round state and deals the opening hand for (ante,
// kind), per spec §4.8. Returns errMissingAnte if the config has no rule
// for ante.
func (s *RunState) StartBlind(ante int, kind BlindKind) error {
	rule, ok := s.Config.BlindRuleFor(ante, kind.String())
	if !ok {
		return errMissingAnte(ante)
	}

	if ante != s.Ante {
		s.PlayedCardIDs = make(map[uint32]bool)
	}
	s.Ante = ante
	s.Blind = kind
	s.RoundHandTypes = make(map[string]bool)
	s.RoundHandLock = false
	s.RoundLockedHand = ""
	s.BlindScore = 0
	s.Target = rule.Target

	s.HandSizeBase = baseHandSize + int(s.voucherSum(content.AddHandSizeBase))
	s.HandsMax = rule.Hands + int(s.voucherSum(content.AddHandsPerRound))
	s.HandsLeft = s.HandsMax
	s.DiscardsMax = rule.Discards + int(s.voucherSum(content.AddDiscardsPerRound))
	s.DiscardsLeft = s.DiscardsMax
	s.Inventory.JokerSlots = 5 + int(s.voucherSum(content.AddJokerSlots))
	s.Inventory.ConsumableSlots = 2 + int(s.voucherSum(content.AddConsumableSlots))

	if kind == BossBlind && !s.BossDisablePending {
		s.assignBoss(s.pickBoss())
	} else if kind != BossBlind {
		s.assignBoss("")
	}
	s.BossDisablePending = false
	s.BossDisabled = false
	if err := s.rebuildRulesIfDirty(); err != nil {
		return err
	}

	s.Hand = nil
	s.Deck.ShuffleAll(s.RNG)
	s.drawUpTo(s.HandSizeBase)

	ctx := &EffectContext{State: s}
	if _, err := s.Hooks.Dispatch(HookEvent{Point: hooks.BlindStart, Ctx: ctx}); err != nil {
		return err
	}

	s.Phase = PhasePlay
	s.emit(BlindStarted{Ante: ante, Blind: kind, Target: s.Target, Hands: s.HandsLeft, Discards: s.DiscardsLeft})
	return nil
}

// assignBoss unregisters the outgoing boss's standing hook effects (if any)
// and registers the incoming one's, keeping s.BossID in sync. Passing ""
// just clears whatever boss was previously active.
func (s *RunState) assignBoss(id string) {
	if s.BossID != "" {
		if def, ok := s.Content.Bosses[s.BossID]; ok {
			s.unregisterEffects("boss:"+s.BossID, def.Effects)
		}
	}
	s.BossID = id
	if id != "" {
		if def, ok := s.Content.Bosses[id]; ok {
			s.registerEffects("boss:"+id, hooks.CoreRules, 0, def.Effects)
		}
	}
	s.Rules.MarkDirty()
}

// pickBoss weighted-samples a boss id from the compiled content's boss
// order, uniform over non-final bosses unless only final ones remain.
func (s *RunState) pickBoss() string {
	order := s.Content.BossOrder
	if len(order) == 0 {
		return ""
	}
	candidates := make([]string, 0, len(order))
	for _, id := range order {
		if !s.Content.Bosses[id].Final {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		candidates = order
	}
	idx := int(s.RNG.NextU64() % uint64(len(candidates)))
	return candidates[idx]
}

// SkipBlind skips the current (non-Boss) blind, awarding a weighted-random
// tag and advancing to the next blind.
func (s *RunState) SkipBlind() error {
	if s.Blind == BossBlind {
		return errSimple(ErrCannotSkipBoss)
	}
	tagID := s.pickTag()
	if tagID != "" {
		s.addTag(tagID)
	}
	s.emit(BlindSkipped{Ante: s.Ante, Blind: s.Blind, Tag: tagID})
	return s.AdvanceBlind()
}

// pickTag uniformly samples a tag id from the compiled content's tag list.
func (s *RunState) pickTag() string {
	order := s.Content.TagOrder
	if len(order) == 0 {
		return ""
	}
	idx := int(s.RNG.NextU64() % uint64(len(order)))
	return order[idx]
}

// AdvanceBlind cycles Small -> Big -> Boss -> Small(ante+1), validating the
// next ante's rule exists before starting it.
func (s *RunState) AdvanceBlind() error {
	next, kind := s.Ante, BlindKind(0)
	switch s.Blind {
	case SmallBlind:
		kind = BigBlind
	case BigBlind:
		kind = BossBlind
	case BossBlind:
		next++
		kind = SmallBlind
	}
	if _, ok := s.Config.BlindRuleFor(next, kind.String()); !ok {
		return errMissingAnte(next)
	}
	return s.StartBlind(next, kind)
}

// StartNextBlind is the exposed "I'm done with the shop" transition: it is
// just AdvanceBlind, kept as a distinct name to mirror spec §6's API
// surface (start_next_blind) separately from the internal cycling helper
// skip_blind and advance_blind both call.
func (s *RunState) StartNextBlind() error {
	return s.AdvanceBlind()
}

// PrepareHand deals up to hand_size, used when a front end needs to
// (re)fill the hand outside of play_hand's own draw (e.g. right after
// StartBlind, or after an external hand-size change).
func (s *RunState) PrepareHand() error {
	if s.Phase != PhasePlay {
		return errPhase(s.Phase)
	}
	before := len(s.Hand)
	s.drawUpTo(s.HandSizeBase + int(s.Rules.Get(rules.KeyDrawAfterPlay)))
	s.emit(HandDealt{Count: len(s.Hand) - before})
	return nil
}
