package engine

import "github.com/kevinmchugh/anteforge/internal/values"

// Enhancement/edition/seal magnitudes are a closed, engine-owned taxonomy
// (spec §3's orthogonal per-card modifiers), not content-authored, so they
// live here as constants rather than in a YAML table.
const (
	bonusChips       = 30
	multBonus        = 4.0
	glassMultFactor  = 2.0
	glassDestroySides = 4 // roll(4): 1-in-4 chance to shatter after scoring
	stoneChips       = 50
	luckyMultOdds    = 5  // roll(5): 1-in-5 chance of +luckyMultBonus mult
	luckyMultBonus   = 20.0
	luckyMoneyOdds   = 15 // roll(15): 1-in-15 chance of +luckyMoneyBonus money
	luckyMoneyBonus  = 20
	steelMultFactor  = 1.5
	goldHeldMoney    = 3
	goldSealMoney    = 3
	foilChips        = 50
	holographicMult  = 10.0
	polychromeFactor = 1.5
)

// retriggerCountFor reports how many times a scoring card's on-score steps
// repeat - spec §4.7's Red seal retrigger (always exactly twice; stacking
// retriggers granted by jokers are a documented simplification, see
// DESIGN.md).
func retriggerCountFor(card values.Card) int {
	if card.Seal == values.RedSeal {
		return 2
	}
	return 1
}

// applyEnhancementOnScore applies card's Enhancement's on-score effect and
// reports whether the card should be destroyed afterward (Glass's shatter
// roll).
func (s *RunState) applyEnhancementOnScore(card values.Card, score values.Score) (values.Score, bool) {
	switch card.Enhancement {
	case values.Bonus:
		return s.applyRuleEffect(score, "enhancement:bonus", EffectAddChips, bonusChips), false
	case values.Mult:
		return s.applyRuleEffect(score, "enhancement:mult", EffectAddMult, multBonus), false
	case values.Glass:
		score = s.applyRuleEffect(score, "enhancement:glass_mult", EffectMultiplyMult, glassMultFactor)
		return score, s.RNG.Roll(glassDestroySides)
	case values.Stone:
		return s.applyRuleEffect(score, "enhancement:stone", EffectAddChips, stoneChips), false
	case values.Lucky:
		if s.RNG.Roll(luckyMultOdds) {
			score = s.applyRuleEffect(score, "enhancement:lucky_mult", EffectAddMult, luckyMultBonus)
		}
		if s.RNG.Roll(luckyMoneyOdds) {
			s.Money += luckyMoneyBonus
			s.LastScoreTrace = append(s.LastScoreTrace, ScoreTraceEntry{SourceID: "enhancement:lucky_money", Op: "add_money"})
		}
		return score, false
	default:
		return score, false
	}
}

// applyEditionOnScore applies card's Edition's on-score effect.
func (s *RunState) applyEditionOnScore(card values.Card, score values.Score) values.Score {
	switch card.Edition {
	case values.Foil:
		return s.applyRuleEffect(score, "edition:foil", EffectAddChips, foilChips)
	case values.Holographic:
		return s.applyRuleEffect(score, "edition:holographic", EffectAddMult, holographicMult)
	case values.Polychrome:
		return s.applyRuleEffect(score, "edition:polychrome", EffectMultiplyMult, polychromeFactor)
	default:
		return score
	}
}

// applySealOnScore applies card's Seal's on-score effect. Red seal's
// retrigger is handled by the caller looping retriggerCountFor times, not
// here; Blue/Purple seal's end-of-round card creation are out of scope (see
// DESIGN.md).
func (s *RunState) applySealOnScore(card values.Card, score values.Score) values.Score {
	if card.Seal == values.GoldSeal {
		s.Money += goldSealMoney
	}
	return score
}

// applyHeldCardEffects applies a held (not played) card's passive effect:
// Steel's mult multiplier and Gold's end-of-hand money.
func (s *RunState) applyHeldCardEffects(card values.Card, score values.Score) values.Score {
	switch card.Enhancement {
	case values.Steel:
		return s.applyRuleEffect(score, "held:steel_mult", EffectMultiplyMult, steelMultFactor)
	case values.Gold:
		s.Money += goldHeldMoney
		return score
	default:
		return score
	}
}
