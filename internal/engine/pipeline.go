package engine

import (
	"github.com/kevinmchugh/anteforge/internal/classify"
	"github.com/kevinmchugh/anteforge/internal/flow"
	"github.com/kevinmchugh/anteforge/internal/hooks"
	"github.com/kevinmchugh/anteforge/internal/rules"
	"github.com/kevinmchugh/anteforge/internal/values"
)

func validateSelection(indices []int, handLen int) error {
	if len(indices) == 0 || len(indices) > 5 {
		return errSimple(ErrInvalidCardCount)
	}
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= handLen {
			return errSimple(ErrInvalidSelection)
		}
		if seen[i] {
			return errSimple(ErrInvalidSelection)
		}
		seen[i] = true
	}
	return nil
}

// takeCards splits s.Hand into the selected (played) cards, in selection
// order, and the remaining (held) cards, in their original hand order.
func takeCards(hand []values.Card, indices []int) (played, held []values.Card) {
	chosen := make(map[int]bool, len(indices))
	for _, i := range indices {
		chosen[i] = true
	}
	played = make([]values.Card, 0, len(indices))
	for _, i := range indices {
		played = append(played, hand[i])
	}
	held = make([]values.Card, 0, len(hand)-len(indices))
	for i, c := range hand {
		if !chosen[i] {
			held = append(held, c)
		}
	}
	return played, held
}

// evaluateHandEvalRules resolves the classifier flags through the HandEval
// flow point. No native ModRuntime extension currently contributes here
// (spec's "no-op defaults" for flow points with nothing registered), so the
// patch always resolves to whatever the rule-variable store already holds;
// the call still genuinely exercises flow.ApplyPatch on every hand.
func (s *RunState) evaluateHandEvalRules() classify.Rules {
	baseBool := map[string]bool{
		"four_fingers":  s.Rules.Flag(rules.KeyFourFingers),
		"shortcut":      s.Rules.Flag(rules.KeyShortcut),
		"smeared_suits": s.Rules.Flag(rules.KeySmearedSuits),
		"splash":        s.Rules.Flag(rules.KeySplash),
	}
	base := map[string]float64{"max_gap": s.Rules.Get(rules.KeyMaxGap)}
	policies := flow.FieldPolicies{
		"four_fingers":  flow.BoolOr,
		"shortcut":      flow.BoolOr,
		"smeared_suits": flow.BoolOr,
		"splash":        flow.BoolOr,
		"max_gap":       flow.Max,
	}
	numOut, out := flow.ApplyPatch(base, baseBool, policies, nil)
	return classify.Rules{
		FourFingers:  out["four_fingers"],
		Shortcut:     out["shortcut"],
		SmearedSuits: out["smeared_suits"],
		Splash:       out["splash"],
		MaxGap:       int(numOut["max_gap"]),
	}
}

// classifyHand resolves the winning hand kind through the HandType flow
// point: the built-in classifier's result is always the sole Replace
// candidate (no mod presently overrides hand classification), so this wins
// by construction, but the call still routes through flow.Replace so a
// future native override slots in without a pipeline change.
func classifyHand(played []values.Card, classRules classify.Rules) classify.Result {
	builtin := classify.Classify(played, classRules)
	winner, _ := flow.Replace([]flow.ReplaceCandidate[classify.Result]{
		{SourceID: "classifier", Priority: 0, Value: builtin},
	})
	return winner
}

// scoreBaseFor resolves (chips, mult) for kind through the ScoreBase flow
// point: level_delta/chips_mult/mult_mult contributions from jokers/boss
// effects declaring an OpContribute action at the "score_base" trigger are
// folded via flow.ApplyPatch, then fed into the hand table lookup.
func (s *RunState) scoreBaseFor(kind values.HandKind, ctx *EffectContext) (values.Score, error) {
	base := map[string]float64{
		"level_delta": s.Rules.Get(rules.KeyHandLevelDelta),
		"chips_mult":  1 + s.Rules.Get(rules.KeyBaseChipsMult),
		"mult_mult":   1 + s.Rules.Get(rules.KeyBaseMultMult),
	}
	policies := flow.FieldPolicies{
		"level_delta": flow.Add,
		"chips_mult":  flow.Mul,
		"mult_mult":   flow.Mul,
	}
	contributions, err := s.collectContributions(string(flow.ScoreBase), ctx)
	if err != nil {
		return values.Score{}, err
	}
	numOut, _ := flow.ApplyPatch(base, nil, policies, contributions)

	level := s.HandLevels[kind.String()] + int(numOut["level_delta"])
	chips, mult := s.HandTable.BaseForLevel(kind.String(), level)
	chips = int(float64(chips) * numOut["chips_mult"])
	mult *= numOut["mult_mult"]
	return values.Score{Chips: chips, Mult: mult}, nil
}

// cardDebuffed resolves whether card is debuffed through the CardDebuff
// flow point - a boss effect declares OpContributeBool on field "debuffed"
// guarded by e.g. `card.suit == 'hearts'`.
func (s *RunState) cardDebuffed(ctx *EffectContext) (bool, error) {
	policies := flow.FieldPolicies{"debuffed": flow.BoolOr}
	contributions, err := s.collectContributions(string(flow.CardDebuff), ctx)
	if err != nil {
		return false, err
	}
	_, out := flow.ApplyPatch(nil, map[string]bool{"debuffed": false}, policies, contributions)
	return out["debuffed"], nil
}

// PlayHand is spec §4.7's play_hand(indices): scores the selected cards,
// mutating RunState in place, and returns a ScoreBreakdown on success. A
// failing call leaves RunState unchanged and never advances the RNG.
func (s *RunState) PlayHand(indices []int) (ScoreBreakdown, error) {
	if s.Phase != PhasePlay {
		return ScoreBreakdown{}, errPhase(s.Phase)
	}
	if s.HandsLeft <= 0 {
		return ScoreBreakdown{}, errSimple(ErrNoHandsLeft)
	}
	if err := validateSelection(indices, len(s.Hand)); err != nil {
		return ScoreBreakdown{}, err
	}
	if want := s.Rules.Get(rules.KeyRequiredPlayCount); want > 0 && len(indices) != int(want) {
		return ScoreBreakdown{}, errSimple(ErrInvalidCardCount)
	}

	played, held := takeCards(s.Hand, indices)

	classRules := s.evaluateHandEvalRules()
	result := classifyHand(played, classRules)

	if s.Rules.Flag(rules.KeySingleHandType) && s.RoundHandLock && s.RoundLockedHand != result.Kind.String() {
		return ScoreBreakdown{}, errSimple(ErrHandNotAllowed)
	}
	if s.Rules.Flag(rules.KeyNoRepeatHand) && s.RoundHandTypes[result.Kind.String()] {
		return ScoreBreakdown{}, errSimple(ErrHandNotAllowed)
	}

	ctx := &EffectContext{State: s, Hand: &result, Played: played, Held: held}
	score, err := s.scoreBaseFor(result.Kind, ctx)
	if err != nil {
		return ScoreBreakdown{}, err
	}

	s.LastScoreTrace = nil
	s.Hand = held
	s.LastHand = result.Kind.String()
	s.HandPlayCounts[result.Kind.String()]++
	s.RoundHandTypes[result.Kind.String()] = true
	if s.Rules.Flag(rules.KeySingleHandType) && !s.RoundHandLock {
		s.RoundHandLock = true
		s.RoundLockedHand = result.Kind.String()
	}
	if s.Blind != BossBlind {
		for _, c := range played {
			s.PlayedCardIDs[c.ID] = true
		}
	}

	score, _, err = s.dispatchHook(hooks.Played, ctx, score)
	if err != nil {
		return ScoreBreakdown{}, err
	}

	destroyedIDs := make(map[uint32]bool)
	rankChipsTotal := 0
	for _, idx := range result.ScoringIndices {
		card := played[idx]
		ctx.Card = &card
		ctx.IsScoringCard, ctx.IsPlayedCard, ctx.IsHeldCard = true, true, false

		debuffed, err := s.cardDebuffed(ctx)
		if err != nil {
			return ScoreBreakdown{}, err
		}
		if debuffed {
			continue
		}
		rankChipsTotal += card.RankChips()

		for t, n := 0, retriggerCountFor(card); t < n; t++ {
			score = s.applyRuleEffect(score, "card:rank_chips", EffectAddChips, float64(card.RankChips()))

			var destroy bool
			score, destroy = s.applyEnhancementOnScore(card, score)

			score, _, err = s.dispatchHook(hooks.ScoredPre, ctx, score)
			if err != nil {
				return ScoreBreakdown{}, err
			}

			score = s.applyEditionOnScore(card, score)
			score = s.applySealOnScore(card, score)

			score, _, err = s.dispatchHook(hooks.Scored, ctx, score)
			if err != nil {
				return ScoreBreakdown{}, err
			}

			if destroy && !destroyedIDs[card.ID] {
				destroyedIDs[card.ID] = true
				score, _, err = s.dispatchHook(hooks.CardDestroyed, ctx, score)
				if err != nil {
					return ScoreBreakdown{}, err
				}
			}
		}
	}
	ctx.Card = nil
	ctx.IsScoringCard, ctx.IsPlayedCard = false, false

	for i := range held {
		card := held[i]
		ctx.Card = &card
		ctx.IsHeldCard = true
		score = s.applyHeldCardEffects(card, score)
		score, _, err = s.dispatchHook(hooks.Held, ctx, score)
		if err != nil {
			return ScoreBreakdown{}, err
		}
	}
	ctx.Card = nil
	ctx.IsHeldCard = false

	score, _, err = s.dispatchHook(hooks.Independent, ctx, score)
	if err != nil {
		return ScoreBreakdown{}, err
	}

	score, _, err = s.dispatchHook(hooks.HandEnd, ctx, score)
	if err != nil {
		return ScoreBreakdown{}, err
	}

	total := score.Total()
	s.BlindScore += total
	s.HandsLeft--

	kept := make([]values.Card, 0, len(played))
	for _, c := range played {
		if !destroyedIDs[c.ID] {
			kept = append(kept, c)
		}
	}
	s.Deck.Discard(kept...)

	if s.Rules.Flag(rules.KeyDiscardHeldAfterHand) {
		s.Deck.Discard(s.Hand...)
		s.Hand = nil
	}
	s.drawUpTo(s.HandSizeBase + int(s.Rules.Get(rules.KeyDrawAfterPlay)))

	s.emit(HandScored{Hand: result.Kind.String(), Chips: score.Chips, Mult: score.Mult, Total: total})

	s.checkBlindOutcome()

	trace := make([]ScoreTraceEntry, len(s.LastScoreTrace))
	copy(trace, s.LastScoreTrace)
	return ScoreBreakdown{
		Hand:           result.Kind,
		ScoringIndices: result.ScoringIndices,
		Base:           score,
		RankChips:      rankChipsTotal,
		Total:          total,
		Trace:          trace,
	}, nil
}

// drawUpTo draws from the deck until the hand reaches target cards (a
// no-op if it's already there or beyond).
func (s *RunState) drawUpTo(target int) {
	if len(s.Hand) >= target {
		return
	}
	s.Hand = append(s.Hand, s.Deck.Draw(s.RNG, target-len(s.Hand))...)
}

// checkBlindOutcome transitions Phase once a blind is decided: cleared
// (score >= target) moves to the shop; failed (hands exhausted, score still
// short) dispatches BlindFailed, letting a handler set the "prevent_death"
// rule variable to force a last-second clear (spec §4.8's boss/joker escape
// hatch) before giving up.
func (s *RunState) checkBlindOutcome() {
	if s.BlindScore >= s.Target {
		s.clearBlind()
		return
	}
	if s.HandsLeft > 0 {
		return
	}

	failCtx := &EffectContext{State: s}
	s.Hooks.Dispatch(HookEvent{Point: hooks.BlindFailed, Ctx: failCtx})
	if s.Rules.Flag("prevent_death") {
		s.setRuleField("prevent_death", 0)
		s.BlindScore = s.Target
		s.clearBlind()
		return
	}
	s.emit(BlindFailed{Score: s.BlindScore})
}

// clearBlind awards the blind-clear reward (base reward by blind kind, plus
// unused-hands bonus and banked-money interest) and opens the shop.
func (s *RunState) clearBlind() {
	reward := 0
	switch s.Blind {
	case SmallBlind:
		reward = s.Config.Economy.RewardSmall
	case BigBlind:
		reward = s.Config.Economy.RewardBig
	case BossBlind:
		reward = s.Config.Economy.RewardBoss
	}
	reward += s.HandsLeft * s.Config.Economy.PerHandReward

	interest := 0
	if s.Config.Economy.InterestStep > 0 {
		interest = (s.Money / s.Config.Economy.InterestStep) * int(s.Config.Economy.InterestPer)
		if interest > s.Config.Economy.InterestCap {
			interest = s.Config.Economy.InterestCap
		}
	}

	s.Money += reward + interest
	s.Phase = PhaseShop
	s.emit(BlindCleared{Score: s.BlindScore, Reward: reward + interest, Money: s.Money})
}

// Discard spends one discard on the selected cards: they leave the hand for
// the discard pile and an equal number of replacements are drawn.
func (s *RunState) Discard(indices []int) error {
	if s.Phase != PhasePlay {
		return errPhase(s.Phase)
	}
	if s.DiscardsLeft <= 0 {
		return errSimple(ErrNoDiscardsLeft)
	}
	if err := validateSelection(indices, len(s.Hand)); err != nil {
		return err
	}

	discarded, held := takeCards(s.Hand, indices)
	ctx := &EffectContext{State: s, Discarded: discarded, Held: held}
	for i := range discarded {
		card := discarded[i]
		ctx.Card = &card
		if _, err := s.Hooks.Dispatch(HookEvent{Point: hooks.Discard, Ctx: ctx}); err != nil {
			return err
		}
	}
	ctx.Card = nil
	if _, err := s.Hooks.Dispatch(HookEvent{Point: hooks.DiscardBatch, Ctx: ctx}); err != nil {
		return err
	}

	s.Deck.Discard(discarded...)
	s.Hand = held
	s.DiscardsLeft--
	s.drawUpTo(s.HandSizeBase + int(s.Rules.Get(rules.KeyDrawAfterDiscard)))
	return nil
}
