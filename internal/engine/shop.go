package engine

import (
	"sort"

	"github.com/kevinmchugh/anteforge/internal/content"
	"github.com/kevinmchugh/anteforge/internal/hooks"
	"github.com/kevinmchugh/anteforge/internal/values"
)

// weightedPick samples a key from weights proportionally, consuming exactly
// one RNG step. Keys are visited in sorted order, so the same RNG state
// always picks the same key. Returns "" if weights is empty or sums to zero.
func weightedPick(rng interface{ NextU64() uint64 }, weights map[string]float64) string {
	keys := make([]string, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	total := 0.0
	for _, k := range keys {
		total += weights[k]
	}
	if total <= 0 {
		return ""
	}
	roll := (float64(rng.NextU64()%1_000_000) / 1_000_000) * total
	acc := 0.0
	for _, k := range keys {
		acc += weights[k]
		if roll < acc {
			return k
		}
	}
	return ""
}

// effectiveRerollBase is Config.Shop.Prices.RerollBase reduced by any
// active ReduceRerollBase vouchers, floored at zero.
func (s *RunState) effectiveRerollBase() int {
	base := s.Config.Shop.Prices.RerollBase - int(s.voucherSum(content.ReduceRerollBase))
	if base < 0 {
		base = 0
	}
	return base
}

// rerollCost is the price of the next shop reroll (spec §4.7, grounded on
// the teacher's rerollCost += 2 per-reroll step, generalized to a
// configurable step).
func (s *RunState) rerollCost() int {
	return s.effectiveRerollBase() + s.Shop.RerollsDone*s.Config.Shop.Prices.RerollStep
}

// shopDiscount is the largest SetShopDiscountPercent among active
// vouchers (0 if none) - "set", not additive, so multiple clearance-style
// vouchers don't stack past the steepest one.
func (s *RunState) shopDiscount() float64 {
	discount := 0.0
	for _, id := range s.ActiveVouchers {
		if v, ok := content.Vouchers[id]; ok && v.Effect == content.SetShopDiscountPercent && v.Magnitude > discount {
			discount = v.Magnitude
		}
	}
	return discount
}

func priceAfterDiscount(price int, discount float64) int {
	return int(float64(price) * (1 - discount))
}

// jokerPrice resolves a joker's shop price from its rarity bucket,
// uniformly sampled within the configured [min,max] range.
func (s *RunState) jokerPrice(rarity string) int {
	p := s.Config.Shop.Prices
	switch rarity {
	case "legendary":
		return p.JokerLegendary
	case "rare":
		return s.RNG.IntRange(p.JokerRare.Min, p.JokerRare.Max)
	case "uncommon":
		return s.RNG.IntRange(p.JokerUncommon.Min, p.JokerUncommon.Max)
	default:
		return s.RNG.IntRange(p.JokerCommon.Min, p.JokerCommon.Max)
	}
}

// rollJokerOffer picks a random owned-duplicate-aware joker id by rarity
// weight.
func (s *RunState) rollJokerOffer() (ShopOffer, bool) {
	rarity := weightedPick(s.RNG, s.Config.Shop.JokerRarityWeights)
	candidates := make([]string, 0, len(s.Content.JokerOrder))
	for _, id := range s.Content.JokerOrder {
		def := s.Content.Jokers[id]
		if rarity != "" && def.Rarity != rarity {
			continue
		}
		if !s.allowOffer(id) {
			continue
		}
		candidates = append(candidates, id)
	}
	if len(candidates) == 0 {
		return ShopOffer{}, false
	}
	id := candidates[s.RNG.IntRange(0, len(candidates)-1)]
	return ShopOffer{Kind: OfferJoker, ContentID: id, Price: s.jokerPrice(s.Content.Jokers[id].Rarity)}, true
}

// rollConsumableOffer picks a random consumable id of the given kind
// ("tarot"/"planet"/"spectral").
func (s *RunState) rollConsumableOffer(kind string) (ShopOffer, bool) {
	candidates := make([]string, 0, len(s.Content.ConsumableOrder))
	for _, id := range s.Content.ConsumableOrder {
		def := s.Content.Consumables[id]
		if def.Kind != kind {
			continue
		}
		if !s.allowOffer(id) {
			continue
		}
		candidates = append(candidates, id)
	}
	if len(candidates) == 0 {
		return ShopOffer{}, false
	}
	id := candidates[s.RNG.IntRange(0, len(candidates)-1)]
	price := s.Config.Shop.Prices.Tarot
	switch kind {
	case "planet":
		price = s.Config.Shop.Prices.Planet
	case "spectral":
		price = s.Config.Shop.Prices.Spectral
	}
	return ShopOffer{Kind: OfferConsumable, ContentID: id, Price: price}, true
}

// allowOffer reports whether contentID may appear in the shop, honoring
// allow_duplicates (owned jokers/consumables are excluded unless the rule
// flag is set).
func (s *RunState) allowOffer(contentID string) bool {
	if s.Rules.Flag("allow_duplicates") {
		return true
	}
	for _, j := range s.Inventory.Jokers {
		if j.ContentID == contentID {
			return false
		}
	}
	for _, c := range s.Inventory.Consumables {
		if c.ContentID == contentID {
			return false
		}
	}
	return true
}

// rollCardOffer samples which card kind fills one card slot (joker, tarot,
// planet, spectral, playing_card) per Config.Shop.CardWeights, retrying a
// handful of times if the sampled kind has no eligible candidates.
func (s *RunState) rollCardOffer() (ShopOffer, bool) {
	weights := map[string]float64{}
	for k, w := range s.Config.Shop.CardWeights {
		switch k {
		case "tarot":
			w += s.voucherSum(content.AddTarotWeight)
		case "planet":
			w += s.voucherSum(content.AddPlanetWeight)
		}
		weights[k] = w
	}
	for attempt := 0; attempt < 4; attempt++ {
		kind := weightedPick(s.RNG, weights)
		switch kind {
		case "joker":
			if off, ok := s.rollJokerOffer(); ok {
				return off, true
			}
		case "tarot", "planet", "spectral":
			if off, ok := s.rollConsumableOffer(kind); ok {
				return off, true
			}
		}
	}
	return ShopOffer{}, false
}

// rollPackOffer samples a booster pack kind per Config.Shop.PackWeights.
func (s *RunState) rollPackOffer() (ShopOffer, bool) {
	kind := weightedPick(s.RNG, s.Config.Shop.PackWeights)
	if kind == "" {
		return ShopOffer{}, false
	}
	price := s.Config.Shop.Prices.PackPrices[kind]
	return ShopOffer{Kind: OfferPack, ContentID: kind, Price: price}, true
}

// rollVoucherOffer samples one not-yet-owned voucher uniformly.
func (s *RunState) rollVoucherOffer() (ShopOffer, bool) {
	candidates := make([]string, 0, len(content.Vouchers))
	owned := make(map[string]bool, len(s.ActiveVouchers))
	for _, id := range s.ActiveVouchers {
		owned[id] = true
	}
	for id := range content.Vouchers {
		if !owned[id] {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return ShopOffer{}, false
	}
	sort.Strings(candidates)
	id := candidates[s.RNG.IntRange(0, len(candidates)-1)]
	return ShopOffer{Kind: OfferVoucher, ContentID: id, Price: s.Config.Shop.Prices.Voucher}, true
}

// generateOffers rolls Config.Shop's full slate of card/booster/voucher
// slots, applying the current shop discount to every rolled price.
func (s *RunState) generateOffers() []ShopOffer {
	cardSlots := s.Config.Shop.CardSlots + int(s.voucherSum(content.AddShopCardSlots))
	discount := s.shopDiscount()
	offers := make([]ShopOffer, 0, cardSlots+s.Config.Shop.BoosterSlots+s.Config.Shop.VoucherSlots)
	for i := 0; i < cardSlots; i++ {
		if off, ok := s.rollCardOffer(); ok {
			off.Price = priceAfterDiscount(off.Price, discount)
			offers = append(offers, off)
		}
	}
	for i := 0; i < s.Config.Shop.BoosterSlots; i++ {
		if off, ok := s.rollPackOffer(); ok {
			off.Price = priceAfterDiscount(off.Price, discount)
			offers = append(offers, off)
		}
	}
	for i := 0; i < s.Config.Shop.VoucherSlots; i++ {
		if off, ok := s.rollVoucherOffer(); ok {
			off.Price = priceAfterDiscount(off.Price, discount)
			offers = append(offers, off)
		}
	}
	return offers
}

// EnterShop generates a fresh offer slate and opens the shop. Requires the
// blind to have been cleared (Phase == PhaseShop).
func (s *RunState) EnterShop() error {
	if s.Phase != PhaseShop {
		return errSimple(ErrShopNotAvailable)
	}
	reentered := s.Shop != nil
	s.Shop = &ShopState{Offers: s.generateOffers(), Reentered: reentered}

	ctx := &EffectContext{State: s}
	if _, err := s.Hooks.Dispatch(HookEvent{Point: hooks.ShopEnter, Ctx: ctx}); err != nil {
		return err
	}
	s.emit(ShopEntered{Offers: s.Shop.Offers, RerollCost: s.rerollCost(), Reentered: reentered})
	return nil
}

// RerollShop charges the current reroll cost and replaces every offer.
func (s *RunState) RerollShop() error {
	if s.Phase != PhaseShop || s.Shop == nil {
		return errSimple(ErrShopNotAvailable)
	}
	cost := s.rerollCost()
	if s.Money < cost {
		return errSimple(ErrNotEnoughMoney)
	}
	s.Money -= cost
	s.Shop.RerollsDone++
	s.Shop.Offers = s.generateOffers()

	ctx := &EffectContext{State: s}
	if _, err := s.Hooks.Dispatch(HookEvent{Point: hooks.ShopReroll, Ctx: ctx}); err != nil {
		return err
	}
	s.emit(ShopRerolled{NewOffers: s.Shop.Offers, NewCost: s.rerollCost(), MoneyLeft: s.Money})
	return nil
}

// BuyShopOffer purchases the offer at offerIndex: jokers/consumables are
// added directly to inventory, packs are opened (PendingPack is set for a
// follow-up ChoosePackOptions/SkipPack), and vouchers apply immediately and
// reprice the remaining open offers.
func (s *RunState) BuyShopOffer(offerIndex int) error {
	if s.Phase != PhaseShop || s.Shop == nil {
		return errSimple(ErrShopNotAvailable)
	}
	if offerIndex < 0 || offerIndex >= len(s.Shop.Offers) {
		return errSimple(ErrInvalidOfferIndex)
	}
	offer := s.Shop.Offers[offerIndex]
	if s.Money < offer.Price {
		return errSimple(ErrNotEnoughMoney)
	}
	s.Money -= offer.Price

	switch offer.Kind {
	case OfferJoker:
		if _, err := s.AcquireJoker(offer.ContentID, 0); err != nil {
			return err
		}
	case OfferConsumable:
		if _, err := s.AcquireConsumable(offer.ContentID); err != nil {
			return err
		}
	case OfferPack:
		if err := s.openPack(offer.ContentID); err != nil {
			return err
		}
	case OfferVoucher:
		if err := s.applyVoucherPurchase(offer.ContentID); err != nil {
			return err
		}
	}

	s.Shop.Offers = append(s.Shop.Offers[:offerIndex:offerIndex], s.Shop.Offers[offerIndex+1:]...)
	s.emit(ShopBought{OfferIndex: offerIndex, ContentID: offer.ContentID, Price: offer.Price})
	return nil
}

// applyVoucherPurchase records the voucher as active (every effect reads
// back through voucherSum/shopDiscount/effectiveRerollBase) and reprices
// the currently open offers by the resulting reroll-base ratio (spec
// §4.7's "discount ratio derived from current reroll_base / base
// reroll_base"), and, when the purchase changes the shop discount, by the
// new discounted-price factor over the old one (rounded down).
func (s *RunState) applyVoucherPurchase(voucherID string) error {
	if _, ok := content.Vouchers[voucherID]; !ok {
		s.Diag.UnknownContentRef("voucher", voucherID)
		return nil
	}
	baseRerollBase := s.Config.Shop.Prices.RerollBase
	before := s.effectiveRerollBase()
	discBefore := s.shopDiscount()
	s.ActiveVouchers = append(s.ActiveVouchers, voucherID)
	after := s.effectiveRerollBase()

	if baseRerollBase > 0 && before > 0 && after != before {
		ratio := float64(after) / float64(before)
		for i := range s.Shop.Offers {
			s.Shop.Offers[i].Price = int(float64(s.Shop.Offers[i].Price) * ratio)
		}
	}
	if discAfter := s.shopDiscount(); discAfter != discBefore && discBefore < 1 {
		scale := (1 - discAfter) / (1 - discBefore)
		for i := range s.Shop.Offers {
			s.Shop.Offers[i].Price = int(float64(s.Shop.Offers[i].Price) * scale)
		}
	}
	return nil
}

// openPack samples a pack's option pool (jokers for a "buffoon" pack,
// otherwise consumables of the matching kind) and stores it as the
// awaiting-choice PendingPack.
func (s *RunState) openPack(packKind string) error {
	const pickCount = 2
	const optionCount = 4

	kind := "consumable"
	pool := s.Content.ConsumableOrder
	filter := func(id string) bool { return s.Content.Consumables[id].Kind == packKind }
	if packKind == "buffoon" {
		kind = "joker"
		pool = s.Content.JokerOrder
		filter = func(string) bool { return true }
	}

	eligible := make([]string, 0, len(pool))
	for _, id := range pool {
		if filter(id) {
			eligible = append(eligible, id)
		}
	}
	n := optionCount
	if n > len(eligible) {
		n = len(eligible)
	}
	shuffled := append([]string(nil), eligible...)
	values.Shuffle(s.RNG, shuffled)
	options := shuffled[:n]

	picks := pickCount
	if picks > n {
		picks = n
	}
	s.PendingPack = &PendingPack{PackID: packKind, Kind: kind, Options: options, Picks: picks}

	ctx := &EffectContext{State: s}
	if _, err := s.Hooks.Dispatch(HookEvent{Point: hooks.PackOpened, Ctx: ctx}); err != nil {
		return err
	}
	s.emit(PackOpenedEvt{PackID: packKind, Options: options})
	return nil
}

// ChoosePackOptions acquires the chosen options from the pending pack
// (at most Picks of them) and clears it.
func (s *RunState) ChoosePackOptions(indices []int) error {
	if s.PendingPack == nil {
		return errSimple(ErrPackNotAvailable)
	}
	if len(indices) > s.PendingPack.Picks {
		return errSimple(ErrInvalidSelection)
	}
	seen := make(map[int]bool, len(indices))
	chosen := make([]string, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(s.PendingPack.Options) || seen[i] {
			return errSimple(ErrInvalidSelection)
		}
		seen[i] = true
		chosen = append(chosen, s.PendingPack.Options[i])
	}

	for _, id := range chosen {
		var err error
		if s.PendingPack.Kind == "joker" {
			_, err = s.AcquireJoker(id, 0)
		} else {
			_, err = s.AcquireConsumable(id)
		}
		if err != nil {
			return err
		}
	}
	s.PendingPack = nil
	s.emit(PackChosen{Picks: chosen})
	return nil
}

// SkipPack discards the pending pack without acquiring anything.
func (s *RunState) SkipPack() error {
	if s.PendingPack == nil {
		return errSimple(ErrPackNotAvailable)
	}
	ctx := &EffectContext{State: s}
	if _, err := s.Hooks.Dispatch(HookEvent{Point: hooks.PackSkipped, Ctx: ctx}); err != nil {
		return err
	}
	s.PendingPack = nil
	return nil
}

// LeaveShop dispatches ShopExit and clears the shop state. A boss-disable
// queued during this shop (e.g. a sold Luchador-style joker) is consumed
// the next time StartBlind runs, per spec's "shop-exit or next-blind"
// wording - StartBlind is the side that actually checks the flag.
func (s *RunState) LeaveShop() error {
	if s.Phase != PhaseShop {
		return errSimple(ErrShopNotAvailable)
	}
	ctx := &EffectContext{State: s}
	if _, err := s.Hooks.Dispatch(HookEvent{Point: hooks.ShopExit, Ctx: ctx}); err != nil {
		return err
	}
	s.Shop = nil
	return nil
}
