package content

// DefaultConfig returns the built-in tuning set used when no config file is
// supplied, grounded on the teacher's internal/game constants (StartingMoney
// = 4, MaxHands = 4, MaxDiscards = 3, InitialCards = 7, per-blind reward
// ladder 4/5/6, unused-hand reward 1) and the reroll_base=5/reroll_step=1
// pairing spec §8's voucher-discount scenario asserts against directly.
func DefaultConfig() *Config {
	cfg := &Config{
		Economy: Economy{
			InterestPer:   1,
			InterestStep:  5,
			InterestCap:   5,
			RewardSmall:   4,
			RewardBig:     5,
			RewardBoss:    6,
			PerHandReward: 1,
		},
		Shop: Shop{
			CardSlots:    2,
			BoosterSlots: 2,
			VoucherSlots: 1,
			CardWeights: map[string]float64{
				"joker": 0.55, "tarot": 0.2, "planet": 0.2, "spectral": 0.05,
			},
			PackWeights: map[string]float64{
				"arcana": 0.3, "celestial": 0.3, "spectral": 0.1, "standard": 0.1, "buffoon": 0.2,
			},
			JokerRarityWeights: map[string]float64{
				"common": 0.7, "uncommon": 0.25, "rare": 0.04, "legendary": 0.01,
			},
			Prices: Prices{
				JokerCommon:    MinMax{Min: 3, Max: 5},
				JokerUncommon:  MinMax{Min: 5, Max: 8},
				JokerRare:      MinMax{Min: 8, Max: 10},
				JokerLegendary: 20,
				Tarot:          3,
				Planet:         3,
				Spectral:       4,
				PlayingCard:    1,
				Voucher:        10,
				RerollBase:     5,
				RerollStep:     1,
				PackPrices:     map[string]int{"arcana": 4, "celestial": 4, "spectral": 6, "standard": 4, "buffoon": 6},
			},
		},
		Blinds:    defaultBlinds(),
		RankChips: defaultRankChips(),
		HandBase:  defaultHandBase(),
	}
	return cfg
}

func defaultBlinds() map[int]AnteRules {
	base := []int{300, 450, 600}
	blinds := make(map[int]AnteRules, 8)
	for ante := 1; ante <= 8; ante++ {
		step := 1.0 + float64(ante-1)*0.25
		blinds[ante] = AnteRules{
			Small: BlindRule{Target: int(float64(base[0]) * step), Hands: 4, Discards: 3},
			Big:   BlindRule{Target: int(float64(base[1]) * step), Hands: 4, Discards: 3},
			Boss:  BlindRule{Target: int(float64(base[2]) * step), Hands: 4, Discards: 3},
		}
	}
	return blinds
}

func defaultRankChips() map[string]int {
	return map[string]int{
		"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9, "10": 10,
		"jack": 10, "queen": 10, "king": 10, "ace": 11,
	}
}

// DefaultContent returns the built-in joker/boss/tag/consumable roster used
// when no content file is supplied, grounded on the teacher's
// setDefaultJokerConfigs/setDefaultBosses fallback lists (jokers.go/
// bosses.go) - generalized from the teacher's fixed JokerEffect/BossEffect
// enums to effect lists in this engine's DSL, but kept to the same small
// hand-picked set a missing-YAML run falls back to rather than a large
// catalog, since a full card set is exactly the kind of content a mod
// author supplies, not something the engine ships.
func DefaultContent() *Content {
	return &Content{
		Jokers: []JokerDef{
			{
				ID: "golden_joker", Name: "The Golden Joker", Rarity: "common", BasePrice: 6,
				Description: "Earn $4 at the end of each round.",
				Effects: []EffectDef{
					{Trigger: "round_end", Actions: []ActionDef{{Op: OpAddMoney, Expr: "4"}}},
				},
			},
			{
				ID: "chip_collector", Name: "Chip Collector", Rarity: "common", BasePrice: 5,
				Description: "+30 Chips if played hand contains a Pair.",
				Effects: []EffectDef{
					{Trigger: "independent", When: "hand.kind == 'pair'", Actions: []ActionDef{{Op: OpAddChips, Expr: "30"}}},
				},
			},
			{
				ID: "jolly_joker", Name: "Jolly Joker", Rarity: "common", BasePrice: 4,
				Description: "+4 Mult on every scored hand.",
				Effects: []EffectDef{
					{Trigger: "independent", Actions: []ActionDef{{Op: OpAddMult, Expr: "4"}}},
				},
			},
			{
				ID: "spade_collector", Name: "Spade Collector", Rarity: "common", BasePrice: 5,
				Description: "+10 Chips for every scored Spade.",
				Effects: []EffectDef{
					{Trigger: "scored", When: "card.suit == 'spades'", Actions: []ActionDef{{Op: OpAddChips, Expr: "10"}}},
				},
			},
			{
				ID: "rainy_day_fund", Name: "Rainy Day Fund", Rarity: "uncommon", BasePrice: 6,
				Description: "Earn $1 for every discarded hand.",
				Effects: []EffectDef{
					{Trigger: "discard_batch", Actions: []ActionDef{{Op: OpAddMoney, Expr: "1"}}},
				},
			},
			{
				ID: "estate_sale", Name: "Estate Sale", Rarity: "uncommon", BasePrice: 6,
				Description: "Earn $2 whenever you sell a joker.",
				Effects: []EffectDef{
					{Trigger: "any_sell", Actions: []ActionDef{{Op: OpAddMoney, Expr: "2"}}},
				},
			},
			{
				ID: "luchador", Name: "Luchador", Rarity: "rare", BasePrice: 8,
				Description: "Sell this joker to disable the Boss Blind's effect for the next blind.",
				Effects: []EffectDef{
					{Trigger: "sell", Actions: []ActionDef{{Op: OpDisableBoss}}},
				},
			},
		},
		Bosses: []BossDef{
			{
				ID: "skull_king", Name: "Skull King",
				Effects: []EffectDef{
					{Trigger: "blind_start", Actions: []ActionDef{{Op: OpAddMoney, Expr: "-(money / 2)"}}},
				},
			},
			{
				ID: "the_club", Name: "The Club",
				Effects: []EffectDef{
					{Trigger: "card_debuff", When: "card.suit == 'clubs'", Actions: []ActionDef{{Op: OpContributeBool, Field: "debuffed", Expr: "true"}}},
				},
			},
			{
				ID: "the_void", Name: "The Void", Final: true,
				Effects: []EffectDef{
					{Trigger: "blind_start", Actions: []ActionDef{{Op: OpAddMoney, Expr: "-(money / 2)"}}},
					{Trigger: "card_debuff", When: "card.suit == 'hearts'", Actions: []ActionDef{{Op: OpContributeBool, Field: "debuffed", Expr: "true"}}},
				},
			},
		},
		Tags: []TagDef{
			{
				ID: "investment_tag", Name: "Investment Tag",
				Effects: []EffectDef{
					{Trigger: "shop_enter", Actions: []ActionDef{{Op: OpAddMoney, Expr: "10"}}},
				},
			},
			{
				ID: "d6_tag", Name: "D6 Tag",
				Description: "On entering the shop, allows going $5 into debt until the next blind starts or a joker is gained or removed.",
				Effects: []EffectDef{
					{Trigger: "shop_enter", Actions: []ActionDef{{Op: OpSetRule, Field: "money_floor", Expr: "-5"}}},
				},
			},
			{
				ID: "handy_tag", Name: "Handy Tag",
				Effects: []EffectDef{
					{Trigger: "blind_start", Actions: []ActionDef{{Op: OpAddRule, Field: "draw_after_play", Expr: "1"}}},
				},
			},
		},
		Consumables: []ConsumableDef{
			{
				ID: "pluto", Name: "Pluto", Kind: "planet",
				Description: "Level up High Card.",
				Effects: []EffectDef{
					{Trigger: "use_consumable", Actions: []ActionDef{{Op: OpUpgradeHand, Field: "high_card"}}},
				},
			},
			{
				ID: "mercury", Name: "Mercury", Kind: "planet",
				Description: "Level up Pair.",
				Effects: []EffectDef{
					{Trigger: "use_consumable", Actions: []ActionDef{{Op: OpUpgradeHand, Field: "pair"}}},
				},
			},
			{
				ID: "the_hermit", Name: "The Hermit", Kind: "tarot",
				Description: "Gain $10.",
				Effects: []EffectDef{
					{Trigger: "use_consumable", Actions: []ActionDef{{Op: OpAddMoney, Expr: "10"}}},
				},
			},
		},
	}
}

func defaultHandBase() map[string]HandBaseRow {
	return map[string]HandBaseRow{
		"high_card":      {Chips: 5, Mult: 1, ChipsDelta: 10, MultDelta: 1},
		"pair":           {Chips: 10, Mult: 2, ChipsDelta: 15, MultDelta: 1},
		"two_pair":       {Chips: 20, Mult: 2, ChipsDelta: 20, MultDelta: 1},
		"three_of_a_kind": {Chips: 30, Mult: 3, ChipsDelta: 20, MultDelta: 2},
		"straight":       {Chips: 30, Mult: 4, ChipsDelta: 30, MultDelta: 3},
		"flush":          {Chips: 35, Mult: 4, ChipsDelta: 15, MultDelta: 2},
		"full_house":     {Chips: 40, Mult: 4, ChipsDelta: 25, MultDelta: 2},
		"four_of_a_kind": {Chips: 60, Mult: 7, ChipsDelta: 30, MultDelta: 3},
		"straight_flush": {Chips: 100, Mult: 8, ChipsDelta: 40, MultDelta: 4},
		"royal_flush":    {Chips: 100, Mult: 8, ChipsDelta: 40, MultDelta: 4},
		"five_of_a_kind": {Chips: 120, Mult: 12, ChipsDelta: 35, MultDelta: 3},
		"flush_house":    {Chips: 140, Mult: 14, ChipsDelta: 40, MultDelta: 4},
		"flush_five":     {Chips: 160, Mult: 16, ChipsDelta: 50, MultDelta: 5},
	}
}
