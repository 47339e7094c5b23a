// Package content holds the data-driven definitions a run is configured and
// populated with: economy/shop tuning (Config) and joker/consumable/tag/boss
// definitions (Content), both YAML-encoded per spec §9 ("implementers may
// substitute JSON/YAML for the DSL as long as it reproduces the same
// lowered structure"). Nothing in this package is a process-wide static
// except Vouchers, which spec §5 explicitly carves out as the one
// permitted immutable global.
//
// Grounded on the teacher's internal/game/config.go (CSV-loaded
// AnteRequirement/HandScore) and jokers.go/bosses.go (YAML-loaded
// JokerConfig/Boss), consolidated onto a single YAML format and stripped of
// the teacher's package-level `gameConfig`/`jokerConfigs` singletons so a
// loaded Config/Content is an explicit value the engine owns, not a
// process global the tests have to reset between runs.
package content

// MinMax is an inclusive price range, e.g. common jokers roll within it.
type MinMax struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Prices mirrors spec §3's Config.shop.prices: fixed and ranged prices for
// every purchasable offer kind.
type Prices struct {
	JokerCommon    MinMax         `yaml:"joker_common"`
	JokerUncommon  MinMax         `yaml:"joker_uncommon"`
	JokerRare      MinMax         `yaml:"joker_rare"`
	JokerLegendary int            `yaml:"joker_legendary"`
	Tarot          int            `yaml:"tarot"`
	Planet         int            `yaml:"planet"`
	Spectral       int            `yaml:"spectral"`
	PlayingCard    int            `yaml:"playing_card"`
	Voucher        int            `yaml:"voucher"`
	RerollBase     int            `yaml:"reroll_base"`
	RerollStep     int            `yaml:"reroll_step"`
	PackPrices     map[string]int `yaml:"pack_prices"`
}

// Economy mirrors spec §3's Config.economy.
type Economy struct {
	InterestPer   float64 `yaml:"interest_per"`
	InterestStep  int     `yaml:"interest_step"`
	InterestCap   int     `yaml:"interest_cap"`
	RewardSmall   int     `yaml:"reward_small"`
	RewardBig     int     `yaml:"reward_big"`
	RewardBoss    int     `yaml:"reward_boss"`
	PerHandReward int     `yaml:"per_hand_reward"`
}

// Shop mirrors spec §3's Config.shop (minus prices, broken out above).
type Shop struct {
	CardSlots          int                `yaml:"card_slots"`
	BoosterSlots       int                `yaml:"booster_slots"`
	VoucherSlots       int                `yaml:"voucher_slots"`
	CardWeights        map[string]float64 `yaml:"card_weights"`
	PackWeights        map[string]float64 `yaml:"pack_weights"`
	JokerRarityWeights map[string]float64 `yaml:"joker_rarity_weights"`
	Prices             Prices             `yaml:"prices"`
}

// BlindRule is one blind's target score and hand/discard allowance.
type BlindRule struct {
	Target   int `yaml:"target"`
	Hands    int `yaml:"hands"`
	Discards int `yaml:"discards"`
}

// AnteRules is the three blinds (small/big/boss) for one ante.
type AnteRules struct {
	Small BlindRule `yaml:"small"`
	Big   BlindRule `yaml:"big"`
	Boss  BlindRule `yaml:"boss"`
}

// HandBaseRow is one hand kind's chips/mult at level 1 plus the per-level
// deltas a hand-level-up applies. Generalizes the teacher's five-entry
// LevelScores array (classify.Table uses the identical base+delta shape;
// Config carries its own copy since content authors configure it
// independently of the classifier's compiled-in defaults).
type HandBaseRow struct {
	Chips      int     `yaml:"chips"`
	Mult       float64 `yaml:"mult"`
	ChipsDelta int     `yaml:"chips_delta"`
	MultDelta  float64 `yaml:"mult_delta"`
}

// Config is the immutable per-run tuning set named in spec §3.
type Config struct {
	Economy   Economy             `yaml:"economy"`
	Shop      Shop                `yaml:"shop"`
	Blinds    map[int]AnteRules   `yaml:"blinds"`
	RankChips map[string]int      `yaml:"rank_chips"`
	HandBase  map[string]HandBaseRow `yaml:"hand_base"`
}

// BlindRuleFor returns the configured rule for (ante, kind), where kind is
// "small", "big" or "boss", and reports whether the ante exists at all
// (callers surface RunError.MissingAnteRule(ante) when it doesn't).
func (c *Config) BlindRuleFor(ante int, kind string) (BlindRule, bool) {
	rules, ok := c.Blinds[ante]
	if !ok {
		return BlindRule{}, false
	}
	switch kind {
	case "big":
		return rules.Big, true
	case "boss":
		return rules.Boss, true
	default:
		return rules.Small, true
	}
}
