package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigYAML(t *testing.T) {
	src := `
economy:
  interest_per: 1
  interest_step: 5
  interest_cap: 5
  reward_small: 4
  reward_big: 5
  reward_boss: 6
  per_hand_reward: 1
shop:
  card_slots: 2
  prices:
    reroll_base: 5
    reroll_step: 1
blinds:
  1:
    small: {target: 300, hands: 4, discards: 3}
    big: {target: 450, hands: 4, discards: 3}
    boss: {target: 600, hands: 4, discards: 3}
`
	cfg, err := LoadConfig(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Shop.Prices.RerollBase)
	rule, ok := cfg.BlindRuleFor(1, "boss")
	require.True(t, ok)
	assert.Equal(t, 600, rule.Target)

	_, ok = cfg.BlindRuleFor(99, "small")
	assert.False(t, ok)
}

func TestLoadAndCompileContent(t *testing.T) {
	src := `
jokers:
  - id: joker_wild_card
    name: Wild Card
    rarity: common
    base_price: 4
    effects:
      - trigger: scored
        when: "card.suit == 'spades'"
        actions:
          - op: add_chips
            expr: "10"
`
	c, err := LoadContent(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, c.Jokers, 1)

	compiled, err := CompileContent(c)
	require.NoError(t, err)
	joker, ok := compiled.Jokers["joker_wild_card"]
	require.True(t, ok)
	require.Len(t, joker.Effects, 1)
	assert.Equal(t, "scored", joker.Effects[0].Trigger)
}

func TestCompileContentRejectsBadExpression(t *testing.T) {
	c := &Content{
		Jokers: []JokerDef{{
			ID: "broken",
			Effects: []EffectDef{{
				Trigger: "scored",
				When:    "card.suit ==",
			}},
		}},
	}
	_, err := CompileContent(c)
	assert.Error(t, err)
}

func TestDefaultConfigHasAllEightAntes(t *testing.T) {
	cfg := DefaultConfig()
	for ante := 1; ante <= 8; ante++ {
		_, ok := cfg.BlindRuleFor(ante, "small")
		assert.True(t, ok, "ante %d should have a small-blind rule", ante)
	}
}

func TestVouchersCatalogIsPopulated(t *testing.T) {
	v, ok := Vouchers["clearance_sale"]
	require.True(t, ok)
	assert.Equal(t, SetShopDiscountPercent, v.Effect)
	assert.Equal(t, 0.25, v.Magnitude)
}

func TestDefaultContentCompiles(t *testing.T) {
	c := DefaultContent()
	require.NotEmpty(t, c.Jokers)
	require.NotEmpty(t, c.Bosses)
	require.NotEmpty(t, c.Tags)
	require.NotEmpty(t, c.Consumables)

	compiled, err := CompileContent(c)
	require.NoError(t, err)
	assert.Len(t, compiled.Jokers, len(c.Jokers))
	assert.Len(t, compiled.Bosses, len(c.Bosses))
	assert.Len(t, compiled.Tags, len(c.Tags))
	assert.Len(t, compiled.Consumables, len(c.Consumables))

	_, ok := compiled.Jokers["luchador"]
	assert.True(t, ok)
}
