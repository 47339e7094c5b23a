package content

// JokerDef is one joker's YAML-authored definition: identity, shop price
// range by rarity, and its effect list. Grounded on the teacher's
// JokerConfig (name/value/rarity/effect/effect_magnitude/hand_matching_rule
// /card_matching_rule/description), generalized from one fixed
// JokerEffect enum value per joker to an arbitrary list of triggered
// effects so a single joker can react at more than one hook point (e.g. a
// joker that both scores on Scored and pays out on RoundEnd).
type JokerDef struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Rarity      string      `yaml:"rarity"`
	BasePrice   int         `yaml:"base_price,omitempty"`
	Effects     []EffectDef `yaml:"effects"`
}

// ConsumableDef is one tarot/planet/spectral card's definition. Kind is
// "tarot", "planet" or "spectral" and selects which shop price in
// Config.Shop.Prices applies when BasePrice is unset.
type ConsumableDef struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Kind        string      `yaml:"kind"`
	BasePrice   int         `yaml:"base_price,omitempty"`
	Effects     []EffectDef `yaml:"effects"`
}

// TagDef is an ordered-list tag (spec §9's "persistent pending modifier
// applied at shop entry or blind start"). Effects typically trigger at
// ShopEnter or BlindStart; the tag is consumed once any of its effects'
// guards fire, per spec §4.8.
type TagDef struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Effects     []EffectDef `yaml:"effects"`
}

// BossDef is a boss blind's definition, generalizing the teacher's
// Boss{Name, Effect BossEffect, Final bool} (a closed two-value enum) to an
// arbitrary effect list so SPEC_FULL's supplemented boss rules
// (no_hearts, plus_hand, minus_hand) sit alongside the teacher's
// double_chips/halve_money without a code change per new boss.
type BossDef struct {
	ID      string      `yaml:"id"`
	Name    string      `yaml:"name"`
	Final   bool        `yaml:"final"`
	Effects []EffectDef `yaml:"effects"`
}

// Content is the full set of moddable definitions loaded for a run.
type Content struct {
	Jokers      []JokerDef      `yaml:"jokers"`
	Consumables []ConsumableDef `yaml:"consumables"`
	Tags        []TagDef        `yaml:"tags"`
	Bosses      []BossDef       `yaml:"bosses"`
}

// CompiledJoker/CompiledConsumable/CompiledTag/CompiledBoss mirror their Def
// counterparts with Effects parsed to ASTs.
type CompiledJoker struct {
	JokerDef
	Effects []CompiledEffect
}

type CompiledConsumable struct {
	ConsumableDef
	Effects []CompiledEffect
}

type CompiledTag struct {
	TagDef
	Effects []CompiledEffect
}

type CompiledBoss struct {
	BossDef
	Effects []CompiledEffect
}

// CompiledContent indexes every definition by id for O(1) lookup during
// play, plus the ordered slices for weighted-sampling shop generation.
type CompiledContent struct {
	Jokers      map[string]CompiledJoker
	Consumables map[string]CompiledConsumable
	Tags        map[string]CompiledTag
	Bosses      map[string]CompiledBoss

	JokerOrder      []string
	ConsumableOrder []string
	TagOrder        []string
	BossOrder       []string
}

// CompileContent parses every effect expression across c, failing on the
// first encountered error.
func CompileContent(c *Content) (*CompiledContent, error) {
	out := &CompiledContent{
		Jokers:      make(map[string]CompiledJoker, len(c.Jokers)),
		Consumables: make(map[string]CompiledConsumable, len(c.Consumables)),
		Tags:        make(map[string]CompiledTag, len(c.Tags)),
		Bosses:      make(map[string]CompiledBoss, len(c.Bosses)),
	}

	for _, j := range c.Jokers {
		effects, err := Compile(j.Effects)
		if err != nil {
			return nil, err
		}
		out.Jokers[j.ID] = CompiledJoker{JokerDef: j, Effects: effects}
		out.JokerOrder = append(out.JokerOrder, j.ID)
	}
	for _, cs := range c.Consumables {
		effects, err := Compile(cs.Effects)
		if err != nil {
			return nil, err
		}
		out.Consumables[cs.ID] = CompiledConsumable{ConsumableDef: cs, Effects: effects}
		out.ConsumableOrder = append(out.ConsumableOrder, cs.ID)
	}
	for _, tg := range c.Tags {
		effects, err := Compile(tg.Effects)
		if err != nil {
			return nil, err
		}
		out.Tags[tg.ID] = CompiledTag{TagDef: tg, Effects: effects}
		out.TagOrder = append(out.TagOrder, tg.ID)
	}
	for _, b := range c.Bosses {
		effects, err := Compile(b.Effects)
		if err != nil {
			return nil, err
		}
		out.Bosses[b.ID] = CompiledBoss{BossDef: b, Effects: effects}
		out.BossOrder = append(out.BossOrder, b.ID)
	}
	return out, nil
}
