package content

import "github.com/kevinmchugh/anteforge/internal/expr"

// EffectDef is the YAML-authored form of what spec §9 calls a lowered
// JokerEffect: a hook trigger, an optional guard expression, and an ordered
// list of actions. Authors may omit When (defaults to always-true).
type EffectDef struct {
	Trigger string      `yaml:"trigger"`
	When    string      `yaml:"when,omitempty"`
	Actions []ActionDef `yaml:"actions"`
}

// ActionDef is one step of an effect: an operation name, the rule-variable
// or score field it targets (when applicable), and an expression producing
// its value.
type ActionDef struct {
	Op    string `yaml:"op"`
	Field string `yaml:"field,omitempty"`
	Expr  string `yaml:"expr,omitempty"`
}

// Known action ops. Engine-interpreted; content authors pick one per action.
const (
	OpAddChips      = "add_chips"
	OpAddMult       = "add_mult"
	OpMultChips     = "mult_chips"
	OpMultMult      = "mult_mult"
	OpAddMoney      = "add_money"
	OpSetRule       = "set_rule"
	OpAddRule       = "add_rule"
	OpClearRule     = "clear_rule"
	OpRetrigger      = "retrigger"
	OpDestroyCard    = "destroy_card"
	OpCopyJoker      = "copy_joker"
	OpDisableBoss    = "disable_boss"
	OpUpgradeHand    = "upgrade_hand" // Field names the hand type to level up (a Planet card's effect)
	OpContribute     = "contribute"      // feeds a flow-kernel Patch field (Field = field name)
	OpContributeBool = "contribute_bool" // same, for BoolOr-policy fields
	OpSetLocal       = "set_local"       // Field = key, stashed on the acting joker's own instance; read back by var(key)
	OpCustom         = "custom"
)

// CompiledEffect is an EffectDef with its expressions parsed, so load-time
// errors surface before any run ever reaches the effect.
type CompiledEffect struct {
	Trigger string
	When    expr.Node
	Actions []CompiledAction
}

// CompiledAction is an ActionDef with Expr parsed to an AST.
type CompiledAction struct {
	Op    string
	Field string
	Value expr.Node
}

// Compile parses every expression in defs, failing on the first parse
// error so a malformed mod is rejected at load time rather than mid-run.
func Compile(defs []EffectDef) ([]CompiledEffect, error) {
	out := make([]CompiledEffect, 0, len(defs))
	for _, d := range defs {
		whenSrc := d.When
		if whenSrc == "" {
			whenSrc = "true"
		}
		whenNode, err := expr.Parse(whenSrc)
		if err != nil {
			return nil, err
		}
		actions := make([]CompiledAction, 0, len(d.Actions))
		for _, a := range d.Actions {
			var valueNode expr.Node
			if a.Expr != "" {
				valueNode, err = expr.Parse(a.Expr)
				if err != nil {
					return nil, err
				}
			}
			actions = append(actions, CompiledAction{Op: a.Op, Field: a.Field, Value: valueNode})
		}
		out = append(out, CompiledEffect{Trigger: d.Trigger, When: whenNode, Actions: actions})
	}
	return out, nil
}
