package engine

import "github.com/kevinmchugh/anteforge/internal/hooks"

// Trigger name constants content authors write into EffectDef.Trigger,
// kept as plain strings (not hooks.Point) so content.CompiledEffect stays
// decoupled from this package - these are just this package's canonical
// spelling of each hooks.Point value.
const (
	triggerPlayed        = string(hooks.Played)
	triggerScoredPre     = string(hooks.ScoredPre)
	triggerScored        = string(hooks.Scored)
	triggerHeld          = string(hooks.Held)
	triggerIndependent   = string(hooks.Independent)
	triggerDiscard       = string(hooks.Discard)
	triggerDiscardBatch  = string(hooks.DiscardBatch)
	triggerCardDestroyed = string(hooks.CardDestroyed)
	triggerCardAdded     = string(hooks.CardAdded)
	triggerRoundEnd      = string(hooks.RoundEnd)
	triggerHandEnd       = string(hooks.HandEnd)
	triggerBlindStart    = string(hooks.BlindStart)
	triggerBlindFailed   = string(hooks.BlindFailed)
	triggerShopEnter     = string(hooks.ShopEnter)
	triggerShopReroll    = string(hooks.ShopReroll)
	triggerShopExit      = string(hooks.ShopExit)
	triggerPackOpened    = string(hooks.PackOpened)
	triggerPackSkipped   = string(hooks.PackSkipped)
	triggerUseConsumable = string(hooks.UseConsumable)
	triggerSell          = string(hooks.Sell)
	triggerAnySell       = string(hooks.AnySell)
	triggerAcquire       = string(hooks.Acquire)
	triggerOtherJokers   = string(hooks.OtherJokers)
	triggerPassive       = string(hooks.Passive)
)
