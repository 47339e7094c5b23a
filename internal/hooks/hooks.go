// Package hooks implements the hook registry described in spec §4.6: a
// coarser dispatch layer than the flow kernel, used for handlers that react
// to something happening rather than compute a value. Handlers are grouped
// into priority classes (core rules run first, then tags, then jokers, then
// post-processing) and may veto the core behavior or halt dispatch outright.
//
// Grounded on the teacher's internal/game/game_events.go Event interface and
// EventHandler.HandleEvent dispatch shape, generalized from "one handler
// gets every event" to "many registered handlers per named point, ordered
// and short-circuitable".
package hooks

import "sort"

// Point names a hook point handlers register against.
type Point string

const (
	Played        Point = "played"
	ScoredPre     Point = "scored_pre"
	Scored        Point = "scored"
	Held          Point = "held"
	Independent   Point = "independent"
	Discard       Point = "discard"
	DiscardBatch  Point = "discard_batch"
	CardDestroyed Point = "card_destroyed"
	CardAdded     Point = "card_added"
	RoundEnd      Point = "round_end"
	HandEnd       Point = "hand_end"
	BlindStart    Point = "blind_start"
	BlindFailed   Point = "blind_failed"
	ShopEnter     Point = "shop_enter"
	ShopReroll    Point = "shop_reroll"
	ShopExit      Point = "shop_exit"
	PackOpened    Point = "pack_opened"
	PackSkipped   Point = "pack_skipped"
	UseConsumable Point = "use_consumable"
	Sell          Point = "sell"
	AnySell       Point = "any_sell"
	Acquire       Point = "acquire"
	OtherJokers   Point = "other_jokers"
	Passive       Point = "passive"
)

// PriorityClass buckets handlers so core engine behavior always runs ahead
// of mod-contributed behavior, regardless of individual Priority values.
type PriorityClass int

const (
	CoreRules PriorityClass = iota
	Tags
	Jokers
	Post
)

// Result is what a handler returns to the dispatcher.
type Result int

const (
	// Continue lets dispatch proceed to the next handler and lets the
	// core rule (if any) run normally afterward.
	Continue Result = iota
	// CancelCore asks the dispatcher's caller to skip its own default
	// core-rule behavior for this event, but dispatch continues to the
	// remaining handlers (another mod may still want to observe it).
	CancelCore
	// Stop halts dispatch immediately; no further handlers run.
	Stop
)

// Event is the payload passed to a handler. Concrete event types live next
// to whatever package constructs them (internal/engine); this package only
// needs to know which Point an event was raised for, for registry bookkeeping
// and diagnostics.
type Event interface {
	HookPoint() Point
}

// Handler reacts to an Event and reports how dispatch should proceed.
type Handler func(ev Event) (Result, error)

// Registration is one handler's place in a Point's dispatch order.
type Registration struct {
	SourceID string
	Class    PriorityClass
	Priority int
	Handler  Handler
}

// Registry holds every registered handler, keyed by Point.
type Registry struct {
	byPoint map[Point][]Registration
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byPoint: make(map[Point][]Registration)}
}

// Register adds reg's handler to point's dispatch list.
func (r *Registry) Register(point Point, reg Registration) {
	r.byPoint[point] = append(r.byPoint[point], reg)
}

// Unregister removes every registration for sourceID at point (used when a
// joker is sold or a consumable is consumed).
func (r *Registry) Unregister(point Point, sourceID string) {
	regs := r.byPoint[point]
	out := regs[:0]
	for _, reg := range regs {
		if reg.SourceID != sourceID {
			out = append(out, reg)
		}
	}
	r.byPoint[point] = out
}

// ordered returns point's registrations sorted Class asc, then Priority
// desc, then SourceID asc - core rules first, then within a class the
// highest-priority contributor, ties broken deterministically by id.
func (r *Registry) ordered(point Point) []Registration {
	regs := make([]Registration, len(r.byPoint[point]))
	copy(regs, r.byPoint[point])
	sort.SliceStable(regs, func(i, j int) bool {
		if regs[i].Class != regs[j].Class {
			return regs[i].Class < regs[j].Class
		}
		if regs[i].Priority != regs[j].Priority {
			return regs[i].Priority > regs[j].Priority
		}
		return regs[i].SourceID < regs[j].SourceID
	})
	return regs
}

// Dispatch runs every handler registered at ev.HookPoint() in order, and
// returns the strongest result seen (Stop > CancelCore > Continue) plus the
// first error encountered, if any. A handler returning Stop prevents any
// later handler in the order from running; CancelCore does not.
func (r *Registry) Dispatch(ev Event) (Result, error) {
	final := Continue
	for _, reg := range r.ordered(ev.HookPoint()) {
		res, err := reg.Handler(ev)
		if err != nil {
			return final, err
		}
		if res == CancelCore && final == Continue {
			final = CancelCore
		}
		if res == Stop {
			return Stop, nil
		}
	}
	return final, nil
}
