// Package flow implements the flow kernel described in spec §4.5: the three
// composition primitives (Patch, Replace, Around) that let multiple jokers,
// consumables, vouchers and boss rules all contribute to the same decision
// point without stepping on each other, plus the named flow points those
// primitives operate on.
//
// There is no direct teacher analogue - the teacher's jokers mutate chips
// and mult inline inside one big switch in internal/game/jokers.go, so two
// jokers touching the same number just happen to commute. The flow kernel
// makes that commutativity an explicit, declared property of each field
// (Max/Min/BoolOr/Add/Mul) instead of an accident of implementation order.
package flow

import "sort"

// Point names a flow point a pipeline stage dispatches through.
type Point string

const (
	HandEval         Point = "hand_eval"
	CardDebuff       Point = "card_debuff"
	ScoreBase        Point = "score_base"
	ShopParams       Point = "shop_params"
	JokerEffect      Point = "joker_effect"
	ConsumableEffect Point = "consumable_effect"
	HandType         Point = "hand_type"
	Lifecycle        Point = "lifecycle"
)

// MergePolicy is the per-field composition rule a Patch uses to fold
// multiple contributions into one value.
type MergePolicy int

const (
	Max MergePolicy = iota
	Min
	BoolOr
	Add
	Mul
)

// Contribution is one source's partial values for a single Patch
// invocation at some flow point.
type Contribution struct {
	SourceID string
	Priority int
	Numeric  map[string]float64
	Bool     map[string]bool
}

// FieldPolicies declares, per field name, which MergePolicy governs it.
// A field with no declared policy is left untouched by ApplyPatch (no
// contribution can introduce a field the caller didn't ask for).
type FieldPolicies map[string]MergePolicy

// sortedContributions returns contributions ordered priority-desc then
// SourceID-asc, matching Replace's winner-takes-all tie-break so Patch and
// Replace stay consistent about "who goes first" even though Patch's
// policies (Max/Min/Add/Mul/BoolOr) are all commutative - the fixed order
// only matters for floating-point Add/Mul reproducibility across runs.
func sortedContributions(cs []Contribution) []Contribution {
	out := make([]Contribution, len(cs))
	copy(out, cs)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].SourceID < out[j].SourceID
	})
	return out
}

// ApplyPatch folds contributions into base/baseBool per policies, returning
// new maps (base and baseBool are never mutated).
func ApplyPatch(
	base map[string]float64,
	baseBool map[string]bool,
	policies FieldPolicies,
	contributions []Contribution,
) (map[string]float64, map[string]bool) {
	numOut := make(map[string]float64, len(base))
	for k, v := range base {
		numOut[k] = v
	}
	boolOut := make(map[string]bool, len(baseBool))
	for k, v := range baseBool {
		boolOut[k] = v
	}

	for _, c := range sortedContributions(contributions) {
		for field, v := range c.Numeric {
			policy, ok := policies[field]
			if !ok {
				continue
			}
			numOut[field] = mergeNumeric(policy, numOut[field], v)
		}
		for field, v := range c.Bool {
			policy, ok := policies[field]
			if !ok || policy != BoolOr {
				continue
			}
			boolOut[field] = boolOut[field] || v
		}
	}
	return numOut, boolOut
}

func mergeNumeric(policy MergePolicy, acc, v float64) float64 {
	switch policy {
	case Max:
		if v > acc {
			return v
		}
		return acc
	case Min:
		if v < acc {
			return v
		}
		return acc
	case Add:
		return acc + v
	case Mul:
		return acc * v
	default:
		return acc
	}
}

// ReplaceCandidate is one source's proposed full replacement value for a
// Replace flow point.
type ReplaceCandidate[T any] struct {
	SourceID string
	Priority int
	Value    T
}

// Replace picks a single winner from candidates: highest Priority wins,
// ties broken by SourceID ascending. Reports false if candidates is empty.
func Replace[T any](candidates []ReplaceCandidate[T]) (T, bool) {
	var zero T
	if len(candidates) == 0 {
		return zero, false
	}
	sorted := make([]ReplaceCandidate[T], len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		return sorted[i].SourceID < sorted[j].SourceID
	})
	return sorted[0].Value, true
}

// AroundCandidate wraps a middleware around the base call for an Around
// flow point. Wrap receives a `next` thunk invoking either the base call or
// the next-lower-priority middleware, and must call it to continue the
// chain (or skip it to short-circuit).
type AroundCandidate[T any] struct {
	SourceID string
	Priority int
	Wrap     func(next func() T) T
}

// ComposeAround builds the full middleware chain around base: the
// highest-priority candidate is outermost (runs first, decides whether to
// call next at all), ties broken by SourceID ascending.
func ComposeAround[T any](base func() T, candidates []AroundCandidate[T]) func() T {
	if len(candidates) == 0 {
		return base
	}
	sorted := make([]AroundCandidate[T], len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		return sorted[i].SourceID < sorted[j].SourceID
	})

	chain := base
	for i := len(sorted) - 1; i >= 0; i-- {
		mw := sorted[i].Wrap
		next := chain
		chain = func() T { return mw(next) }
	}
	return chain
}
