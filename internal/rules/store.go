// Package rules implements the rule-variable store: a string->float64
// mapping rebuilt lazily from jokers' Passive effects, exposing flag and
// value accessors to the classifier, pipeline and expression kernel.
package rules

import "strings"

// Store holds the current rule-variable values plus a dirty flag so the
// pipeline only pays the rebuild cost when a joker's state actually changed
// since the last read.
type Store struct {
	values map[string]float64
	dirty  bool
}

// NewStore returns an empty, already-dirty store (forces a rebuild on first
// read).
func NewStore() *Store {
	return &Store{values: make(map[string]float64), dirty: true}
}

// MarkDirty flags the store for rebuild on next access. Called whenever a
// joker is added, removed, reordered, or a Passive-effect-relevant local var
// changes.
func (s *Store) MarkDirty() { s.dirty = true }

// Dirty reports whether a rebuild is pending.
func (s *Store) Dirty() bool { return s.dirty }

// Rebuild replaces the store's contents wholesale and clears the dirty
// flag. Callers (the pipeline) compute the new value set by iterating
// jokers in slot order and applying only Passive-triggered, rule-mutating
// actions (set_rule/add_rule/clear_rule) - the iteration itself lives in
// internal/engine since it needs joker/effect evaluation the store doesn't
// know about; this type is pure storage plus accessors.
func (s *Store) Rebuild(values map[string]float64) {
	s.values = values
	s.dirty = false
}

// Get returns the raw float value for key, or 0 if unset.
func (s *Store) Get(key string) float64 {
	return s.values[strings.ToLower(key)]
}

// Flag reports whether key "flags truthy": its value rounds to nonzero.
func (s *Store) Flag(key string) bool {
	v := s.Get(key)
	return v >= 0.5 || v <= -0.5
}

// Snapshot returns a defensive copy of the current values, used by Context
// implementations that need a read-only view.
func (s *Store) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Well-known rule-variable keys (spec §4.4).
const (
	KeySmearedSuits           = "smeared_suits"
	KeyFourFingers            = "four_fingers"
	KeyShortcut               = "shortcut"
	KeyMaxGap                 = "max_gap"
	KeySplash                 = "splash"
	KeyPareidolia             = "pareidolia"
	KeySingleHandType         = "single_hand_type"
	KeyNoRepeatHand           = "no_repeat_hand"
	KeyRequiredPlayCount      = "required_play_count"
	KeyDrawAfterPlay          = "draw_after_play"
	KeyDrawAfterDiscard       = "draw_after_discard"
	KeyDiscardHeldAfterHand   = "discard_held_after_hand"
	KeyBaseChipsMult          = "base_chips_mult"
	KeyBaseMultMult           = "base_mult_mult"
	KeyHandLevelDelta         = "hand_level_delta"
	KeyMoneyFloor             = "money_floor"
	KeyDrawFaceDownFirstHand  = "draw_face_down_first_hand"
	KeyDrawFaceDownAfterHand  = "draw_face_down_after_hand"
	KeyDrawFaceDownRoll       = "draw_face_down_roll"
	KeyDrawFaceDownFaceCard   = "draw_face_down_face_card"
)
