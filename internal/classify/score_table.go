package classify

import "github.com/kevinmchugh/anteforge/internal/values"

// HandScore is one row of the base-score table: level 1 chips/mult plus the
// per-level delta applied for each level above 1 (planet-card upgrades).
// Grounded on the teacher's internal/game/config.go HandScore/GetHandScore,
// generalized from int mult to float64 mult (spec's Score.mult is f64) and
// from a flat per-level array to a base+delta formula so arbitrarily high
// levels don't need a pre-populated table row.
type HandScore struct {
	BaseChips  int
	BaseMult   float64
	ChipsDelta int
	MultDelta  float64
}

// Table maps a hand name (BuiltinHand.String(), or a custom hand's Name) to
// its HandScore row.
type Table struct {
	rows map[string]HandScore
}

// DefaultTable returns the standard hand-base table (spec §4.3 / teacher's
// setDefaultHandScores), expressed as base+delta instead of a five-level
// array.
func DefaultTable() *Table {
	t := &Table{rows: map[string]HandScore{
		values.HighCard.String():      {BaseChips: 5, BaseMult: 1, ChipsDelta: 10, MultDelta: 1},
		values.Pair.String():          {BaseChips: 10, BaseMult: 2, ChipsDelta: 15, MultDelta: 1},
		values.TwoPair.String():       {BaseChips: 20, BaseMult: 2, ChipsDelta: 20, MultDelta: 1},
		values.Trips.String():         {BaseChips: 30, BaseMult: 3, ChipsDelta: 20, MultDelta: 2},
		values.Straight.String():      {BaseChips: 30, BaseMult: 4, ChipsDelta: 30, MultDelta: 3},
		values.Flush.String():         {BaseChips: 35, BaseMult: 4, ChipsDelta: 15, MultDelta: 2},
		values.FullHouse.String():     {BaseChips: 40, BaseMult: 4, ChipsDelta: 25, MultDelta: 2},
		values.Quads.String():         {BaseChips: 60, BaseMult: 7, ChipsDelta: 30, MultDelta: 3},
		values.StraightFlush.String(): {BaseChips: 100, BaseMult: 8, ChipsDelta: 40, MultDelta: 4},
		values.RoyalFlush.String():    {BaseChips: 100, BaseMult: 8, ChipsDelta: 40, MultDelta: 4},
		values.FiveOfAKind.String():   {BaseChips: 120, BaseMult: 12, ChipsDelta: 35, MultDelta: 3},
		values.FlushHouse.String():    {BaseChips: 140, BaseMult: 14, ChipsDelta: 40, MultDelta: 4},
		values.FlushFive.String():     {BaseChips: 160, BaseMult: 16, ChipsDelta: 50, MultDelta: 5},
	}}
	return t
}

// Put installs or overwrites a row, used both for the default table and for
// mod-declared Custom hand types.
func (t *Table) Put(name string, row HandScore) {
	if t.rows == nil {
		t.rows = make(map[string]HandScore)
	}
	t.rows[name] = row
}

// BaseForLevel returns (chips, mult) for a hand name at the given level,
// matching spec's tables.hand_base_for_level(kind, level). Level is clamped
// to a minimum of 1.
func (t *Table) BaseForLevel(name string, level int) (int, float64) {
	if level < 1 {
		level = 1
	}
	row, ok := t.rows[name]
	if !ok {
		row = t.rows[values.HighCard.String()]
	}
	extra := level - 1
	return row.BaseChips + extra*row.ChipsDelta, row.BaseMult + float64(extra)*row.MultDelta
}
