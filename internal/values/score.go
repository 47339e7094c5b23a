package values

import "math"

// Score is the running {chips, mult} aggregate threaded through a single
// hand's scoring pass. Mult is a float so editions and joker effects that
// add fractional mult (Holographic's +10, x-mult jokers) compose exactly;
// chips stay integral per spec's AddChips/MultiplyChips contract.
type Score struct {
	Chips int
	Mult  float64
}

// Total floors chips*mult per spec's total.total = floor(chips * mult).
func (s Score) Total() int {
	return int(math.Floor(float64(s.Chips) * s.Mult))
}

// AddChips returns a copy of s with delta chips added.
func (s Score) AddChips(delta int) Score {
	s.Chips += delta
	return s
}

// AddMult returns a copy of s with delta mult added.
func (s Score) AddMult(delta float64) Score {
	s.Mult += delta
	return s
}

// MultiplyMult returns a copy of s with mult scaled by factor.
func (s Score) MultiplyMult(factor float64) Score {
	s.Mult *= factor
	return s
}

// MultiplyChips returns a copy of s with chips scaled by factor and floored,
// per spec's MultiplyChips(f64) -> floor(chips * factor).
func (s Score) MultiplyChips(factor float64) Score {
	s.Chips = int(math.Floor(float64(s.Chips) * factor))
	return s
}
