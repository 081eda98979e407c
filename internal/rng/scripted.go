package rng

// Scripted replays a fixed sequence of rolls.
// Once the script is exhausted every call returns Fallback.
//
// Used by tests to force specific branches (crit / no crit, resisted CC, ...).
type Scripted struct {
	rolls    []float64
	pos      int
	Fallback float64
}

// NewScripted creates a Scripted source returning rolls in order.
// Fallback defaults to 0.99 which fails every probability check below 99%.
func NewScripted(rolls ...float64) *Scripted {
	return &Scripted{rolls: rolls, Fallback: 0.99}
}

// Float64 implements Source.
func (s *Scripted) Float64() float64 {
	if s.pos >= len(s.rolls) {
		s.pos++
		return s.Fallback
	}
	v := s.rolls[s.pos]
	s.pos++
	return v
}

// Consumed returns how many rolls have been drawn so far.
func (s *Scripted) Consumed() int {
	return s.pos
}

// Constant returns the same roll forever.
type Constant float64

// Float64 implements Source.
func (c Constant) Float64() float64 {
	return float64(c)
}
