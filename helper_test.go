package nextfinance

import "math"

// fixedSource replays a fixed sequence of draws, then repeats the last one.
type fixedSource struct {
	draws []float64
	i     int
}

func (f *fixedSource) Float64() float64 {
	v := f.draws[min(f.i, len(f.draws)-1)]
	f.i++
	return v
}

func newFixedSource(draws ...float64) *fixedSource { return &fixedSource{draws: draws} }

// near compares floats with some precision.
func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
