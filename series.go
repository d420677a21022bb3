package nextfinance

import (
	"encoding/json"
	"math/rand/v2"
)

// DefaultSeriesLength is the number of samples of a generated chart.
const DefaultSeriesLength = 100

// Sample is one point of a time series.
type Sample struct {
	Index int     `json:"x"`
	Value float64 `json:"y"`
}

// Series is an ordered, immutable sequence of samples.
// Samples are indexed contiguously from 0.
type Series struct {
	samples []Sample
}

// NewSeries builds a Series from values, indexing them from 0.
func NewSeries(values ...float64) Series {
	samples := make([]Sample, len(values))
	for i, v := range values {
		samples[i] = Sample{Index: i, Value: v}
	}
	return Series{samples: samples}
}

func (s Series) Len() int        { return len(s.samples) }
func (s Series) IsEmpty() bool   { return len(s.samples) == 0 }
func (s Series) At(i int) Sample { return s.samples[i] }

// Samples returns a copy of the samples.
func (s Series) Samples() []Sample {
	out := make([]Sample, len(s.samples))
	copy(out, s.samples)
	return out
}

// Values returns a copy of the sample values in order.
func (s Series) Values() []float64 {
	out := make([]float64, len(s.samples))
	for i, sample := range s.samples {
		out[i] = sample.Value
	}
	return out
}

// Last returns the final sample value, or 0 for an empty series.
func (s Series) Last() float64 {
	if len(s.samples) == 0 {
		return 0
	}
	return s.samples[len(s.samples)-1].Value
}

func (s Series) MarshalJSON() ([]byte, error) {
	if s.samples == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.samples)
}

// RandomSource yields uniform draws in [0,1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a seeded source, or a randomly seeded one when seed is 0.
func NewRandomSource(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// GenerateSeries simulates a price path as a random walk starting at start.
//
// Each step is uniform in [-1, 1). The first step is applied before the first
// sample is emitted, so Sample 0 is start plus one step. Values are not
// clamped and may drift below zero. A non positive length yields an empty
// series.
func GenerateSeries(src RandomSource, start float64, length int) Series {
	if length <= 0 {
		return Series{}
	}
	samples := make([]Sample, length)
	current := start
	for i := range samples {
		current += (src.Float64() - 0.5) * 2
		samples[i] = Sample{Index: i, Value: current}
	}
	return Series{samples: samples}
}
