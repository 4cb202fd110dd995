package experiment

import (
	"math"
	"math/rand"
)

// A Source provides, at any time, the activities of the pre-synaptic
// population and the value the connection should produce.
type Source interface {
	Sample(t float64) (pre, truth []float64)
}

// Tuning-curve and signal defaults.
const (
	DefaultHighFreq      = 5.0
	DefaultNumComponents = 8
	MinFiringRate        = 200.0
	MaxFiringRate        = 400.0
	maxIntercept         = 0.9
)

// RateSource drives a population of rectified-linear neurons with a smooth
// random input and reports the target function of that input. Activities are
// firing rates divided by MaxFiringRate.
type RateSource struct {
	dims   int
	target Target
	signal []sineSum

	encoders [][]float64
	gains    []float64
	biases   []float64
}

type sineSum struct {
	freqs  []float64
	phases []float64
	amps   []float64
	norm   float64
}

func (s sineSum) at(t float64) float64 {
	v := 0.0
	for k := range s.freqs {
		v += s.amps[k] * math.Sin(2*math.Pi*s.freqs[k]*t+s.phases[k])
	}

	return v / s.norm
}

// Input returns the input signal at time t. The signal stays inside the unit
// ball.
func (s *RateSource) Input(t float64) []float64 {
	x := make([]float64, s.dims)
	scale := 1 / math.Sqrt(float64(s.dims))

	for d := range x {
		x[d] = s.signal[d].at(t) * scale
	}

	return x
}

// Activities returns the normalised firing rates for input x.
func (s *RateSource) Activities(x []float64) []float64 {
	a := make([]float64, len(s.encoders))

	for i, e := range s.encoders {
		dot := 0.0
		for d := range e {
			dot += e[d] * x[d]
		}

		rate := s.gains[i]*dot + s.biases[i]
		a[i] = math.Max(rate, 0) / MaxFiringRate
	}

	return a
}

// Sample returns the activities and the target at time t.
func (s *RateSource) Sample(t float64) (pre, truth []float64) {
	x := s.Input(t)

	return s.Activities(x), s.target(x)
}

// NumNeurons returns the size of the population.
func (s *RateSource) NumNeurons() int {
	return len(s.encoders)
}

// SourceBuilder builds RateSources.
type SourceBuilder struct {
	neurons       int
	dims          int
	target        Target
	highFreq      float64
	numComponents int
	seed          int64
}

// MakeSourceBuilder returns a SourceBuilder with default settings.
func MakeSourceBuilder() SourceBuilder {
	return SourceBuilder{
		neurons:       100,
		dims:          1,
		target:        func(x []float64) []float64 { return x },
		highFreq:      DefaultHighFreq,
		numComponents: DefaultNumComponents,
	}
}

// WithNeurons sets the population size.
func (b SourceBuilder) WithNeurons(n int) SourceBuilder {
	b.neurons = n
	return b
}

// WithDimensions sets the input dimensions.
func (b SourceBuilder) WithDimensions(d int) SourceBuilder {
	b.dims = d
	return b
}

// WithTarget sets the function reported as ground truth.
func (b SourceBuilder) WithTarget(t Target) SourceBuilder {
	b.target = t
	return b
}

// WithHighFreq sets the highest frequency of the input signal, in Hz.
func (b SourceBuilder) WithHighFreq(f float64) SourceBuilder {
	b.highFreq = f
	return b
}

// WithNumComponents sets how many sines make up each input dimension.
func (b SourceBuilder) WithNumComponents(n int) SourceBuilder {
	b.numComponents = n
	return b
}

// WithSeed sets the seed of the signal and the tuning curves.
func (b SourceBuilder) WithSeed(seed int64) SourceBuilder {
	b.seed = seed
	return b
}

// Build creates a RateSource.
func (b SourceBuilder) Build() *RateSource {
	if b.neurons <= 0 || b.dims <= 0 || b.numComponents <= 0 {
		panic("experiment: source needs neurons, dimensions and components")
	}

	rng := rand.New(rand.NewSource(b.seed))

	s := &RateSource{
		dims:   b.dims,
		target: b.target,
	}

	for d := 0; d < b.dims; d++ {
		s.signal = append(s.signal, b.randomSines(rng))
	}

	for i := 0; i < b.neurons; i++ {
		s.encoders = append(s.encoders, randomUnitVector(rng, b.dims))

		intercept := (2*rng.Float64() - 1) * maxIntercept
		maxRate := MinFiringRate + rng.Float64()*(MaxFiringRate-MinFiringRate)
		gain := maxRate / (1 - intercept)

		s.gains = append(s.gains, gain)
		s.biases = append(s.biases, -gain*intercept)
	}

	return s
}

func (b SourceBuilder) randomSines(rng *rand.Rand) sineSum {
	s := sineSum{}

	for k := 0; k < b.numComponents; k++ {
		amp := 0.5 + 0.5*rng.Float64()

		s.freqs = append(s.freqs, b.highFreq*(1-rng.Float64()))
		s.phases = append(s.phases, 2*math.Pi*rng.Float64())
		s.amps = append(s.amps, amp)
		s.norm += amp
	}

	return s
}

func randomUnitVector(rng *rand.Rand, dims int) []float64 {
	for {
		v := make([]float64, dims)
		norm := 0.0

		for d := range v {
			v[d] = rng.NormFloat64()
			norm += v[d] * v[d]
		}

		if norm == 0 {
			continue
		}

		norm = math.Sqrt(norm)
		for d := range v {
			v[d] /= norm
		}

		return v
	}
}
