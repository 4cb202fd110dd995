package device

import (
	"math/rand"
)

// Builder can build memristors.
type Builder struct {
	params  Params
	law     Law
	rng     *rand.Rand
	initLow float64
	initial float64
	hasInit bool
}

// MakeBuilder returns a Builder with the Anouk defaults.
func MakeBuilder() Builder {
	return Builder{
		params:  DefaultParams(),
		law:     Anouk{},
		initLow: DefaultInitLow,
	}
}

// WithParams sets all the physical parameters.
func (b Builder) WithParams(p Params) Builder {
	b.params = p
	return b
}

// WithRMin sets the lower resistance bound.
func (b Builder) WithRMin(r float64) Builder {
	b.params.RMin = r
	return b
}

// WithRMax sets the upper resistance bound.
func (b Builder) WithRMax(r float64) Builder {
	b.params.RMax = r
	return b
}

// WithA sets the constant term of the switching exponent.
func (b Builder) WithA(a float64) Builder {
	b.params.A = a
	return b
}

// WithB sets the voltage coefficient of the switching exponent.
func (b Builder) WithB(v float64) Builder {
	b.params.B = v
	return b
}

// WithLaw sets the switching law. A nil law builds a device that reports
// ErrNotImplemented on every pulse.
func (b Builder) WithLaw(law Law) Builder {
	b.law = law
	return b
}

// WithBidirectional selects the bidirectional Anouk law.
func (b Builder) WithBidirectional() Builder {
	b.law = AnoukBidirectional{}
	return b
}

// WithRand sets the random source used to draw the initial resistance.
func (b Builder) WithRand(rng *rand.Rand) Builder {
	b.rng = rng
	return b
}

// WithSeed creates a new random source from the seed.
func (b Builder) WithSeed(seed int64) Builder {
	b.rng = rand.New(rand.NewSource(seed))
	return b
}

// WithInitLow sets the lower end of the uniform initial resistance draw.
func (b Builder) WithInitLow(r float64) Builder {
	b.initLow = r
	return b
}

// WithInitialResistance skips the random draw and starts the device at r.
func (b Builder) WithInitialResistance(r float64) Builder {
	b.initial = r
	b.hasInit = true

	return b
}

// Build creates a new Memristor. It panics if the parameters are invalid or
// if neither a random source nor an initial resistance was given.
func (b Builder) Build(name string) *Memristor {
	err := b.params.Validate()
	if err != nil {
		panic(err)
	}

	m := &Memristor{
		name:   name,
		params: b.params,
		law:    b.law,
	}

	switch {
	case b.hasInit:
		m.rCurr = b.params.Clamp(b.initial)
	case b.rng != nil:
		m.rCurr = b.drawInitial()
	default:
		panic("device: a random source or an initial resistance is required")
	}

	return m
}

func (b Builder) drawInitial() float64 {
	low := b.initLow
	if low < b.params.RMin || low >= b.params.RMax {
		low = b.params.RMin
	}

	return low + b.rng.Float64()*(b.params.RMax-low)
}

// NewAnouk creates a unidirectional device with default parameters.
func NewAnouk(name string, rng *rand.Rand) *Memristor {
	return MakeBuilder().WithRand(rng).Build(name)
}

// NewAnoukBidirectional creates a bidirectional device with default
// parameters.
func NewAnoukBidirectional(name string, rng *rand.Rand) *Memristor {
	return MakeBuilder().WithBidirectional().WithRand(rng).Build(name)
}
