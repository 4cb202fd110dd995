package characterize

import (
	"github.com/sarchlab/memristor/device"
	"github.com/sarchlab/memristor/sim/timing"
)

// Defaults of a sweep.
const (
	DefaultVoltage   = 1.0
	DefaultThreshold = 1000.0
	DefaultMaxPulses = 100000
)

// Builder can build sweepers.
type Builder struct {
	engine    timing.Engine
	freq      timing.Freq
	voltage   float64
	threshold float64
	maxPulses int
}

// MakeBuilder returns a Builder with default settings.
func MakeBuilder() Builder {
	return Builder{
		freq:      1 * timing.KHz,
		voltage:   DefaultVoltage,
		threshold: DefaultThreshold,
		maxPulses: DefaultMaxPulses,
	}
}

// WithEngine sets the engine that drives the sweeper.
func (b Builder) WithEngine(engine timing.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the pulse rate.
func (b Builder) WithFreq(freq timing.Freq) Builder {
	b.freq = freq
	return b
}

// WithVoltage sets the pulse voltage.
func (b Builder) WithVoltage(v float64) Builder {
	b.voltage = v
	return b
}

// WithThreshold sets how close to the final bound the sweep may go.
func (b Builder) WithThreshold(t float64) Builder {
	b.threshold = t
	return b
}

// WithMaxPulses caps the number of pulses. Zero means no cap.
func (b Builder) WithMaxPulses(n int) Builder {
	b.maxPulses = n
	return b
}

// Build creates a sweeper for a device.
func (b Builder) Build(name string, d *device.Memristor) *Sweeper {
	if b.engine == nil {
		panic("characterize: an engine is required")
	}

	if d == nil {
		panic("characterize: a device is required")
	}

	s := &Sweeper{
		device:    d,
		voltage:   b.voltage,
		threshold: b.threshold,
		maxPulses: b.maxPulses,
	}
	s.TickingComponent = timing.NewTickingComponent(name, b.engine, b.freq, s)

	return s
}
