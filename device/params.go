package device

import (
	"fmt"
	"math"
)

// Default parameters of the Anouk fit.
const (
	DefaultRMin = 100.0
	DefaultRMax = 2.5e8
	DefaultA    = -0.128
	DefaultB    = -0.522

	// DefaultInitLow is the lower end of the initial resistance draw.
	DefaultInitLow = 1e8

	// DefaultGain multiplies every state readout.
	DefaultGain = 1e4

	// DefaultVoltage is the pulse amplitude used when none is given.
	DefaultVoltage = 1e-1
)

// Epsilon is added to every state readout so that it never becomes exactly
// zero.
var Epsilon = math.Nextafter(1, 2) - 1

// Params are the physical parameters of a memristor.
type Params struct {
	RMin float64 `json:"r_min"`
	RMax float64 `json:"r_max"`
	A    float64 `json:"a"`
	B    float64 `json:"b"`
}

// DefaultParams returns the parameters of the Anouk fit.
func DefaultParams() Params {
	return Params{
		RMin: DefaultRMin,
		RMax: DefaultRMax,
		A:    DefaultA,
		B:    DefaultB,
	}
}

// Validate checks that the resistance bounds describe a real device.
func (p Params) Validate() error {
	if !(p.RMin > 0) {
		return fmt.Errorf("device: r_min must be positive, got %g", p.RMin)
	}

	if !(p.RMax > p.RMin) {
		return fmt.Errorf("device: r_max (%g) must exceed r_min (%g)",
			p.RMax, p.RMin)
	}

	if math.IsInf(p.RMax, 0) {
		return fmt.Errorf("device: r_max must be finite")
	}

	return nil
}

// Clamp limits r to [RMin, RMax].
func (p Params) Clamp(r float64) float64 {
	return math.Min(math.Max(r, p.RMin), p.RMax)
}
