package device

import "math"

// A Law describes how a memristor switches. Resistance maps a pulse count to a
// resistance and EquivalentPulses is its inverse.
type Law interface {
	// Exponent returns the power-law exponent used for a pulse of voltage v.
	Exponent(p Params, v float64) float64

	// Resistance returns the resistance reached after n pulses of voltage v.
	Resistance(p Params, n, v float64) float64

	// EquivalentPulses returns the number of pulses of voltage v that bring a
	// pristine device to resistance r.
	EquivalentPulses(p Params, r, v float64) float64
}

// PulseNumber returns the index of the next pulse for a device currently at
// resistance r.
func PulseNumber(law Law, p Params, r, v float64) float64 {
	return law.EquivalentPulses(p, r, v) + 1
}

// Anouk is the unidirectional power-law fit. The resistance follows
//
//	R(n, V) = RMin + RMax * n^(A + B*V)
//
// regardless of the pulse polarity.
type Anouk struct{}

// Exponent returns A + B*V.
func (Anouk) Exponent(p Params, v float64) float64 {
	return p.A + p.B*v
}

// Resistance returns RMin + RMax * n^(A+B*V).
func (l Anouk) Resistance(p Params, n, v float64) float64 {
	return p.RMin + p.RMax*math.Pow(n, l.Exponent(p, v))
}

// EquivalentPulses returns ((R - RMin)/RMax)^(1/(A+B*V)).
func (l Anouk) EquivalentPulses(p Params, r, v float64) float64 {
	return math.Pow((r-p.RMin)/p.RMax, 1/l.Exponent(p, v))
}

// AnoukBidirectional follows the Anouk fit for non-negative voltages. For
// negative voltages it uses the mirrored curve
//
//	R(n, V) = (RMax+RMin) - (RMax+RMin) * n^(A + B*(-V/4))
//
// so that the two polarities push the resistance in opposite directions.
type AnoukBidirectional struct{}

// Exponent returns A + B*V for V >= 0 and A + B*(-V/4) otherwise.
func (AnoukBidirectional) Exponent(p Params, v float64) float64 {
	if v >= 0 {
		return p.A + p.B*v
	}

	return p.A + p.B*(-v/4)
}

// Resistance evaluates the branch selected by the sign of v.
func (l AnoukBidirectional) Resistance(p Params, n, v float64) float64 {
	c := l.Exponent(p, v)
	if v >= 0 {
		return p.RMin + p.RMax*math.Pow(n, c)
	}

	span := p.RMax + p.RMin

	return span - span*math.Pow(n, c)
}

// EquivalentPulses inverts Resistance on the branch selected by the sign of
// v.
func (l AnoukBidirectional) EquivalentPulses(p Params, r, v float64) float64 {
	c := l.Exponent(p, v)
	if v >= 0 {
		return math.Pow((r-p.RMin)/p.RMax, 1/c)
	}

	span := p.RMax + p.RMin

	return math.Pow((span-r)/span, 1/c)
}
