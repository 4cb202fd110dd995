package device

import (
	"fmt"
	"math"

	"github.com/sarchlab/memristor/sim/hooking"
)

// HookPosBeforePulse is triggered before a device applies a pulse.
var HookPosBeforePulse = &hooking.HookPos{Name: "BeforePulse"}

// HookPosAfterPulse is triggered after a device has applied a pulse.
var HookPosAfterPulse = &hooking.HookPos{Name: "AfterPulse"}

// HookPosSaveState is triggered when a device checkpoints its resistance.
var HookPosSaveState = &hooking.HookPos{Name: "SaveState"}

// PulseDetail is attached to the pulse hooks.
type PulseDetail struct {
	Voltage     float64
	PulseNumber float64
	Before      float64
	After       float64
}

// Device is a single switching cell as seen by the synapse layer.
type Device interface {
	hooking.Hookable

	Name() string
	Params() Params

	// Pulse applies one pulse of voltage v and returns the new resistance.
	Pulse(v float64) (float64, error)

	// State reads the device out. See Memristor.State.
	State(metric Metric, scaled bool, gain float64) float64

	// SaveState appends the current resistance to the history.
	SaveState()

	// History returns the saved resistances in the order they were saved.
	History() []float64

	// Resistance returns the current resistance.
	Resistance() float64
}

// Memristor is the state of one memristive cell.
type Memristor struct {
	hooking.HookableBase

	name    string
	params  Params
	law     Law
	rCurr   float64
	history []float64
}

// Name returns the name of the device.
func (m *Memristor) Name() string {
	return m.name
}

// Params returns the physical parameters of the device.
func (m *Memristor) Params() Params {
	return m.params
}

// Law returns the switching law of the device, nil if it has none.
func (m *Memristor) Law() Law {
	return m.law
}

// Resistance returns the current resistance.
func (m *Memristor) Resistance() float64 {
	return m.rCurr
}

// SetResistance forces the current resistance, clamped to the device bounds.
func (m *Memristor) SetResistance(r float64) {
	m.rCurr = m.params.Clamp(r)
}

// ComputeResistance returns the resistance reached after n pulses of voltage
// v.
func (m *Memristor) ComputeResistance(n, v float64) (float64, error) {
	if m.law == nil {
		return 0, ErrNotImplemented
	}

	return m.law.Resistance(m.params, n, v), nil
}

// ComputePulseNumber returns the index of the pulse that follows resistance r
// under voltage v.
func (m *Memristor) ComputePulseNumber(r, v float64) (float64, error) {
	if m.law == nil {
		return 0, ErrNotImplemented
	}

	if m.law.Exponent(m.params, v) == 0 {
		return 0, fmt.Errorf("%w at %g V", ErrZeroExponent, v)
	}

	return PulseNumber(m.law, m.params, r, v), nil
}

// Pulse applies one pulse of voltage v. The resistance is left unchanged if
// an error is returned. Results are clamped to [RMin, RMax].
func (m *Memristor) Pulse(v float64) (float64, error) {
	n, err := m.ComputePulseNumber(m.rCurr, v)
	if err != nil {
		return m.rCurr, err
	}

	r, err := m.ComputeResistance(n, v)
	if err != nil {
		return m.rCurr, err
	}

	if math.IsNaN(n) || math.IsNaN(r) {
		return m.rCurr, fmt.Errorf("%w: pulse %g V from %g ohm",
			ErrDomain, v, m.rCurr)
	}

	detail := PulseDetail{
		Voltage:     v,
		PulseNumber: n,
		Before:      m.rCurr,
	}

	ctx := hooking.HookCtx{
		Domain: m,
		Pos:    HookPosBeforePulse,
		Item:   m,
		Detail: detail,
	}
	m.InvokeHook(ctx)

	m.rCurr = m.params.Clamp(r)

	detail.After = m.rCurr
	ctx.Pos = HookPosAfterPulse
	ctx.Detail = detail
	m.InvokeHook(ctx)

	return m.rCurr, nil
}

// State reads the device out as a resistance or a conductance. When scaled,
// the value is normalised to [0, 1] with (x - xMin)/(xMax - xMin). Epsilon is
// added before the result is multiplied by gain.
func (m *Memristor) State(metric Metric, scaled bool, gain float64) float64 {
	var value float64

	switch metric {
	case Resistance:
		value = m.rCurr
		if scaled {
			value = (m.rCurr - m.params.RMin) / (m.params.RMax - m.params.RMin)
		}
	case Conductance:
		g := 1.0 / m.rCurr
		value = g
		if scaled {
			gMin := 1.0 / m.params.RMax
			gMax := 1.0 / m.params.RMin
			value = (g - gMin) / (gMax - gMin)
		}
	default:
		panic(fmt.Sprintf("device: unknown metric %d", int(metric)))
	}

	return gain * (value + Epsilon)
}

// SaveState appends the current resistance to the history.
func (m *Memristor) SaveState() {
	m.history = append(m.history, m.rCurr)

	m.InvokeHook(hooking.HookCtx{
		Domain: m,
		Pos:    HookPosSaveState,
		Item:   m,
		Detail: m.rCurr,
	})
}

// History returns a copy of the saved resistances.
func (m *Memristor) History() []float64 {
	if m.history == nil {
		return nil
	}

	history := make([]float64, len(m.history))
	copy(history, m.history)

	return history
}
