package synapse

import (
	"fmt"
	"math/rand"

	"github.com/sarchlab/memristor/device"
)

// A Pair realises a signed weight as the difference of two devices. The pair
// owns both devices.
type Pair struct {
	Positive device.Device
	Negative device.Device
}

// NewPair creates a pair from two devices.
func NewPair(positive, negative device.Device) *Pair {
	if positive == nil || negative == nil {
		panic("synapse: a pair needs two devices")
	}

	if positive == negative {
		panic("synapse: a pair cannot share a device")
	}

	return &Pair{
		Positive: positive,
		Negative: negative,
	}
}

// Pulse routes exactly one pulse of voltage v to one of the devices. With
// Same, a positive adjustment pulses the positive device and a negative one
// pulses the negative device. Inverse swaps the two.
func (p *Pair) Pulse(adj, v float64, method Method) error {
	var target device.Device

	switch method.orient(adj) {
	case 1:
		target = p.Positive
	case -1:
		target = p.Negative
	default:
		return nil
	}

	_, err := target.Pulse(v)
	if err != nil {
		return fmt.Errorf("pulsing %s: %w", target.Name(), err)
	}

	return nil
}

// PulseAndRead pulses the pair and returns its new state.
func (p *Pair) PulseAndRead(
	adj, v float64,
	method Method,
	r Readout,
) (float64, error) {
	err := p.Pulse(adj, v, method)
	if err != nil {
		return p.State(r), err
	}

	return p.State(r), nil
}

// State returns state(positive) - state(negative).
func (p *Pair) State(r Readout) float64 {
	return r.read(p.Positive) - r.read(p.Negative)
}

// SaveState checkpoints both devices.
func (p *Pair) SaveState() {
	p.Positive.SaveState()
	p.Negative.SaveState()
}

// Devices returns the positive and the negative device, in that order.
func (p *Pair) Devices() []device.Device {
	return []device.Device{p.Positive, p.Negative}
}

// NewAnoukPair creates a pair of unidirectional Anouk devices with default
// parameters, drawing both initial resistances from rng.
func NewAnoukPair(name string, rng *rand.Rand) *Pair {
	return NewPair(
		device.NewAnouk(name+".Positive", rng),
		device.NewAnouk(name+".Negative", rng),
	)
}
