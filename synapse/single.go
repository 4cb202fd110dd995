package synapse

import (
	"fmt"

	"github.com/sarchlab/memristor/device"
)

// Single realises a weight with one bidirectional device. The polarity of the
// pulse carries the sign of the adjustment.
type Single struct {
	Device device.Device
}

// NewSingle wraps a device.
func NewSingle(d device.Device) *Single {
	if d == nil {
		panic("synapse: a single synapse needs a device")
	}

	return &Single{Device: d}
}

// Pulse applies +v for a positive oriented adjustment and -v for a negative
// one.
func (s *Single) Pulse(adj, v float64, method Method) error {
	sign := method.orient(adj)
	if sign == 0 {
		return nil
	}

	_, err := s.Device.Pulse(float64(sign) * v)
	if err != nil {
		return fmt.Errorf("pulsing %s: %w", s.Device.Name(), err)
	}

	return nil
}

// State returns the device state.
func (s *Single) State(r Readout) float64 {
	return r.read(s.Device)
}

// SaveState checkpoints the device.
func (s *Single) SaveState() {
	s.Device.SaveState()
}

// Devices returns the device.
func (s *Single) Devices() []device.Device {
	return []device.Device{s.Device}
}
