// Package synapse turns memristors into signed synaptic weights.
package synapse

import (
	"fmt"
	"strings"

	"github.com/sarchlab/memristor/device"
)

// Method decides which way a signed adjustment is routed to the devices.
type Method int

// Routing methods.
const (
	// Same pulses the positive side for positive adjustments.
	Same Method = iota
	// Inverse swaps the polarity of Same.
	Inverse
)

func (m Method) String() string {
	switch m {
	case Same:
		return "same"
	case Inverse:
		return "inverse"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod converts a method name into a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "same":
		return Same, nil
	case "inverse":
		return Inverse, nil
	default:
		return 0, fmt.Errorf("synapse: unknown method %q", s)
	}
}

// orient returns the sign of adj after the method is applied.
func (m Method) orient(adj float64) int {
	sign := 0

	switch {
	case adj > 0:
		sign = 1
	case adj < 0:
		sign = -1
	}

	if m == Inverse {
		sign = -sign
	}

	return sign
}

// Readout selects how a synapse is read.
type Readout struct {
	Metric device.Metric
	Scaled bool
	Gain   float64
}

// DefaultReadout reads the scaled conductance with the default gain.
func DefaultReadout() Readout {
	return Readout{
		Metric: device.Conductance,
		Scaled: true,
		Gain:   device.DefaultGain,
	}
}

func (r Readout) read(d device.Device) float64 {
	return d.State(r.Metric, r.Scaled, r.Gain)
}

// A Synapse is a weight realised by one or more devices.
type Synapse interface {
	// Pulse applies one pulse of amplitude v in the direction of adj. A zero
	// adjustment does nothing.
	Pulse(adj, v float64, method Method) error

	// State reads the weight out.
	State(r Readout) float64

	// SaveState checkpoints every device of the synapse.
	SaveState()

	// Devices returns the devices of the synapse.
	Devices() []device.Device
}
