package device

import (
	"fmt"
	"strings"
)

// Metric selects the physical quantity read out of a device.
type Metric int

// Supported metrics.
const (
	Conductance Metric = iota
	Resistance
)

func (m Metric) String() string {
	switch m {
	case Conductance:
		return "conductance"
	case Resistance:
		return "resistance"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// ParseMetric converts a metric name into a Metric.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "conductance", "g":
		return Conductance, nil
	case "resistance", "r":
		return Resistance, nil
	default:
		return 0, fmt.Errorf("device: unknown metric %q", s)
	}
}
