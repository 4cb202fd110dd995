package experiment

import "math"

// InhibitValue is the output of an inhibitor while learning is suppressed.
const InhibitValue = 2.0

// A CyclicInhibitor alternates between letting the error through and
// suppressing it. Its output toggles between 0 and InhibitValue at every
// multiple of CycleTime. With ToggleAtZero, time 0 counts as a multiple, so
// the first block is suppressed.
type CyclicInhibitor struct {
	CycleTime    float64
	ToggleAtZero bool
}

// Step returns the inhibitor output at time t.
func (c CyclicInhibitor) Step(t float64) float64 {
	if c.Inhibited(t) {
		return InhibitValue
	}

	return 0
}

// Inhibited tells whether learning is suppressed at time t.
func (c CyclicInhibitor) Inhibited(t float64) bool {
	if c.CycleTime <= 0 || t < 0 {
		return c.ToggleAtZero
	}

	toggles := int(math.Floor(t/c.CycleTime + 1e-9))
	if c.ToggleAtZero {
		toggles++
	}

	return toggles%2 == 1
}
