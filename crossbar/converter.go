package crossbar

import (
	"math"
)

// A VoltageConverter decides the amplitude of the pulse that realises a
// weight adjustment.
type VoltageConverter interface {
	// Voltage returns the pulse amplitude for an adjustment delta, given the
	// largest adjustment magnitude of the same update.
	Voltage(delta, maxAbs float64) float64
}

// Constant applies the same voltage to every pulse.
type Constant struct {
	Base float64
}

// Voltage returns Base.
func (c Constant) Voltage(_, _ float64) float64 {
	return c.Base
}

// Levels quantises the relative adjustment magnitude into a number of levels
// and scales the base voltage with the level.
type Levels struct {
	Base   float64
	Levels int
}

// DefaultLevels is the number of levels used when none is given.
const DefaultLevels = 10

// Voltage returns Base times the level of |delta|/maxAbs.
func (l Levels) Voltage(delta, maxAbs float64) float64 {
	levels := l.Levels
	if levels <= 0 {
		levels = DefaultLevels
	}

	if maxAbs <= 0 {
		return l.Base
	}

	level := int(math.Ceil(math.Abs(delta) / maxAbs * float64(levels)))
	level = max(level, 1)
	level = min(level, levels)

	return l.Base * float64(level)
}
