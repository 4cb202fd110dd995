package timing

import (
	"log"
	"math"
)

// VTimeInSec defines the time in the simulated space in the unit of second
type VTimeInSec = float64

// Freq defines the type of frequency
type Freq float64

// Defines the unit of frequency
const (
	Hz  Freq = 1
	KHz Freq = 1e3
	MHz Freq = 1e6
)

// FreqFromStep returns the frequency whose period is the given time step.
func FreqFromStep(dt VTimeInSec) Freq {
	if dt <= 0 {
		log.Panic("time step must be positive")
	}

	return Freq(1 / dt)
}

// Period returns the time between two consecutive ticks
func (f Freq) Period() VTimeInSec {
	if f == 0 {
		log.Panic("frequency cannot be 0")
	}

	return VTimeInSec(1.0 / f)
}

// Cycle converts a time to the number of cycles passed since time 0.
func (f Freq) Cycle(time VTimeInSec) uint64 {
	return uint64(math.Round(float64(time) * float64(f)))
}

// ThisTick returns the current tick time
//
//	           Input
//	           (          ]
//	|----------|----------|----------|----->
//	                      |
//	                      Output
func (f Freq) ThisTick(now VTimeInSec) VTimeInSec {
	if math.IsNaN(now) {
		log.Panic("invalid time")
	}

	count := math.Ceil(math.Round(now*10*float64(f)) / 10)

	return count / float64(f)
}

// NextTick returns the next tick time.
//
//	           Input
//	           [          )
//	|----------|----------|----------|----->
//	                      |
//	                      Output
func (f Freq) NextTick(now VTimeInSec) VTimeInSec {
	if math.IsNaN(now) {
		log.Panic("invalid time")
	}

	count := math.Floor(math.Round(now*10*float64(f)) / 10)

	return (count + 1) / float64(f)
}
