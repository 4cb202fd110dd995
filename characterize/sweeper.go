// Package characterize sweeps a memristor with repeated pulses to trace its
// resistance curve.
package characterize

import (
	"github.com/sarchlab/memristor/device"
	"github.com/sarchlab/memristor/sim/hooking"
	"github.com/sarchlab/memristor/sim/timing"
)

// HookPosSweepPoint is triggered when the sweeper records a point. The detail
// is the Point.
var HookPosSweepPoint = &hooking.HookPos{Name: "SweepPoint"}

// A Point is one sample of a resistance curve.
type Point struct {
	Pulse      int
	Resistance float64
}

// StopReason tells why a sweep ended.
type StopReason int

// Stop reasons.
const (
	Running StopReason = iota
	ReachedThreshold
	ReachedMaxPulses
	Failed
)

func (r StopReason) String() string {
	switch r {
	case Running:
		return "running"
	case ReachedThreshold:
		return "threshold"
	case ReachedMaxPulses:
		return "max-pulses"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// A Sweeper pulses a device once per tick. It starts the device at RMax for
// non-negative voltages and at RMin for negative ones, and records the
// resistance before every pulse until the resistance comes within threshold
// of the opposite bound.
type Sweeper struct {
	*timing.TickingComponent

	device    *device.Memristor
	voltage   float64
	threshold float64
	maxPulses int

	n      int
	points []Point
	reason StopReason
}

// Device returns the device under test.
func (s *Sweeper) Device() *device.Memristor {
	return s.device
}

// Points returns the recorded points.
func (s *Sweeper) Points() []Point {
	return s.points
}

// Reason returns why the sweep stopped, or Running.
func (s *Sweeper) Reason() StopReason {
	return s.reason
}

// Start resets the device and schedules the first tick.
func (s *Sweeper) Start() {
	p := s.device.Params()
	if s.voltage >= 0 {
		s.device.SetResistance(p.RMax)
	} else {
		s.device.SetResistance(p.RMin)
	}

	s.n = 1
	s.points = nil
	s.reason = Running

	s.TickNow()
}

func (s *Sweeper) withinRange(r float64) bool {
	p := s.device.Params()

	if s.voltage >= 0 {
		return r >= p.RMin+s.threshold
	}

	return r <= p.RMax-s.threshold
}

// Tick records one point and applies one pulse.
func (s *Sweeper) Tick() (bool, error) {
	if s.reason != Running {
		return false, nil
	}

	r := s.device.Resistance()
	if !s.withinRange(r) {
		s.reason = ReachedThreshold
		return false, nil
	}

	if s.maxPulses > 0 && len(s.points) >= s.maxPulses {
		s.reason = ReachedMaxPulses
		return false, nil
	}

	pt := Point{Pulse: s.n, Resistance: r}
	s.points = append(s.points, pt)

	s.InvokeHook(hooking.HookCtx{
		Domain: s,
		Pos:    HookPosSweepPoint,
		Item:   s.device,
		Detail: pt,
	})

	_, err := s.device.Pulse(s.voltage)
	if err != nil {
		s.reason = Failed
		return false, err
	}

	s.n++

	return true, nil
}
