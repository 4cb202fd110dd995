// Package crossbar arranges memristive synapses into a weight matrix and
// trains it with mPES, the memristor flavour of the prescribed error
// sensitivity rule.
package crossbar

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sarchlab/memristor/device"
	"github.com/sarchlab/memristor/sim/hooking"
	"github.com/sarchlab/memristor/synapse"
)

// HookPosUpdate is triggered after every mPES update.
var HookPosUpdate = &hooking.HookPos{Name: "CrossbarUpdate"}

// UpdateDetail is attached to HookPosUpdate.
type UpdateDetail struct {
	Pulses int
	MaxAbs float64
}

// Array is a Rows x Cols matrix of synapses. Row i holds the synapses that
// feed post-synaptic neuron i; column j holds those driven by pre-synaptic
// neuron j.
type Array struct {
	hooking.HookableBase

	name         string
	rows, cols   int
	synapses     []synapse.Synapse
	converter    VoltageConverter
	method       synapse.Method
	readout      synapse.Readout
	learningRate float64
	threshold    float64

	numPulses uint64
}

// Name returns the name of the array.
func (a *Array) Name() string {
	return a.name
}

// Rows returns the number of post-synaptic neurons.
func (a *Array) Rows() int {
	return a.rows
}

// Cols returns the number of pre-synaptic neurons.
func (a *Array) Cols() int {
	return a.cols
}

// Readout returns how the array reads its synapses.
func (a *Array) Readout() synapse.Readout {
	return a.readout
}

// NumPulses returns how many pulses the array has applied so far.
func (a *Array) NumPulses() uint64 {
	return a.numPulses
}

// Synapse returns the synapse from pre-synaptic neuron j to post-synaptic
// neuron i.
func (a *Array) Synapse(i, j int) synapse.Synapse {
	return a.synapses[a.index(i, j)]
}

// Devices returns every device of the array, row by row.
func (a *Array) Devices() []device.Device {
	devices := make([]device.Device, 0, len(a.synapses)*2)
	for _, s := range a.synapses {
		devices = append(devices, s.Devices()...)
	}

	return devices
}

func (a *Array) index(i, j int) int {
	if i < 0 || i >= a.rows || j < 0 || j >= a.cols {
		panic(fmt.Sprintf("crossbar: synapse (%d, %d) out of %dx%d array",
			i, j, a.rows, a.cols))
	}

	return i*a.cols + j
}

// Weights reads the weight matrix out.
func (a *Array) Weights() [][]float64 {
	m := a.weightMatrix()

	w := make([][]float64, a.rows)
	for i := range w {
		w[i] = mat.Row(nil, i, m)
	}

	return w
}

func (a *Array) weightMatrix() *mat.Dense {
	m := mat.NewDense(a.rows, a.cols, nil)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			m.Set(i, j, a.synapses[i*a.cols+j].State(a.readout))
		}
	}

	return m
}

// Forward returns W * pre.
func (a *Array) Forward(pre []float64) []float64 {
	a.mustMatch("pre", len(pre), a.cols)

	post := mat.NewVecDense(a.rows, nil)
	post.MulVec(a.weightMatrix(), mat.NewVecDense(len(pre), pre))

	return post.RawVector().Data
}

// Update applies one mPES step. The desired adjustment of every synapse is
// -learningRate * err[i] * pre[j]; each synapse whose adjustment magnitude
// exceeds the threshold receives one pulse in the direction of the
// adjustment. Update returns the number of pulses applied. It stops at the
// first device error.
func (a *Array) Update(err, pre []float64) (int, error) {
	a.mustMatch("error", len(err), a.rows)
	a.mustMatch("pre", len(pre), a.cols)

	maxAbs := 0.0
	for _, e := range err {
		for _, x := range pre {
			maxAbs = math.Max(maxAbs, math.Abs(a.learningRate*e*x))
		}
	}

	pulses := 0

	for i, e := range err {
		if e == 0 {
			continue
		}

		for j, x := range pre {
			delta := -a.learningRate * e * x
			if math.Abs(delta) <= a.threshold || delta == 0 {
				continue
			}

			v := a.converter.Voltage(delta, maxAbs)

			pulseErr := a.synapses[i*a.cols+j].Pulse(delta, v, a.method)
			if pulseErr != nil {
				a.numPulses += uint64(pulses)
				return pulses, fmt.Errorf("%s: synapse (%d, %d): %w",
					a.name, i, j, pulseErr)
			}

			pulses++
		}
	}

	a.numPulses += uint64(pulses)

	a.InvokeHook(hooking.HookCtx{
		Domain: a,
		Pos:    HookPosUpdate,
		Item:   a,
		Detail: UpdateDetail{Pulses: pulses, MaxAbs: maxAbs},
	})

	return pulses, nil
}

// SaveState checkpoints every synapse.
func (a *Array) SaveState() {
	for _, s := range a.synapses {
		s.SaveState()
	}
}

func (a *Array) mustMatch(what string, got, want int) {
	if got != want {
		panic(fmt.Sprintf("crossbar: %s has %d entries, %s expects %d",
			what, got, a.name, want))
	}
}
