package crossbar

import (
	"fmt"
	"math/rand"

	"github.com/sarchlab/memristor/device"
	"github.com/sarchlab/memristor/synapse"
)

// Builder can build crossbar arrays.
type Builder struct {
	rows, cols    int
	kind          Kind
	deviceBuilder device.Builder
	converter     VoltageConverter
	method        synapse.Method
	readout       synapse.Readout
	learningRate  float64
	threshold     float64
	rng           *rand.Rand
}

// MakeBuilder returns a Builder with default settings.
func MakeBuilder() Builder {
	return Builder{
		rows:          1,
		cols:          1,
		kind:          PairUnidirectional,
		deviceBuilder: device.MakeBuilder(),
		converter:     Constant{Base: device.DefaultVoltage},
		method:        synapse.Same,
		readout:       synapse.DefaultReadout(),
		learningRate:  1,
	}
}

// WithSize sets the number of post-synaptic (rows) and pre-synaptic (cols)
// neurons.
func (b Builder) WithSize(rows, cols int) Builder {
	b.rows = rows
	b.cols = cols

	return b
}

// WithKind sets how each synapse is realised.
func (b Builder) WithKind(kind Kind) Builder {
	b.kind = kind
	return b
}

// WithDeviceBuilder sets the builder used for every device. Its random source
// is replaced by the one of the crossbar.
func (b Builder) WithDeviceBuilder(db device.Builder) Builder {
	b.deviceBuilder = db
	return b
}

// WithVoltageConverter sets the voltage converter.
func (b Builder) WithVoltageConverter(c VoltageConverter) Builder {
	b.converter = c
	return b
}

// WithMethod sets the pulse routing method.
func (b Builder) WithMethod(m synapse.Method) Builder {
	b.method = m
	return b
}

// WithReadout sets how synapses are read.
func (b Builder) WithReadout(r synapse.Readout) Builder {
	b.readout = r
	return b
}

// WithGain sets the gain of the readout.
func (b Builder) WithGain(gain float64) Builder {
	b.readout.Gain = gain
	return b
}

// WithLearningRate sets the factor applied to err * pre.
func (b Builder) WithLearningRate(lr float64) Builder {
	b.learningRate = lr
	return b
}

// WithThreshold sets the adjustment magnitude below which no pulse is sent.
func (b Builder) WithThreshold(t float64) Builder {
	b.threshold = t
	return b
}

// WithRand sets the random source for the initial device resistances.
func (b Builder) WithRand(rng *rand.Rand) Builder {
	b.rng = rng
	return b
}

// WithSeed creates the random source from a seed.
func (b Builder) WithSeed(seed int64) Builder {
	b.rng = rand.New(rand.NewSource(seed))
	return b
}

// Build creates a new Array.
func (b Builder) Build(name string) *Array {
	if b.rows <= 0 || b.cols <= 0 {
		panic(fmt.Sprintf("crossbar: invalid size %dx%d", b.rows, b.cols))
	}

	if b.rng == nil {
		panic("crossbar: a random source is required")
	}

	if b.converter == nil {
		panic("crossbar: a voltage converter is required")
	}

	a := &Array{
		name:         name,
		rows:         b.rows,
		cols:         b.cols,
		converter:    b.converter,
		method:       b.method,
		readout:      b.readout,
		learningRate: b.learningRate,
		threshold:    b.threshold,
		synapses:     make([]synapse.Synapse, 0, b.rows*b.cols),
	}

	for i := 0; i < b.rows; i++ {
		for j := 0; j < b.cols; j++ {
			synName := fmt.Sprintf("%s.Synapse[%d][%d]", name, i, j)
			a.synapses = append(a.synapses,
				b.kind.newSynapse(synName, b.deviceBuilder, b.rng))
		}
	}

	return a
}
