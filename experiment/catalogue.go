package experiment

import (
	"fmt"
	"math/rand"

	"github.com/sarchlab/memristor/crossbar"
)

// LearnBlockTime is the length, in seconds, of one learning or testing block.
const LearnBlockTime = 2.5

// DefaultMPESGain is the readout gain used for mPES crossbars.
const DefaultMPESGain = 1e3

// An Experiment describes one function-learning task.
type Experiment struct {
	ID   int
	Name string

	// Neurons holds the ensemble sizes of pre, post, ground truth, error and,
	// for convolutions, the convolution network.
	Neurons []int

	// Dimensions holds the dimensions of the same ensembles.
	Dimensions []int

	// SimTime includes the leading testing block.
	SimTime float64

	Target Target
}

// InputDims returns the number of input dimensions.
func (e Experiment) InputDims() int {
	return e.Dimensions[0]
}

// OutputDims returns the number of output dimensions.
func (e Experiment) OutputDims() int {
	return e.Dimensions[1]
}

// PreNeurons returns the number of neurons of the pre ensemble.
func (e Experiment) PreNeurons() int {
	return e.Neurons[0]
}

// NumBlocks returns how many blocks the simulation time is split into.
func (e Experiment) NumBlocks() int {
	return int(e.SimTime / LearnBlockTime)
}

// SourceBuilder returns a source builder set up for the experiment.
func (e Experiment) SourceBuilder() SourceBuilder {
	return MakeSourceBuilder().
		WithNeurons(e.PreNeurons()).
		WithDimensions(e.InputDims()).
		WithTarget(e.Target)
}

// ArrayBuilder returns a crossbar builder that maps pre activities onto the
// output dimensions.
func (e Experiment) ArrayBuilder() crossbar.Builder {
	return crossbar.MakeBuilder().
		WithSize(e.OutputDims(), e.PreNeurons()).
		WithGain(DefaultMPESGain)
}

// Catalogue returns the five experiments.
func Catalogue() []Experiment {
	return []Experiment{
		{
			ID:         1,
			Name:       "Multiplying two numbers",
			Neurons:    []int{200, 200, 100, 100},
			Dimensions: []int{2, 1, 1, 1},
			SimTime:    50 + LearnBlockTime,
			Target:     Product,
		},
		{
			ID:         2,
			Name:       "Combining two products",
			Neurons:    []int{400, 400, 100, 100},
			Dimensions: []int{4, 1, 1, 1},
			SimTime:    100 + LearnBlockTime,
			Target:     CombinedProducts,
		},
		{
			ID:         3,
			Name:       "Three separate products",
			Neurons:    []int{300, 300, 300, 300},
			Dimensions: []int{3, 3, 3, 3},
			SimTime:    100 + LearnBlockTime,
			Target:     SeparateProducts,
		},
		{
			ID:         4,
			Name:       "Two-dimensional circular convolution",
			Neurons:    []int{400, 400, 200, 200, 200},
			Dimensions: []int{4, 2, 2, 2, 2},
			SimTime:    200 + LearnBlockTime,
			Target:     CircularConvolution,
		},
		{
			ID:         5,
			Name:       "Three-dimensional circular convolution",
			Neurons:    []int{600, 300, 300, 300, 300},
			Dimensions: []int{6, 3, 3, 3, 3},
			SimTime:    400 + LearnBlockTime,
			Target:     CircularConvolution,
		},
	}
}

// Lookup finds an experiment by ID.
func Lookup(id int) (Experiment, error) {
	for _, e := range Catalogue() {
		if e.ID == id {
			return e, nil
		}
	}

	return Experiment{}, fmt.Errorf("experiment: no experiment %d", id)
}

// NewMPES creates the crossbar learned by mPES in the given iteration.
func (e Experiment) NewMPES(seed int64) Connection {
	return e.ArrayBuilder().
		WithRand(rand.New(rand.NewSource(seed))).
		Build(fmt.Sprintf("mPES[%d]", seed))
}
