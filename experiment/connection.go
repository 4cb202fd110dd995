package experiment

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/sarchlab/memristor/crossbar"
)

// A Connection maps pre-synaptic activities onto the output and can learn
// from an error signal.
type Connection interface {
	// Forward returns the output for the given activities.
	Forward(pre []float64) []float64

	// Update adjusts the connection against err. It returns the number of
	// weights that changed.
	Update(err, pre []float64) (int, error)

	// Weights returns a copy of the weight matrix.
	Weights() [][]float64
}

var _ Connection = (*crossbar.Array)(nil)

// RatePESLearningRate is the PES learning rate for activities measured in Hz
// and updates applied every second.
const RatePESLearningRate = 1e-4

// PESLearningRate converts RatePESLearningRate for activities normalised by
// MaxFiringRate and updates applied every dt seconds.
func PESLearningRate(dt float64) float64 {
	return RatePESLearningRate * dt * MaxFiringRate * MaxFiringRate
}

// PES is a floating-point connection trained with the prescribed error
// sensitivity rule, dW = -lr / n * err x pre, where n is the number of pre
// neurons.
type PES struct {
	LearningRate float64

	weights *mat.Dense
}

// NewPES creates a PES connection with all weights set to zero.
func NewPES(rows, cols int, learningRate float64) *PES {
	return &PES{
		LearningRate: learningRate,
		weights:      mat.NewDense(rows, cols, nil),
	}
}

// Forward returns W * pre.
func (p *PES) Forward(pre []float64) []float64 {
	return multiply(p.weights, pre)
}

// Update applies one PES step.
func (p *PES) Update(err, pre []float64) (int, error) {
	rows, cols := p.weights.Dims()
	if len(err) != rows {
		return 0, fmt.Errorf("pes: error has %d entries, want %d",
			len(err), rows)
	}

	if len(pre) != cols {
		return 0, fmt.Errorf("pes: pre has %d entries, want %d",
			len(pre), cols)
	}

	if p.LearningRate == 0 {
		return 0, nil
	}

	alpha := -p.LearningRate / float64(len(pre))
	p.weights.RankOne(p.weights, alpha,
		mat.NewVecDense(len(err), err), mat.NewVecDense(len(pre), pre))

	return nonZero(err) * nonZero(pre), nil
}

// Weights returns a copy of the weights.
func (p *PES) Weights() [][]float64 {
	return toRows(p.weights)
}

// Static is a connection with fixed weights. It never learns.
type Static struct {
	weights *mat.Dense
}

// NewStatic creates a static connection. The weights are copied.
func NewStatic(weights [][]float64) *Static {
	return &Static{weights: toDense(weights)}
}

// Forward returns W * pre.
func (s *Static) Forward(pre []float64) []float64 {
	return multiply(s.weights, pre)
}

// Update does nothing.
func (s *Static) Update(_, _ []float64) (int, error) {
	return 0, nil
}

// Weights returns a copy of the weights.
func (s *Static) Weights() [][]float64 {
	return toRows(s.weights)
}

// ErrSingular is returned when decoders cannot be solved.
var ErrSingular = errors.New("singular system")

// SolveDecoders finds the weights that best map the activities of source
// onto its target, in the least-squares sense with ridge regularisation. The
// source is sampled at numSamples evenly spaced times over duration.
func SolveDecoders(
	source Source,
	duration float64,
	numSamples int,
	reg float64,
) ([][]float64, error) {
	if numSamples <= 0 {
		return nil, fmt.Errorf("decoders: %d samples", numSamples)
	}

	var acts, targets *mat.Dense

	for s := 0; s < numSamples; s++ {
		t := duration * float64(s) / float64(numSamples)
		pre, truth := source.Sample(t)

		if acts == nil {
			acts = mat.NewDense(numSamples, len(pre), nil)
			targets = mat.NewDense(numSamples, len(truth), nil)
		}

		acts.SetRow(s, pre)
		targets.SetRow(s, truth)
	}

	var gram mat.SymDense
	gram.SymOuterK(1, acts.T())

	n, _ := gram.Dims()

	maxDiag := 0.0
	for i := 0; i < n; i++ {
		maxDiag = max(maxDiag, gram.At(i, i))
	}

	for i := 0; i < n; i++ {
		gram.SetSym(i, i, gram.At(i, i)+reg*reg*maxDiag)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(&gram); !ok {
		return nil, fmt.Errorf("decoders: %w", ErrSingular)
	}

	var cross, decoders mat.Dense
	cross.Mul(acts.T(), targets)

	err := chol.SolveTo(&decoders, &cross)
	if err != nil {
		return nil, fmt.Errorf("decoders: %w: %v", ErrSingular, err)
	}

	return toRows(decoders.T()), nil
}

func toDense(rows [][]float64) *mat.Dense {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("experiment: empty weight matrix")
	}

	m := mat.NewDense(len(rows), len(rows[0]), nil)
	for i, row := range rows {
		m.SetRow(i, row)
	}

	return m
}

func toRows(m mat.Matrix) [][]float64 {
	r, _ := m.Dims()

	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, m)
	}

	return rows
}

func multiply(w *mat.Dense, x []float64) []float64 {
	rows, cols := w.Dims()
	if len(x) != cols {
		panic(fmt.Sprintf("experiment: %d inputs for %d weights",
			len(x), cols))
	}

	out := mat.NewVecDense(rows, nil)
	out.MulVec(w, mat.NewVecDense(len(x), x))

	return out.RawVector().Data
}

func nonZero(v []float64) int {
	n := 0
	for _, x := range v {
		if x != 0 {
			n++
		}
	}

	return n
}
