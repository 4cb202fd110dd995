package experiment

import (
	"fmt"

	"github.com/sarchlab/memristor/sim/hooking"
	"github.com/sarchlab/memristor/sim/timing"
)

// DefaultTimeStep is the simulation time step, in seconds.
const DefaultTimeStep = 0.001

// TrialBuilder configures trials.
type TrialBuilder struct {
	dt        float64
	simTime   float64
	blockTime float64
	learn     bool
	inhibit   bool
	toggle0   bool
	layout    Layout
	hooks     []hooking.Hook
}

// MakeTrialBuilder returns a TrialBuilder with default settings. By default
// the first block is a testing block, learning happens in odd blocks and the
// error is measured in even blocks.
func MakeTrialBuilder() TrialBuilder {
	return TrialBuilder{
		dt:        DefaultTimeStep,
		simTime:   50 + LearnBlockTime,
		blockTime: LearnBlockTime,
		learn:     true,
		inhibit:   true,
		toggle0:   true,
		layout:    TestEven,
	}
}

// WithTimeStep sets the simulation time step.
func (b TrialBuilder) WithTimeStep(dt float64) TrialBuilder {
	b.dt = dt
	return b
}

// WithSimTime sets how long a trial runs, in seconds.
func (b TrialBuilder) WithSimTime(t float64) TrialBuilder {
	b.simTime = t
	return b
}

// WithBlockTime sets the length of learning and testing blocks.
func (b TrialBuilder) WithBlockTime(t float64) TrialBuilder {
	b.blockTime = t
	return b
}

// WithoutLearning makes trials only probe the connection.
func (b TrialBuilder) WithoutLearning() TrialBuilder {
	b.learn = false
	return b
}

// WithoutInhibition lets the connection learn during every block.
func (b TrialBuilder) WithoutInhibition() TrialBuilder {
	b.inhibit = false
	return b
}

// WithLearningFirst makes block 0 a learning block and measures the error in
// odd blocks.
func (b TrialBuilder) WithLearningFirst() TrialBuilder {
	b.toggle0 = false
	b.layout = TestOdd

	return b
}

// WithHook registers a hook on the learner of every trial built.
func (b TrialBuilder) WithHook(h hooking.Hook) TrialBuilder {
	b.hooks = append(append([]hooking.Hook(nil), b.hooks...), h)
	return b
}

// NumBlocks returns how many blocks a trial is split into.
func (b TrialBuilder) NumBlocks() int {
	return int(b.simTime / b.blockTime)
}

// Build creates a trial that trains conn on source.
func (b TrialBuilder) Build(name string, conn Connection, source Source) *Trial {
	if conn == nil || source == nil {
		panic("experiment: a trial needs a connection and a source")
	}

	if b.NumBlocks() <= 0 {
		panic(fmt.Sprintf("experiment: sim time %g is shorter than a block",
			b.simTime))
	}

	engine := timing.NewSerialEngine()
	learner := newLearner(name, engine, b.dt, b.simTime, conn, source)
	learner.learn = b.learn

	if b.inhibit {
		learner.inhibitor = &CyclicInhibitor{
			CycleTime:    b.blockTime,
			ToggleAtZero: b.toggle0,
		}
	}

	for _, h := range b.hooks {
		learner.AcceptHook(h)
	}

	return &Trial{
		engine:    engine,
		learner:   learner,
		numBlocks: b.NumBlocks(),
		layout:    b.layout,
	}
}

// A Trial is one simulation of one learner.
type Trial struct {
	engine    *timing.SerialEngine
	learner   *Learner
	numBlocks int
	layout    Layout
}

// Engine returns the engine that drives the trial.
func (t *Trial) Engine() *timing.SerialEngine {
	return t.engine
}

// Learner returns the learner of the trial.
func (t *Trial) Learner() *Learner {
	return t.learner
}

// TrialResult holds the probes and the testing errors of a trial.
type TrialResult struct {
	Post    [][]float64
	Truth   [][]float64
	Errors  []float64
	Updates int
}

// Run simulates the trial to the end.
func (t *Trial) Run() (*TrialResult, error) {
	t.learner.TickNow()

	err := t.engine.Run()
	if err != nil {
		return nil, err
	}

	l := t.learner

	return &TrialResult{
		Post:    l.post,
		Truth:   l.truth,
		Errors:  TestingErrors(l.post, l.truth, t.numBlocks, t.layout),
		Updates: l.updates,
	}, nil
}

// A ConnectionFactory creates the connection of one iteration.
type ConnectionFactory func(iteration int) Connection

// A SourceFactory creates the source of one iteration.
type SourceFactory func(iteration int) Source

// Result holds the testing errors of every iteration and their confidence
// interval.
type Result struct {
	Errors   [][]float64
	Interval Interval
}

// Run repeats a trial for a number of iterations, each with a fresh
// connection and source.
func Run(
	name string,
	b TrialBuilder,
	iterations int,
	newConn ConnectionFactory,
	newSource SourceFactory,
) (*Result, error) {
	res := &Result{}

	for i := 0; i < iterations; i++ {
		trial := b.Build(fmt.Sprintf("%s[%d]", name, i), newConn(i), newSource(i))

		tr, err := trial.Run()
		if err != nil {
			return nil, fmt.Errorf("%s iteration %d: %w", name, i, err)
		}

		res.Errors = append(res.Errors, tr.Errors)
	}

	res.Interval = ConfidenceInterval(res.Errors, DefaultConfidence)

	return res, nil
}

// Comparison holds the results of the learned network and its two controls.
type Comparison struct {
	MPES *Result
	PES  *Result
	NEF  *Result
}

// Settings of the NEF decoder solver.
const (
	DecoderRegularization = 0.1
	DecoderSamples        = 1000
)

// Compare runs an experiment with an mPES crossbar, a PES control and a
// static NEF control. Iteration i uses seed i for the input signal, the
// tuning curves and the initial device resistances.
func Compare(e Experiment, b TrialBuilder, iterations int) (*Comparison, error) {
	b = b.WithSimTime(e.SimTime)

	source := func(i int) *RateSource {
		return e.SourceBuilder().WithSeed(int64(i)).Build()
	}

	mpes, err := Run("mPES", b, iterations,
		func(i int) Connection { return e.NewMPES(int64(i)) },
		func(i int) Source { return source(i) })
	if err != nil {
		return nil, err
	}

	pes, err := Run("PES", b, iterations,
		func(i int) Connection {
			return NewPES(e.OutputDims(), e.PreNeurons(), PESLearningRate(b.dt))
		},
		func(i int) Source { return source(i) })
	if err != nil {
		return nil, err
	}

	var decodeErr error

	nef, err := Run("NEF", b.WithoutLearning(), iterations,
		func(i int) Connection {
			w, err := SolveDecoders(source(i), e.SimTime, DecoderSamples,
				DecoderRegularization)
			if err != nil {
				decodeErr = err
				return NewPES(e.OutputDims(), e.PreNeurons(), 0)
			}

			return NewStatic(w)
		},
		func(i int) Source { return source(i) })
	if err != nil {
		return nil, err
	}

	if decodeErr != nil {
		return nil, decodeErr
	}

	return &Comparison{MPES: mpes, PES: pes, NEF: nef}, nil
}
