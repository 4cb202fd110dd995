package experiment

import (
	"fmt"
	"math"

	"github.com/sarchlab/memristor/sim/hooking"
	"github.com/sarchlab/memristor/sim/timing"
)

// HookPosLearnerStep is triggered after each step of a Learner.
var HookPosLearnerStep = &hooking.HookPos{Name: "LearnerStep"}

// StepDetail is attached to HookPosLearnerStep.
type StepDetail struct {
	Time      float64
	Post      []float64
	Truth     []float64
	Inhibited bool
	Updates   int
}

// A Learner samples a source once per time step, passes the activities
// through a connection and, unless inhibited, trains the connection on the
// difference between its output and the ground truth.
type Learner struct {
	*timing.TickingComponent

	source    Source
	conn      Connection
	inhibitor *CyclicInhibitor
	learn     bool
	dt        float64
	numSteps  int

	step    int
	updates int
	post    [][]float64
	truth   [][]float64
}

func newLearner(
	name string,
	engine timing.Engine,
	dt, simTime float64,
	conn Connection,
	source Source,
) *Learner {
	l := &Learner{
		source:   source,
		conn:     conn,
		learn:    true,
		dt:       dt,
		numSteps: int(math.Round(simTime / dt)),
	}
	l.TickingComponent = timing.NewTickingComponent(
		name, engine, timing.FreqFromStep(dt), l)

	return l
}

// Connection returns the connection being trained.
func (l *Learner) Connection() Connection {
	return l.conn
}

// Step returns the number of steps taken.
func (l *Learner) Step() int {
	return l.step
}

// NumSteps returns the number of steps the learner takes in total.
func (l *Learner) NumSteps() int {
	return l.numSteps
}

// Updates returns the total number of weight changes so far.
func (l *Learner) Updates() int {
	return l.updates
}

// Tick runs one time step.
func (l *Learner) Tick() (bool, error) {
	if l.step >= l.numSteps {
		return false, nil
	}

	t := float64(l.step) * l.dt
	pre, truth := l.source.Sample(t)
	post := l.conn.Forward(pre)

	if len(post) != len(truth) {
		return false, fmt.Errorf("%s: output has %d dimensions, truth has %d",
			l.Name(), len(post), len(truth))
	}

	inhibited := l.inhibitor != nil && l.inhibitor.Inhibited(t)

	updates := 0
	if l.learn && !inhibited {
		err := make([]float64, len(post))
		for i := range err {
			err[i] = post[i] - truth[i]
		}

		n, updateErr := l.conn.Update(err, pre)
		if updateErr != nil {
			return false, fmt.Errorf("%s: step %d: %w", l.Name(), l.step, updateErr)
		}

		updates = n
	}

	l.post = append(l.post, post)
	l.truth = append(l.truth, truth)
	l.updates += updates
	l.step++

	l.InvokeHook(hooking.HookCtx{
		Domain: l,
		Pos:    HookPosLearnerStep,
		Item:   l,
		Detail: StepDetail{
			Time:      t,
			Post:      post,
			Truth:     truth,
			Inhibited: inhibited,
			Updates:   updates,
		},
	})

	return l.step < l.numSteps, nil
}
