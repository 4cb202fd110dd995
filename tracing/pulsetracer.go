package tracing

import (
	"github.com/sarchlab/memristor/datarecording"
	"github.com/sarchlab/memristor/device"
	"github.com/sarchlab/memristor/experiment"
	"github.com/sarchlab/memristor/sim/hooking"
	"github.com/sarchlab/memristor/sim/timing"
)

// A PulseEntry is a row of PulseTable.
type PulseEntry struct {
	Time        float64
	Device      string
	Voltage     float64
	PulseNumber float64
	Before      float64
	After       float64
}

// PulseTracer writes every pulse into the PulseTable of a recorder.
type PulseTracer struct {
	recorder   datarecording.DataRecorder
	timeTeller timing.TimeTeller
}

// NewPulseTracer creates a PulseTracer. The time teller may be nil, in which
// case pulses are recorded at time 0.
func NewPulseTracer(
	recorder datarecording.DataRecorder,
	timeTeller timing.TimeTeller,
) *PulseTracer {
	ensureTable(recorder, PulseTable, PulseEntry{})

	return &PulseTracer{
		recorder:   recorder,
		timeTeller: timeTeller,
	}
}

// Func records the pulse.
func (t *PulseTracer) Func(ctx hooking.HookCtx) {
	if ctx.Pos != device.HookPosAfterPulse {
		return
	}

	detail := ctx.Detail.(device.PulseDetail)

	now := 0.0
	if t.timeTeller != nil {
		now = t.timeTeller.Now()
	}

	t.recorder.InsertData(PulseTable, PulseEntry{
		Time:        now,
		Device:      nameOf(ctx.Item),
		Voltage:     detail.Voltage,
		PulseNumber: detail.PulseNumber,
		Before:      detail.Before,
		After:       detail.After,
	})
}

// A LearnerStepEntry is a row of LearnerStepTable.
type LearnerStepEntry struct {
	Learner   string
	Time      float64
	Dimension int
	Post      float64
	Truth     float64
	Inhibited bool
	Updates   int
}

// StepTracer writes the output and the ground truth of every learner step
// into the LearnerStepTable, one row per output dimension.
type StepTracer struct {
	recorder datarecording.DataRecorder
}

// NewStepTracer creates a StepTracer.
func NewStepTracer(recorder datarecording.DataRecorder) *StepTracer {
	ensureTable(recorder, LearnerStepTable, LearnerStepEntry{})

	return &StepTracer{recorder: recorder}
}

// Func records the step.
func (t *StepTracer) Func(ctx hooking.HookCtx) {
	if ctx.Pos != experiment.HookPosLearnerStep {
		return
	}

	detail := ctx.Detail.(experiment.StepDetail)
	name := nameOf(ctx.Item)

	for d := range detail.Post {
		t.recorder.InsertData(LearnerStepTable, LearnerStepEntry{
			Learner:   name,
			Time:      detail.Time,
			Dimension: d,
			Post:      detail.Post[d],
			Truth:     detail.Truth[d],
			Inhibited: detail.Inhibited,
			Updates:   detail.Updates,
		})
	}
}
