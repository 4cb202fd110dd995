// Package tracing collects what happens to memristors during a simulation,
// either as log lines or as rows of a data recorder.
package tracing

import (
	"slices"

	"github.com/sarchlab/memristor/datarecording"
	"github.com/sarchlab/memristor/device"
	"github.com/sarchlab/memristor/sim/hooking"
)

// Table names used by the tracers and record functions.
const (
	PulseTable         = "memristor_pulses"
	HistoryTable       = "memristor_history"
	CurveTable         = "memristor_curve"
	LearnerStepTable   = "learner_steps"
	ExperimentErrTable = "experiment_errors"
	ExperimentCITable  = "experiment_summary"
)

// TraceDevices registers a hook on every device.
func TraceDevices(devices []device.Device, hook hooking.Hook) {
	for _, d := range devices {
		d.AcceptHook(hook)
	}
}

func ensureTable(
	recorder datarecording.DataRecorder,
	tableName string,
	sampleEntry any,
) {
	if slices.Contains(recorder.ListTables(), tableName) {
		return
	}

	recorder.CreateTable(tableName, sampleEntry)
}

func nameOf(item any) string {
	type named interface{ Name() string }

	if n, ok := item.(named); ok {
		return n.Name()
	}

	return ""
}
