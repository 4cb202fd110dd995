package tracing

import (
	"github.com/sarchlab/memristor/characterize"
	"github.com/sarchlab/memristor/datarecording"
	"github.com/sarchlab/memristor/device"
	"github.com/sarchlab/memristor/experiment"
)

// A HistoryEntry is a row of HistoryTable.
type HistoryEntry struct {
	Device     string
	Step       int
	Resistance float64
}

// RecordHistory writes the saved resistances of every device.
func RecordHistory(
	recorder datarecording.DataRecorder,
	devices []device.Device,
) {
	ensureTable(recorder, HistoryTable, HistoryEntry{})

	for _, d := range devices {
		for i, r := range d.History() {
			recorder.InsertData(HistoryTable, HistoryEntry{
				Device:     d.Name(),
				Step:       i,
				Resistance: r,
			})
		}
	}
}

// A CurveEntry is a row of CurveTable.
type CurveEntry struct {
	Sweep      string
	Pulse      int
	Resistance float64
}

// RecordCurve writes the points of a resistance sweep.
func RecordCurve(
	recorder datarecording.DataRecorder,
	sweep string,
	points []characterize.Point,
) {
	ensureTable(recorder, CurveTable, CurveEntry{})

	for _, p := range points {
		recorder.InsertData(CurveTable, CurveEntry{
			Sweep:      sweep,
			Pulse:      p.Pulse,
			Resistance: p.Resistance,
		})
	}
}

// An ExperimentErrorEntry is a row of ExperimentErrTable.
type ExperimentErrorEntry struct {
	Experiment string
	Iteration  int
	Block      int
	Error      float64
}

// An ExperimentCIEntry is a row of ExperimentCITable.
type ExperimentCIEntry struct {
	Experiment string
	Block      int
	Mean       float64
	Upper      float64
	Lower      float64
}

// RecordSummary writes the testing errors of every iteration of an
// experiment and their confidence interval.
func RecordSummary(
	recorder datarecording.DataRecorder,
	name string,
	res *experiment.Result,
) {
	ensureTable(recorder, ExperimentErrTable, ExperimentErrorEntry{})
	ensureTable(recorder, ExperimentCITable, ExperimentCIEntry{})

	for i, errs := range res.Errors {
		for b, e := range errs {
			recorder.InsertData(ExperimentErrTable, ExperimentErrorEntry{
				Experiment: name,
				Iteration:  i,
				Block:      b,
				Error:      e,
			})
		}
	}

	ci := res.Interval
	for b := range ci.Mean {
		recorder.InsertData(ExperimentCITable, ExperimentCIEntry{
			Experiment: name,
			Block:      b,
			Mean:       ci.Mean[b],
			Upper:      ci.Upper[b],
			Lower:      ci.Lower[b],
		})
	}
}
