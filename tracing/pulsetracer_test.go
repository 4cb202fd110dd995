package tracing

import (
	"bytes"
	"context"
	"log"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/memristor/characterize"
	"github.com/sarchlab/memristor/datarecording"
	"github.com/sarchlab/memristor/device"
	"github.com/sarchlab/memristor/experiment"
	"github.com/sarchlab/memristor/sim/hooking"
)

type namedItem string

func (n namedItem) Name() string {
	return string(n)
}

var _ = Describe("Tracers", func() {
	var (
		mockCtrl   *gomock.Controller
		recorder   *MockDataRecorder
		timeTeller *MockTimeTeller
		dev        *device.Memristor
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		recorder = NewMockDataRecorder(mockCtrl)
		timeTeller = NewMockTimeTeller(mockCtrl)
		dev = device.MakeBuilder().WithInitialResistance(1e8).Build("M")
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	Context("PulseTracer", func() {
		It("should record every pulse", func() {
			var entry PulseEntry

			recorder.EXPECT().ListTables().Return(nil)
			recorder.EXPECT().CreateTable(PulseTable, PulseEntry{})
			timeTeller.EXPECT().Now().Return(1.5)
			recorder.EXPECT().
				InsertData(PulseTable, gomock.Any()).
				Do(func(_ string, e any) { entry = e.(PulseEntry) })

			tracer := NewPulseTracer(recorder, timeTeller)
			TraceDevices([]device.Device{dev}, tracer)

			r, err := dev.Pulse(0.1)

			Expect(err).NotTo(HaveOccurred())
			Expect(entry.Time).To(Equal(1.5))
			Expect(entry.Device).To(Equal("M"))
			Expect(entry.Voltage).To(Equal(0.1))
			Expect(entry.Before).To(Equal(1e8))
			Expect(entry.After).To(Equal(r))
			Expect(entry.PulseNumber).To(BeNumerically(">", 1))
		})

		It("should not create the table twice", func() {
			recorder.EXPECT().ListTables().Return([]string{PulseTable})

			tracer := NewPulseTracer(recorder, nil)
			tracer.Func(hooking.HookCtx{Pos: device.HookPosBeforePulse})
		})
	})

	Context("PulseLogger", func() {
		It("should print every pulse", func() {
			buf := new(bytes.Buffer)
			logger := NewPulseLogger(log.New(buf, "", 0), nil)
			dev.AcceptHook(logger)

			_, err := dev.Pulse(0.1)

			Expect(err).NotTo(HaveOccurred())
			Expect(buf.String()).To(HavePrefix("0.0000000000, M, pulse 0.1V"))
			Expect(buf.String()).To(ContainSubstring("1e+08 ->"))
		})
	})

	Context("StepTracer", func() {
		It("should record one row per output dimension", func() {
			var entries []LearnerStepEntry

			recorder.EXPECT().ListTables().Return(nil)
			recorder.EXPECT().CreateTable(LearnerStepTable, LearnerStepEntry{})
			recorder.EXPECT().
				InsertData(LearnerStepTable, gomock.Any()).
				Do(func(_ string, e any) {
					entries = append(entries, e.(LearnerStepEntry))
				}).
				Times(2)

			tracer := NewStepTracer(recorder)
			tracer.Func(hooking.HookCtx{
				Pos:  experiment.HookPosLearnerStep,
				Item: namedItem("L"),
				Detail: experiment.StepDetail{
					Time:    0.5,
					Post:    []float64{1, 2},
					Truth:   []float64{3, 4},
					Updates: 7,
				},
			})

			Expect(entries).To(Equal([]LearnerStepEntry{
				{Learner: "L", Time: 0.5, Dimension: 0, Post: 1, Truth: 3, Updates: 7},
				{Learner: "L", Time: 0.5, Dimension: 1, Post: 2, Truth: 4, Updates: 7},
			}))
		})
	})

	Context("Record functions", func() {
		It("should record device histories", func() {
			dev.SaveState()
			_, _ = dev.Pulse(0.1)
			dev.SaveState()

			recorder.EXPECT().ListTables().Return(nil)
			recorder.EXPECT().CreateTable(HistoryTable, HistoryEntry{})
			recorder.EXPECT().InsertData(HistoryTable,
				HistoryEntry{Device: "M", Step: 0, Resistance: 1e8})
			recorder.EXPECT().InsertData(HistoryTable,
				HistoryEntry{Device: "M", Step: 1, Resistance: dev.Resistance()})

			RecordHistory(recorder, []device.Device{dev})
		})

		It("should record experiment summaries", func() {
			res := &experiment.Result{
				Errors: [][]float64{{1, 2}},
				Interval: experiment.Interval{
					Mean:  []float64{1, 2},
					Upper: []float64{1, 2},
					Lower: []float64{1, 2},
				},
			}

			recorder.EXPECT().ListTables().Return(nil).Times(2)
			recorder.EXPECT().CreateTable(ExperimentErrTable, ExperimentErrorEntry{})
			recorder.EXPECT().CreateTable(ExperimentCITable, ExperimentCIEntry{})
			recorder.EXPECT().InsertData(ExperimentErrTable, gomock.Any()).Times(2)
			recorder.EXPECT().
				InsertData(ExperimentCITable, ExperimentCIEntry{
					Experiment: "mPES", Block: 0, Mean: 1, Upper: 1, Lower: 1,
				})
			recorder.EXPECT().
				InsertData(ExperimentCITable, ExperimentCIEntry{
					Experiment: "mPES", Block: 1, Mean: 2, Upper: 2, Lower: 2,
				})

			RecordSummary(recorder, "mPES", res)
		})

		It("should write curves into SQLite", func() {
			path := filepath.Join(GinkgoT().TempDir(), "curve")
			db := datarecording.New(path)

			RecordCurve(db, "sweep", []characterize.Point{
				{Pulse: 1, Resistance: 2.5e8},
				{Pulse: 2, Resistance: 1e8},
			})
			Expect(db.Close()).To(Succeed())

			reader := datarecording.NewReader(path + ".sqlite3")
			defer reader.Close()

			entries, err := datarecording.QueryAll[CurveEntry](
				context.Background(), reader, CurveTable,
				datarecording.QueryParams{OrderBy: "Pulse"})

			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(Equal([]CurveEntry{
				{Sweep: "sweep", Pulse: 1, Resistance: 2.5e8},
				{Sweep: "sweep", Pulse: 2, Resistance: 1e8},
			}))
		})
	})
})
