package experiment

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/memristor/sim/hooking"
)

type constantSource struct{}

func (constantSource) Sample(_ float64) (pre, truth []float64) {
	return []float64{1}, []float64{2}
}

var _ = Describe("Trial", func() {
	var (
		builder TrialBuilder
	)

	BeforeEach(func() {
		builder = MakeTrialBuilder().
			WithTimeStep(0.01).
			WithSimTime(10)
	})

	It("should measure the error before and after learning", func() {
		trial := builder.Build("PES", NewPES(1, 1, 0.5), constantSource{})

		res, err := trial.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Post).To(HaveLen(1000))
		Expect(res.Truth).To(HaveLen(1000))
		Expect(res.Errors).To(HaveLen(2))
		Expect(res.Errors[0]).To(BeNumerically("~", 500, 1e-9))
		Expect(res.Errors[1]).To(BeNumerically("<", 1e-6))
		Expect(res.Updates).To(BeNumerically(">", 0))
		Expect(res.Updates).To(BeNumerically("<=", 500))
		Expect(trial.Learner().Step()).To(Equal(1000))
		Expect(trial.Learner().NumSteps()).To(Equal(1000))
	})

	It("should learn from the start without inhibition", func() {
		trial := builder.WithoutInhibition().
			Build("PES", NewPES(1, 1, 0.5), constantSource{})

		res, err := trial.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Errors[0]).To(BeNumerically("<", 10))
		Expect(res.Errors[1]).To(BeNumerically("<", 1e-6))
	})

	It("should not learn when learning is off", func() {
		trial := builder.WithoutLearning().
			Build("PES", NewPES(1, 1, 0.5), constantSource{})

		res, err := trial.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Errors).To(HaveLen(2))
		Expect(res.Errors[0]).To(BeNumerically("~", 500, 1e-9))
		Expect(res.Errors[1]).To(BeNumerically("~", 500, 1e-9))
		Expect(res.Updates).To(Equal(0))
	})

	It("should measure odd blocks when learning first", func() {
		trial := builder.WithLearningFirst().
			Build("PES", NewPES(1, 1, 0.5), constantSource{})

		res, err := trial.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Errors).To(HaveLen(2))
		Expect(res.Errors[0]).To(BeNumerically("<", 1e-6))
	})

	It("should invoke learner hooks at every step", func() {
		steps := 0
		inhibited := 0
		hook := hooking.HookFunc(func(ctx hooking.HookCtx) {
			if ctx.Pos != HookPosLearnerStep {
				return
			}

			steps++
			if ctx.Detail.(StepDetail).Inhibited {
				inhibited++
			}
		})

		trial := builder.WithHook(hook).
			Build("PES", NewPES(1, 1, 0.5), constantSource{})

		_, err := trial.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(steps).To(Equal(1000))
		Expect(inhibited).To(Equal(500))
	})

	It("should panic on a trial shorter than a block", func() {
		Expect(func() {
			builder.WithSimTime(1).Build("X", NewPES(1, 1, 1), constantSource{})
		}).To(Panic())
		Expect(func() { builder.Build("X", nil, constantSource{}) }).To(Panic())
	})

	Context("with mocks", func() {
		var (
			mockCtrl *gomock.Controller
			conn     *MockConnection
			source   *MockSource
		)

		BeforeEach(func() {
			mockCtrl = gomock.NewController(GinkgoT())
			conn = NewMockConnection(mockCtrl)
			source = NewMockSource(mockCtrl)
		})

		AfterEach(func() {
			mockCtrl.Finish()
		})

		It("should stop at the first update error", func() {
			boom := errors.New("boom")
			source.EXPECT().Sample(0.0).Return([]float64{1}, []float64{2})
			conn.EXPECT().Forward([]float64{1}).Return([]float64{0.5})
			conn.EXPECT().
				Update([]float64{-1.5}, []float64{1}).
				Return(0, boom)

			trial := builder.WithLearningFirst().Build("Mock", conn, source)
			_, err := trial.Run()

			Expect(errors.Is(err, boom)).To(BeTrue())
		})

		It("should reject outputs of the wrong size", func() {
			source.EXPECT().Sample(0.0).Return([]float64{1}, []float64{2, 3})
			conn.EXPECT().Forward([]float64{1}).Return([]float64{0.5})

			trial := builder.Build("Mock", conn, source)
			_, err := trial.Run()

			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("Run", func() {
	It("should repeat trials and summarise them", func() {
		b := MakeTrialBuilder().WithTimeStep(0.01).WithSimTime(10)
		conns := 0

		res, err := Run("PES", b, 3,
			func(int) Connection {
				conns++
				return NewPES(1, 1, 0.5)
			},
			func(int) Source { return constantSource{} })

		Expect(err).NotTo(HaveOccurred())
		Expect(conns).To(Equal(3))
		Expect(res.Errors).To(HaveLen(3))
		Expect(res.Interval.Mean[0]).To(BeNumerically("~", 500, 1e-9))
		Expect(res.Interval.Upper[0]).
			To(BeNumerically("~", res.Interval.Lower[0], 1e-9))
	})

	It("should lower the testing error of the product with mPES", func() {
		e, err := Lookup(1)
		Expect(err).NotTo(HaveOccurred())

		b := MakeTrialBuilder().WithSimTime(22.5)

		res, err := Run("mPES", b, 1,
			func(int) Connection { return e.NewMPES(0) },
			func(int) Source { return e.SourceBuilder().WithSeed(0).Build() })

		Expect(err).NotTo(HaveOccurred())

		errs := res.Errors[0]
		Expect(errs).To(HaveLen(5))
		Expect(errs[len(errs)-1]).To(BeNumerically("<", errs[0]))
	})

	It("should scale the PES learning rate with the time step", func() {
		Expect(PESLearningRate(0.001)).To(BeNumerically("~", 0.016, 1e-12))
		Expect(PESLearningRate(0.01)).
			To(BeNumerically("~", 10*PESLearningRate(0.001), 1e-12))
	})

	It("should compare mPES with its controls", func() {
		e := Experiment{
			Name:       "Small product",
			Neurons:    []int{20, 20, 10, 10},
			Dimensions: []int{2, 1, 1, 1},
			SimTime:    5,
			Target:     Product,
		}
		b := MakeTrialBuilder().WithTimeStep(0.01)

		cmp, err := Compare(e, b, 2)

		Expect(err).NotTo(HaveOccurred())
		for _, res := range []*Result{cmp.MPES, cmp.PES, cmp.NEF} {
			Expect(res.Errors).To(HaveLen(2))
			for _, errs := range res.Errors {
				Expect(errs).To(HaveLen(1))
				Expect(math.IsNaN(errs[0])).To(BeFalse())
				Expect(errs[0]).To(BeNumerically(">=", 0))
			}
		}
	})
})
