package characterize

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/memristor/device"
	"github.com/sarchlab/memristor/sim/hooking"
	"github.com/sarchlab/memristor/sim/timing"
)

var _ = Describe("Sweeper", func() {
	var (
		engine  *timing.SerialEngine
		builder Builder
	)

	BeforeEach(func() {
		engine = timing.NewSerialEngine()
		builder = MakeBuilder().WithEngine(engine)
	})

	It("should sweep down from RMax with positive pulses", func() {
		d := device.MakeBuilder().WithSeed(1).Build("M")
		s := builder.WithMaxPulses(50).Build("Sweeper", d)

		s.Start()
		Expect(engine.Run()).To(Succeed())

		points := s.Points()
		Expect(points).To(HaveLen(50))
		Expect(s.Reason()).To(Equal(ReachedMaxPulses))
		Expect(points[0]).To(Equal(Point{Pulse: 1, Resistance: device.DefaultRMax}))
		for i := 1; i < len(points); i++ {
			Expect(points[i].Pulse).To(Equal(i + 1))
			Expect(points[i].Resistance).
				To(BeNumerically("<", points[i-1].Resistance))
		}
	})

	It("should stop at the threshold", func() {
		d := device.MakeBuilder().
			WithRMin(100).
			WithRMax(1000).
			WithSeed(1).
			Build("M")
		s := builder.WithThreshold(500).Build("Sweeper", d)

		s.Start()
		Expect(engine.Run()).To(Succeed())

		Expect(s.Reason()).To(Equal(ReachedThreshold))
		Expect(s.Points()).NotTo(BeEmpty())
		for _, p := range s.Points() {
			Expect(p.Resistance).To(BeNumerically(">=", 600))
		}
		Expect(d.Resistance()).To(BeNumerically("<", 600))
	})

	It("should sweep up from RMin with negative pulses", func() {
		d := device.MakeBuilder().WithBidirectional().WithSeed(1).Build("M")
		s := builder.WithVoltage(-1).WithMaxPulses(20).Build("Sweeper", d)

		s.Start()
		Expect(engine.Run()).To(Succeed())

		points := s.Points()
		Expect(points).To(HaveLen(20))
		Expect(points[0].Resistance).To(Equal(device.DefaultRMin))
		for i := 1; i < len(points); i++ {
			Expect(points[i].Resistance).
				To(BeNumerically(">", points[i-1].Resistance))
		}
	})

	It("should report every point through hooks", func() {
		var seen []Point
		d := device.MakeBuilder().WithSeed(1).Build("M")
		s := builder.WithMaxPulses(5).Build("Sweeper", d)
		s.AcceptHook(hooking.HookFunc(func(ctx hooking.HookCtx) {
			if ctx.Pos == HookPosSweepPoint {
				seen = append(seen, ctx.Detail.(Point))
			}
		}))

		s.Start()
		Expect(engine.Run()).To(Succeed())

		Expect(seen).To(Equal(s.Points()))
	})

	It("should stop on device errors", func() {
		d := device.MakeBuilder().WithLaw(nil).WithSeed(1).Build("M")
		s := builder.Build("Sweeper", d)

		s.Start()
		err := engine.Run()

		Expect(errors.Is(err, device.ErrNotImplemented)).To(BeTrue())
		Expect(s.Reason()).To(Equal(Failed))
		Expect(s.Points()).To(HaveLen(1))
	})

	It("should need an engine and a device", func() {
		d := device.MakeBuilder().WithSeed(1).Build("M")

		Expect(func() { MakeBuilder().Build("S", d) }).To(Panic())
		Expect(func() { builder.Build("S", nil) }).To(Panic())
	})

	It("should name its stop reasons", func() {
		Expect(ReachedThreshold.String()).To(Equal("threshold"))
		Expect(ReachedMaxPulses.String()).To(Equal("max-pulses"))
	})
})
