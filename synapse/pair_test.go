package synapse

import (
	"errors"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/memristor/device"
)

var _ = Describe("Pair", func() {
	var (
		mockCtrl *gomock.Controller
		pos      *MockDevice
		neg      *MockDevice
		pair     *Pair
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		pos = NewMockDevice(mockCtrl)
		neg = NewMockDevice(mockCtrl)
		pair = NewPair(pos, neg)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	DescribeTable("should route exactly one pulse",
		func(adj float64, method Method, positive bool) {
			target := neg
			if positive {
				target = pos
			}

			target.EXPECT().Pulse(0.1).Return(1e7, nil)

			Expect(pair.Pulse(adj, 0.1, method)).To(Succeed())
		},
		Entry("same, positive", 0.5, Same, true),
		Entry("same, negative", -0.5, Same, false),
		Entry("inverse, positive", 0.5, Inverse, false),
		Entry("inverse, negative", -0.5, Inverse, true),
	)

	It("should not pulse on a zero adjustment", func() {
		Expect(pair.Pulse(0, 0.1, Same)).To(Succeed())
		Expect(pair.Pulse(0, 0.1, Inverse)).To(Succeed())
	})

	It("should wrap device errors", func() {
		pos.EXPECT().Pulse(0.1).Return(0.0, device.ErrZeroExponent)
		pos.EXPECT().Name().Return("P")

		err := pair.Pulse(1, 0.1, Same)

		Expect(errors.Is(err, device.ErrZeroExponent)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("P"))
	})

	It("should read the difference of the two devices", func() {
		r := DefaultReadout()
		pos.EXPECT().State(r.Metric, r.Scaled, r.Gain).Return(7.0)
		neg.EXPECT().State(r.Metric, r.Scaled, r.Gain).Return(3.0)

		Expect(pair.State(r)).To(Equal(4.0))
	})

	It("should save both devices", func() {
		pos.EXPECT().SaveState()
		neg.EXPECT().SaveState()

		pair.SaveState()
	})

	It("should refuse to share one device", func() {
		Expect(func() { NewPair(pos, pos) }).To(Panic())
		Expect(func() { NewPair(pos, nil) }).To(Panic())
	})
})

var _ = Describe("Pair of Anouk devices", func() {
	var pair *Pair

	BeforeEach(func() {
		pair = NewAnoukPair("S", rand.New(rand.NewSource(7)))
	})

	It("should only move the positive device on positive adjustments", func() {
		negBefore := pair.Negative.Resistance()
		posBefore := pair.Positive.Resistance()

		Expect(pair.Pulse(1, 0.1, Same)).To(Succeed())

		Expect(pair.Negative.Resistance()).To(Equal(negBefore))
		Expect(pair.Positive.Resistance()).NotTo(Equal(posBefore))
	})

	It("should only move the positive device on negative inverse adjustments", func() {
		negBefore := pair.Negative.Resistance()

		Expect(pair.Pulse(-1, 0.1, Inverse)).To(Succeed())

		Expect(pair.Negative.Resistance()).To(Equal(negBefore))
	})

	It("should return the new state after pulsing", func() {
		r := DefaultReadout()
		s, err := pair.PulseAndRead(-1, 0.1, Same, r)

		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(
			pair.Positive.State(r.Metric, r.Scaled, r.Gain) -
				pair.Negative.State(r.Metric, r.Scaled, r.Gain)))
	})

	It("should always read positive minus negative", func() {
		r := Readout{Metric: device.Resistance, Scaled: false, Gain: 1}

		for i := 0; i < 10; i++ {
			adj := float64(i%3 - 1)
			Expect(pair.Pulse(adj, 0.1, Same)).To(Succeed())

			Expect(pair.State(r)).To(Equal(
				pair.Positive.State(device.Resistance, false, 1) -
					pair.Negative.State(device.Resistance, false, 1)))
		}
	})

	It("should checkpoint both devices", func() {
		pair.SaveState()
		pair.SaveState()

		Expect(pair.Positive.History()).To(HaveLen(2))
		Expect(pair.Negative.History()).To(HaveLen(2))
		Expect(pair.Devices()).To(HaveLen(2))
	})
})
