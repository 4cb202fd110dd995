package experiment

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CyclicInhibitor", func() {
	DescribeTable("should toggle at every cycle",
		func(toggleAtZero bool, t float64, inhibited bool) {
			c := CyclicInhibitor{CycleTime: 2.5, ToggleAtZero: toggleAtZero}

			Expect(c.Inhibited(t)).To(Equal(inhibited))
			if inhibited {
				Expect(c.Step(t)).To(Equal(InhibitValue))
			} else {
				Expect(c.Step(t)).To(Equal(0.0))
			}
		},
		Entry("start", false, 0.0, false),
		Entry("first block", false, 2.4, false),
		Entry("first toggle", false, 2.5, true),
		Entry("second block", false, 4.99, true),
		Entry("second toggle", false, 5.0, false),
		Entry("start, toggled at zero", true, 0.0, true),
		Entry("first toggle, toggled at zero", true, 2.5, false),
		Entry("third block, toggled at zero", true, 6.0, true),
	)

	It("should toggle on accumulated time steps", func() {
		c := CyclicInhibitor{CycleTime: 2.5}

		Expect(c.Inhibited(249 * 0.01)).To(BeFalse())
		Expect(c.Inhibited(250 * 0.01)).To(BeTrue())
		Expect(c.Inhibited(500 * 0.01)).To(BeFalse())
	})
})
