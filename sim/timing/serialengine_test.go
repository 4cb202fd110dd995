package timing

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

type sampleEvent struct {
	*EventBase
}

func newSampleEvent(t VTimeInSec, handler Handler) sampleEvent {
	return sampleEvent{EventBase: NewEventBase(t, handler)}
}

var _ = Describe("SerialEngine", func() {
	var (
		mockCtrl *gomock.Controller
		handler  *MockHandler
		engine   *SerialEngine
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		handler = NewMockHandler(mockCtrl)
		engine = NewSerialEngine()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should handle events in time order", func() {
		evt1 := newSampleEvent(2, handler)
		evt2 := newSampleEvent(1, handler)
		evt3 := newSampleEvent(1, handler)

		engine.Schedule(evt1)
		engine.Schedule(evt2)
		engine.Schedule(evt3)

		gomock.InOrder(
			handler.EXPECT().Handle(evt2).Return(nil),
			handler.EXPECT().Handle(evt3).Return(nil),
			handler.EXPECT().Handle(evt1).Return(nil),
		)

		err := engine.Run()

		Expect(err).NotTo(HaveOccurred())
		Expect(engine.Now()).To(Equal(VTimeInSec(2)))
	})

	It("should stop at the first handler error", func() {
		failure := errors.New("boom")
		evt1 := newSampleEvent(1, handler)
		evt2 := newSampleEvent(2, handler)

		engine.Schedule(evt1)
		engine.Schedule(evt2)

		handler.EXPECT().Handle(evt1).Return(failure)

		err := engine.Run()

		Expect(err).To(MatchError(failure))
		Expect(engine.Now()).To(Equal(VTimeInSec(1)))
	})

	It("should panic when scheduling into the past", func() {
		engine.Schedule(newSampleEvent(1, handler))
		handler.EXPECT().Handle(gomock.Any()).Return(nil)
		Expect(engine.Run()).To(Succeed())

		Expect(func() {
			engine.Schedule(newSampleEvent(0.5, handler))
		}).To(Panic())
	})

	It("should invoke hooks around every event", func() {
		counter := newCountingHook()
		engine.AcceptHook(counter)

		engine.Schedule(newSampleEvent(1, handler))
		handler.EXPECT().Handle(gomock.Any()).Return(nil)

		Expect(engine.Run()).To(Succeed())
		Expect(counter.before).To(Equal(1))
		Expect(counter.after).To(Equal(1))
	})

	It("should report pause state", func() {
		Expect(engine.IsPaused()).To(BeFalse())
		engine.Pause()
		Expect(engine.IsPaused()).To(BeTrue())
		engine.Continue()
		Expect(engine.IsPaused()).To(BeFalse())
	})
})
