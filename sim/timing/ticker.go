package timing

import (
	"sync"

	"github.com/sarchlab/memristor/sim/hooking"
)

// TickEvent is a generic event that almost all the component can use to
// update their status.
type TickEvent struct {
	EventBase
}

// MakeTickEvent creates a new TickEvent
func MakeTickEvent(handler Handler, time VTimeInSec) TickEvent {
	evt := TickEvent{
		EventBase: EventBase{
			ID:      nextEventID(),
			time:    time,
			handler: handler,
		},
	}

	return evt
}

// A Ticker is an object that updates states with ticks. Tick returns true if
// the ticker made progress and wants to be ticked again in the next cycle.
type Ticker interface {
	Tick() (madeProgress bool, err error)
}

// TickScheduler can help schedule tick events.
type TickScheduler struct {
	lock      sync.Mutex
	handler   Handler
	Freq      Freq
	Engine    Engine

	nextTickTime VTimeInSec
}

// NewTickScheduler creates a scheduler for tick events.
func NewTickScheduler(
	handler Handler,
	engine Engine,
	freq Freq,
) *TickScheduler {
	ticker := new(TickScheduler)

	ticker.handler = handler
	ticker.Engine = engine
	ticker.Freq = freq
	ticker.nextTickTime = -1 // This will make sure the first tick is scheduled

	return ticker
}

// TickNow schedule a Tick event at the current time.
func (t *TickScheduler) TickNow() {
	t.lock.Lock()
	defer t.lock.Unlock()

	time := t.Now()
	if t.nextTickTime >= time {
		return
	}

	t.nextTickTime = t.Freq.ThisTick(time)
	t.schedule()
}

// TickLater will schedule a tick event at the cycle after the now time.
func (t *TickScheduler) TickLater() {
	t.lock.Lock()
	defer t.lock.Unlock()

	time := t.Freq.NextTick(t.Now())
	if t.nextTickTime >= time {
		return
	}

	t.nextTickTime = time
	t.schedule()
}

func (t *TickScheduler) schedule() {
	t.Engine.Schedule(MakeTickEvent(t.handler, t.nextTickTime))
}

// Now returns the current time of the engine.
func (t *TickScheduler) Now() VTimeInSec {
	return t.Engine.Now()
}

// TickingComponent is a hookable object that is driven by tick events. A
// programmer would only need to program a Tick function.
type TickingComponent struct {
	hooking.HookableBase
	*TickScheduler

	name   string
	ticker Ticker
}

// NewTickingComponent creates a new ticking component.
func NewTickingComponent(
	name string,
	engine Engine,
	freq Freq,
	ticker Ticker,
) *TickingComponent {
	tc := new(TickingComponent)
	tc.name = name
	tc.TickScheduler = NewTickScheduler(tc, engine, freq)
	tc.ticker = ticker

	return tc
}

// Name returns the name of the component.
func (c *TickingComponent) Name() string {
	return c.name
}

// Handle triggers the tick function of the TickingComponent
func (c *TickingComponent) Handle(e Event) error {
	ctx := hooking.HookCtx{
		Domain: c,
		Pos:    HookPosBeforeEvent,
		Item:   e,
	}
	c.InvokeHook(ctx)

	madeProgress, err := c.ticker.Tick()
	if err != nil {
		return err
	}

	if madeProgress {
		c.TickLater()
	}

	ctx.Pos = HookPosAfterEvent
	c.InvokeHook(ctx)

	return nil
}
