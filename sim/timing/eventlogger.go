package timing

import (
	"log"
	"reflect"

	"github.com/sarchlab/memristor/sim/hooking"
)

// EventLogger is an hook that prints the event information
type EventLogger struct {
	hooking.LogHookBase
}

// NewEventLogger returns a new EventLogger which will write in to the logger
func NewEventLogger(logger *log.Logger) *EventLogger {
	return &EventLogger{LogHookBase: hooking.NewLogHookBase(logger)}
}

type named interface {
	Name() string
}

// Func writes the event information into the logger
func (h *EventLogger) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosBeforeEvent {
		return
	}

	evt, ok := ctx.Item.(Event)
	if !ok {
		return
	}

	handlerName := reflect.TypeOf(evt.Handler()).String()
	if n, ok := evt.Handler().(named); ok {
		handlerName = n.Name()
	}

	h.Printf("%.10f, %s -> %s", evt.Time(), reflect.TypeOf(evt), handlerName)
}
