package tracing

import (
	"log"

	"github.com/sarchlab/memristor/device"
	"github.com/sarchlab/memristor/sim/hooking"
	"github.com/sarchlab/memristor/sim/timing"
)

// PulseLogger prints one line for every pulse a device receives.
type PulseLogger struct {
	hooking.LogHookBase

	timeTeller timing.TimeTeller
}

// NewPulseLogger creates a PulseLogger. The time teller may be nil.
func NewPulseLogger(logger *log.Logger, timeTeller timing.TimeTeller) *PulseLogger {
	return &PulseLogger{
		LogHookBase: hooking.NewLogHookBase(logger),
		timeTeller:  timeTeller,
	}
}

// Func writes the log line.
func (l *PulseLogger) Func(ctx hooking.HookCtx) {
	if ctx.Pos != device.HookPosAfterPulse {
		return
	}

	detail := ctx.Detail.(device.PulseDetail)

	now := 0.0
	if l.timeTeller != nil {
		now = l.timeTeller.Now()
	}

	l.Printf("%.10f, %s, pulse %gV, n=%.6g, %.6g -> %.6g ohm",
		now, nameOf(ctx.Item), detail.Voltage, detail.PulseNumber,
		detail.Before, detail.After)
}
