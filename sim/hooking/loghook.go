package hooking

import (
	"log"
)

// A LogHook is a hook that is responsible for recording information from the
// simulation as text.
type LogHook interface {
	Hook
}

// LogHookBase provides the common logic for all LogHooks.
type LogHookBase struct {
	*log.Logger
}

// NewLogHookBase wraps a logger. A nil logger falls back to the standard
// logger.
func NewLogHookBase(logger *log.Logger) LogHookBase {
	if logger == nil {
		logger = log.Default()
	}

	return LogHookBase{Logger: logger}
}
