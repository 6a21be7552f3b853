package style

import (
	"sync/atomic"

	"github.com/alexisbeaulieu97/restyle/internal/logger"
)

var activeLogger atomic.Pointer[logger.Logger]

// UseLogger routes style runtime diagnostics to l. A nil l silences them.
func UseLogger(l *logger.Logger) {
	if l == nil {
		l = logger.Nop()
	}
	activeLogger.Store(l)
}

func log() *logger.Logger {
	if l := activeLogger.Load(); l != nil {
		return l
	}
	return logger.Nop()
}
