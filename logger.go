package turtle

import (
	"log/slog"
	"sync/atomic"
)

// discard is the default logger. Its handler reports every level as
// disabled, so log calls cost no formatting.
var discard = slog.New(slog.DiscardHandler)

// active holds the logger used by every turtle in the process.
var active atomic.Pointer[slog.Logger]

func init() {
	active.Store(discard)
}

// SetLogger routes turtle diagnostics to l. The package is silent until
// SetLogger is called; passing nil silences it again.
//
// Levels:
//   - [slog.LevelDebug]: turtle creation, Push and Pop, saved files
//   - [slog.LevelWarn]: ignored non-finite moves, low-contrast images
//
// SetLogger may be called while turtles are drawing in other goroutines.
//
//	turtle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	active.Store(l)
}

// Logger returns the logger set by SetLogger, or a silent one.
func Logger() *slog.Logger {
	return active.Load()
}
