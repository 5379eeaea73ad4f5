package panes

import (
	"fmt"
	"time"
)

// debugStats holds per-frame timing and workload metrics.
// Only populated when Engine.debug is true.
type debugStats struct {
	animateTime  time.Duration
	flushTime    time.Duration
	activeCount  int
	pendingCount int
	writeCount   int
}

// debugLog logs frame stats at debug level.
func (e *Engine) debugLog(stats debugStats) {
	if !e.debug {
		return
	}
	e.logger.Debug("frame",
		"animate", stats.animateTime,
		"flush", stats.flushTime,
		"total", stats.animateTime+stats.flushTime)
	e.logger.Debug("frame work",
		"active", stats.activeCount,
		"pending", stats.pendingCount,
		"writes", stats.writeCount)
}

// debugCheckDisposed panics with a descriptive message when a disposed
// position is used. Only called when the engine is in debug mode.
func debugCheckDisposed(p *Position, op string) {
	if p.disposed {
		panic(fmt.Sprintf("panes debug: %s on disposed position %d", op, p.id))
	}
}

// debugMaxQueue is the queued element write count above which a frame warns.
const debugMaxQueue = 1000

func (e *Engine) debugCheckQueue(n int) {
	if e.debug && n > debugMaxQueue {
		e.logger.Warn("element write queue is large", "queued", n, "threshold", debugMaxQueue)
	}
}
