package panes

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// ChangeSink is the interface for optional change forwarding.
// When set on an Engine, every element write is reported to it.
type ChangeSink interface {
	EmitChange(event ChangeEvent)
}

// ChangeEvent carries one committed element write.
type ChangeEvent struct {
	PositionID uint32
	Data       PositionData
	Changed    ChangeSet
	// Time is the engine time of the write.
	Time time.Duration
}

// DefaultViewport is the viewport of a new Engine.
var DefaultViewport = Size{Width: 800, Height: 600}

// Engine is the frame driver shared by every Position it creates. It owns
// the animation manager and the queue of pending element writes. The host
// calls Frame once per display frame; nothing else advances time.
//
// An Engine and its positions are not safe for concurrent use.
type Engine struct {
	animations *AnimationManager
	updates    updateManager
	group      *AnimationGroup

	viewport       Size
	now            time.Duration
	frameRequested bool
	onRequestFrame func()

	logger *log.Logger
	sink   ChangeSink
	debug  bool
	nextID uint32
}

// NewEngine creates an engine with a stderr warning logger and the default
// viewport.
func NewEngine() *Engine {
	e := &Engine{
		viewport: DefaultViewport,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "panes",
			Level:  log.WarnLevel,
		}),
	}
	e.animations = newAnimationManager(e)
	e.group = &AnimationGroup{engine: e}
	return e
}

// Frame advances the engine to now: pending tweens are promoted, active
// tweens step, then every queued element write is flushed.
func (e *Engine) Frame(now time.Duration) {
	e.now = now
	e.frameRequested = false

	var stats debugStats
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	e.animations.tick(float64(now) / float64(time.Millisecond))

	if e.debug {
		stats.animateTime = time.Since(t0)
		stats.activeCount = e.animations.Active()
		stats.pendingCount = e.animations.Pending()
		t0 = time.Now()
	}

	writes := e.updates.flush(e)

	if e.debug {
		stats.flushTime = time.Since(t0)
		stats.writeCount = writes
		e.debugLog(stats)
	}
}

// Now returns the time passed to the last Frame.
func (e *Engine) Now() time.Duration { return e.now }

// NeedsFrame reports whether tweens are running or element writes are
// queued.
func (e *Engine) NeedsFrame() bool {
	return e.frameRequested || e.animations.Running() || e.updates.count > 0
}

// SetFrameRequester installs fn, called whenever the engine goes from idle
// to needing a frame. Hosts with an on-demand render loop use it to wake up.
func (e *Engine) SetFrameRequester(fn func()) {
	e.onRequestFrame = fn
}

func (e *Engine) requestFrame() {
	if e.frameRequested {
		return
	}
	e.frameRequested = true
	if e.onRequestFrame != nil {
		e.onRequestFrame()
	}
}

// Viewport returns the fallback constraint box.
func (e *Engine) Viewport() Size { return e.viewport }

// SetViewport changes the fallback constraint box, usually the window size.
func (e *Engine) SetViewport(s Size) { e.viewport = s }

// Logger returns the engine logger.
func (e *Engine) Logger() *log.Logger { return e.logger }

// SetLogger replaces the engine logger. nil restores a discarding logger.
func (e *Engine) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.NewWithOptions(io.Discard, log.Options{})
	}
	e.logger = l
}

// SetChangeSink sets the optional change forwarding target.
func (e *Engine) SetChangeSink(sink ChangeSink) {
	e.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, use of a
// disposed Position panics and per-frame stats are logged at debug level.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
	if enabled && e.logger.GetLevel() > log.DebugLevel {
		e.logger.SetLevel(log.DebugLevel)
	}
}

// Animations returns the engine's animation manager.
func (e *Engine) Animations() *AnimationManager { return e.animations }

// Group returns the group animation API.
func (e *Engine) Group() *AnimationGroup { return e.group }

// NewPosition creates a Position owned by parent, which may be nil for a
// detached position. opts.Data, when set, is applied with Set.
func (e *Engine) NewPosition(parent Parent, opts Options) (*Position, error) {
	e.nextID++
	p := newPosition(e, e.nextID, parent, opts)
	if len(opts.Validators) > 0 {
		if _, err := p.validators.Add(opts.Validators...); err != nil {
			return nil, err
		}
	}
	if len(opts.Data) > 0 || parent != nil {
		p.Set(opts.Data)
	}
	return p, nil
}
