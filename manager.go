package panes

import "github.com/tanema/gween"

// animationDatum is one scheduled tween. One-shot data drop their references
// on cleanup; QuickTo data are kept and re-armed.
type animationDatum struct {
	manager  *AnimationManager
	position *Position
	el       Element

	initial     map[Key]float64
	destination map[Key]float64
	keys        []Key
	newData     Update
	ease        EaseFunc
	interpolate InterpolateFunc

	// Times are in milliseconds of engine time.
	duration   float64
	start      float64
	current    float64
	activateAt float64

	// progress maps elapsed seconds to the eased 0..1 fraction.
	progress *gween.Tween

	active    bool
	cancelled bool
	finished  bool
	quickTo   bool

	transformOrigin        Origin
	transformOriginInitial Origin

	fut *future
}

func (d *animationDatum) resetProgress() {
	d.progress = gween.New(0, 1, float32(d.duration/1000), toTween(d.ease))
}

// CancelPredicate selects which tweens of a position a cancel applies to.
type CancelPredicate func(c *AnimationControl) bool

// CancelDefault skips QuickTo tweens.
func CancelDefault(c *AnimationControl) bool { return !c.IsQuickTo() }

// CancelEvery matches every tween.
func CancelEvery(*AnimationControl) bool { return true }

// AnimationManager advances every tween of an Engine from Engine.Frame.
// Delayed tweens wait in the pending list until their delay has elapsed.
type AnimationManager struct {
	engine  *Engine
	active  []*animationDatum
	pending []*animationDatum
	timeNow float64
	running bool
}

func newAnimationManager(e *Engine) *AnimationManager {
	return &AnimationManager{engine: e}
}

// Active returns the number of running tweens.
func (m *AnimationManager) Active() int { return len(m.active) }

// Pending returns the number of tweens waiting to start.
func (m *AnimationManager) Pending() int { return len(m.pending) }

// Running reports whether the manager needs frames.
func (m *AnimationManager) Running() bool { return m.running }

// TimeNow returns the time of the last frame in milliseconds.
func (m *AnimationManager) TimeNow() float64 { return m.timeNow }

func (m *AnimationManager) add(d *animationDatum) {
	d.manager = m
	if d.cancelled {
		m.cleanup(d)
		return
	}
	m.pending = append(m.pending, d)
	if !m.running {
		m.running = true
		m.engine.requestFrame()
	}
}

// tick runs one frame at now milliseconds. Pending tweens are promoted
// before active ones advance, so a tween promoted this frame starts at its
// initial values.
func (m *AnimationManager) tick(now float64) {
	m.timeNow = now
	if len(m.active) == 0 && len(m.pending) == 0 {
		m.running = false
		return
	}

	if len(m.pending) > 0 {
		var kept, promoted, dropped []*animationDatum
		for _, d := range m.pending {
			switch {
			case d.cancelled || (d.el != nil && !d.el.IsConnected()):
				d.cancelled = true
				dropped = append(dropped, d)
			case now >= d.activateAt:
				d.active = true
				d.start = now
				d.current = 0
				promoted = append(promoted, d)
			default:
				kept = append(kept, d)
			}
		}
		m.pending = kept
		m.active = append(m.active, promoted...)

		// Both lists are settled before any subscriber runs; a subscriber may
		// schedule or cancel tweens.
		for _, d := range dropped {
			m.cleanup(d)
		}
		for _, d := range promoted {
			if d.transformOrigin != "" && !d.cancelled {
				d.position.Set(Update{KeyTransformOrigin: OriginValue(d.transformOrigin)})
			}
		}
	}

	kept := m.active[:0]
	for _, d := range m.active {
		if d.cancelled || (d.el != nil && !d.el.IsConnected()) {
			d.cancelled = true
			m.cleanup(d)
			continue
		}

		d.current = now - d.start
		if d.current >= d.duration {
			for _, k := range d.keys {
				d.newData[k] = Num(d.destination[k])
			}
			d.position.SetWithOptions(d.newData, SetOptions{ImmediateElementUpdate: true})
			m.cleanup(d)
			continue
		}

		eased, _ := d.progress.Set(float32(d.current / 1000))
		for _, k := range d.keys {
			d.newData[k] = Num(d.interpolate(d.initial[k], d.destination[k], float64(eased)))
		}
		d.position.SetWithOptions(d.newData, SetOptions{ImmediateElementUpdate: true})
		kept = append(kept, d)
	}
	clearTail(m.active, len(kept))
	m.active = kept

	m.running = len(m.active) > 0 || len(m.pending) > 0
	if m.running {
		m.engine.requestFrame()
	}
}

func clearTail(list []*animationDatum, n int) {
	for i := n; i < len(list); i++ {
		list[i] = nil
	}
}

func (m *AnimationManager) cleanup(d *animationDatum) {
	d.active = false
	d.finished = true

	if d.transformOrigin != "" && d.position != nil {
		d.position.Set(Update{KeyTransformOrigin: OriginValue(d.transformOriginInitial)})
	}

	d.fut.resolve(AnimationResult{Cancelled: d.cancelled})

	if !d.quickTo {
		d.position = nil
		d.el = nil
		d.initial = nil
		d.destination = nil
		d.keys = nil
		d.newData = nil
		d.ease = nil
		d.interpolate = nil
		d.progress = nil
	}
}

// dropPending removes a cancelled tween that has not started yet.
func (m *AnimationManager) dropPending(d *animationDatum) {
	for i, p := range m.pending {
		if p == d {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			m.cleanup(d)
			return
		}
	}
}

// Cancel cancels the tweens of position matching pred (CancelDefault when
// nil). Running tweens stop on the next frame; pending ones are dropped now.
func (m *AnimationManager) Cancel(position *Position, pred CancelPredicate) {
	if pred == nil {
		pred = CancelDefault
	}
	for _, d := range m.active {
		if d.position == position && pred(newControl(d)) {
			d.cancelled = true
		}
	}
	var dropped []*animationDatum
	for _, d := range m.pending {
		if d.position == position && pred(newControl(d)) {
			d.cancelled = true
			dropped = append(dropped, d)
		}
	}
	for _, d := range dropped {
		m.dropPending(d)
	}
}

// CancelAll cancels every tween of every position.
func (m *AnimationManager) CancelAll() {
	for _, d := range m.active {
		d.cancelled = true
	}
	pending := append([]*animationDatum(nil), m.pending...)
	for _, d := range pending {
		d.cancelled = true
		m.dropPending(d)
	}
}

// Scheduled returns the controls of every tween of position.
func (m *AnimationManager) Scheduled(position *Position) []*AnimationControl {
	var out []*AnimationControl
	for _, d := range m.active {
		if d.position == position {
			out = append(out, newControl(d))
		}
	}
	for _, d := range m.pending {
		if d.position == position {
			out = append(out, newControl(d))
		}
	}
	return out
}

// IsScheduled reports whether position has any tween.
func (m *AnimationManager) IsScheduled(position *Position) bool {
	for _, d := range m.active {
		if d.position == position {
			return true
		}
	}
	for _, d := range m.pending {
		if d.position == position {
			return true
		}
	}
	return false
}
