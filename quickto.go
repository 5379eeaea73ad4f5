package panes

import (
	"math"
)

// QuickToOptions configures a QuickTo.
type QuickToOptions struct {
	// Duration in seconds. Zero selects DefaultDuration.
	Duration    float64
	Ease        EaseFunc
	EaseName    string
	Interpolate InterpolateFunc
}

// QuickTo is a reusable tween over a fixed set of keys. Each call retargets
// it: a finished QuickTo is scheduled again, while a running one keeps its
// manager entry and restarts from the current values toward the new target.
type QuickTo struct {
	position *Position
	keys     []Key
	d        *animationDatum
}

func newQuickTo(p *Position, keys []Key, opts QuickToOptions) (*QuickTo, error) {
	const op = "animate.quickTo"
	resolved := make([]Key, 0, len(keys))
	for _, k := range keys {
		rk := k.Resolve()
		if !rk.Animatable() {
			return nil, argError(op, k.String(), "is not animatable")
		}
		resolved = append(resolved, rk)
	}
	cfg, err := TweenOptions{Duration: opts.Duration, Ease: opts.Ease, EaseName: opts.EaseName, Interpolate: opts.Interpolate}.resolve(op)
	if err != nil {
		return nil, err
	}
	if p == nil || p.disposed || !IsPositionable(p.parent) {
		return &QuickTo{}, nil
	}

	el := targetElement(p.parent)
	initial := make(map[Key]float64, len(resolved))
	destination := make(map[Key]float64, len(resolved))
	for _, k := range resolved {
		v := currentNumeric(k, &p.data, el)
		initial[k] = v
		destination[k] = v
	}

	d := &animationDatum{
		position:    p,
		el:          el,
		initial:     initial,
		destination: destination,
		keys:        resolved,
		newData:     make(Update, len(resolved)),
		ease:        cfg.ease,
		interpolate: cfg.interpolate,
		duration:    cfg.duration * 1000,
		active:      true,
		finished:    true,
		quickTo:     true,
		fut:         closedFuture,
	}
	d.resetProgress()
	return &QuickTo{position: p, keys: resolved, d: d}, nil
}

// Keys returns the keys the QuickTo animates.
func (q *QuickTo) Keys() []Key {
	out := make([]Key, len(q.keys))
	copy(out, q.keys)
	return out
}

// Call retargets the keys in order; extra values are ignored.
func (q *QuickTo) Call(values ...Value) {
	if len(values) == 0 {
		return
	}
	u := make(Update, len(values))
	for i, v := range values {
		if i >= len(q.keys) {
			break
		}
		u[q.keys[i]] = v
	}
	q.CallUpdate(u)
}

// CallUpdate retargets the keys present in u. Keys outside the QuickTo are
// ignored.
func (q *QuickTo) CallUpdate(u Update) {
	if q.d == nil || len(u) == 0 || q.position.disposed {
		return
	}
	p := q.position
	d := q.d
	m := p.engine.animations
	el := targetElement(p.parent)

	for _, k := range q.keys {
		d.initial[k] = currentNumeric(k, &p.data, el)
	}

	u = u.Clone()
	for k := range u {
		if _, ok := d.destination[k]; !ok {
			delete(u, k)
		}
	}
	convertStringData(u, &p.data, el, p.engine.logger)
	for k, v := range u {
		if f, ok := numericOrDefault(k, v); ok {
			d.destination[k] = f
		}
	}
	d.el = el

	if d.finished {
		d.cancelled = false
		d.finished = false
		d.active = true
		d.current = 0
		d.activateAt = m.timeNow
		d.fut = newFuture()
		d.resetProgress()
		m.add(d)
		return
	}
	d.start = m.timeNow
	d.current = 0
}

// Options changes the duration, ease or interpolation of later calls.
func (q *QuickTo) Options(opts QuickToOptions) error {
	if q.d == nil {
		return nil
	}
	const op = "animate.quickTo"
	if math.IsNaN(opts.Duration) || math.IsInf(opts.Duration, 0) || opts.Duration < 0 {
		return argError(op, "duration", "is not a positive number")
	}
	if opts.Duration > 0 {
		q.d.duration = opts.Duration * 1000
	}
	if opts.Ease != nil {
		q.d.ease = opts.Ease
	} else if opts.EaseName != "" {
		fn, err := Ease(opts.EaseName)
		if err != nil {
			return argError(op, "ease", "is not a known easing function")
		}
		q.d.ease = fn
	}
	if opts.Interpolate != nil {
		q.d.interpolate = opts.Interpolate
	}
	q.d.resetProgress()
	return nil
}

// Control returns the handle of the current run.
func (q *QuickTo) Control() *AnimationControl {
	if q.d == nil {
		return VoidControl
	}
	return newControl(q.d)
}

// Cancel stops the current run on the next frame.
func (q *QuickTo) Cancel() {
	q.Control().Cancel()
}
