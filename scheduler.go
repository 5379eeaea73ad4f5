package panes

import (
	"math"
)

// DefaultDuration is the tween length in seconds when none is given.
const DefaultDuration = 1.0

// Strategy decides what happens to tweens already scheduled on a position.
type Strategy string

const (
	// StrategyNone leaves scheduled tweens alone.
	StrategyNone Strategy = ""
	// StrategyCancel cancels scheduled tweens except QuickTo ones.
	StrategyCancel Strategy = "cancel"
	// StrategyCancelAll cancels every scheduled tween.
	StrategyCancelAll Strategy = "cancelAll"
	// StrategyExclusive skips the new tween when any is scheduled.
	StrategyExclusive Strategy = "exclusive"
)

// TweenOptions configures To, From and FromTo.
type TweenOptions struct {
	// Delay in seconds before the tween starts.
	Delay float64
	// Duration in seconds. Zero selects DefaultDuration.
	Duration float64
	// Ease shapes the tween. When nil, EaseName is looked up, and when that
	// is empty too DefaultEase is used.
	Ease     EaseFunc
	EaseName string
	// Interpolate blends each key; Lerp when nil.
	Interpolate InterpolateFunc
	Strategy    Strategy
	// TransformOrigin is applied while the tween runs and restored after.
	TransformOrigin Origin
}

type tweenConfig struct {
	delay       float64
	duration    float64
	ease        EaseFunc
	interpolate InterpolateFunc
	origin      Origin
}

func (o TweenOptions) resolve(op string) (tweenConfig, error) {
	cfg := tweenConfig{
		delay:       o.Delay,
		duration:    o.Duration,
		ease:        o.Ease,
		interpolate: o.Interpolate,
		origin:      o.TransformOrigin,
	}
	if math.IsNaN(cfg.delay) || math.IsInf(cfg.delay, 0) || cfg.delay < 0 {
		return cfg, argError(op, "delay", "is not a positive number")
	}
	if math.IsNaN(cfg.duration) || math.IsInf(cfg.duration, 0) || cfg.duration < 0 {
		return cfg, argError(op, "duration", "is not a positive number")
	}
	if cfg.duration == 0 {
		cfg.duration = DefaultDuration
	}
	if cfg.ease == nil {
		name := o.EaseName
		if name == "" {
			name = DefaultEase
		}
		fn, err := Ease(name)
		if err != nil {
			return cfg, argError(op, "ease", "is not a known easing function")
		}
		cfg.ease = fn
	}
	if cfg.interpolate == nil {
		cfg.interpolate = Lerp
	}
	if cfg.origin != "" && !cfg.origin.Valid() {
		return cfg, argError(op, "transformOrigin", "is not a named transform origin")
	}
	return cfg, nil
}

type tweenKind uint8

const (
	tweenTo tweenKind = iota
	tweenFrom
	tweenFromTo
)

func (k tweenKind) op() string {
	switch k {
	case tweenFrom:
		return "animate.from"
	case tweenFromTo:
		return "animate.fromTo"
	}
	return "animate.to"
}

// schedule builds the initial / destination sets of a tween on p and hands
// it to the manager. Keys already at their target are dropped; when none are
// left VoidControl is returned.
func schedule(p *Position, kind tweenKind, from, to Update, opts TweenOptions) (*AnimationControl, error) {
	cfg, err := opts.resolve(kind.op())
	if err != nil {
		return nil, err
	}
	if p == nil || p.disposed || !IsPositionable(p.parent) {
		return VoidControl, nil
	}
	m := p.engine.animations
	if opts.Strategy != StrategyNone && !m.applyStrategy(p, opts.Strategy) {
		return VoidControl, nil
	}

	el := targetElement(p.parent)
	logger := p.engine.logger
	data := &p.data

	initial := make(map[Key]float64)
	destination := make(map[Key]float64)

	switch kind {
	case tweenTo:
		to = animatable(to)
		convertStringData(to, data, el, logger)
		for k, v := range to {
			if v.Equal(data.Get(k)) {
				continue
			}
			if f, ok := numericOrDefault(k, v); ok {
				destination[k] = f
				initial[k] = currentNumeric(k, data, el)
			}
		}
	case tweenFrom:
		from = animatable(from)
		convertStringData(from, data, el, logger)
		for k, v := range from {
			if v.Equal(data.Get(k)) {
				continue
			}
			if f, ok := numericOrDefault(k, v); ok {
				initial[k] = f
				destination[k] = currentNumeric(k, data, el)
			}
		}
	case tweenFromTo:
		from, to = animatable(from), animatable(to)
		convertStringData(from, data, el, logger)
		convertStringData(to, data, el, logger)
		for k, fv := range from {
			tv, ok := to[k]
			if !ok || fv.Equal(tv) {
				continue
			}
			f, okF := numericOrDefault(k, fv)
			t, okT := numericOrDefault(k, tv)
			if okF && okT {
				initial[k] = f
				destination[k] = t
			}
		}
	}

	if len(initial) == 0 {
		return VoidControl, nil
	}

	keys := make([]Key, 0, len(initial))
	for _, k := range DataKeys {
		if _, ok := initial[k]; ok {
			keys = append(keys, k)
		}
	}

	d := &animationDatum{
		position:               p,
		el:                     el,
		initial:                initial,
		destination:            destination,
		keys:                   keys,
		newData:                make(Update, len(keys)),
		ease:                   cfg.ease,
		interpolate:            cfg.interpolate,
		duration:               cfg.duration * 1000,
		activateAt:             m.timeNow + cfg.delay*1000,
		active:                 cfg.delay == 0,
		transformOrigin:        cfg.origin,
		transformOriginInitial: data.TransformOrigin,
		fut:                    newFuture(),
	}
	d.resetProgress()
	m.add(d)
	return newControl(d), nil
}

// animatable clones u with aliases resolved and non-animatable keys removed.
func animatable(u Update) Update {
	u = u.Clone()
	for k := range u {
		if !k.Animatable() {
			delete(u, k)
		}
	}
	return u
}

// numericOrDefault returns the number in v, or the numeric default of k when
// v is null.
func numericOrDefault(k Key, v Value) (float64, bool) {
	if f, ok := v.Float(); ok {
		return f, true
	}
	if v.IsNull() {
		return NumericDefault(k)
	}
	return 0, false
}

// applyStrategy reports whether a new tween on p may be scheduled.
func (m *AnimationManager) applyStrategy(p *Position, s Strategy) bool {
	switch s {
	case StrategyCancel:
		if m.IsScheduled(p) {
			m.Cancel(p, CancelDefault)
		}
	case StrategyCancelAll:
		if m.IsScheduled(p) {
			m.Cancel(p, CancelEvery)
		}
	case StrategyExclusive:
		if m.IsScheduled(p) {
			return false
		}
	default:
		m.engine.logger.Warn("unknown animation strategy", "strategy", string(s))
		return false
	}
	return true
}
