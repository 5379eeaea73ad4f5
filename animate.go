package panes

// AnimationAPI schedules tweens on one Position.
type AnimationAPI struct {
	position *Position
}

// To tweens from the current values to data. Relative strings resolve
// against the current values.
func (a *AnimationAPI) To(data Update, opts TweenOptions) (*AnimationControl, error) {
	return schedule(a.position, tweenTo, nil, data, opts)
}

// From tweens from data back to the current values.
func (a *AnimationAPI) From(data Update, opts TweenOptions) (*AnimationControl, error) {
	return schedule(a.position, tweenFrom, data, nil, opts)
}

// FromTo tweens from one set of values to another. Only keys present in both
// with differing values are animated.
func (a *AnimationAPI) FromTo(from, to Update, opts TweenOptions) (*AnimationControl, error) {
	return schedule(a.position, tweenFromTo, from, to, opts)
}

// QuickTo returns a reusable tween over keys.
func (a *AnimationAPI) QuickTo(keys []Key, opts QuickToOptions) (*QuickTo, error) {
	return newQuickTo(a.position, keys, opts)
}

// Cancel cancels the position's tweens, leaving QuickTo tweens running.
func (a *AnimationAPI) Cancel() {
	a.position.engine.animations.Cancel(a.position, CancelDefault)
}

// CancelWith cancels the position's tweens matching pred.
func (a *AnimationAPI) CancelWith(pred CancelPredicate) {
	a.position.engine.animations.Cancel(a.position, pred)
}

// Scheduled returns the controls of the position's tweens.
func (a *AnimationAPI) Scheduled() []*AnimationControl {
	return a.position.engine.animations.Scheduled(a.position)
}

// IsScheduled reports whether the position has any tween.
func (a *AnimationAPI) IsScheduled() bool {
	return a.position.engine.animations.IsScheduled(a.position)
}
