package panes

// Positioned is anything that owns a Position. *Position implements it.
type Positioned interface {
	Position() *Position
}

// GroupDataFunc supplies per-target tween data. Returning ok false skips the
// target.
type GroupDataFunc func(i int, p *Position) (data Update, opts TweenOptions, ok bool)

// AnimationGroup fans tweens out across many positions. Targets that cannot
// be resolved are logged and skipped.
type AnimationGroup struct {
	engine *Engine
}

// To tweens every target to data.
func (g *AnimationGroup) To(targets []Positioned, data Update, opts TweenOptions) (*GroupControl, error) {
	if _, err := opts.resolve("group.to"); err != nil {
		return nil, err
	}
	return g.each(targets, "group.to", func(_ int, p *Position) (*AnimationControl, error) {
		return p.Animate().To(data, opts)
	}), nil
}

// From tweens every target from data.
func (g *AnimationGroup) From(targets []Positioned, data Update, opts TweenOptions) (*GroupControl, error) {
	if _, err := opts.resolve("group.from"); err != nil {
		return nil, err
	}
	return g.each(targets, "group.from", func(_ int, p *Position) (*AnimationControl, error) {
		return p.Animate().From(data, opts)
	}), nil
}

// FromTo tweens every target between from and to.
func (g *AnimationGroup) FromTo(targets []Positioned, from, to Update, opts TweenOptions) (*GroupControl, error) {
	if _, err := opts.resolve("group.fromTo"); err != nil {
		return nil, err
	}
	return g.each(targets, "group.fromTo", func(_ int, p *Position) (*AnimationControl, error) {
		return p.Animate().FromTo(from, to, opts)
	}), nil
}

// ToFunc tweens each target to the data fn returns for it. Option errors
// are logged per target.
func (g *AnimationGroup) ToFunc(targets []Positioned, fn GroupDataFunc) *GroupControl {
	return g.each(targets, "group.to", func(i int, p *Position) (*AnimationControl, error) {
		data, opts, ok := fn(i, p)
		if !ok {
			return nil, nil
		}
		return p.Animate().To(data, opts)
	})
}

// FromFunc is the From counterpart of ToFunc.
func (g *AnimationGroup) FromFunc(targets []Positioned, fn GroupDataFunc) *GroupControl {
	return g.each(targets, "group.from", func(i int, p *Position) (*AnimationControl, error) {
		data, opts, ok := fn(i, p)
		if !ok {
			return nil, nil
		}
		return p.Animate().From(data, opts)
	})
}

func (g *AnimationGroup) each(targets []Positioned, op string, fn func(i int, p *Position) (*AnimationControl, error)) *GroupControl {
	controls := make([]*AnimationControl, 0, len(targets))
	for i, t := range targets {
		p := g.resolve(t, i, op)
		if p == nil {
			continue
		}
		c, err := fn(i, p)
		if err != nil {
			g.engine.logger.Warn("skipping group entry", "op", op, "index", i, "err", err)
			continue
		}
		if c != nil {
			controls = append(controls, c)
		}
	}
	return newGroupControl(controls)
}

func (g *AnimationGroup) resolve(t Positioned, i int, op string) *Position {
	if t == nil || isNilPositioned(t) {
		g.engine.logger.Warn("group entry has no position", "op", op, "index", i)
		return nil
	}
	p := t.Position()
	if p == nil {
		g.engine.logger.Warn("group entry has no position", "op", op, "index", i)
		return nil
	}
	return p
}

func isNilPositioned(t Positioned) bool {
	p, ok := t.(*Position)
	return ok && p == nil
}

// QuickTo creates one QuickTo per target and returns them as a group.
func (g *AnimationGroup) QuickTo(targets []Positioned, keys []Key, opts QuickToOptions) (*GroupQuickTo, error) {
	q := &GroupQuickTo{}
	for i, t := range targets {
		p := g.resolve(t, i, "group.quickTo")
		if p == nil {
			continue
		}
		member, err := p.Animate().QuickTo(keys, opts)
		if err != nil {
			return nil, err
		}
		q.members = append(q.members, member)
	}
	return q, nil
}

// Cancel cancels the tweens of every target, leaving QuickTo tweens running.
func (g *AnimationGroup) Cancel(targets []Positioned) {
	for i, t := range targets {
		if p := g.resolve(t, i, "group.cancel"); p != nil {
			g.engine.animations.Cancel(p, CancelDefault)
		}
	}
}

// CancelAll cancels every tween of the engine.
func (g *AnimationGroup) CancelAll() {
	g.engine.animations.CancelAll()
}

// Scheduled returns the controls of every target's tweens.
func (g *AnimationGroup) Scheduled(targets []Positioned) []*AnimationControl {
	var out []*AnimationControl
	for i, t := range targets {
		if p := g.resolve(t, i, "group.scheduled"); p != nil {
			out = append(out, g.engine.animations.Scheduled(p)...)
		}
	}
	return out
}

// IsScheduled reports whether any target has a tween.
func (g *AnimationGroup) IsScheduled(targets []Positioned) bool {
	for i, t := range targets {
		if p := g.resolve(t, i, "group.isScheduled"); p != nil && g.engine.animations.IsScheduled(p) {
			return true
		}
	}
	return false
}

// GroupQuickTo drives a QuickTo per target.
type GroupQuickTo struct {
	members []*QuickTo
}

// Len returns the number of members.
func (q *GroupQuickTo) Len() int { return len(q.members) }

// Call retargets every member.
func (q *GroupQuickTo) Call(values ...Value) {
	for _, m := range q.members {
		m.Call(values...)
	}
}

// CallUpdate retargets every member.
func (q *GroupQuickTo) CallUpdate(u Update) {
	for _, m := range q.members {
		m.CallUpdate(u)
	}
}

// CallFunc retargets each member with the update fn returns for it.
func (q *GroupQuickTo) CallFunc(fn func(i int, p *Position) Update) {
	for i, m := range q.members {
		if u := fn(i, m.position); len(u) > 0 {
			m.CallUpdate(u)
		}
	}
}

// Options updates every member.
func (q *GroupQuickTo) Options(opts QuickToOptions) error {
	for _, m := range q.members {
		if err := m.Options(opts); err != nil {
			return err
		}
	}
	return nil
}

// Cancel cancels every member's current run.
func (q *GroupQuickTo) Cancel() {
	for _, m := range q.members {
		m.Cancel()
	}
}

// Control combines the members' current runs.
func (q *GroupQuickTo) Control() *GroupControl {
	controls := make([]*AnimationControl, len(q.members))
	for i, m := range q.members {
		controls[i] = m.Control()
	}
	return newGroupControl(controls)
}
