package panes

import (
	"strconv"
)

// updateManager coalesces element writes. Positions queue themselves on
// Set and every queued position is written once when the frame flushes.
// The backing slice is reused across frames.
type updateManager struct {
	list  []*Position
	count int
}

func (u *updateManager) add(e *Engine, p *Position) {
	if p.queued {
		return
	}
	p.queued = true
	if u.count < len(u.list) {
		u.list[u.count] = p
	} else {
		u.list = append(u.list, p)
	}
	u.count++
	if u.count == 1 {
		e.requestFrame()
	}
}

// flush writes every queued position and returns how many were written.
// Positions queued by subscribers during the flush wait for the next frame.
func (u *updateManager) flush(e *Engine) int {
	n := u.count
	if n == 0 {
		return 0
	}
	e.debugCheckQueue(n)

	for i := 0; i < n; i++ {
		p := u.list[i]
		u.list[i] = nil
		p.queued = false
		if p.disposed {
			continue
		}
		if el := targetElement(p.parent); el != nil {
			p.writeElement(el)
		} else {
			p.changes = ChangeSet{}
			p.updateSubscribers()
			p.resolveElementUpdated()
		}
	}

	carried := copy(u.list, u.list[n:u.count])
	for i := carried; i < u.count; i++ {
		u.list[i] = nil
	}
	u.count = carried
	if carried > 0 {
		e.requestFrame()
	}
	return n
}

// writeElement writes the changed style groups to el, then publishes the
// new state.
func (p *Position) writeElement(el Element) {
	c := p.changes
	d := &p.data

	if p.ortho {
		if c.Left || c.Top || c.Transform {
			el.SetStyle("transform", p.transforms.CSSOrtho(d))
		}
	} else {
		if c.Left {
			el.SetStyle("left", pixelStyle(d.Left))
		}
		if c.Top {
			el.SetStyle("top", pixelStyle(d.Top))
		}
		if c.Transform {
			if p.transforms.IsActive() {
				el.SetStyle("transform", p.transforms.CSS(nil))
			} else {
				el.SetStyle("transform", "")
			}
		}
	}

	if c.ZIndex {
		if z, ok := d.ZIndex.Float(); ok {
			el.SetStyle("z-index", strconv.Itoa(int(z)))
		} else {
			el.SetStyle("z-index", "")
		}
	}
	if c.Width {
		el.SetStyle("width", sizeStyle(d.Width))
	}
	if c.Height {
		el.SetStyle("height", sizeStyle(d.Height))
	}
	if c.MaxWidth {
		el.SetStyle("max-width", pixelStyle(d.MaxWidth))
	}
	if c.MaxHeight {
		el.SetStyle("max-height", pixelStyle(d.MaxHeight))
	}
	if c.MinWidth {
		el.SetStyle("min-width", pixelStyle(d.MinWidth))
	}
	if c.MinHeight {
		el.SetStyle("min-height", pixelStyle(d.MinHeight))
	}
	if c.TransformOrigin {
		el.SetStyle("transform-origin", string(d.TransformOrigin))
	}

	p.changes = ChangeSet{}

	if p.calculateTransform || p.transform.Len() > 0 {
		p.updateTransform()
	}
	if p.engine.sink != nil && c.HasChange() {
		p.engine.sink.EmitChange(ChangeEvent{
			PositionID: p.id,
			Data:       p.data,
			Changed:    c,
			Time:       p.engine.now,
		})
	}
	p.updateSubscribers()
	p.resolveElementUpdated()
}

// updateTransform recomputes the Transform store from the committed data.
func (p *Position) updateTransform() {
	v := &ValidationData{
		Width:      p.data.Width.Or(p.styleCache.offsetWidth()),
		Height:     p.data.Height.Or(p.styleCache.offsetHeight()),
		MarginLeft: p.styleCache.marginLeft,
		MarginTop:  p.styleCache.marginTop,
	}
	p.transform.set(p.transforms.Data(&p.data, v))
}

func (p *Position) updateSubscribers() {
	p.main.set(p.data)
	for _, k := range DataKeys {
		p.fields[k].set(p.data.Get(k))
	}
	p.dimension.set(Dimension{Width: p.data.Width, Height: p.data.Height})
}

// pixelStyle formats a numeric value as px; anything else clears the style.
func pixelStyle(v Value) string {
	if f, ok := v.Float(); ok {
		return formatPixels(f)
	}
	return ""
}

func sizeStyle(v Value) string {
	switch {
	case v.IsAuto():
		return "auto"
	case v.IsInherit():
		return "inherit"
	}
	return pixelStyle(v)
}
