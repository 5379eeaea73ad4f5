package panes

// ResizeObservation is the element box reported by the host's resize
// observer. Zero fields mean "not observed".
type ResizeObservation struct {
	ContentWidth, ContentHeight float64
	OffsetWidth, OffsetHeight   float64
}

// styleCache holds the computed style of the bound element. It is filled on
// the first Set after an element is bound and read by every later Set.
type styleCache struct {
	el       Element
	computed ComputedStyle

	marginLeft, marginTop                    float64
	maxWidth, maxHeight, minWidth, minHeight Value
	hasWillChange                            bool

	resizeObserved ResizeObservation
}

// hasData reports whether the cache was filled for el.
func (c *styleCache) hasData(el Element) bool { return c.el != nil && c.el == el }

func (c *styleCache) update(el Element) {
	c.el = el
	c.computed = el.ComputedStyle()

	if v, ok := parsePixels(el.Style("margin-left")); ok {
		c.marginLeft = v
	} else {
		c.marginLeft = c.computed.MarginLeft
	}
	if v, ok := parsePixels(el.Style("margin-top")); ok {
		c.marginTop = v
	} else {
		c.marginTop = c.computed.MarginTop
	}

	c.maxWidth = inlineOr(el, "max-width", c.computed.MaxWidth)
	c.maxHeight = inlineOr(el, "max-height", c.computed.MaxHeight)
	c.minWidth = inlineOr(el, "min-width", c.computed.MinWidth)
	c.minHeight = inlineOr(el, "min-height", c.computed.MinHeight)

	willChange := el.Style("will-change")
	if willChange == "" {
		willChange = c.computed.WillChange
	}
	c.hasWillChange = willChange != "" && willChange != "auto"
}

// reset unbinds the element, dropping the will-change hint the cache added.
func (c *styleCache) reset() {
	if c.el != nil && !c.hasWillChange {
		c.el.SetStyle("will-change", "")
	}
	*c = styleCache{}
}

// offsetWidth prefers the observed box over the element's own report.
func (c *styleCache) offsetWidth() float64 {
	if c.resizeObserved.OffsetWidth > 0 {
		return c.resizeObserved.OffsetWidth
	}
	if c.el == nil {
		return 0
	}
	w, _ := c.el.OffsetSize()
	return w
}

func (c *styleCache) offsetHeight() float64 {
	if c.resizeObserved.OffsetHeight > 0 {
		return c.resizeObserved.OffsetHeight
	}
	if c.el == nil {
		return 0
	}
	_, h := c.el.OffsetSize()
	return h
}

func inlineOr(el Element, name string, computed Value) Value {
	if v, ok := parsePixels(el.Style(name)); ok {
		return Num(v)
	}
	if _, ok := computed.Float(); ok {
		return computed
	}
	return Null()
}
