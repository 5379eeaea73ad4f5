package panes

// SystemOptions configures a SystemBase.
type SystemOptions struct {
	// Constrain caps width / height at the bounds when no max is set.
	Constrain bool
	// Element supplies the bounds when Width / Height are null.
	Element Element
	// Width and Height give explicit bounds.
	Width, Height Value
	// Weight orders the validator; nil means DefaultWeight.
	Weight *float64
	// ID names the validator; empty generates one on registration.
	ID string
	// Disabled starts the system switched off.
	Disabled bool
}

// SystemBase is the shared state of the bounds validators and the initial
// placement helpers: the constraining box, whether it is enabled, and the
// subscribers that re-run validation when any of it changes.
type SystemBase struct {
	constrain bool
	element   Element
	width     Value
	height    Value
	weight    float64
	id        string
	disabled  bool

	subs   []storeSub[struct{}]
	nextID int
}

func newSystemBase(opts SystemOptions) SystemBase {
	w := DefaultWeight
	if opts.Weight != nil {
		w = *opts.Weight
	}
	return SystemBase{
		constrain: opts.Constrain,
		element:   opts.Element,
		width:     opts.Width,
		height:    opts.Height,
		weight:    w,
		id:        opts.ID,
		disabled:  opts.Disabled,
	}
}

// Enabled reports whether the system applies.
func (s *SystemBase) Enabled() bool { return !s.disabled }

// SetEnabled switches the system on or off.
func (s *SystemBase) SetEnabled(enabled bool) {
	s.disabled = !enabled
	s.notify()
}

// Constrain reports whether sizes are capped at the bounds.
func (s *SystemBase) Constrain() bool { return s.constrain }

// SetConstrain changes Constrain.
func (s *SystemBase) SetConstrain(constrain bool) {
	s.constrain = constrain
	s.notify()
}

// Element returns the constraining element, or nil.
func (s *SystemBase) Element() Element { return s.element }

// SetElement changes the constraining element.
func (s *SystemBase) SetElement(el Element) {
	s.element = el
	s.notify()
}

// Width returns the explicit bounds width.
func (s *SystemBase) Width() Value { return s.width }

// Height returns the explicit bounds height.
func (s *SystemBase) Height() Value { return s.height }

// SetDimension sets the explicit bounds; null clears either side.
func (s *SystemBase) SetDimension(width, height Value) {
	s.width, s.height = width, height
	s.notify()
}

// Weight implements Weighted.
func (s *SystemBase) Weight() float64 { return s.weight }

// ID implements Identified.
func (s *SystemBase) ID() string { return s.id }

// Subscribe implements Invalidator.
func (s *SystemBase) Subscribe(fn func()) func() {
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, storeSub[struct{}]{id: id, fn: func(struct{}) { fn() }})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *SystemBase) notify() {
	subs := make([]storeSub[struct{}], len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		sub.fn(struct{}{})
	}
}

// bounds resolves the constraining box: explicit values first, then the
// element, then the viewport.
func (s *SystemBase) bounds(viewport Size) (width, height float64) {
	width, height = viewport.Width, viewport.Height
	var elW, elH float64
	haveEl := s.element != nil
	if haveEl {
		elW, elH = s.element.OffsetSize()
	}
	if w, ok := s.width.Float(); ok {
		width = w
	} else if haveEl {
		width = elW
	}
	if h, ok := s.height.Float(); ok {
		height = h
	} else if haveEl {
		height = elH
	}
	return width, height
}

// InitialHelper places a position the first time it is bound to an element
// and has no left / top yet.
type InitialHelper interface {
	Left(width float64, viewport Size) float64
	Top(height float64, viewport Size) float64
}

// Centered centers a position within its bounds.
type Centered struct {
	SystemBase
}

// NewCentered returns a Centered helper.
func NewCentered(opts SystemOptions) *Centered {
	return &Centered{SystemBase: newSystemBase(opts)}
}

// Left returns the left offset that centers width.
func (c *Centered) Left(width float64, viewport Size) float64 {
	w, _ := c.bounds(viewport)
	return (w - width) / 2
}

// Top returns the top offset that centers height.
func (c *Centered) Top(height float64, viewport Size) float64 {
	_, h := c.bounds(viewport)
	return (h - height) / 2
}
