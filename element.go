package panes

// Element is the box a Position writes its styles to. It stands in for a DOM
// element: the host reads the inline styles back when it lays out and draws.
type Element interface {
	// IsConnected reports whether the element is attached to a live
	// document. Detached elements are treated as absent.
	IsConnected() bool
	// ComputedStyle returns the element's resolved style.
	ComputedStyle() ComputedStyle
	// OffsetSize returns the rendered border-box size.
	OffsetSize() (width, height float64)
	// ParentClientSize returns the client box of the element's parent. ok is
	// false when there is no parent.
	ParentClientSize() (width, height float64, ok bool)
	// Style returns an inline style property, or "" when unset.
	Style(name string) string
	// SetStyle sets an inline style property; "" removes it.
	SetStyle(name, value string)
}

// ComputedStyle is the subset of resolved style the position engine reads.
type ComputedStyle struct {
	MarginLeft, MarginTop                    float64
	MinWidth, MaxWidth, MinHeight, MaxHeight Value
	WillChange                               string
}

// Parent owns a Position and supplies the element it positions.
type Parent interface {
	ElementTarget() Element
}

// Positionable is implemented by parents that can switch positioning off.
// When Positionable returns false every position update is a no-op.
type Positionable interface {
	Positionable() bool
}

// Resizable is implemented by parents whose size the host may change
// directly (for example through a resize handle).
type Resizable interface {
	Resizable() bool
}

// IsPositionable reports whether p allows position updates. Parents that do
// not implement Positionable allow them.
func IsPositionable(p Parent) bool {
	if pp, ok := p.(Positionable); ok {
		return pp.Positionable()
	}
	return true
}

// IsResizable reports whether p allows host driven resizing. Parents that do
// not implement Resizable are not resizable.
func IsResizable(p Parent) bool {
	if r, ok := p.(Resizable); ok {
		return r.Resizable()
	}
	return false
}

// targetElement returns the connected element of p, or nil.
func targetElement(p Parent) Element {
	if p == nil {
		return nil
	}
	el := p.ElementTarget()
	if el == nil || !el.IsConnected() {
		return nil
	}
	return el
}

// Minimizable is implemented by parents that can collapse to their header.
// While minimized, min-width / min-height are not enforced.
type Minimizable interface {
	Minimized() bool
}

func isMinimized(p Parent) bool {
	if m, ok := p.(Minimizable); ok {
		return m.Minimized()
	}
	return false
}
