package panes

// Pane is a named Box with its Position: the unit the scenario runner and
// the desktop host work with.
type Pane struct {
	Name     string
	Box      *Box
	position *Position

	minimized bool
	resizable bool
	// Disabled switches positioning off; every Set becomes a no-op.
	Disabled bool
}

// NewPane creates a Box of the given size inside root and a Position bound
// to it.
func NewPane(e *Engine, root *Box, name string, width, height float64, opts Options) (*Pane, error) {
	box := NewBox(width, height)
	box.Parent = root
	pn := &Pane{Name: name, Box: box, resizable: true}
	p, err := e.NewPosition(pn, opts)
	if err != nil {
		return nil, err
	}
	pn.position = p
	return pn, nil
}

// ElementTarget implements Parent.
func (pn *Pane) ElementTarget() Element { return pn.Box }

// Position implements Positioned.
func (pn *Pane) Position() *Position { return pn.position }

// Positionable implements Positionable.
func (pn *Pane) Positionable() bool { return !pn.Disabled }

// Resizable implements Resizable.
func (pn *Pane) Resizable() bool { return pn.resizable }

// SetResizable allows or forbids host driven resizing.
func (pn *Pane) SetResizable(resizable bool) { pn.resizable = resizable }

// Minimized implements Minimizable.
func (pn *Pane) Minimized() bool { return pn.minimized }

// SetMinimized collapses or expands the pane. Min sizes are ignored while
// minimized, so the position is re-validated.
func (pn *Pane) SetMinimized(minimized bool) {
	if pn.minimized == minimized {
		return
	}
	pn.minimized = minimized
	pn.position.Set(nil)
}

// Bounds returns the pane's current on-screen bounding rect.
func (pn *Pane) Bounds() Rect {
	return pn.Box.Layout().BoundingRect()
}
