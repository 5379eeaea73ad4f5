package desktop

import (
	"math"
	"slices"
	"sort"

	"github.com/phanxgames/panes"
)

const (
	defaultDragDeadZone = 4.0  // pixels
	resizeHandleSize    = 12.0 // pixels from the bottom right corner
	dragDuration        = 0.15 // seconds of QuickTo lag behind the pointer
)

// pointer is the mouse state sampled once per frame.
type pointer struct {
	X, Y float64
	Down bool
}

type gestureMode uint8

const (
	gestureNone gestureMode = iota
	gesturePress
	gestureDrag
	gestureResize
)

// gesture tracks one press from button down to button up.
type gesture struct {
	mode           gestureMode
	pane           *panes.Pane
	startX, startY float64
	left, top      float64
	width, height  float64
}

// interaction turns pointer samples into pane moves: press to raise, drag to
// move through a QuickTo, drag the bottom right corner to resize.
type interaction struct {
	panes    []*panes.Pane
	quick    map[*panes.Pane]*panes.QuickTo
	g        gesture
	wasDown  bool
	deadZone float64
}

func newInteraction(ps []*panes.Pane) *interaction {
	return &interaction{
		panes:    ps,
		quick:    make(map[*panes.Pane]*panes.QuickTo),
		deadZone: defaultDragDeadZone,
	}
}

// handle processes one pointer sample.
func (in *interaction) handle(p pointer) error {
	switch {
	case p.Down && !in.wasDown:
		in.press(p)
	case p.Down && in.wasDown:
		if err := in.move(p); err != nil {
			return err
		}
	case !p.Down && in.wasDown:
		in.g = gesture{}
	}
	in.wasDown = p.Down
	return nil
}

func (in *interaction) press(p pointer) {
	pn, lx, ly, ok := in.hit(p.X, p.Y)
	if !ok {
		in.g = gesture{}
		return
	}
	in.raise(pn)

	pos := pn.Position()
	l := pn.Box.Layout()
	in.g = gesture{
		mode:   gesturePress,
		pane:   pn,
		startX: p.X,
		startY: p.Y,
		left:   pos.Left().Or(0),
		top:    pos.Top().Or(0),
		width:  l.Width,
		height: l.Height,
	}
	if panes.IsResizable(pn) && lx >= l.Width-resizeHandleSize && ly >= l.Height-resizeHandleSize {
		in.g.mode = gestureResize
	}
}

func (in *interaction) move(p pointer) error {
	g := &in.g
	if g.pane == nil {
		return nil
	}
	dx, dy := p.X-g.startX, p.Y-g.startY
	switch g.mode {
	case gesturePress:
		if math.Hypot(dx, dy) < in.deadZone {
			return nil
		}
		g.mode = gestureDrag
		fallthrough
	case gestureDrag:
		q, err := in.quickTo(g.pane)
		if err != nil {
			return err
		}
		q.Call(panes.Num(g.left+dx), panes.Num(g.top+dy))
	case gestureResize:
		g.pane.Position().Set(panes.Update{
			panes.KeyWidth:  panes.Num(math.Max(g.width+dx, resizeHandleSize)),
			panes.KeyHeight: panes.Num(math.Max(g.height+dy, resizeHandleSize)),
		})
	}
	return nil
}

func (in *interaction) quickTo(pn *panes.Pane) (*panes.QuickTo, error) {
	if q, ok := in.quick[pn]; ok {
		return q, nil
	}
	q, err := pn.Position().Animate().QuickTo(
		[]panes.Key{panes.KeyLeft, panes.KeyTop},
		panes.QuickToOptions{Duration: dragDuration, EaseName: "cubicOut"},
	)
	if err != nil {
		return nil, err
	}
	in.quick[pn] = q
	return q, nil
}

// raise moves pn above every other pane.
func (in *interaction) raise(pn *panes.Pane) {
	top := math.Inf(-1)
	for _, other := range in.panes {
		if other == pn {
			continue
		}
		if z, ok := other.Position().ZIndex().Float(); ok && z > top {
			top = z
		}
	}
	if math.IsInf(top, -1) {
		return
	}
	if z, ok := pn.Position().ZIndex().Float(); ok && z > top {
		return
	}
	pn.Position().SetZIndex(panes.Num(top + 1))
}

// hit returns the topmost pane under (x, y) and the point in its local box
// coordinates.
func (in *interaction) hit(x, y float64) (pn *panes.Pane, lx, ly float64, ok bool) {
	for _, cand := range drawOrder(in.panes, true) {
		l := cand.Box.Layout()
		inv, invertible := l.Matrix().Invert()
		if !invertible {
			continue
		}
		local := panes.Vec3{x, y, 0}.TransformMat4(inv)
		if local[0] >= 0 && local[0] <= l.Width && local[1] >= 0 && local[1] <= l.Height {
			return cand, local[0], local[1], true
		}
	}
	return nil, 0, 0, false
}

// drawOrder sorts panes by z-index, ties keeping declaration order. topFirst
// reverses the order for hit testing.
func drawOrder(ps []*panes.Pane, topFirst bool) []*panes.Pane {
	out := make([]*panes.Pane, len(ps))
	copy(out, ps)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Box.Layout().ZIndex < out[j].Box.Layout().ZIndex
	})
	if topFirst {
		slices.Reverse(out)
	}
	return out
}
