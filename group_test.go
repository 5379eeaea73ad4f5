package panes

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func newGroup(t *testing.T, n int) (*Engine, []*Pane, []Positioned) {
	t.Helper()
	e, _ := newTestEngine()
	root := NewBox(800, 600)
	panes := make([]*Pane, n)
	targets := make([]Positioned, n)
	for i := range panes {
		pn, err := NewPane(e, root, "p", 40, 40, Options{Data: Update{KeyLeft: Num(0), KeyTop: Num(0)}})
		if err != nil {
			t.Fatal(err)
		}
		panes[i] = pn
		targets[i] = pn
	}
	e.Frame(0)
	return e, panes, targets
}

func TestGroupTo(t *testing.T) {
	e, panes, targets := newGroup(t, 3)
	g, err := e.Group().To(targets, Update{KeyLeft: Num(100)}, TweenOptions{Duration: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Controls()) != 3 {
		t.Fatalf("controls = %d", len(g.Controls()))
	}
	if !e.Group().IsScheduled(targets) {
		t.Error("group not scheduled")
	}
	e.Frame(ms(16))
	e.Frame(ms(600))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	res, err := g.Wait(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Cancelled || !g.IsFinished() {
		t.Errorf("result = %+v finished=%v", res, g.IsFinished())
	}
	for i, pn := range panes {
		assertValue(t, "left", pn.Position().Left(), Num(100))
		if pn.Box.Style("left") != "100px" {
			t.Errorf("pane %d left style = %q", i, pn.Box.Style("left"))
		}
	}
}

func TestGroupSkipsMissingTargets(t *testing.T) {
	e, buf := newTestEngine()
	p := mustPosition(t, e, NewBox(10, 10), Options{})
	var nilPos *Position
	targets := []Positioned{nil, nilPos, p}

	g, err := e.Group().To(targets, Update{KeyTop: Num(10)}, TweenOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Controls()) != 1 {
		t.Errorf("controls = %d, want 1", len(g.Controls()))
	}
	if n := strings.Count(buf.String(), "group entry has no position"); n != 2 {
		t.Errorf("warnings = %d, want 2", n)
	}

	if _, err := e.Group().To(targets, nil, TweenOptions{Delay: -1}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v", err)
	}
}

func TestGroupFuncAndCancel(t *testing.T) {
	e, panes, targets := newGroup(t, 3)
	g := e.Group().ToFunc(targets, func(i int, _ *Position) (Update, TweenOptions, bool) {
		if i == 1 {
			return nil, TweenOptions{}, false
		}
		return Update{KeyLeft: Num(float64(i+1) * 100)}, TweenOptions{Duration: 1}, true
	})
	if len(g.Controls()) != 2 {
		t.Fatalf("controls = %d, want 2", len(g.Controls()))
	}
	e.Frame(ms(16))
	e.Frame(ms(200))

	e.Group().Cancel(targets)
	e.Frame(ms(216))
	if !g.Result().Cancelled {
		t.Error("cancelled group resolved uncancelled")
	}
	if e.Group().IsScheduled(targets) {
		t.Error("tweens left after group cancel")
	}
	assertValue(t, "skipped target", panes[1].Position().Left(), Num(0))
	if f, _ := panes[2].Position().Left().Float(); f <= 0 || f >= 300 {
		t.Errorf("cancelled target left = %v", f)
	}
}

func TestGroupQuickTo(t *testing.T) {
	e, panes, targets := newGroup(t, 2)
	q, err := e.Group().QuickTo(targets, []Key{KeyLeft, KeyTop}, QuickToOptions{Duration: 0.25})
	if err != nil {
		t.Fatal(err)
	}
	if q.Len() != 2 {
		t.Fatalf("members = %d", q.Len())
	}
	q.CallFunc(func(i int, _ *Position) Update {
		return Update{KeyLeft: Num(float64(i+1) * 50), KeyTop: Num(20)}
	})
	e.Frame(ms(16))
	e.Frame(ms(400))
	assertValue(t, "first left", panes[0].Position().Left(), Num(50))
	assertValue(t, "second left", panes[1].Position().Left(), Num(100))
	assertValue(t, "top", panes[1].Position().Top(), Num(20))
	if !q.Control().IsFinished() {
		t.Error("group quickTo not finished")
	}

	if err := q.Options(QuickToOptions{EaseName: "nope"}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Options err = %v", err)
	}
}
