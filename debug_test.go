package panes

import (
	"fmt"
	"strings"
	"testing"
)

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_DisposedPositionPanics(t *testing.T) {
	e, _ := newTestEngine()
	e.SetDebugMode(true)
	p := mustPosition(t, e, nil, Options{})
	p.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on Set of a disposed position, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	p.Set(Update{KeyLeft: Num(1)})
}

func TestReleaseMode_DisposedPositionNoOp(t *testing.T) {
	e, _ := newTestEngine()
	p := mustPosition(t, e, nil, Options{})
	p.Dispose()
	p.Set(Update{KeyLeft: Num(1)})
	if !p.Left().IsNull() {
		t.Errorf("disposed position changed: left = %v", p.Left())
	}
}

func TestDebugStats_Logged(t *testing.T) {
	e, buf := newTestEngine()
	e.SetDebugMode(true)
	p := mustPosition(t, e, NewBox(10, 10), Options{})
	p.Animate().To(Update{KeyLeft: Num(10)}, TweenOptions{})
	e.Frame(0)

	out := buf.String()
	for _, want := range []string{"frame work", "active=1", "writes=1", "animate="} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugMode_QueueWarning(t *testing.T) {
	e, buf := newTestEngine()
	e.SetDebugMode(true)
	for i := 0; i <= debugMaxQueue; i++ {
		p := mustPosition(t, e, NewBox(1, 1), Options{})
		p.Set(Update{KeyLeft: Num(float64(i))})
	}
	e.Frame(0)
	if !strings.Contains(buf.String(), "element write queue is large") {
		t.Error("expected queue warning")
	}

	buf.Reset()
	e.SetDebugMode(false)
	e.Frame(ms(16))
	if buf.Len() != 0 {
		t.Errorf("release mode logged: %s", buf.String())
	}
}
