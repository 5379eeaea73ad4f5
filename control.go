package panes

import (
	"context"
	"sync"
)

// AnimationResult is delivered when a tween ends.
type AnimationResult struct {
	// Cancelled is true when the tween was cancelled or its element went
	// away before it reached its destination.
	Cancelled bool
}

// future is a one-shot completion signal.
type future struct {
	done   chan struct{}
	result AnimationResult
}

func newFuture() *future { return &future{done: make(chan struct{})} }

func (f *future) resolve(r AnimationResult) {
	select {
	case <-f.done:
		return
	default:
	}
	f.result = r
	close(f.done)
}

var closedFuture = func() *future {
	f := newFuture()
	f.resolve(AnimationResult{})
	return f
}()

// AnimationControl is the handle of one scheduled tween.
type AnimationControl struct {
	d   *animationDatum
	fut *future
}

// VoidControl stands for "no tween was created". It is finished, inactive
// and resolves uncancelled.
var VoidControl = &AnimationControl{fut: closedFuture}

func newControl(d *animationDatum) *AnimationControl {
	return &AnimationControl{d: d, fut: d.fut}
}

// IsActive reports whether the tween is running or waiting out its delay.
func (c *AnimationControl) IsActive() bool {
	if c.d == nil {
		return false
	}
	return c.d.fut == c.fut && c.d.active
}

// IsFinished reports whether the tween has ended.
func (c *AnimationControl) IsFinished() bool {
	select {
	case <-c.fut.done:
		return true
	default:
		return false
	}
}

// Done is closed when the tween ends.
func (c *AnimationControl) Done() <-chan struct{} { return c.fut.done }

// Result returns the outcome. It is only meaningful after Done is closed.
func (c *AnimationControl) Result() AnimationResult { return c.fut.result }

// Wait blocks until the tween ends or ctx is done.
func (c *AnimationControl) Wait(ctx context.Context) (AnimationResult, error) {
	select {
	case <-c.fut.done:
		return c.fut.result, nil
	case <-ctx.Done():
		return AnimationResult{}, ctx.Err()
	}
}

// Cancel stops the tween on the next frame without moving it to its
// destination. Delayed tweens are dropped at once.
func (c *AnimationControl) Cancel() {
	if c.d == nil || c.d.fut != c.fut || c.IsFinished() {
		return
	}
	c.d.cancelled = true
	if c.d.manager != nil {
		c.d.manager.dropPending(c.d)
	}
}

// IsQuickTo reports whether the tween belongs to a QuickTo.
func (c *AnimationControl) IsQuickTo() bool { return c.d != nil && c.d.quickTo }

// Position returns the position being animated, or nil once a one-shot tween
// has been cleaned up.
func (c *AnimationControl) Position() *Position {
	if c.d == nil {
		return nil
	}
	return c.d.position
}

// GroupControl combines the controls of an AnimationGroup call.
type GroupControl struct {
	controls []*AnimationControl

	once sync.Once
	fut  *future
}

func newGroupControl(controls []*AnimationControl) *GroupControl {
	return &GroupControl{controls: controls}
}

// Controls returns the member controls.
func (g *GroupControl) Controls() []*AnimationControl {
	out := make([]*AnimationControl, len(g.controls))
	copy(out, g.controls)
	return out
}

// IsActive reports whether any member is active.
func (g *GroupControl) IsActive() bool {
	for _, c := range g.controls {
		if c.IsActive() {
			return true
		}
	}
	return false
}

// IsFinished reports whether every member has finished.
func (g *GroupControl) IsFinished() bool {
	for _, c := range g.controls {
		if !c.IsFinished() {
			return false
		}
	}
	return true
}

// Done is closed once every member has ended.
func (g *GroupControl) Done() <-chan struct{} {
	g.once.Do(func() {
		g.fut = newFuture()
		go func() {
			for _, c := range g.controls {
				<-c.Done()
			}
			g.fut.resolve(g.result())
		}()
	})
	return g.fut.done
}

// Result blocks until every member has ended and reports Cancelled when any
// member was cancelled.
func (g *GroupControl) Result() AnimationResult {
	<-g.Done()
	return g.fut.result
}

// Wait blocks until every member ends or ctx is done.
func (g *GroupControl) Wait(ctx context.Context) (AnimationResult, error) {
	select {
	case <-g.Done():
		return g.fut.result, nil
	case <-ctx.Done():
		return AnimationResult{}, ctx.Err()
	}
}

// Cancel cancels every member.
func (g *GroupControl) Cancel() {
	for _, c := range g.controls {
		c.Cancel()
	}
}

func (g *GroupControl) result() AnimationResult {
	for _, c := range g.controls {
		if c.Result().Cancelled {
			return AnimationResult{Cancelled: true}
		}
	}
	return AnimationResult{}
}
