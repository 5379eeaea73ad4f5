// Package panes positions floating windows: a reactive placement engine
// with constraint validators, transform matrices and a shared tween
// scheduler, driven one frame at a time by its host.
//
// # Quick start
//
// An [Engine] owns the animation manager and the queue of element writes.
// Each pane's placement is a [Position] bound to an [Element]; [Box] is the
// in-memory element the package ships with.
//
//	e := panes.NewEngine()
//	box := panes.NewBox(320, 200)
//	pos, _ := e.NewPosition(box, panes.Options{
//		Validators: []panes.Validator{panes.NewTransformBounds(panes.SystemOptions{})},
//	})
//	pos.Set(panes.Update{panes.KeyLeft: panes.Num(40), panes.KeyTop: panes.Str("+=10%")})
//
// The host calls [Engine.Frame] once per display frame. Tweens advance and
// queued style writes are flushed there; nothing else moves time forward.
//
//	for {
//		e.Frame(time.Since(start))
//		draw(box.Layout())
//	}
//
// The desktop sub-package runs this loop on [Ebitengine].
//
// # Setting values
//
// [Position.Set] takes an [Update], a partial map of [Key] to [Value]. An
// absent key is left alone; [Null] clears a field. String values are
// relative expressions resolved against the current data:
//
//	"+=10%"   add 10% of the parent client width (or height)
//	"*=2"     double the current value
//	"-=5px"   subtract 5 pixels
//	"50%~"    half of the key's own current value
//	"0.25turn" a quarter turn, for rotation keys
//
// Malformed expressions are logged and dropped. When an element is bound,
// the candidate runs through the validators in weight order; a validator
// returning nil vetoes the whole update.
//
// # Transforms
//
// Transform keys are composed into a [Mat4] in the order they were first
// set. [Transforms.Data] gives the transformed corners and bounding rect
// that [TransformBounds] clamps against.
//
// # Animation
//
// [AnimationAPI] schedules To, From and FromTo tweens; [QuickTo] is a
// reusable tween for pointer following. Tweens snap to their destination
// when they finish and never snap when cancelled. Progress is clocked by
// [gween].
//
// # State
//
// [StateAPI] saves named snapshots. The snapshot taken on first bind is
// restored by [StateAPI.Reset].
//
// # Scenarios
//
// A TOML [Script] drives panes frame by frame for the panesim CLI and for
// tests; [Config] loads position defaults from TOML.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package panes
