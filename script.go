package panes

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ScriptStep is one action of a scenario script.
type ScriptStep struct {
	Action string `toml:"action"`
	Pane   string `toml:"pane"`

	// Data is the update for set / to / from / quick, and the target of
	// from_to.
	Data map[string]any `toml:"data"`
	// From is the start of from_to.
	From map[string]any `toml:"from"`
	// Keys lists the QuickTo keys of a quick step.
	Keys []string `toml:"keys"`

	Delay    float64 `toml:"delay"`
	Duration float64 `toml:"duration"`
	Ease     string  `toml:"ease"`
	Strategy string  `toml:"strategy"`

	// Name is the state name of save / restore.
	Name       string `toml:"name"`
	Silent     bool   `toml:"silent"`
	AnimateTo  bool   `toml:"animate_to"`
	KeepZIndex bool   `toml:"keep_z_index"`

	// Width and Height are the new viewport of a resize step.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// Frames is the length of a wait step.
	Frames int `toml:"frames"`
}

// ScriptPane declares a pane created before the first step.
type ScriptPane struct {
	Name   string         `toml:"name"`
	Width  float64        `toml:"width"`
	Height float64        `toml:"height"`
	Ortho  bool           `toml:"ortho"`
	Data   map[string]any `toml:"data"`
}

// Script is a frame-stepped scenario: panes on a viewport and the actions
// applied to them, one per frame.
type Script struct {
	Viewport ViewportConfig `toml:"viewport"`
	Bounds   BoundsConfig   `toml:"bounds"`
	// FrameRate sets the simulated frame length; 60 when zero.
	FrameRate float64      `toml:"frame_rate"`
	Panes     []ScriptPane `toml:"pane"`
	Steps     []ScriptStep `toml:"step"`
}

var scriptActions = map[string]bool{
	"set": true, "to": true, "from": true, "from_to": true, "quick": true,
	"cancel": true, "save": true, "restore": true, "reset": true,
	"resize": true, "wait": true,
}

// ParseScript decodes a TOML scenario.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	names := make(map[string]bool, len(s.Panes))
	for i, p := range s.Panes {
		if p.Name == "" {
			return nil, fmt.Errorf("parse script: pane %d has no name", i)
		}
		if names[p.Name] {
			return nil, fmt.Errorf("parse script: duplicate pane %q", p.Name)
		}
		names[p.Name] = true
	}
	for i, st := range s.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action != "wait" && st.Action != "resize" && !names[st.Pane] {
			return nil, fmt.Errorf("parse script: step %d: unknown pane %q", i, st.Pane)
		}
	}
	return &s, nil
}

// LoadScript reads and decodes a TOML scenario file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	return ParseScript(data)
}

// ScriptRunner executes a Script against an Engine, one step per frame.
type ScriptRunner struct {
	engine *Engine
	root   *Box
	panes  map[string]*Pane
	order  []*Pane
	steps  []ScriptStep
	quick  map[string]*QuickTo

	frameTime time.Duration
	now       time.Duration
	cursor    int
	waitCount int
	done      bool
}

// NewScriptRunner creates the script's panes on e.
func NewScriptRunner(e *Engine, s *Script) (*ScriptRunner, error) {
	viewport := s.Viewport.Size()
	e.SetViewport(viewport)

	rate := s.FrameRate
	if rate <= 0 {
		rate = 60
	}
	r := &ScriptRunner{
		engine:    e,
		root:      NewBox(viewport.Width, viewport.Height),
		panes:     make(map[string]*Pane, len(s.Panes)),
		steps:     s.Steps,
		quick:     make(map[string]*QuickTo),
		frameTime: time.Duration(float64(time.Second) / rate),
	}

	for _, sp := range s.Panes {
		cfg := Config{
			Bounds:   s.Bounds,
			Position: PositionConfig{Ortho: sp.Ortho, Data: sp.Data},
		}
		opts, err := cfg.Options()
		if err != nil {
			return nil, fmt.Errorf("pane %q: %w", sp.Name, err)
		}
		pn, err := NewPane(e, r.root, sp.Name, sp.Width, sp.Height, opts)
		if err != nil {
			return nil, fmt.Errorf("pane %q: %w", sp.Name, err)
		}
		r.panes[sp.Name] = pn
		r.order = append(r.order, pn)
	}
	return r, nil
}

// Root returns the viewport box the panes live in.
func (r *ScriptRunner) Root() *Box { return r.root }

// Pane returns the pane with the given name.
func (r *ScriptRunner) Pane(name string) (*Pane, bool) {
	pn, ok := r.panes[name]
	return pn, ok
}

// Panes returns the panes in declaration order.
func (r *ScriptRunner) Panes() []*Pane {
	out := make([]*Pane, len(r.order))
	copy(out, r.order)
	return out
}

// Done reports whether every step was executed.
func (r *ScriptRunner) Done() bool { return r.done }

// Step executes the next step unless a wait is in progress. Call it once
// per frame before Engine.Frame.
func (r *ScriptRunner) Step() error {
	if r.done {
		return nil
	}
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++
	r.engine.logger.Debug("script step", "index", r.cursor-1, "action", st.Action, "pane", st.Pane)
	if err := r.exec(st); err != nil {
		return fmt.Errorf("step %d (%s): %w", r.cursor-1, st.Action, err)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
	return nil
}

// Run steps the script and the engine until the script is done and every
// tween has settled, or maxFrames frames have passed. It returns the number
// of frames run.
func (r *ScriptRunner) Run(maxFrames int) (int, error) {
	frames := 0
	for frames < maxFrames {
		if r.done && !r.engine.NeedsFrame() {
			break
		}
		if err := r.Step(); err != nil {
			return frames, err
		}
		r.now += r.frameTime
		r.engine.Frame(r.now)
		frames++
	}
	return frames, nil
}

func (r *ScriptRunner) exec(st ScriptStep) error {
	switch st.Action {
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
		return nil
	case "resize":
		r.root.IntrinsicWidth, r.root.IntrinsicHeight = st.Width, st.Height
		r.engine.SetViewport(Size{Width: st.Width, Height: st.Height})
		for _, pn := range r.order {
			pn.Position().Set(nil)
		}
		return nil
	}

	p := r.panes[st.Pane].Position()
	data, err := decodeUpdate(st.Data)
	if err != nil {
		return err
	}
	tween := TweenConfig{Delay: st.Delay, Duration: st.Duration, Ease: st.Ease, Strategy: st.Strategy}.Options()

	switch st.Action {
	case "set":
		p.Set(data)
	case "to":
		_, err = p.Animate().To(data, tween)
	case "from":
		_, err = p.Animate().From(data, tween)
	case "from_to":
		var from Update
		if from, err = decodeUpdate(st.From); err != nil {
			return err
		}
		_, err = p.Animate().FromTo(from, data, tween)
	case "quick":
		var q *QuickTo
		if q, err = r.quickTo(st, p); err != nil {
			return err
		}
		q.CallUpdate(data)
	case "cancel":
		p.Animate().Cancel()
	case "save":
		_, err = p.State().Save(st.Name, nil)
	case "restore":
		_, _, err = p.State().Restore(RestoreOptions{
			Name:      st.Name,
			Silent:    st.Silent,
			AnimateTo: st.AnimateTo,
			Duration:  st.Duration,
		})
	case "reset":
		if !p.State().Reset(ResetOptions{KeepZIndex: st.KeepZIndex}) {
			r.engine.logger.Warn("no default state to reset to", "pane", st.Pane)
		}
	}
	return err
}

// quickTo returns the QuickTo of a pane for the step's keys, creating it on
// first use.
func (r *ScriptRunner) quickTo(st ScriptStep, p *Position) (*QuickTo, error) {
	id := st.Pane + "/" + strings.Join(st.Keys, ",")
	if q, ok := r.quick[id]; ok {
		return q, nil
	}
	keys := make([]Key, 0, len(st.Keys))
	for _, name := range st.Keys {
		k, ok := ParseKey(name)
		if !ok {
			return nil, fmt.Errorf("unknown key %q", name)
		}
		keys = append(keys, k)
	}
	q, err := p.Animate().QuickTo(keys, QuickToOptions{Duration: st.Duration, EaseName: st.Ease})
	if err != nil {
		return nil, err
	}
	r.quick[id] = q
	return q, nil
}
