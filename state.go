package panes

import (
	"errors"
	"sort"
)

// DefaultStateName is the reserved name of the state captured the first
// time a position is bound to an element. Reset restores it.
const DefaultStateName = "#defaultData"

// DefaultRestoreDuration is the tween length in seconds of an animated
// restore when none is given.
const DefaultRestoreDuration = 0.1

// ErrStateNotFound is returned when restoring a name that was never saved.
var ErrStateNotFound = errors.New("panes: saved state not found")

// SavedState is a named snapshot of position data plus caller extras.
type SavedState struct {
	Name  string
	Data  PositionData
	Extra map[string]any
}

// StateAPI saves and restores named snapshots of one Position.
type StateAPI struct {
	position *Position
	saved    map[string]SavedState
}

func newStateAPI(p *Position) *StateAPI {
	return &StateAPI{position: p, saved: make(map[string]SavedState)}
}

// Save snapshots the current data under name.
func (s *StateAPI) Save(name string, extra map[string]any) (SavedState, error) {
	if err := checkStateName("state.save", name); err != nil {
		return SavedState{}, err
	}
	st := SavedState{Name: name, Data: s.position.data, Extra: extra}
	s.saved[name] = st
	return st, nil
}

// Set stores data under name without reading the position.
func (s *StateAPI) Set(name string, data PositionData, extra map[string]any) error {
	if err := checkStateName("state.set", name); err != nil {
		return err
	}
	s.saved[name] = SavedState{Name: name, Data: data, Extra: extra}
	return nil
}

func checkStateName(op, name string) error {
	if name == "" {
		return argError(op, "name", "is empty")
	}
	if name == DefaultStateName {
		return argError(op, name, "is reserved")
	}
	return nil
}

// Get returns the state saved under name.
func (s *StateAPI) Get(name string) (SavedState, bool) {
	st, ok := s.saved[name]
	return st, ok
}

// Default returns the state captured on first bind.
func (s *StateAPI) Default() (SavedState, bool) {
	return s.Get(DefaultStateName)
}

// Remove deletes and returns the state saved under name. The default state
// cannot be removed.
func (s *StateAPI) Remove(name string) (SavedState, bool) {
	if name == DefaultStateName {
		return SavedState{}, false
	}
	st, ok := s.saved[name]
	delete(s.saved, name)
	return st, ok
}

// Names returns the saved state names in sorted order.
func (s *StateAPI) Names() []string {
	names := make([]string, 0, len(s.saved))
	for name := range s.saved {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RestoreOptions selects how Restore re-applies a saved state.
type RestoreOptions struct {
	Name string
	// Remove deletes the state after reading it.
	Remove bool
	// Properties restricts the restore to these keys; nil restores all.
	Properties []Key
	// Silent writes the data directly, bypassing validators and the
	// element. Subscribers are still notified.
	Silent bool
	// AnimateTo tweens to the saved data instead of setting it.
	AnimateTo bool
	// Duration in seconds of the tween; zero selects DefaultRestoreDuration.
	Duration    float64
	Ease        EaseFunc
	Interpolate InterpolateFunc
}

// Restore re-applies the state saved under opts.Name. The control is
// VoidControl unless opts.AnimateTo scheduled a tween.
func (s *StateAPI) Restore(opts RestoreOptions) (SavedState, *AnimationControl, error) {
	st, ok := s.saved[opts.Name]
	if !ok {
		return SavedState{}, VoidControl, ErrStateNotFound
	}
	if opts.Remove && opts.Name != DefaultStateName {
		delete(s.saved, opts.Name)
	}

	u := st.Data.Update()
	if opts.Properties != nil {
		keep := make(Update, len(opts.Properties))
		for _, k := range opts.Properties {
			k = k.Resolve()
			if v, ok := u[k]; ok {
				keep[k] = v
			}
		}
		u = keep
	}

	p := s.position
	switch {
	case opts.Silent:
		p.applySilent(u)
	case opts.AnimateTo:
		dur := opts.Duration
		if dur == 0 {
			dur = DefaultRestoreDuration
		}
		ease := opts.Ease
		if ease == nil {
			ease = MustEase("linear")
		}
		ctrl, err := p.animate.To(u, TweenOptions{Duration: dur, Ease: ease, Interpolate: opts.Interpolate})
		if err != nil {
			return st, VoidControl, err
		}
		return st, ctrl, nil
	default:
		p.Set(u)
	}
	return st, VoidControl, nil
}

// ResetOptions configures Reset.
type ResetOptions struct {
	// KeepZIndex keeps the current zIndex instead of the default one.
	KeepZIndex bool
	// SkipSet writes the default data silently instead of through Set.
	SkipSet bool
}

// Reset cancels scheduled tweens and restores the default state. It
// reports false when no default state was captured yet.
func (s *StateAPI) Reset(opts ResetOptions) bool {
	def, ok := s.saved[DefaultStateName]
	if !ok {
		return false
	}
	p := s.position
	if p.animate.IsScheduled() {
		p.animate.Cancel()
	}
	u := def.Data.Update()
	if opts.KeepZIndex {
		u[KeyZIndex] = p.data.ZIndex
	}
	if opts.SkipSet {
		p.applySilent(u)
	} else {
		p.Set(u)
	}
	return true
}

func (s *StateAPI) saveDefault() {
	s.saved[DefaultStateName] = SavedState{Name: DefaultStateName, Data: s.position.data}
}

// applySilent stores u as is and notifies subscribers without touching the
// element.
func (p *Position) applySilent(u Update) {
	u = u.Clone()
	p.data.Apply(u)
	p.transforms.Reset(u)
	p.updateResizeObservable()
	p.updateSubscribers()
}
