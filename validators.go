package panes

import (
	"math"
	"reflect"

	"github.com/google/uuid"
)

// Validator may rewrite or veto a candidate position before it is
// committed. Returning nil vetoes the whole update.
type Validator interface {
	Validate(v *ValidationData) *PositionData
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(v *ValidationData) *PositionData

// Validate calls f.
func (f ValidatorFunc) Validate(v *ValidationData) *PositionData { return f(v) }

// Validators that implement Weighted are ordered by that weight instead of
// the default of 1.
type Weighted interface {
	Weight() float64
}

// Identified validators supply their own id.
type Identified interface {
	ID() string
}

// Invalidator validators notify subscribers when their constraints change,
// which re-runs validation of the current position. Subscribe must not call
// fn immediately.
type Invalidator interface {
	Subscribe(fn func()) func()
}

// DefaultWeight is the weight of validators that do not set one.
const DefaultWeight = 1.0

// ValidationData is handed to each validator in turn. Validators mutate
// Position in place or return a replacement.
type ValidationData struct {
	Position   *PositionData
	Parent     Parent
	El         Element
	Computed   ComputedStyle
	Transforms *Transforms

	// Width and Height are the resolved numeric size, read from the element
	// when the position size is auto / inherit.
	Width, Height         float64
	MarginLeft, MarginTop float64
	// MaxWidth and MaxHeight are null when unconstrained.
	MaxWidth, MaxHeight Value
	MinWidth, MinHeight float64

	// Viewport is the engine viewport, the fallback constraint box.
	Viewport Size
	// Rest carries caller data passed through SetOptions.Rest.
	Rest map[string]any
}

// ValidatorEntry describes a registered validator.
type ValidatorEntry struct {
	// ID is generated when empty.
	ID        string
	Validator Validator
	// Weight orders validators ascending; it must lie in [0, 1].
	Weight float64
	// Subscribe overrides the validator's own Invalidator implementation.
	Subscribe func(fn func()) func()
}

type validatorSlot struct {
	ValidatorEntry
	unsubscribe func()
}

// Validators is the weight-ordered validator list of a Position.
type Validators struct {
	entries    []*validatorSlot
	disabled   bool
	revalidate func()
}

// Enabled reports whether validation runs.
func (vs *Validators) Enabled() bool { return !vs.disabled }

// SetEnabled turns validation on or off.
func (vs *Validators) SetEnabled(enabled bool) { vs.disabled = !enabled }

// Len returns the number of registered validators.
func (vs *Validators) Len() int { return len(vs.entries) }

// Entries returns the registered validators in run order.
func (vs *Validators) Entries() []ValidatorEntry {
	out := make([]ValidatorEntry, len(vs.entries))
	for i, e := range vs.entries {
		out[i] = e.ValidatorEntry
	}
	return out
}

// Add registers validators, reading optional Weighted, Identified and
// Invalidator capabilities. It returns the ids in argument order.
func (vs *Validators) Add(validators ...Validator) ([]string, error) {
	entries := make([]ValidatorEntry, 0, len(validators))
	for _, v := range validators {
		e := ValidatorEntry{Validator: v, Weight: DefaultWeight}
		if w, ok := v.(Weighted); ok {
			e.Weight = w.Weight()
		}
		if id, ok := v.(Identified); ok {
			e.ID = id.ID()
		}
		entries = append(entries, e)
	}
	return vs.AddEntry(entries...)
}

// AddEntry registers fully described validators. Either all entries are
// added or none are.
func (vs *Validators) AddEntry(entries ...ValidatorEntry) ([]string, error) {
	seen := make(map[string]bool, len(entries))
	for i := range entries {
		e := &entries[i]
		if e.Validator == nil || isNilValidator(e.Validator) {
			return nil, argError("validators.add", "validator", "is nil")
		}
		if math.IsNaN(e.Weight) || e.Weight < 0 || e.Weight > 1 {
			return nil, argError("validators.add", "weight", "is not in [0, 1]")
		}
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if seen[e.ID] || vs.indexOf(e.ID) >= 0 {
			return nil, argError("validators.add", e.ID, "is already registered")
		}
		seen[e.ID] = true
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		slot := &validatorSlot{ValidatorEntry: e}
		subscribe := e.Subscribe
		if subscribe == nil {
			if inv, ok := e.Validator.(Invalidator); ok {
				subscribe = inv.Subscribe
			}
		}
		if subscribe != nil {
			slot.unsubscribe = subscribe(vs.invalidate)
		}

		// Equal weights keep insertion order.
		at := len(vs.entries)
		for i, cur := range vs.entries {
			if cur.Weight > e.Weight {
				at = i
				break
			}
		}
		vs.entries = append(vs.entries, nil)
		copy(vs.entries[at+1:], vs.entries[at:])
		vs.entries[at] = slot
		ids = append(ids, e.ID)
	}
	return ids, nil
}

// Remove drops the given validators and returns how many were removed.
func (vs *Validators) Remove(validators ...Validator) int {
	return vs.RemoveBy(func(e ValidatorEntry) bool {
		for _, v := range validators {
			if sameValidator(e.Validator, v) {
				return true
			}
		}
		return false
	})
}

// RemoveByID drops the validators with the given ids.
func (vs *Validators) RemoveByID(ids ...string) int {
	return vs.RemoveBy(func(e ValidatorEntry) bool {
		for _, id := range ids {
			if e.ID == id {
				return true
			}
		}
		return false
	})
}

// RemoveBy drops every validator for which match returns true. Any removal
// re-validates the current position.
func (vs *Validators) RemoveBy(match func(ValidatorEntry) bool) int {
	kept := vs.entries[:0]
	removed := 0
	for _, e := range vs.entries {
		if match(e.ValidatorEntry) {
			if e.unsubscribe != nil {
				e.unsubscribe()
			}
			removed++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(vs.entries); i++ {
		vs.entries[i] = nil
	}
	vs.entries = kept
	if removed > 0 {
		vs.invalidate()
	}
	return removed
}

// Clear drops every validator.
func (vs *Validators) Clear() {
	vs.RemoveBy(func(ValidatorEntry) bool { return true })
}

// run passes data through every validator. It returns nil on a veto.
func (vs *Validators) run(data *ValidationData) *PositionData {
	for _, e := range vs.entries {
		next := e.Validator.Validate(data)
		if next == nil {
			return nil
		}
		data.Position = next
	}
	return data.Position
}

func (vs *Validators) invalidate() {
	if vs.revalidate != nil {
		vs.revalidate()
	}
}

func (vs *Validators) indexOf(id string) int {
	for i, e := range vs.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// sameValidator compares validators without panicking on function types,
// which compare by code pointer.
func sameValidator(a, b Validator) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	if ta.Kind() == reflect.Func {
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	return false
}

func isNilValidator(v Validator) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Interface, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
