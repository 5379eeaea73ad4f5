package panes

import (
	"errors"
	"testing"
)

type weightedValidator struct {
	name   string
	weight float64
	calls  *[]string
}

func (w weightedValidator) Validate(v *ValidationData) *PositionData {
	*w.calls = append(*w.calls, w.name)
	return v.Position
}

func (w weightedValidator) Weight() float64 { return w.weight }

func TestValidatorsRunInWeightOrder(t *testing.T) {
	var calls []string
	var vs Validators
	_, err := vs.Add(
		weightedValidator{"heavy", 0.9, &calls},
		weightedValidator{"light", 0.1, &calls},
		weightedValidator{"mid-a", 0.5, &calls},
		weightedValidator{"mid-b", 0.5, &calls},
	)
	if err != nil {
		t.Fatal(err)
	}
	vs.run(&ValidationData{Position: &PositionData{}})
	want := []string{"light", "mid-a", "mid-b", "heavy"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

func TestValidatorsAddRejects(t *testing.T) {
	var vs Validators
	var nilFunc ValidatorFunc
	pass := ValidatorFunc(func(v *ValidationData) *PositionData { return v.Position })

	tests := []struct {
		name    string
		entries []ValidatorEntry
	}{
		{"nil validator", []ValidatorEntry{{Validator: nil}}},
		{"nil func", []ValidatorEntry{{Validator: nilFunc}}},
		{"weight above one", []ValidatorEntry{{Validator: pass, Weight: 1.5}}},
		{"negative weight", []ValidatorEntry{{Validator: pass, Weight: -0.5}}},
		{"duplicate id", []ValidatorEntry{{ID: "a", Validator: pass}, {ID: "a", Validator: pass}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vs.AddEntry(tt.entries...)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("err = %v, want ErrInvalidArgument", err)
			}
			if vs.Len() != 0 {
				t.Errorf("failed add registered %d validators", vs.Len())
			}
		})
	}
}

func TestValidatorsIDsAndRemove(t *testing.T) {
	var vs Validators
	revalidated := 0
	vs.revalidate = func() { revalidated++ }

	a := ValidatorFunc(func(v *ValidationData) *PositionData { return v.Position })
	b := NewTransformBounds(SystemOptions{ID: "bounds"})
	ids, err := vs.Add(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] == "" || ids[1] != "bounds" {
		t.Fatalf("ids = %v", ids)
	}

	// System changes re-run validation.
	b.SetEnabled(false)
	if revalidated != 1 {
		t.Errorf("revalidated = %d after SetEnabled, want 1", revalidated)
	}

	if n := vs.RemoveByID("bounds"); n != 1 {
		t.Errorf("RemoveByID removed %d", n)
	}
	if revalidated != 2 {
		t.Errorf("revalidated = %d after remove, want 2", revalidated)
	}
	b.SetEnabled(true)
	if revalidated != 2 {
		t.Error("removed validator still subscribed")
	}

	if n := vs.Remove(a); n != 1 {
		t.Errorf("Remove(func) removed %d", n)
	}
	if vs.Remove(a) != 0 || revalidated != 3 {
		t.Errorf("second remove: revalidated = %d", revalidated)
	}
}

func TestValidatorsDisabled(t *testing.T) {
	e, _ := newTestEngine()
	veto := ValidatorFunc(func(*ValidationData) *PositionData { return nil })
	p := mustPosition(t, e, NewBox(10, 10), Options{Validators: []Validator{veto}})
	p.Validators().SetEnabled(false)
	p.Set(Update{KeyLeft: Num(3)})
	assertValue(t, "left", p.Left(), Num(3))

	p.Validators().SetEnabled(true)
	p.Set(Update{KeyLeft: Num(4)})
	assertValue(t, "left", p.Left(), Num(3))

	p.Validators().Clear()
	p.Set(Update{KeyLeft: Num(4)})
	assertValue(t, "left", p.Left(), Num(4))
}

func TestValidatorReceivesContext(t *testing.T) {
	e, _ := newTestEngine()
	box := NewBox(120, 80)
	box.Computed = ComputedStyle{MarginLeft: 4, MarginTop: 6, MaxWidth: Num(500)}
	var got ValidationData
	spy := ValidatorFunc(func(v *ValidationData) *PositionData {
		got = *v
		return v.Position
	})
	p := mustPosition(t, e, box, Options{Validators: []Validator{spy}})
	p.SetWithOptions(Update{KeyLeft: Num(1)}, SetOptions{Rest: map[string]any{"drag": true}})

	if got.El != Element(box) || got.Parent != Parent(box) {
		t.Error("element / parent not passed")
	}
	assertNear(t, "width", got.Width, 120)
	assertNear(t, "height", got.Height, 80)
	assertNear(t, "marginLeft", got.MarginLeft, 4)
	assertNear(t, "marginTop", got.MarginTop, 6)
	assertValue(t, "maxWidth", got.MaxWidth, Num(500))
	if got.Viewport != DefaultViewport {
		t.Errorf("viewport = %+v", got.Viewport)
	}
	if got.Rest["drag"] != true {
		t.Error("rest not passed")
	}
	if got.Transforms != p.Transforms() {
		t.Error("transforms not passed")
	}
}
