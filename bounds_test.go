package panes

import (
	"testing"
)

func TestTransformBoundsFlushesRightEdge(t *testing.T) {
	e, _ := newTestEngine()
	bounds := NewTransformBounds(SystemOptions{})
	p := mustPosition(t, e, NewBox(50, 50), Options{
		Validators: []Validator{bounds},
		Data:       Update{KeyLeft: Num(790), KeyTop: Num(0), KeyWidth: Num(50), KeyHeight: Num(50)},
	})

	assertValue(t, "left", p.Left(), Num(750))
	assertValue(t, "top", p.Top(), Num(0))
	assertValue(t, "height", p.Height(), Num(50))

	// Changing the bounds re-validates.
	bounds.SetDimension(Num(700), Null())
	assertValue(t, "left after bounds change", p.Left(), Num(650))
}

func TestTransformBoundsCases(t *testing.T) {
	tests := []struct {
		name      string
		data      PositionData
		opts      SystemOptions
		margin    float64
		left, top float64
	}{
		{
			name: "inside",
			data: PositionData{Left: Num(10), Top: Num(10), Width: Num(100), Height: Num(100)},
			left: 10, top: 10,
		},
		{
			name: "above and left",
			data: PositionData{Left: Num(-30), Top: Num(-20), Width: Num(100), Height: Num(100)},
			left: 0, top: 0,
		},
		{
			name: "bottom",
			data: PositionData{Left: Num(0), Top: Num(580), Width: Num(100), Height: Num(100)},
			left: 0, top: 500,
		},
		{
			name:   "margins",
			data:   PositionData{Left: Num(0), Top: Num(0), Width: Num(100), Height: Num(100)},
			margin: 5,
			left:   0, top: 0,
		},
		{
			name: "rotated about center",
			data: PositionData{Left: Num(0), Top: Num(0), Width: Num(200), Height: Num(100), RotateZ: Num(90), TransformOrigin: OriginCenter},
			left: 0, top: 50,
		},
		{
			name: "rotated about default origin",
			data: PositionData{Left: Num(0), Top: Num(0), Width: Num(200), Height: Num(100), RotateZ: Num(90)},
			left: 100, top: 0,
		},
		{
			name: "explicit bounds",
			data: PositionData{Left: Num(150), Top: Num(0), Width: Num(100), Height: Num(100)},
			opts: SystemOptions{Width: Num(200), Height: Num(200)},
			left: 100, top: 0,
		},
		{
			name: "disabled",
			data: PositionData{Left: Num(5000), Top: Num(0), Width: Num(100), Height: Num(100)},
			opts: SystemOptions{Disabled: true},
			left: 5000, top: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewTransformBounds(tt.opts)
			data := tt.data
			var tr Transforms
			tr.Reset(data.Update())
			v := &ValidationData{
				Position:   &data,
				Transforms: &tr,
				Width:      data.Width.Or(0),
				Height:     data.Height.Or(0),
				MarginLeft: tt.margin,
				MarginTop:  tt.margin,
				Viewport:   Size{Width: 800, Height: 600},
			}
			out := b.Validate(v)
			assertNear(t, "left", out.Left.Or(-1), tt.left)
			assertNear(t, "top", out.Top.Or(-1), tt.top)
		})
	}
}

func TestClampSize(t *testing.T) {
	tests := []struct {
		name      string
		width     float64
		min, max  Value
		constrain bool
		want      float64
	}{
		{"within", 300, Num(100), Num(500), false, 300},
		{"below min", 50, Num(100), Null(), false, 100},
		{"above max", 900, Null(), Num(500), false, 500},
		{"constrained to bounds", 900, Null(), Null(), true, 800},
		{"unconstrained", 900, Null(), Null(), false, 900},
		{"min wins over max", 300, Num(400), Num(200), false, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := PositionData{Width: Num(tt.width), Height: Auto()}
			v := &ValidationData{
				Position: &data,
				Width:    tt.width,
				MinWidth: tt.min.Or(0),
				MaxWidth: tt.max,
			}
			clampSize(v, tt.constrain, 800, 600)
			assertValue(t, "width", data.Width, Num(tt.want))
			assertNear(t, "v.Width", v.Width, tt.want)
			assertValue(t, "auto height untouched", data.Height, Auto())
		})
	}
}

func TestBasicBounds(t *testing.T) {
	b := NewBasicBounds(SystemOptions{})
	data := PositionData{Left: Num(750.4), Top: Num(-10), Width: Num(100), Height: Num(100)}
	v := &ValidationData{
		Position: &data,
		Width:    100,
		Height:   100,
		Viewport: Size{Width: 800, Height: 600},
	}
	out := b.Validate(v)
	assertValue(t, "left", out.Left, Num(700))
	assertValue(t, "top", out.Top, Num(0))
}

func TestBoundsFromElement(t *testing.T) {
	container := NewBox(300, 200)
	b := NewBasicBounds(SystemOptions{Element: container})
	data := PositionData{Left: Num(250), Top: Num(180), Width: Num(100), Height: Num(50)}
	out := b.Validate(&ValidationData{Position: &data, Width: 100, Height: 50, Viewport: DefaultViewport})
	assertValue(t, "left", out.Left, Num(200))
	assertValue(t, "top", out.Top, Num(150))
}

func TestCentered(t *testing.T) {
	c := NewCentered(SystemOptions{Width: Num(1000), Height: Null()})
	assertNear(t, "left", c.Left(200, Size{Width: 800, Height: 600}), 400)
	assertNear(t, "top", c.Top(100, Size{Width: 800, Height: 600}), 250)
}

func TestBoundsWeight(t *testing.T) {
	if w := NewBasicBounds(SystemOptions{}).Weight(); w != DefaultWeight {
		t.Errorf("default weight = %v, want %v", w, DefaultWeight)
	}

	zero := 0.0
	first := NewTransformBounds(SystemOptions{Weight: &zero})
	if w := first.Weight(); w != 0 {
		t.Fatalf("weight = %v, want 0", w)
	}

	var vs Validators
	if _, err := vs.Add(NewBasicBounds(SystemOptions{}), first); err != nil {
		t.Fatal(err)
	}
	entries := vs.Entries()
	if entries[0].Validator != Validator(first) || entries[0].Weight != 0 {
		t.Errorf("first entry = %T weight %v, want the zero-weight bounds", entries[0].Validator, entries[0].Weight)
	}
}
