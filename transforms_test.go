package panes

import (
	"strings"
	"testing"
)

func TestTransformsInsertionOrder(t *testing.T) {
	var tr Transforms
	tr.Set(KeyScale, 2)
	tr.Set(KeyRotateZ, 30)
	tr.Set(KeyTranslateX, 10)

	want := Mat4FromScaling(Vec3{2, 2, 1}).
		Multiply(Mat4FromZRotation(degToRad(30))).
		Multiply(Mat4FromTranslation(Vec3{10, 0, 0}))
	assertMatrix(t, "scale, rotateZ, translateX", tr.Mat4(nil), want)

	var other Transforms
	other.Set(KeyTranslateX, 10)
	other.Set(KeyRotateZ, 30)
	other.Set(KeyScale, 2)
	if other.Mat4(nil).Equal(want, 1e-6) {
		t.Error("different insertion order produced the same matrix")
	}
}

func TestTransformsSetAndDelete(t *testing.T) {
	var tr Transforms
	tr.Set(KeyRotation, 45)
	if v, ok := tr.Get(KeyRotateZ); !ok || v != 45 {
		t.Errorf("rotation alias: Get(rotateZ) = %v, %v", v, ok)
	}
	tr.Set(KeyLeft, 10)
	if got := tr.Order(); len(got) != 1 || got[0] != KeyRotateZ {
		t.Errorf("order = %v, want [rotateZ]", got)
	}
	tr.Set(KeyRotateZ, 60)
	if got := tr.Order(); len(got) != 1 {
		t.Errorf("re-set key duplicated in order: %v", got)
	}
	tr.Reset(Update{KeyRotateZ: Null(), KeyScale: Num(3)})
	if _, ok := tr.Get(KeyRotateZ); ok {
		t.Error("null did not remove rotateZ")
	}
	if !tr.IsActive() {
		t.Error("scale should keep the set active")
	}
	tr.Delete(KeyScale)
	if tr.IsActive() {
		t.Error("empty set reports active")
	}
}

func TestTransformsCandidateData(t *testing.T) {
	var tr Transforms
	tr.Set(KeyRotateZ, 90)

	cand := PositionData{RotateZ: Num(45), Scale: Num(2)}
	want := Mat4FromZRotation(degToRad(45)).Multiply(Mat4FromScaling(Vec3{2, 2, 1}))
	assertMatrix(t, "candidate", tr.Mat4(&cand), want)

	cand = PositionData{Scale: Num(2)}
	assertMatrix(t, "null candidate rotation", tr.Mat4(&cand), Mat4FromScaling(Vec3{2, 2, 1}))

	if got := tr.Order(); len(got) != 1 {
		t.Errorf("candidate mutated the order: %v", got)
	}
	assertMatrix(t, "stored", tr.Mat4(nil), Mat4FromZRotation(degToRad(90)))
}

func TestTransformDataNoTransform(t *testing.T) {
	var tr Transforms
	for _, origin := range append([]Origin{""}, Origins...) {
		pos := PositionData{
			Left: Num(30), Top: Num(40), Width: Num(200), Height: Num(100),
			TransformOrigin: origin,
		}
		r := tr.Data(&pos, nil).BoundingRect
		if r != (Rect{X: 30, Y: 40, Width: 200, Height: 100}) {
			t.Errorf("origin %q: rect = %+v", origin, r)
		}
	}
}

func TestTransformDataRotatedAroundCenter(t *testing.T) {
	var tr Transforms
	tr.Set(KeyRotateZ, 90)
	pos := PositionData{
		Left: Num(0), Top: Num(0), Width: Num(200), Height: Num(100),
		RotateZ: Num(90), TransformOrigin: OriginCenter,
	}
	d := tr.Data(&pos, nil)
	r := d.BoundingRect
	assertNear(t, "x", r.X, 50)
	assertNear(t, "y", r.Y, -50)
	assertNear(t, "w", r.Width, 100)
	assertNear(t, "h", r.Height, 200)

	pos.TransformOrigin = OriginTopLeft
	r = tr.Data(&pos, nil).BoundingRect
	assertNear(t, "top left x", r.X, -100)
	assertNear(t, "top left y", r.Y, 0)
}

func TestTransformDataNullOriginIsTopLeft(t *testing.T) {
	var tr Transforms
	tr.Set(KeyRotateZ, 90)
	pos := PositionData{
		Left: Num(0), Top: Num(0), Width: Num(100), Height: Num(50),
		RotateZ: Num(90),
	}
	null := tr.Data(&pos, nil)
	pos.TransformOrigin = OriginTopLeft
	topLeft := tr.Data(&pos, nil)

	for i := range null.Corners {
		assertVec(t, "corner", null.Corners[i], topLeft.Corners[i])
	}
	r := null.BoundingRect
	assertNear(t, "x", r.X, -50)
	assertNear(t, "y", r.Y, 0)
	assertNear(t, "w", r.Width, 50)
	assertNear(t, "h", r.Height, 100)

	b := NewBox(100, 50)
	b.SetStyle("transform", cssMatrix3D(Mat4FromZRotation(degToRad(90))))
	c := b.Layout().Corners()
	for i := range c {
		assertVec(t, "box corner", c[i], topLeft.Corners[i])
	}
}

func TestTransformDataUsesValidationSize(t *testing.T) {
	var tr Transforms
	pos := PositionData{Left: Num(5), Top: Num(5), Width: Auto(), Height: Null()}
	v := &ValidationData{Width: 80, Height: 60, MarginLeft: 10, MarginTop: 2}
	r := tr.Data(&pos, v).BoundingRect
	if r != (Rect{X: 15, Y: 7, Width: 80, Height: 60}) {
		t.Errorf("rect = %+v", r)
	}
	assertValue(t, "left untouched", pos.Left, Num(5))
}

func TestOrthoMatrix(t *testing.T) {
	var tr Transforms
	tr.Set(KeyTranslateX, 5)
	tr.Set(KeyRotateZ, 90)
	pos := PositionData{Left: Num(10), Top: Num(20), TranslateX: Num(5), RotateZ: Num(90), Scale: Num(2)}

	want := Mat4FromTranslation(Vec3{15, 20, 0}).
		Multiply(Mat4FromScaling(Vec3{2, 2, 1})).
		Multiply(Mat4FromZRotation(degToRad(90)))
	assertMatrix(t, "ortho", tr.Mat4Ortho(&pos), want)

	css := tr.CSSOrtho(&pos)
	if !strings.HasPrefix(css, "matrix3d(") {
		t.Fatalf("css = %q", css)
	}
	m, ok := ParseMatrix3D(css)
	if !ok {
		t.Fatalf("ParseMatrix3D(%q) failed", css)
	}
	assertMatrix(t, "css round trip", m, want)
}

func TestOriginTranslation(t *testing.T) {
	tests := []struct {
		origin Origin
		x, y   float64
	}{
		{OriginTopLeft, 0, 0},
		{OriginTopRight, 100, 0},
		{OriginCenter, 50, 25},
		{"", 0, 0},
		{OriginBottomCenter, 50, 50},
	}
	for _, tt := range tests {
		pre, post := OriginTranslation(tt.origin, 100, 50)
		assertMatrix(t, string(tt.origin)+" post", post, Mat4FromTranslation(Vec3{tt.x, tt.y, 0}))
		assertMatrix(t, string(tt.origin)+" pre", pre, Mat4FromTranslation(Vec3{-tt.x, -tt.y, 0}))
	}
	pre, post := OriginTranslation("nowhere", 100, 50)
	if !pre.IsIdentity() || !post.IsIdentity() {
		t.Error("unknown origin should be identity")
	}
}
