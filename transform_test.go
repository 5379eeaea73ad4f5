package panes

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Mat4) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-6 {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func assertVec(t *testing.T, name string, got, want Vec3) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-6 {
			t.Errorf("%s = %v, want %v", name, got, want)
			return
		}
	}
}

// sample is an invertible matrix mixing every kind of transform.
func sample() Mat4 {
	return Mat4FromTranslation(Vec3{12, -7, 3}).
		RotateZ(degToRad(33)).
		RotateX(degToRad(-12)).
		Scale(Vec3{1.5, 0.75, 2})
}

// --- Multiply ---

func TestMultiplyIdentityLeft(t *testing.T) {
	m := sample()
	assertMatrix(t, "I*M", Mat4Identity().Multiply(m), m)
}

func TestMultiplyIdentityRight(t *testing.T) {
	m := sample()
	assertMatrix(t, "M*I", m.Multiply(Mat4Identity()), m)
}

func TestMultiplyOrder(t *testing.T) {
	tr := Mat4FromTranslation(Vec3{10, 0, 0})
	rot := Mat4FromZRotation(math.Pi / 2)

	// Translation then rotation (rotation acts first on the point).
	p := Vec3{1, 0, 0}.TransformMat4(tr.Multiply(rot))
	assertVec(t, "T*R", p, Vec3{10, 1, 0})

	// Rotation then translation.
	p = Vec3{1, 0, 0}.TransformMat4(rot.Multiply(tr))
	assertVec(t, "R*T", p, Vec3{0, 11, 0})
}

// --- Invert ---

func TestInvertRoundTrip(t *testing.T) {
	m := sample()
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("expected sample to be invertible")
	}
	back, ok := inv.Invert()
	if !ok {
		t.Fatal("expected inverse to be invertible")
	}
	assertMatrix(t, "inv(inv(M))", back, m)
	assertMatrix(t, "M*inv(M)", m.Multiply(inv), Mat4Identity())
}

func TestInvertSingular(t *testing.T) {
	m := Mat4FromScaling(Vec3{0, 1, 1})
	got, ok := m.Invert()
	if ok {
		t.Fatal("expected singular matrix to fail inversion")
	}
	if !got.IsIdentity() {
		t.Errorf("singular inverse = %v, want identity", got)
	}
}

func TestDeterminant(t *testing.T) {
	assertNear(t, "det(I)", Mat4Identity().Determinant(), 1)
	assertNear(t, "det(S)", Mat4FromScaling(Vec3{2, 3, 4}).Determinant(), 24)
	assertNear(t, "det(R)", Mat4FromZRotation(1.2).Determinant(), 1)
}

// --- Rotations ---

func TestRotationsQuarterTurn(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"z", Mat4FromZRotation(math.Pi / 2), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"x", Mat4FromXRotation(math.Pi / 2), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"y", Mat4FromYRotation(math.Pi / 2), Vec3{0, 0, 1}, Vec3{1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, tt.name, tt.in.TransformMat4(tt.m), tt.want)
		})
	}
}

func TestTransformPointTranslateScale(t *testing.T) {
	m := Mat4FromTranslation(Vec3{5, 6, 0}).Scale(Vec3{2, 3, 1})
	assertVec(t, "point", Vec3{1, 1, 0}.TransformMat4(m), Vec3{7, 9, 0})
}

func TestEqualTolerance(t *testing.T) {
	a := Mat4Identity()
	b := a
	b[3] = 1e-8
	if !a.Equal(b, 1e-6) {
		t.Error("expected near-equal matrices to compare equal")
	}
	if a.Equal(b, 1e-10) {
		t.Error("expected tolerance to be respected")
	}
}
