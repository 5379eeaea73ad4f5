package panes

import "math"

// Vec3 is a 3-component vector. Points passed through a Mat4 use an implicit
// w of 1.
type Vec3 [3]float64

// Mat4 is a 4x4 matrix stored column-major: element (row, col) lives at
// index col*4+row. This is the layout CSS matrix3d() expects.
//
//	| m[0]  m[4]  m[8]   m[12] |
//	| m[1]  m[5]  m[9]   m[13] |
//	| m[2]  m[6]  m[10]  m[14] |
//	| m[3]  m[7]  m[11]  m[15] |
type Mat4 [16]float64

// identityMat4 is the identity matrix.
var identityMat4 = Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	return identityMat4
}

// Mat4FromTranslation returns a matrix translating by v.
func Mat4FromTranslation(v Vec3) Mat4 {
	m := identityMat4
	m[12] = v[0]
	m[13] = v[1]
	m[14] = v[2]
	return m
}

// Mat4FromScaling returns a matrix scaling each axis by the matching
// component of v.
func Mat4FromScaling(v Vec3) Mat4 {
	m := identityMat4
	m[0] = v[0]
	m[5] = v[1]
	m[10] = v[2]
	return m
}

// Mat4FromXRotation returns a rotation of rad radians around the X axis.
func Mat4FromXRotation(rad float64) Mat4 {
	s, c := math.Sincos(rad)
	m := identityMat4
	m[5] = c
	m[6] = s
	m[9] = -s
	m[10] = c
	return m
}

// Mat4FromYRotation returns a rotation of rad radians around the Y axis.
func Mat4FromYRotation(rad float64) Mat4 {
	s, c := math.Sincos(rad)
	m := identityMat4
	m[0] = c
	m[2] = -s
	m[8] = s
	m[10] = c
	return m
}

// Mat4FromZRotation returns a rotation of rad radians around the Z axis.
func Mat4FromZRotation(rad float64) Mat4 {
	s, c := math.Sincos(rad)
	m := identityMat4
	m[0] = c
	m[1] = s
	m[4] = -s
	m[5] = c
	return m
}

// Multiply returns a * b. Applied to a point, b acts first and a second.
func (a Mat4) Multiply(b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		b0, b1, b2, b3 := b[col*4], b[col*4+1], b[col*4+2], b[col*4+3]
		out[col*4] = a[0]*b0 + a[4]*b1 + a[8]*b2 + a[12]*b3
		out[col*4+1] = a[1]*b0 + a[5]*b1 + a[9]*b2 + a[13]*b3
		out[col*4+2] = a[2]*b0 + a[6]*b1 + a[10]*b2 + a[14]*b3
		out[col*4+3] = a[3]*b0 + a[7]*b1 + a[11]*b2 + a[15]*b3
	}
	return out
}

// Translate returns m * Translation(v).
func (m Mat4) Translate(v Vec3) Mat4 {
	return m.Multiply(Mat4FromTranslation(v))
}

// Scale returns m * Scaling(v).
func (m Mat4) Scale(v Vec3) Mat4 {
	return m.Multiply(Mat4FromScaling(v))
}

// RotateX returns m * XRotation(rad).
func (m Mat4) RotateX(rad float64) Mat4 {
	return m.Multiply(Mat4FromXRotation(rad))
}

// RotateY returns m * YRotation(rad).
func (m Mat4) RotateY(rad float64) Mat4 {
	return m.Multiply(Mat4FromYRotation(rad))
}

// RotateZ returns m * ZRotation(rad).
func (m Mat4) RotateZ(rad float64) Mat4 {
	return m.Multiply(Mat4FromZRotation(rad))
}

// Determinant returns the determinant of m.
func (m Mat4) Determinant() float64 {
	b00 := m[0]*m[5] - m[1]*m[4]
	b01 := m[0]*m[6] - m[2]*m[4]
	b02 := m[0]*m[7] - m[3]*m[4]
	b03 := m[1]*m[6] - m[2]*m[5]
	b04 := m[1]*m[7] - m[3]*m[5]
	b05 := m[2]*m[7] - m[3]*m[6]
	b06 := m[8]*m[13] - m[9]*m[12]
	b07 := m[8]*m[14] - m[10]*m[12]
	b08 := m[8]*m[15] - m[11]*m[12]
	b09 := m[9]*m[14] - m[10]*m[13]
	b10 := m[9]*m[15] - m[11]*m[13]
	b11 := m[10]*m[15] - m[11]*m[14]
	return b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
}

// Invert returns the inverse of m. The second result is false, and the
// identity is returned, when m is singular.
func (m Mat4) Invert() (Mat4, bool) {
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	if det > -1e-12 && det < 1e-12 {
		return identityMat4, false
	}
	inv := 1.0 / det

	return Mat4{
		(a11*b11 - a12*b10 + a13*b09) * inv,
		(a02*b10 - a01*b11 - a03*b09) * inv,
		(a31*b05 - a32*b04 + a33*b03) * inv,
		(a22*b04 - a21*b05 - a23*b03) * inv,
		(a12*b08 - a10*b11 - a13*b07) * inv,
		(a00*b11 - a02*b08 + a03*b07) * inv,
		(a32*b02 - a30*b05 - a33*b01) * inv,
		(a20*b05 - a22*b02 + a23*b01) * inv,
		(a10*b10 - a11*b08 + a13*b06) * inv,
		(a01*b08 - a00*b10 - a03*b06) * inv,
		(a30*b04 - a31*b02 + a33*b00) * inv,
		(a21*b02 - a20*b04 - a23*b00) * inv,
		(a11*b07 - a10*b09 - a12*b06) * inv,
		(a00*b09 - a01*b07 + a02*b06) * inv,
		(a31*b01 - a30*b03 - a32*b00) * inv,
		(a20*b03 - a21*b01 + a22*b00) * inv,
	}, true
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Mat4) IsIdentity() bool {
	return m == identityMat4
}

// Equal reports whether every element of m is within eps of b.
func (m Mat4) Equal(b Mat4, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// TransformMat4 returns v transformed by m, dividing by the resulting w when
// it is not zero.
func (v Vec3) TransformMat4(m Mat4) Vec3 {
	x, y, z := v[0], v[1], v[2]
	w := m[3]*x + m[7]*y + m[11]*z + m[15]
	if w == 0 {
		w = 1
	}
	return Vec3{
		(m[0]*x + m[4]*y + m[8]*z + m[12]) / w,
		(m[1]*x + m[5]*y + m[9]*z + m[13]) / w,
		(m[2]*x + m[6]*y + m[10]*z + m[14]) / w,
	}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
