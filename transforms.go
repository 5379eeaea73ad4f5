package panes

import (
	"math"
	"strconv"
	"strings"
)

const transformKeyCount = int(KeyTranslateZ-KeyRotateX) + 1

// Transforms is the ordered set of transform keys a Position has set. The
// matrix is composed in the order keys were first set, so setting the same
// values in a different order can produce a different matrix.
type Transforms struct {
	values [transformKeyCount]float64
	order  []Key
}

func transformIndex(k Key) (int, bool) {
	k = k.Resolve()
	if !k.IsTransform() {
		return 0, false
	}
	return int(k - KeyRotateX), true
}

// Set stores v under the transform key k, appending k to the order when it
// is new. A non-finite v removes the key. Non-transform keys are ignored.
func (t *Transforms) Set(k Key, v float64) {
	i, ok := transformIndex(k)
	if !ok {
		return
	}
	k = k.Resolve()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		t.Delete(k)
		return
	}
	t.values[i] = v
	for _, o := range t.order {
		if o == k {
			return
		}
	}
	t.order = append(t.order, k)
}

// setValue is Set for a position Value; anything but a finite number
// removes the key.
func (t *Transforms) setValue(k Key, v Value) {
	f, ok := v.Float()
	if !ok {
		t.Delete(k)
		return
	}
	t.Set(k, f)
}

// Delete removes k from the set.
func (t *Transforms) Delete(k Key) {
	i, ok := transformIndex(k)
	if !ok {
		return
	}
	k = k.Resolve()
	t.values[i] = 0
	for j, o := range t.order {
		if o == k {
			t.order = append(t.order[:j], t.order[j+1:]...)
			return
		}
	}
}

// Get returns the value of k and whether it is set.
func (t *Transforms) Get(k Key) (float64, bool) {
	i, ok := transformIndex(k)
	if !ok || !t.has(k.Resolve()) {
		return 0, false
	}
	return t.values[i], true
}

func (t *Transforms) has(k Key) bool {
	for _, o := range t.order {
		if o == k {
			return true
		}
	}
	return false
}

// IsActive reports whether any transform key is set.
func (t *Transforms) IsActive() bool { return len(t.order) > 0 }

// Order returns the keys in the order they were set.
func (t *Transforms) Order() []Key {
	out := make([]Key, len(t.order))
	copy(out, t.order)
	return out
}

// Reset applies the transform keys present in u: finite numbers are set and
// anything else removes the key.
func (t *Transforms) Reset(u Update) {
	u = u.Clone()
	for _, k := range u.sortedKeys() {
		if k.IsTransform() {
			t.setValue(k, u[k])
		}
	}
}

// HasTransform reports whether any transform key of data is a finite number.
func (t *Transforms) HasTransform(data *PositionData) bool {
	for _, k := range TransformKeys {
		if _, ok := data.Get(k).Float(); ok {
			return true
		}
	}
	return false
}

// Mat4 composes the transform matrix. With data nil the stored values are
// used. Otherwise data is a candidate position: its values replace the stored
// ones for keys already in the order (a null candidate value skips the key)
// and its remaining transform keys are appended in canonical order. The
// stored state is never modified.
func (t *Transforms) Mat4(data *PositionData) Mat4 {
	m := identityMat4
	if data == nil {
		for _, k := range t.order {
			i, _ := transformIndex(k)
			m = applyTransformKey(m, k, t.values[i])
		}
		return m
	}

	var seen [transformKeyCount]bool
	for _, k := range t.order {
		i, _ := transformIndex(k)
		seen[i] = true
		if v, ok := data.Get(k).Float(); ok {
			m = applyTransformKey(m, k, v)
		}
	}
	for _, k := range TransformKeys {
		i, _ := transformIndex(k)
		if seen[i] {
			continue
		}
		if v, ok := data.Get(k).Float(); ok {
			m = applyTransformKey(m, k, v)
		}
	}
	return m
}

// Mat4Ortho composes the ortho matrix for data: left / top fold into the
// translation, which is applied first, followed by scale and then the
// rotations in order.
func (t *Transforms) Mat4Ortho(data *PositionData) Mat4 {
	tx := t.orthoValue(KeyTranslateX, data)
	ty := t.orthoValue(KeyTranslateY, data)
	tz := t.orthoValue(KeyTranslateZ, data)
	m := Mat4FromTranslation(Vec3{data.Left.Or(0) + tx, data.Top.Or(0) + ty, tz})

	if s, ok := data.Scale.Float(); ok {
		m = m.Scale(Vec3{s, s, 1})
	}

	if data.RotateX.IsNull() && data.RotateY.IsNull() && data.RotateZ.IsNull() {
		return m
	}

	var seen [3]bool
	for _, k := range t.order {
		if !k.IsRotation() {
			continue
		}
		seen[k-KeyRotateX] = true
		if v, ok := data.Get(k).Float(); ok {
			m = applyTransformKey(m, k, v)
		}
	}
	for _, k := range []Key{KeyRotateX, KeyRotateY, KeyRotateZ} {
		if seen[k-KeyRotateX] {
			continue
		}
		if v, ok := data.Get(k).Float(); ok {
			m = applyTransformKey(m, k, v)
		}
	}
	return m
}

// orthoValue prefers the stored translate value, then the one in data.
func (t *Transforms) orthoValue(k Key, data *PositionData) float64 {
	if v, ok := t.Get(k); ok {
		return v
	}
	return data.Get(k).Or(0)
}

// CSS returns the "matrix3d(...)" value for Mat4(data).
func (t *Transforms) CSS(data *PositionData) string {
	return cssMatrix3D(t.Mat4(data))
}

// CSSOrtho returns the "matrix3d(...)" value for Mat4Ortho(data).
func (t *Transforms) CSSOrtho(data *PositionData) string {
	return cssMatrix3D(t.Mat4Ortho(data))
}

// TransformData is the derived geometry of a position.
type TransformData struct {
	// BoundingRect is the axis-aligned box around Corners.
	BoundingRect Rect
	// Corners are the transformed box corners, top-left first and clockwise.
	Corners [4]Vec3
	// Mat4 is the transform matrix without origin translations.
	Mat4 Mat4
	// OriginTranslations holds the pre and post origin translations.
	OriginTranslations [2]Mat4
}

// Data computes the transformed corners and bounding rect of position. v is
// optional: its Width / Height stand in for non-numeric position sizes and
// its margins offset the box. position is not modified.
func (t *Transforms) Data(position *PositionData, v *ValidationData) TransformData {
	var valWidth, valHeight, offsetLeft, offsetTop float64
	if v != nil {
		valWidth, valHeight = v.Width, v.Height
		offsetLeft, offsetTop = v.MarginLeft, v.MarginTop
	}

	left := position.Left.Or(0) + offsetLeft
	top := position.Top.Or(0) + offsetTop
	width := position.Width.Or(valWidth)
	height := position.Height.Or(valHeight)

	var out TransformData
	pre, post := OriginTranslation(position.TransformOrigin, width, height)
	out.OriginTranslations = [2]Mat4{pre, post}

	if t.HasTransform(position) {
		m := t.Mat4(position)
		out.Mat4 = m
		full := m
		if o := position.TransformOrigin; o != OriginTopLeft && o != "" {
			full = post.Multiply(m).Multiply(pre)
		}
		local := [4]Vec3{{0, 0, 0}, {width, 0, 0}, {width, height, 0}, {0, height, 0}}
		for i, c := range local {
			p := c.TransformMat4(full)
			out.Corners[i] = Vec3{left + p[0], top + p[1], p[2]}
		}
	} else {
		out.Mat4 = identityMat4
		out.Corners = [4]Vec3{
			{left, top, 0},
			{left + width, top, 0},
			{left + width, top + height, 0},
			{left, top + height, 0},
		}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range out.Corners {
		minX = math.Min(minX, c[0])
		minY = math.Min(minY, c[1])
		maxX = math.Max(maxX, c[0])
		maxY = math.Max(maxY, c[1])
	}
	out.BoundingRect = Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
	return out
}

// OriginTranslation returns the matrices that move the origin point of a
// width x height box to (0, 0) and back. The zero Origin is top left; an
// unknown origin yields identity.
func OriginTranslation(origin Origin, width, height float64) (pre, post Mat4) {
	var x, y float64
	switch origin {
	case OriginTopLeft, "":
	case OriginTopCenter:
		x = width / 2
	case OriginTopRight:
		x = width
	case OriginCenterLeft:
		y = height / 2
	case OriginCenter:
		x, y = width/2, height/2
	case OriginCenterRight:
		x, y = width, height/2
	case OriginBottomLeft:
		y = height
	case OriginBottomCenter:
		x, y = width/2, height
	case OriginBottomRight:
		x, y = width, height
	default:
		return identityMat4, identityMat4
	}
	return Mat4FromTranslation(Vec3{-x, -y, 0}), Mat4FromTranslation(Vec3{x, y, 0})
}

func applyTransformKey(m Mat4, k Key, v float64) Mat4 {
	switch k {
	case KeyRotateX:
		return m.Multiply(Mat4FromXRotation(degToRad(v)))
	case KeyRotateY:
		return m.Multiply(Mat4FromYRotation(degToRad(v)))
	case KeyRotateZ:
		return m.Multiply(Mat4FromZRotation(degToRad(v)))
	case KeyScale:
		return m.Multiply(Mat4FromScaling(Vec3{v, v, 1}))
	case KeyTranslateX:
		return m.Multiply(Mat4FromTranslation(Vec3{v, 0, 0}))
	case KeyTranslateY:
		return m.Multiply(Mat4FromTranslation(Vec3{0, v, 0}))
	case KeyTranslateZ:
		return m.Multiply(Mat4FromTranslation(Vec3{0, 0, v}))
	}
	return m
}

func cssMatrix3D(m Mat4) string {
	var sb strings.Builder
	sb.WriteString("matrix3d(")
	for i, f := range m {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}
