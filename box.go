package panes

import (
	"sort"
	"strconv"
	"strings"
)

// Box is an in-memory Element. It keeps inline styles in a map and reports
// an intrinsic size used whenever its width or height style is not a pixel
// value. Hosts draw panes from a Box's styles; tests inspect them directly.
type Box struct {
	// Computed is returned by ComputedStyle.
	Computed ComputedStyle
	// IntrinsicWidth and IntrinsicHeight stand in for the laid-out content
	// size when the inline width / height is auto, inherit or unset.
	IntrinsicWidth, IntrinsicHeight float64
	// Parent supplies ParentClientSize. It may be nil.
	Parent *Box

	connected bool
	styles    map[string]string
}

// NewBox returns a connected Box with the given intrinsic size.
func NewBox(width, height float64) *Box {
	return &Box{
		IntrinsicWidth:  width,
		IntrinsicHeight: height,
		connected:       true,
		styles:          make(map[string]string),
	}
}

// ElementTarget lets a Box act as its own Parent.
func (b *Box) ElementTarget() Element { return b }

// IsConnected reports whether the box is attached.
func (b *Box) IsConnected() bool { return b.connected }

// SetConnected attaches or detaches the box.
func (b *Box) SetConnected(connected bool) { b.connected = connected }

// ComputedStyle returns b.Computed.
func (b *Box) ComputedStyle() ComputedStyle { return b.Computed }

// OffsetSize returns the pixel width / height styles when set, otherwise the
// intrinsic size.
func (b *Box) OffsetSize() (width, height float64) {
	width, height = b.IntrinsicWidth, b.IntrinsicHeight
	if w, ok := parsePixels(b.styles["width"]); ok {
		width = w
	}
	if h, ok := parsePixels(b.styles["height"]); ok {
		height = h
	}
	return width, height
}

// ParentClientSize returns the offset size of Parent.
func (b *Box) ParentClientSize() (width, height float64, ok bool) {
	if b.Parent == nil {
		return 0, 0, false
	}
	width, height = b.Parent.OffsetSize()
	return width, height, true
}

// Style returns an inline style property.
func (b *Box) Style(name string) string { return b.styles[name] }

// SetStyle sets an inline style property; "" removes it.
func (b *Box) SetStyle(name, value string) {
	if b.styles == nil {
		b.styles = make(map[string]string)
	}
	if value == "" {
		delete(b.styles, name)
		return
	}
	b.styles[name] = value
}

// Styles returns a copy of every inline style property.
func (b *Box) Styles() map[string]string {
	out := make(map[string]string, len(b.styles))
	for k, v := range b.styles {
		out[k] = v
	}
	return out
}

// CSSText renders the inline styles as a sorted declaration list.
func (b *Box) CSSText() string {
	names := make([]string, 0, len(b.styles))
	for name := range b.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	var sb strings.Builder
	for i, name := range names {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(b.styles[name])
		sb.WriteByte(';')
	}
	return sb.String()
}

// BoxLayout is the geometry encoded in a Box's inline styles.
type BoxLayout struct {
	Left, Top     float64
	Width, Height float64
	Transform     Mat4
	Origin        Origin
	ZIndex        int
}

// Layout decodes the box's inline styles. Missing values fall back to zero,
// the intrinsic size and the identity transform.
func (b *Box) Layout() BoxLayout {
	l := BoxLayout{Transform: identityMat4}
	l.Left, _ = parsePixels(b.styles["left"])
	l.Top, _ = parsePixels(b.styles["top"])
	l.Width, l.Height = b.OffsetSize()
	if m, ok := ParseMatrix3D(b.styles["transform"]); ok {
		l.Transform = m
	}
	l.Origin = Origin(b.styles["transform-origin"])
	if z, err := strconv.Atoi(b.styles["z-index"]); err == nil {
		l.ZIndex = z
	}
	return l
}

// Corners returns the four screen-space corners of the laid-out box,
// top-left first and clockwise.
func (l BoxLayout) Corners() [4]Vec3 {
	pre, post := OriginTranslation(l.Origin, l.Width, l.Height)
	m := Mat4FromTranslation(Vec3{l.Left, l.Top, 0}).Multiply(post).Multiply(l.Transform).Multiply(pre)
	return [4]Vec3{
		Vec3{0, 0, 0}.TransformMat4(m),
		Vec3{l.Width, 0, 0}.TransformMat4(m),
		Vec3{l.Width, l.Height, 0}.TransformMat4(m),
		Vec3{0, l.Height, 0}.TransformMat4(m),
	}
}

// Matrix returns the full element matrix mapping local box coordinates to
// screen space.
func (l BoxLayout) Matrix() Mat4 {
	pre, post := OriginTranslation(l.Origin, l.Width, l.Height)
	return Mat4FromTranslation(Vec3{l.Left, l.Top, 0}).Multiply(post).Multiply(l.Transform).Multiply(pre)
}

// BoundingRect returns the axis-aligned box around Corners.
func (l BoxLayout) BoundingRect() Rect {
	c := l.Corners()
	minX, minY := c[0][0], c[0][1]
	maxX, maxY := minX, minY
	for _, p := range c[1:] {
		minX, maxX = min(minX, p[0]), max(maxX, p[0])
		minY, maxY = min(minY, p[1]), max(maxY, p[1])
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// ParseMatrix3D decodes a CSS "matrix3d(...)" value.
func ParseMatrix3D(s string) (Mat4, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "matrix3d(") || !strings.HasSuffix(s, ")") {
		return Mat4{}, false
	}
	parts := strings.Split(s[len("matrix3d("):len(s)-1], ",")
	if len(parts) != 16 {
		return Mat4{}, false
	}
	var m Mat4
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Mat4{}, false
		}
		m[i] = f
	}
	return m, true
}

// parsePixels decodes "12px" or a bare number.
func parsePixels(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// formatPixels encodes v as a CSS pixel length.
func formatPixels(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
