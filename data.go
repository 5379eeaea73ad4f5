package panes

import (
	"fmt"
	"math"
	"strconv"
)

// Key identifies one positionable property.
type Key uint8

const (
	KeyLeft Key = iota
	KeyTop
	KeyWidth
	KeyHeight
	KeyMaxWidth
	KeyMaxHeight
	KeyMinWidth
	KeyMinHeight
	KeyRotateX
	KeyRotateY
	KeyRotateZ
	KeyScale
	KeyTranslateX
	KeyTranslateY
	KeyTranslateZ
	KeyTransformOrigin
	KeyZIndex
	KeyRotation // alias of KeyRotateZ, resolved on input

	keyCount
)

var keyNames = [keyCount]string{
	KeyLeft:            "left",
	KeyTop:             "top",
	KeyWidth:           "width",
	KeyHeight:          "height",
	KeyMaxWidth:        "maxWidth",
	KeyMaxHeight:       "maxHeight",
	KeyMinWidth:        "minWidth",
	KeyMinHeight:       "minHeight",
	KeyRotateX:         "rotateX",
	KeyRotateY:         "rotateY",
	KeyRotateZ:         "rotateZ",
	KeyScale:           "scale",
	KeyTranslateX:      "translateX",
	KeyTranslateY:      "translateY",
	KeyTranslateZ:      "translateZ",
	KeyTransformOrigin: "transformOrigin",
	KeyZIndex:          "zIndex",
	KeyRotation:        "rotation",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, keyCount)
	for k, name := range keyNames {
		m[name] = Key(k)
	}
	return m
}()

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// ParseKey returns the key with the given property name ("left", "rotateZ",
// "rotation", ...).
func ParseKey(name string) (Key, bool) {
	k, ok := keysByName[name]
	return k, ok
}

// DataKeys lists the stored position keys in canonical order. The rotation
// alias is not included.
var DataKeys = []Key{
	KeyLeft, KeyTop, KeyWidth, KeyHeight,
	KeyMaxWidth, KeyMaxHeight, KeyMinWidth, KeyMinHeight,
	KeyRotateX, KeyRotateY, KeyRotateZ, KeyScale,
	KeyTranslateX, KeyTranslateY, KeyTranslateZ,
	KeyTransformOrigin, KeyZIndex,
}

// TransformKeys lists the keys that feed the transform matrix, in the order
// they are applied when no insertion order is known.
var TransformKeys = []Key{
	KeyRotateX, KeyRotateY, KeyRotateZ, KeyScale,
	KeyTranslateX, KeyTranslateY, KeyTranslateZ,
}

// AnimateKeys lists the keys a tween may interpolate.
var AnimateKeys = []Key{
	KeyLeft, KeyTop, KeyWidth, KeyHeight,
	KeyMaxWidth, KeyMaxHeight, KeyMinWidth, KeyMinHeight,
	KeyRotateX, KeyRotateY, KeyRotateZ, KeyScale,
	KeyTranslateX, KeyTranslateY, KeyTranslateZ,
	KeyZIndex, KeyRotation,
}

// IsTransform reports whether k feeds the transform matrix.
func (k Key) IsTransform() bool {
	return k >= KeyRotateX && k <= KeyTranslateZ
}

// IsRotation reports whether k is a rotation key (including the alias).
func (k Key) IsRotation() bool {
	return k == KeyRotateX || k == KeyRotateY || k == KeyRotateZ || k == KeyRotation
}

// Animatable reports whether k may be tweened.
func (k Key) Animatable() bool {
	return k < keyCount && k != KeyTransformOrigin
}

// Resolve maps an alias to the key it stands for.
func (k Key) Resolve() Key {
	if k == KeyRotation {
		return KeyRotateZ
	}
	return k
}

// --- Value ---

type valueKind uint8

const (
	kindNull valueKind = iota
	kindNumber
	kindAuto
	kindInherit
	kindString
)

// Value is a nullable position field. It holds null, a number, one of the
// sentinels "auto" / "inherit", or an unresolved string (a relative
// expression such as "+=10%" or a transform origin name).
type Value struct {
	kind valueKind
	num  float64
	str  string
}

// Num returns a numeric Value.
func Num(v float64) Value { return Value{kind: kindNumber, num: v} }

// Null returns the null Value, meaning "unset / use default".
func Null() Value { return Value{} }

// Auto returns the "auto" sentinel.
func Auto() Value { return Value{kind: kindAuto} }

// Inherit returns the "inherit" sentinel.
func Inherit() Value { return Value{kind: kindInherit} }

// Str returns a Value for a string. "auto" and "inherit" map to their
// sentinels; anything else is kept for later resolution.
func Str(s string) Value {
	switch s {
	case "auto":
		return Auto()
	case "inherit":
		return Inherit()
	}
	return Value{kind: kindString, str: s}
}

// OriginValue returns the Value for a transform origin; the zero Origin maps
// to null.
func OriginValue(o Origin) Value {
	if o == "" {
		return Null()
	}
	return Value{kind: kindString, str: string(o)}
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == kindNull }

// IsAuto reports whether v is the "auto" sentinel.
func (v Value) IsAuto() bool { return v.kind == kindAuto }

// IsInherit reports whether v is the "inherit" sentinel.
func (v Value) IsInherit() bool { return v.kind == kindInherit }

// IsString reports whether v holds an unresolved string.
func (v Value) IsString() bool { return v.kind == kindString }

// IsObservable reports whether v is "auto" or "inherit", i.e. the size is
// derived from the observed element box.
func (v Value) IsObservable() bool { return v.kind == kindAuto || v.kind == kindInherit }

// Float returns the numeric value. ok is false unless v is a finite number.
func (v Value) Float() (f float64, ok bool) {
	if v.kind != kindNumber || math.IsNaN(v.num) || math.IsInf(v.num, 0) {
		return 0, false
	}
	return v.num, true
}

// Or returns the numeric value, or def when v is not a finite number.
func (v Value) Or(def float64) float64 {
	if f, ok := v.Float(); ok {
		return f
	}
	return def
}

// Text returns the raw string of a string Value.
func (v Value) Text() string {
	if v.kind == kindString {
		return v.str
	}
	return ""
}

// Equal reports whether v and o hold the same value.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case kindNumber:
		return v.num == o.num
	case kindString:
		return v.str == o.str
	}
	return true
}

func (v Value) String() string {
	switch v.kind {
	case kindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case kindAuto:
		return "auto"
	case kindInherit:
		return "inherit"
	case kindString:
		return v.str
	}
	return "null"
}

// UnmarshalTOML decodes integers, floats and strings.
func (v *Value) UnmarshalTOML(data any) error {
	switch d := data.(type) {
	case int64:
		*v = Num(float64(d))
	case float64:
		*v = Num(d)
	case string:
		*v = Str(d)
	default:
		return fmt.Errorf("panes: cannot decode %T into a position value", data)
	}
	return nil
}

// --- PositionData ---

// PositionData is a snapshot of a pane's placement. Every field may be null.
// Width and Height may also hold "auto" / "inherit".
type PositionData struct {
	Left, Top, Width, Height                 Value
	MaxWidth, MaxHeight, MinWidth, MinHeight Value
	RotateX, RotateY, RotateZ                Value
	Scale                                    Value
	TranslateX, TranslateY, TranslateZ       Value
	TransformOrigin                          Origin
	ZIndex                                   Value
}

// Get returns the value stored under k. The rotation alias reads rotateZ.
func (d *PositionData) Get(k Key) Value {
	switch k {
	case KeyLeft:
		return d.Left
	case KeyTop:
		return d.Top
	case KeyWidth:
		return d.Width
	case KeyHeight:
		return d.Height
	case KeyMaxWidth:
		return d.MaxWidth
	case KeyMaxHeight:
		return d.MaxHeight
	case KeyMinWidth:
		return d.MinWidth
	case KeyMinHeight:
		return d.MinHeight
	case KeyRotateX:
		return d.RotateX
	case KeyRotateY:
		return d.RotateY
	case KeyRotateZ, KeyRotation:
		return d.RotateZ
	case KeyScale:
		return d.Scale
	case KeyTranslateX:
		return d.TranslateX
	case KeyTranslateY:
		return d.TranslateY
	case KeyTranslateZ:
		return d.TranslateZ
	case KeyTransformOrigin:
		return OriginValue(d.TransformOrigin)
	case KeyZIndex:
		return d.ZIndex
	}
	return Null()
}

// Set stores v under k without any normalization. An origin that is not one
// of the named origins is stored as null.
func (d *PositionData) Set(k Key, v Value) {
	switch k {
	case KeyLeft:
		d.Left = v
	case KeyTop:
		d.Top = v
	case KeyWidth:
		d.Width = v
	case KeyHeight:
		d.Height = v
	case KeyMaxWidth:
		d.MaxWidth = v
	case KeyMaxHeight:
		d.MaxHeight = v
	case KeyMinWidth:
		d.MinWidth = v
	case KeyMinHeight:
		d.MinHeight = v
	case KeyRotateX:
		d.RotateX = v
	case KeyRotateY:
		d.RotateY = v
	case KeyRotateZ, KeyRotation:
		d.RotateZ = v
	case KeyScale:
		d.Scale = v
	case KeyTranslateX:
		d.TranslateX = v
	case KeyTranslateY:
		d.TranslateY = v
	case KeyTranslateZ:
		d.TranslateZ = v
	case KeyTransformOrigin:
		if o := Origin(v.Text()); o.Valid() {
			d.TransformOrigin = o
		} else {
			d.TransformOrigin = ""
		}
	case KeyZIndex:
		d.ZIndex = v
	}
}

// Update returns every stored field as an Update, nulls included.
func (d *PositionData) Update() Update {
	u := make(Update, len(DataKeys))
	for _, k := range DataKeys {
		u[k] = d.Get(k)
	}
	return u
}

// Apply stores every entry of u without normalization.
func (d *PositionData) Apply(u Update) {
	for k, v := range u {
		d.Set(k, v)
	}
}

// numericDefaults substitutes for null fields when a numeric value is
// required. Keys absent from the table have no numeric default.
var numericDefaults = map[Key]float64{
	KeyLeft:       0,
	KeyTop:        0,
	KeyWidth:      0,
	KeyHeight:     0,
	KeyRotateX:    0,
	KeyRotateY:    0,
	KeyRotateZ:    0,
	KeyRotation:   0,
	KeyScale:      1,
	KeyTranslateX: 0,
	KeyTranslateY: 0,
	KeyTranslateZ: 0,
}

// NumericDefault returns the default used for k when its value is null.
// ok is false for keys whose default is null (min/max, zIndex, origin).
func NumericDefault(k Key) (v float64, ok bool) {
	v, ok = numericDefaults[k]
	return v, ok
}

// SetNumericDefaults replaces null fields that have a numeric default.
func (d *PositionData) SetNumericDefaults() {
	for _, k := range DataKeys {
		if def, ok := numericDefaults[k]; ok && d.Get(k).IsNull() {
			d.Set(k, Num(def))
		}
	}
}

// --- Update ---

// Update is a partial set of position changes. An absent key is left
// unchanged; a present Null clears the field.
type Update map[Key]Value

// Clone returns a shallow copy of u with aliases resolved. An explicit
// rotateZ wins over the rotation alias.
func (u Update) Clone() Update {
	out := make(Update, len(u))
	for k, v := range u {
		if k == KeyRotation {
			continue
		}
		out[k] = v
	}
	if v, ok := u[KeyRotation]; ok {
		if _, has := out[KeyRotateZ]; !has {
			out[KeyRotateZ] = v
		}
	}
	return out
}

// sortedKeys returns the keys of u in canonical order.
func (u Update) sortedKeys() []Key {
	keys := make([]Key, 0, len(u))
	for k := Key(0); k < keyCount; k++ {
		if _, ok := u[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}
