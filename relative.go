package panes

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/charmbracelet/log"
)

// RelOp is the operator prefix of a relative expression.
type RelOp uint8

const (
	OpSet RelOp = iota // no prefix: absolute value
	OpAdd              // "+="
	OpSub              // "-="
	OpMul              // "*="
)

// RelUnit is the unit suffix of a relative expression.
type RelUnit uint8

const (
	UnitNone        RelUnit = iota // raw number
	UnitPercent                    // "%": of the parent client box, or of 360 degrees for rotation
	UnitPercentSelf                // "%~": of the key's own current value
	UnitPx                         // "px"
	UnitRad                        // "rad": rotation only
	UnitTurn                       // "turn": rotation only
)

// Relative is a parsed relative expression such as "+=10%" or "-=5px".
type Relative struct {
	Op    RelOp
	Value float64
	Unit  RelUnit
}

var relativeRe = regexp.MustCompile(`^([-+*]=)?(-?\d*\.?\d+)(%~|%|px|rad|turn)?$`)

// ParseRelative parses a relative expression.
func ParseRelative(s string) (Relative, error) {
	m := relativeRe.FindStringSubmatch(s)
	if m == nil {
		return Relative{}, fmt.Errorf("panes: malformed relative value %q", s)
	}
	v, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Relative{}, fmt.Errorf("panes: malformed relative value %q: %w", s, err)
	}
	r := Relative{Value: v}
	switch m[1] {
	case "+=":
		r.Op = OpAdd
	case "-=":
		r.Op = OpSub
	case "*=":
		r.Op = OpMul
	}
	switch m[3] {
	case "%":
		r.Unit = UnitPercent
	case "%~":
		r.Unit = UnitPercentSelf
	case "px":
		r.Unit = UnitPx
	case "rad":
		r.Unit = UnitRad
	case "turn":
		r.Unit = UnitTurn
	}
	return r, nil
}

// Apply combines the already unit-converted value v with current according
// to the operator.
func (r Relative) Apply(current, v float64) float64 {
	switch r.Op {
	case OpAdd:
		return current + v
	case OpSub:
		return current - v
	case OpMul:
		return current * v
	}
	return v
}

// percentWidthKey resolves "%" against the parent client width.
func percentWidthKey(k Key) bool {
	switch k {
	case KeyLeft, KeyWidth, KeyMaxWidth, KeyMinWidth, KeyTranslateX:
		return true
	}
	return false
}

// percentHeightKey resolves "%" against the parent client height.
func percentHeightKey(k Key) bool {
	switch k {
	case KeyTop, KeyHeight, KeyMaxHeight, KeyMinHeight, KeyTranslateY:
		return true
	}
	return false
}

// pixelKey accepts the "px" unit.
func pixelKey(k Key) bool {
	switch k {
	case KeyLeft, KeyTop, KeyWidth, KeyHeight,
		KeyMaxWidth, KeyMaxHeight, KeyMinWidth, KeyMinHeight,
		KeyTranslateX, KeyTranslateY, KeyTranslateZ:
		return true
	}
	return false
}

// currentNumeric returns the numeric value of k in data. Observable sizes
// read the element's offset box when available; nulls fall back to the
// numeric default.
func currentNumeric(k Key, data *PositionData, el Element) float64 {
	v := data.Get(k)
	if f, ok := v.Float(); ok {
		return f
	}
	if v.IsObservable() && el != nil {
		w, h := el.OffsetSize()
		if k == KeyWidth {
			return w
		}
		if k == KeyHeight {
			return h
		}
	}
	def, _ := NumericDefault(k)
	return def
}

// convertStringData resolves every relative string in u against current in
// place. Values that cannot be resolved are logged and removed, leaving the
// field unchanged.
func convertStringData(u Update, current *PositionData, el Element, logger *log.Logger) {
	var (
		parentW, parentH float64
		haveParent       bool
		parentChecked    bool
	)

	for _, k := range u.sortedKeys() {
		if k == KeyTransformOrigin {
			continue
		}
		v := u[k]
		if !v.IsString() {
			continue
		}

		rel, err := ParseRelative(v.Text())
		if err != nil {
			logger.Warn("malformed relative value", "key", k, "value", v.Text())
			delete(u, k)
			continue
		}

		var (
			value   float64
			handled = true
		)
		switch rel.Unit {
		case UnitNone, UnitPx:
			if rel.Unit == UnitPx && !pixelKey(k) {
				handled = false
				break
			}
			value = rel.Value
		case UnitPercent:
			switch {
			case k.IsRotation():
				value = 360 * (rel.Value / 100)
			case percentWidthKey(k) || percentHeightKey(k):
				if !parentChecked {
					parentChecked = true
					if el != nil {
						parentW, parentH, haveParent = el.ParentClientSize()
					}
				}
				if !haveParent {
					logger.Warn("could not determine parent client dimensions", "key", k, "value", v.Text())
					delete(u, k)
					continue
				}
				if percentWidthKey(k) {
					value = parentW * (rel.Value / 100)
				} else {
					value = parentH * (rel.Value / 100)
				}
			default:
				handled = false
			}
		case UnitPercentSelf:
			value = currentNumeric(k, current, el) * (rel.Value / 100)
		case UnitRad:
			if !k.IsRotation() {
				handled = false
				break
			}
			value = rel.Value * 180 / math.Pi
		case UnitTurn:
			if !k.IsRotation() {
				handled = false
				break
			}
			value = rel.Value * 360
		}

		if !handled {
			logger.Warn("malformed relative value", "key", k, "value", v.Text())
			delete(u, k)
			continue
		}

		if rel.Op == OpSet {
			u[k] = Num(value)
			continue
		}
		u[k] = Num(rel.Apply(currentNumeric(k, current, el), value))
	}
}
