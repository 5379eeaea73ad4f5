package panes

import (
	"math"
)

// TransformBounds keeps the transformed bounding rect of a position inside
// its bounds. Numeric sizes are first clamped to [min, max], then left / top
// are nudged by exactly the overflow: bottom / right edges first, then top /
// left. Rotation and scale are never corrected.
type TransformBounds struct {
	SystemBase
}

// NewTransformBounds returns a TransformBounds validator.
func NewTransformBounds(opts SystemOptions) *TransformBounds {
	return &TransformBounds{SystemBase: newSystemBase(opts)}
}

// Validate implements Validator.
func (b *TransformBounds) Validate(v *ValidationData) *PositionData {
	if !b.Enabled() {
		return v.Position
	}
	boundsW, boundsH := b.bounds(v.Viewport)
	clampSize(v, b.constrain, boundsW, boundsH)

	data := v.Transforms.Data(v.Position, v)
	rect := data.BoundingRect
	initialX, initialY := rect.X, rect.Y

	if rect.Bottom()+v.MarginTop > boundsH {
		rect.Y += boundsH - rect.Bottom() - v.MarginTop
	}
	if rect.Right()+v.MarginLeft > boundsW {
		rect.X += boundsW - rect.Right() - v.MarginLeft
	}
	if rect.Top()-v.MarginTop < 0 {
		rect.Y += math.Abs(rect.Top() - v.MarginTop)
	}
	if rect.Left()-v.MarginLeft < 0 {
		rect.X += math.Abs(rect.Left() - v.MarginLeft)
	}

	v.Position.Left = Num(v.Position.Left.Or(0) - (initialX - rect.X))
	v.Position.Top = Num(v.Position.Top.Or(0) - (initialY - rect.Y))
	return v.Position
}

// BasicBounds clamps left / top so the untransformed box stays inside its
// bounds. It is cheaper than TransformBounds and ignores transforms.
type BasicBounds struct {
	SystemBase
}

// NewBasicBounds returns a BasicBounds validator.
func NewBasicBounds(opts SystemOptions) *BasicBounds {
	return &BasicBounds{SystemBase: newSystemBase(opts)}
}

// Validate implements Validator.
func (b *BasicBounds) Validate(v *ValidationData) *PositionData {
	if !b.Enabled() {
		return v.Position
	}
	boundsW, boundsH := b.bounds(v.Viewport)
	clampSize(v, b.constrain, boundsW, boundsH)

	width := v.Position.Width.Or(v.Width)
	height := v.Position.Height.Or(v.Height)

	left := clamp(v.Position.Left.Or(0), v.MarginLeft, boundsW-width-v.MarginLeft)
	top := clamp(v.Position.Top.Or(0), v.MarginTop, boundsH-height-v.MarginTop)
	v.Position.Left = Num(math.Round(left))
	v.Position.Top = Num(math.Round(top))
	return v.Position
}

// clampSize clamps numeric width / height to [min, max]. Without a max the
// bounds cap the size when constrain is set.
func clampSize(v *ValidationData, constrain bool, boundsW, boundsH float64) {
	if _, ok := v.Position.Width.Float(); ok {
		maxW := math.MaxFloat64
		if m, ok := v.MaxWidth.Float(); ok {
			maxW = m
		} else if constrain {
			maxW = boundsW
		}
		w := clamp(v.Width, v.MinWidth, maxW)
		v.Position.Width = Num(w)
		v.Width = w
	}
	if _, ok := v.Position.Height.Float(); ok {
		maxH := math.MaxFloat64
		if m, ok := v.MaxHeight.Float(); ok {
			maxH = m
		} else if constrain {
			maxH = boundsH
		}
		h := clamp(v.Height, v.MinHeight, maxH)
		v.Position.Height = Num(h)
		v.Height = h
	}
}

// clamp bounds x to [lo, hi]; when hi < lo the lower bound wins.
func clamp(x, lo, hi float64) float64 {
	if x > hi {
		x = hi
	}
	if x < lo {
		x = lo
	}
	return x
}
