package panes

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// EaseFunc maps a time fraction in [0, 1] to an eased fraction. Some curves
// (back, elastic) overshoot outside [0, 1].
type EaseFunc func(t float64) float64

// InterpolateFunc blends start and end by the eased fraction t.
type InterpolateFunc func(start, end, t float64) float64

// Lerp is the default InterpolateFunc.
func Lerp(start, end, t float64) float64 {
	return start + t*(end-start)
}

// fromTween adapts a gween curve, which works over (time, begin, change,
// duration), to a unit EaseFunc.
func fromTween(fn ease.TweenFunc) EaseFunc {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// toTween adapts a unit EaseFunc to gween's (time, begin, change, duration)
// form.
func toTween(fn EaseFunc) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		return b + c*float32(fn(float64(t/d)))
	}
}

// easings is the named easing table. Names follow the svelte/easing
// convention so saved configs stay portable.
var easings = map[string]EaseFunc{
	"linear": func(t float64) float64 { return t },

	"quadIn":    fromTween(ease.InQuad),
	"quadOut":   fromTween(ease.OutQuad),
	"quadInOut": fromTween(ease.InOutQuad),

	"cubicIn":    fromTween(ease.InCubic),
	"cubicOut":   fromTween(ease.OutCubic),
	"cubicInOut": fromTween(ease.InOutCubic),

	"quartIn":    fromTween(ease.InQuart),
	"quartOut":   fromTween(ease.OutQuart),
	"quartInOut": fromTween(ease.InOutQuart),

	"quintIn":    fromTween(ease.InQuint),
	"quintOut":   fromTween(ease.OutQuint),
	"quintInOut": fromTween(ease.InOutQuint),

	"sineIn":    fromTween(ease.InSine),
	"sineOut":   fromTween(ease.OutSine),
	"sineInOut": fromTween(ease.InOutSine),

	"expoIn":    fromTween(ease.InExpo),
	"expoOut":   fromTween(ease.OutExpo),
	"expoInOut": fromTween(ease.InOutExpo),

	"circIn":    fromTween(ease.InCirc),
	"circOut":   fromTween(ease.OutCirc),
	"circInOut": fromTween(ease.InOutCirc),

	"backIn":    fromTween(ease.InBack),
	"backOut":   fromTween(ease.OutBack),
	"backInOut": fromTween(ease.InOutBack),

	"elasticIn":    fromTween(ease.InElastic),
	"elasticOut":   fromTween(ease.OutElastic),
	"elasticInOut": fromTween(ease.InOutElastic),

	"bounceIn":    fromTween(ease.InBounce),
	"bounceOut":   fromTween(ease.OutBounce),
	"bounceInOut": fromTween(ease.InOutBounce),
}

// DefaultEase is the curve used when a tween names none.
const DefaultEase = "cubicOut"

// Ease returns the named easing function.
func Ease(name string) (EaseFunc, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, &ArgumentError{Op: "ease", Arg: name, Reason: "is not a known easing function"}
	}
	return fn, nil
}

// MustEase is like Ease but panics on an unknown name. Intended for package
// level variables and tests.
func MustEase(name string) EaseFunc {
	fn, err := Ease(name)
	if err != nil {
		panic(err)
	}
	return fn
}

// EaseNames returns every registered easing name, sorted.
func EaseNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
