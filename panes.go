package panes

import (
	"errors"
	"fmt"
)

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Left returns the minimum X edge.
func (r Rect) Left() float64 { return r.X }

// Top returns the minimum Y edge.
func (r Rect) Top() float64 { return r.Y }

// Right returns the maximum X edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the maximum Y edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Size is a width and height pair.
type Size struct {
	Width, Height float64
}

// Origin names the pivot point that rotation and scale are applied around.
// The zero value means no origin is set, which behaves like OriginCenter
// (the CSS default).
type Origin string

const (
	OriginTopLeft      Origin = "top left"
	OriginTopCenter    Origin = "top center"
	OriginTopRight     Origin = "top right"
	OriginCenterLeft   Origin = "center left"
	OriginCenter       Origin = "center"
	OriginCenterRight  Origin = "center right"
	OriginBottomLeft   Origin = "bottom left"
	OriginBottomCenter Origin = "bottom center"
	OriginBottomRight  Origin = "bottom right"
)

// Origins lists the nine named transform origins.
var Origins = []Origin{
	OriginTopLeft, OriginTopCenter, OriginTopRight,
	OriginCenterLeft, OriginCenter, OriginCenterRight,
	OriginBottomLeft, OriginBottomCenter, OriginBottomRight,
}

// Valid reports whether o is one of the nine named origins.
func (o Origin) Valid() bool {
	switch o {
	case OriginTopLeft, OriginTopCenter, OriginTopRight,
		OriginCenterLeft, OriginCenter, OriginCenterRight,
		OriginBottomLeft, OriginBottomCenter, OriginBottomRight:
		return true
	}
	return false
}

// ErrInvalidArgument is wrapped by every error caused by a bad argument to a
// public API. These are caller bugs and are reported immediately.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes a rejected argument.
type ArgumentError struct {
	Op     string // operation, e.g. "animate.to"
	Arg    string // argument name
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("panes: %s: %q %s", e.Op, e.Arg, e.Reason)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

func argError(op, arg, reason string) error {
	return &ArgumentError{Op: op, Arg: arg, Reason: reason}
}
