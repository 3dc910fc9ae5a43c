// Package num holds scalar helpers commonly composed with the slice and
// pipeline helpers: range clamping and planar distance.
package num

import (
	"cmp"
	"errors"
	"math"
)

// ErrInvalidRange is returned by [Clamp] when min is greater than max.
var ErrInvalidRange = errors.New("num: min cannot be greater than max")

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Clamp restricts value to [min, max].
//
//	Clamp(0, 10, -5) // → 0
//	Clamp(0, 10, 20) // → 10
func Clamp[T cmp.Ordered](min, max, value T) (T, error) {
	if min > max {
		var zero T
		return zero, ErrInvalidRange
	}
	switch {
	case value < min:
		return min, nil
	case value > max:
		return max, nil
	default:
		return value, nil
	}
}

// Distance returns the Euclidean distance between p1 and p2.
func Distance(p1, p2 Point) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}
