// Package evaluator tabulates the configured function over an integer range.
package evaluator

import (
	"errors"
	"math"
)

// Formula is the function Evaluate tabulates, for display.
const Formula = "a*sin(x) + b*cos(x) + |a*sin(x) - b*cos(x)| + c"

// ErrNonPositiveStep is returned when a non-empty range would never be
// exhausted.
var ErrNonPositiveStep = errors.New("step must be positive for a non-empty range")

// Point is one tabulated value.
type Point struct {
	X int
	Y float64
}

// F computes the function at x.
func F(x, a, b, c float64) float64 {
	s := a * math.Sin(x)
	k := b * math.Cos(x)
	return s + k + math.Abs(s-k) + c
}

// Evaluate returns F at x = n0, n0+h, ... while x <= nk. The argument order
// matches config.Record.Args. An empty range (n0 > nk) yields no points.
func Evaluate(n0, h, nk int, a, b, c float64) ([]Point, error) {
	if n0 > nk {
		return nil, nil
	}
	if h <= 0 {
		return nil, ErrNonPositiveStep
	}

	var points []Point
	for x := n0; x <= nk; x += h {
		points = append(points, Point{X: x, Y: F(float64(x), a, b, c)})
		if x > math.MaxInt-h {
			break
		}
	}
	return points, nil
}
