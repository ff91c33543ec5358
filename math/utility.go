package math

import (
	"math"
)

const TwoPi = 2 * math.Pi

/*
	NearlyEquals compares two float32 with an error margin
	http://floating-point-gui.de/errors/comparison/
*/
func NearlyEquals(a, b, epsilon float32) bool {
	// shortcut, handles infinities
	if a == b {
		return true
	}

	diff := float32(math.Abs(float64(a - b)))

	// a or b or both are zero
	if a*b == 0 {
		return diff < epsilon
	}

	absA := float32(math.Abs(float64(a)))
	absB := float32(math.Abs(float64(b)))

	// use relative error
	return diff/(absA+absB) < epsilon
}

func Clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
