package math

import (
	"math"
)

// WrapRadians maps a into [0, 2π).
func WrapRadians(a float32) float32 {
	return wrap(a, TwoPi)
}

// WrapDegrees maps a into [0, 360).
func WrapDegrees(a float32) float32 {
	return wrap(a, 360)
}

func wrap(a float32, period float64) float32 {
	r := math.Mod(float64(a), period)
	if r < 0 {
		r += period
	}

	// float32 rounding may land exactly on the period
	if w := float32(r); w < float32(period) {
		return w
	}
	return 0
}

func SinCos(a float32) (sin, cos float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}
