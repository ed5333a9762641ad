package quat3d

import "math"

// StandardMargin is the default margin used for approximate equality comparisons.
// Comparisons of floating-point rotation math should never be exact; this is the
// largest componentwise difference two values can have while still being
// considered equal.
const StandardMargin = 1e-8

// ToRadians is a helper function to easily convert degrees to radians (which is what the rotation-oriented functions in quat3d use).
func ToRadians(degrees float64) float64 {
	return math.Pi * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees(radians float64) float64 {
	return radians / math.Pi * 180
}

func clamp[V float64 | int](value, min, max V) V {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
