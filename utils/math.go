// Package utils contains small math helpers shared across the avoidance packages.
package utils

import "math"

func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// AngleDiffDeg returns the closest difference from the two given
// angles. The arguments are commutative.
func AngleDiffDeg(a1, a2 float64) float64 {
	return float64(180) - math.Abs(math.Abs(a1-a2)-float64(180))
}

// WrapAngleToPlusMinus180 normalizes an angle in degrees to the [-180, 180) range.
func WrapAngleToPlusMinus180(angle float64) float64 {
	wrapped := math.Mod(angle+180, 360)
	if wrapped < 0 {
		wrapped += 360
	}
	return wrapped - 180
}

func AbsInt(n int) int {
	if n < 0 {
		return -1 * n
	}
	return n
}
