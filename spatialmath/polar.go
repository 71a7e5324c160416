// Package spatialmath implements the polar coordinate frame used by the obstacle
// histogram and the avoidance planner.
//
// Azimuth is measured in degrees clockwise from the +Y axis, elevation in degrees
// up from the XY plane. A vehicle yaw in the flight-controller frame maps into
// this frame as wrap(-yaw + 90).
package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/avoidance/utils"
)

// PolarPoint is a direction (and optionally a range) in the histogram frame.
type PolarPoint struct {
	// Elevation angle in degrees, positive above the XY plane.
	Elevation float64
	// Azimuth angle in degrees clockwise from the +Y axis.
	Azimuth float64
	// Radius is the range along the direction, in cartesian units.
	Radius float64
}

// NewPolarPoint creates a PolarPoint from elevation/azimuth degrees and a radius.
func NewPolarPoint(elevation, azimuth, radius float64) PolarPoint {
	return PolarPoint{Elevation: elevation, Azimuth: azimuth, Radius: radius}
}

// CartesianToPolarHistogram expresses a cartesian point as a PolarPoint about the
// given origin. A point coincident with the origin yields the zero PolarPoint.
func CartesianToPolarHistogram(p, origin r3.Vector) PolarPoint {
	diff := p.Sub(origin)
	return PolarPoint{
		Elevation: utils.RadToDeg(math.Atan2(diff.Z, math.Hypot(diff.X, diff.Y))),
		Azimuth:   utils.RadToDeg(math.Atan2(diff.X, diff.Y)),
		Radius:    diff.Norm(),
	}
}

// PolarHistogramToCartesian converts a PolarPoint about the given origin back
// into a cartesian point.
func PolarHistogramToCartesian(p PolarPoint, origin r3.Vector) r3.Vector {
	elevation := utils.DegToRad(p.Elevation)
	azimuth := utils.DegToRad(p.Azimuth)
	return r3.Vector{
		X: origin.X + p.Radius*math.Cos(elevation)*math.Sin(azimuth),
		Y: origin.Y + p.Radius*math.Cos(elevation)*math.Cos(azimuth),
		Z: origin.Z + p.Radius*math.Sin(elevation),
	}
}

// PolarToHistogramIndex maps a PolarPoint onto (elevation, azimuth) bin indices
// for a histogram with the given angular resolution in degrees. Angles are
// wrapped before binning and the result is clamped to valid indices.
func PolarToHistogramIndex(p PolarPoint, resolutionDeg int) (int, int) {
	res := float64(resolutionDeg)
	azimuth := utils.WrapAngleToPlusMinus180(p.Azimuth)
	elevation := utils.WrapAngleToPlusMinus180(p.Elevation)

	eIdx := int(math.Floor((elevation + 90) / res))
	zIdx := int(math.Floor((azimuth + 180) / res))

	eIdx = clampIndex(eIdx, 180/resolutionDeg)
	zIdx = clampIndex(zIdx, 360/resolutionDeg)
	return eIdx, zIdx
}

func clampIndex(idx, n int) int {
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// HeadingFromDisplacement returns the histogram-frame heading in whole degrees
// of a displacement vector, rounded to the nearest degree. A zero displacement
// yields 90 (atan2(0, 0) is 0).
func HeadingFromDisplacement(diff r3.Vector) float64 {
	yawRadians := math.Atan2(diff.Y, diff.X)
	return math.Round(-utils.RadToDeg(yawRadians)) + 90
}
