package histogram

import (
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/avoidance/pointcloud"
	"go.viam.com/avoidance/spatialmath"
	"go.viam.com/avoidance/utils"
)

// defaultSensingHorizon is how far out, in cartesian units, obstacle readings
// are binned and penalized. Points beyond it are ignored.
const defaultSensingHorizon = 15.0

// Generator is the production obstacle-sensing pipeline: it builds polar
// obstacle histograms from point-cloud snapshots, scores every direction bin
// against the goal and sensed obstacles, and ranks the best candidates.
type Generator struct {
	sensingHorizon float64
	lastDirection  r3.Vector
}

// NewGenerator returns a Generator with the default sensing horizon.
func NewGenerator() *Generator {
	return &Generator{sensingHorizon: defaultSensingHorizon}
}

// NewGeneratorWithHorizon returns a Generator with a custom sensing horizon.
func NewGeneratorWithHorizon(horizon float64) *Generator {
	return &Generator{sensingHorizon: horizon}
}

// SetLastDirection records the last commanded direction so candidate scoring
// can bias toward continuity. A zero vector disables the smoothness term.
func (g *Generator) SetLastDirection(direction r3.Vector) {
	g.lastDirection = direction
}

// BuildHistogram bins every cloud point within the sensing horizon by its
// direction from the origin, keeping the closest range per bin. A nil or empty
// cloud yields a free-space histogram.
func (g *Generator) BuildHistogram(origin r3.Vector, cloud pointcloud.PointCloud) *Histogram {
	h := New(DefaultResolutionDeg)
	if cloud == nil {
		return h
	}
	cloud.Iterate(0, 0, func(p r3.Vector, d pointcloud.Data) bool {
		polar := spatialmath.CartesianToPolarHistogram(p, origin)
		if polar.Radius == 0 || polar.Radius > g.sensingHorizon {
			return true
		}
		eIdx, zIdx := spatialmath.PolarToHistogramIndex(polar, h.ResolutionDeg())
		if polar.Radius < h.Dist(eIdx, zIdx) {
			h.SetDist(eIdx, zIdx, polar.Radius)
		}
		return true
	})
	return h
}

// ComputeCostMatrix scores every histogram bin from the given origin state and
// smooths the result over the smoothing margin so that low-cost directions
// pull their angular neighborhoods down with them.
func (g *Generator) ComputeCostMatrix(
	h *Histogram,
	goal, origin, velocity r3.Vector,
	params CostParameters,
	smoothingMarginDeg float64,
) *CostMatrix {
	m := newCostMatrix(h.ResolutionDeg())
	for e := 0; e < m.ElevationBins(); e++ {
		for z := 0; z < m.AzimuthBins(); z++ {
			candidate := CandidateDirection{
				Elevation: m.binCenterElevation(e),
				Azimuth:   m.binCenterAzimuth(z),
			}
			cost := g.EvaluateEdgeCost(candidate, h.Dist(e, z), goal, origin, velocity, params)
			m.Set(e, z, cost)
		}
	}
	m.smooth(smoothingMarginDeg)
	return m
}

// ExtractTopCandidates returns up to k candidates from the matrix, best first.
func (g *Generator) ExtractTopCandidates(m *CostMatrix, k int) []CandidateDirection {
	return ExtractTopCandidates(m, k)
}

// EvaluateEdgeCost scores a single candidate direction taken from the given
// position: angular offset from the goal direction, misalignment with the
// current velocity, angular deviation from the last commanded direction, and
// proximity of the sensed obstacle along the candidate. An obstacle distance
// of +Inf means free space and contributes nothing.
func (g *Generator) EvaluateEdgeCost(
	c CandidateDirection,
	obstacleDistance float64,
	goal, position, velocity r3.Vector,
	params CostParameters,
) float64 {
	facingGoal := spatialmath.CartesianToPolarHistogram(goal, position)
	yawCost := params.YawCostParam * utils.AngleDiffDeg(c.Azimuth, facingGoal.Azimuth)
	pitchCost := params.PitchCostParam * utils.AngleDiffDeg(c.Elevation, facingGoal.Elevation)

	var velocityCost float64
	if speed := velocity.Norm(); speed > 0 {
		direction := spatialmath.PolarHistogramToCartesian(c.ToPolar(1), r3.Vector{})
		velocityCost = params.VelocityCostParam * (speed - velocity.Dot(direction))
	}

	var smoothCost float64
	if g.lastDirection.Norm() > 0 {
		lastPolar := spatialmath.CartesianToPolarHistogram(g.lastDirection, r3.Vector{})
		smoothCost = params.SmoothCostParam *
			(utils.AngleDiffDeg(c.Azimuth, lastPolar.Azimuth) + utils.AngleDiffDeg(c.Elevation, lastPolar.Elevation))
	}

	var obstacleCost float64
	if !math.IsInf(obstacleDistance, 1) && obstacleDistance < g.sensingHorizon {
		obstacleCost = params.ObstacleCostParam * (g.sensingHorizon - obstacleDistance)
	}

	return yawCost + pitchCost + velocityCost + smoothCost + obstacleCost
}
