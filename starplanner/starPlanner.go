// Package starplanner grows a bounded lookahead tree of candidate headings from
// the vehicle's current pose toward a goal, threading between obstacles sensed
// in a point-cloud snapshot. It is the local-planning core of the avoidance
// module; obstacle sensing itself is delegated to a CandidateGenerator.
package starplanner

import (
	"math"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"

	"go.viam.com/avoidance/histogram"
	"go.viam.com/avoidance/pointcloud"
	"go.viam.com/avoidance/spatialmath"
	"go.viam.com/avoidance/utils"
)

const (
	// Candidates landing within this distance of an existing node are dropped.
	closeNodeDistance = 0.2

	// Sentinel the tree age is forced to when a new goal invalidates the tree.
	staleTreeAge = 1000
)

// CandidateGenerator is the obstacle-sensing capability set the planner expands
// tree nodes with. histogram.Generator is the production implementation; tests
// substitute deterministic stand-ins.
type CandidateGenerator interface {
	// SetLastDirection records the last commanded direction for continuity
	// biasing in candidate scoring.
	SetLastDirection(direction r3.Vector)

	// BuildHistogram produces an obstacle-distance function over direction bins
	// around the given origin.
	BuildHistogram(origin r3.Vector, cloud pointcloud.PointCloud) *histogram.Histogram

	// ComputeCostMatrix scores every histogram direction from the given origin state.
	ComputeCostMatrix(
		h *histogram.Histogram,
		goal, origin, velocity r3.Vector,
		params histogram.CostParameters,
		smoothingMarginDeg float64,
	) *histogram.CostMatrix

	// ExtractTopCandidates returns up to k candidate directions, best first.
	ExtractTopCandidates(m *histogram.CostMatrix, k int) []histogram.CandidateDirection

	// EvaluateEdgeCost scores a single candidate direction taken from the given position.
	EvaluateEdgeCost(
		c histogram.CandidateDirection,
		obstacleDistance float64,
		goal, position, velocity r3.Vector,
		params histogram.CostParameters,
	) float64
}

// StarPlanner incrementally grows a best-first tree of candidate headings and
// backtracks a path toward the goal. It is synchronous and not safe for
// concurrent use; inputs set through the setters must be stable for the
// duration of one BuildLookAheadTree call.
type StarPlanner struct {
	opts      Options
	generator CandidateGenerator
	logger    golog.Logger
	clock     clock.Clock

	costParams           histogram.CostParameters
	position             r3.Vector
	velocity             r3.Vector
	yawHistogramFrameDeg float64
	goal                 r3.Vector
	cloud                pointcloud.PointCloud

	tree              []TreeNode
	closedSet         []int
	pathNodePositions []r3.Vector
	pathNodeIndices   []int
	treeAge           int
}

// NewStarPlanner creates a StarPlanner. A nil opts selects DefaultOptions and a
// nil generator selects the production histogram pipeline.
func NewStarPlanner(opts *Options, generator CandidateGenerator, logger golog.Logger) (*StarPlanner, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if generator == nil {
		generator = histogram.NewGenerator()
	}
	return &StarPlanner{
		opts:       *opts,
		generator:  generator,
		logger:     logger,
		clock:      clock.New(),
		costParams: histogram.DefaultCostParameters(),
	}, nil
}

// SetParams replaces the cost-parameter set used for candidate scoring.
func (sp *StarPlanner) SetParams(params histogram.CostParameters) {
	sp.costParams = params
}

// SetLastDirection passes the last commanded direction through to the
// candidate generator for continuity biasing.
func (sp *StarPlanner) SetLastDirection(direction r3.Vector) {
	sp.generator.SetLastDirection(direction)
}

// SetPose sets the vehicle's current position, velocity, and heading. The
// heading is given in the flight-controller frame in degrees and converted to
// the histogram frame.
func (sp *StarPlanner) SetPose(position, velocity r3.Vector, yawFCUFrameDeg float64) {
	sp.position = position
	sp.velocity = velocity
	sp.yawHistogramFrameDeg = utils.WrapAngleToPlusMinus180(-yawFCUFrameDeg + 90.0)
}

// SetGoal sets the goal position and marks any previously built tree stale.
func (sp *StarPlanner) SetGoal(goal r3.Vector) {
	sp.goal = goal
	sp.treeAge = staleTreeAge
}

// SetPointcloud sets the obstacle snapshot used for the next build.
func (sp *StarPlanner) SetPointcloud(cloud pointcloud.PointCloud) {
	sp.cloud = cloud
}

// treeHeuristic is the admissible straight-line distance from a node to the goal.
func (sp *StarPlanner) treeHeuristic(nodeIdx int) float64 {
	return sp.goal.Sub(sp.tree[nodeIdx].Position).Norm()
}

// BuildLookAheadTree clears any previous tree, grows a new one from the current
// pose under the expansion budgets, and backtracks the resulting path. It
// always terminates and always produces a path containing at least the root.
func (sp *StarPlanner) BuildLookAheadTree() {
	start := sp.clock.Now()

	sp.tree = sp.tree[:0]
	sp.closedSet = sp.closedSet[:0]

	// insert first node
	root := NewTreeNode(0, 0, sp.position, sp.velocity)
	sp.tree = append(sp.tree, root)
	rootHeuristic := sp.treeHeuristic(0)
	sp.tree[0].SetCosts(rootHeuristic, rootHeuristic)
	sp.tree[0].YawDeg = sp.yawHistogramFrameDeg
	sp.tree[0].LastAzimuth = sp.yawHistogramFrameDeg

	origin := 0
	isExpandedNode := true
	for n := 0; n < sp.opts.MaxExpandedNodes && isExpandedNode; n++ {
		originPosition := sp.tree[origin].Position
		originVelocity := sp.tree[origin].Velocity

		hist := sp.generator.BuildHistogram(originPosition, sp.cloud)
		costMatrix := sp.generator.ComputeCostMatrix(
			hist, sp.goal, originPosition, originVelocity, sp.costParams, sp.opts.SmoothingMarginDegrees)
		candidates := sp.generator.ExtractTopCandidates(costMatrix, sp.opts.ChildrenPerNode)

		if len(candidates) == 0 {
			// starve the node out of future selection without discarding it
			sp.tree[origin].TotalCost = math.Inf(1)
		} else {
			depth := sp.tree[origin].Depth + 1
			children := 0
			for _, candidate := range candidates {
				candidatePolar := candidate.ToPolar(sp.opts.TreeNodeDistance)
				nodeLocation := spatialmath.PolarHistogramToCartesian(candidatePolar, originPosition)
				// kinematic approximation, not a physical simulation
				nodeVelocity := sp.tree[sp.tree[origin].Parent].Velocity.Add(nodeLocation.Sub(originPosition))

				// check if another close node has been added
				closeNodes := 0
				for i := range sp.tree {
					if sp.tree[i].Position.Sub(nodeLocation).Norm() < closeNodeDistance {
						closeNodes++
						break
					}
				}

				if children < sp.opts.ChildrenPerNode && closeNodes == 0 {
					child := NewTreeNode(origin, depth, nodeLocation, nodeVelocity)
					child.LastElevation = candidatePolar.Elevation
					child.LastAzimuth = candidatePolar.Azimuth
					sp.tree = append(sp.tree, child)

					childIdx := len(sp.tree) - 1
					h := sp.treeHeuristic(childIdx)
					eIdx, zIdx := spatialmath.PolarToHistogramIndex(candidatePolar, hist.ResolutionDeg())
					obstacleDistance := hist.Dist(eIdx, zIdx)
					c := sp.generator.EvaluateEdgeCost(
						candidate, obstacleDistance, sp.goal, nodeLocation, nodeVelocity, sp.costParams)
					sp.tree[childIdx].Heuristic = h
					sp.tree[childIdx].TotalCost = sp.tree[origin].TotalCost - sp.tree[origin].Heuristic + c + h
					sp.tree[childIdx].YawDeg = spatialmath.HeadingFromDisplacement(nodeLocation.Sub(originPosition))
					children++
				}
			}
		}

		sp.closedSet = append(sp.closedSet, origin)
		sp.tree[origin].Closed = true

		// find best node to continue
		minimalCost := math.Inf(1)
		isExpandedNode = false
		for i := range sp.tree {
			if sp.tree[i].Closed {
				continue
			}
			nodeDistance := sp.tree[i].Position.Sub(sp.position).Norm()
			if sp.tree[i].TotalCost < minimalCost && nodeDistance < sp.opts.MaxPathLength {
				minimalCost = sp.tree[i].TotalCost
				origin = i
				isExpandedNode = true
			}
		}
	}

	treeEnd := origin
	sp.pathNodePositions = sp.pathNodePositions[:0]
	sp.pathNodeIndices = sp.pathNodeIndices[:0]
	for treeEnd > 0 {
		sp.pathNodeIndices = append(sp.pathNodeIndices, treeEnd)
		sp.pathNodePositions = append(sp.pathNodePositions, sp.tree[treeEnd].Position)
		treeEnd = sp.tree[treeEnd].Parent
	}
	sp.pathNodeIndices = append(sp.pathNodeIndices, 0)
	sp.pathNodePositions = append(sp.pathNodePositions, sp.tree[0].Position)
	sp.treeAge = 0

	if sp.logger != nil {
		elapsed := sp.clock.Since(start)
		sp.logger.Debugf("lookahead tree (%d nodes, %d path nodes, %d expanded) calculated in %.2fms",
			len(sp.tree), len(sp.pathNodePositions), len(sp.closedSet),
			float64(elapsed.Microseconds())/1000.0)
	}
}

// PathNodePositions returns the backtracked path positions in leaf-to-root
// order; the root is the last element.
func (sp *StarPlanner) PathNodePositions() []r3.Vector {
	return sp.pathNodePositions
}

// PathNodeIndices returns the tree indices parallel to PathNodePositions.
func (sp *StarPlanner) PathNodeIndices() []int {
	return sp.pathNodeIndices
}

// Tree returns the full grown tree, for diagnostics and visualization.
func (sp *StarPlanner) Tree() []TreeNode {
	return sp.tree
}

// ClosedSet returns the indices of expanded nodes in expansion order.
func (sp *StarPlanner) ClosedSet() []int {
	return sp.closedSet
}

// TreeAge returns the staleness counter: 0 right after a successful build, the
// stale sentinel after a new goal is set.
func (sp *StarPlanner) TreeAge() int {
	return sp.treeAge
}
