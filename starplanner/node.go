package starplanner

import (
	"github.com/golang/geo/r3"
)

// TreeNode is one candidate pose in the lookahead tree. Nodes live in an
// append-only slice and refer to their parent by index, so a node's position in
// the slice is its id and a parent index is always smaller than its own.
type TreeNode struct {
	// Parent is the index of the node this one was expanded from. The root
	// refers to itself.
	Parent int
	// Depth is the number of edges between this node and the root.
	Depth int

	Position r3.Vector
	Velocity r3.Vector

	// YawDeg is the heading of the edge into this node in the histogram frame,
	// rounded to whole degrees.
	YawDeg float64

	// LastElevation and LastAzimuth record the polar direction of the edge into
	// this node. They are kept for downstream waypoint smoothing consumers and
	// are not read back by the planner itself.
	LastElevation float64
	LastAzimuth   float64

	// Heuristic is the straight-line distance to the goal.
	Heuristic float64
	// TotalCost is the node's f-value: cost-so-far plus Heuristic. The
	// cost-so-far is recoverable as TotalCost - Heuristic.
	TotalCost float64

	Closed bool
}

// NewTreeNode creates an open TreeNode at the given pose.
func NewTreeNode(parent, depth int, position, velocity r3.Vector) TreeNode {
	return TreeNode{
		Parent:   parent,
		Depth:    depth,
		Position: position,
		Velocity: velocity,
	}
}

// SetCosts assigns the heuristic and total cost together.
func (n *TreeNode) SetCosts(heuristic, totalCost float64) {
	n.Heuristic = heuristic
	n.TotalCost = totalCost
}
