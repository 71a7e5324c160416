package starplanner

import (
	"github.com/pkg/errors"
)

// default values for planning options.
const (
	// Maximum number of children inserted per node expansion.
	defaultChildrenPerNode = 5

	// Node-expansion budget for one tree build.
	defaultMaxExpandedNodes = 10

	// Radial distance from a node to each of its children.
	defaultTreeNodeDistance = 1.0

	// Open nodes farther than this from the root are never selected for expansion.
	defaultMaxPathLength = 12.0

	// Angular half-width over which the candidate cost matrix is smoothed.
	defaultSmoothingMarginDegrees = 30.0
)

// Options controls one StarPlanner. It is applied at construction and never
// mutated mid-cycle; build a new planner to change it.
type Options struct {
	// ChildrenPerNode is the maximum number of children inserted per expansion.
	ChildrenPerNode int `json:"children_per_node"`

	// MaxExpandedNodes is the node-expansion budget per tree build.
	MaxExpandedNodes int `json:"n_expanded_nodes"`

	// TreeNodeDistance is the radial distance from a node to its children.
	TreeNodeDistance float64 `json:"tree_node_distance"`

	// MaxPathLength bounds how far from the root an open node may be and still
	// be selected for expansion.
	MaxPathLength float64 `json:"max_path_length"`

	// SmoothingMarginDegrees is the angular half-width of cost-matrix smoothing.
	SmoothingMarginDegrees float64 `json:"smoothing_margin_degrees"`
}

// DefaultOptions returns an Options with all values pre-set to reasonable
// defaults.
func DefaultOptions() *Options {
	return &Options{
		ChildrenPerNode:        defaultChildrenPerNode,
		MaxExpandedNodes:       defaultMaxExpandedNodes,
		TreeNodeDistance:       defaultTreeNodeDistance,
		MaxPathLength:          defaultMaxPathLength,
		SmoothingMarginDegrees: defaultSmoothingMarginDegrees,
	}
}

func (opts *Options) validate() error {
	if opts.ChildrenPerNode <= 0 {
		return errors.Errorf("children_per_node must be positive, got %d", opts.ChildrenPerNode)
	}
	if opts.MaxExpandedNodes <= 0 {
		return errors.Errorf("n_expanded_nodes must be positive, got %d", opts.MaxExpandedNodes)
	}
	if opts.TreeNodeDistance <= 0 {
		return errors.Errorf("tree_node_distance must be positive, got %v", opts.TreeNodeDistance)
	}
	if opts.MaxPathLength <= 0 {
		return errors.Errorf("max_path_length must be positive, got %v", opts.MaxPathLength)
	}
	if opts.SmoothingMarginDegrees < 0 {
		return errors.Errorf("smoothing_margin_degrees must be non-negative, got %v", opts.SmoothingMarginDegrees)
	}
	return nil
}
