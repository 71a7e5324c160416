package histogram

// CostParameters are the named weights controlling the relative influence of
// goal alignment, path smoothness, and obstacle proximity in the edge-cost
// function.
type CostParameters struct {
	// YawCostParam weights the azimuth offset from the goal direction.
	YawCostParam float64 `json:"yaw_cost_param"`

	// PitchCostParam weights the elevation offset from the goal direction.
	PitchCostParam float64 `json:"pitch_cost_param"`

	// VelocityCostParam weights misalignment with the current velocity.
	VelocityCostParam float64 `json:"velocity_cost_param"`

	// SmoothCostParam weights angular deviation from the last commanded direction.
	SmoothCostParam float64 `json:"smooth_cost_param"`

	// ObstacleCostParam weights proximity to sensed obstacles.
	ObstacleCostParam float64 `json:"obstacle_cost_param"`
}

// DefaultCostParameters returns a balanced parameter set.
func DefaultCostParameters() CostParameters {
	return CostParameters{
		YawCostParam:      0.5,
		PitchCostParam:    3.0,
		VelocityCostParam: 1.5,
		SmoothCostParam:   0.5,
		ObstacleCostParam: 5.0,
	}
}
