// Package histogram implements the obstacle-sensing pipeline the avoidance planner
// expands tree nodes with: polar obstacle histograms built from point clouds, a
// per-direction cost matrix, and ranked candidate-direction extraction.
package histogram

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultResolutionDeg is the angular width of one histogram bin in degrees.
const DefaultResolutionDeg = 6

// Histogram is a discretized obstacle-distance function over direction bins
// around a 3D origin. Rows are elevation bins covering [-90, 90) degrees,
// columns azimuth bins covering [-180, 180) degrees. A bin with no obstacle
// reading reports +Inf distance.
type Histogram struct {
	resolutionDeg int
	dist          *mat.Dense
}

// New returns a free-space Histogram with the given angular resolution.
// The resolution must divide both 180 and 360 evenly.
func New(resolutionDeg int) *Histogram {
	rows := 180 / resolutionDeg
	cols := 360 / resolutionDeg
	dist := mat.NewDense(rows, cols, nil)
	h := &Histogram{resolutionDeg: resolutionDeg, dist: dist}
	h.Reset()
	return h
}

// ResolutionDeg returns the angular resolution in degrees per bin.
func (h *Histogram) ResolutionDeg() int {
	return h.resolutionDeg
}

// ElevationBins returns the number of elevation rows.
func (h *Histogram) ElevationBins() int {
	rows, _ := h.dist.Dims()
	return rows
}

// AzimuthBins returns the number of azimuth columns.
func (h *Histogram) AzimuthBins() int {
	_, cols := h.dist.Dims()
	return cols
}

// Dist returns the obstacle distance recorded for a bin, +Inf if none.
func (h *Histogram) Dist(eIdx, zIdx int) float64 {
	return h.dist.At(eIdx, zIdx)
}

// SetDist records an obstacle distance for a bin.
func (h *Histogram) SetDist(eIdx, zIdx int, dist float64) {
	h.dist.Set(eIdx, zIdx, dist)
}

// Reset returns every bin to free space.
func (h *Histogram) Reset() {
	rows, cols := h.dist.Dims()
	for e := 0; e < rows; e++ {
		for z := 0; z < cols; z++ {
			h.dist.Set(e, z, math.Inf(1))
		}
	}
}
