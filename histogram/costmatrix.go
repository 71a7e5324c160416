package histogram

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/avoidance/utils"
)

// CostMatrix holds one scalar cost per histogram direction bin. Bin geometry
// matches the Histogram it was computed from.
type CostMatrix struct {
	resolutionDeg int
	costs         *mat.Dense
}

func newCostMatrix(resolutionDeg int) *CostMatrix {
	return &CostMatrix{
		resolutionDeg: resolutionDeg,
		costs:         mat.NewDense(180/resolutionDeg, 360/resolutionDeg, nil),
	}
}

// ResolutionDeg returns the angular resolution in degrees per bin.
func (m *CostMatrix) ResolutionDeg() int {
	return m.resolutionDeg
}

// ElevationBins returns the number of elevation rows.
func (m *CostMatrix) ElevationBins() int {
	rows, _ := m.costs.Dims()
	return rows
}

// AzimuthBins returns the number of azimuth columns.
func (m *CostMatrix) AzimuthBins() int {
	_, cols := m.costs.Dims()
	return cols
}

// At returns the cost of a bin.
func (m *CostMatrix) At(eIdx, zIdx int) float64 {
	return m.costs.At(eIdx, zIdx)
}

// Set assigns the cost of a bin.
func (m *CostMatrix) Set(eIdx, zIdx int, cost float64) {
	m.costs.Set(eIdx, zIdx, cost)
}

// binCenterElevation returns the elevation angle at the center of a row.
func (m *CostMatrix) binCenterElevation(eIdx int) float64 {
	return -90 + float64(m.resolutionDeg)*(float64(eIdx)+0.5)
}

// binCenterAzimuth returns the azimuth angle at the center of a column.
func (m *CostMatrix) binCenterAzimuth(zIdx int) float64 {
	return -180 + float64(m.resolutionDeg)*(float64(zIdx)+0.5)
}

// smooth spreads every bin's cost over its angular neighborhood with a
// normalized triangular kernel of the given half-width in degrees. Azimuth
// wraps around, elevation clamps at the poles.
func (m *CostMatrix) smooth(marginDeg float64) {
	halfWidth := int(marginDeg) / m.resolutionDeg
	if halfWidth <= 0 {
		return
	}

	weights := make([]float64, 2*halfWidth+1)
	for d := -halfWidth; d <= halfWidth; d++ {
		weights[d+halfWidth] = float64(halfWidth + 1 - utils.AbsInt(d))
	}
	floats.Scale(1/floats.Sum(weights), weights)

	rows, cols := m.costs.Dims()
	smoothed := mat.NewDense(rows, cols, nil)

	// azimuth pass, wrapping
	for e := 0; e < rows; e++ {
		for z := 0; z < cols; z++ {
			var acc float64
			for d := -halfWidth; d <= halfWidth; d++ {
				acc += weights[d+halfWidth] * m.costs.At(e, ((z+d)%cols+cols)%cols)
			}
			smoothed.Set(e, z, acc)
		}
	}

	// elevation pass, clamping
	for e := 0; e < rows; e++ {
		for z := 0; z < cols; z++ {
			var acc float64
			for d := -halfWidth; d <= halfWidth; d++ {
				acc += weights[d+halfWidth] * smoothed.At(clampIndex(e+d, rows), z)
			}
			m.costs.Set(e, z, acc)
		}
	}
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
