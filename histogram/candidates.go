package histogram

import (
	"container/heap"
	"math"
	"sort"

	"go.viam.com/avoidance/spatialmath"
)

// CandidateDirection is a ranked direction proposal considered as the next
// tree edge from an origin node.
type CandidateDirection struct {
	Cost      float64
	Elevation float64
	Azimuth   float64
}

// ToPolar expresses the candidate as a PolarPoint at the given radius.
func (c CandidateDirection) ToPolar(radius float64) spatialmath.PolarPoint {
	return spatialmath.NewPolarPoint(c.Elevation, c.Azimuth, radius)
}

// candidateHeap is a max-heap on cost, so the worst of the best-k so far sits
// on top and is cheap to evict.
type candidateHeap []CandidateDirection

func (h candidateHeap) Len() int            { return len(h) }
func (h candidateHeap) Less(i, j int) bool  { return h[i].Cost > h[j].Cost }
func (h candidateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(CandidateDirection)) }
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// ExtractTopCandidates returns up to k candidate directions from the cost
// matrix, cheapest first. Bins with +Inf cost are treated as blocked and never
// returned; if every bin is blocked the result is empty.
func ExtractTopCandidates(m *CostMatrix, k int) []CandidateDirection {
	if m == nil || k <= 0 {
		return nil
	}

	best := make(candidateHeap, 0, k+1)
	for e := 0; e < m.ElevationBins(); e++ {
		for z := 0; z < m.AzimuthBins(); z++ {
			cost := m.At(e, z)
			if math.IsInf(cost, 1) {
				continue
			}
			if len(best) == k && cost >= best[0].Cost {
				continue
			}
			heap.Push(&best, CandidateDirection{
				Cost:      cost,
				Elevation: m.binCenterElevation(e),
				Azimuth:   m.binCenterAzimuth(z),
			})
			if len(best) > k {
				heap.Pop(&best)
			}
		}
	}

	// total order: cost, then histogram scan order, so equal-cost ties come
	// back deterministically
	sort.Slice(best, func(i, j int) bool {
		if best[i].Cost != best[j].Cost {
			return best[i].Cost < best[j].Cost
		}
		if best[i].Elevation != best[j].Elevation {
			return best[i].Elevation < best[j].Elevation
		}
		return best[i].Azimuth < best[j].Azimuth
	})
	return best
}
