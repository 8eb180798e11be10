package quality

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/nozzle/sampling/distance"
	"github.com/nozzle/sampling/internal/heap"
	"github.com/nozzle/sampling/internal/parallel"
)

// Neighbors returns, for every point, the distances to its k nearest other
// points in ascending order. The search is exhaustive, O(count^2 * dims),
// and split across workers by point. k is capped at count-1.
func Neighbors(points []float64, dims, count, k int, metric distance.Func, workers int) [][]float64 {
	checkSet(len(points), dims, count)
	if k <= 0 {
		panic("quality: neighbor count must be positive")
	}
	k = min(k, count-1)
	if k <= 0 {
		return make([][]float64, count)
	}

	return parallel.ParallelMap(0, count, workers, func(i int) []float64 {
		h := heap.New(k)
		p := points[i*dims : (i+1)*dims]
		for j := range count {
			if j == i {
				continue
			}
			h.Push(int32(j), metric(p, points[j*dims:(j+1)*dims]))
		}
		h.Sort()
		return h.Distances
	})
}

// Spacing summarizes nearest-neighbor distances: the smallest distance
// between any two points and the mean, over points, of the average
// distance to their k nearest neighbors. Both are NaN for fewer than two
// points.
func Spacing(points []float64, dims, count, k int, metric distance.Func, workers int) (minDist, meanDist float64) {
	nn := Neighbors(points, dims, count, k, metric, workers)
	if count < 2 {
		return math.NaN(), math.NaN()
	}
	nearest := make([]float64, count)
	means := make([]float64, count)
	for i, d := range nn {
		nearest[i] = d[0]
		means[i] = floats.Sum(d) / float64(len(d))
	}
	return floats.Min(nearest), floats.Sum(means) / float64(count)
}
