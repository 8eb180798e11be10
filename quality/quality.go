// Package quality measures how evenly a point set covers the unit
// hypercube. Points are passed interleaved, dims values per point, the same
// layout the samplers fill.
package quality

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nozzle/sampling/distance"
	"github.com/nozzle/sampling/internal/parallel"
)

// ErrInvalidInput is returned by Evaluate for a buffer that does not hold
// count points of dims coordinates.
var ErrInvalidInput = errors.New("quality: invalid point set")

// Options controls Evaluate.
type Options struct {
	// Bins is the number of equal-width bins per axis for the chi-square
	// test.
	Bins int
	// Workers bounds the goroutines used for the pairwise sums.
	Workers int
	// MaxPairwisePoints skips the diagnostics that cost O(count^2 * dims),
	// discrepancy and spacing, for larger sets. Zero means no limit.
	MaxPairwisePoints int
	// Metric names the distance used for spacing; see distance.Names.
	Metric string
	// Neighbors is the number of nearest neighbors averaged for spacing.
	Neighbors int
}

// DefaultOptions returns options suitable for sets of a few thousand
// points.
func DefaultOptions() Options {
	return Options{
		Bins:              16,
		Workers:           parallel.NumWorkers(),
		MaxPairwisePoints: 1 << 14,
		Metric:            "toroidal",
		Neighbors:         1,
	}
}

// Report holds the diagnostics of one point set. Per-axis slices have one
// entry per dimension.
type Report struct {
	Dims  int
	Count int

	// Discrepancy is the L2-star discrepancy, NaN when skipped.
	Discrepancy float64

	// MinDistance is the smallest distance between two points and
	// MeanDistance the mean distance to the nearest Options.Neighbors
	// points. Both are NaN when skipped.
	MinDistance  float64
	MeanDistance float64

	// Stratified reports whether each axis has exactly one coordinate in
	// each of Count equal cells.
	Stratified []bool

	ChiSquare []float64
	PValue    []float64
	Mean      []float64
	Variance  []float64
}

// MinPValue returns the smallest chi-square p-value across axes.
func (r *Report) MinPValue() float64 {
	if len(r.PValue) == 0 {
		return math.NaN()
	}
	return floats.Min(r.PValue)
}

// Evaluate computes every diagnostic for count points of dims coordinates.
func Evaluate(points []float64, dims, count int, opts Options) (*Report, error) {
	if dims <= 0 || count <= 0 || len(points) < dims*count {
		return nil, errors.Wrapf(ErrInvalidInput, "%d values for %d points of %d dimensions", len(points), count, dims)
	}
	if opts.Bins < 2 {
		return nil, errors.Wrapf(ErrInvalidInput, "chi-square needs at least 2 bins, got %d", opts.Bins)
	}
	if opts.Neighbors < 1 {
		return nil, errors.Wrapf(ErrInvalidInput, "spacing needs at least 1 neighbor, got %d", opts.Neighbors)
	}
	metric, ok := distance.Get(opts.Metric)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidInput, "unknown metric %q", opts.Metric)
	}
	points = points[:dims*count]

	r := &Report{
		Dims:         dims,
		Count:        count,
		Discrepancy:  math.NaN(),
		MinDistance:  math.NaN(),
		MeanDistance: math.NaN(),
		Stratified:   make([]bool, dims),
		ChiSquare:    make([]float64, dims),
		PValue:       make([]float64, dims),
		Mean:         make([]float64, dims),
		Variance:     make([]float64, dims),
	}

	pairwise := opts.MaxPairwisePoints == 0 || count <= opts.MaxPairwisePoints
	parallel.Do(
		func() {
			if pairwise {
				r.Discrepancy = L2Star(points, dims, count, opts.Workers)
			}
		},
		func() {
			if pairwise {
				r.MinDistance, r.MeanDistance = Spacing(points, dims, count, opts.Neighbors, metric, opts.Workers)
			}
		},
		func() {
			parallel.ParallelFor(0, dims, opts.Workers, func(dim int) {
				col := Column(points, dims, count, dim)
				r.Stratified[dim] = stratifiedColumn(col)
				r.ChiSquare[dim], r.PValue[dim] = chiSquareColumn(col, opts.Bins)
				r.Mean[dim], r.Variance[dim] = stat.MeanVariance(col, nil)
			})
		},
	)
	return r, nil
}

// Column copies coordinate dim of every point into a new slice.
func Column(points []float64, dims, count, dim int) []float64 {
	checkSet(len(points), dims, count)
	if dim < 0 || dim >= dims {
		panic("quality: dimension out of range")
	}
	col := make([]float64, count)
	for i := range col {
		col[i] = points[i*dims+dim]
	}
	return col
}

// L2Star returns the L2-star discrepancy of the set, computed with
// Warnock's closed form:
//
//	D^2 = 3^-d - 2^(1-d)/n * sum_i prod_k (1 - x_ik^2)
//	      + 1/n^2 * sum_i sum_j prod_k (1 - max(x_ik, x_jk))
//
// The double sum is split across workers by row.
func L2Star(points []float64, dims, count, workers int) float64 {
	checkSet(len(points), dims, count)
	n := float64(count)
	d := float64(dims)

	single := make([]float64, count)
	for i := range single {
		p := points[i*dims : (i+1)*dims]
		prod := 1.0
		for _, x := range p {
			prod *= 1 - x*x
		}
		single[i] = prod
	}

	rows := parallel.ParallelMap(0, count, workers, func(i int) float64 {
		pi := points[i*dims : (i+1)*dims]
		var sum float64
		for j := range count {
			pj := points[j*dims : (j+1)*dims]
			prod := 1.0
			for k, x := range pi {
				prod *= 1 - max(x, pj[k])
			}
			sum += prod
		}
		return sum
	})

	d2 := math.Pow(3, -d) - math.Pow(2, 1-d)/n*floats.Sum(single) + floats.Sum(rows)/(n*n)
	return math.Sqrt(max(0, d2))
}

// AxisStratified reports whether coordinate dim of the set has exactly one
// value in each of count equal cells of [0, 1).
func AxisStratified(points []float64, dims, count, dim int) bool {
	return stratifiedColumn(Column(points, dims, count, dim))
}

// ChiSquare bins coordinate dim into bins equal cells and returns Pearson's
// statistic against the uniform distribution with its p-value. Values
// outside [0, 1) are counted in the nearest edge bin.
func ChiSquare(points []float64, dims, count, dim, bins int) (statistic, p float64) {
	if bins < 2 {
		panic("quality: chi-square needs at least 2 bins")
	}
	return chiSquareColumn(Column(points, dims, count, dim), bins)
}

func stratifiedColumn(col []float64) bool {
	n := len(col)
	seen := make([]bool, n)
	for _, x := range col {
		if !(x >= 0 && x < 1) {
			return false
		}
		cell := min(int(x*float64(n)), n-1)
		if seen[cell] {
			return false
		}
		seen[cell] = true
	}
	return true
}

func chiSquareColumn(col []float64, bins int) (statistic, p float64) {
	observed := make([]float64, bins)
	for _, x := range col {
		b := int(x * float64(bins))
		observed[min(max(b, 0), bins-1)]++
	}
	expected := make([]float64, bins)
	for i := range expected {
		expected[i] = float64(len(col)) / float64(bins)
	}
	statistic = stat.ChiSquare(observed, expected)
	p = distuv.ChiSquared{K: float64(bins - 1)}.Survival(statistic)
	return statistic, p
}

func checkSet(n, dims, count int) {
	if dims <= 0 || count < 0 || n < dims*count {
		panic("quality: buffer cannot hold the requested point set")
	}
}
