// Package distance provides the metrics used to measure spacing between
// sample points.
package distance

import (
	"math"
	"sort"
)

// Func is a distance function between two points of equal dimension.
type Func func(x, y []float64) float64

// Registry maps metric names to their implementations.
var Registry = map[string]Func{
	// Minkowski family
	"euclidean":   Euclidean,
	"l2":          Euclidean,
	"sqeuclidean": SquaredEuclidean,
	"manhattan":   Manhattan,
	"l1":          Manhattan,
	"chebyshev":   Chebyshev,
	"linf":        Chebyshev,

	// Unit torus, where 0 and 1 are the same coordinate
	"toroidal": Toroidal,
}

// Get returns the named metric and whether it exists.
func Get(name string) (Func, bool) {
	fn, ok := Registry[name]
	return fn, ok
}

// Names returns the registered metric names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Euclidean computes the standard Euclidean (L2) distance.
// D(x, y) = sqrt(sum((x_i - y_i)^2))
func Euclidean(x, y []float64) float64 {
	return math.Sqrt(SquaredEuclidean(x, y))
}

// SquaredEuclidean computes the squared Euclidean distance (faster, no sqrt).
// D(x, y) = sum((x_i - y_i)^2)
func SquaredEuclidean(x, y []float64) float64 {
	var sum float64
	for i := range x {
		d := x[i] - y[i]
		sum += d * d
	}
	return sum
}

// Manhattan computes the Manhattan (L1/taxicab) distance.
// D(x, y) = sum(|x_i - y_i|)
func Manhattan(x, y []float64) float64 {
	var sum float64
	for i := range x {
		sum += math.Abs(x[i] - y[i])
	}
	return sum
}

// Chebyshev computes the Chebyshev (L-infinity) distance.
// D(x, y) = max(|x_i - y_i|)
func Chebyshev(x, y []float64) float64 {
	var m float64
	for i := range x {
		m = max(m, math.Abs(x[i]-y[i]))
	}
	return m
}

// Toroidal computes the Euclidean distance on the unit torus: each axis
// wraps, so the gap along it is min(|x_i - y_i|, 1 - |x_i - y_i|). Points
// near opposite faces of the unit cube are close under this metric.
func Toroidal(x, y []float64) float64 {
	var sum float64
	for i := range x {
		d := math.Abs(x[i] - y[i])
		d = min(d, 1-d)
		sum += d * d
	}
	return math.Sqrt(sum)
}
