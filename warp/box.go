package warp

import (
	"fmt"

	fmath "github.com/nozzle/sampling/internal/math"
)

// NCube maps the unit point u into the axis-aligned box [lo, hi) and
// writes the result to dst. All four slices must have the same length.
func NCube[T fmath.Float](dst, lo, hi, u []T) {
	n := len(u)
	if n == 0 {
		panic("warp: NCube needs at least one dimension")
	}
	if len(dst) != n || len(lo) != n || len(hi) != n {
		panic(fmt.Sprintf("warp: NCube length mismatch: dst %d, lo %d, hi %d, u %d", len(dst), len(lo), len(hi), n))
	}
	for i := range u {
		dst[i] = lo[i] + u[i]*(hi[i]-lo[i])
	}
}

// NCubePDF is the volume density of NCube: the reciprocal of the box
// volume.
func NCubePDF[T fmath.Float](lo, hi []T) T {
	if len(lo) == 0 || len(lo) != len(hi) {
		panic(fmt.Sprintf("warp: NCubePDF length mismatch: lo %d, hi %d", len(lo), len(hi)))
	}
	volume := T(1)
	for i := range lo {
		volume *= hi[i] - lo[i]
	}
	return 1 / volume
}

// Rectangle maps (u1, u2) into the rectangle with corners lo and hi.
func Rectangle[T fmath.Float](lo, hi [2]T, u1, u2 T) (x, y T) {
	return lo[0] + u1*(hi[0]-lo[0]), lo[1] + u2*(hi[1]-lo[1])
}

// RectanglePDF is the area density of Rectangle.
func RectanglePDF[T fmath.Float](lo, hi [2]T) T {
	return 1 / ((hi[0] - lo[0]) * (hi[1] - lo[1]))
}
