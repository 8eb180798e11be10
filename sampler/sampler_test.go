package sampler_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nozzle/sampling/lds"
	"github.com/nozzle/sampling/rng"
	"github.com/nozzle/sampling/sampler"
)

func newTables(t *testing.T, capacity int) *lds.Tables {
	t.Helper()
	tables, err := lds.NewTables(capacity)
	require.NoError(t, err)
	t.Cleanup(tables.Close)
	return tables
}

func TestHaltonClassicBase2(t *testing.T) {
	tables := newTables(t, 10)
	h := sampler.NewHalton[float64](tables, 0, 1, 1)
	assert.Equal(t, 0.5, h.Sample())
	assert.Equal(t, 0.25, h.Sample())
	assert.Equal(t, 0.75, h.Sample())
	assert.Equal(t, uint64(4), h.Offset())
}

func TestHaltonVectorsAndReset(t *testing.T) {
	tables := newTables(t, 16)
	h := sampler.NewHalton[float64](tables, 0, 4, 0)

	buf := make([]float64, 4*50)
	h.Fill(buf, 4, 50)
	assert.Equal(t, uint64(50), h.Offset())

	h.Reset(0)
	v := make([]float64, 4)
	for i := range 50 {
		h.SampleVec(v)
		require.Equal(t, buf[4*i:4*i+4], v)
	}

	rows := make([][]float64, 50)
	for i := range rows {
		rows[i] = make([]float64, 4)
	}
	h.Reset(0)
	h.FillVec(rows, 4)
	for i, row := range rows {
		require.Equal(t, buf[4*i:4*i+4], row)
		for dim, x := range row {
			require.Equal(t, x, h.At(dim, uint64(i)))
		}
	}
	assert.InDelta(t, 1.0/3, buf[4+1], 1e-15)
}

func TestHaltonBaseDimPartitions(t *testing.T) {
	tables := newTables(t, 16)
	low := sampler.NewHalton[float64](tables, 0, 6, 0)
	high := sampler.NewHalton[float64](tables, 3, 3, 0)
	for k := range uint64(100) {
		for dim := range 3 {
			require.Equal(t, low.At(dim+3, k), high.At(dim, k))
		}
	}
	assert.Panics(t, func() { sampler.NewHalton[float64](tables, 10, 7, 0) })
	assert.Panics(t, func() { sampler.NewHalton[float64](tables, 0, 0, 0) })
	assert.Panics(t, func() { high.SampleVec(make([]float64, 4)) })
}

func TestHaltonFloat32(t *testing.T) {
	tables := newTables(t, lds.MaxDimensions)
	h := sampler.NewHalton[float32](tables, 0, lds.MaxDimensions, 0)
	buf := make([]float32, lds.MaxDimensions*64)
	h.Fill(buf, lds.MaxDimensions, 64)
	for _, x := range buf {
		require.GreaterOrEqual(t, x, float32(0))
		require.Less(t, x, float32(1))
	}
}

func TestHammersleyFirstAxis(t *testing.T) {
	tables := newTables(t, 10)
	h := sampler.NewHammersley[float64](tables, 4, 0, 3, 0)
	want := []float64{0, 0.25, 0.5, 0.75}
	v := make([]float64, 3)
	for i, w := range want {
		h.SampleVec(v)
		assert.Equal(t, w, v[0])
		// The second axis is the base-2 radical inverse.
		assert.Equal(t, lds.RadicalInverse[float64](2, uint64(i)), v[1])
		assert.Equal(t, lds.RadicalInverse[float64](3, uint64(i)), v[2])
	}
	assert.Zero(t, h.Remaining())
	assert.Panics(t, func() { h.Sample() })
}

func TestHammersleyFill(t *testing.T) {
	tables := newTables(t, 10)
	h := sampler.NewHammersley[float64](tables, 8, 0, 2, 0)
	buf := make([]float64, 16)
	h.Fill(buf, 2, 0)
	assert.Equal(t, uint64(8), h.Offset())
	for i := range 8 {
		assert.Equal(t, float64(i)/8, buf[2*i])
	}

	h.Reset(6)
	assert.Panics(t, func() { h.Fill(buf, 2, 3) })
	assert.Panics(t, func() { h.Reset(9) })
	assert.Panics(t, func() { sampler.NewHammersley[float64](tables, 0, 0, 2, 0) })

	rows := [][]float64{{0, 0}, {0, 0}}
	h.FillVec(rows, 2)
	assert.Equal(t, 0.75, rows[0][0])
	assert.Equal(t, 0.875, rows[1][0])
}

func TestStratifiedCentered(t *testing.T) {
	strata := []uint32{3, 5}
	s := sampler.NewStratified[float64](rng.NewPCG32Seeded(1), strata, sampler.None)
	require.Equal(t, 15, s.TotalStrata(2))

	buf := make([]float64, 2*15)
	s.Fill(buf, 2, 15)
	n := 0
	for j := range 5 {
		for i := range 3 {
			assert.Equal(t, (float64(i)+0.5)/3, buf[2*n])
			assert.Equal(t, (float64(j)+0.5)/5, buf[2*n+1])
			n++
		}
	}
}

func TestStratifiedJitterStaysInCell(t *testing.T) {
	strata := []uint32{4, 3, 2}
	s := sampler.NewStratified[float64](rng.NewPCG32Seeded(2), strata, sampler.Jitter)
	total := s.TotalStrata(3)
	buf := make([]float64, 3*total)
	s.Fill(buf, 3, 0)

	n := 0
	for c := range 2 {
		for b := range 3 {
			for a := range 4 {
				cells := []int{a, b, c}
				for dim, cell := range cells {
					x := buf[3*n+dim]
					require.Equal(t, cell, int(math.Floor(x*float64(strata[dim]))), "point %d dim %d", n, dim)
				}
				n++
			}
		}
	}
}

func TestStratifiedShuffleKeepsPoints(t *testing.T) {
	plain := sampler.NewUniformStratified[float64](rng.NewPCG32Seeded(3), 2, 4, sampler.None)
	shuffled := sampler.NewUniformStratified[float64](rng.NewPCG32Seeded(3), 2, 4, sampler.Shuffle)

	a := make([]float64, 32)
	b := make([]float64, 32)
	plain.Fill(a, 2, 16)
	shuffled.Fill(b, 2, 16)
	assert.NotEqual(t, a, b)

	points := func(buf []float64) [][2]float64 {
		out := make([][2]float64, len(buf)/2)
		for i := range out {
			out[i] = [2]float64{buf[2*i], buf[2*i+1]}
		}
		slices.SortFunc(out, func(x, y [2]float64) int {
			if x[0] != y[0] {
				return cmpFloat(x[0], y[0])
			}
			return cmpFloat(x[1], y[1])
		})
		return out
	}
	assert.Equal(t, points(a), points(b))
}

func TestStratifiedFallsBackToLHS(t *testing.T) {
	for _, opts := range []sampler.Options{sampler.None, sampler.Jitter, sampler.Jitter | sampler.Shuffle} {
		s := sampler.NewUniformStratified[float64](rng.NewPCG32Seeded(4), 3, 4, opts)
		l := sampler.NewLHS[float64](rng.NewPCG32Seeded(4), opts)

		a := make([]float64, 3*10)
		b := make([]float64, 3*10)
		s.Fill(a, 3, 10)
		l.Fill(b, 3, 10)
		require.Equal(t, b, a, "options %s", opts)

		ra := makeRows(10, 3)
		rb := makeRows(10, 3)
		s.FillVec(ra, 3)
		l.FillVec(rb, 3)
		require.Equal(t, rb, ra, "options %s", opts)
	}
}

func TestStratifiedRowsCentered(t *testing.T) {
	s := sampler.NewStratified[float32](rng.NewPCG32Seeded(5), []uint32{2, 2}, sampler.None)
	rows := makeRows32(4, 2)
	s.FillVec(rows, 2)
	assert.Equal(t, [][]float32{{0.25, 0.25}, {0.75, 0.25}, {0.25, 0.75}, {0.75, 0.75}}, rows)
}

func TestStratifiedPanics(t *testing.T) {
	g := rng.NewPCG32()
	assert.Panics(t, func() { sampler.NewStratified[float64](g, nil, sampler.None) })
	assert.Panics(t, func() { sampler.NewStratified[float64](g, []uint32{2, 0}, sampler.None) })
	s := sampler.NewUniformStratified[float64](g, 2, 2, sampler.None)
	assert.Panics(t, func() { s.TotalStrata(3) })
	assert.Panics(t, func() { s.Fill(make([]float64, 3), 2, 4) })
}

func TestLHSStratifiesEveryAxis(t *testing.T) {
	const dims, count = 5, 97
	for _, opts := range []sampler.Options{sampler.None, sampler.Jitter} {
		l := sampler.NewLHS[float64](rng.NewPCG32Seeded(6), opts)
		buf := make([]float64, dims*count)
		l.Fill(buf, dims, count)

		for dim := range dims {
			col := make([]float64, count)
			for i := range count {
				col[i] = buf[i*dims+dim]
			}
			assertOnePerCell(t, col, opts)
		}

		rows := makeRows(count, dims)
		l.FillVec(rows, dims)
		for dim := range dims {
			col := make([]float64, count)
			for i := range count {
				col[i] = rows[i][dim]
			}
			assertOnePerCell(t, col, opts)
		}
	}
}

func TestLHSDecorrelatesAxes(t *testing.T) {
	l := sampler.NewLHS[float64](rng.NewPCG32Seeded(7), sampler.None)
	buf := make([]float64, 2*200)
	l.Fill(buf, 2, 200)
	same := 0
	for i := range 200 {
		if buf[2*i] == buf[2*i+1] {
			same++
		}
	}
	assert.Less(t, same, 20)
}

func TestLHSZeroCount(t *testing.T) {
	l := sampler.NewLHS[float64](rng.NewPCG32(), sampler.Jitter)
	assert.NotPanics(t, func() { l.Fill(nil, 3, 0) })
	assert.NotPanics(t, func() { l.FillVec(nil, 3) })
	assert.Panics(t, func() { l.Fill(nil, 0, 0) })
}

func TestRandomSampler(t *testing.T) {
	a := sampler.NewRandom[float64](rng.NewXoroshiro128Plus(8))
	b := sampler.NewRandom[float64](rng.NewXoroshiro128Plus(8))

	buf := make([]float64, 3*100)
	a.Fill(buf, 3, 100)
	rows := makeRows(100, 3)
	b.FillVec(rows, 3)
	for i, row := range rows {
		require.Equal(t, buf[3*i:3*i+3], row)
	}
	for _, x := range buf {
		require.GreaterOrEqual(t, x, 0.0)
		require.Less(t, x, 1.0)
	}
	x := a.Sample()
	v := make([]float64, 2)
	b.SampleVec(v)
	assert.Equal(t, x, v[0])
}

func TestOptions(t *testing.T) {
	o := sampler.Jitter | sampler.Shuffle
	assert.True(t, o.Has(sampler.Jitter))
	assert.True(t, o.Has(sampler.Shuffle))
	assert.False(t, sampler.Jitter.Has(sampler.Shuffle))
	assert.Equal(t, "jitter|shuffle", o.String())
	assert.Equal(t, "none", sampler.None.String())
}

func TestFillersShareInterface(t *testing.T) {
	tables := newTables(t, 8)
	fillers := []sampler.Filler[float64]{
		sampler.NewRandom[float64](rng.NewPCG32()),
		sampler.NewHalton[float64](tables, 0, 2, 0),
		sampler.NewHammersley[float64](tables, 16, 0, 2, 0),
		sampler.NewUniformStratified[float64](rng.NewPCG32(), 2, 4, sampler.Jitter),
		sampler.NewLHS[float64](rng.NewPCG32(), sampler.Jitter),
	}
	for _, f := range fillers {
		buf := make([]float64, 32)
		f.Fill(buf, 2, 16)
		for _, x := range buf {
			require.GreaterOrEqual(t, x, 0.0)
			require.Less(t, x, 1.0)
		}
	}
}

func assertOnePerCell(t *testing.T, col []float64, opts sampler.Options) {
	t.Helper()
	n := len(col)
	sorted := slices.Clone(col)
	slices.Sort(sorted)
	for i, x := range sorted {
		require.Equal(t, i, int(math.Floor(x*float64(n))), "options %s", opts)
		if !opts.Has(sampler.Jitter) {
			require.Equal(t, (float64(i)+0.5)/float64(n), x)
		}
	}
}

func makeRows(n, dims int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, dims)
	}
	return rows
}

func makeRows32(n, dims int) [][]float32 {
	rows := make([][]float32, n)
	for i := range rows {
		rows[i] = make([]float32, dims)
	}
	return rows
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
