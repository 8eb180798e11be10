package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryRoundTrip(t *testing.T) {
	points := []float64{0, 0.5, 0.25, 0.75, 0.125, 0.999999}
	for _, compressed := range []bool{false, true} {
		var buf bytes.Buffer
		require.NoError(t, writePoints(&buf, points, 3, formatBinary, compressed))
		if !compressed {
			assert.Equal(t, 16+8*len(points), buf.Len())
		}

		got, dims, err := readPoints(&buf, compressed)
		require.NoError(t, err)
		assert.Equal(t, 3, dims)
		assert.Equal(t, points, got)
	}
}

func TestReadPointsRejectsForeignData(t *testing.T) {
	_, _, err := readPoints(strings.NewReader("not a point file at all"), false)
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePoints(&buf, []float64{0.5, 0.25, 0.75, 0.125}, 2, formatCSV, false))
	assert.Equal(t, "0.5,0.25\n0.75,0.125\n", buf.String())
}

func TestRunWritesCompressedBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.bin.zst")
	var stdout, stderr bytes.Buffer
	err := run([]string{
		"-sampler", "hammersley", "-dims", "3", "-count", "64",
		"-format", "bin", "-zstd", "-output", path, "-report",
	}, &stdout, &stderr)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	points, dims, err := readPoints(f, true)
	require.NoError(t, err)
	assert.Equal(t, 3, dims)
	require.Len(t, points, 64*3)
	for i := range 64 {
		assert.Equal(t, float64(i)/64, points[3*i])
	}
	assert.Contains(t, stderr.String(), "L2-star discrepancy")
	assert.Contains(t, stderr.String(), "points: 64")
}

func TestRunCSVToStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-sampler", "stratified", "-strata", "4, 2", "-count", "8", "-jitter=false"}, &stdout, &stderr)
	require.NoError(t, err)

	records, err := csv.NewReader(&stdout).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 8)
	x, err := strconv.ParseFloat(records[0][0], 64)
	require.NoError(t, err)
	assert.Equal(t, 0.125, x)
	y, err := strconv.ParseFloat(records[7][1], 64)
	require.NoError(t, err)
	assert.Equal(t, 0.75, y)
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sampling.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("sampler: lhs\ndims: 4\ncount: 10\n"), 0o600))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-config", cfgPath, "-count", "5"}, &stdout, &stderr))
	records, err := csv.NewReader(&stdout).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Len(t, records[0], 4)
}

func TestRunErrors(t *testing.T) {
	tests := [][]string{
		{"-format", "json"},
		{"-sampler", "sobol"},
		{"-strata", "4,x"},
		{"-config", filepath.Join(t.TempDir(), "missing.yaml")},
		{"-no-such-flag"},
	}
	for _, args := range tests {
		var stdout, stderr bytes.Buffer
		assert.Error(t, run(args, &stdout, &stderr), "%v", args)
	}
}

func TestParseStrata(t *testing.T) {
	s, err := parseStrata("3,5, 7")
	require.NoError(t, err)
	assert.Equal(t, []uint32{3, 5, 7}, s)

	s, err = parseStrata("")
	require.NoError(t, err)
	assert.Nil(t, s)
}
