package main

import (
	"bufio"
	"encoding/binary"
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

const (
	formatCSV    = "csv"
	formatBinary = "bin"
)

// binaryMagic starts every binary point file. It is followed by the
// dimension count as a little-endian uint32, the point count as a
// little-endian uint64 and then the coordinates as little-endian float64s.
var binaryMagic = [4]byte{'S', 'M', 'P', 'L'}

// writePoints writes interleaved points in the given format, wrapping w in
// a zstd encoder when compress is set.
func writePoints(w io.Writer, points []float64, dims int, format string, compress bool) error {
	if !compress {
		return encodePoints(w, points, dims, format)
	}
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return errors.Wrap(err, "create zstd writer")
	}
	if err := encodePoints(zw, points, dims, format); err != nil {
		_ = zw.Close()
		return err
	}
	return errors.Wrap(zw.Close(), "close zstd writer")
}

func encodePoints(w io.Writer, points []float64, dims int, format string) error {
	switch format {
	case formatCSV:
		return writeCSV(w, points, dims)
	case formatBinary:
		return writeBinary(w, points, dims)
	}
	return errors.Errorf("unknown format %q", format)
}

// writeCSV writes one point per line, no header.
func writeCSV(w io.Writer, points []float64, dims int) error {
	cw := csv.NewWriter(w)
	record := make([]string, dims)
	for i := 0; i+dims <= len(points); i += dims {
		for j, x := range points[i : i+dims] {
			record[j] = strconv.FormatFloat(x, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "write csv")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}

func writeBinary(w io.Writer, points []float64, dims int) error {
	bw := bufio.NewWriter(w)
	var header [16]byte
	copy(header[:4], binaryMagic[:])
	binary.LittleEndian.PutUint32(header[4:8], uint32(dims))
	binary.LittleEndian.PutUint64(header[8:16], uint64(len(points)/dims))
	if _, err := bw.Write(header[:]); err != nil {
		return errors.Wrap(err, "write header")
	}
	var buf [8]byte
	for _, x := range points[:len(points)/dims*dims] {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
		if _, err := bw.Write(buf[:]); err != nil {
			return errors.Wrap(err, "write points")
		}
	}
	return errors.Wrap(bw.Flush(), "flush points")
}

// readPoints decodes a binary point file written by writePoints, returning
// the interleaved coordinates and the dimension count.
func readPoints(r io.Reader, compressed bool) ([]float64, int, error) {
	if compressed {
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, 0, errors.Wrap(err, "create zstd reader")
		}
		defer zr.Close()
		r = zr
	}

	var header [16]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, 0, errors.Wrap(err, "read header")
	}
	if [4]byte(header[:4]) != binaryMagic {
		return nil, 0, errors.New("not a point file")
	}
	dims := int(binary.LittleEndian.Uint32(header[4:8]))
	count := binary.LittleEndian.Uint64(header[8:16])

	points := make([]float64, int(count)*dims)
	br := bufio.NewReader(r)
	var buf [8]byte
	for i := range points {
		if _, err := io.ReadFull(br, buf[:]); err != nil {
			return nil, 0, errors.Wrapf(err, "read point value %d", i)
		}
		points[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[:]))
	}
	return points, dims, nil
}
