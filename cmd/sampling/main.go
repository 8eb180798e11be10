// Command sampling generates point sets in the unit hypercube and writes
// them as CSV or binary, optionally zstd-compressed.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/pkg/errors"

	"github.com/nozzle/sampling"
	"github.com/nozzle/sampling/quality"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sampling", flag.ContinueOnError)
	fs.SetOutput(stderr)

	defaults := sampling.DefaultConfig()
	configFile := fs.String("config", "", "YAML config file; flags override its values")
	samplerName := fs.String("sampler", defaults.Sampler, "Sampler: random, halton, hammersley, stratified, lhs")
	dims := fs.Int("dims", defaults.Dims, "Coordinates per point")
	count := fs.Int("count", defaults.Count, "Number of points")
	seed := fs.Uint64("seed", defaults.Seed, "Random seed")
	generator := fs.String("generator", defaults.Generator, "Generator: pcg32, splitmix64, xoroshiro64*, xoroshiro128+, mt19937, tausworthe, chacha8")
	jitter := fs.Bool("jitter", defaults.Jitter, "Jitter stratified and LHS points inside their cells")
	shuffle := fs.Bool("shuffle", defaults.Shuffle, "Shuffle stratified points")
	strata := fs.String("strata", "", "Comma-separated strata per dimension for the stratified sampler")
	baseDim := fs.Int("base-dim", defaults.BaseDim, "First table dimension for halton and hammersley")
	offset := fs.Uint64("offset", defaults.Offset, "Index of the first halton or hammersley point")
	outputFile := fs.String("output", "-", "Output file, - for stdout")
	format := fs.String("format", formatCSV, "Output format: csv or bin")
	compress := fs.Bool("zstd", false, "Compress the output with zstd")
	report := fs.Bool("report", false, "Print a quality report to stderr")
	progress := fs.Bool("progress", false, "Show a progress bar on stderr")
	verbose := fs.Bool("verbose", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := defaults
	if *configFile != "" {
		var err error
		if cfg, err = sampling.LoadConfig(*configFile); err != nil {
			return err
		}
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sampler":
			cfg.Sampler = *samplerName
		case "dims":
			cfg.Dims = *dims
		case "count":
			cfg.Count = *count
		case "seed":
			cfg.Seed = *seed
		case "generator":
			cfg.Generator = *generator
		case "jitter":
			cfg.Jitter = *jitter
		case "shuffle":
			cfg.Shuffle = *shuffle
		case "base-dim":
			cfg.BaseDim = *baseDim
		case "offset":
			cfg.Offset = *offset
		case "strata":
			s, err := parseStrata(*strata)
			if err != nil {
				flagErr = err
			}
			cfg.Strata = s
		}
	})
	if flagErr != nil {
		return flagErr
	}
	if *format != formatCSV && *format != formatBinary {
		return errors.Errorf("unknown format %q", *format)
	}
	cfg.Logger = logger

	bar := pb.New(cfg.Count)
	bar.SetWriter(stderr)
	if !*progress {
		bar.SetWriter(io.Discard)
	}
	cfg.ProgressCallback = func(done, _ int) {
		bar.SetCurrent(int64(done))
	}

	eng, err := sampling.New(cfg)
	if err != nil {
		return err
	}
	defer eng.Close()

	points := make([]float64, cfg.Count*cfg.Dims)
	bar.Start()
	n, err := eng.Generate(points)
	bar.Finish()
	if err != nil {
		return err
	}
	points = points[:n*cfg.Dims]

	var out io.Writer = stdout
	if *outputFile != "-" {
		f, err := os.Create(*outputFile)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		defer f.Close()
		out = f
	}
	if err := writePoints(out, points, cfg.Dims, *format, *compress); err != nil {
		return err
	}
	logger.Debug("wrote points", "points", n, "output", *outputFile, "format", *format, "zstd", *compress)

	if *report {
		r, err := quality.Evaluate(points, cfg.Dims, n, quality.DefaultOptions())
		if err != nil {
			return err
		}
		printReport(stderr, cfg, r)
	}
	return nil
}

func parseStrata(s string) ([]uint32, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	strata := make([]uint32, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "strata entry %d", i)
		}
		strata[i] = uint32(n)
	}
	return strata, nil
}
