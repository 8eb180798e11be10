package main

import (
	"io"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nozzle/sampling"
	"github.com/nozzle/sampling/quality"
)

func printReport(w io.Writer, cfg sampling.Config, r *quality.Report) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "sampler: %s  generator: %s  seed: %d\n", cfg.Sampler, cfg.Generator, cfg.Seed)
	p.Fprintf(w, "points: %d  dims: %d\n", r.Count, r.Dims)
	if math.IsNaN(r.Discrepancy) {
		p.Fprintf(w, "L2-star discrepancy: skipped\n")
	} else {
		p.Fprintf(w, "L2-star discrepancy: %.6g\n", r.Discrepancy)
		p.Fprintf(w, "min distance: %.6g  mean nearest distance: %.6g\n", r.MinDistance, r.MeanDistance)
	}
	p.Fprintf(w, "%4s %10s %10s %10s %10s %s\n", "dim", "mean", "variance", "chi2", "p-value", "stratified")
	for d := range r.Dims {
		p.Fprintf(w, "%4d %10.6f %10.6f %10.3f %10.4f %t\n",
			d, r.Mean[d], r.Variance[d], r.ChiSquare[d], r.PValue[d], r.Stratified[d])
	}
	p.Fprintf(w, "min p-value: %.4f\n", r.MinPValue())
}
