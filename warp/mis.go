package warp

import fmath "github.com/nozzle/sampling/internal/math"

// BalanceHeuristic returns the multiple importance sampling weight of a
// sample drawn from strategy f when nf samples come from f with density
// fPDF and ng samples from g with density gPDF.
func BalanceHeuristic[T fmath.Float](nf int, fPDF T, ng int, gPDF T) T {
	f := T(nf) * fPDF
	g := T(ng) * gPDF
	return f / (f + g)
}

// PowerHeuristic is the power heuristic with exponent 2.
func PowerHeuristic[T fmath.Float](nf int, fPDF T, ng int, gPDF T) T {
	f := T(nf) * fPDF
	g := T(ng) * gPDF
	return f * f / (f*f + g*g)
}

// PowerHeuristicBeta is the power heuristic with an arbitrary exponent.
func PowerHeuristicBeta[T fmath.Float](beta T, nf int, fPDF T, ng int, gPDF T) T {
	f := fmath.Pow(T(nf)*fPDF, beta)
	g := fmath.Pow(T(ng)*gPDF, beta)
	return f / (f + g)
}
