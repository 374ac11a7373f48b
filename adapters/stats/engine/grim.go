package engine

import (
	"math"

	"veristat/domain/record"
	"veristat/domain/verdict"
)

// GrimCheck runs the granularity feasibility test for a reported mean: an
// integer-valued sample of size n can only produce means of the form k/n,
// so a reported mean at d decimals is possible iff some k/n rounds to it.
//
// The check is uninformative when n exceeds 10^d: the k/n grid is then
// finer than the display granularity and every reported mean is
// achievable. Such records come back with Applicable set to false.
func GrimCheck(m record.MeanRecord) verdict.GrimVerdict {
	d := m.Decimals()
	n := float64(m.SampleSize)
	shift := math.Pow(10, float64(d))

	gv := verdict.GrimVerdict{Decimals: d}
	if n > shift {
		gv.Applicable = false
		gv.Possible = true
		gv.NearestLow = m.ReportedMean
		gv.NearestHigh = m.ReportedMean
		return gv
	}
	gv.Applicable = true

	k := math.Round(m.ReportedMean * n)
	achieved := k / n
	gv.Possible = math.Round(achieved*shift) == math.Round(m.ReportedMean*shift)

	if gv.Possible {
		gv.NearestLow = achieved
		gv.NearestHigh = achieved
		return gv
	}

	// Report the achievable means bracketing the reported one
	gv.NearestLow = math.Floor(m.ReportedMean*n) / n
	gv.NearestHigh = math.Ceil(m.ReportedMean*n) / n
	return gv
}
