package engine

import (
	"fmt"
	"math"

	"veristat/adapters/stats/dist"
	"veristat/domain/core"
	"veristat/domain/record"
	"veristat/domain/verdict"
)

// Calculator recomputes the valid p-value range for a test record by
// mapping the rounding interval of the reported statistic through the
// matching distribution's survival function.
type Calculator struct {
	dist *dist.Distributions
}

// NewCalculator creates a p-value range calculator
func NewCalculator() *Calculator {
	return &Calculator{dist: dist.NewDistributions()}
}

// PRange computes the (lower, upper) p-value interval consistent with the
// reported statistic, degrees of freedom, and tail flag. The record must
// already have passed validation. The returned Correction records whether
// a Huynh-Feldt adjustment was applied to the degrees of freedom.
//
// The survival transform is monotonically decreasing in the magnitude of
// the statistic, so the lower statistic bound maps to the upper p bound
// and vice versa; the interval is re-ordered after mapping rather than
// assuming a direction.
func (c *Calculator) PRange(rec record.TestRecord, tail record.Tail) (verdict.PRange, Correction, error) {
	d := rec.StatisticDecimals()
	iv := RoundingBounds(rec.TestValue, d)

	var pAtLower, pAtUpper float64
	var corr Correction

	switch rec.TestType {
	case record.TestCorrelation:
		iv = CorrelationBounds(rec.TestValue, d)
		df := *rec.DF1
		tLower := c.dist.CorrelationT(iv.Lower, df)
		tUpper := c.dist.CorrelationT(iv.Upper, df)
		pAtLower = c.dist.StudentTSurvival(math.Abs(tLower), df)
		pAtUpper = c.dist.StudentTSurvival(math.Abs(tUpper), df)
		corr = Correction{DF1: df}

	case record.TestT:
		df := *rec.DF1
		pAtLower = c.dist.StudentTSurvival(math.Abs(iv.Lower), df)
		pAtUpper = c.dist.StudentTSurvival(math.Abs(iv.Upper), df)
		corr = Correction{DF1: df}

	case record.TestF:
		corr = ApplyHuynhFeldt(rec.TestType, *rec.DF1, *rec.DF2, rec.Epsilon)
		if corr.DF1 <= 0 || corr.DF2 <= 0 {
			return verdict.PRange{}, corr, fmt.Errorf("%w: corrected dfs (%v, %v)", core.ErrNonPositiveDF, corr.DF1, corr.DF2)
		}
		iv = clampNonNegative(iv)
		pAtLower = c.dist.FSurvival(iv.Lower, corr.DF1, corr.DF2)
		pAtUpper = c.dist.FSurvival(iv.Upper, corr.DF1, corr.DF2)

	case record.TestChiSquare:
		df := *rec.DF1
		iv = clampNonNegative(iv)
		pAtLower = c.dist.ChiSquaredSurvival(iv.Lower, df)
		pAtUpper = c.dist.ChiSquaredSurvival(iv.Upper, df)
		corr = Correction{DF1: df}

	case record.TestZ:
		pAtLower = c.dist.NormalSurvival(math.Abs(iv.Lower))
		pAtUpper = c.dist.NormalSurvival(math.Abs(iv.Upper))

	default:
		return verdict.PRange{}, corr, fmt.Errorf("%w: %q", core.ErrUnknownTestType, string(rec.TestType))
	}

	pAtLower = adjustTail(pAtLower, rec.TestType, tail)
	pAtUpper = adjustTail(pAtUpper, rec.TestType, tail)

	return verdict.PRange{
		Lower: math.Min(pAtLower, pAtUpper),
		Upper: math.Max(pAtLower, pAtUpper),
	}, corr, nil
}

// PointP computes the tail probability at the reported statistic itself,
// used for the APA reconstruction.
func (c *Calculator) PointP(rec record.TestRecord, tail record.Tail) (float64, error) {
	var p float64
	switch rec.TestType {
	case record.TestCorrelation:
		df := *rec.DF1
		t := c.dist.CorrelationT(rec.TestValue, df)
		p = c.dist.StudentTSurvival(math.Abs(t), df)
	case record.TestT:
		p = c.dist.StudentTSurvival(math.Abs(rec.TestValue), *rec.DF1)
	case record.TestF:
		corr := ApplyHuynhFeldt(rec.TestType, *rec.DF1, *rec.DF2, rec.Epsilon)
		p = c.dist.FSurvival(rec.TestValue, corr.DF1, corr.DF2)
	case record.TestChiSquare:
		p = c.dist.ChiSquaredSurvival(rec.TestValue, *rec.DF1)
	case record.TestZ:
		p = c.dist.NormalSurvival(math.Abs(rec.TestValue))
	default:
		return 0, fmt.Errorf("%w: %q", core.ErrUnknownTestType, string(rec.TestType))
	}
	return adjustTail(p, rec.TestType, tail), nil
}

// clampNonNegative floors the statistic interval at 0. F and chi-square
// statistics cannot be negative, but a value displayed as 0.00 has a
// rounding interval reaching below zero, which is outside the
// distributions' domain.
func clampNonNegative(iv StatInterval) StatInterval {
	if iv.Lower < 0 {
		iv.Lower = 0
	}
	if iv.Upper < 0 {
		iv.Upper = 0
	}
	return iv
}

// adjustTail doubles the one-sided probability for two-tailed tests,
// capped at 1. F and chi-square are inherently one-sided and are never
// doubled.
func adjustTail(p float64, tt record.TestType, tail record.Tail) float64 {
	if tt == record.TestF || tt == record.TestChiSquare {
		return p
	}
	if tail == record.TailOne {
		return p
	}
	return math.Min(p*2, 1)
}
