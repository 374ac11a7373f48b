package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Distributions provides unified access to the distribution functions the
// verification engine maps statistic intervals through. All methods are
// pure; the struct carries no state.
type Distributions struct{}

// NewDistributions creates a new distributions utility
func NewDistributions() *Distributions {
	return &Distributions{}
}

// StudentTSurvival computes P(T > x) for Student's t with df degrees of
// freedom. Survival is used rather than 1-CDF so the far tail (df=1, huge
// statistics) stays accurate.
func (d *Distributions) StudentTSurvival(x, df float64) float64 {
	if df <= 0 {
		return 1.0
	}
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return tDist.Survival(x)
}

// FSurvival computes P(F > x) for the F distribution with (df1, df2)
func (d *Distributions) FSurvival(x, df1, df2 float64) float64 {
	if df1 <= 0 || df2 <= 0 {
		return 1.0
	}
	fDist := distuv.F{D1: df1, D2: df2}
	return fDist.Survival(x)
}

// ChiSquaredSurvival computes P(X > x) for chi-square with df degrees of freedom
func (d *Distributions) ChiSquaredSurvival(x, df float64) float64 {
	if df <= 0 {
		return 1.0
	}
	chiDist := distuv.ChiSquared{K: df}
	return chiDist.Survival(x)
}

// NormalSurvival computes P(Z > x) for the standard normal
func (d *Distributions) NormalSurvival(x float64) float64 {
	return distuv.UnitNormal.Survival(x)
}

// NormalQuantile computes the standard normal inverse CDF
func (d *Distributions) NormalQuantile(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}

// StudentTQuantile computes the Student's t inverse CDF
func (d *Distributions) StudentTQuantile(p, df float64) float64 {
	if df <= 0 {
		return math.NaN()
	}
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return tDist.Quantile(p)
}

// CorrelationT converts a correlation coefficient to the equivalent
// t-statistic on df degrees of freedom: t = r*sqrt(df)/sqrt(1-r^2).
// Returns +/-Inf at r = +/-1.
func (d *Distributions) CorrelationT(r, df float64) float64 {
	denom := 1 - r*r
	if denom <= 0 {
		return math.Inf(int(math.Copysign(1, r)))
	}
	return r * math.Sqrt(df) / math.Sqrt(denom)
}

// FisherZ computes the Fisher z-transform of a correlation coefficient,
// atanh(r). Infinite at r = +/-1.
func (d *Distributions) FisherZ(r float64) float64 {
	return math.Atanh(r)
}

// FisherZInverse maps a z value back to a correlation coefficient
func (d *Distributions) FisherZInverse(z float64) float64 {
	return math.Tanh(z)
}
