package engine

import (
	"math"
	"strconv"

	"veristat/domain/record"
)

// Correction is the outcome of the Huynh-Feldt degrees-of-freedom
// adjustment: the (possibly scaled) dfs plus a note when scaling happened.
type Correction struct {
	DF1     float64
	DF2     float64
	Applied bool
	Note    string
}

// ApplyHuynhFeldt scales F-test degrees of freedom by epsilon. Scaling
// happens only when the test is an F-test, epsilon is present, and both
// dfs are integers; non-integer dfs mean the author already reported
// corrected values, and scaling again would double-correct.
func ApplyHuynhFeldt(testType record.TestType, df1, df2 float64, epsilon *float64) Correction {
	if testType != record.TestF || epsilon == nil || !isWhole(df1) || !isWhole(df2) {
		return Correction{DF1: df1, DF2: df2}
	}
	eps := *epsilon
	return Correction{
		DF1:     eps * df1,
		DF2:     eps * df2,
		Applied: true,
		Note: "Degrees of freedom were adjusted due to a Huynh-Feldt correction. Epsilon = " +
			strconv.FormatFloat(eps, 'g', -1, 64) + ".",
	}
}

func isWhole(x float64) bool {
	return x == math.Trunc(x)
}
