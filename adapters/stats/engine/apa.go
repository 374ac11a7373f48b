package engine

import (
	"fmt"
	"strconv"
	"strings"

	"veristat/domain/record"
)

// APAReconstruction renders the test in APA style from the recalculated
// statistic and (possibly corrected) degrees of freedom, without the
// p-value clause. The corrected dfs are shown rounded to two decimals.
func APAReconstruction(rec record.TestRecord, corr Correction) string {
	stat := fmt.Sprintf("%.2f", rec.TestValue)

	if corr.Applied {
		return fmt.Sprintf("%s(%s, %s) = %s",
			string(rec.TestType), formatDF(RoundTo(corr.DF1, 2)), formatDF(RoundTo(corr.DF2, 2)), stat)
	}
	if rec.DF1 != nil {
		if rec.DF2 != nil {
			return fmt.Sprintf("%s(%s, %s) = %s",
				string(rec.TestType), formatDF(*rec.DF1), formatDF(*rec.DF2), stat)
		}
		return fmt.Sprintf("%s(%s) = %s", string(rec.TestType), formatDF(*rec.DF1), stat)
	}
	return fmt.Sprintf("%s = %s", string(rec.TestType), stat)
}

// FormatAPAP renders a p-value the APA way: three decimals, no leading
// zero, with the extremes reported as bounds.
func FormatAPAP(p float64) string {
	switch {
	case p < 0.001:
		return "p < .001"
	case p > 0.999:
		return "p > .999"
	}
	s := fmt.Sprintf("%.3f", p)
	return "p = " + strings.TrimPrefix(s, "0")
}

// formatDF prints a degree of freedom without trailing zeros (30, 1.58)
func formatDF(df float64) string {
	return strconv.FormatFloat(df, 'f', -1, 64)
}
