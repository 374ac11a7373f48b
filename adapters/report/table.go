package report

import (
	"fmt"
	"strconv"
	"strings"

	"veristat/domain/record"
	"veristat/domain/verdict"
)

// StatcheckHeader names the columns of the statcheck result table, in
// print order.
var StatcheckHeader = []string{"Consistent", "APA Reporting", "Reported P-value", "Valid P-value Range", "Notes"}

// GrimHeader names the columns of the GRIM result table
var GrimHeader = []string{"Possible", "Reported Mean", "Sample Size", "Nearest Achievable", "Notes"}

// StatcheckRows renders one table row per outcome. records and outcomes
// are parallel slices in extraction order.
func StatcheckRows(records []record.TestRecord, outcomes []verdict.Outcome) [][]string {
	rows := make([][]string, 0, len(outcomes))
	for _, out := range outcomes {
		var rec record.TestRecord
		if out.Index < len(records) {
			rec = records[out.Index]
		}

		consistent := "Cannot determine"
		rangeStr := "N/A"
		notes := out.Reason
		apa := out.APA

		if out.Status == verdict.StatusVerified && out.Verdict != nil {
			v := out.Verdict
			if v.Consistent {
				consistent = "Yes"
			} else {
				consistent = "No"
			}
			rangeStr = v.Range.String()
			notes = strings.Join(v.Notes, " ")
			apa = v.APA
		}
		if notes == "" {
			notes = "-"
		}

		rows = append(rows, []string{consistent, apa, formatReportedP(rec), rangeStr, notes})
	}
	return rows
}

// GrimRows renders one table row per GRIM outcome
func GrimRows(means []record.MeanRecord, outcomes []verdict.Outcome) [][]string {
	rows := make([][]string, 0, len(outcomes))
	for _, out := range outcomes {
		var m record.MeanRecord
		if out.Index < len(means) {
			m = means[out.Index]
		}

		possible := "Cannot determine"
		nearest := "N/A"
		notes := out.Reason

		if out.Grim != nil && out.Grim.Applicable {
			if out.Grim.Possible {
				possible = "Yes"
				nearest = formatMean(out.Grim.NearestLow, out.Grim.Decimals)
			} else {
				possible = "No"
				nearest = fmt.Sprintf("%s / %s",
					formatMean(out.Grim.NearestLow, out.Grim.Decimals+2),
					formatMean(out.Grim.NearestHigh, out.Grim.Decimals+2))
				notes = "Reported mean is not achievable from integer data at this sample size."
			}
		}
		if notes == "" {
			notes = "-"
		}

		rows = append(rows, []string{
			possible,
			formatMean(m.ReportedMean, m.Decimals()),
			strconv.Itoa(m.SampleSize),
			nearest,
			notes,
		})
	}
	return rows
}

func formatReportedP(rec record.TestRecord) string {
	if rec.ReportedP == nil {
		return "ns"
	}
	return fmt.Sprintf("%s %s", string(rec.Operator),
		strconv.FormatFloat(*rec.ReportedP, 'f', -1, 64))
}

func formatMean(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
